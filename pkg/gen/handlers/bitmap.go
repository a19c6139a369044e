// Copyright cnext-codegen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// This file implements spec.md §4.3/§4.4's bitmap-field family:
// BITMAP_FIELD_SINGLE_BIT, BITMAP_FIELD_MULTI_BIT, BITMAP_ARRAY_ELEMENT_FIELD,
// STRUCT_MEMBER_BITMAP_FIELD, REGISTER_MEMBER_BITMAP_FIELD,
// SCOPED_REGISTER_MEMBER_BITMAP_FIELD. Every kind shares the same
// offset/width read-modify-write shape; they differ only in how the
// receiver (the bitmap-typed storage the field lives in) is named, and
// whether the receiver is a write-only register member that must skip its
// read.
package handlers

import (
	"fmt"

	"github.com/jlaustill/cnext-codegen/pkg/ast"
	"github.com/jlaustill/cnext-codegen/pkg/gen/bitutil"
	"github.com/jlaustill/cnext-codegen/pkg/gen/classify"
	gencontext "github.com/jlaustill/cnext-codegen/pkg/gen/context"
	generrors "github.com/jlaustill/cnext-codegen/pkg/gen/errors"
	"github.com/jlaustill/cnext-codegen/pkg/gen/expr"
	"github.com/jlaustill/cnext-codegen/pkg/gen/namemangle"
	"github.com/jlaustill/cnext-codegen/pkg/gen/regutil"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
	"github.com/jlaustill/cnext-codegen/pkg/symtab"
)

func init() {
	register(classify.KindBitmapFieldSingleBit, handleBitmapFieldLocal)
	register(classify.KindBitmapFieldMultiBit, handleBitmapFieldLocal)
	register(classify.KindBitmapArrayElementField, handleBitmapArrayElementField)
	register(classify.KindStructMemberBitmapField, handleBitmapFieldLocal)
	register(classify.KindRegisterMemberBitmapField, handleBitmapFieldRegister)
	register(classify.KindScopedRegisterMemberBitmapField, handleBitmapFieldRegister)
}

// bitmapField resolves the field's {offset, width}, validating a foldable
// integer literal RHS against the field width (spec.md §4.4).
func bitmapField(s *state.State, ctx *gencontext.AssignmentContext) (symtab.BitField, string, error) {
	bitmapType, ok := classify.BitmapTypeOfChain(s, ctx)
	if !ok {
		return symtab.BitField{}, "", generrors.New(generrors.KindUnknownBitmapField,
			"could not resolve the bitmap type of %q", receiverName(s, ctx))
	}
	//
	fieldName := ctx.Identifiers[len(ctx.Identifiers)-1]
	//
	field, known := s.Symbols.BitmapField(bitmapType, fieldName)
	if !known {
		return symtab.BitField{}, "", generrors.New(generrors.KindUnknownBitmapField,
			"%q has no bitmap field %q", bitmapType, fieldName)
	}
	//
	if lit, ok := ctx.ValueCtx.(*ast.Literal); ok && lit.Kind == "int" {
		if v, ok := expr.TryFoldInt(lit); ok {
			if v < 0 || (field.Width < 64 && uint64(v) >= uint64(1)<<field.Width) {
				return symtab.BitField{}, "", generrors.New(generrors.KindBitmapLiteralOverflow,
					"value %d does not fit field %q (width %d)", v, fieldName, field.Width)
			}
		}
	}
	//
	return field, fieldName, nil
}

// bitmapFieldWrite renders the RMW (or, for a write-only receiver, the
// masked-shift-only) statement for a resolved bitmap field.
func bitmapFieldWrite(name string, field symtab.BitField, value string, writeOnly bool) string {
	offset := fmt.Sprintf("%d", field.Offset)
	//
	if writeOnly {
		mask := bitutil.Mask(field.Width, false)
		//
		return fmt.Sprintf("%s = ((%s & %s) << %s);", name, value, mask, offset)
	}
	//
	if field.Width == 1 {
		return bitutil.SingleBitWrite(name, offset, value, false)
	}
	//
	return bitutil.MultiBitWrite(name, offset, field.Width, value, false)
}

// handleBitmapFieldLocal covers the three receiver shapes that are plain C
// lvalues reachable through the ordinary NameMangler/struct-separator rules:
// a local bitmap variable (BITMAP_FIELD_SINGLE_BIT/MULTI_BIT) and a struct
// member one level in (STRUCT_MEMBER_BITMAP_FIELD).
func handleBitmapFieldLocal(s *state.State, _ *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	if ctx.IsCompound {
		return "", compoundRejected()
	}
	//
	field, _, err := bitmapField(s, ctx)
	if err != nil {
		return "", err
	}
	//
	receiver := ctx.Identifiers[:len(ctx.Identifiers)-1]
	name := mangleChain(s, ctx.HasThis, receiver)
	//
	return bitmapFieldWrite(name, field, ctx.GeneratedValue, false), nil
}

// handleBitmapArrayElementField covers BITMAP_ARRAY_ELEMENT_FIELD: the
// bitmap value lives in one element of an array, e.g. `flagsArr[i].ready`.
// The trailing Member(field) op resets LastSubscriptCount to 0, so the
// array index is entirely in precedingSubscriptExprs.
func handleBitmapArrayElementField(s *state.State, e *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	if ctx.IsCompound {
		return "", compoundRejected()
	}
	//
	field, _, err := bitmapField(s, ctx)
	if err != nil {
		return "", err
	}
	//
	index, err := e.Emit(precedingSubscriptExprs(ctx)[0])
	if err != nil {
		return "", err
	}
	//
	receiver := ctx.Identifiers[:len(ctx.Identifiers)-1]
	name := mangleChain(s, ctx.HasThis, receiver) + "[" + index + "]"
	//
	return bitmapFieldWrite(name, field, ctx.GeneratedValue, false), nil
}

// handleBitmapFieldRegister covers REGISTER_MEMBER_BITMAP_FIELD and
// SCOPED_REGISTER_MEMBER_BITMAP_FIELD: the receiver is a register member, so
// the name is mangled directly via NameMangler (bypassing the Expression
// Emitter's postfix ladder, same rationale as register.go's registerName),
// and a write-only register member skips the read entirely.
func handleBitmapFieldRegister(s *state.State, _ *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	if ctx.IsCompound {
		return "", compoundRejected()
	}
	//
	if ctx.HasThis && s.CurrentScope == "" {
		return "", generrors.New(generrors.KindThisOutsideScope, "'this' used outside a scope")
	}
	//
	field, _, err := bitmapField(s, ctx)
	if err != nil {
		return "", err
	}
	//
	receiver := ctx.Identifiers[:len(ctx.Identifiers)-1]
	//
	var name string
	if ctx.HasThis {
		name = namemangle.Chain(append([]string{s.CurrentScope}, receiver...)...)
	} else {
		name = namemangle.Chain(receiver...)
	}
	//
	qualified := classify.RegisterMemberNameForBitmapField(s, ctx)
	access := s.Symbols.RegisterMemberAccess[qualified]
	writeOnly := regutil.IsWriteOnlyRegister(access)
	//
	return bitmapFieldWrite(name, field, ctx.GeneratedValue, writeOnly), nil
}
