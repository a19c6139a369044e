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

// This file implements spec.md §4.3's plain-array family: ARRAY_ELEMENT,
// MULTI_DIM_ARRAY_ELEMENT, ARRAY_SLICE.
package handlers

import (
	"fmt"

	"github.com/jlaustill/cnext-codegen/pkg/gen/classify"
	gencontext "github.com/jlaustill/cnext-codegen/pkg/gen/context"
	generrors "github.com/jlaustill/cnext-codegen/pkg/gen/errors"
	"github.com/jlaustill/cnext-codegen/pkg/gen/expr"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
	"github.com/jlaustill/cnext-codegen/pkg/gen/strutil"
)

func init() {
	register(classify.KindArrayElement, handleArrayElement)
	register(classify.KindMultiDimArrayElement, handleArrayElement)
	register(classify.KindArraySlice, handleArraySlice)
}

// handleArrayElement covers ARRAY_ELEMENT and MULTI_DIM_ARRAY_ELEMENT:
// ctx.ResolvedTarget already carries the fully-subscripted C lvalue text
// (the Expression Emitter's postfix ladder handles multi-dimensional
// indexing the same way for a write target as for a read), and each
// constant-foldable subscript is checked against the declared dimension.
func handleArrayElement(s *state.State, e *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	if err := checkArrayBounds(ctx); err != nil {
		return "", err
	}
	//
	return ctx.ResolvedTarget + " " + ctx.COp + " " + ctx.GeneratedValue + ";", nil
}

func checkArrayBounds(ctx *gencontext.AssignmentContext) error {
	if ctx.FirstIdTypeInfo == nil || !ctx.FirstIdTypeInfo.IsArray {
		return nil
	}
	//
	dims := ctx.FirstIdTypeInfo.ArrayDimensions
	//
	for i, subExpr := range ctx.Subscripts {
		if i >= len(dims) {
			break
		}
		//
		v, ok := expr.TryFoldInt(subExpr)
		if !ok {
			continue
		}
		//
		if v < 0 || uint(v) >= dims[i] {
			return generrors.New(generrors.KindArrayOutOfBounds,
				"index %d is out of bounds for dimension %d (size %d)", v, i, dims[i])
		}
	}
	//
	return nil
}

// handleArraySlice covers ARRAY_SLICE: both the offset and length must fold
// to compile-time constants (spec.md §4.3), and the slice must fit within
// the target's declared capacity.
func handleArraySlice(s *state.State, e *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	if ctx.IsCompound {
		return "", compoundRejected()
	}
	//
	exprs := finalSubscriptExprs(ctx)
	offsetExpr, lengthExpr := exprs[0], exprs[1]
	//
	offsetVal, offsetConst := expr.TryFoldInt(offsetExpr)
	lengthVal, lengthConst := expr.TryFoldInt(lengthExpr)
	//
	if !offsetConst || !lengthConst {
		return "", generrors.New(generrors.KindSliceNonConst, "array slice offset and length must be compile-time constants")
	}
	//
	capacity, err := sliceCapacity(ctx)
	if err != nil {
		return "", err
	}
	//
	if offsetVal < 0 || lengthVal <= 0 || uint64(offsetVal)+uint64(lengthVal) > uint64(capacity) {
		return "", generrors.New(generrors.KindSliceOutOfBounds,
			"slice [%d, %d] exceeds capacity %d", offsetVal, lengthVal, capacity)
	}
	//
	name := receiverName(s, ctx)
	s.MarkInclude(state.IncludeString)
	//
	return strutil.SliceCopyTemplate(name, uint(offsetVal), ctx.GeneratedValue, uint(lengthVal)), nil
}

func sliceCapacity(ctx *gencontext.AssignmentContext) (uint, error) {
	t := ctx.FirstIdTypeInfo
	if t == nil {
		return 0, generrors.New(generrors.KindSliceOutOfBounds, "cannot resolve slice target's capacity")
	}
	//
	if t.IsString {
		return t.StringCapacity + 1, nil
	}
	//
	if t.IsArray && len(t.ArrayDimensions) > 0 {
		return t.ArrayDimensions[0], nil
	}
	//
	return 0, generrors.New(generrors.KindSliceOutOfBounds, fmt.Sprintf("%q is not a 1-D array or string", receiverNameFromIdentifiers(ctx)))
}

func receiverNameFromIdentifiers(ctx *gencontext.AssignmentContext) string {
	if len(ctx.Identifiers) == 0 {
		return ""
	}
	//
	return ctx.Identifiers[0]
}
