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

// This file implements the integer/this/struct-member bit and bit-range
// family of spec.md §4.3's second paragraph: INTEGER_BIT, INTEGER_BIT_RANGE,
// THIS_BIT, THIS_BIT_RANGE, STRUCT_MEMBER_BIT, STRUCT_CHAIN_BIT_RANGE, and
// the array-element variant ARRAY_ELEMENT_BIT.
package handlers

import (
	"strings"

	gencontext "github.com/jlaustill/cnext-codegen/pkg/gen/context"
	"github.com/jlaustill/cnext-codegen/pkg/gen/bitutil"
	"github.com/jlaustill/cnext-codegen/pkg/gen/classify"
	"github.com/jlaustill/cnext-codegen/pkg/gen/expr"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

func init() {
	register(classify.KindIntegerBit, handleBitSingle)
	register(classify.KindThisBit, handleBitSingle)
	register(classify.KindStructMemberBit, handleBitSingle)
	register(classify.KindIntegerBitRange, handleBitRange)
	register(classify.KindThisBitRange, handleBitRange)
	register(classify.KindStructChainBitRange, handleBitRange)
	register(classify.KindArrayElementBit, handleArrayElementBit)
}

// handleBitSingle emits the canonical single-bit read-modify-write, or its
// float union-shadow variant when the target is a locally-typed f32/f64
// (spec.md §4.3). THIS_BIT never carries a FirstIdTypeInfo, and for
// STRUCT_MEMBER_BIT it describes the local struct variable rather than the
// field (the symbol table only records struct-field types by name, not a
// full TypeInfo), so the float-shadow path only ever triggers for a plain local
// identifier — a documented narrowing of the spec's float-bit rule to the
// shape this core's symbol table can actually resolve.
func handleBitSingle(s *state.State, e *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	if ctx.IsCompound {
		return "", compoundRejected()
	}
	//
	name := receiverName(s, ctx)
	bitExpr, err := e.Emit(finalSubscriptExprs(ctx)[0])
	if err != nil {
		return "", err
	}
	//
	if ctx.FirstIdTypeInfo != nil && ctx.FirstIdTypeInfo.IsFloat() {
		return emitFloatBitSingle(s, name, ctx.FirstIdTypeInfo.BaseType, bitExpr, ctx.GeneratedValue)
	}
	//
	is64 := ctx.FirstIdTypeInfo != nil && ctx.FirstIdTypeInfo.Is64Bit()
	//
	return bitutil.SingleBitWrite(name, bitExpr, ctx.GeneratedValue, is64), nil
}

func emitFloatBitSingle(s *state.State, name, baseType, bitExpr, value string) (string, error) {
	shadow, copyIn, err := state.EnsureFloatShadow(s, name, baseType)
	if err != nil {
		return "", err
	}
	//
	rmw := bitutil.SingleBitWrite(shadow+".u", bitExpr, value, false)
	writeBack := name + " = " + shadow + ".f;"
	//
	return joinNonEmpty(copyIn, rmw, writeBack), nil
}

// handleBitRange emits the bit-range read-modify-write template, folding
// the width subscript to a compile-time constant (spec.md §4.3).
func handleBitRange(s *state.State, e *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	if ctx.IsCompound {
		return "", compoundRejected()
	}
	//
	exprs := finalSubscriptExprs(ctx)
	startExpr, widthExpr := exprs[0], exprs[1]
	//
	name := receiverName(s, ctx)
	start, err := e.Emit(startExpr)
	if err != nil {
		return "", err
	}
	//
	width := foldWidth(widthExpr)
	//
	if ctx.FirstIdTypeInfo != nil && ctx.FirstIdTypeInfo.IsFloat() {
		shadow, copyIn, err := state.EnsureFloatShadow(s, name, ctx.FirstIdTypeInfo.BaseType)
		if err != nil {
			return "", err
		}
		//
		rmw := bitutil.MultiBitWrite(shadow+".u", start, width, ctx.GeneratedValue, false)
		writeBack := name + " = " + shadow + ".f;"
		//
		return joinNonEmpty(copyIn, rmw, writeBack), nil
	}
	//
	is64 := ctx.FirstIdTypeInfo != nil && ctx.FirstIdTypeInfo.Is64Bit()
	//
	return bitutil.MultiBitWrite(name, start, width, ctx.GeneratedValue, is64), nil
}

// handleArrayElementBit emits a single-bit write on one element of an
// integer array: `arr[i] = (arr[i] & ~(ONE << bit)) | (v01 << bit);`.
func handleArrayElementBit(s *state.State, e *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	if ctx.IsCompound {
		return "", compoundRejected()
	}
	//
	indexExpr := precedingSubscriptExprs(ctx)[0]
	bitExpr := finalSubscriptExprs(ctx)[0]
	//
	index, err := e.Emit(indexExpr)
	if err != nil {
		return "", err
	}
	//
	bit, err := e.Emit(bitExpr)
	if err != nil {
		return "", err
	}
	//
	name := receiverName(s, ctx) + "[" + index + "]"
	is64 := ctx.FirstIdTypeInfo != nil && ctx.FirstIdTypeInfo.Is64Bit()
	//
	return bitutil.SingleBitWrite(name, bit, ctx.GeneratedValue, is64), nil
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	//
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	//
	return strings.Join(out, " ")
}
