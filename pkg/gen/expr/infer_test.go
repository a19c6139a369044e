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
package expr

import (
	"testing"

	"github.com/jlaustill/cnext-codegen/internal/assertx"
	"github.com/jlaustill/cnext-codegen/pkg/ast"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

func Test_PromotedType_KnownLocal(t *testing.T) {
	s := newExprTestState()
	s.LocalVariables["speed"] = state.TypeInfo{BaseType: "u16"}
	e := New(s)
	//
	ti := e.promotedType(&ast.Ident{Name: "speed"})
	assertx.True(t, ti != nil)
	assertx.Equal(t, "u16", ti.BaseType)
}

func Test_PromotedType_UnknownIdentIsNil(t *testing.T) {
	e := New(newExprTestState())
	//
	ti := e.promotedType(&ast.Ident{Name: "mystery"})
	assertx.True(t, ti == nil)
}

func Test_PromotedType_SuffixedIntLiteral(t *testing.T) {
	e := New(newExprTestState())
	//
	ti := e.promotedType(&ast.Literal{Kind: "int", Text: "5u8"})
	assertx.True(t, ti != nil)
	assertx.Equal(t, "u8", ti.BaseType)
	assertx.Equal(t, uint(8), ti.BitWidth)
}

func Test_PromotedType_UnsuffixedIntLiteralIsNil(t *testing.T) {
	e := New(newExprTestState())
	//
	ti := e.promotedType(&ast.Literal{Kind: "int", Text: "5"})
	assertx.True(t, ti == nil)
}

func Test_PromotedType_F32Literal(t *testing.T) {
	e := New(newExprTestState())
	//
	ti := e.promotedType(&ast.Literal{Kind: "float", Text: "1.5f32"})
	assertx.True(t, ti != nil)
	assertx.Equal(t, "f32", ti.BaseType)
}

func Test_PromotedType_F64LiteralDefault(t *testing.T) {
	e := New(newExprTestState())
	//
	ti := e.promotedType(&ast.Literal{Kind: "float", Text: "1.5"})
	assertx.True(t, ti != nil)
	assertx.Equal(t, "f64", ti.BaseType)
}

func Test_PromotedType_BoolLiteral(t *testing.T) {
	e := New(newExprTestState())
	//
	ti := e.promotedType(&ast.Literal{Kind: "bool", Text: "true"})
	assertx.True(t, ti != nil)
	assertx.Equal(t, "bool", ti.BaseType)
}

func Test_PromotedType_UnaryPropagatesFromOperand(t *testing.T) {
	s := newExprTestState()
	s.LocalVariables["x"] = state.TypeInfo{BaseType: "i32"}
	e := New(s)
	//
	ti := e.promotedType(&ast.Unary{Op: "-", Operand: &ast.Ident{Name: "x"}})
	assertx.True(t, ti != nil)
	assertx.Equal(t, "i32", ti.BaseType)
}

func Test_PromotedType_BinaryPrefersLeftThenFallsBackToRight(t *testing.T) {
	s := newExprTestState()
	s.LocalVariables["x"] = state.TypeInfo{BaseType: "i32"}
	e := New(s)
	//
	ti := e.promotedType(&ast.Binary{Op: "+", Left: &ast.Ident{Name: "unknown"}, Right: &ast.Ident{Name: "x"}})
	assertx.True(t, ti != nil)
	assertx.Equal(t, "i32", ti.BaseType)
}

func Test_PromotedType_UnhandledNodeIsNil(t *testing.T) {
	e := New(newExprTestState())
	//
	ti := e.promotedType(&ast.This{})
	assertx.True(t, ti == nil)
}
