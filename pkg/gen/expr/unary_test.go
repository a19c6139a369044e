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

func Test_Unary_Not(t *testing.T) {
	e := New(newExprTestState())
	//
	out, err := e.Emit(&ast.Unary{Op: "!", Operand: &ast.Ident{Name: "ready"}})
	assertx.NoError(t, err)
	assertx.Equal(t, "!ready", out)
}

func Test_Unary_Negate(t *testing.T) {
	e := New(newExprTestState())
	//
	out, err := e.Emit(&ast.Unary{Op: "-", Operand: &ast.Ident{Name: "x"}})
	assertx.NoError(t, err)
	assertx.Equal(t, "-x", out)
}

func Test_Unary_AddressOf(t *testing.T) {
	e := New(newExprTestState())
	//
	out, err := e.Emit(&ast.Unary{Op: "&", Operand: &ast.Ident{Name: "x"}})
	assertx.NoError(t, err)
	assertx.Equal(t, "&x", out)
}

func Test_Unary_NegateInt32MinSpecialCased(t *testing.T) {
	s := newExprTestState()
	e := New(s)
	//
	out, err := e.Emit(&ast.Unary{Op: "-", Operand: &ast.Literal{Kind: "int", Text: "2147483648"}})
	assertx.NoError(t, err)
	assertx.Equal(t, "(int32_t)INT32_MIN", out)
	assertx.True(t, s.NeedsInclude(state.IncludeLimits))
}

func Test_Unary_NegateInt64MinSpecialCased(t *testing.T) {
	e := New(newExprTestState())
	//
	out, err := e.Emit(&ast.Unary{Op: "-", Operand: &ast.Literal{Kind: "int", Text: "9223372036854775808"}})
	assertx.NoError(t, err)
	assertx.Equal(t, "(int64_t)INT64_MIN", out)
}

func Test_Unary_BitwiseNotOnWideTypeNoCast(t *testing.T) {
	s := newExprTestState()
	s.LocalVariables["mask"] = state.TypeInfo{BaseType: "u32"}
	e := New(s)
	//
	out, err := e.Emit(&ast.Unary{Op: "~", Operand: &ast.Ident{Name: "mask"}})
	assertx.NoError(t, err)
	assertx.Equal(t, "~mask", out)
}

func Test_Unary_BitwiseNotOnNarrowUnsignedTypeWrapsInCast(t *testing.T) {
	s := newExprTestState()
	s.LocalVariables["flags"] = state.TypeInfo{BaseType: "u8"}
	e := New(s)
	//
	out, err := e.Emit(&ast.Unary{Op: "~", Operand: &ast.Ident{Name: "flags"}})
	assertx.NoError(t, err)
	assertx.Equal(t, "(uint8_t)(~flags)", out)
}

func Test_Unary_BitwiseNotOnUntypedIdentNoCast(t *testing.T) {
	e := New(newExprTestState())
	//
	out, err := e.Emit(&ast.Unary{Op: "~", Operand: &ast.Ident{Name: "unknownVar"}})
	assertx.NoError(t, err)
	assertx.Equal(t, "~unknownVar", out)
}
