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
package handlers

import (
	"testing"

	"github.com/jlaustill/cnext-codegen/internal/assertx"
	"github.com/jlaustill/cnext-codegen/pkg/ast"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

func safeDivCallAssign(fn, target string) *ast.Assignment {
	return &ast.Assignment{
		Target: &ast.Ident{Name: target},
		SrcOp:  ast.OpAssign,
		Value: &ast.Postfix{
			Primary: &ast.Ident{Name: fn},
			Ops: []ast.PostfixOp{
				{Call: &ast.CallOp{Args: []ast.Expr{&ast.Ident{Name: "a"}, &ast.Ident{Name: "b"}}}},
			},
		},
	}
}

func Test_SafeDivCall_RewritesToTypedHelper(t *testing.T) {
	s := newBitTestState()
	s.LocalVariables["result"] = state.TypeInfo{BaseType: "u32"}
	s.LocalVariables["a"] = state.TypeInfo{BaseType: "u32"}
	s.LocalVariables["b"] = state.TypeInfo{BaseType: "u32"}
	//
	stmt, err := buildAndHandle(t, s, safeDivCallAssign("safe_div", "result"))
	assertx.NoError(t, err)
	assertx.Equal(t, "cnx_safe_div_u32(&result, a, b);", stmt)
	assertx.Equal(t, []state.SafeDivOp{state.SafeDivU32}, s.UsedSafeDivOps())
}

func Test_SafeDivCall_SafeModRewritesToTypedHelper(t *testing.T) {
	s := newBitTestState()
	s.LocalVariables["result"] = state.TypeInfo{BaseType: "i16"}
	s.LocalVariables["a"] = state.TypeInfo{BaseType: "i16"}
	s.LocalVariables["b"] = state.TypeInfo{BaseType: "i16"}
	//
	stmt, err := buildAndHandle(t, s, safeDivCallAssign("safe_mod", "result"))
	assertx.NoError(t, err)
	assertx.Equal(t, "cnx_safe_mod_i16(&result, a, b);", stmt)
	assertx.Equal(t, []state.SafeDivOp{state.SafeModI16}, s.UsedSafeDivOps())
}

func Test_SafeDivCall_UnknownBaseTypeIsError(t *testing.T) {
	s := newBitTestState()
	s.LocalVariables["result"] = state.TypeInfo{BaseType: "f32"}
	s.LocalVariables["a"] = state.TypeInfo{BaseType: "f32"}
	s.LocalVariables["b"] = state.TypeInfo{BaseType: "f32"}
	//
	_, err := buildAndHandle(t, s, safeDivCallAssign("safe_div", "result"))
	assertx.True(t, err != nil)
}

func Test_SafeDivCall_UnknownTargetIsError(t *testing.T) {
	s := newBitTestState()
	//
	_, err := buildAndHandle(t, s, safeDivCallAssign("safe_div", "result"))
	assertx.True(t, err != nil)
}
