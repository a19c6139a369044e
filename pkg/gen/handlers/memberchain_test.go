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
)

func Test_MemberChain_ThisMember(t *testing.T) {
	s := newBitTestState()
	s.CurrentScope = "Motor"
	//
	assign := &ast.Assignment{
		Target: &ast.Postfix{
			Primary: &ast.This{},
			Ops:     []ast.PostfixOp{{Member: &ast.MemberOp{Name: "speed"}}},
		},
		SrcOp: ast.OpAssign,
		Value: &ast.Raw{Text: "0"},
	}
	//
	stmt, err := buildAndHandle(t, s, assign)
	assertx.NoError(t, err)
	assertx.Equal(t, "Motor_speed = 0;", stmt)
}

// Test_MemberChain_GlobalArray exercises GLOBAL_ARRAY (a single-identifier
// global chain; classifyMemberOrFallback only reaches GLOBAL_MEMBER for a
// chain with more than one identifier), which shares handleMemberChain with
// every other plain member/array kind.
func Test_MemberChain_GlobalArray(t *testing.T) {
	s := newBitTestState()
	//
	assign := &ast.Assignment{
		Target: &ast.Postfix{
			Primary: &ast.Global{},
			Ops:     []ast.PostfixOp{{Member: &ast.MemberOp{Name: "counter"}}},
		},
		SrcOp: ast.OpAddAssign,
		Value: &ast.Raw{Text: "1"},
	}
	//
	stmt, err := buildAndHandle(t, s, assign)
	assertx.NoError(t, err)
	assertx.Equal(t, "counter += 1;", stmt)
}

func Test_MemberChain_StructField(t *testing.T) {
	s := newBitTestState()
	s.Symbols.KnownStructs["Motor"] = true
	s.Symbols.StructFields["Motor"] = map[string]string{"speed": "u32"}
	//
	assign := &ast.Assignment{
		Target: &ast.Postfix{
			Primary: &ast.Ident{Name: "motor"},
			Ops:     []ast.PostfixOp{{Member: &ast.MemberOp{Name: "speed"}}},
		},
		SrcOp: ast.OpAssign,
		Value: &ast.Raw{Text: "0"},
	}
	//
	stmt, err := buildAndHandle(t, s, assign)
	assertx.NoError(t, err)
	assertx.Equal(t, "motor.speed = 0;", stmt)
}
