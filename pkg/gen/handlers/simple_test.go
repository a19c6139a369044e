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

func Test_Simple_Plain(t *testing.T) {
	s := newBitTestState()
	s.LocalVariables["count"] = state.TypeInfo{BaseType: "u32"}
	//
	assign := &ast.Assignment{
		Target: &ast.Ident{Name: "count"},
		SrcOp:  ast.OpAssign,
		Value:  &ast.Raw{Text: "5"},
	}
	//
	stmt, err := buildAndHandle(t, s, assign)
	assertx.NoError(t, err)
	assertx.Equal(t, "count = 5;", stmt)
}

func Test_Simple_NarrowCompoundExpandsWithCast(t *testing.T) {
	s := newBitTestState()
	s.LocalVariables["level"] = state.TypeInfo{BaseType: "u8"}
	//
	assign := &ast.Assignment{
		Target: &ast.Ident{Name: "level"},
		SrcOp:  ast.OpAddAssign,
		Value:  &ast.Raw{Text: "3"},
	}
	//
	stmt, err := buildAndHandle(t, s, assign)
	assertx.NoError(t, err)
	assertx.Equal(t, "level = (uint8_t)(level + 3);", stmt)
}

func Test_Simple_WideCompoundNotExpanded(t *testing.T) {
	s := newBitTestState()
	s.LocalVariables["count"] = state.TypeInfo{BaseType: "u32"}
	//
	assign := &ast.Assignment{
		Target: &ast.Ident{Name: "count"},
		SrcOp:  ast.OpAddAssign,
		Value:  &ast.Raw{Text: "3"},
	}
	//
	stmt, err := buildAndHandle(t, s, assign)
	assertx.NoError(t, err)
	assertx.Equal(t, "count += 3;", stmt)
}

func Test_Simple_FloatTargetCastsRHS(t *testing.T) {
	s := newBitTestState()
	s.LocalVariables["speed"] = state.TypeInfo{BaseType: "f32"}
	//
	assign := &ast.Assignment{
		Target: &ast.Ident{Name: "speed"},
		SrcOp:  ast.OpAssign,
		Value:  &ast.Raw{Text: "10"},
	}
	//
	stmt, err := buildAndHandle(t, s, assign)
	assertx.NoError(t, err)
	assertx.Equal(t, "speed = (float)10;", stmt)
}
