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
package context

import (
	"testing"

	"github.com/jlaustill/cnext-codegen/internal/assertx"
	"github.com/jlaustill/cnext-codegen/pkg/ast"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
	"github.com/jlaustill/cnext-codegen/pkg/symtab"
	"github.com/jlaustill/cnext-codegen/pkg/target"
)

func newTestState() *state.State {
	return state.New(symtab.New(), target.Default())
}

func Test_Build_SimpleIdentifier(t *testing.T) {
	s := newTestState()
	s.LocalVariables["speed"] = state.TypeInfo{BaseType: "u32"}
	//
	b := New(s)
	assign := &ast.Assignment{
		Target: &ast.Ident{Name: "speed"},
		SrcOp:  ast.OpAssign,
		Value:  &ast.Raw{Text: "5"},
	}
	//
	ctx, err := b.Build(assign)
	assertx.NoError(t, err)
	assertx.Equal(t, []string{"speed"}, ctx.Identifiers)
	assertx.True(t, ctx.IsSimpleIdentifier)
	assertx.Equal(t, "=", ctx.COp)
	assertx.True(t, !ctx.IsCompound)
	assertx.Equal(t, "5", ctx.GeneratedValue)
	assertx.Equal(t, "speed", ctx.ResolvedTarget)
}

func Test_Build_CompoundOp(t *testing.T) {
	s := newTestState()
	s.LocalVariables["count"] = state.TypeInfo{BaseType: "i32"}
	//
	b := New(s)
	assign := &ast.Assignment{
		Target: &ast.Ident{Name: "count"},
		SrcOp:  ast.OpAddAssign,
		Value:  &ast.Raw{Text: "1"},
	}
	//
	ctx, err := b.Build(assign)
	assertx.NoError(t, err)
	assertx.Equal(t, "+=", ctx.COp)
	assertx.True(t, ctx.IsCompound)
}

func Test_Build_ThisMember(t *testing.T) {
	s := newTestState()
	s.CurrentScope = "Motor"
	//
	b := New(s)
	assign := &ast.Assignment{
		Target: &ast.Postfix{
			Primary: &ast.This{},
			Ops:     []ast.PostfixOp{{Member: &ast.MemberOp{Name: "speed"}}},
		},
		SrcOp: ast.OpAssign,
		Value: &ast.Raw{Text: "0"},
	}
	//
	ctx, err := b.Build(assign)
	assertx.NoError(t, err)
	assertx.True(t, ctx.HasThis)
	assertx.Equal(t, []string{"speed"}, ctx.Identifiers)
	assertx.True(t, ctx.IsSimpleThisAccess)
}

func Test_Build_UnknownOperatorFallsBackToAssign(t *testing.T) {
	s := newTestState()
	b := New(s)
	assign := &ast.Assignment{
		Target: &ast.Ident{Name: "x"},
		SrcOp:  ast.Op("???"),
		Value:  &ast.Raw{Text: "1"},
	}
	//
	ctx, err := b.Build(assign)
	assertx.NoError(t, err)
	assertx.Equal(t, "=", ctx.COp)
	assertx.True(t, !ctx.IsCompound)
}

func Test_Build_LastSubscriptCountTracksBitIndex(t *testing.T) {
	s := newTestState()
	s.LocalVariables["flags"] = state.TypeInfo{BaseType: "u8"}
	//
	b := New(s)
	assign := &ast.Assignment{
		Target: &ast.Postfix{
			Primary: &ast.Ident{Name: "flags"},
			Ops: []ast.PostfixOp{{Subscript: &ast.SubscriptOp{
				Exprs: []ast.Expr{&ast.Raw{Text: "3"}},
			}}},
		},
		SrcOp: ast.OpAssign,
		Value: &ast.Raw{Text: "true"},
	}
	//
	ctx, err := b.Build(assign)
	assertx.NoError(t, err)
	assertx.Equal(t, 1, ctx.LastSubscriptCount)
	assertx.Equal(t, 1, len(ctx.Subscripts))
}
