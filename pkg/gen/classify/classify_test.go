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
package classify

import (
	"testing"

	"github.com/jlaustill/cnext-codegen/internal/assertx"
	"github.com/jlaustill/cnext-codegen/pkg/ast"
	gencontext "github.com/jlaustill/cnext-codegen/pkg/gen/context"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
	"github.com/jlaustill/cnext-codegen/pkg/symtab"
	"github.com/jlaustill/cnext-codegen/pkg/target"
)

func newTestState() *state.State {
	return state.New(symtab.New(), target.Default())
}

func buildCtx(t *testing.T, s *state.State, assign *ast.Assignment) *gencontext.AssignmentContext {
	t.Helper()
	//
	b := gencontext.New(s)
	ctx, err := b.Build(assign)
	assertx.NoError(t, err)
	//
	return ctx
}

func Test_Classify_Simple(t *testing.T) {
	s := newTestState()
	s.LocalVariables["count"] = state.TypeInfo{BaseType: "u32"}
	//
	ctx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Ident{Name: "count"},
		SrcOp:  ast.OpAssign,
		Value:  &ast.Raw{Text: "1"},
	})
	//
	assertx.Equal(t, KindSimple, Classify(s, ctx))
}

func Test_Classify_AtomicBeatsEverything(t *testing.T) {
	s := newTestState()
	s.LocalVariables["tick"] = state.TypeInfo{BaseType: "u32", IsAtomic: true}
	//
	ctx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Ident{Name: "tick"},
		SrcOp:  ast.OpAddAssign,
		Value:  &ast.Raw{Text: "1"},
	})
	//
	assertx.Equal(t, KindAtomicRMW, Classify(s, ctx))
}

func Test_Classify_AtomicRequiresCompound(t *testing.T) {
	s := newTestState()
	s.LocalVariables["tick"] = state.TypeInfo{BaseType: "u32", IsAtomic: true}
	//
	ctx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Ident{Name: "tick"},
		SrcOp:  ast.OpAssign,
		Value:  &ast.Raw{Text: "0"},
	})
	//
	assertx.True(t, Classify(s, ctx) != KindAtomicRMW)
}

func Test_Classify_ClampOnArithmeticOp(t *testing.T) {
	s := newTestState()
	s.LocalVariables["level"] = state.TypeInfo{BaseType: "u8", IsClamped: true}
	//
	ctx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Ident{Name: "level"},
		SrcOp:  ast.OpAddAssign,
		Value:  &ast.Raw{Text: "10"},
	})
	//
	assertx.Equal(t, KindOverflowClamp, Classify(s, ctx))
}

func Test_Classify_ClampAppliedToDivAndMod(t *testing.T) {
	s := newTestState()
	s.LocalVariables["level"] = state.TypeInfo{BaseType: "u8", IsClamped: true}
	//
	divCtx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Ident{Name: "level"},
		SrcOp:  ast.OpDivAssign,
		Value:  &ast.Raw{Text: "5"},
	})
	assertx.Equal(t, KindOverflowClamp, Classify(s, divCtx))
	//
	modCtx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Ident{Name: "level"},
		SrcOp:  ast.OpModAssign,
		Value:  &ast.Raw{Text: "5"},
	})
	assertx.Equal(t, KindOverflowClamp, Classify(s, modCtx))
}

func Test_Classify_SafeDivCallDetected(t *testing.T) {
	s := newTestState()
	s.LocalVariables["result"] = state.TypeInfo{BaseType: "u32"}
	//
	ctx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Ident{Name: "result"},
		SrcOp:  ast.OpAssign,
		Value: &ast.Postfix{
			Primary: &ast.Ident{Name: "safe_div"},
			Ops: []ast.PostfixOp{
				{Call: &ast.CallOp{Args: []ast.Expr{&ast.Ident{Name: "a"}, &ast.Ident{Name: "b"}}}},
			},
		},
	})
	assertx.Equal(t, KindSafeDivCall, Classify(s, ctx))
}

func Test_Classify_SafeDivCallNotDetectedWhenCompound(t *testing.T) {
	s := newTestState()
	s.LocalVariables["result"] = state.TypeInfo{BaseType: "u32"}
	//
	ctx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Ident{Name: "result"},
		SrcOp:  ast.OpAddAssign,
		Value: &ast.Postfix{
			Primary: &ast.Ident{Name: "safe_div"},
			Ops: []ast.PostfixOp{
				{Call: &ast.CallOp{Args: []ast.Expr{&ast.Ident{Name: "a"}, &ast.Ident{Name: "b"}}}},
			},
		},
	})
	assertx.True(t, Classify(s, ctx) != KindSafeDivCall)
}

func Test_Classify_SafeDivCallNotDetectedForOrdinaryCall(t *testing.T) {
	s := newTestState()
	s.LocalVariables["result"] = state.TypeInfo{BaseType: "u32"}
	//
	ctx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Ident{Name: "result"},
		SrcOp:  ast.OpAssign,
		Value: &ast.Postfix{
			Primary: &ast.Ident{Name: "compute"},
			Ops: []ast.PostfixOp{
				{Call: &ast.CallOp{Args: []ast.Expr{&ast.Ident{Name: "a"}}}},
			},
		},
	})
	assertx.True(t, Classify(s, ctx) != KindSafeDivCall)
}

func Test_Classify_ClampNotAppliedToShift(t *testing.T) {
	s := newTestState()
	s.LocalVariables["level"] = state.TypeInfo{BaseType: "u8", IsClamped: true}
	//
	ctx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Ident{Name: "level"},
		SrcOp:  ast.OpShlAssign,
		Value:  &ast.Raw{Text: "1"},
	})
	//
	assertx.True(t, Classify(s, ctx) != KindOverflowClamp)
}

func Test_Classify_ThisMember(t *testing.T) {
	s := newTestState()
	s.CurrentScope = "Motor"
	//
	ctx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Postfix{
			Primary: &ast.This{},
			Ops:     []ast.PostfixOp{{Member: &ast.MemberOp{Name: "speed"}}},
		},
		SrcOp: ast.OpAssign,
		Value: &ast.Raw{Text: "0"},
	})
	//
	assertx.Equal(t, KindThisMember, Classify(s, ctx))
}

func Test_Classify_GlobalMember(t *testing.T) {
	s := newTestState()
	//
	ctx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Postfix{
			Primary: &ast.Global{},
			Ops:     []ast.PostfixOp{{Member: &ast.MemberOp{Name: "counter"}}},
		},
		SrcOp: ast.OpAssign,
		Value: &ast.Raw{Text: "0"},
	})
	//
	assertx.Equal(t, KindGlobalMember, Classify(s, ctx))
}

func Test_Classify_MemberChain(t *testing.T) {
	s := newTestState()
	s.LocalVariables["motor"] = state.TypeInfo{BaseType: "Motor"}
	s.Symbols.KnownStructs["Motor"] = true
	s.Symbols.StructFields["Motor"] = map[string]string{"speed": "u32"}
	//
	ctx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Postfix{
			Primary: &ast.Ident{Name: "motor"},
			Ops:     []ast.PostfixOp{{Member: &ast.MemberOp{Name: "speed"}}},
		},
		SrcOp: ast.OpAssign,
		Value: &ast.Raw{Text: "0"},
	})
	//
	assertx.Equal(t, KindMemberChain, Classify(s, ctx))
}

func Test_Classify_ArrayElement(t *testing.T) {
	s := newTestState()
	s.LocalVariables["buf"] = state.TypeInfo{BaseType: "u8", IsArray: true, ArrayDimensions: []uint{16}}
	s.LocalArrays["buf"] = true
	//
	ctx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Postfix{
			Primary: &ast.Ident{Name: "buf"},
			Ops: []ast.PostfixOp{{Subscript: &ast.SubscriptOp{
				Exprs: []ast.Expr{&ast.Raw{Text: "2"}},
			}}},
		},
		SrcOp: ast.OpAssign,
		Value: &ast.Raw{Text: "1"},
	})
	//
	assertx.Equal(t, KindArrayElement, Classify(s, ctx))
}

func Test_Classify_ArraySlice(t *testing.T) {
	s := newTestState()
	s.LocalVariables["buf"] = state.TypeInfo{BaseType: "u8", IsArray: true, ArrayDimensions: []uint{16}}
	s.LocalArrays["buf"] = true
	//
	ctx := buildCtx(t, s, &ast.Assignment{
		Target: &ast.Postfix{
			Primary: &ast.Ident{Name: "buf"},
			Ops: []ast.PostfixOp{{Subscript: &ast.SubscriptOp{
				Exprs: []ast.Expr{&ast.Raw{Text: "0"}, &ast.Raw{Text: "4"}},
			}}},
		},
		SrcOp: ast.OpAssign,
		Value: &ast.Raw{Text: "other"},
	})
	//
	assertx.Equal(t, KindArraySlice, Classify(s, ctx))
}
