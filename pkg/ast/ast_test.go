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
package ast

import (
	"testing"

	"github.com/jlaustill/cnext-codegen/internal/assertx"
	"github.com/jlaustill/cnext-codegen/pkg/source"
)

func Test_BaseNode_SpanReturnsEmbeddedSpan(t *testing.T) {
	sp := source.NewSpan(3, 7)
	n := BaseNode{Sp: sp}
	//
	assertx.Equal(t, sp, n.Span())
}

func Test_ConcreteNodeTypesSatisfyExprInterface(t *testing.T) {
	var exprs = []Expr{
		&Ident{Name: "x"},
		&This{},
		&Global{},
		&Literal{Kind: "int", Text: "1"},
		&Unary{Op: "-", Operand: &Ident{Name: "x"}},
		&Binary{Op: "+", Left: &Ident{Name: "a"}, Right: &Ident{Name: "b"}},
		&Postfix{Primary: &Ident{Name: "a"}},
		&Raw{Text: "42"},
	}
	//
	assertx.Equal(t, 8, len(exprs))
}

func Test_Ident_SpanAndName(t *testing.T) {
	i := &Ident{BaseNode: BaseNode{Sp: source.NewSpan(0, 1)}, Name: "speed"}
	assertx.Equal(t, "speed", i.Name)
	assertx.Equal(t, source.NewSpan(0, 1), i.Span())
}

func Test_PostfixOp_ExactlyOneFieldSetPerOperation(t *testing.T) {
	member := PostfixOp{Member: &MemberOp{Name: "speed"}}
	assertx.True(t, member.Member != nil)
	assertx.True(t, member.Subscript == nil)
	assertx.True(t, member.Call == nil)
	//
	subscript := PostfixOp{Subscript: &SubscriptOp{Exprs: []Expr{&Literal{Kind: "int", Text: "0"}}}}
	assertx.True(t, subscript.Subscript != nil)
	assertx.Equal(t, 1, len(subscript.Subscript.Exprs))
	//
	call := PostfixOp{Call: &CallOp{Args: []Expr{&Ident{Name: "x"}}}}
	assertx.True(t, call.Call != nil)
	assertx.Equal(t, 1, len(call.Call.Args))
}

func Test_Assignment_CarriesTargetOpAndValue(t *testing.T) {
	a := Assignment{
		Target: &Ident{Name: "count"},
		SrcOp:  OpAddAssign,
		Value:  &Literal{Kind: "int", Text: "1"},
	}
	//
	ident, ok := a.Target.(*Ident)
	assertx.True(t, ok)
	assertx.Equal(t, "count", ident.Name)
	assertx.Equal(t, OpAddAssign, a.SrcOp)
}

func Test_Op_Constants(t *testing.T) {
	assertx.Equal(t, Op("<-"), OpAssign)
	assertx.Equal(t, Op("+<-"), OpAddAssign)
	assertx.Equal(t, Op("-<-"), OpSubAssign)
	assertx.Equal(t, Op("*<-"), OpMulAssign)
	assertx.Equal(t, Op("/<-"), OpDivAssign)
	assertx.Equal(t, Op("%<-"), OpModAssign)
	assertx.Equal(t, Op("&<-"), OpAndAssign)
	assertx.Equal(t, Op("|<-"), OpOrAssign)
	assertx.Equal(t, Op("^<-"), OpXorAssign)
	assertx.Equal(t, Op("<<<-"), OpShlAssign)
	assertx.Equal(t, Op(">><-"), OpShrAssign)
}
