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
	"github.com/jlaustill/cnext-codegen/pkg/symtab"
	"github.com/jlaustill/cnext-codegen/pkg/target"
)

func newExprTestState() *state.State {
	return state.New(symtab.New(), target.Default())
}

func Test_Literal_Bool(t *testing.T) {
	s := newExprTestState()
	e := New(s)
	//
	out, err := e.Emit(&ast.Literal{Kind: "bool", Text: "true"})
	assertx.NoError(t, err)
	assertx.Equal(t, "true", out)
	assertx.True(t, s.NeedsInclude(state.IncludeStdbool))
}

func Test_Literal_FloatF32SuffixBecomesF(t *testing.T) {
	e := New(newExprTestState())
	//
	out, err := e.Emit(&ast.Literal{Kind: "float", Text: "1.5f32"})
	assertx.NoError(t, err)
	assertx.Equal(t, "1.5f", out)
}

func Test_Literal_FloatF64SuffixStripped(t *testing.T) {
	e := New(newExprTestState())
	//
	out, err := e.Emit(&ast.Literal{Kind: "float", Text: "1.5f64"})
	assertx.NoError(t, err)
	assertx.Equal(t, "1.5", out)
}

func Test_Literal_IntU64SuffixBecomesULL(t *testing.T) {
	e := New(newExprTestState())
	//
	out, err := e.Emit(&ast.Literal{Kind: "int", Text: "10u64"})
	assertx.NoError(t, err)
	assertx.Equal(t, "10ULL", out)
}

func Test_Literal_IntI64SuffixBecomesLL(t *testing.T) {
	e := New(newExprTestState())
	//
	out, err := e.Emit(&ast.Literal{Kind: "int", Text: "10i64"})
	assertx.NoError(t, err)
	assertx.Equal(t, "10LL", out)
}

func Test_Literal_IntSubWidthSuffixStripped(t *testing.T) {
	e := New(newExprTestState())
	//
	out, err := e.Emit(&ast.Literal{Kind: "int", Text: "10u8"})
	assertx.NoError(t, err)
	assertx.Equal(t, "10", out)
}

func Test_Literal_IntNoSuffixUnsignedExpectedTypeAppendsU(t *testing.T) {
	s := newExprTestState()
	s.ExpectedType = "u32"
	e := New(s)
	//
	out, err := e.Emit(&ast.Literal{Kind: "int", Text: "10"})
	assertx.NoError(t, err)
	assertx.Equal(t, "10U", out)
}

func Test_Literal_IntNoSuffixU64ExpectedTypeAppendsULL(t *testing.T) {
	s := newExprTestState()
	s.ExpectedType = "u64"
	e := New(s)
	//
	out, err := e.Emit(&ast.Literal{Kind: "int", Text: "10"})
	assertx.NoError(t, err)
	assertx.Equal(t, "10ULL", out)
}

func Test_Literal_IntNoSuffixSignedExpectedTypeUnchanged(t *testing.T) {
	s := newExprTestState()
	s.ExpectedType = "i32"
	e := New(s)
	//
	out, err := e.Emit(&ast.Literal{Kind: "int", Text: "10"})
	assertx.NoError(t, err)
	assertx.Equal(t, "10", out)
}

func Test_Literal_String(t *testing.T) {
	e := New(newExprTestState())
	//
	out, err := e.Emit(&ast.Literal{Kind: "string", Text: `"hello"`})
	assertx.NoError(t, err)
	assertx.Equal(t, `"hello"`, out)
}
