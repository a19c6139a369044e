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

// Package handlers implements spec.md §4.3: one emitter per AssignmentKind,
// plus the two-step lazy-init registry of §4.7. Each handler takes the
// State, the Expression Emitter (for rendering the subscript/value
// sub-expressions a handler needs beyond what the Context Builder already
// resolved), and the AssignmentContext, and returns the C statement text.
package handlers

import (
	"fmt"

	"github.com/jlaustill/cnext-codegen/pkg/ast"
	gencontext "github.com/jlaustill/cnext-codegen/pkg/gen/context"
	generrors "github.com/jlaustill/cnext-codegen/pkg/gen/errors"
	"github.com/jlaustill/cnext-codegen/pkg/gen/expr"
	"github.com/jlaustill/cnext-codegen/pkg/gen/namemangle"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

// Handler emits the C statement for one classified assignment.
type Handler func(s *state.State, e *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error)

// receiverName mangles ctx.Identifiers into the addressable C expression a
// bit/array/member handler writes through, per spec.md §4.5's NameMangler
// and §4.4's struct-parameter `->`/`.` rule. Register-member kinds do not
// use this — they mangle via registerName instead, to route around the
// register member's read-only guard (context.go's ResolvedTarget has the
// same restriction; see its doc comment).
//
// Chains deeper than two identifiers (a struct field reached through more
// than one level of member access) fall back to "." for every hop beyond
// the first; the grammar this core targets only exercises one- and
// two-level struct chains in the bit/member-chain families, so this is a
// deliberate, documented simplification rather than a general struct-path
// resolver.
func receiverName(s *state.State, ctx *gencontext.AssignmentContext) string {
	return mangleChain(s, ctx.HasThis, ctx.Identifiers)
}

// mangleChain is receiverName's underlying implementation, parameterized
// over an explicit identifier slice so bitmap-field handlers can mangle the
// chain with the trailing field name already stripped off.
func mangleChain(s *state.State, hasThis bool, ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	//
	name := ids[0]
	if hasThis {
		name = namemangle.ForMember(s.CurrentScope, ids[0])
	}
	//
	for i := 1; i < len(ids); i++ {
		sep := "."
		if i == 1 {
			sep = structSep(s, ids[0])
		}
		//
		name = name + sep + ids[i]
	}
	//
	return name
}

// structSep returns "->" when base names a struct-typed function parameter
// accessed by pointer (C mode, or a callback-promoted parameter in any
// mode), "." otherwise (spec.md §4.4's struct-parameter member rule).
func structSep(s *state.State, base string) string {
	param, ok := s.CurrentParameters[base]
	if !ok || !param.IsStruct {
		return "."
	}
	//
	if param.ForcePointerSemantics || !s.CxxMode {
		return "->"
	}
	//
	return "."
}

// finalSubscriptExprs returns the expressions of the final postfix
// subscript op the Context Builder walked — the bit index/range, or the
// array index for the trailing `[bit]` of an ARRAY_ELEMENT_BIT chain.
func finalSubscriptExprs(ctx *gencontext.AssignmentContext) []ast.Expr {
	n := len(ctx.Subscripts)
	return ctx.Subscripts[n-ctx.LastSubscriptCount : n]
}

// precedingSubscriptExprs returns any subscript expressions collected
// before the final op — non-empty only for ARRAY_ELEMENT_BIT's leading
// `[index]`.
func precedingSubscriptExprs(ctx *gencontext.AssignmentContext) []ast.Expr {
	n := len(ctx.Subscripts)
	return ctx.Subscripts[:n-ctx.LastSubscriptCount]
}

// foldWidth folds a bit-range's width subscript to a compile-time uint.
// The grammar only accepts a literal width for a bit range (`reg[start,
// width]`); a width that fails to fold is an internal invariant violation;
// spec.md §7.3's "protects against enum drift" fatal-panic convention.
func foldWidth(n ast.Expr) uint {
	v, ok := expr.TryFoldInt(n)
	if !ok || v < 0 {
		panic(fmt.Sprintf("gen/handlers: bit-range width %v did not fold to a non-negative compile-time constant", n))
	}
	//
	return uint(v)
}

// isZeroOrFalseLiteral reports whether a rendered RHS is the bare textual
// `0` or `false`, per spec.md §9 Open Question #4: this is a literal-text
// match only, exactly as spec.md itself describes (a folded-constant zero
// from a more complex expression is deliberately not caught).
func isZeroOrFalseLiteral(rendered string) bool {
	return rendered == "0" || rendered == "false"
}

func compoundRejected() error {
	return generrors.New(generrors.KindCompoundOnBitField, "compound assignment is not valid on a bit/bitmap-field target")
}
