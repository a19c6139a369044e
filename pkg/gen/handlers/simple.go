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

// This file implements spec.md §4.3's SIMPLE fallback: a plain scalar
// identifier with no special modifier, reached only once every more
// specific kind has failed to match.
package handlers

import (
	"fmt"

	"github.com/jlaustill/cnext-codegen/pkg/gen/classify"
	gencontext "github.com/jlaustill/cnext-codegen/pkg/gen/context"
	"github.com/jlaustill/cnext-codegen/pkg/gen/expr"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

func init() {
	register(classify.KindSimple, handleSimple)
}

// handleSimple expands MISRA 10.3's narrowing-cast requirement for
// sub-int-promotion-width compound arithmetic, casts an integer RHS onto a
// float target, and otherwise emits the compound/plain assignment as-is.
func handleSimple(s *state.State, _ *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	name := ctx.ResolvedTarget
	//
	if name == "" {
		name = receiverName(s, ctx)
	}
	//
	t := ctx.FirstIdTypeInfo
	//
	if ctx.IsCompound && t != nil && t.IsNarrow() {
		return fmt.Sprintf("%s = (%s)(%s %s %s);", name, t.CType(), name, narrowedOp(ctx.COp), ctx.GeneratedValue), nil
	}
	//
	// A float target's RHS is always wrapped in an explicit (float)/(double)
	// cast. The Context Builder does not carry the RHS's own resolved type
	// here, so this is applied unconditionally rather than only when the
	// RHS is integer-typed — harmless when the RHS is already float (a
	// cast to its own type), and exactly what spec.md's integer-to-float
	// rule requires otherwise.
	value := ctx.GeneratedValue
	//
	if t != nil && t.IsFloat() {
		value = fmt.Sprintf("(%s)%s", t.CType(), value)
	}
	//
	return fmt.Sprintf("%s %s %s;", name, ctx.COp, value), nil
}

// narrowedOp strips the trailing "=" from a compound operator to recover
// the plain binary operator for the expanded `target = (T)(target op
// value);` form.
func narrowedOp(cOp string) string {
	if len(cOp) > 1 && cOp[len(cOp)-1] == '=' {
		return cOp[:len(cOp)-1]
	}
	//
	return cOp
}
