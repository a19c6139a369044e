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

// This file implements spec.md §4.3's OVERFLOW_CLAMP handler: saturating
// compound arithmetic on a target declared `clamp`/`saturate`.
package handlers

import (
	"fmt"

	"github.com/jlaustill/cnext-codegen/pkg/gen/classify"
	gencontext "github.com/jlaustill/cnext-codegen/pkg/gen/context"
	"github.com/jlaustill/cnext-codegen/pkg/gen/expr"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

func init() {
	register(classify.KindOverflowClamp, handleOverflowClamp)
}

// handleOverflowClamp marks and calls the matching cnx_clamp_<op>_<type>
// helper for integer targets; floats fall through to native arithmetic
// since IEEE overflow-to-infinity is already the defined behavior. "/" and
// "%" have no clamp helper (ClampOpFor returns false for them), so they
// also fall through to native arithmetic, per spec.md §4.3.
func handleOverflowClamp(s *state.State, _ *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	name := ctx.ResolvedTarget
	//
	if name == "" {
		name = receiverName(s, ctx)
	}
	//
	arith := narrowedOp(ctx.COp)
	t := ctx.FirstIdTypeInfo
	//
	if t == nil || t.IsFloat() {
		return fmt.Sprintf("%s = %s %s %s;", name, name, arith, ctx.GeneratedValue), nil
	}
	//
	op, ok := state.ClampOpFor(arith, t.BaseType)
	if !ok {
		return fmt.Sprintf("%s = %s %s %s;", name, name, arith, ctx.GeneratedValue), nil
	}
	//
	s.MarkClampOp(op)
	helper := "cnx_clamp_" + op.Name()
	//
	return fmt.Sprintf("%s = %s(%s, %s);", name, helper, name, ctx.GeneratedValue), nil
}
