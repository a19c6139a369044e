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

// This file implements spec.md §4.3's member/array catch-all family:
// GLOBAL_MEMBER, GLOBAL_ARRAY, THIS_MEMBER, THIS_ARRAY, MEMBER_CHAIN.
package handlers

import (
	"github.com/jlaustill/cnext-codegen/pkg/gen/classify"
	gencontext "github.com/jlaustill/cnext-codegen/pkg/gen/context"
	"github.com/jlaustill/cnext-codegen/pkg/gen/expr"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

func init() {
	register(classify.KindGlobalMember, handleMemberChain)
	register(classify.KindGlobalArray, handleMemberChain)
	register(classify.KindThisMember, handleMemberChain)
	register(classify.KindThisArray, handleMemberChain)
	register(classify.KindMemberChain, handleMemberChain)
}

// handleMemberChain is spec.md §4.3's MEMBER_CHAIN catch-all, reused for
// every remaining plain member/array shape. ctx.LastSubscriptCount > 0
// means the chain carries trailing subscripts; the Classifier dispatches
// any bit/range/bitmap-specific shape to its own kind before ever reaching
// here, so a remaining subscript at this point is an ordinary array index
// already folded into ctx.ResolvedTarget by the Expression Emitter's
// postfix walk over the target, not a bit access this handler needs to
// re-render itself.
func handleMemberChain(s *state.State, _ *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	name := ctx.ResolvedTarget
	//
	if name == "" {
		name = receiverName(s, ctx)
	}
	//
	return name + " " + ctx.COp + " " + ctx.GeneratedValue + ";", nil
}
