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

// This file implements spec.md §4.3's fixed-capacity string family:
// STRING_SIMPLE, STRING_THIS_MEMBER, STRING_GLOBAL, STRING_STRUCT_FIELD,
// STRING_ARRAY_ELEMENT, STRING_STRUCT_ARRAY_ELEMENT.
package handlers

import (
	"github.com/jlaustill/cnext-codegen/pkg/gen/classify"
	gencontext "github.com/jlaustill/cnext-codegen/pkg/gen/context"
	"github.com/jlaustill/cnext-codegen/pkg/gen/expr"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
	"github.com/jlaustill/cnext-codegen/pkg/gen/strutil"
)

func init() {
	register(classify.KindStringSimple, handleString)
	register(classify.KindStringThisMember, handleString)
	register(classify.KindStringGlobal, handleString)
	register(classify.KindStringStructField, handleString)
	register(classify.KindStringArrayElement, handleString)
	register(classify.KindStringStructArrayElement, handleString)
}

// handleString covers every STRING_* kind uniformly: every shape shares the
// same bounded-copy template, differing only in how the receiver name is
// built. Strings are never register members, so ctx.ResolvedTarget (the
// Expression Emitter's ordinary postfix walk over the full target,
// subscripts included) is always populated and already the right text to
// write through.
func handleString(s *state.State, _ *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	if ctx.IsCompound {
		return "", compoundRejected()
	}
	//
	capacity := stringCapacity(ctx)
	name := ctx.ResolvedTarget
	//
	if name == "" {
		name = receiverName(s, ctx)
	}
	//
	s.MarkInclude(state.IncludeString)
	//
	return strutil.CopyTemplate(name, ctx.GeneratedValue, capacity), nil
}

func stringCapacity(ctx *gencontext.AssignmentContext) uint {
	if ctx.FirstIdTypeInfo != nil && ctx.FirstIdTypeInfo.IsString {
		return ctx.FirstIdTypeInfo.StringCapacity
	}
	//
	return 0
}
