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

// This file implements spec.md §4.6's safe_div/safe_mod whole-statement
// rewrite: `result <- safe_div(a, b);` becomes a call to the typed
// cnx_safe_div_<type>/cnx_safe_mod_<type> helper, threading &result as the
// helper's first argument.
package handlers

import (
	"fmt"

	"github.com/jlaustill/cnext-codegen/pkg/ast"
	"github.com/jlaustill/cnext-codegen/pkg/gen/classify"
	gencontext "github.com/jlaustill/cnext-codegen/pkg/gen/context"
	generrors "github.com/jlaustill/cnext-codegen/pkg/gen/errors"
	"github.com/jlaustill/cnext-codegen/pkg/gen/expr"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

func init() {
	register(classify.KindSafeDivCall, handleSafeDivCall)
}

func handleSafeDivCall(s *state.State, e *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	name := ctx.ResolvedTarget
	if name == "" {
		name = receiverName(s, ctx)
	}
	//
	call := ctx.ValueCtx.(*ast.Postfix)
	fnName := call.Primary.(*ast.Ident).Name
	args := call.Ops[0].Call.Args
	//
	if len(args) != 2 {
		return "", generrors.New(generrors.KindIncompatibleArgument,
			"%s expects exactly 2 arguments, got %d", fnName, len(args))
	}
	//
	t := ctx.FirstIdTypeInfo
	if t == nil {
		return "", generrors.New(generrors.KindIncompatibleArgument,
			"%s target %q has no known type", fnName, name)
	}
	//
	op, ok := state.SafeDivOpFor(fnName, t.BaseType)
	if !ok {
		return "", generrors.New(generrors.KindIncompatibleArgument,
			"%s has no helper for type %q", fnName, t.BaseType)
	}
	//
	a, err := e.Emit(args[0])
	if err != nil {
		return "", err
	}
	//
	b, err := e.Emit(args[1])
	if err != nil {
		return "", err
	}
	//
	s.MarkSafeDivOp(op)
	//
	return fmt.Sprintf("%s(&%s, %s, %s);", op.Name(), name, a, b), nil
}
