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

// Package expr implements the Expression Emitter of spec.md §4.4: the
// recursive emitter used both for right-hand sides and for arbitrary read
// contexts (postfix chains, property pseudo-fields). Grounded on
// Consensys-go-corset's pkg/asm/io/macro/expr (an Expr interface with
// Eval/Polynomial/String), generalized from evaluating-and-stringifying a
// polynomial term to rendering MISRA-oriented C text.
package expr

import (
	"fmt"

	"github.com/jlaustill/cnext-codegen/pkg/ast"
	generrors "github.com/jlaustill/cnext-codegen/pkg/gen/errors"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

// Emitter recursively renders ast.Expr nodes to C text against a *state.State.
type Emitter struct {
	S *state.State
}

// New constructs an Emitter bound to the given generation state.
func New(s *state.State) *Emitter {
	return &Emitter{S: s}
}

// Emit renders expr as a C expression string.
func (e *Emitter) Emit(expr ast.Expr) (string, error) {
	switch n := expr.(type) {
	case *ast.Raw:
		return n.Text, nil
	case *ast.Literal:
		return e.emitLiteral(n)
	case *ast.Unary:
		return e.emitUnary(n)
	case *ast.Binary:
		return e.emitBinary(n)
	case *ast.Ident:
		return e.emitIdentRead(n)
	case *ast.This:
		return sentinelThisScope, nil
	case *ast.Global:
		return sentinelGlobalPrefix, nil
	case *ast.Postfix:
		return e.emitPostfix(n)
	default:
		panic(fmt.Sprintf("gen/expr: unreachable expression node %T", expr))
	}
}

// The two bootstrap sentinels spec.md §4.4 documents: the primary emitter
// returns these for the bare `this`/`global` keywords, and the postfix fold
// rewrites them away on the very next member op.
const (
	sentinelGlobalPrefix = "__GLOBAL_PREFIX__"
	sentinelThisScope    = "__THIS_SCOPE__"
)

func (e *Emitter) emitIdentRead(n *ast.Ident) (string, error) {
	if t, ok := e.S.LocalVariables[n.Name]; ok && t.IsBitmap {
		// A bare bitmap-typed identifier read is just its backing integer;
		// field access happens via the postfix chain, not here.
		return n.Name, nil
	}
	//
	return n.Name, nil
}

// undefinedPropertyError constructs the typed error for a property
// pseudo-field with no defined meaning on the resolved receiver type,
// spec.md §9 Open Question #3 ("No args.byte_length is defined").
func undefinedPropertyError(name string) error {
	return generrors.New(generrors.KindUndefinedProperty, "undefined property .%s", name)
}
