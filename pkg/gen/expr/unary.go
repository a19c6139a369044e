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
	"fmt"

	"github.com/jlaustill/cnext-codegen/pkg/ast"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

func (e *Emitter) emitUnary(n *ast.Unary) (string, error) {
	// Special-cased minimal-integer literals, which C cannot represent as a
	// plain negated literal without triggering undefined/implementation
	// behavior around INT_MIN negation (spec.md §4.4).
	if n.Op == "-" {
		if lit, ok := n.Operand.(*ast.Literal); ok && lit.Kind == "int" {
			switch lit.Text {
			case "2147483648":
				e.S.MarkInclude(state.IncludeLimits)
				return "(int32_t)INT32_MIN", nil
			case "9223372036854775808":
				e.S.MarkInclude(state.IncludeLimits)
				return "(int64_t)INT64_MIN", nil
			}
		}
	}
	//
	operand, err := e.Emit(n.Operand)
	if err != nil {
		return "", err
	}
	//
	switch n.Op {
	case "!":
		return fmt.Sprintf("!%s", operand), nil
	case "-":
		return fmt.Sprintf("-%s", operand), nil
	case "&":
		return fmt.Sprintf("&%s", operand), nil
	case "~":
		return e.emitBitwiseNot(n.Operand, operand), nil
	default:
		panic(fmt.Sprintf("gen/expr: unreachable unary operator %q", n.Op))
	}
}

// emitBitwiseNot wraps `~expr` in a narrowing cast back to the operand's
// declared type when that type is unsigned and narrower than int, since C's
// usual arithmetic conversions promote it to (signed) int first (spec.md
// §4.4: "wraps in a narrowing cast to preserve the operand's type under
// promotion").
func (e *Emitter) emitBitwiseNot(operandNode ast.Expr, operand string) string {
	t := e.promotedType(operandNode)
	if t == nil || !t.IsUnsigned() || !t.IsNarrow() {
		return fmt.Sprintf("~%s", operand)
	}
	//
	return fmt.Sprintf("(%s)(~%s)", t.CType(), operand)
}
