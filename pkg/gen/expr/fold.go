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
	"strconv"
	"strings"

	"github.com/jlaustill/cnext-codegen/pkg/ast"
)

// TryFoldInt attempts to evaluate n as a compile-time-constant integer
// expression in 64-bit two's complement, per spec.md §8's round-trip law
// ("Constant folding ... must be equal to evaluating the integer expression
// in 64-bit two's complement"). It is also used by handlers needing a
// compile-time constant (slice offset/length, bitmap literal overflow,
// array bounds). A pre-rendered *ast.Raw fragment folds when its text is a
// plain integer.
func TryFoldInt(n ast.Expr) (int64, bool) {
	switch v := n.(type) {
	case *ast.Raw:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v.Text), 0, 64)
		if err != nil {
			return 0, false
		}
		//
		return parsed, true
	case *ast.Literal:
		if v.Kind != "int" {
			return 0, false
		}
		//
		core, _ := splitIntSuffix(v.Text)
		core = strings.TrimSuffix(core, "U")
		core = strings.TrimSuffix(core, "u")
		//
		parsed, err := strconv.ParseInt(core, 0, 64)
		if err != nil {
			parsedU, errU := strconv.ParseUint(core, 0, 64)
			if errU != nil {
				return 0, false
			}
			//
			return int64(parsedU), true
		}
		//
		return parsed, true
	case *ast.Unary:
		val, ok := TryFoldInt(v.Operand)
		if !ok {
			return 0, false
		}
		//
		switch v.Op {
		case "-":
			return -val, true
		case "~":
			return ^val, true
		default:
			return 0, false
		}
	case *ast.Binary:
		lhs, ok := TryFoldInt(v.Left)
		if !ok {
			return 0, false
		}
		//
		rhs, ok := TryFoldInt(v.Right)
		if !ok {
			return 0, false
		}
		//
		switch v.Op {
		case "+":
			return lhs + rhs, true
		case "-":
			return lhs - rhs, true
		case "*":
			return lhs * rhs, true
		default:
			return 0, false
		}
	default:
		return 0, false
	}
}

// foldAdditiveOrMultiplicative folds n to a decimal literal string when
// every leaf of an additive/multiplicative chain is itself a foldable
// integer (spec.md §4.4's binary-expression constant folding).
func foldAdditiveOrMultiplicative(op string, lhs, rhs ast.Expr) (string, bool) {
	if op != "+" && op != "-" && op != "*" {
		return "", false
	}
	//
	l, lok := TryFoldInt(lhs)
	if !lok {
		return "", false
	}
	//
	r, rok := TryFoldInt(rhs)
	if !rok {
		return "", false
	}
	//
	switch op {
	case "+":
		return strconv.FormatInt(l+r, 10), true
	case "-":
		return strconv.FormatInt(l-r, 10), true
	default:
		return strconv.FormatInt(l*r, 10), true
	}
}
