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
	generrors "github.com/jlaustill/cnext-codegen/pkg/gen/errors"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
	"github.com/jlaustill/cnext-codegen/pkg/gen/strutil"
)

// cOperator maps the source-level equality operator onto its C spelling,
// per spec.md §6's operator translation table; every other operator passes
// through unchanged.
func cOperator(op string) string {
	switch op {
	case "=":
		return "=="
	default:
		return op
	}
}

func (e *Emitter) emitBinary(n *ast.Binary) (string, error) {
	if folded, ok := foldAdditiveOrMultiplicative(n.Op, n.Left, n.Right); ok {
		return folded, nil
	}
	//
	if err := e.validateEnumComparison(n); err != nil {
		return "", err
	}
	//
	if eq, ok, err := e.tryStringEquals(n); ok {
		return eq, err
	}
	//
	lhs, err := e.Emit(n.Left)
	if err != nil {
		return "", err
	}
	//
	rhs, err := e.Emit(n.Right)
	if err != nil {
		return "", err
	}
	//
	return fmt.Sprintf("%s %s %s", lhs, cOperator(n.Op), rhs), nil
}

// tryStringEquals renders `strcmp(a,b) == 0` / `!= 0` when both operands of
// an equality comparison are string-typed (spec.md §4.4).
func (e *Emitter) tryStringEquals(n *ast.Binary) (string, bool, error) {
	if n.Op != "=" && n.Op != "!=" {
		return "", false, nil
	}
	//
	lt, rt := e.promotedType(n.Left), e.promotedType(n.Right)
	if lt == nil || rt == nil || !lt.IsString || !rt.IsString {
		return "", false, nil
	}
	//
	lhs, err := e.Emit(n.Left)
	if err != nil {
		return "", true, err
	}
	//
	rhs, err := e.Emit(n.Right)
	if err != nil {
		return "", true, err
	}
	//
	e.S.MarkInclude(state.IncludeString)
	return strutil.StringEquals(lhs, rhs, n.Op == "!="), true, nil
}

// validateEnumComparison rejects comparing two differently-typed enums,
// per spec.md §7.2. A comparison where one side is an untyped integer
// constant, or where either side's type could not be inferred by the
// best-effort leaf-driven promotedType helper, is permitted — full type
// inference is deliberately out of scope (Design Notes, spec.md §9).
func (e *Emitter) validateEnumComparison(n *ast.Binary) error {
	if n.Op != "=" && n.Op != "!=" {
		return nil
	}
	//
	lt, rt := e.promotedType(n.Left), e.promotedType(n.Right)
	if lt == nil || rt == nil || !lt.IsEnum || !rt.IsEnum {
		return nil
	}
	//
	if lt.EnumTypeName != rt.EnumTypeName {
		return generrors.New(generrors.KindEnumComparisonInvalid,
			"cannot compare enum %q with enum %q", lt.EnumTypeName, rt.EnumTypeName)
	}
	//
	return nil
}
