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
	"strings"

	"github.com/jlaustill/cnext-codegen/pkg/ast"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

// promotedType is a cheap, leaf-driven "type of this subexpression"
// inference, synthesized from identifiers and literals rather than
// threading full type inference through the emitter, per the Design Notes'
// recommendation (spec.md §9). It is good enough for MISRA narrowing-cast
// decisions and is never used to reject a program outright.
func (e *Emitter) promotedType(n ast.Expr) *state.TypeInfo {
	switch v := n.(type) {
	case *ast.Ident:
		if t, ok := e.S.LocalVariables[v.Name]; ok {
			return &t
		}
		//
		return nil
	case *ast.Literal:
		switch v.Kind {
		case "int":
			_, suffix := splitIntSuffix(v.Text)
			if suffix == "" {
				return nil
			}
			//
			return &state.TypeInfo{BaseType: suffix, BitWidth: bitWidthOf(suffix)}
		case "float":
			if strings.HasSuffix(v.Text, "f32") {
				return &state.TypeInfo{BaseType: "f32", BitWidth: 32}
			}
			//
			return &state.TypeInfo{BaseType: "f64", BitWidth: 64}
		case "bool":
			return &state.TypeInfo{BaseType: "bool", BitWidth: 1}
		default:
			return nil
		}
	case *ast.Unary:
		return e.promotedType(v.Operand)
	case *ast.Binary:
		if t := e.promotedType(v.Left); t != nil {
			return t
		}
		//
		return e.promotedType(v.Right)
	default:
		return nil
	}
}

func bitWidthOf(baseType string) uint {
	switch baseType {
	case "u8", "i8":
		return 8
	case "u16", "i16":
		return 16
	case "u32", "i32", "f32":
		return 32
	case "u64", "i64", "f64":
		return 64
	default:
		return 0
	}
}
