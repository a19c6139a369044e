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

var intSuffixes = []string{"u8", "u16", "u32", "u64", "i8", "i16", "i32", "i64"}

func (e *Emitter) emitLiteral(n *ast.Literal) (string, error) {
	switch n.Kind {
	case "bool":
		e.S.MarkInclude(state.IncludeStdbool)
		return n.Text, nil
	case "float":
		return e.emitFloatLiteral(n.Text), nil
	case "string":
		return n.Text, nil
	case "int":
		return e.emitIntLiteral(n.Text), nil
	default:
		return n.Text, nil
	}
}

// emitFloatLiteral transforms the source suffix: f32 -> "f", f64 -> no
// suffix at all (spec.md §4.4).
func (e *Emitter) emitFloatLiteral(text string) string {
	switch {
	case strings.HasSuffix(text, "f32"):
		return strings.TrimSuffix(text, "f32") + "f"
	case strings.HasSuffix(text, "f64"):
		return strings.TrimSuffix(text, "f64")
	default:
		return text
	}
}

// emitIntLiteral transforms the source integer suffix (u64 -> ULL, i64 ->
// LL, the sub-64-bit suffixes stripped entirely) and then, per MISRA 7.2,
// appends U/ULL when ExpectedType names an unsigned type and the literal
// does not already carry a suffix (spec.md §4.4).
func (e *Emitter) emitIntLiteral(text string) string {
	core, suffix := splitIntSuffix(text)
	//
	switch suffix {
	case "u64":
		return core + "ULL"
	case "i64":
		return core + "LL"
	case "u8", "u16", "u32", "i8", "i16", "i32":
		return core
	}
	// No explicit suffix: apply MISRA 7.2 based on ExpectedType.
	if core == text {
		return e.applyMisra72(text)
	}
	//
	return core
}

func splitIntSuffix(text string) (core, suffix string) {
	for _, s := range intSuffixes {
		if strings.HasSuffix(text, s) {
			return strings.TrimSuffix(text, s), s
		}
	}
	//
	return text, ""
}

// applyMisra72 appends U or ULL to a plain integer literal when
// ExpectedType names an unsigned type, per spec.md §4.4's MISRA 7.2 rule.
func (e *Emitter) applyMisra72(text string) string {
	switch e.S.ExpectedType {
	case "u64":
		return text + "ULL"
	case "u8", "u16", "u32":
		return text + "U"
	default:
		return text
	}
}
