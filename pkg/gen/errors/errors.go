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

// Package errors implements the static-semantics/type-error taxonomy of
// spec.md §7. Internal-invariant violations (§7.3) are not part of this
// taxonomy: they panic, per spec.md's "fatal and indicate a bug", mirroring
// the teacher's own panic("unreachable") convention
// (Consensys-go-corset's pkg/asm/io/macro/expr/expr.go).
package errors

import (
	"fmt"

	"github.com/jlaustill/cnext-codegen/pkg/source"
)

// Kind identifies which static-semantics or type error occurred.
type Kind string

// The static-semantics and type-error kinds enumerated in spec.md §7.1-2.
const (
	KindCompoundOnBitField    Kind = "compound_on_bit_field"
	KindWriteOnlyClear        Kind = "write_only_clear"
	KindThisOutsideScope      Kind = "this_outside_scope"
	KindCrossScopeInvisible   Kind = "cross_scope_invisible"
	KindOwnScopeByName        Kind = "own_scope_by_name"
	KindGlobalShadowed        Kind = "global_shadowed"
	KindUnknownBitmapField    Kind = "unknown_bitmap_field"
	KindBitmapLiteralOverflow Kind = "bitmap_literal_overflow"
	KindSliceNonConst         Kind = "slice_non_const"
	KindSliceOutOfBounds      Kind = "slice_out_of_bounds"
	KindArrayOutOfBounds      Kind = "array_out_of_bounds"
	KindReadWriteOnlyRegister Kind = "read_write_only_register"
	KindFloatBitGlobalScope   Kind = "float_bit_global_scope"
	KindDeprecatedLength      Kind = "deprecated_length"
	KindElementCountNonArray  Kind = "element_count_non_array"
	KindCharCountNonString    Kind = "char_count_non_string"
	KindArgsCharCountUnsupported Kind = "args_char_count_unsupported"
	KindBracketOnBitmapMember Kind = "bracket_on_bitmap_member"
	KindUnknownStructField    Kind = "unknown_struct_field"
	KindConstToNonConstParam  Kind = "const_to_non_const_param"
	KindEnumComparisonInvalid Kind = "enum_comparison_invalid"
	KindIncompatibleArgument  Kind = "incompatible_argument"
	KindUndefinedProperty     Kind = "undefined_property"
)

// Error is a typed static-semantics or type error, carrying the source kind
// and, when available, the span it concerns.
type Error struct {
	Kind    Kind
	Message string
	span    *source.Span
	file    *source.File
}

// New constructs a position-free Error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At attaches a source position to an existing Error, returning a new one.
func (e *Error) At(file *source.File, span source.Span) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, span: &span, file: file}
}

// Error implements the error interface. When a source position is known,
// it is rendered via source.SyntaxError's "<line>:<col> Error: ..." format,
// per spec.md §6's fixed wire contract; otherwise the bare kind+message.
func (e *Error) Error() string {
	if e.file == nil || e.span == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	//
	return e.file.SyntaxError(*e.span, e.Message).Error()
}

// Is supports errors.Is comparisons against a Kind-only sentinel
// constructed via New(kind, "").
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	//
	return e.Kind == other.Kind
}
