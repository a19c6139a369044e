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
package state

// TypeInfo describes the resolved type of an identifier or subexpression,
// per spec.md §3. It is created by symbol collection, but is also
// synthesized transiently during expression emission (e.g. for a bit chain
// through a struct field) — hence it lives alongside emission state rather
// than in pkg/symtab.
type TypeInfo struct {
	BaseType        string
	BitWidth        uint
	IsArray         bool
	ArrayDimensions []uint
	IsConst         bool
	IsAtomic        bool
	IsClamped       bool
	IsString        bool
	StringCapacity  uint
	IsEnum          bool
	EnumTypeName    string
	IsBitmap        bool
	BitmapTypeName  string
	IsPointer       bool
}

// IsSigned reports whether BaseType names a signed integer type.
func (t *TypeInfo) IsSigned() bool {
	switch t.BaseType {
	case "i8", "i16", "i32", "i64":
		return true
	default:
		return false
	}
}

// IsFloat reports whether BaseType names a floating-point type.
func (t *TypeInfo) IsFloat() bool {
	return t.BaseType == "f32" || t.BaseType == "f64"
}

// IsNarrow reports whether BaseType is one of the sub-int-promotion-width
// integer types that MISRA 10.3 requires a narrowing cast back into after
// compound arithmetic (spec.md §4.3 SIMPLE fallback).
func (t *TypeInfo) IsNarrow() bool {
	switch t.BaseType {
	case "i8", "i16", "u8", "u16":
		return true
	default:
		return false
	}
}

// Is64Bit reports whether BaseType is a 64-bit integer type, which governs
// whether the ONE literal in bit-write templates must carry a ULL suffix.
func (t *TypeInfo) Is64Bit() bool {
	return t.BaseType == "u64" || t.BaseType == "i64"
}

// IsUnsigned reports whether BaseType names an unsigned integer type.
func (t *TypeInfo) IsUnsigned() bool {
	switch t.BaseType {
	case "u8", "u16", "u32", "u64":
		return true
	default:
		return false
	}
}

// CType returns the C type name a value of this TypeInfo would be declared
// with, used for casts and union-shadow declarations.
func (t *TypeInfo) CType() string {
	switch t.BaseType {
	case "u8":
		return "uint8_t"
	case "u16":
		return "uint16_t"
	case "u32":
		return "uint32_t"
	case "u64":
		return "uint64_t"
	case "i8":
		return "int8_t"
	case "i16":
		return "int16_t"
	case "i32":
		return "int32_t"
	case "i64":
		return "int64_t"
	case "f32":
		return "float"
	case "f64":
		return "double"
	case "bool":
		return "bool"
	case "char":
		return "char"
	default:
		return t.BaseType
	}
}
