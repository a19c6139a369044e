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

// Package bitutil implements the shared bit arithmetic of spec.md §4.5
// (BitUtils): mask construction, the type-appropriate "1" literal, the
// boolean-to-integer coercion, and the read-modify-write statement
// templates used by every bit/bit-range/bitmap-field handler. Grounded on
// the bit-width arithmetic of Consensys-go-corset's
// pkg/util/collection/bit/bitwidth.go and bit_set.go, adapted from
// operating on an in-memory bitset to rendering C text.
package bitutil

import "fmt"

// OneForType returns the "1" literal appropriate for a target of the given
// bit width: "1ULL" for 64-bit targets, "1U" otherwise (spec.md §4.3).
func OneForType(is64Bit bool) string {
	if is64Bit {
		return "1ULL"
	}
	//
	return "1U"
}

// Mask renders `((1U << width) - 1)`, or with a ULL one-literal for 64-bit
// targets, per spec.md §4.5.
func Mask(width uint, is64Bit bool) string {
	return fmt.Sprintf("((%s << %d) - 1)", OneForType(is64Bit), width)
}

// MaskHex renders a bitmap-field-width mask as a hex literal, e.g. 0xFF for
// width 8, used by wide bitmap-field reads (spec.md §4.4).
func MaskHex(width uint) string {
	if width >= 64 {
		return "0xFFFFFFFFFFFFFFFFULL"
	}
	//
	return fmt.Sprintf("0x%X", (uint64(1)<<width)-1)
}

// BoolToInt coerces a rendered boolean/integer RHS expression to a bare "1"
// or "0" when it is literally `true`/`false`, passing any other expression
// through unchanged (spec.md §4.5).
func BoolToInt(expr string) string {
	switch expr {
	case "true":
		return "1"
	case "false":
		return "0"
	default:
		return expr
	}
}

// SingleBitWrite renders the canonical single-bit read-modify-write
// template: `name = (name & ~(ONE << i)) | (v01 << i);` (spec.md §4.3,
// §8's round-trip law).
func SingleBitWrite(name string, bit string, value string, is64Bit bool) string {
	one := OneForType(is64Bit)
	v01 := BoolToInt(value)
	//
	return fmt.Sprintf("%s = (%s & ~(%s << %s)) | (%s << %s);", name, name, one, bit, v01, bit)
}

// MultiBitWrite renders the canonical bit-range read-modify-write template:
// `name = (name & ~(mask << start)) | ((value & mask) << start);`.
func MultiBitWrite(name string, start string, width uint, value string, is64Bit bool) string {
	mask := Mask(width, is64Bit)
	//
	return fmt.Sprintf("%s = (%s & ~(%s << %s)) | ((%s & %s) << %s);", name, name, mask, start, value, mask, start)
}

// SingleBitRead renders `((x >> i) & 1)`.
func SingleBitRead(expr, bit string) string {
	return fmt.Sprintf("((%s >> %s) & 1)", expr, bit)
}

// MultiBitRead renders `((x >> start) & mask)`, collapsing to `((x) &
// mask)` when start is the literal "0" (spec.md §4.4's postfix-op ladder).
func MultiBitRead(expr, start string, width uint, is64Bit bool) string {
	mask := Mask(width, is64Bit)
	//
	if start == "0" {
		return fmt.Sprintf("((%s) & %s)", expr, mask)
	}
	//
	return fmt.Sprintf("((%s >> %s) & %s)", expr, start, mask)
}

// BitmapFieldRead renders a bitmap field read: `((x >> off) & 1)` for
// width-1 fields, `((x >> off) & 0x<mask-hex>)` otherwise (spec.md §4.4).
func BitmapFieldRead(expr string, offset, width uint) string {
	if width == 1 {
		return fmt.Sprintf("((%s >> %d) & 1)", expr, offset)
	}
	//
	return fmt.Sprintf("((%s >> %d) & %s)", expr, offset, MaskHex(width))
}
