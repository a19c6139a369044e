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

// Package regutil implements spec.md §4.5's RegisterUtils: classification
// of write-only access modifiers and the MMIO byte-aligned fast-path
// eligibility test for write-only bit-range writes (spec.md §4.3).
// Grounded on the register/bound model of Consensys-go-corset's
// pkg/asm/io/register.go, generalized from register.Width/Bound (a pure
// value-range computation) to register.Width/offset (a byte-addressing
// computation).
package regutil

import (
	"fmt"

	"github.com/jlaustill/cnext-codegen/pkg/symtab"
)

// IsWriteOnlyRegister reports whether a register member's access modifier
// forbids read-modify-write (spec.md §4.3, GLOSSARY "Write-only register").
func IsWriteOnlyRegister(access symtab.Access) bool {
	return access.IsWriteOnly()
}

// MMIOEligible determines whether a write-only bit-range write at [start,
// width] on member qualifiedMember qualifies for the direct volatile-pointer
// MMIO fast path, per spec.md §4.3: start and width must be compile-time
// constant (the caller passes startConst=true only when the subscript
// folded to a constant), start must be byte-aligned, width must be one of
// the four natural machine widths, and both the register's base address and
// the member's byte offset must be known in the symbol table.
func MMIOEligible(symbols *symtab.Table, qualifiedRegister, qualifiedMember string, startConst bool, start, width uint) bool {
	if !startConst {
		return false
	}
	//
	if start%8 != 0 {
		return false
	}
	//
	switch width {
	case 8, 16, 32, 64:
	default:
		return false
	}
	//
	if _, ok := symbols.RegisterBaseAddresses[qualifiedRegister]; !ok {
		return false
	}
	//
	if _, ok := symbols.RegisterMemberOffsets[qualifiedMember]; !ok {
		return false
	}
	//
	return true
}

// MMIOPointerType returns the `uintW_t` volatile pointee type for a given
// bit-range width (8/16/32/64 only — callers must have already checked
// MMIOEligible).
func MMIOPointerType(width uint) string {
	return fmt.Sprintf("uint%d_t", width)
}

// MMIOAddress renders the `base + off + start/8` address expression for an
// MMIO fast-path write.
func MMIOAddress(symbols *symtab.Table, qualifiedRegister, qualifiedMember string, start uint) string {
	base := symbols.RegisterBaseAddresses[qualifiedRegister]
	off := symbols.RegisterMemberOffsets[qualifiedMember]
	//
	return fmt.Sprintf("0x%X + 0x%X + %d", base, off, start/8)
}

// MMIOWrite renders the full MMIO fast-path statement:
// `*((volatile uintW_t*)(base + off + start/8)) = (value);` (spec.md §4.3
// scenario 2).
func MMIOWrite(symbols *symtab.Table, qualifiedRegister, qualifiedMember string, start uint, width uint, value string) string {
	ptrType := MMIOPointerType(width)
	addr := MMIOAddress(symbols, qualifiedRegister, qualifiedMember, start)
	//
	return fmt.Sprintf("*((volatile %s*)(%s)) = (%s);", ptrType, addr, value)
}
