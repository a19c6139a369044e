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

// Package symtab defines the read-only symbol table the code-generation
// core queries during emit. Populating it is the job of an upstream
// symbol-collection pass (an external collaborator, spec.md §1); this
// package only describes its queryable surface (spec.md §3).
package symtab

// Access is a register-member access modifier.
type Access string

// The five access modifiers spec.md §3 defines. wo, w1s and w1c are
// collectively "write-only".
const (
	AccessReadOnly  Access = "ro"
	AccessReadWrite Access = "rw"
	AccessWriteOnly Access = "wo"
	AccessW1S       Access = "w1s"
	AccessW1C       Access = "w1c"
)

// IsWriteOnly reports whether this access modifier forbids read-modify-write.
func (a Access) IsWriteOnly() bool {
	return a == AccessWriteOnly || a == AccessW1S || a == AccessW1C
}

// BitField describes one named field of a bitmap type.
type BitField struct {
	Offset uint
	Width  uint
}

// Param describes one formal parameter of a known function.
type Param struct {
	Name     string
	BaseType string
	IsConst  bool
	IsArray  bool
}

// FunctionSignature describes a known function's calling contract.
type FunctionSignature struct {
	Params     []Param
	ReturnType string
	IsPublic   bool
	// Modifies lists the zero-based indices of parameters this function
	// mutates through a reference parameter.
	Modifies []int
}

// Visibility is a scope member's declared visibility.
type Visibility string

// The two visibilities a scope member may declare.
const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Table is the read-only symbol table populated by symbol collection and
// consulted throughout emit. Every field name and shape mirrors spec.md §3
// exactly.
type Table struct {
	BitmapFields    map[string]map[string]BitField
	BitmapBitWidth  map[string]uint

	RegisterMemberAccess  map[string]Access
	RegisterMemberTypes   map[string]string // qualifiedMember -> bitmapName
	RegisterBaseAddresses map[string]uint64
	RegisterMemberOffsets map[string]uint64

	KnownScopes    map[string]bool
	KnownEnums     map[string]bool
	KnownStructs   map[string]bool
	KnownBitmaps   map[string]bool
	KnownRegisters map[string]bool

	ScopePrivateConstValues map[string]string
	ScopeMemberVisibility   map[string]map[string]Visibility

	StructFields          map[string]map[string]string
	StructFieldDimensions map[string]map[string][]uint
	StructFieldArrays     map[string]map[string]bool

	FunctionSignatures map[string]FunctionSignature

	CallbackTypes              map[string]FunctionSignature
	CallbackCompatibleFunctions map[string]string // funcName -> typedefName
}

// New constructs an empty, ready-to-populate symbol table.
func New() *Table {
	return &Table{
		BitmapFields:                make(map[string]map[string]BitField),
		BitmapBitWidth:              make(map[string]uint),
		RegisterMemberAccess:        make(map[string]Access),
		RegisterMemberTypes:         make(map[string]string),
		RegisterBaseAddresses:       make(map[string]uint64),
		RegisterMemberOffsets:       make(map[string]uint64),
		KnownScopes:                 make(map[string]bool),
		KnownEnums:                  make(map[string]bool),
		KnownStructs:                make(map[string]bool),
		KnownBitmaps:                make(map[string]bool),
		KnownRegisters:              make(map[string]bool),
		ScopePrivateConstValues:     make(map[string]string),
		ScopeMemberVisibility:       make(map[string]map[string]Visibility),
		StructFields:                make(map[string]map[string]string),
		StructFieldDimensions:       make(map[string]map[string][]uint),
		StructFieldArrays:           make(map[string]map[string]bool),
		FunctionSignatures:          make(map[string]FunctionSignature),
		CallbackTypes:               make(map[string]FunctionSignature),
		CallbackCompatibleFunctions: make(map[string]string),
	}
}

// IsVisibleFrom reports whether member declared on scope is visible from a
// reference occurring inside fromScope. Own-scope references are always
// visible; cross-scope references require public visibility.
func (t *Table) IsVisibleFrom(scope, member, fromScope string) bool {
	if scope == fromScope {
		return true
	}
	//
	vis, ok := t.ScopeMemberVisibility[scope]
	if !ok {
		return true
	}
	//
	v, ok := vis[member]
	if !ok {
		return true
	}
	//
	return v == VisibilityPublic
}

// BitmapField looks up a named field of a bitmap type.
func (t *Table) BitmapField(bitmapName, fieldName string) (BitField, bool) {
	fields, ok := t.BitmapFields[bitmapName]
	if !ok {
		return BitField{}, false
	}
	//
	f, ok := fields[fieldName]
	return f, ok
}
