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

// Package state holds the Generation State described in spec.md §3: the
// single mutable record threaded through Context Builder, Classifier,
// Handlers and Expression Emitter for the lifetime of one compile run.
//
// Unlike the original design's process-wide singleton, this is an explicit
// *State value every caller threads by hand — the teacher's own convention
// of carrying per-run configuration on a struct field rather than a package
// global (Consensys-go-corset's asm.Compiler), applied to the mutable
// generation state as well as the read-only configuration.
package state

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/jlaustill/cnext-codegen/pkg/symtab"
	"github.com/jlaustill/cnext-codegen/pkg/target"
)

// Param describes one parameter of the function currently being emitted.
type Param struct {
	BaseType             string
	IsArray              bool
	IsStruct             bool
	IsConst              bool
	IsCallback           bool
	IsString             bool
	ForcePointerSemantics bool
}

// LocalVar describes one local variable declared within the current
// function body.
type LocalVar struct {
	Type TypeInfo
}

// State is the Generation State. Symbol-table lookups (Symbols) are
// read-only throughout emit; every other field is the sole mutation target
// described in spec.md §5.
type State struct {
	// Symbols is the read-only symbol table populated upstream.
	Symbols *symtab.Table
	// Target describes the capabilities of the compile target.
	Target target.Capabilities
	// Emitting C++ rather than C changes several separator and
	// pass-semantics decisions throughout the core (spec.md §4.4, §4.6).
	CxxMode bool

	CurrentScope        string
	CurrentFunctionName string
	InFunctionBody      bool

	CurrentParameters map[string]Param
	LocalVariables    map[string]TypeInfo
	LocalArrays       map[string]bool
	// ModifiedParams tracks which of CurrentParameters have been proven to
	// be mutated, either directly or by pass-through into a callee known to
	// modify that argument slot (spec.md §4.6).
	ModifiedParams map[string]bool

	// FloatBitShadows tracks, per float variable name, whether a union
	// shadow declaration has already been hoisted for the enclosing
	// function body.
	FloatBitShadows map[string]bool
	// FloatShadowCurrent tracks whether the shadow's .u/.f member is known
	// to already mirror the float's current value, so a repeated read
	// without an intervening write can elide the re-copy (spec.md §5).
	FloatShadowCurrent map[string]bool

	// PendingTempDeclarations are hoisted to the top of the enclosing
	// function body before its statements are written out.
	PendingTempDeclarations []string
	// PendingPreludeStatements are emitted immediately before the statement
	// currently being generated, e.g. a float bit-shadow `.f =` copy-in
	// discovered while emitting a read deep inside that statement's RHS.
	PendingPreludeStatements []string

	includeFlags  *bitset.BitSet
	usedClampOps  *bitset.BitSet
	usedSafeDivOps *bitset.BitSet

	// ExpectedType threads the LHS's base type into RHS emission for MISRA
	// 7.2 U-suffix insertion and enum inference (spec.md §4.1, §4.4).
	ExpectedType string
	// SuppressBareEnumResolution disables inferring a bare identifier as an
	// enum member when ExpectedType names an enum (used while emitting
	// comparison operands that are themselves enum-typed already).
	SuppressBareEnumResolution bool

	// LengthCache memoizes `.char_count` (strlen) results for repeated
	// access to the same string expression within one statement.
	LengthCache map[string]string

	MainArgsName string

	LastArrayInitCount int
	LastArrayFillValue string
}

// New constructs a State bound to the given symbol table and target
// capabilities, with all per-run fields at their zero value.
func New(symbols *symtab.Table, tgt target.Capabilities) *State {
	s := &State{
		Symbols: symbols,
		Target:  tgt,
	}
	s.Reset()
	//
	return s
}

// Reset clears all per-file fields. The symbol table and target
// capabilities persist across files in a run (spec.md §3).
func (s *State) Reset() {
	s.CurrentScope = ""
	s.CurrentFunctionName = ""
	s.InFunctionBody = false
	s.CurrentParameters = make(map[string]Param)
	s.LocalVariables = make(map[string]TypeInfo)
	s.LocalArrays = make(map[string]bool)
	s.ModifiedParams = make(map[string]bool)
	s.FloatBitShadows = make(map[string]bool)
	s.FloatShadowCurrent = make(map[string]bool)
	s.PendingTempDeclarations = nil
	s.PendingPreludeStatements = nil
	s.includeFlags = bitset.New(uint(includeFlagCount))
	s.usedClampOps = bitset.New(uint(clampOpCount))
	s.usedSafeDivOps = bitset.New(uint(safeDivOpCount))
	s.ExpectedType = ""
	s.SuppressBareEnumResolution = false
	s.LengthCache = make(map[string]string)
	s.MainArgsName = "args"
	s.LastArrayInitCount = 0
	s.LastArrayFillValue = ""
}

// MarkInclude records that the generated translation unit requires a given
// standard/generated header.
func (s *State) MarkInclude(f IncludeFlag) { s.includeFlags.Set(uint(f)) }

// NeedsInclude reports whether a given header was marked as required.
func (s *State) NeedsInclude(f IncludeFlag) bool { return s.includeFlags.Test(uint(f)) }

// MarkClampOp records that a given clamp helper was used.
func (s *State) MarkClampOp(op ClampOp) { s.usedClampOps.Set(uint(op)) }

// UsedClampOps returns every clamp helper marked as used, in a stable
// (ascending) order so the generated epilogue is deterministic.
func (s *State) UsedClampOps() []ClampOp {
	var out []ClampOp
	//
	for i, e := s.usedClampOps.NextSet(0); e; i, e = s.usedClampOps.NextSet(i + 1) {
		out = append(out, ClampOp(i))
	}
	//
	return out
}

// MarkSafeDivOp records that a given safe_div/safe_mod helper was used.
func (s *State) MarkSafeDivOp(op SafeDivOp) { s.usedSafeDivOps.Set(uint(op)) }

// UsedSafeDivOps returns every safe-division helper marked as used, in a
// stable ascending order.
func (s *State) UsedSafeDivOps() []SafeDivOp {
	var out []SafeDivOp
	//
	for i, e := s.usedSafeDivOps.NextSet(0); e; i, e = s.usedSafeDivOps.NextSet(i + 1) {
		out = append(out, SafeDivOp(i))
	}
	//
	return out
}

// EnterFunctionBody clears the per-function-body fields on entry to a new
// function, per spec.md §5's "function-body scope" clearing rule, and
// returns a closure that restores InFunctionBody/CurrentFunctionName and
// re-clears the same fields on exit — guaranteed via defer at the call
// site, mirroring the teacher's defer-guarded scope push/pop.
func (s *State) EnterFunctionBody(name string) func() {
	prevName := s.CurrentFunctionName
	prevIn := s.InFunctionBody
	//
	s.CurrentFunctionName = name
	s.InFunctionBody = true
	s.CurrentParameters = make(map[string]Param)
	s.LocalVariables = make(map[string]TypeInfo)
	s.LocalArrays = make(map[string]bool)
	s.ModifiedParams = make(map[string]bool)
	s.FloatBitShadows = make(map[string]bool)
	s.FloatShadowCurrent = make(map[string]bool)
	//
	return func() {
		s.CurrentFunctionName = prevName
		s.InFunctionBody = prevIn
		s.CurrentParameters = make(map[string]Param)
		s.LocalVariables = make(map[string]TypeInfo)
		s.LocalArrays = make(map[string]bool)
		s.ModifiedParams = make(map[string]bool)
		s.FloatBitShadows = make(map[string]bool)
		s.FloatShadowCurrent = make(map[string]bool)
	}
}

// WithExpectedType scopes ExpectedType to t for the duration of the caller's
// deferred restore, guaranteeing restoration on every exit path including
// panics (spec.md §5's "scoped acquisition" invariant).
//
//	restore := s.WithExpectedType("u32")
//	defer restore()
func (s *State) WithExpectedType(t string) func() {
	prev := s.ExpectedType
	s.ExpectedType = t
	//
	return func() { s.ExpectedType = prev }
}

// WithSuppressBareEnumResolution scopes SuppressBareEnumResolution to true
// for the duration of the caller's deferred restore.
func (s *State) WithSuppressBareEnumResolution() func() {
	prev := s.SuppressBareEnumResolution
	s.SuppressBareEnumResolution = true
	//
	return func() { s.SuppressBareEnumResolution = prev }
}

// AddPendingTempDeclaration queues a temp-variable declaration (e.g. a float
// bit-shadow union) to be hoisted to the top of the enclosing function body.
func (s *State) AddPendingTempDeclaration(decl string) {
	s.PendingTempDeclarations = append(s.PendingTempDeclarations, decl)
}

// DrainPendingTempDeclarations returns and clears the queued temp
// declarations, for the caller to hoist ahead of a function body's
// statements.
func (s *State) DrainPendingTempDeclarations() []string {
	out := s.PendingTempDeclarations
	s.PendingTempDeclarations = nil
	//
	return out
}

// AddPendingPreludeStatement queues a statement (e.g. a float bit-shadow
// copy-in) discovered while emitting an expression, to be prepended ahead
// of that expression's enclosing statement.
func (s *State) AddPendingPreludeStatement(stmt string) {
	s.PendingPreludeStatements = append(s.PendingPreludeStatements, stmt)
}

// DrainPendingPreludeStatements returns and clears the queued prelude
// statements, for the per-statement driver to prepend to the statement it
// just generated.
func (s *State) DrainPendingPreludeStatements() []string {
	out := s.PendingPreludeStatements
	s.PendingPreludeStatements = nil
	//
	return out
}
