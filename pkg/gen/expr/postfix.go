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
	"github.com/jlaustill/cnext-codegen/pkg/gen/bitutil"
	"github.com/jlaustill/cnext-codegen/pkg/gen/namemangle"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

// postfixState is the tracking record threaded left-to-right through a
// postfix fold, per spec.md §4.4's table of co-evolving flags. It is
// produced fresh per top-level Emit(*ast.Postfix) call and mutated in place
// by each op, following the Design Notes' "group them as one record and
// mutate in place" guidance.
type postfixState struct {
	result   string
	resolved string
	cur      *state.TypeInfo

	currentStructType  string
	previousStructType string
	previousMemberName string

	isRegisterChain bool
	isGlobalAccess  bool
	isThisAccess    bool
	isCppAccessChain bool

	remainingArrayDims int
	subscriptDepth      uint
}

func (e *Emitter) emitPostfix(n *ast.Postfix) (string, error) {
	ps, err := e.postfixPrimary(n.Primary)
	if err != nil {
		return "", err
	}
	//
	for i := range n.Ops {
		op := n.Ops[i]
		//
		switch {
		case op.Member != nil:
			if err := e.applyMemberOp(ps, op.Member.Name); err != nil {
				return "", err
			}
		case op.Subscript != nil:
			if err := e.applySubscriptOp(ps, op.Subscript.Exprs); err != nil {
				return "", err
			}
		case op.Call != nil:
			if err := e.applyCallOp(ps, op.Call.Args); err != nil {
				return "", err
			}
		}
	}
	//
	return ps.result, nil
}

func (e *Emitter) postfixPrimary(primary ast.Expr) (*postfixState, error) {
	ps := &postfixState{isCppAccessChain: e.S.CxxMode}
	//
	switch v := primary.(type) {
	case *ast.This:
		ps.result = sentinelThisScope
		ps.isThisAccess = true
	case *ast.Global:
		ps.result = sentinelGlobalPrefix
		ps.isGlobalAccess = true
	case *ast.Ident:
		ps.result = v.Name
		ps.resolved = v.Name
		//
		if t, ok := e.S.LocalVariables[v.Name]; ok {
			tc := t
			ps.cur = &tc
			//
			if t.IsBitmap {
				ps.currentStructType = t.BitmapTypeName
			} else if !t.IsArray && e.S.Symbols.KnownStructs[t.BaseType] {
				ps.currentStructType = t.BaseType
			}
			//
			if t.IsArray {
				ps.remainingArrayDims = len(t.ArrayDimensions)
			}
		} else if e.S.Symbols.KnownRegisters[v.Name] {
			ps.isRegisterChain = true
		}
	default:
		rendered, err := e.Emit(primary)
		if err != nil {
			return nil, err
		}
		//
		ps.result = rendered
	}
	//
	return ps, nil
}

// applyMemberOp implements spec.md §4.4's member-op dispatch ladder,
// first-match-wins.
func (e *Emitter) applyMemberOp(ps *postfixState, name string) error {
	if prop, handled, err := e.tryProperty(ps, name); handled {
		ps.result = prop
		return err
	}
	//
	switch {
	case ps.isGlobalAccess:
		return e.memberGlobal(ps, name)
	case ps.cur != nil && ps.cur.IsBitmap:
		return e.memberBitmapField(ps, name)
	case ps.isThisAccess:
		return e.memberThisScope(ps, name)
	case e.S.Symbols.KnownScopes[ps.resolved] || e.S.Symbols.KnownScopes[ps.result]:
		return e.memberCrossScope(ps, name)
	case e.S.Symbols.KnownEnums[ps.resolved]:
		return e.memberEnum(ps, name)
	case e.isRegisterMember(ps):
		return e.memberRegister(ps, name)
	case e.isStructParameter(ps):
		return e.memberStructParam(ps, name)
	default:
		return e.memberDefault(ps, name)
	}
}

func (e *Emitter) isRegisterMember(ps *postfixState) bool {
	return ps.isRegisterChain || e.S.Symbols.KnownRegisters[ps.resolved]
}

func (e *Emitter) isStructParameter(ps *postfixState) bool {
	if ps.resolved == "" {
		return false
	}
	//
	param, ok := e.S.CurrentParameters[ps.resolved]
	return ok && param.IsStruct
}

// memberGlobal rewrites the `global` sentinel on its first member op,
// `global.X → X`, rejecting the rewrite if a local variable named X would
// shadow the intended global reference (spec.md §4.4's sentinel rewrite
// rule, spec.md §7.1's GlobalShadowed case).
func (e *Emitter) memberGlobal(ps *postfixState, name string) error {
	if _, shadowed := e.S.LocalVariables[name]; shadowed {
		return generrors.New(generrors.KindGlobalShadowed, "global.%s is shadowed by a local variable", name)
	}
	//
	ps.result = name
	ps.resolved = name
	ps.isGlobalAccess = false
	//
	return nil
}

// memberThisScope resolves `this.X` inside the current scope, per spec.md
// GLOSSARY: scope members become C globals under Scope_Member; access from
// inside the scope uses this.X.
func (e *Emitter) memberThisScope(ps *postfixState, name string) error {
	if e.S.CurrentScope == "" {
		return generrors.New(generrors.KindThisOutsideScope, "'this' used outside a scope")
	}
	//
	mangled := namemangle.ForMember(e.S.CurrentScope, name)
	ps.result = mangled
	ps.resolved = mangled
	ps.isThisAccess = false
	ps.previousMemberName = name
	//
	if t, ok := e.S.Symbols.StructFields[e.S.CurrentScope]; ok {
		if _, isField := t[name]; isField {
			ps.currentStructType = t[name]
		}
	}
	//
	return nil
}

// memberCrossScope resolves `Scope.X` from outside scope, enforcing
// visibility and the "own-scope by name" MISRA-like check (spec.md §7.1,
// §8's boundary case).
func (e *Emitter) memberCrossScope(ps *postfixState, name string) error {
	scope := ps.resolved
	if scope == "" {
		scope = ps.result
	}
	//
	if scope == e.S.CurrentScope {
		return generrors.New(generrors.KindOwnScopeByName, "scope %q referenced by name from within itself; use this.%s", scope, name)
	}
	//
	if !e.S.Symbols.IsVisibleFrom(scope, name, e.S.CurrentScope) {
		return generrors.New(generrors.KindCrossScopeInvisible, "%s.%s is private and not visible here", scope, name)
	}
	//
	mangled := namemangle.ScopeMember(scope, name, e.S.CxxMode)
	ps.result = mangled
	ps.resolved = namemangle.ForMember(scope, name)
	//
	return nil
}

// memberEnum resolves `Enum.Value` (spec.md §6's operator translation
// table). Collision prevention between enum members is the responsibility
// of symbol collection, not re-validated here (spec.md §9 Open Question #1).
func (e *Emitter) memberEnum(ps *postfixState, name string) error {
	enumName := ps.resolved
	if enumName == "" {
		enumName = ps.result
	}
	//
	ps.result = namemangle.EnumMember(enumName, name, e.S.CxxMode)
	ps.resolved = namemangle.ForMember(enumName, name)
	//
	return nil
}

// memberRegister resolves a register member read, rejecting reads of
// write-only members (spec.md §7.1: "reading a write-only register
// member").
func (e *Emitter) memberRegister(ps *postfixState, name string) error {
	reg := ps.resolved
	if reg == "" {
		reg = ps.result
	}
	//
	qualified := reg + "." + name
	//
	if access, ok := e.S.Symbols.RegisterMemberAccess[qualified]; ok && access.IsWriteOnly() {
		return generrors.New(generrors.KindReadWriteOnlyRegister, "%s is write-only and cannot be read", qualified)
	}
	//
	mangled := namemangle.ForMember(reg, name)
	ps.result = mangled
	ps.resolved = qualified
	ps.isRegisterChain = false
	//
	if bitmapType, ok := e.S.Symbols.RegisterMemberTypes[qualified]; ok {
		ps.cur = &state.TypeInfo{IsBitmap: true, BitmapTypeName: bitmapType}
		ps.currentStructType = bitmapType
	}
	//
	return nil
}

// memberStructParam resolves a member access on a struct-typed function
// parameter: `->` in C, `.` in C++, but `->` is forced when the parameter
// has callback-promoted pointer semantics (spec.md §4.4).
func (e *Emitter) memberStructParam(ps *postfixState, name string) error {
	param := e.S.CurrentParameters[ps.resolved]
	sep := "."
	//
	if !e.S.CxxMode || param.ForcePointerSemantics {
		sep = "->"
	}
	//
	ps.previousStructType = ps.currentStructType
	ps.previousMemberName = name
	ps.result = ps.result + sep + name
	//
	if fields, ok := e.S.Symbols.StructFields[param.BaseType]; ok {
		ps.currentStructType = fields[name]
	}
	//
	return nil
}

// memberBitmapField resolves `.field` on a bitmap-typed receiver, the
// generic case shared by every BITMAP_FIELD* read path (spec.md §4.4's
// "Bitmap reads").
func (e *Emitter) memberBitmapField(ps *postfixState, name string) error {
	bitmapName := ps.cur.BitmapTypeName
	//
	field, ok := e.S.Symbols.BitmapField(bitmapName, name)
	if !ok {
		return generrors.New(generrors.KindUnknownBitmapField, "unknown field %q on bitmap %q", name, bitmapName)
	}
	//
	ps.result = bitutil.BitmapFieldRead(ps.result, field.Offset, field.Width)
	ps.cur = nil
	//
	return nil
}

// memberDefault is the catch-all `.` (C) / `::` (C++ scope-symbol chain)
// member access (spec.md §4.4, §6).
func (e *Emitter) memberDefault(ps *postfixState, name string) error {
	ps.previousStructType = ps.currentStructType
	ps.previousMemberName = name
	//
	if e.S.CxxMode && ps.isCppAccessChain {
		ps.result = ps.result + "::" + name
	} else {
		ps.result = ps.result + "." + name
	}
	//
	if fields, ok := e.S.Symbols.StructFields[ps.currentStructType]; ok {
		ps.currentStructType = fields[name]
	} else {
		ps.currentStructType = ""
	}
	//
	return nil
}

func (e *Emitter) applySubscriptOp(ps *postfixState, exprs []ast.Expr) error {
	rendered := make([]string, len(exprs))
	//
	for i, x := range exprs {
		r, err := e.Emit(x)
		if err != nil {
			return err
		}
		//
		rendered[i] = r
	}
	//
	if len(exprs) == 2 {
		return e.applyBitRange(ps, exprs[0], exprs[1], rendered[0], rendered[1])
	}
	//
	return e.applySingleSubscript(ps, exprs[0], rendered[0])
}

func (e *Emitter) applySingleSubscript(ps *postfixState, idxNode ast.Expr, idx string) error {
	switch {
	case ps.isRegisterChain:
		ps.result = bitutil.SingleBitRead(ps.result, idx)
	case ps.remainingArrayDims > 0:
		ps.result = fmt.Sprintf("%s[%s]", ps.result, idx)
		ps.remainingArrayDims--
		ps.subscriptDepth++
	case ps.cur != nil && ps.cur.IsArray:
		ps.result = fmt.Sprintf("%s[%s]", ps.result, idx)
		ps.subscriptDepth++
	case ps.cur != nil && ps.cur.IsFloat():
		shadow, err := e.floatShadowRead(ps)
		if err != nil {
			return err
		}
		//
		ps.result = bitutil.SingleBitRead(shadow, idx)
	default:
		// Bit access on an otherwise-scalar integer chain (struct field,
		// local, register member already resolved to a bare value).
		ps.result = bitutil.SingleBitRead(ps.result, idx)
	}
	//
	_ = idxNode
	return nil
}

func (e *Emitter) applyBitRange(ps *postfixState, startNode, widthNode ast.Expr, start, width string) error {
	w, ok := TryFoldInt(widthNode)
	if !ok {
		w = 0
	}
	//
	source := ps.result
	is64 := ps.cur != nil && ps.cur.Is64Bit()
	//
	if ps.cur != nil && ps.cur.IsFloat() {
		shadow, err := e.floatShadowRead(ps)
		if err != nil {
			return err
		}
		//
		source = shadow
		is64 = ps.cur.BaseType == "f64"
	}
	//
	rendered := bitutil.MultiBitRead(source, start, uint(w), is64)
	//
	if e.S.ExpectedType != "" {
		if et := (&state.TypeInfo{BaseType: e.S.ExpectedType}); et.IsNarrow() {
			rendered = fmt.Sprintf("(%s)(%s)", et.CType(), rendered)
		}
	}
	//
	ps.result = rendered
	_ = startNode
	//
	return nil
}

// floatShadowRead resolves the union type-pun shadow's unsigned-integer
// member for reading bits out of a float lvalue, hoisting the shadow
// declaration and queuing its `.f =` copy-in ahead of the enclosing
// statement the first time it's touched in an unbroken batch (spec.md
// §4.3's float bit-access rule, mirrored from the write-side handlers'
// ensureFloatShadow).
func (e *Emitter) floatShadowRead(ps *postfixState) (string, error) {
	shadow, copyIn, err := state.EnsureFloatShadow(e.S, ps.result, ps.cur.BaseType)
	if err != nil {
		return "", err
	}
	//
	if copyIn != "" {
		e.S.AddPendingPreludeStatement(copyIn)
	}
	//
	return shadow + ".u", nil
}

func (e *Emitter) applyCallOp(ps *postfixState, args []ast.Expr) error {
	fnName := ps.resolved
	if fnName == "" {
		fnName = ps.result
	}
	//
	rendered, err := e.renderCallArguments(fnName, args)
	if err != nil {
		return err
	}
	//
	ps.result = fmt.Sprintf("%s(%s)", ps.result, rendered)
	//
	return nil
}
