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

// Package context implements the Context Builder of spec.md §4.1: it walks
// one assignment's left-hand side and produces the immutable
// AssignmentContext bundle the Classifier and Handlers consume. The builder
// is total — it signals no errors of its own; every rejection described in
// spec.md §7 belongs to a handler or to the Expression Emitter, which Build
// invokes for both the target and the right-hand side and whose errors it
// returns.
package context

import (
	"github.com/jlaustill/cnext-codegen/pkg/ast"
	generrors "github.com/jlaustill/cnext-codegen/pkg/gen/errors"
	"github.com/jlaustill/cnext-codegen/pkg/gen/expr"
	"github.com/jlaustill/cnext-codegen/pkg/gen/namemangle"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

// opTable is the fixed source-operator -> C-operator mapping of spec.md
// §4.1 and §6.
var opTable = map[ast.Op]string{
	ast.OpAssign:    "=",
	ast.OpAddAssign: "+=",
	ast.OpSubAssign: "-=",
	ast.OpMulAssign: "*=",
	ast.OpDivAssign: "/=",
	ast.OpModAssign: "%=",
	ast.OpAndAssign: "&=",
	ast.OpOrAssign:  "|=",
	ast.OpXorAssign: "^=",
	ast.OpShlAssign: "<<=",
	ast.OpShrAssign: ">>=",
}

// AssignmentContext is the immutable bundle produced per assignment,
// mirroring spec.md §3's field table exactly.
type AssignmentContext struct {
	Identifiers []string
	Subscripts  []ast.Expr
	PostfixOps  []ast.PostfixOp

	HasThis   bool
	HasGlobal bool

	CnextOp    ast.Op
	COp        string
	IsCompound bool

	GeneratedValue string
	ValueCtx       ast.Expr

	FirstIdTypeInfo *state.TypeInfo

	ResolvedBaseIdentifier string
	ResolvedTarget         string

	IsSimpleIdentifier   bool
	IsSimpleThisAccess   bool
	IsSimpleGlobalAccess bool

	// LastSubscriptCount is the number of expressions in the final
	// subscript op encountered (1 for a bit/array index, 2 for a bit range
	// or slice); zero when the LHS carries no subscript at all. Handlers
	// use this, together with Subscripts, to tell a single-bit write from a
	// range write without re-walking PostfixOps.
	LastSubscriptCount int
}

// Builder constructs AssignmentContext values against one Generation State
// and Expression Emitter, per spec.md §4.1.
type Builder struct {
	S *state.State
	E *expr.Emitter
}

// New constructs a Builder bound to the given state, sharing its Expression
// Emitter so RHS emission sees the same ExpectedType/scope bookkeeping.
func New(s *state.State) *Builder {
	return &Builder{S: s, E: expr.New(s)}
}

// Build walks assign's target and produces its AssignmentContext. Per
// spec.md §4.1, this never fails: the LHS walk is total, and any error from
// RHS emission is returned unchanged (a genuine emitter failure, not a
// builder failure) rather than swallowed.
func (b *Builder) Build(assign *ast.Assignment) (*AssignmentContext, error) {
	ctx := &AssignmentContext{
		CnextOp: assign.SrcOp,
		ValueCtx: assign.Value,
	}
	//
	b.walkTarget(ctx, assign.Target)
	//
	ctx.COp = opTable[assign.SrcOp]
	ctx.IsCompound = ctx.COp != "=" && ctx.COp != ""
	if ctx.COp == "" {
		// An unrecognized operator token still needs a C spelling to avoid
		// emitting an empty statement; fall back to plain assignment per
		// the "builder is total" contract.
		ctx.COp = "="
	}
	//
	ctx.FirstIdTypeInfo = b.resolveFirstIdType(ctx)
	ctx.ResolvedBaseIdentifier = b.resolveBaseIdentifier(ctx)
	//
	expectedType := ""
	if ctx.FirstIdTypeInfo != nil {
		expectedType = ctx.FirstIdTypeInfo.BaseType
	}
	//
	restore := b.S.WithExpectedType(expectedType)
	defer restore()
	//
	generated, err := b.E.Emit(assign.Value)
	if err != nil {
		return nil, err
	}
	//
	ctx.GeneratedValue = generated
	//
	resolvedTarget, err := b.E.Emit(assign.Target)
	if err != nil {
		// The Expression Emitter's register-member dispatch cannot tell a
		// write target from a read: it rejects write-only register member
		// access unconditionally (memberRegister). Writing one is legal —
		// only reading one is an error — so a write-only rejection here
		// just means ResolvedTarget has nothing to offer; the register-bit
		// and register-bitmap-field handlers reconstruct the mangled name
		// directly from Identifiers instead of consulting this field. Any
		// other LHS error (cross-scope visibility, this-outside-scope,
		// global shadowing) is a genuine failure and propagates.
		if genErr, ok := err.(*generrors.Error); ok && genErr.Kind == generrors.KindReadWriteOnlyRegister {
			ctx.ResolvedTarget = ""
		} else {
			return nil, err
		}
	} else {
		ctx.ResolvedTarget = resolvedTarget
	}
	//
	ctx.IsSimpleIdentifier = !ctx.HasThis && !ctx.HasGlobal && len(ctx.PostfixOps) == 0 && len(ctx.Identifiers) == 1
	ctx.IsSimpleThisAccess = ctx.HasThis && len(ctx.PostfixOps) == 1 && ctx.PostfixOps[0].Member != nil
	ctx.IsSimpleGlobalAccess = ctx.HasGlobal && len(ctx.PostfixOps) == 1 && ctx.PostfixOps[0].Member != nil
	//
	return ctx, nil
}

// walkTarget collects identifiers, subscripts, and postfixOps from the LHS,
// per spec.md §4.1's algorithm.
func (b *Builder) walkTarget(ctx *AssignmentContext, target ast.Expr) {
	switch v := target.(type) {
	case *ast.Ident:
		ctx.Identifiers = append(ctx.Identifiers, v.Name)
	case *ast.This:
		ctx.HasThis = true
	case *ast.Global:
		ctx.HasGlobal = true
	case *ast.Postfix:
		b.walkTarget(ctx, v.Primary)
		//
		for _, op := range v.Ops {
			ctx.PostfixOps = append(ctx.PostfixOps, op)
			//
			switch {
			case op.Member != nil:
				ctx.Identifiers = append(ctx.Identifiers, op.Member.Name)
				ctx.LastSubscriptCount = 0
			case op.Subscript != nil:
				ctx.Subscripts = append(ctx.Subscripts, op.Subscript.Exprs...)
				ctx.LastSubscriptCount = len(op.Subscript.Exprs)
			}
		}
	default:
		// Anything else (e.g. *ast.Raw) is an opaque pre-rendered target;
		// the builder has nothing further to collect from it.
	}
}

// resolveFirstIdType resolves the type of identifiers[0] against the local
// variable registry. A this./global.-qualified chain has no plain local
// first identifier, so it resolves to nil; kind-specific handlers consult
// the symbol table's scope/struct maps directly for those.
func (b *Builder) resolveFirstIdType(ctx *AssignmentContext) *state.TypeInfo {
	if ctx.HasThis || ctx.HasGlobal || len(ctx.Identifiers) == 0 {
		return nil
	}
	//
	if t, ok := b.S.LocalVariables[ctx.Identifiers[0]]; ok {
		tc := t
		return &tc
	}
	//
	return nil
}

// resolveBaseIdentifier prefixes identifiers[0] with the current scope when
// it denotes a scope member (`this.X`, or a bare reference to one of the
// current scope's own members), per spec.md §4.1/§3.
func (b *Builder) resolveBaseIdentifier(ctx *AssignmentContext) string {
	if len(ctx.Identifiers) == 0 {
		return ""
	}
	//
	base := ctx.Identifiers[0]
	//
	if ctx.HasThis {
		return namemangle.ForMember(b.S.CurrentScope, base)
	}
	//
	if ctx.HasGlobal {
		return base
	}
	//
	if b.S.CurrentScope != "" {
		if members, ok := b.S.Symbols.ScopeMemberVisibility[b.S.CurrentScope]; ok {
			if _, isMember := members[base]; isMember {
				return namemangle.ForMember(b.S.CurrentScope, base)
			}
		}
	}
	//
	return base
}
