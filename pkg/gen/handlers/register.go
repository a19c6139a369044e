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

// This file implements spec.md §4.3's register single-bit/bit-range family:
// REGISTER_BIT, REGISTER_BIT_RANGE, SCOPED_REGISTER_BIT,
// SCOPED_REGISTER_BIT_RANGE, GLOBAL_REGISTER_BIT. GLOBAL_REGISTER_BIT has no
// dedicated range counterpart in the kind enumeration (a `global.Reg.Member`
// chain can carry one or two subscript expressions equally), so one handler
// branches on ctx.LastSubscriptCount and is registered for all five kinds.
package handlers

import (
	"fmt"

	gencontext "github.com/jlaustill/cnext-codegen/pkg/gen/context"
	"github.com/jlaustill/cnext-codegen/pkg/gen/bitutil"
	"github.com/jlaustill/cnext-codegen/pkg/gen/classify"
	generrors "github.com/jlaustill/cnext-codegen/pkg/gen/errors"
	"github.com/jlaustill/cnext-codegen/pkg/gen/expr"
	"github.com/jlaustill/cnext-codegen/pkg/gen/namemangle"
	"github.com/jlaustill/cnext-codegen/pkg/gen/regutil"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

func init() {
	register(classify.KindRegisterBit, handleRegisterBit)
	register(classify.KindRegisterBitRange, handleRegisterBit)
	register(classify.KindScopedRegisterBit, handleRegisterBit)
	register(classify.KindScopedRegisterBitRange, handleRegisterBit)
	register(classify.KindGlobalRegisterBit, handleRegisterBit)
}

// registerName mangles a register-member chain directly via NameMangler
// rather than through the Expression Emitter's postfix ladder, since
// memberRegister unconditionally rejects write-only members as unreadable —
// correct for a read context, wrong for the write target every one of these
// kinds addresses (see context.go's ResolvedTarget doc comment).
func registerName(s *state.State, ctx *gencontext.AssignmentContext) string {
	if ctx.HasThis {
		return namemangle.Chain(append([]string{s.CurrentScope}, ctx.Identifiers...)...)
	}
	//
	return namemangle.Chain(ctx.Identifiers...)
}

func handleRegisterBit(s *state.State, e *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	if ctx.IsCompound {
		return "", compoundRejected()
	}
	//
	if ctx.HasThis && s.CurrentScope == "" {
		return "", generrors.New(generrors.KindThisOutsideScope, "'this' used outside a scope")
	}
	//
	reg := ctx.Identifiers[0]
	member := ctx.Identifiers[len(ctx.Identifiers)-1]
	qualified := classify.RegisterQualifiedName(s, ctx)
	//
	if qualified == "" {
		qualified = reg + "." + member
	}
	//
	name := registerName(s, ctx)
	access := s.Symbols.RegisterMemberAccess[qualified]
	writeOnly := regutil.IsWriteOnlyRegister(access)
	//
	if ctx.LastSubscriptCount == 2 {
		return handleRegisterBitRange(s, e, ctx, reg, qualified, name, writeOnly)
	}
	//
	bit, err := e.Emit(finalSubscriptExprs(ctx)[0])
	if err != nil {
		return "", err
	}
	//
	if writeOnly {
		if isZeroOrFalseLiteral(ctx.GeneratedValue) {
			return "", generrors.New(generrors.KindWriteOnlyClear,
				"cannot assign 0/false to write-only register member %q", qualified)
		}
		//
		return fmt.Sprintf("%s = (1 << %s);", name, bit), nil
	}
	//
	return bitutil.SingleBitWrite(name, bit, ctx.GeneratedValue, false), nil
}

func handleRegisterBitRange(s *state.State, e *expr.Emitter, ctx *gencontext.AssignmentContext, reg, qualified, name string, writeOnly bool) (string, error) {
	exprs := finalSubscriptExprs(ctx)
	startExpr, widthExpr := exprs[0], exprs[1]
	//
	start, err := e.Emit(startExpr)
	if err != nil {
		return "", err
	}
	//
	width := foldWidth(widthExpr)
	startVal, startConst := expr.TryFoldInt(startExpr)
	//
	if !writeOnly {
		return bitutil.MultiBitWrite(name, start, width, ctx.GeneratedValue, false), nil
	}
	//
	if isZeroOrFalseLiteral(ctx.GeneratedValue) {
		return "", generrors.New(generrors.KindWriteOnlyClear,
			"cannot assign 0 to write-only register member %q", qualified)
	}
	//
	if startConst && regutil.MMIOEligible(s.Symbols, reg, qualified, startConst, uint(startVal), width) {
		return regutil.MMIOWrite(s.Symbols, reg, qualified, uint(startVal), width, ctx.GeneratedValue), nil
	}
	//
	mask := bitutil.Mask(width, false)
	//
	return fmt.Sprintf("%s = ((%s & %s) << %s);", name, ctx.GeneratedValue, mask, start), nil
}
