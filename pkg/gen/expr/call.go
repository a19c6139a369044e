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

// This file implements spec.md §4.6's function-call argument handling: the
// pass-by-reference/pass-by-value decision per formal parameter, callback
// pointer pass-through, const-to-non-const validation, and pass-through
// parameter-modification tracking. The safe_div/safe_mod whole-statement
// rewrite described in the same section is handled one level up, in
// pkg/gen/handlers, because it replaces the entire assignment statement
// (threading `&output` as the call's first argument) rather than rendering
// one argument of an ordinary call expression.
package expr

import (
	"fmt"
	"strings"

	"github.com/jlaustill/cnext-codegen/pkg/ast"
	generrors "github.com/jlaustill/cnext-codegen/pkg/gen/errors"
	"github.com/jlaustill/cnext-codegen/pkg/symtab"
)

// passByValueBaseTypes are the small primitives and floats that spec.md
// §4.6 always passes by value, regardless of the formal parameter's
// declared shape.
var passByValueBaseTypes = map[string]bool{
	"u8": true, "u16": true, "u32": true, "u64": true,
	"i8": true, "i16": true, "i32": true, "i64": true,
	"f32": true, "f64": true, "bool": true,
}

// renderCallArguments renders the argument list of a call to fnName,
// applying spec.md §4.6's by-reference/by-value rules when fnName is a
// known function. Unknown callees (external C functions, calls through a
// callback variable) fall back to plain value emission, since no formal
// signature is available to decide reference semantics from.
func (e *Emitter) renderCallArguments(fnName string, args []ast.Expr) (string, error) {
	sig, known := e.S.Symbols.FunctionSignatures[fnName]
	if !known {
		return e.renderPlainArguments(args)
	}
	//
	rendered := make([]string, len(args))
	//
	for i, arg := range args {
		text, err := e.renderOneArgument(sig, i, arg)
		if err != nil {
			return "", err
		}
		//
		rendered[i] = text
	}
	//
	e.trackPassThroughModification(sig, args)
	//
	return strings.Join(rendered, ", "), nil
}

func (e *Emitter) renderPlainArguments(args []ast.Expr) (string, error) {
	rendered := make([]string, len(args))
	//
	for i, arg := range args {
		text, err := e.Emit(arg)
		if err != nil {
			return "", err
		}
		//
		rendered[i] = text
	}
	//
	return strings.Join(rendered, ", "), nil
}

// renderOneArgument decides pass-by-reference vs pass-by-value for one
// actual argument against its formal parameter, per spec.md §4.6.
func (e *Emitter) renderOneArgument(sig symtab.FunctionSignature, index int, arg ast.Expr) (string, error) {
	if index >= len(sig.Params) {
		// Variadic tail beyond the declared signature: emitted as-is.
		return e.Emit(arg)
	}
	//
	param := sig.Params[index]
	//
	if err := e.validateConstArgument(param, arg); err != nil {
		return "", err
	}
	//
	ident, isIdent := arg.(*ast.Ident)
	//
	if isIdent {
		if callerParam, isCallerParam := e.S.CurrentParameters[ident.Name]; isCallerParam {
			if callerParam.ForcePointerSemantics {
				// Callback-promoted parameter: the identifier already names a
				// pointer at this call site, never re-address it.
				return e.Emit(arg)
			}
			//
			if passByValueBaseTypes[param.BaseType] {
				return e.Emit(arg)
			}
			//
			if !callerParam.IsArray && !callerParam.IsString {
				rendered, err := e.Emit(arg)
				if err != nil {
					return "", err
				}
				//
				return "&" + rendered, nil
			}
			//
			return e.Emit(arg)
		}
		//
		if passByValueBaseTypes[param.BaseType] {
			return e.Emit(arg)
		}
		//
		if t, ok := e.S.LocalVariables[ident.Name]; ok {
			if t.IsArray || t.IsString || t.IsPointer {
				return e.Emit(arg)
			}
			//
			if t.IsEnum && e.S.CxxMode {
				rendered, err := e.Emit(arg)
				if err != nil {
					return "", err
				}
				//
				return fmt.Sprintf("static_cast<%s>(%s)", param.BaseType, rendered), nil
			}
		}
		//
		rendered, err := e.Emit(arg)
		if err != nil {
			return "", err
		}
		//
		return "&" + rendered, nil
	}
	//
	// Non-identifier actuals (literals, nested postfix chains, expressions):
	// these never own addressable storage, so they always pass by value.
	return e.Emit(arg)
}

// validateConstArgument rejects passing a const-qualified local variable
// into a non-const formal parameter (spec.md §7.2).
func (e *Emitter) validateConstArgument(param symtab.Param, arg ast.Expr) error {
	if param.IsConst {
		return nil
	}
	//
	ident, ok := arg.(*ast.Ident)
	if !ok {
		return nil
	}
	//
	if t, ok := e.S.LocalVariables[ident.Name]; ok && t.IsConst {
		return generrors.New(generrors.KindConstToNonConstParam,
			"cannot pass const %q to non-const parameter %q", ident.Name, param.Name)
	}
	//
	return nil
}

// trackPassThroughModification marks an outer function parameter as
// modified when it is passed, by identifier, into an argument slot the
// callee is known to mutate (spec.md §4.6).
func (e *Emitter) trackPassThroughModification(sig symtab.FunctionSignature, args []ast.Expr) {
	for _, slot := range sig.Modifies {
		if slot < 0 || slot >= len(args) {
			continue
		}
		//
		ident, ok := args[slot].(*ast.Ident)
		if !ok {
			continue
		}
		//
		if _, isOuterParam := e.S.CurrentParameters[ident.Name]; isOuterParam {
			e.S.ModifiedParams[ident.Name] = true
		}
	}
}
