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

// This file implements spec.md §4.3's ATOMIC_RMW handler: a compound
// assignment on a target declared `atomic`, delegated to a platform-aware
// helper per spec.md §6's targetCapabilities — the LDREX/STREX
// load-linked/store-conditional loop where the target supports exclusive
// access, otherwise a BASEPRI/PRIMASK-guarded critical section.
package handlers

import (
	"fmt"

	"github.com/jlaustill/cnext-codegen/pkg/gen/classify"
	gencontext "github.com/jlaustill/cnext-codegen/pkg/gen/context"
	"github.com/jlaustill/cnext-codegen/pkg/gen/expr"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

func init() {
	register(classify.KindAtomicRMW, handleAtomicRMW)
}

func handleAtomicRMW(s *state.State, _ *expr.Emitter, ctx *gencontext.AssignmentContext) (string, error) {
	name := ctx.ResolvedTarget
	//
	if name == "" {
		name = receiverName(s, ctx)
	}
	//
	arith := narrowedOp(ctx.COp)
	cType := "uint32_t"
	//
	if ctx.FirstIdTypeInfo != nil {
		cType = ctx.FirstIdTypeInfo.CType()
	}
	//
	s.MarkInclude(state.IncludeCMSIS)
	//
	if s.Target.HasLdrexStrex {
		return emitLdrexStrex(name, cType, arith, ctx.GeneratedValue), nil
	}
	//
	return emitBasepriCritical(s, name, arith, ctx.GeneratedValue), nil
}

// emitLdrexStrex renders the load-exclusive/store-exclusive retry loop:
// `do { tmp = __LDREXW(&name); tmp = tmp op value; } while (__STREXW(tmp,
// &name) != 0U); __CLREX();` using the CMSIS intrinsics the teacher's
// target headers expose.
func emitLdrexStrex(name, cType, arith, value string) string {
	return fmt.Sprintf(
		"do { %s tmp = (%s)__LDREXW((volatile uint32_t *)&%s); tmp = tmp %s %s; } while (__STREXW((uint32_t)tmp, (volatile uint32_t *)&%s) != 0U); __CLREX();",
		cType, cType, name, arith, value, name,
	)
}

// emitBasepriCritical renders the BASEPRI/PRIMASK-guarded critical section
// fallback for targets without exclusive-access atomics: raise the
// interrupt priority mask, perform the plain read-modify-write, restore it.
func emitBasepriCritical(s *state.State, name, arith, value string) string {
	s.MarkInclude(state.IncludeISR)
	//
	if s.Target.HasBasepri {
		return fmt.Sprintf(
			"{ uint32_t __cnx_basepri = __get_BASEPRI(); __set_BASEPRI(CNX_ATOMIC_BASEPRI); %s = %s %s %s; __set_BASEPRI(__cnx_basepri); }",
			name, name, arith, value,
		)
	}
	//
	return fmt.Sprintf(
		"{ uint32_t __cnx_primask = __get_PRIMASK(); __disable_irq(); %s = %s %s %s; __set_PRIMASK(__cnx_primask); }",
		name, name, arith, value,
	)
}
