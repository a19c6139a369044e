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
package includes

import (
	"strings"
	"testing"

	"github.com/jlaustill/cnext-codegen/internal/assertx"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
	"github.com/jlaustill/cnext-codegen/pkg/symtab"
	"github.com/jlaustill/cnext-codegen/pkg/target"
)

func newTestState() *state.State {
	return state.New(symtab.New(), target.Default())
}

func Test_Directives_Empty(t *testing.T) {
	s := newTestState()
	assertx.Equal(t, 0, len(Directives(s)))
}

func Test_Directives_FixedOrder(t *testing.T) {
	s := newTestState()
	// Mark out of declaration order; Directives must still emit in its own
	// fixed order regardless of mark order.
	s.MarkInclude(state.IncludeISR)
	s.MarkInclude(state.IncludeStdint)
	s.MarkInclude(state.IncludeString)
	//
	got := Directives(s)
	assertx.Equal(t, 3, len(got))
	assertx.Equal(t, `#include <stdint.h>`, got[0])
	assertx.Equal(t, `#include <string.h>`, got[1])
	assertx.Equal(t, `#include "isr.h"`, got[2])
}

func Test_ClampHelperDefinitions_Empty(t *testing.T) {
	s := newTestState()
	assertx.Equal(t, 0, len(ClampHelperDefinitions(s)))
}

func Test_ClampHelperDefinitions_OneOp(t *testing.T) {
	s := newTestState()
	s.MarkClampOp(state.ClampAddU8)
	//
	defs := ClampHelperDefinitions(s)
	assertx.Equal(t, 1, len(defs))
	assertx.True(t, strings.Contains(defs[0], "cnx_clamp_add_u8"))
	assertx.True(t, strings.Contains(defs[0], "UINT8_MAX"))
}

func Test_ClampHelperDefinitions_SignedLimits(t *testing.T) {
	s := newTestState()
	s.MarkClampOp(state.ClampSubI16)
	//
	defs := ClampHelperDefinitions(s)
	assertx.True(t, strings.Contains(defs[0], "INT16_MIN"))
	assertx.True(t, strings.Contains(defs[0], "INT16_MAX"))
}

func Test_SafeDivHelperDefinitions_Div(t *testing.T) {
	s := newTestState()
	s.MarkSafeDivOp(state.SafeDivU32)
	//
	defs := SafeDivHelperDefinitions(s)
	assertx.Equal(t, 1, len(defs))
	assertx.True(t, strings.Contains(defs[0], "cnx_safe_div_u32"))
	assertx.True(t, strings.Contains(defs[0], "a / b"))
}

func Test_SafeDivHelperDefinitions_Mod(t *testing.T) {
	s := newTestState()
	s.MarkSafeDivOp(state.SafeModI8)
	//
	defs := SafeDivHelperDefinitions(s)
	assertx.True(t, strings.Contains(defs[0], "a % b"))
}

func Test_HelperEpilogue_ClampBeforeSafeDiv(t *testing.T) {
	s := newTestState()
	s.MarkSafeDivOp(state.SafeDivU8)
	s.MarkClampOp(state.ClampAddU8)
	//
	epilogue := HelperEpilogue(s)
	clampIdx := strings.Index(epilogue, "cnx_clamp_add_u8")
	divIdx := strings.Index(epilogue, "cnx_safe_div_u8")
	//
	assertx.True(t, clampIdx >= 0 && divIdx >= 0 && clampIdx < divIdx)
}

func Test_FloatStaticAssertHeader_HasGuard(t *testing.T) {
	header := FloatStaticAssertHeader()
	assertx.True(t, strings.Contains(header, "CNX_FLOAT_STATIC_ASSERT_H"))
	assertx.True(t, strings.Contains(header, "sizeof(float) == 4"))
}
