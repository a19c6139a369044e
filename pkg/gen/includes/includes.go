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

// Package includes materializes the Generation State's accumulated effects
// (spec.md §6 Output) into the textual `#include` directives and the
// consolidated clamp/safe_div/safe_mod helper epilogue. This is purely a
// function of the final State after every statement in a translation unit
// has been emitted — it never mutates State itself.
package includes

import (
	"fmt"
	"strings"

	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

// Directives returns the `#include` lines required by s's accumulated
// include flags, in a fixed, deterministic order (spec.md §6).
func Directives(s *state.State) []string {
	var out []string
	//
	if s.NeedsInclude(state.IncludeStdbool) {
		out = append(out, `#include <stdbool.h>`)
	}
	//
	if s.NeedsInclude(state.IncludeStdint) {
		out = append(out, `#include <stdint.h>`)
	}
	//
	if s.NeedsInclude(state.IncludeString) {
		out = append(out, `#include <string.h>`)
	}
	//
	if s.NeedsInclude(state.IncludeLimits) {
		out = append(out, `#include <limits.h>`)
	}
	//
	if s.NeedsInclude(state.IncludeCMSIS) {
		out = append(out, `#include "cmsis_compiler.h"`)
	}
	//
	if s.NeedsInclude(state.IncludeFloatStaticAssert) {
		out = append(out, `#include "float_static_assert.h"`)
	}
	//
	if s.NeedsInclude(state.IncludeISR) {
		out = append(out, `#include "isr.h"`)
	}
	//
	return out
}

// FloatStaticAssertHeader renders the generated float_static_assert.h
// contents, asserting the union-pun shadow variables of spec.md §4.3 are
// well-sized on the target platform.
func FloatStaticAssertHeader() string {
	return strings.Join([]string{
		"#ifndef CNX_FLOAT_STATIC_ASSERT_H",
		"#define CNX_FLOAT_STATIC_ASSERT_H",
		"",
		"#include <stdint.h>",
		"",
		"_Static_assert(sizeof(float) == 4, \"cnext: float must be 4 bytes for bit-pun shadows\");",
		"_Static_assert(sizeof(double) == 8, \"cnext: double must be 8 bytes for bit-pun shadows\");",
		"",
		"#endif",
		"",
	}, "\n")
}

// clampTypeOf returns the C integer type a clamp operation's suffix names.
func clampTypeOf(suffix string) string {
	i := strings.LastIndex(suffix, "_")
	if i < 0 {
		return "int"
	}
	//
	switch suffix[i+1:] {
	case "u8":
		return "uint8_t"
	case "u16":
		return "uint16_t"
	case "u32":
		return "uint32_t"
	case "u64":
		return "uint64_t"
	case "i8":
		return "int8_t"
	case "i16":
		return "int16_t"
	case "i32":
		return "int32_t"
	case "i64":
		return "int64_t"
	default:
		return "int"
	}
}

// clampLimits returns the {min, max} literal text for the integer type
// named by a clamp operation's type suffix.
func clampLimits(suffix string) (min, max string) {
	i := strings.LastIndex(suffix, "_")
	if i < 0 {
		return "0", "0"
	}
	//
	switch suffix[i+1:] {
	case "u8":
		return "0", "UINT8_MAX"
	case "u16":
		return "0", "UINT16_MAX"
	case "u32":
		return "0", "UINT32_MAX"
	case "u64":
		return "0", "UINT64_MAX"
	case "i8":
		return "INT8_MIN", "INT8_MAX"
	case "i16":
		return "INT16_MIN", "INT16_MAX"
	case "i32":
		return "INT32_MIN", "INT32_MAX"
	case "i64":
		return "INT64_MIN", "INT64_MAX"
	default:
		return "0", "0"
	}
}

// ClampHelperDefinitions renders one `cnx_clamp_<op>_<type>` function
// definition per clamp operation s marked used, in a stable order, per
// spec.md §4.3's OVERFLOW_CLAMP handler.
func ClampHelperDefinitions(s *state.State) []string {
	ops := s.UsedClampOps()
	defs := make([]string, 0, len(ops))
	//
	for _, op := range ops {
		defs = append(defs, clampHelperDefinition(op))
	}
	//
	return defs
}

func clampHelperDefinition(op state.ClampOp) string {
	suffix := op.Name()
	cType := clampTypeOf(suffix)
	name := "cnx_clamp_" + suffix
	minLit, maxLit := clampLimits(suffix)
	arith := clampArith(suffix)
	//
	return fmt.Sprintf(
		"static inline %s %s(%s a, %s b) {\n"+
			"\t%s wide = (%s)a %s (%s)b;\n"+
			"\tif (wide > (%s)%s) { return %s; }\n"+
			"\tif (wide < (%s)%s) { return %s; }\n"+
			"\treturn (%s)wide;\n"+
			"}",
		cType, name, cType, cType,
		widenedType(cType), widenedType(cType), arith, widenedType(cType),
		widenedType(cType), maxLit, maxLit,
		widenedType(cType), minLit, minLit,
		cType,
	)
}

func clampArith(suffix string) string {
	switch {
	case strings.HasPrefix(suffix, "add_"):
		return "+"
	case strings.HasPrefix(suffix, "sub_"):
		return "-"
	case strings.HasPrefix(suffix, "mul_"):
		return "*"
	default:
		return "+"
	}
}

// widenedType returns a wide-enough accumulator type to detect overflow
// before clamping back into cType.
func widenedType(cType string) string {
	switch cType {
	case "uint8_t", "uint16_t", "uint32_t":
		return "int64_t"
	case "int8_t", "int16_t", "int32_t":
		return "int64_t"
	default:
		return cType
	}
}

// SafeDivHelperDefinitions renders one `cnx_safe_div_<type>`/
// `cnx_safe_mod_<type>` function definition per operation s marked used,
// per spec.md §4.6's safe_div/safe_mod rewrite: the helper writes its
// result through an output pointer and reports whether the divisor was
// zero.
func SafeDivHelperDefinitions(s *state.State) []string {
	ops := s.UsedSafeDivOps()
	defs := make([]string, 0, len(ops))
	//
	for _, op := range ops {
		defs = append(defs, safeDivHelperDefinition(op))
	}
	//
	return defs
}

func safeDivHelperDefinition(op state.SafeDivOp) string {
	name := op.Name()
	isMod := strings.Contains(name, "safe_mod_")
	cType := safeDivTypeOf(name)
	operator := "/"
	//
	if isMod {
		operator = "%"
	}
	//
	return fmt.Sprintf(
		"static inline bool %s(%s *out, %s a, %s b) {\n"+
			"\tif (b == 0) { *out = 0; return false; }\n"+
			"\t*out = a %s b;\n"+
			"\treturn true;\n"+
			"}",
		name, cType, cType, cType, operator,
	)
}

func safeDivTypeOf(name string) string {
	i := strings.LastIndex(name, "_")
	if i < 0 {
		return "int"
	}
	//
	return clampTypeOf("_" + name[i+1:])
}

// HelperEpilogue concatenates every used clamp and safe-division helper
// definition, clamp helpers first, each already in the ascending-enum
// order UsedClampOps/UsedSafeDivOps guarantee, for a deterministic epilogue.
func HelperEpilogue(s *state.State) string {
	defs := append(ClampHelperDefinitions(s), SafeDivHelperDefinitions(s)...)
	//
	return strings.Join(defs, "\n\n")
}
