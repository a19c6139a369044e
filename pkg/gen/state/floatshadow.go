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
package state

import (
	"fmt"

	generrors "github.com/jlaustill/cnext-codegen/pkg/gen/errors"
)

// FloatShadowName returns the union type-pun shadow variable's name for a
// float lvalue (spec.md §4.3's float bit-access rule). Shared by the
// write-side handlers and the read-side expression emitter so both sides
// name the same shadow for the same lvalue.
func FloatShadowName(name string) string { return "__bits_" + name }

// FloatUnionTypes returns the C type and its same-width unsigned-integer
// punning type for a float base type ("f32"/"f64").
func FloatUnionTypes(baseType string) (cType, uType string) {
	if baseType == "f64" {
		return "double", "uint64_t"
	}
	//
	return "float", "uint32_t"
}

// EnsureFloatShadow hoists the union type-pun shadow declaration for a float
// variable (once per enclosing function body) and, the first time it's
// touched in an unbroken batch, emits the `shadow.f = name;` copy-in, per
// spec.md §4.3's float bit-access rule. Forbidden outside a function body,
// since the shadow declaration has nowhere to hoist to. Used both by the
// write-side bit handlers and the read-side postfix emitter, so a read and
// a write of the same float bit in the same batch share one shadow and one
// copy-in.
func EnsureFloatShadow(s *State, name, baseType string) (shadow string, copyIn string, err error) {
	if !s.InFunctionBody {
		return "", "", generrors.New(generrors.KindFloatBitGlobalScope,
			"bit access on float %q is not valid at global scope", name)
	}
	//
	shadow = FloatShadowName(name)
	cType, uType := FloatUnionTypes(baseType)
	//
	if !s.FloatBitShadows[name] {
		s.FloatBitShadows[name] = true
		s.AddPendingTempDeclaration(fmt.Sprintf("union { %s f; %s u; } %s;", cType, uType, shadow))
		s.MarkInclude(IncludeFloatStaticAssert)
		s.MarkInclude(IncludeStdint)
	}
	//
	if !s.FloatShadowCurrent[name] {
		copyIn = fmt.Sprintf("%s.f = %s;", shadow, name)
		s.FloatShadowCurrent[name] = true
	}
	//
	return shadow, copyIn, nil
}
