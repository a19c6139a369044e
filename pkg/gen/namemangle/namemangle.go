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

// Package namemangle implements spec.md §4.5's NameMangler: joining a scope
// (or scope chain) and a member name into the flat C identifier every
// scope/register/enum handler emits into. spec.md §9's Open Question #2
// names this the "newer, factored form" that every handler in this module
// routes through, rather than open-coding `Scope_Reg_Member` concatenation.
package namemangle

import "strings"

// ForMember joins a scope (or other qualifier) and a member name with a
// single underscore: ForMember("a", "b") == "a_b".
func ForMember(scope, member string) string {
	if scope == "" {
		return member
	}
	//
	return scope + "_" + member
}

// Chain progressively mangles an arbitrary-length qualifier chain, e.g.
// Chain("Scope", "Reg", "Member") == "Scope_Reg_Member", with no ambiguity
// introduced by intermediate separators (spec.md §4.5).
func Chain(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	//
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	//
	return strings.Join(nonEmpty, "_")
}

// EnumMember renders an enum member reference: `Enum_Value` in C mode,
// `Enum::Value` in C++ mode (spec.md §4.4, §6's operator translation
// table).
func EnumMember(enumName, value string, cxxMode bool) string {
	if cxxMode {
		return enumName + "::" + value
	}
	//
	return ForMember(enumName, value)
}

// ScopeMember renders a scope-member reference the same way an enum member
// is rendered in C mode (`_`), or `::` for a C++-mode scope-symbol chain
// (spec.md §6's operator translation table: "scope member (C) / (C++ scope
// symbol)").
func ScopeMember(scope, member string, cxxMode bool) string {
	if cxxMode {
		return scope + "::" + member
	}
	//
	return ForMember(scope, member)
}
