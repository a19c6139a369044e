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
package namemangle

import (
	"testing"

	"github.com/jlaustill/cnext-codegen/internal/assertx"
)

func Test_ForMember_JoinsWithUnderscore(t *testing.T) {
	assertx.Equal(t, "a_b", ForMember("a", "b"))
}

func Test_ForMember_EmptyScopeReturnsBareMember(t *testing.T) {
	assertx.Equal(t, "b", ForMember("", "b"))
}

func Test_Chain_JoinsMultipleParts(t *testing.T) {
	assertx.Equal(t, "Scope_Reg_Member", Chain("Scope", "Reg", "Member"))
}

func Test_Chain_SkipsEmptyParts(t *testing.T) {
	assertx.Equal(t, "Scope_Member", Chain("Scope", "", "Member"))
}

func Test_Chain_AllEmptyYieldsEmptyString(t *testing.T) {
	assertx.Equal(t, "", Chain("", ""))
}

func Test_EnumMember_CMode(t *testing.T) {
	assertx.Equal(t, "Color_Red", EnumMember("Color", "Red", false))
}

func Test_EnumMember_CxxMode(t *testing.T) {
	assertx.Equal(t, "Color::Red", EnumMember("Color", "Red", true))
}

func Test_ScopeMember_CMode(t *testing.T) {
	assertx.Equal(t, "Motor_speed", ScopeMember("Motor", "speed", false))
}

func Test_ScopeMember_CxxMode(t *testing.T) {
	assertx.Equal(t, "Motor::speed", ScopeMember("Motor", "speed", true))
}
