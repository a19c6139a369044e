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

// Package strutil implements spec.md §4.5's StringUtils: the
// fixed-capacity-aware copy templates used by every STRING_* handler and by
// ARRAY_SLICE when the target is a string.
package strutil

import "fmt"

// CopyTemplate renders the fixed-capacity assignment template:
// `strncpy(target, value, cap); target[cap] = '\0';` as two statements, per
// spec.md §8's concrete scenario 4.
func CopyTemplate(target, value string, capacity uint) string {
	return fmt.Sprintf("strncpy(%s, %s, %d); %s[%d] = '\\0';", target, value, capacity, target, capacity)
}

// SliceCopyTemplate renders the bounded memcpy used for array/string slice
// assignment: `memcpy(&name[offset], &source, length);` (spec.md §4.3
// ARRAY_SLICE, §8 scenario 3).
func SliceCopyTemplate(name string, offset uint, source string, length uint) string {
	return fmt.Sprintf("memcpy(&%s[%d], &%s, %d);", name, offset, source, length)
}

// StringEquals renders string equality/inequality via strcmp, per spec.md
// §4.4: `strcmp(a,b) == 0` / `!= 0`.
func StringEquals(a, b string, negate bool) string {
	if negate {
		return fmt.Sprintf("strcmp(%s, %s) != 0", a, b)
	}
	//
	return fmt.Sprintf("strcmp(%s, %s) == 0", a, b)
}

// CharCount renders the `.char_count` property: `strlen(expr)`.
func CharCount(expr string) string {
	return fmt.Sprintf("strlen(%s)", expr)
}
