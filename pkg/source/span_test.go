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
package source

import (
	"testing"

	"github.com/jlaustill/cnext-codegen/internal/assertx"
)

func Test_Span_StartEndLength(t *testing.T) {
	s := NewSpan(3, 7)
	assertx.Equal(t, 3, s.Start())
	assertx.Equal(t, 7, s.End())
	assertx.Equal(t, 4, s.Length())
}

func Test_Span_ContainsHalfOpenInterval(t *testing.T) {
	s := NewSpan(3, 7)
	assertx.True(t, !s.Contains(2))
	assertx.True(t, s.Contains(3))
	assertx.True(t, s.Contains(6))
	assertx.True(t, !s.Contains(7))
}
