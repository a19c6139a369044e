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

func Test_File_FilenameAndNewFile(t *testing.T) {
	f := NewFile("main.cnx", []byte("x = 1;"))
	assertx.Equal(t, "main.cnx", f.Filename())
}

func Test_File_FindFirstEnclosingLine_FirstLine(t *testing.T) {
	f := NewFile("main.cnx", []byte("line one\nline two\n"))
	//
	line := f.FindFirstEnclosingLine(NewSpan(0, 1))
	assertx.Equal(t, 1, line.Number())
	assertx.Equal(t, "line one", line.String())
}

func Test_File_FindFirstEnclosingLine_SecondLine(t *testing.T) {
	f := NewFile("main.cnx", []byte("line one\nline two\n"))
	//
	line := f.FindFirstEnclosingLine(NewSpan(9, 10))
	assertx.Equal(t, 2, line.Number())
	assertx.Equal(t, "line two", line.String())
}

func Test_File_FindFirstEnclosingLine_BeyondEndReturnsLastLine(t *testing.T) {
	f := NewFile("main.cnx", []byte("only line"))
	//
	line := f.FindFirstEnclosingLine(NewSpan(100, 101))
	assertx.Equal(t, 1, line.Number())
	assertx.Equal(t, "only line", line.String())
}

func Test_SyntaxError_NoPositionRendersBareMessage(t *testing.T) {
	err := NewSyntaxError("something went wrong")
	assertx.Equal(t, "something went wrong", err.Error())
	assertx.True(t, err.File() == nil)
}

func Test_SyntaxError_WithPositionRendersLineColPrefix(t *testing.T) {
	f := NewFile("main.cnx", []byte("line one\nline two\n"))
	//
	err := f.SyntaxError(NewSpan(14, 15), "bad token")
	assertx.Equal(t, "2:6 Error: bad token", err.Error())
	assertx.Equal(t, "bad token", err.Message())
}

func Test_SyntaxError_FirstLineColumn(t *testing.T) {
	f := NewFile("main.cnx", []byte("line one\nline two\n"))
	//
	err := f.SyntaxError(NewSpan(0, 1), "bad token")
	assertx.Equal(t, "1:1 Error: bad token", err.Error())
}
