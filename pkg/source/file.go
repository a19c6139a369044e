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

import "fmt"

// Line describes a single physical line within a File, counting from 1.
type Line struct {
	text   []rune
	span   Span
	number int
}

// String returns the textual content of this line.
func (l Line) String() string {
	return string(l.text[l.span.start:l.span.end])
}

// Number returns the 1-based line number.
func (l Line) Number() int { return l.number }

// File represents one input file being compiled, retained only so
// diagnostics can report line/column context; the parser owns actually
// producing one of these.
type File struct {
	filename string
	contents []rune
}

// NewFile constructs a File from raw bytes.
func NewFile(filename string, contents []byte) *File {
	return &File{filename, []rune(string(contents))}
}

// Filename returns this file's name as given to NewFile.
func (f *File) Filename() string { return f.filename }

// SyntaxError constructs a SyntaxError anchored at span within this file.
func (f *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{f, span, msg}
}

// FindFirstEnclosingLine returns the first line enclosing the start of span.
// If span lies beyond the end of the file, the last physical line is
// returned instead.
func (f *File) FindFirstEnclosingLine(span Span) Line {
	num := 1
	start := 0
	//
	for i := 0; i < len(f.contents); i++ {
		if i == span.start {
			return Line{f.contents, Span{start, endOfLine(i, f.contents)}, num}
		} else if f.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{f.contents, Span{start, len(f.contents)}, num}
}

func endOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	//
	return len(text)
}

// SyntaxError is a structured diagnostic carrying the file and span it
// concerns, alongside a human-readable message. It is the concrete type
// underlying every error returned by pkg/gen/errors that has a known source
// position.
type SyntaxError struct {
	file *File
	span Span
	msg  string
}

// NewSyntaxError constructs a position-free syntax error, for callers (e.g.
// unit tests) operating without a backing File.
func NewSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{nil, Span{}, msg}
}

// File returns the file this error concerns, or nil if none was given.
func (e *SyntaxError) File() *File { return e.file }

// Span returns the span this error concerns.
func (e *SyntaxError) Span() Span { return e.span }

// Message returns the raw diagnostic message, without position prefix.
func (e *SyntaxError) Message() string { return e.msg }

// Error implements the error interface, rendering "<line>:<col> Error: ..."
// when a position is known, per spec.md §6's fixed wire format, or the bare
// message otherwise.
func (e *SyntaxError) Error() string {
	if e.file == nil {
		return e.msg
	}
	//
	line := e.file.FindFirstEnclosingLine(e.span)
	col := e.span.start - line.span.start + 1
	//
	return fmt.Sprintf("%d:%d Error: %s", line.number, col, e.msg)
}
