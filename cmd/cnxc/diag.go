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
package main

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// fallbackWidth is used when stderr is not a terminal (piped output,
// CI logs) or the width query fails, mirroring the teacher's termio
// package falling back to a fixed width outside an interactive session.
const fallbackWidth = 100

// diagnosticWidth reports the column width a diagnostic line should wrap
// to: the real terminal width when stderr is a TTY, fallbackWidth
// otherwise.
func diagnosticWidth() int {
	fd := int(os.Stderr.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	//
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	//
	return w
}

// wrapDiagnostic breaks msg into lines no longer than width, breaking only
// at word boundaries so a long error.Error() string prints readably on a
// narrow terminal instead of as one unbroken line.
func wrapDiagnostic(msg string, width int) string {
	words := strings.Fields(msg)
	if len(words) == 0 {
		return msg
	}
	//
	var lines []string
	line := words[0]
	//
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			//
			continue
		}
		//
		line = line + " " + w
	}
	//
	lines = append(lines, line)
	//
	return strings.Join(lines, "\n")
}
