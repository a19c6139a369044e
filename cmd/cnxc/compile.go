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
	"fmt"
	"os"

	"github.com/jlaustill/cnext-codegen/internal/cnxcio"
	"github.com/jlaustill/cnext-codegen/pkg/gen/emit"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile <unit.json>",
	Short: "Emit C statements for every assignment in a JSON unit description.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func runCompile(cmd *cobra.Command, args []string) error {
	unit, err := loadUnit(args[0])
	if err != nil {
		return reportDiagnostic(err)
	}
	//
	assignments, err := unit.Assignments()
	if err != nil {
		return reportDiagnostic(err)
	}
	//
	log.WithField("statements", len(assignments)).Debug("cnxc: loaded unit")
	//
	gen := emit.NewGenerator(unit.State())
	out, err := gen.Unit(assignments)
	if err != nil {
		return reportDiagnostic(err)
	}
	//
	for _, inc := range out.Includes {
		fmt.Println(inc)
	}
	//
	if len(out.Includes) > 0 {
		fmt.Println()
	}
	//
	for _, stmt := range out.Statements {
		fmt.Println(stmt)
	}
	//
	if out.Epilogue != "" {
		fmt.Println()
		fmt.Println(out.Epilogue)
	}
	//
	return nil
}

func loadUnit(path string) (*cnxcio.Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	//
	return cnxcio.Load(data)
}

// reportDiagnostic prints err wrapped to the detected terminal width and
// returns it unchanged so Execute's error path still sets a failing exit
// status (spec.md §3's diagnostic printer, see diag.go).
func reportDiagnostic(err error) error {
	width := diagnosticWidth()
	fmt.Fprintln(os.Stderr, wrapDiagnostic(err.Error(), width))
	//
	return err
}
