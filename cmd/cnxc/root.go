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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd is the base command, mirroring the teacher's pkg/cmd/corset
// command-tree style: a root command carrying persistent flags, with
// independent subcommands doing the actual work.
var rootCmd = &cobra.Command{
	Use:   "cnxc",
	Short: "Thin driver for the CNext assignment/access code-generation core.",
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase logging verbosity (-v, -vv)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		//
		switch {
		case verbosity >= 2:
			log.SetLevel(log.TraceLevel)
		case verbosity == 1:
			log.SetLevel(log.DebugLevel)
		default:
			log.SetLevel(log.InfoLevel)
		}
	}
	//
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(traceCmd)
}
