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
	"strings"

	"github.com/jlaustill/cnext-codegen/pkg/ast"
	"github.com/jlaustill/cnext-codegen/pkg/gen/classify"
	gencontext "github.com/jlaustill/cnext-codegen/pkg/gen/context"
	"github.com/jlaustill/cnext-codegen/pkg/gen/handlers"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// traceRecord is one assignment's classification and emission, dumped as a
// single JSON object per statement so the two external collaborators this
// module never reaches (the symbol collector, the language server) can
// replay the dispatch without re-deriving it.
type traceRecord struct {
	Identifiers []string `json:"identifiers"`
	HasThis     bool     `json:"hasThis"`
	HasGlobal   bool     `json:"hasGlobal"`
	Kind        string   `json:"kind"`
	COp         string   `json:"cOp"`
	IsCompound  bool     `json:"isCompound"`
	Value       string   `json:"value"`
	Target      string   `json:"resolvedTarget"`
	Emitted     string   `json:"emitted"`
}

var traceCmd = &cobra.Command{
	Use:   "trace <unit.json>",
	Short: "Dump one JSON trace record per assignment: classified kind, resolved target, emitted text.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrace,
}

func runTrace(cmd *cobra.Command, args []string) error {
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
	builder := gencontext.New(unit.State())
	//
	for i, assign := range assignments {
		rec, err := traceOne(builder, assign)
		if err != nil {
			return reportDiagnostic(err)
		}
		//
		encoded, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		//
		log.WithField("index", i).Trace("cnxc: traced assignment")
		fmt.Fprintln(os.Stdout, string(encoded))
	}
	//
	return nil
}

func traceOne(builder *gencontext.Builder, assign *ast.Assignment) (traceRecord, error) {
	ctx, err := builder.Build(assign)
	if err != nil {
		return traceRecord{}, err
	}
	//
	kind := classify.Classify(builder.S, ctx)
	handler := handlers.Lookup(kind)
	//
	emitted, err := handler(builder.S, builder.E, ctx)
	if err != nil {
		return traceRecord{}, err
	}
	//
	if prelude := builder.S.DrainPendingPreludeStatements(); len(prelude) > 0 {
		emitted = strings.Join(append(prelude, emitted), " ")
	}
	//
	return traceRecord{
		Identifiers: ctx.Identifiers,
		HasThis:     ctx.HasThis,
		HasGlobal:   ctx.HasGlobal,
		Kind:        string(kind),
		COp:         ctx.COp,
		IsCompound:  ctx.IsCompound,
		Value:       ctx.GeneratedValue,
		Target:      ctx.ResolvedTarget,
		Emitted:     emitted,
	}, nil
}
