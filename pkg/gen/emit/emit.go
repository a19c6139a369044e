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

// Package emit is the top-level per-statement driver of spec.md §2: it
// wires the Context Builder, the Assignment Classifier, and the Handler
// Registry into a single Statement call, and accumulates every statement's
// text plus the Generation State's side effects into a Unit suitable for a
// driver to write out as one translation unit.
package emit

import (
	"strings"

	"github.com/jlaustill/cnext-codegen/pkg/ast"
	"github.com/jlaustill/cnext-codegen/pkg/gen/classify"
	gencontext "github.com/jlaustill/cnext-codegen/pkg/gen/context"
	"github.com/jlaustill/cnext-codegen/pkg/gen/handlers"
	"github.com/jlaustill/cnext-codegen/pkg/gen/includes"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
)

// Unit is the accumulated output of emitting every assignment of one
// translation unit: the ordered statement text, the computed #include set,
// and the consolidated clamp/safe_div/safe_mod helper epilogue (spec.md
// §6's output contract).
type Unit struct {
	Statements []string
	Includes   []string
	Epilogue   string
}

// Generator threads one Builder (and its bound State/Emitter) across every
// assignment of a translation unit.
type Generator struct {
	S       *state.State
	builder *gencontext.Builder
}

// NewGenerator constructs a Generator bound to s, sharing its Context
// Builder/Expression Emitter across every Statement call so scope and
// length-cache bookkeeping persists correctly within one file (spec.md §3).
func NewGenerator(s *state.State) *Generator {
	return &Generator{S: s, builder: gencontext.New(s)}
}

// Statement runs the full Context Builder -> Classifier -> Handler Registry
// pipeline on one assignment and returns the emitted C statement text.
func (g *Generator) Statement(assign *ast.Assignment) (string, error) {
	ctx, err := g.builder.Build(assign)
	if err != nil {
		return "", err
	}
	//
	kind := classify.Classify(g.S, ctx)
	handler := handlers.Lookup(kind)
	//
	stmt, err := handler(g.S, g.builder.E, ctx)
	if err != nil {
		return "", err
	}
	//
	prelude := g.S.DrainPendingPreludeStatements()
	if len(prelude) == 0 {
		return stmt, nil
	}
	//
	return strings.Join(append(prelude, stmt), " "), nil
}

// Unit runs Statement over every assignment in order, stopping at the first
// error, and packages the ordered statement text together with the
// accumulated State's required includes and helper epilogue.
func (g *Generator) Unit(assignments []*ast.Assignment) (Unit, error) {
	stmts := make([]string, 0, len(assignments))
	//
	for _, assign := range assignments {
		stmt, err := g.Statement(assign)
		if err != nil {
			return Unit{}, err
		}
		//
		stmts = append(stmts, stmt)
	}
	//
	return Unit{
		Statements: stmts,
		Includes:   includes.Directives(g.S),
		Epilogue:   includes.HelperEpilogue(g.S),
	}, nil
}
