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

// Package ast defines the node shapes this code-generation core consumes.
// The parser that produces these, and the symbol-collection pass that
// annotates them, are external collaborators (spec.md §1); this package is
// only the contract between them and the core.
package ast

import "github.com/jlaustill/cnext-codegen/pkg/source"

// Op is a source-level operator token, e.g. "<-", "+<-", "=", "+".
type Op string

// Fixed source-level compound-assignment operators (spec.md §4.1's table).
const (
	OpAssign       Op = "<-"
	OpAddAssign    Op = "+<-"
	OpSubAssign    Op = "-<-"
	OpMulAssign    Op = "*<-"
	OpDivAssign    Op = "/<-"
	OpModAssign    Op = "%<-"
	OpAndAssign    Op = "&<-"
	OpOrAssign     Op = "|<-"
	OpXorAssign    Op = "^<-"
	OpShlAssign    Op = "<<<-"
	OpShrAssign    Op = ">><-"
)

// Node is the minimal contract every AST node satisfies: a source span for
// diagnostics.
type Node interface {
	Span() source.Span
}

// Expr is an arbitrary right-hand-side or subscript expression node. The
// concrete shapes below (Ident, Literal, Unary, Binary, Postfix, Global,
// This, and Raw for pre-rendered fragments injected by tests) are the ones
// the Context Builder and Expression Emitter recognise; the Expression
// Emitter panics on any other node type.
type Expr interface {
	Node
	exprNode()
}

// BaseNode supplies Span() to every concrete node below by embedding.
type BaseNode struct {
	Sp source.Span
}

// Span implements Node.
func (b BaseNode) Span() source.Span { return b.Sp }

// Ident is a bare identifier reference, e.g. `x`, `speed`.
type Ident struct {
	BaseNode
	Name string
}

func (*Ident) exprNode() {}

// This is the `this` keyword used inside a scope body.
type This struct{ BaseNode }

func (*This) exprNode() {}

// Global is the `global` keyword used to force cross-scope resolution.
type Global struct{ BaseNode }

func (*Global) exprNode() {}

// Literal is a source-level literal: integer, float, bool, or string.
type Literal struct {
	BaseNode
	// Kind is one of "int", "float", "bool", "string".
	Kind string
	// Text is the literal exactly as written in source, suffix included
	// (e.g. "42u64", "3.14f32", "true", `"Alice"`).
	Text string
}

func (*Literal) exprNode() {}

// Unary is a prefix unary expression: !, -, ~, &.
type Unary struct {
	BaseNode
	Op      string
	Operand Expr
}

func (*Unary) exprNode() {}

// Binary is an infix binary expression.
type Binary struct {
	BaseNode
	Op          string
	Left, Right Expr
}

func (*Binary) exprNode() {}

// MemberOp is a `.member` postfix operation, covering ordinary member
// access, enum members, scope members, and property pseudo-fields
// (`.capacity`, `.size`, `.bit_length`, `.byte_length`, `.element_count`,
// `.char_count`, the deprecated `.length`).
type MemberOp struct {
	BaseNode
	Name string
}

// SubscriptOp is a `[...]` postfix operation. One expression is a bit index
// or array index; two expressions ([start, width]) is a bit range or array
// slice.
type SubscriptOp struct {
	BaseNode
	Exprs []Expr
}

// CallOp is a `(...)` postfix operation.
type CallOp struct {
	BaseNode
	Args []Expr
}

// PostfixOp is the union of the three postfix operation shapes; exactly one
// field is non-nil.
type PostfixOp struct {
	Member    *MemberOp
	Subscript *SubscriptOp
	Call      *CallOp
}

// Postfix is a primary expression followed by zero or more postfix
// operations, e.g. `a.b[0].c(x)`.
type Postfix struct {
	BaseNode
	Primary Expr
	Ops     []PostfixOp
}

func (*Postfix) exprNode() {}

// Raw wraps an already-rendered C fragment as an Expr, for tests and for any
// RHS the upstream emitter has already materialized (spec.md's
// `generatedValue` field arrives this way in practice).
type Raw struct {
	BaseNode
	Text string
}

func (*Raw) exprNode() {}

// Assignment is one assignment statement as produced by the parser: a LHS
// expression chain (Target), a source operator, and a RHS expression.
type Assignment struct {
	BaseNode
	Target Expr
	SrcOp  Op
	Value  Expr
}
