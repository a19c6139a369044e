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

// Package cnxcio loads the JSON intermediate representation the cnxc
// driver exercises the code-generation core with, in place of the real
// upstream parser/symbol-collector pipeline (both are external
// collaborators this module does not implement, per spec.md §1). It is the
// JSON equivalent of the teacher's pkg/trace/json reader: a thin decode
// layer between a file on disk and the core's native Go types.
package cnxcio

import (
	"fmt"

	"github.com/jlaustill/cnext-codegen/pkg/ast"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
	"github.com/jlaustill/cnext-codegen/pkg/symtab"
	"github.com/jlaustill/cnext-codegen/pkg/target"
	"github.com/segmentio/encoding/json"
)

// Unit is the top-level JSON document describing one translation unit's
// worth of input: the target this run compiles for, the enclosing scope
// (if any), the subset of symbol-table and local-variable facts the
// enclosed statements need, and the statements themselves.
type Unit struct {
	Target         TargetJSON           `json:"target"`
	CxxMode        bool                 `json:"cxx_mode"`
	Scope          string               `json:"scope"`
	InFunctionBody bool                 `json:"in_function_body"`
	Symbols        SymbolsJSON          `json:"symbols"`
	LocalVariables map[string]TypeJSON  `json:"local_variables"`
	Parameters     map[string]ParamJSON `json:"parameters"`
	Statements     []AssignmentJSON     `json:"statements"`
}

// TargetJSON mirrors target.Capabilities.
type TargetJSON struct {
	WordSize       uint `json:"word_size"`
	HasLdrexStrex  bool `json:"has_ldrex_strex"`
	HasBasepri     bool `json:"has_basepri"`
}

// BitFieldJSON mirrors symtab.BitField.
type BitFieldJSON struct {
	Offset uint `json:"offset"`
	Width  uint `json:"width"`
}

// SymbolsJSON carries the subset of symtab.Table fields a driven run
// typically needs: the register/bitmap facts bit and bitmap-field handlers
// consult, and the struct-field type names the string-target and
// struct-member-bit classification checks read directly.
type SymbolsJSON struct {
	KnownRegisters       []string                           `json:"known_registers"`
	RegisterMemberAccess map[string]string                  `json:"register_member_access"`
	RegisterMemberTypes  map[string]string                  `json:"register_member_types"`
	BitmapFields         map[string]map[string]BitFieldJSON `json:"bitmap_fields"`
	StructFields         map[string]map[string]string       `json:"struct_fields"`
}

// TypeJSON mirrors state.TypeInfo.
type TypeJSON struct {
	BaseType        string `json:"base_type"`
	IsArray         bool   `json:"is_array"`
	ArrayDimensions []uint `json:"array_dimensions"`
	IsConst         bool   `json:"is_const"`
	IsAtomic        bool   `json:"is_atomic"`
	IsClamped       bool   `json:"is_clamped"`
	IsString        bool   `json:"is_string"`
	StringCapacity  uint   `json:"string_capacity"`
	IsBitmap        bool   `json:"is_bitmap"`
	BitmapTypeName  string `json:"bitmap_type_name"`
}

// ParamJSON mirrors state.Param.
type ParamJSON struct {
	BaseType              string `json:"base_type"`
	IsArray               bool   `json:"is_array"`
	IsStruct              bool   `json:"is_struct"`
	IsConst               bool   `json:"is_const"`
	IsCallback            bool   `json:"is_callback"`
	IsString              bool   `json:"is_string"`
	ForcePointerSemantics bool   `json:"force_pointer_semantics"`
}

// AssignmentJSON is one statement: an LHS expression chain, the source
// operator exactly as spec.md §4.1's opTable keys it, and an RHS
// expression.
type AssignmentJSON struct {
	Target ExprJSON `json:"target"`
	Op     string   `json:"op"`
	Value  ExprJSON `json:"value"`
}

// ExprJSON is the tagged-union JSON shape for one ast.Expr. Exactly one of
// the fields matching Node is populated, mirroring ast.go's own
// documented "exactly one field is non-nil" convention for PostfixOp.
type ExprJSON struct {
	Node string `json:"node"`

	Name string `json:"name,omitempty"`

	Kind string `json:"kind,omitempty"`
	Text string `json:"text,omitempty"`

	Op      string    `json:"op,omitempty"`
	Operand *ExprJSON `json:"operand,omitempty"`
	Left    *ExprJSON `json:"left,omitempty"`
	Right   *ExprJSON `json:"right,omitempty"`

	Primary *ExprJSON     `json:"primary,omitempty"`
	Ops     []PostfixOpJSON `json:"ops,omitempty"`
}

// PostfixOpJSON is the tagged-union JSON shape for one ast.PostfixOp.
type PostfixOpJSON struct {
	Member    string     `json:"member,omitempty"`
	Subscript []ExprJSON `json:"subscript,omitempty"`
	Call      []ExprJSON `json:"call,omitempty"`
}

// Load reads and decodes a Unit from raw JSON bytes.
func Load(data []byte) (*Unit, error) {
	var u Unit
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("cnxcio: decode: %w", err)
	}
	//
	return &u, nil
}

// Target converts TargetJSON to target.Capabilities.
func (t TargetJSON) Target() target.Capabilities {
	return target.Capabilities{
		WordSize:      t.WordSize,
		HasLdrexStrex: t.HasLdrexStrex,
		HasBasepri:    t.HasBasepri,
	}
}

// Symtab builds a *symtab.Table from the decoded symbol facts.
func (u *Unit) Symtab() *symtab.Table {
	t := symtab.New()
	//
	for _, reg := range u.Symbols.KnownRegisters {
		t.KnownRegisters[reg] = true
	}
	//
	for k, v := range u.Symbols.RegisterMemberAccess {
		t.RegisterMemberAccess[k] = symtab.Access(v)
	}
	//
	for k, v := range u.Symbols.RegisterMemberTypes {
		t.RegisterMemberTypes[k] = v
	}
	//
	for bitmapName, fields := range u.Symbols.BitmapFields {
		t.BitmapFields[bitmapName] = make(map[string]symtab.BitField, len(fields))
		//
		for field, bf := range fields {
			t.BitmapFields[bitmapName][field] = symtab.BitField{Offset: bf.Offset, Width: bf.Width}
		}
	}
	//
	for scope, fields := range u.Symbols.StructFields {
		t.StructFields[scope] = make(map[string]string, len(fields))
		//
		for field, typeName := range fields {
			t.StructFields[scope][field] = typeName
		}
	}
	//
	return t
}

// State builds a *state.State from the decoded unit, with LocalVariables
// and Parameters populated so the Context Builder's resolveFirstIdType and
// the handlers' struct-parameter separator logic see the same facts an
// upstream symbol-collection pass would have recorded.
func (u *Unit) State() *state.State {
	s := state.New(u.Symtab(), u.Target.Target())
	s.CxxMode = u.CxxMode
	s.CurrentScope = u.Scope
	s.InFunctionBody = u.InFunctionBody
	//
	for name, t := range u.LocalVariables {
		s.LocalVariables[name] = t.TypeInfo()
	}
	//
	for name, p := range u.Parameters {
		s.CurrentParameters[name] = p.Param()
	}
	//
	return s
}

// TypeInfo converts TypeJSON to state.TypeInfo.
func (t TypeJSON) TypeInfo() state.TypeInfo {
	return state.TypeInfo{
		BaseType:        t.BaseType,
		IsArray:         t.IsArray,
		ArrayDimensions: t.ArrayDimensions,
		IsConst:         t.IsConst,
		IsAtomic:        t.IsAtomic,
		IsClamped:       t.IsClamped,
		IsString:        t.IsString,
		StringCapacity:  t.StringCapacity,
		IsBitmap:        t.IsBitmap,
		BitmapTypeName:  t.BitmapTypeName,
	}
}

// Param converts ParamJSON to state.Param.
func (p ParamJSON) Param() state.Param {
	return state.Param{
		BaseType:              p.BaseType,
		IsArray:               p.IsArray,
		IsStruct:              p.IsStruct,
		IsConst:               p.IsConst,
		IsCallback:            p.IsCallback,
		IsString:              p.IsString,
		ForcePointerSemantics: p.ForcePointerSemantics,
	}
}

// Assignments converts every decoded statement to an *ast.Assignment.
func (u *Unit) Assignments() ([]*ast.Assignment, error) {
	out := make([]*ast.Assignment, 0, len(u.Statements))
	//
	for i, stmt := range u.Statements {
		target, err := stmt.Target.toExpr()
		if err != nil {
			return nil, fmt.Errorf("cnxcio: statement %d target: %w", i, err)
		}
		//
		value, err := stmt.Value.toExpr()
		if err != nil {
			return nil, fmt.Errorf("cnxcio: statement %d value: %w", i, err)
		}
		//
		out = append(out, &ast.Assignment{
			Target: target,
			SrcOp:  ast.Op(stmt.Op),
			Value:  value,
		})
	}
	//
	return out, nil
}

// toExpr recursively converts one ExprJSON node into its ast.Expr
// counterpart. A span-free BaseNode is used throughout: this driver has no
// source file backing its JSON input, so diagnostics it surfaces carry no
// position (source.SyntaxError degrades gracefully to a bare message).
func (e *ExprJSON) toExpr() (ast.Expr, error) {
	if e == nil {
		return nil, fmt.Errorf("cnxcio: nil expression")
	}
	//
	switch e.Node {
	case "ident":
		return &ast.Ident{Name: e.Name}, nil
	case "this":
		return &ast.This{}, nil
	case "global":
		return &ast.Global{}, nil
	case "literal":
		return &ast.Literal{Kind: e.Kind, Text: e.Text}, nil
	case "raw":
		return &ast.Raw{Text: e.Text}, nil
	case "unary":
		operand, err := e.Operand.toExpr()
		if err != nil {
			return nil, err
		}
		//
		return &ast.Unary{Op: e.Op, Operand: operand}, nil
	case "binary":
		left, err := e.Left.toExpr()
		if err != nil {
			return nil, err
		}
		//
		right, err := e.Right.toExpr()
		if err != nil {
			return nil, err
		}
		//
		return &ast.Binary{Op: e.Op, Left: left, Right: right}, nil
	case "postfix":
		primary, err := e.Primary.toExpr()
		if err != nil {
			return nil, err
		}
		//
		ops := make([]ast.PostfixOp, 0, len(e.Ops))
		//
		for _, opJSON := range e.Ops {
			op, err := opJSON.toPostfixOp()
			if err != nil {
				return nil, err
			}
			//
			ops = append(ops, op)
		}
		//
		return &ast.Postfix{Primary: primary, Ops: ops}, nil
	default:
		return nil, fmt.Errorf("cnxcio: unknown expression node %q", e.Node)
	}
}

func (p *PostfixOpJSON) toPostfixOp() (ast.PostfixOp, error) {
	switch {
	case p.Member != "":
		return ast.PostfixOp{Member: &ast.MemberOp{Name: p.Member}}, nil
	case p.Subscript != nil:
		exprs, err := toExprs(p.Subscript)
		if err != nil {
			return ast.PostfixOp{}, err
		}
		//
		return ast.PostfixOp{Subscript: &ast.SubscriptOp{Exprs: exprs}}, nil
	case p.Call != nil:
		exprs, err := toExprs(p.Call)
		if err != nil {
			return ast.PostfixOp{}, err
		}
		//
		return ast.PostfixOp{Call: &ast.CallOp{Args: exprs}}, nil
	default:
		return ast.PostfixOp{}, fmt.Errorf("cnxcio: postfix op has no member/subscript/call")
	}
}

func toExprs(items []ExprJSON) ([]ast.Expr, error) {
	out := make([]ast.Expr, 0, len(items))
	//
	for i := range items {
		expr, err := items[i].toExpr()
		if err != nil {
			return nil, err
		}
		//
		out = append(out, expr)
	}
	//
	return out, nil
}
