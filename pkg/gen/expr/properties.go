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
package expr

import (
	"strconv"

	generrors "github.com/jlaustill/cnext-codegen/pkg/gen/errors"
	"github.com/jlaustill/cnext-codegen/pkg/gen/state"
	"github.com/jlaustill/cnext-codegen/pkg/gen/strutil"
)

// tryProperty dispatches the property pseudo-fields of spec.md §4.4:
// .capacity, .size, .bit_length, .byte_length, .element_count, .char_count,
// and the deprecated .length. Returns handled=false when name names none of
// these, so the caller falls through to the ordinary member-op ladder.
func (e *Emitter) tryProperty(ps *postfixState, name string) (result string, handled bool, err error) {
	switch name {
	case "length":
		return "", true, generrors.New(generrors.KindDeprecatedLength,
			".length is deprecated; use .capacity, .size, .bit_length, .byte_length or .element_count")
	case "char_count":
		return e.propertyCharCount(ps)
	case "element_count":
		return e.propertyElementCount(ps)
	case "capacity":
		if ps.cur != nil && ps.cur.IsString {
			return strconv.Itoa(int(ps.cur.StringCapacity)), true, nil
		}
		//
		return "", false, nil
	case "size":
		if ps.cur != nil && ps.cur.IsString {
			return strconv.Itoa(int(ps.cur.StringCapacity) + 1), true, nil
		}
		//
		return "", false, nil
	case "bit_length":
		if ps.cur == nil {
			return "", false, nil
		}
		//
		return strconv.FormatUint(uint64(bitLength(ps.cur)), 10), true, nil
	case "byte_length":
		if ps.resolved == e.S.MainArgsName {
			return "", true, undefinedPropertyError(name)
		}
		//
		if ps.cur == nil {
			return "", false, nil
		}
		//
		return strconv.FormatUint(uint64(bitLength(ps.cur)/8), 10), true, nil
	default:
		return "", false, nil
	}
}

// bitLength computes the total storage in bits for a resolved type, per
// spec.md §4.4: scalar -> bit width; array -> product of dimensions *
// element bits; string -> (capacity+1)*8.
func bitLength(t *state.TypeInfo) uint {
	switch {
	case t.IsString:
		return (t.StringCapacity + 1) * 8
	case t.IsArray:
		total := t.BitWidth
		//
		for _, d := range t.ArrayDimensions {
			total *= d
		}
		//
		return total
	default:
		return t.BitWidth
	}
}

// propertyCharCount renders `.char_count`: strlen(expr) for strings,
// "argc" is not a char_count target (spec.md §9: "args.char_count is
// rejected with an error"), and an error for any other non-string receiver.
func (e *Emitter) propertyCharCount(ps *postfixState) (string, bool, error) {
	if ps.resolved == e.S.MainArgsName {
		return "", true, generrors.New(generrors.KindArgsCharCountUnsupported, "args.char_count is not supported")
	}
	//
	if ps.cur == nil || !ps.cur.IsString {
		return "", true, generrors.New(generrors.KindCharCountNonString, "%q is not a string", ps.resolved)
	}
	//
	if cached, ok := e.S.LengthCache[ps.result]; ok {
		return cached, true, nil
	}
	//
	e.S.MarkInclude(state.IncludeString)
	rendered := strutil.CharCount(ps.result)
	e.S.LengthCache[ps.result] = rendered
	//
	return rendered, true, nil
}

// propertyElementCount renders `.element_count`: "argc" for the main
// function's args parameter (spec.md §9), or the total element count for
// an array, or an error otherwise.
func (e *Emitter) propertyElementCount(ps *postfixState) (string, bool, error) {
	if ps.resolved == e.S.MainArgsName {
		return "argc", true, nil
	}
	//
	if ps.cur == nil || !ps.cur.IsArray {
		return "", true, generrors.New(generrors.KindElementCountNonArray, "%q is not an array", ps.resolved)
	}
	//
	total := uint(1)
	//
	for _, d := range ps.cur.ArrayDimensions {
		total *= d
	}
	//
	return strconv.FormatUint(uint64(total), 10), true, nil
}
