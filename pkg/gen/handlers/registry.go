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
package handlers

import (
	"fmt"
	"sync"

	"github.com/jlaustill/cnext-codegen/pkg/gen/classify"
)

type registration struct {
	kind    classify.Kind
	handler Handler
}

// pending accumulates every (kind, handler) pair each handler file
// contributes via its own init(), mirroring the teacher's gob.Register
// convention of registering codec variants from each type's own file
// rather than one central list (Consensys-go-corset's
// pkg/asm/io/macro/expr's init()). buildRegistry folds these into the
// lookup map exactly once, so no handler file's init() ordering relative
// to another's matters.
var pending []registration

func register(kind classify.Kind, h Handler) {
	pending = append(pending, registration{kind: kind, handler: h})
}

var (
	registryOnce sync.Once
	registry     map[classify.Kind]Handler
)

func buildRegistry() map[classify.Kind]Handler {
	registryOnce.Do(func() {
		registry = make(map[classify.Kind]Handler, len(pending))
		//
		for _, r := range pending {
			registry[r.kind] = r.handler
		}
	})
	//
	return registry
}

// Lookup returns the handler registered for kind. An unregistered kind is
// an internal invariant violation (spec.md §7.3, §4.7's "must fail loudly
// if a kind has no registered handler") — the classifier and this registry
// have drifted apart, which is a bug in this core, not a malformed input.
func Lookup(kind classify.Kind) Handler {
	h, ok := buildRegistry()[kind]
	if !ok {
		panic(fmt.Sprintf("gen/handlers: no handler registered for assignment kind %q", kind))
	}
	//
	return h
}
