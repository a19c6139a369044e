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

// Package target describes the capabilities of the embedded target a given
// compile run is generating C for, per spec.md §6.
package target

// Capabilities is a small, explicitly-threaded configuration value — never a
// package global — mirroring the teacher's convention of keeping per-run
// configuration on the compiler struct (Consensys-go-corset's
// asm.Compiler.maxInstances) rather than in a singleton.
type Capabilities struct {
	// WordSize is the target's natural machine word size, in bits: 32 or 64.
	WordSize uint
	// HasLdrexStrex indicates the target supports LDREX/STREX-style
	// load-linked/store-conditional atomics.
	HasLdrexStrex bool
	// HasBasepri indicates the target supports a BASEPRI-style interrupt
	// priority mask usable for a critical-section guard.
	HasBasepri bool
}

// Default returns a conservative baseline: 32-bit, no exclusive-access
// atomics, no BASEPRI (forcing the PRIMASK critical-section fallback).
func Default() Capabilities {
	return Capabilities{WordSize: 32}
}
