// Copyright Consensys Software Inc.
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
package field

import "fmt"

// An Element of a field (either a prime-order field, or a fixed-degree
// extension of one).  All core algorithms are written against this interface
// rather than a concrete representation, so that the same code serves both the
// base field and its soundness-amplifying extension.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x + y
	Add(y Operand) Operand
	// Sub x - y
	Sub(y Operand) Operand
	// Mul x * y
	Mul(y Operand) Operand
	// Neg -x
	Neg() Operand
	// Inverse x⁻¹, or 0 if x = 0.
	Inverse() Operand
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Equals checks whether this value equals another.
	Equals(y Operand) bool
	// SetUint64 returns the field element representing the given value.
	SetUint64(val uint64) Operand
}

// Extension of a base field F.  Extension elements support all element
// operations, along with an embedding of base-field values.
type Extension[Operand any, F any] interface {
	Element[Operand]
	// SetBase returns the extension element corresponding to the given
	// base-field element under the canonical embedding F ⊆ E.
	SetBase(val F) Operand
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}
