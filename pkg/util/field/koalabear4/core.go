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
package koalabear4

import (
	"fmt"

	"github.com/consensys/gnark-crypto/field/koalabear/extensions"
	"github.com/consensys/go-zkvm/pkg/util/field/koalabear"
)

// Element wraps extensions.E4, the degree-4 extension of the KoalaBear prime
// field, to conform to the field.Extension interface.  The extension is where
// all permutation-argument arithmetic takes place, since the base field alone
// is far too small for cryptographic soundness.
type Element struct {
	extensions.E4
}

// New constructs an extension element from its four base-field coordinates.
func New(a0, a1, b0, b1 uint64) Element {
	var res extensions.E4
	//
	res.B0.A0.SetUint64(a0)
	res.B0.A1.SetUint64(a1)
	res.B1.A0.SetUint64(b0)
	res.B1.A1.SetUint64(b1)
	//
	return Element{res}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res extensions.E4
	//
	res.Add(&x.E4, &y.E4)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res extensions.E4
	//
	res.Sub(&x.E4, &y.E4)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res extensions.E4
	//
	res.Mul(&x.E4, &y.E4)
	//
	return Element{res}
}

// Neg -x
func (x Element) Neg() Element {
	var res extensions.E4
	//
	res.Neg(&x.E4)
	//
	return Element{res}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var res extensions.E4
	//
	if x.E4.IsZero() {
		return Element{}
	}
	//
	res.Inverse(&x.E4)
	//
	return Element{res}
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.E4.IsZero()
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	var one extensions.E4
	//
	one.SetOne()
	//
	return x.E4.Equal(&one)
}

// Equals implementation for the Element interface
func (x Element) Equals(y Element) bool {
	return x.E4.Equal(&y.E4)
}

// SetUint64 implementation for the Element interface
func (x Element) SetUint64(val uint64) Element {
	var res extensions.E4
	//
	res.B0.A0.SetUint64(val)
	//
	return Element{res}
}

// SetBase embeds a base-field element into the extension.
func (x Element) SetBase(val koalabear.Element) Element {
	var res extensions.E4
	//
	res.B0.A0 = val.Element
	//
	return Element{res}
}

func (x Element) String() string {
	return fmt.Sprintf("(%s,%s,%s,%s)",
		x.B0.A0.String(), x.B0.A1.String(), x.B1.A0.String(), x.B1.A1.String())
}
