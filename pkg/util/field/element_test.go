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

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-zkvm/pkg/util/field/koalabear"
	"github.com/consensys/go-zkvm/pkg/util/field/koalabear4"
)

func TestBatchInvert(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	s := make([]koalabear.Element, 500)
	sInv := make([]koalabear.Element, len(s))
	scratch := make([]koalabear.Element, len(s))

	for i := range s {
		s[i] = Uint64[koalabear.Element](rng.Uint64())
		if rng.Intn(16) == 0 {
			// getting a zero with considerable probability
			s[i] = Zero[koalabear.Element]()
		}

		sInv[i] = s[i].Inverse()

		copy(scratch[:i], s)
		BatchInvert(scratch[:i])

		for j := range i {
			assert.True(t, sInv[j].Equals(scratch[j]), "on index %d of %d", j, i)
		}
	}
}

func TestBatchInvertExtension(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := make([]koalabear4.Element, 100)

	for i := range s {
		s[i] = koalabear4.New(rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64())
	}
	// zeros must be preserved
	s[3] = Zero[koalabear4.Element]()
	s[99] = Zero[koalabear4.Element]()

	inverted := make([]koalabear4.Element, len(s))
	copy(inverted, s)
	BatchInvert(inverted)

	for i := range s {
		if s[i].IsZero() {
			assert.True(t, inverted[i].IsZero(), "index %d", i)
		} else {
			assert.True(t, s[i].Mul(inverted[i]).IsOne(), "index %d", i)
		}
	}
}

func TestPowers(t *testing.T) {
	x := Uint64[koalabear.Element](12345)
	powers := Powers(x, 10)

	require.Len(t, powers, 10)
	assert.True(t, powers[0].IsOne())

	for i, power := range powers {
		assert.True(t, power.Equals(Pow(x, uint64(i))), "power %d", i)
	}
}

func TestExtensionEmbedding(t *testing.T) {
	var (
		rng = rand.New(rand.NewSource(2))
		ext koalabear4.Element
	)
	//
	for i := 0; i < 100; i++ {
		a := Uint64[koalabear.Element](rng.Uint64())
		b := Uint64[koalabear.Element](rng.Uint64())
		// the embedding is a ring homomorphism
		assert.True(t, ext.SetBase(a).Add(ext.SetBase(b)).Equals(ext.SetBase(a.Add(b))))
		assert.True(t, ext.SetBase(a).Mul(ext.SetBase(b)).Equals(ext.SetBase(a.Mul(b))))
	}
	//
	assert.True(t, Uint64[koalabear4.Element](1).IsOne())
	assert.True(t, Zero[koalabear4.Element]().IsZero())
}

func TestExtensionInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	//
	for i := 0; i < 100; i++ {
		x := koalabear4.New(rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64())
		//
		if x.IsZero() {
			continue
		}
		//
		assert.True(t, x.Mul(x.Inverse()).IsOne(), "index %d", i)
	}
	// inverse of zero is zero
	assert.True(t, Zero[koalabear4.Element]().Inverse().IsZero())
}
