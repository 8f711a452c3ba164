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
package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/go-zkvm/pkg/air"
	"github.com/consensys/go-zkvm/pkg/util/field"
	"github.com/consensys/go-zkvm/pkg/util/field/koalabear"
)

type fe = koalabear.Element

func interactionOn(channel uint) ([]air.Expr[fe], air.Expr[fe]) {
	return []air.Expr[fe]{air.NewMain[fe](channel)}, air.NewConstant(field.One[fe]())
}

func TestChannelsEmpty(t *testing.T) {
	channels := Channels[fe](nil, nil)
	//
	assert.Equal(t, uint(0), channels.Width())
	assert.Equal(t, uint(0), channels.Count())
	assert.Empty(t, channels.Gaps())
}

func TestChannelsDense(t *testing.T) {
	var (
		sends    []Interaction[fe]
		receives []Interaction[fe]
	)
	//
	for channel := uint(0); channel < 4; channel++ {
		values, mult := interactionOn(channel)
		sends = append(sends, NewSend(channel, values, mult))
		receives = append(receives, NewReceive(channel, values, mult))
	}
	//
	channels := Channels(sends, receives)
	//
	assert.Equal(t, uint(4), channels.Width())
	assert.Equal(t, uint(4), channels.Count())
	assert.Empty(t, channels.Gaps())
}

func TestChannelsGaps(t *testing.T) {
	var (
		v0, m0 = interactionOn(0)
		v5, m5 = interactionOn(5)
		//
		sends    = []Interaction[fe]{NewSend(5, v5, m5)}
		receives = []Interaction[fe]{NewReceive(0, v0, m0), NewReceive(5, v5, m5)}
	)
	//
	channels := Channels(sends, receives)
	//
	assert.Equal(t, uint(6), channels.Width())
	assert.Equal(t, uint(2), channels.Count())
	assert.Equal(t, []uint{1, 2, 3, 4}, channels.Gaps())
}

func TestSignedMultiplicity(t *testing.T) {
	var (
		values = []air.Expr[fe]{air.NewMain[fe](0)}
		mult   = air.NewMain[fe](1)
		row    = []fe{field.Uint64[fe](7), field.Uint64[fe](3)}
	)
	//
	send := NewSend(0, values, mult)
	assert.True(t, send.SignedMultiplicity(nil, row).Equals(field.Uint64[fe](3)))
	//
	receive := NewReceive(0, values, mult)
	assert.True(t, receive.SignedMultiplicity(nil, row).Equals(field.Uint64[fe](3).Neg()))
}
