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
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-zkvm/pkg/util/field"
)

// ChannelSet records which argument indices a chip's interactions actually
// reference.  Gaps in the index space are legal (they merely waste challenge
// powers), but are worth surfacing when diagnosing fingerprint-table sizes.
type ChannelSet struct {
	used *bitset.BitSet
	// one past the maximum referenced index, or zero when empty.
	width uint
}

// Channels collects the argument indices referenced by the given sends and
// receives.
func Channels[F field.Element[F]](sends, receives []Interaction[F]) *ChannelSet {
	var (
		used  = bitset.New(uint(len(sends) + len(receives)))
		width = uint(0)
	)
	//
	for _, interaction := range sends {
		used.Set(interaction.ArgumentIndex)
		width = max(width, interaction.ArgumentIndex+1)
	}
	//
	for _, interaction := range receives {
		used.Set(interaction.ArgumentIndex)
		width = max(width, interaction.ArgumentIndex+1)
	}
	//
	return &ChannelSet{used, width}
}

// Width returns the size of the fingerprint table required to cover every
// referenced channel (i.e. the maximum argument index plus one), or zero when
// no interactions are declared.
func (p *ChannelSet) Width() uint {
	return p.width
}

// Count returns the number of distinct channels referenced.
func (p *ChannelSet) Count() uint {
	return p.used.Count()
}

// Gaps returns the unreferenced argument indices below the maximum referenced
// one.  Each gap wastes one power of the fingerprint challenge.
func (p *ChannelSet) Gaps() []uint {
	var gaps []uint
	//
	for i := uint(0); i < p.Width(); i++ {
		if !p.used.Test(i) {
			gaps = append(gaps, i)
		}
	}
	//
	return gaps
}
