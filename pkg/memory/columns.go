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
package memory

import (
	"errors"
	"fmt"

	"github.com/consensys/go-zkvm/pkg/bytelookup"
	"github.com/consensys/go-zkvm/pkg/schema"
	"github.com/consensys/go-zkvm/pkg/util/field"
)

// WordSize is the number of byte limbs a machine word occupies in the trace.
const WordSize = 4

// MaxDiffBits bounds the certifiable gap between consecutive accesses to the
// same address: the gap (minus one) must split into a 16-bit and an 8-bit
// limb.
const MaxDiffBits = 24

var (
	// ErrAccessOrder indicates an access which was not strictly later than
	// the previous access to the same address.  This is a soundness-critical
	// data-integrity failure: the execution record layer guarantees a
	// strictly increasing (shard, timestamp) order, so witness generation
	// must abort.
	ErrAccessOrder = errors.New("memory access out of order")
	// ErrDiffOverflow indicates an access gap too large for the 24-bit limb
	// split.  Equally fatal: a correct execution record never produces one.
	ErrDiffOverflow = errors.New("memory access gap exceeds 24 bits")
)

// AccessColumns certify a single memory access: they expose the previous
// access's position, a flag selecting the comparison key, and the limb split
// of the gap between the two positions.  Two byte-lookup events accompany
// every populated access, proving the limb split is genuine.
type AccessColumns[F field.Element[F]] struct {
	// Value is the word observed by this access (the post-write value for
	// writes, the read value for reads), as little-endian byte limbs.
	Value [WordSize]F
	// PrevShard is the shard of the previous access to this address.
	PrevShard F
	// PrevClk is the timestamp of the previous access to this address.
	PrevClk F
	// CompareClk is 1 when both accesses fall in the same shard (in which
	// case timestamps are compared), and 0 otherwise (shards are compared).
	CompareClk F
	// Diff16BitLimb holds the low 16 bits of key(current)-key(previous)-1.
	Diff16BitLimb F
	// Diff8BitLimb holds bits 16..23 of key(current)-key(previous)-1.
	Diff8BitLimb F
}

// Populate derives the access columns from a (current, previous) observation
// pair, appending exactly two range-check events to the given buffer.  This
// fails if the current access is not strictly later than the previous one, or
// if the gap between them is not representable in 24 bits; both indicate a
// malformed execution record and must abort witness generation.
func (p *AccessColumns[F]) Populate(current, previous Record, buf *bytelookup.Buffer) error {
	for i, limb := range wordLimbs(current.Value) {
		p.Value[i] = field.Uint64[F](uint64(limb))
	}
	//
	p.PrevShard = field.Uint64[F](uint64(previous.Shard))
	p.PrevClk = field.Uint64[F](uint64(previous.Timestamp))
	// Determine the ordering key: timestamps within a shard, shard indices
	// across shards.
	compareClk := previous.Shard == current.Shard
	//
	if compareClk {
		p.CompareClk = field.One[F]()
	} else {
		p.CompareClk = field.Zero[F]()
	}
	//
	var prevKey, currentKey uint32
	//
	if compareClk {
		prevKey, currentKey = previous.Timestamp, current.Timestamp
	} else {
		prevKey, currentKey = previous.Shard, current.Shard
	}
	// The execution record layer guarantees strictly increasing keys; check
	// rather than relying on wraparound arithmetic below.
	if currentKey <= prevKey {
		return fmt.Errorf("%w: key %d does not follow %d (shard %d, clk %d)",
			ErrAccessOrder, currentKey, prevKey, current.Shard, current.Timestamp)
	}
	//
	diff := uint64(currentKey) - uint64(prevKey) - 1
	//
	if diff >= 1<<MaxDiffBits {
		return fmt.Errorf("%w: gap %d (shard %d, clk %d)",
			ErrDiffOverflow, diff, current.Shard, current.Timestamp)
	}
	//
	var (
		diff16BitLimb = uint32(diff & 0xffff)
		diff8BitLimb  = uint32((diff >> 16) & 0xff)
	)
	//
	p.Diff16BitLimb = field.Uint64[F](uint64(diff16BitLimb))
	p.Diff8BitLimb = field.Uint64[F](uint64(diff8BitLimb))
	// Emit the range-check obligations certifying the limb split.
	buf.Add(bytelookup.NewU16Range(current.Shard, diff16BitLimb))
	buf.Add(bytelookup.NewU8Range(current.Shard, diff8BitLimb))
	//
	return nil
}

// WriteRow places the populated columns into a flat row buffer laid out
// according to AccessLayout.
func (p *AccessColumns[F]) WriteRow(row []F) error {
	var layout = AccessLayout()
	//
	value, err := schema.Columns(layout, "value", row)
	if err != nil {
		return err
	}
	//
	copy(value, p.Value[:])
	//
	for _, assignment := range []struct {
		name string
		val  F
	}{
		{"prev_shard", p.PrevShard},
		{"prev_clk", p.PrevClk},
		{"compare_clk", p.CompareClk},
		{"diff_16bit_limb", p.Diff16BitLimb},
		{"diff_8bit_limb", p.Diff8BitLimb},
	} {
		cols, err := schema.Columns(layout, assignment.name, row)
		if err != nil {
			return err
		}
		//
		cols[0] = assignment.val
	}
	//
	return nil
}

// accessLayout is computed once at configuration time.
var accessLayout = schema.MustLayout(
	schema.Register{Name: "value", Width: WordSize},
	schema.Register{Name: "prev_shard", Width: 1},
	schema.Register{Name: "prev_clk", Width: 1},
	schema.Register{Name: "compare_clk", Width: 1},
	schema.Register{Name: "diff_16bit_limb", Width: 1},
	schema.Register{Name: "diff_8bit_limb", Width: 1},
)

// AccessLayout returns the column layout of AccessColumns within a chip's row.
func AccessLayout() *schema.Layout {
	return accessLayout
}

// wordLimbs splits a machine word into its little-endian byte limbs.
func wordLimbs(word uint32) [WordSize]uint8 {
	return [WordSize]uint8{
		uint8(word),
		uint8(word >> 8),
		uint8(word >> 16),
		uint8(word >> 24),
	}
}
