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
	"github.com/consensys/go-zkvm/pkg/bytelookup"
	"github.com/consensys/go-zkvm/pkg/util"
	"github.com/consensys/go-zkvm/pkg/util/field"
)

// ReadColumns wires a read access through the access columns.
type ReadColumns[F field.Element[F]] struct {
	Access AccessColumns[F]
}

// Populate derives the columns for a read access.
func (p *ReadColumns[F]) Populate(record ReadRecord, buf *bytelookup.Buffer) error {
	return p.Access.Populate(record.Current(), record.Previous(), buf)
}

// WriteColumns wires a write access through the access columns, additionally
// recording the overwritten value for the owning chip's own semantic checks.
type WriteColumns[F field.Element[F]] struct {
	PrevValue [WordSize]F
	Access    AccessColumns[F]
}

// Populate derives the columns for a write access.
func (p *WriteColumns[F]) Populate(record WriteRecord, buf *bytelookup.Buffer) error {
	for i, limb := range wordLimbs(record.PrevValue) {
		p.PrevValue[i] = field.Uint64[F](uint64(limb))
	}
	//
	return p.Access.Populate(record.Current(), record.Previous(), buf)
}

// ReadWriteColumns serve chips whose rows may perform either kind of access.
type ReadWriteColumns[F field.Element[F]] struct {
	PrevValue [WordSize]F
	Access    AccessColumns[F]
}

// Populate derives the columns for either kind of access.
func (p *ReadWriteColumns[F]) Populate(record AnyRecord, buf *bytelookup.Buffer) error {
	previous := record.Previous()
	//
	for i, limb := range wordLimbs(previous.Value) {
		p.PrevValue[i] = field.Uint64[F](uint64(limb))
	}
	//
	return p.Access.Populate(record.Current(), previous, buf)
}

// AccessPair is the (current, previous) observation pair for one access,
// ready for batch population.
type AccessPair struct {
	Current  Record
	Previous Record
}

// PopulateAll populates access columns for a batch of accesses in parallel.
// Each access is row-independent, so rows are partitioned across workers;
// every worker accumulates range-check events into a private buffer, with
// buffers merged (order-independently) once all workers complete.
func PopulateAll[F field.Element[F]](pairs []AccessPair, workers uint) ([]AccessColumns[F], *bytelookup.Buffer, error) {
	var (
		stats   = util.NewPerfStats()
		n       = uint(len(pairs))
		columns = make([]AccessColumns[F], n)
		merged  = &bytelookup.Buffer{}
	)
	//
	if n == 0 {
		return columns, merged, nil
	}
	//
	if workers == 0 {
		workers = 1
	} else if workers > n {
		workers = n
	}
	//
	buffers := make([]bytelookup.Buffer, workers)
	//
	err := util.ParallelRange(n, workers, func(worker, start, end uint) error {
		buf := &buffers[worker]
		//
		for i := start; i < end; i++ {
			if err := columns[i].Populate(pairs[i].Current, pairs[i].Previous, buf); err != nil {
				return err
			}
		}
		//
		return nil
	})
	//
	if err != nil {
		return nil, nil, err
	}
	//
	for i := range buffers {
		merged.Merge(&buffers[i])
	}
	//
	stats.Log("Populating memory access columns")
	//
	return columns, merged, nil
}
