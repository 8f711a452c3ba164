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

// Package permutation implements the cross-table lookup argument (LogUp): it
// turns a chip's interactions and main trace into an extension-field trace
// column encoding a running multiset-equality sum, along with the matching
// division-free polynomial identities a verifier checks against that trace.
package permutation

import (
	"fmt"
	"runtime"

	"github.com/consensys/go-zkvm/pkg/util/field"
)

// Challenges is the pair of extension-field elements drawn (by the external
// transcript) after the main trace is committed.  Challenges are scoped to a
// single proving round and must never be reused across proofs.
type Challenges[E any] struct {
	// Alpha seeds the per-channel fingerprint table.
	Alpha E
	// Beta folds value tuples into single extension elements.
	Beta E
}

// Config carries the (per proving round) parameters of permutation trace
// generation.
type Config struct {
	// BatchSize determines how many interactions share one reciprocal-sum
	// column.  Larger batches give narrower traces at the cost of
	// higher-degree constraints.
	BatchSize uint
	// Workers bounds the number of goroutines used for row-parallel work.
	Workers uint
}

// DefaultConfig returns the configuration used in production: interactions
// batched in pairs, one worker per core.
func DefaultConfig() Config {
	return Config{BatchSize: 2, Workers: uint(runtime.NumCPU())}
}

// Validate checks this configuration before any row processing begins.
func (p Config) Validate() error {
	if p.BatchSize == 0 {
		return fmt.Errorf("batch size must be at least 1")
	} else if p.Workers == 0 {
		return fmt.Errorf("worker count must be at least 1")
	}
	//
	return nil
}

// Width returns the width of the permutation trace for a chip with the given
// number of interactions: one column per batch, plus the running cumulative
// sum.
func Width(interactions, batchSize uint) uint {
	return (interactions+batchSize-1)/batchSize + 1
}

// liftBase embeds a base-field element into the extension.
func liftBase[F field.Element[F], E field.Extension[E, F]](val F) E {
	var e E
	//
	return e.SetBase(val)
}
