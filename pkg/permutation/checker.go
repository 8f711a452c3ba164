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
package permutation

import (
	"fmt"

	"github.com/consensys/go-zkvm/pkg/lookup"
	"github.com/consensys/go-zkvm/pkg/trace"
	"github.com/consensys/go-zkvm/pkg/util"
	"github.com/consensys/go-zkvm/pkg/util/field"
)

// Failure reports a violated permutation identity.  In a real proof this
// means verification must reject; during prover self-checks it is a
// deterministic assertion failure.
type Failure struct {
	// Handle identifies the violated identity.
	Handle string
	// Row on which the identity failed.
	Row uint
	// Message provides further detail.
	Message string
}

// Error implementation for the error interface.
func (p *Failure) Error() string {
	return fmt.Sprintf("constraint %q does not hold (row %d): %s", p.Handle, p.Row, p.Message)
}

// CheckConstraints asserts the permutation identities over a committed
// permutation trace, using no field division (reciprocal sums are checked in
// cross-multiplied form).  The identities are:
//
//   - per batch j:  cellⱼ · Πᵢ rlcᵢ = Σᵢ mᵢ · Π_{l≠i} rlcₗ
//   - transition:   φ(next) − φ(local) = Σⱼ cellⱼ(next)
//   - first row:    φ = Σⱼ cellⱼ
//   - last row:     φ = declaredTotal
//
// where rlcᵢ re-derives interaction i's tuple fingerprint, mᵢ its signed
// multiplicity, and φ the cumulative-sum column.  The declared total is this
// chip's share of the global cross-table sum, supplied by the outer
// aggregation layer.
func CheckConstraints[F field.Element[F], E field.Extension[E, F]](
	sends, receives []lookup.Interaction[F],
	preprocessed, main *trace.Matrix[F],
	perm *trace.Matrix[E],
	challenges Challenges[E],
	declaredTotal E,
	cfg Config,
) error {
	if err := cfg.Validate(); err != nil {
		return err
	} else if err := validateInteractions(sends, receives, preprocessed, main); err != nil {
		return err
	}
	//
	var (
		interactions = concat(sends, receives)
		alphas       = Fingerprints(sends, receives, challenges.Alpha)
		betas        = field.Powers(challenges.Beta, maxTupleLen(interactions))
		height       = main.Height()
		width        = Width(uint(len(interactions)), cfg.BatchSize)
	)
	// Sanity check trace dimensions before touching any row.
	if perm.Width() != width {
		return fmt.Errorf("permutation trace width %d does not match expected width %d",
			perm.Width(), width)
	} else if perm.Height() != height {
		return fmt.Errorf("permutation trace height %d does not match main height %d",
			perm.Height(), height)
	}
	//
	if height == 0 {
		return nil
	}
	//
	return util.ParallelRange(height, cfg.Workers, func(_, start, end uint) error {
		// Scratch space, reused across this worker's rows.
		var (
			rlcs  = make([]E, len(interactions))
			mults = make([]E, len(interactions))
		)
		//
		for row := start; row < end; row++ {
			if err := checkRow(row, interactions, preprocessed, main, perm,
				alphas, betas, declaredTotal, cfg.BatchSize, rlcs, mults); err != nil {
				return err
			}
		}
		//
		return nil
	})
}

// checkRow asserts every identity constraining the given row.
func checkRow[F field.Element[F], E field.Extension[E, F]](
	row uint,
	interactions []lookup.Interaction[F],
	preprocessed, main *trace.Matrix[F],
	perm *trace.Matrix[E],
	alphas, betas []E,
	declaredTotal E,
	batchSize uint,
	rlcs, mults []E,
) error {
	var (
		one      = field.One[E]()
		width    = perm.Width()
		height   = perm.Height()
		permRow  = perm.Row(row)
		phiLocal = permRow[width-1]
		prepRow  []F
		mainRow  = main.Row(row)
	)
	//
	if preprocessed != nil {
		prepRow = preprocessed.Row(row)
	}
	// Re-derive every fingerprint and signed multiplicity symbolically.
	for i, interaction := range interactions {
		rlc := alphas[interaction.ArgumentIndex]
		//
		for k, value := range interaction.Values {
			cell := liftBase[F, E](value.Eval(prepRow, mainRow))
			rlc = rlc.Add(betas[k].Mul(cell))
		}
		//
		rlcs[i] = rlc
		mults[i] = liftBase[F, E](interaction.SignedMultiplicity(prepRow, mainRow))
	}
	// Per batch: cell · Πᵢ rlcᵢ = Σᵢ mᵢ · Π_{l≠i} rlcₗ, the cross-multiplied
	// form of cell = Σᵢ mᵢ/rlcᵢ.
	for batch := uint(0); batch*batchSize < uint(len(interactions)); batch++ {
		var (
			lo        = batch * batchSize
			hi        = min(lo+batchSize, uint(len(interactions)))
			product   = one
			numerator = field.Zero[E]()
		)
		//
		for i := lo; i < hi; i++ {
			product = product.Mul(rlcs[i])
			// Product of all fingerprints in the batch bar this one.
			allButCurrent := one
			//
			for l := lo; l < hi; l++ {
				if l != i {
					allButCurrent = allButCurrent.Mul(rlcs[l])
				}
			}
			//
			numerator = numerator.Add(mults[i].Mul(allButCurrent))
		}
		//
		if !permRow[batch].Mul(product).Equals(numerator) {
			return &Failure{
				Handle:  fmt.Sprintf("permutation/batch-%d", batch),
				Row:     row,
				Message: fmt.Sprintf("batch cell %s violates reciprocal-sum identity", permRow[batch]),
			}
		}
	}
	//
	sumLocal := field.Zero[E]()
	//
	for _, cell := range permRow[:width-1] {
		sumLocal = sumLocal.Add(cell)
	}
	// First-row boundary: no contribution is carried in from a nonexistent
	// predecessor.
	if row == 0 {
		if !phiLocal.Equals(sumLocal) {
			return &Failure{
				Handle:  "permutation/first-row",
				Row:     row,
				Message: fmt.Sprintf("cumulative sum %s does not match row contribution %s", phiLocal, sumLocal),
			}
		}
	} else {
		// Transition: the cumulative sum advances by exactly this row's
		// contribution.
		phiPrev := perm.Row(row - 1)[width-1]
		//
		if !phiLocal.Sub(phiPrev).Equals(sumLocal) {
			return &Failure{
				Handle:  "permutation/transition",
				Row:     row,
				Message: fmt.Sprintf("cumulative sum step %s does not match row contribution %s", phiLocal.Sub(phiPrev), sumLocal),
			}
		}
	}
	// Last-row boundary: the chip's share of the global cross-table sum.
	if row == height-1 && !phiLocal.Equals(declaredTotal) {
		return &Failure{
			Handle:  "permutation/last-row",
			Row:     row,
			Message: fmt.Sprintf("cumulative sum %s does not match declared total %s", phiLocal, declaredTotal),
		}
	}
	//
	return nil
}
