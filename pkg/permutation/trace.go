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
	"errors"
	"fmt"

	"github.com/consensys/go-zkvm/pkg/air"
	"github.com/consensys/go-zkvm/pkg/lookup"
	"github.com/consensys/go-zkvm/pkg/trace"
	"github.com/consensys/go-zkvm/pkg/util"
	"github.com/consensys/go-zkvm/pkg/util/field"
)

// ErrZeroDenominator indicates a tuple whose fingerprint collided with the
// negated channel fingerprint, making a reciprocal undefined.  Barring a
// negligible-probability adversarial challenge, this is a genuine bug in the
// declaring chip; witness generation must abort rather than silently produce
// an incorrect proof.
var ErrZeroDenominator = errors.New("zero denominator in permutation trace")

// GenerateTrace builds the LogUp permutation trace for one chip.  Each row
// holds, per batch of interactions, the sum Σᵢ mᵢ/fᵢ of signed multiplicities
// over tuple fingerprints, with the final column carrying the running
// cumulative sum across rows.  The returned element is the final cumulative
// sum, which the external aggregator folds into the global cross-table total.
//
// Rows are populated in parallel; the cumulative-sum column is computed with
// a parallel prefix scan, which (field addition being associative and
// commutative) is exact regardless of how the reduction tree is shaped.
func GenerateTrace[F field.Element[F], E field.Extension[E, F]](
	sends, receives []lookup.Interaction[F],
	preprocessed, main *trace.Matrix[F],
	challenges Challenges[E],
	cfg Config,
) (*trace.Matrix[E], E, error) {
	var (
		stats = util.NewPerfStats()
		zero  = field.Zero[E]()
	)
	//
	if err := cfg.Validate(); err != nil {
		return nil, zero, err
	} else if err := validateInteractions(sends, receives, preprocessed, main); err != nil {
		return nil, zero, err
	}
	//
	var (
		interactions = concat(sends, receives)
		alphas       = Fingerprints(sends, receives, challenges.Alpha)
		betas        = field.Powers(challenges.Beta, maxTupleLen(interactions))
		height       = main.Height()
		width        = Width(uint(len(interactions)), cfg.BatchSize)
		perm         = trace.NewMatrix[E](height, width)
		rowSums      = make([]E, height)
	)
	//
	if height == 0 {
		return perm, zero, nil
	}
	// Populate batch columns row-parallel; each row depends only on its own
	// main/preprocessed data and the shared read-only fingerprint table.
	err := util.ParallelRange(height, cfg.Workers, func(_, start, end uint) error {
		// Scratch space, reused across this worker's rows.
		var (
			denominators = make([]E, len(interactions))
			mults        = make([]E, len(interactions))
		)
		//
		for row := start; row < end; row++ {
			if err := populateRow(perm.Row(row), row, interactions, preprocessed, main,
				alphas, betas, cfg.BatchSize, denominators, mults); err != nil {
				return err
			}
			//
			sum := zero
			//
			for _, cell := range perm.Row(row)[:width-1] {
				sum = sum.Add(cell)
			}
			//
			rowSums[row] = sum
		}
		//
		return nil
	})
	//
	if err != nil {
		return nil, zero, err
	}
	// Turn per-row sums into the running cumulative sum.
	util.ParallelScan(rowSums, func(x, y E) E { return x.Add(y) }, cfg.Workers)
	//
	_ = util.ParallelRange(height, cfg.Workers, func(_, start, end uint) error {
		for row := start; row < end; row++ {
			perm.Row(row)[width-1] = rowSums[row]
		}
		//
		return nil
	})
	//
	stats.Log("Generating permutation trace")
	//
	return perm, rowSums[height-1], nil
}

// populateRow computes the batch cells of a single permutation row: for each
// interaction, the tuple fingerprint αⁱᵈˣ + Σₖ βᵏ·vₖ and the signed
// multiplicity; then, per batch, the sum of multiplicities over fingerprints.
// All denominators of the row are inverted with a single batched inversion.
func populateRow[F field.Element[F], E field.Extension[E, F]](
	row []E,
	rowIndex uint,
	interactions []lookup.Interaction[F],
	preprocessed, main *trace.Matrix[F],
	alphas, betas []E,
	batchSize uint,
	denominators, mults []E,
) error {
	var (
		prepRow []F
		mainRow = main.Row(rowIndex)
	)
	//
	if preprocessed != nil {
		prepRow = preprocessed.Row(rowIndex)
	}
	//
	for i, interaction := range interactions {
		denominator := alphas[interaction.ArgumentIndex]
		//
		for k, value := range interaction.Values {
			cell := liftBase[F, E](value.Eval(prepRow, mainRow))
			denominator = denominator.Add(betas[k].Mul(cell))
		}
		// A vanishing fingerprint makes the reciprocal undefined; abort
		// before the batched inversion silently maps it to zero.
		if denominator.IsZero() {
			return fmt.Errorf("%w: row %d, %s %d on channel %d",
				ErrZeroDenominator, rowIndex, interaction.Kind, i, interaction.ArgumentIndex)
		}
		//
		denominators[i] = denominator
		mults[i] = liftBase[F, E](interaction.SignedMultiplicity(prepRow, mainRow))
	}
	//
	field.BatchInvert(denominators)
	//
	for i := range interactions {
		batch := uint(i) / batchSize
		row[batch] = row[batch].Add(mults[i].Mul(denominators[i]))
	}
	//
	return nil
}

// validateInteractions checks, before any row processing, that every
// interaction is well-formed with respect to the committed traces: kinds
// match the list they were declared in, and no expression references a column
// beyond the trace widths.
func validateInteractions[F field.Element[F]](
	sends, receives []lookup.Interaction[F],
	preprocessed, main *trace.Matrix[F],
) error {
	var prepWidth, prepHeight uint
	//
	if preprocessed != nil {
		prepWidth, prepHeight = preprocessed.Width(), preprocessed.Height()
		//
		if prepHeight != main.Height() {
			return fmt.Errorf("preprocessed height %d does not match main height %d",
				prepHeight, main.Height())
		}
	}
	//
	checkExpr := func(expr air.Expr[F], kind lookup.Kind, i int) error {
		if w := expr.RequiredWidth(air.Main); w > main.Width() {
			return fmt.Errorf("%s %d references main column %d (width %d)",
				kind, i, w-1, main.Width())
		}
		//
		if w := expr.RequiredWidth(air.Preprocessed); w > prepWidth {
			return fmt.Errorf("%s %d references preprocessed column %d (width %d)",
				kind, i, w-1, prepWidth)
		}
		//
		return nil
	}
	//
	check := func(interactions []lookup.Interaction[F], kind lookup.Kind) error {
		for i, interaction := range interactions {
			if interaction.Kind != kind {
				return fmt.Errorf("%s %d declared as %s", kind, i, interaction.Kind)
			}
			//
			for _, expr := range interaction.Values {
				if err := checkExpr(expr, kind, i); err != nil {
					return err
				}
			}
			//
			if err := checkExpr(interaction.Multiplicity, kind, i); err != nil {
				return err
			}
		}
		//
		return nil
	}
	//
	if err := check(sends, lookup.Send); err != nil {
		return err
	}
	//
	return check(receives, lookup.Receive)
}

// concat joins sends and receives in declaration order (sends first), as the
// batching is defined over the combined sequence.
func concat[F field.Element[F]](sends, receives []lookup.Interaction[F]) []lookup.Interaction[F] {
	interactions := make([]lookup.Interaction[F], 0, len(sends)+len(receives))
	interactions = append(interactions, sends...)
	interactions = append(interactions, receives...)
	//
	return interactions
}

// maxTupleLen determines how many powers of β are required to fold the widest
// value tuple.
func maxTupleLen[F field.Element[F]](interactions []lookup.Interaction[F]) uint {
	n := uint(0)
	//
	for _, interaction := range interactions {
		n = max(n, uint(len(interaction.Values)))
	}
	//
	return n
}
