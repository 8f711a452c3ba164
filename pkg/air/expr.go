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

// Package air provides the column-expression form in which chips declare
// their cross-table interactions.  An expression is an affine combination of
// cells drawn from one row of the preprocessed and main traces; evaluating it
// at a given row yields a single field element.
package air

import (
	"github.com/consensys/go-zkvm/pkg/util/field"
)

// ColumnKind distinguishes which trace a column reference points into.
type ColumnKind uint8

const (
	// Preprocessed indicates a column of the (fixed) preprocessed trace.
	Preprocessed ColumnKind = iota
	// Main indicates a column of the (committed) main trace.
	Main
)

// Column is a reference to a single column of either the preprocessed or main
// trace.
type Column struct {
	Kind  ColumnKind
	Index uint
}

// Term is a single weighted column within an expression.
type Term[F field.Element[F]] struct {
	Column Column
	Coeff  F
}

// Expr is an affine expression over the columns of a row pair, of the form
// constant + Σᵢ coeffᵢ·colᵢ.  Expressions are immutable once constructed and
// hence safe to evaluate from many workers concurrently.
type Expr[F field.Element[F]] struct {
	constant F
	terms    []Term[F]
}

// NewConstant constructs an expression which always evaluates to the given
// value.
func NewConstant[F field.Element[F]](val F) Expr[F] {
	return Expr[F]{constant: val}
}

// NewMain constructs an expression referencing the given main-trace column.
func NewMain[F field.Element[F]](index uint) Expr[F] {
	return NewLinear(field.Zero[F](), Term[F]{
		Column: Column{Kind: Main, Index: index},
		Coeff:  field.One[F](),
	})
}

// NewPreprocessed constructs an expression referencing the given
// preprocessed-trace column.
func NewPreprocessed[F field.Element[F]](index uint) Expr[F] {
	return NewLinear(field.Zero[F](), Term[F]{
		Column: Column{Kind: Preprocessed, Index: index},
		Coeff:  field.One[F](),
	})
}

// NewLinear constructs an arbitrary affine expression from a constant and a
// sequence of weighted columns.
func NewLinear[F field.Element[F]](constant F, terms ...Term[F]) Expr[F] {
	return Expr[F]{constant: constant, terms: terms}
}

// Eval evaluates this expression against one row of the preprocessed and main
// traces.
func (e Expr[F]) Eval(preprocessed, main []F) F {
	acc := e.constant
	//
	for _, term := range e.terms {
		var cell F
		//
		switch term.Column.Kind {
		case Preprocessed:
			cell = preprocessed[term.Column.Index]
		default:
			cell = main[term.Column.Index]
		}
		//
		acc = acc.Add(term.Coeff.Mul(cell))
	}
	//
	return acc
}

// RequiredWidth returns the minimum width a trace of the given kind must have
// for this expression to be evaluable (i.e. one past the largest referenced
// column index, or zero if none is referenced).
func (e Expr[F]) RequiredWidth(kind ColumnKind) uint {
	width := uint(0)
	//
	for _, term := range e.terms {
		if term.Column.Kind == kind {
			width = max(width, term.Column.Index+1)
		}
	}
	//
	return width
}
