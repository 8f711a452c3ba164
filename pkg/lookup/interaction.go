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

// Package lookup defines the interaction model: the typed description of a
// tuple of values which one chip sends and another receives.  Interactions
// referencing the same argument index form one logical channel; the
// permutation argument proves that, across all chips, the multiset of sent
// tuples on each channel equals the multiset of received tuples.
package lookup

import (
	"github.com/consensys/go-zkvm/pkg/air"
	"github.com/consensys/go-zkvm/pkg/util/field"
)

// Kind distinguishes the two directions of an interaction.
type Kind uint8

const (
	// Send indicates a tuple contributed positively to its channel.
	Send Kind = iota + 1
	// Receive indicates a tuple contributed negatively to its channel.
	Receive
)

func (k Kind) String() string {
	switch k {
	case Send:
		return "send"
	case Receive:
		return "receive"
	}
	//
	return "unknown"
}

// Interaction describes one tuple of column expressions which a chip
// contributes to a cross-table channel, together with its (column-expression)
// multiplicity.  Interactions are declared once per chip and are read-only
// thereafter.
type Interaction[F field.Element[F]] struct {
	// Values is the ordered tuple of column expressions being communicated.
	Values []air.Expr[F]
	// Multiplicity determines, per row, how many copies of the tuple are
	// contributed.
	Multiplicity air.Expr[F]
	// ArgumentIndex identifies the logical channel this interaction belongs
	// to.  All interactions sharing an argument index must fingerprint
	// identically, across all chips in the proof.
	ArgumentIndex uint
	// Kind determines the contribution sign (send positive, receive
	// negative).
	Kind Kind
}

// NewSend constructs a sending interaction on the given channel.
func NewSend[F field.Element[F]](argumentIndex uint, values []air.Expr[F],
	multiplicity air.Expr[F]) Interaction[F] {
	return Interaction[F]{
		Values:        values,
		Multiplicity:  multiplicity,
		ArgumentIndex: argumentIndex,
		Kind:          Send,
	}
}

// NewReceive constructs a receiving interaction on the given channel.
func NewReceive[F field.Element[F]](argumentIndex uint, values []air.Expr[F],
	multiplicity air.Expr[F]) Interaction[F] {
	return Interaction[F]{
		Values:        values,
		Multiplicity:  multiplicity,
		ArgumentIndex: argumentIndex,
		Kind:          Receive,
	}
}

// SignedMultiplicity evaluates this interaction's multiplicity at the given
// row, negated for receives.
func (p Interaction[F]) SignedMultiplicity(preprocessed, main []F) F {
	mult := p.Multiplicity.Eval(preprocessed, main)
	//
	if p.Kind == Receive {
		mult = mult.Neg()
	}
	//
	return mult
}
