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
package trace

import "fmt"

// Matrix is a dense, row-major trace matrix.  Rows correspond to execution
// steps (row order is semantically significant), whilst columns hold the
// values of a given register across all steps.  Rows are the unit of parallel
// work during trace generation: distinct rows may be populated concurrently,
// provided each row is owned by exactly one worker.
type Matrix[T any] struct {
	data   []T
	height uint
	width  uint
}

// NewMatrix constructs a zeroed matrix of the given dimensions.
func NewMatrix[T any](height, width uint) *Matrix[T] {
	return &Matrix[T]{
		data:   make([]T, height*width),
		height: height,
		width:  width,
	}
}

// NewMatrixFromRows constructs a matrix from a sequence of equal-width rows.
func NewMatrixFromRows[T any](rows [][]T) *Matrix[T] {
	var (
		height = uint(len(rows))
		width  uint
	)
	//
	if height > 0 {
		width = uint(len(rows[0]))
	}
	//
	matrix := NewMatrix[T](height, width)
	//
	for i, row := range rows {
		if uint(len(row)) != width {
			panic(fmt.Sprintf("ragged trace row %d (width %d vs %d)", i, len(row), width))
		}
		//
		copy(matrix.Row(uint(i)), row)
	}
	//
	return matrix
}

// Height returns the number of rows in this matrix.
func (p *Matrix[T]) Height() uint {
	return p.height
}

// Width returns the number of columns in this matrix.
func (p *Matrix[T]) Width() uint {
	return p.width
}

// Row returns the ith row of this matrix as a mutable slice aliasing the
// underlying data.
func (p *Matrix[T]) Row(i uint) []T {
	start := i * p.width
	//
	return p.data[start : start+p.width]
}

// Get returns the value at the given row and column.
func (p *Matrix[T]) Get(row, col uint) T {
	return p.data[row*p.width+col]
}

// Set assigns the value at the given row and column.
func (p *Matrix[T]) Set(row, col uint, val T) {
	p.data[row*p.width+col] = val
}
