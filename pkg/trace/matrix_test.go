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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixAccess(t *testing.T) {
	matrix := NewMatrix[uint64](3, 2)
	//
	assert.Equal(t, uint(3), matrix.Height())
	assert.Equal(t, uint(2), matrix.Width())
	//
	matrix.Set(1, 0, 10)
	matrix.Set(2, 1, 21)
	//
	assert.Equal(t, uint64(10), matrix.Get(1, 0))
	assert.Equal(t, uint64(21), matrix.Get(2, 1))
	assert.Equal(t, uint64(0), matrix.Get(0, 0))
}

func TestMatrixRowAliases(t *testing.T) {
	matrix := NewMatrixFromRows([][]uint64{{1, 2}, {3, 4}})
	//
	require.Equal(t, uint(2), matrix.Height())
	require.Equal(t, uint(2), matrix.Width())
	//
	row := matrix.Row(1)
	assert.Equal(t, []uint64{3, 4}, row)
	// rows alias the backing store
	row[0] = 99
	assert.Equal(t, uint64(99), matrix.Get(1, 0))
}

func TestMatrixRagged(t *testing.T) {
	assert.Panics(t, func() {
		NewMatrixFromRows([][]uint64{{1, 2}, {3}})
	})
}

func TestMatrixEmpty(t *testing.T) {
	matrix := NewMatrixFromRows[uint64](nil)
	//
	assert.Equal(t, uint(0), matrix.Height())
}
