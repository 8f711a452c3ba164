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
package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutOffsets(t *testing.T) {
	layout, err := NewLayout(
		Register{Name: "value", Width: 4},
		Register{Name: "shard", Width: 1},
		Register{Name: "clk", Width: 1},
	)
	//
	require.NoError(t, err)
	assert.Equal(t, uint(6), layout.Width())
	assert.Len(t, layout.Registers(), 3)
	//
	assert.Equal(t, Slot{Offset: 0, Width: 4}, layout.MustSlot("value"))
	assert.Equal(t, Slot{Offset: 4, Width: 1}, layout.MustSlot("shard"))
	assert.Equal(t, Slot{Offset: 5, Width: 1}, layout.MustSlot("clk"))
	//
	_, ok := layout.Slot("missing")
	assert.False(t, ok)
	assert.Panics(t, func() { layout.MustSlot("missing") })
}

func TestLayoutMalformed(t *testing.T) {
	_, err := NewLayout(Register{Name: "empty", Width: 0})
	assert.Error(t, err)
	//
	_, err = NewLayout(Register{Name: "dup", Width: 1}, Register{Name: "dup", Width: 2})
	assert.Error(t, err)
	//
	assert.Panics(t, func() { MustLayout(Register{Name: "empty", Width: 0}) })
}

func TestLayoutColumns(t *testing.T) {
	layout := MustLayout(
		Register{Name: "value", Width: 2},
		Register{Name: "clk", Width: 1},
	)
	//
	row := []uint64{10, 11, 12}
	//
	value, err := Columns(layout, "value", row)
	require.NoError(t, err)
	assert.Equal(t, []uint64{10, 11}, value)
	//
	clk, err := Columns(layout, "clk", row)
	require.NoError(t, err)
	assert.Equal(t, []uint64{12}, clk)
	// register slices alias the row
	value[0] = 99
	assert.Equal(t, uint64(99), row[0])
	// mismatched row width
	_, err = Columns(layout, "value", row[:2])
	assert.Error(t, err)
}
