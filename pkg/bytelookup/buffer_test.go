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
package bytelookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferAdd(t *testing.T) {
	var buf Buffer
	//
	assert.Equal(t, 0, buf.Len())
	//
	buf.Add(NewU16Range(1, 0xffff))
	buf.Add(NewU8Range(1, 0xff))
	// duplicates are legal and carry multiplicity
	buf.Add(NewU8Range(1, 0xff))
	//
	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, Event{Shard: 1, Opcode: U16Range, Value: 0xffff}, buf.Events()[0])
	assert.Equal(t, Event{Shard: 1, Opcode: U8Range, Value: 0xff}, buf.Events()[1])
	assert.Equal(t, buf.Events()[1], buf.Events()[2])
}

func TestBufferMergeDrains(t *testing.T) {
	var a, b, c Buffer
	//
	a.Add(NewU16Range(1, 10))
	b.Add(NewU8Range(2, 20))
	b.Add(NewU8Range(2, 21))
	//
	c.Merge(&a, &b)
	//
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, b.Len())
	// merged events keep per-buffer order
	assert.Equal(t, uint32(10), c.Events()[0].Value)
	assert.Equal(t, uint32(20), c.Events()[1].Value)
	assert.Equal(t, uint32(21), c.Events()[2].Value)
}

func TestOpcodeString(t *testing.T) {
	assert.Equal(t, "U8Range", U8Range.String())
	assert.Equal(t, "U16Range", U16Range.String())
	assert.Equal(t, "unknown", Opcode(0).String())
}
