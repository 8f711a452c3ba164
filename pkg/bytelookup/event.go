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

// Package bytelookup defines the range-check obligations this core emits as a
// side effect of populating memory access columns.  Events are consumed by an
// external byte-lookup table, which proves membership of each value in
// [0..2¹⁶) or [0..2⁸) respectively; this core only produces them.
package bytelookup

// Opcode identifies the range a looked-up value must lie within.
type Opcode uint8

const (
	// U8Range checks membership in [0..2⁸).
	U8Range Opcode = iota + 1
	// U16Range checks membership in [0..2¹⁶).
	U16Range
)

func (o Opcode) String() string {
	switch o {
	case U8Range:
		return "U8Range"
	case U16Range:
		return "U16Range"
	}
	//
	return "unknown"
}

// Event is a single range-check obligation.  The external table must accept
// duplicate events (they carry multiplicities).
type Event struct {
	// Shard within which this obligation arose.
	Shard uint32
	// Opcode determines the range being checked.
	Opcode Opcode
	// Value is the limb whose range membership must be proven.
	Value uint32
}

// NewU16Range constructs a 16-bit range-check event.
func NewU16Range(shard, value uint32) Event {
	return Event{Shard: shard, Opcode: U16Range, Value: value}
}

// NewU8Range constructs an 8-bit range-check event.
func NewU8Range(shard, value uint32) Event {
	return Event{Shard: shard, Opcode: U8Range, Value: value}
}
