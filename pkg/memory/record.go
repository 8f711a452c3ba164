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

// Package memory provides the per-access columns which certify that every
// memory access is strictly later than the previous access to the same
// address.  The ordering key is the timestamp within a shard, and the shard
// index across shards; the gap between consecutive accesses is certified via
// two byte-table range checks rather than a sort inside the constraint
// system.  Stitching the per-address chains into a global order is the
// responsibility of an external collaborator.
package memory

// Record is the observed memory state at one access: the value held at the
// address, together with the shard and (within-shard) timestamp of the
// access.
type Record struct {
	Value     uint32
	Shard     uint32
	Timestamp uint32
}

// ReadRecord describes a read access along with the shard and timestamp of
// the previous access to the same address.  Reads leave the value unchanged.
type ReadRecord struct {
	Value         uint32
	Shard         uint32
	Timestamp     uint32
	PrevShard     uint32
	PrevTimestamp uint32
}

// WriteRecord describes a write access, including the value it overwrote.
type WriteRecord struct {
	Value         uint32
	Shard         uint32
	Timestamp     uint32
	PrevValue     uint32
	PrevShard     uint32
	PrevTimestamp uint32
}

// AnyRecord is implemented by both read and write records, exposing the
// (current, previous) observation pair the access columns are derived from.
type AnyRecord interface {
	// Current returns the state observed at this access.
	Current() Record
	// Previous returns the state observed at the prior access to the same
	// address.
	Previous() Record
}

// Current implementation for the AnyRecord interface.
func (p ReadRecord) Current() Record {
	return Record{Value: p.Value, Shard: p.Shard, Timestamp: p.Timestamp}
}

// Previous implementation for the AnyRecord interface.
func (p ReadRecord) Previous() Record {
	return Record{Value: p.Value, Shard: p.PrevShard, Timestamp: p.PrevTimestamp}
}

// Current implementation for the AnyRecord interface.
func (p WriteRecord) Current() Record {
	return Record{Value: p.Value, Shard: p.Shard, Timestamp: p.Timestamp}
}

// Previous implementation for the AnyRecord interface.
func (p WriteRecord) Previous() Record {
	return Record{Value: p.PrevValue, Shard: p.PrevShard, Timestamp: p.PrevTimestamp}
}
