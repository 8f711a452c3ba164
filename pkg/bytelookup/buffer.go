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

// Buffer accumulates range-check events.  A buffer is not safe for concurrent
// mutation: parallel populators must each own a private buffer, merging them
// once all workers have completed.  Merging is order-independent since the
// byte-lookup table is itself a multiset argument.
type Buffer struct {
	events []Event
}

// Add appends an event to this buffer.
func (p *Buffer) Add(event Event) {
	p.events = append(p.events, event)
}

// Merge drains the given buffers into this one.
func (p *Buffer) Merge(buffers ...*Buffer) {
	for _, buffer := range buffers {
		p.events = append(p.events, buffer.events...)
		buffer.events = nil
	}
}

// Events returns the accumulated events.
func (p *Buffer) Events() []Event {
	return p.events
}

// Len returns the number of accumulated events.
func (p *Buffer) Len() int {
	return len(p.events)
}
