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

import "fmt"

// Register describes one named group of adjacent columns within a row, such
// as a single field element (width 1) or a machine word split into limbs
// (width 4).
type Register struct {
	// Name of this register, unique within its layout.
	Name string
	// Width gives the number of columns this register occupies.
	Width uint
}

// Slot identifies the half-open column range [Offset..Offset+Width) which a
// given register occupies within a row.
type Slot struct {
	Offset uint
	Width  uint
}

// Layout maps an ordered sequence of registers onto a flat, index-addressed
// row buffer.  Offsets are computed once, at configuration time; thereafter
// rows are plain slices and register access is just slicing.
type Layout struct {
	registers []Register
	slots     map[string]Slot
	width     uint
}

// NewLayout constructs a layout from an ordered sequence of registers.  This
// fails if any register is zero width, or two registers share a name.
func NewLayout(registers ...Register) (*Layout, error) {
	var (
		slots  = make(map[string]Slot, len(registers))
		offset = uint(0)
	)
	//
	for _, reg := range registers {
		if reg.Width == 0 {
			return nil, fmt.Errorf("register %q has zero width", reg.Name)
		} else if _, ok := slots[reg.Name]; ok {
			return nil, fmt.Errorf("duplicate register %q", reg.Name)
		}
		//
		slots[reg.Name] = Slot{Offset: offset, Width: reg.Width}
		offset += reg.Width
	}
	//
	return &Layout{registers: registers, slots: slots, width: offset}, nil
}

// MustLayout is as NewLayout, but panics on a malformed declaration.  Layouts
// are fixed at configuration time, hence a failure here is a programming
// error rather than a data-integrity error.
func MustLayout(registers ...Register) *Layout {
	layout, err := NewLayout(registers...)
	//
	if err != nil {
		panic(err)
	}
	//
	return layout
}

// Width returns the total number of columns occupied by a row of this layout.
func (p *Layout) Width() uint {
	return p.width
}

// Registers returns the ordered register declarations of this layout.
func (p *Layout) Registers() []Register {
	return p.registers
}

// Slot returns the column range of the named register.
func (p *Layout) Slot(name string) (Slot, bool) {
	slot, ok := p.slots[name]
	//
	return slot, ok
}

// MustSlot is as Slot, but panics if the register is unknown.
func (p *Layout) MustSlot(name string) Slot {
	slot, ok := p.slots[name]
	//
	if !ok {
		panic(fmt.Sprintf("unknown register %q", name))
	}
	//
	return slot
}

// Columns returns, for a given row, the slice of columns occupied by the
// named register.  This fails if the row does not match the layout width.
func Columns[T any](p *Layout, name string, row []T) ([]T, error) {
	if uint(len(row)) != p.width {
		return nil, fmt.Errorf("row width %d does not match layout width %d", len(row), p.width)
	}
	//
	slot := p.MustSlot(name)
	//
	return row[slot.Offset : slot.Offset+slot.Width], nil
}
