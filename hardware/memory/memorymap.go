// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher6502/logger"
)

// ErrAreaOverlap is returned by Map.Attach() when the new area overlaps an
// area that is already attached.
var ErrAreaOverlap = errors.New("memory: area overlaps existing area")

// Attachment describes where an Area has been attached in a Map.
type Attachment struct {
	Label  string
	Origin uint16
	Memtop uint16
	Area   Area
}

func (a Attachment) String() string {
	return fmt.Sprintf("%#04x -> %#04x %s", a.Origin, a.Memtop, a.Label)
}

// Map is a composite memory. Areas are attached at an origin and addresses
// between the origin and the memtop of the area are passed to that area,
// translated so that the origin is address zero of the area.
type Map struct {
	// attached areas in order of origin
	areas []Attachment

	// the last value seen on the data bus. returned by Read() for addresses
	// that are not attached to any area
	dataBus uint8
}

// NewMap is the preferred method of initialisation for the Map type.
func NewMap() *Map {
	return &Map{}
}

func (m *Map) String() string {
	s := strings.Builder{}
	for _, a := range m.areas {
		s.WriteString(a.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Attach an area to the Map at the origin address. The area must fit in the
// address space and must not overlap any existing attachment.
func (m *Map) Attach(label string, origin uint16, area Area) error {
	if area.Len() == 0 {
		return fmt.Errorf("memory: cannot attach empty area %s", label)
	}

	if err := checkRange(origin, area.Len()); err != nil {
		logger.Logf(logger.Allow, "memory", "%s rejected: %v", label, err)
		return err
	}

	n := Attachment{
		Label:  label,
		Origin: origin,
		Memtop: origin + uint16(area.Len()-1),
		Area:   area,
	}

	for _, a := range m.areas {
		if n.Origin <= a.Memtop && a.Origin <= n.Memtop {
			err := fmt.Errorf("%w: %s (%#04x) overlaps %s (%#04x)", ErrAreaOverlap, label, origin, a.Label, a.Origin)
			logger.Log(logger.Allow, "memory", err)
			return err
		}
	}

	m.areas = append(m.areas, n)
	sort.Slice(m.areas, func(i, j int) bool {
		return m.areas[i].Origin < m.areas[j].Origin
	})

	return nil
}

// Areas returns a copy of the attachments in order of origin.
func (m *Map) Areas() []Attachment {
	c := make([]Attachment, len(m.areas))
	copy(c, m.areas)
	return c
}

// DataBus returns the last value seen on the data bus.
func (m *Map) DataBus() uint8 {
	return m.dataBus
}

// mapAddress returns the area that the address is attached to and the address
// translated for that area.
func (m *Map) mapAddress(address uint16) (Area, uint16, bool) {
	for _, a := range m.areas {
		if address < a.Origin {
			break
		}
		if address <= a.Memtop {
			return a.Area, address - a.Origin, true
		}
	}
	return nil, 0, false
}

// Peek implements the DebuggerBus interface.
func (m *Map) Peek(address uint16) (uint8, bool) {
	area, ma, ok := m.mapAddress(address)
	if !ok {
		return 0, false
	}
	return area.Peek(ma)
}

// Poke implements the DebuggerBus interface.
func (m *Map) Poke(address uint16, value uint8) {
	if area, ma, ok := m.mapAddress(address); ok {
		area.Poke(ma, value)
	}
}

// Read implements the CPUBus interface.
func (m *Map) Read(address uint16) uint8 {
	if area, ma, ok := m.mapAddress(address); ok {
		m.dataBus = area.Read(ma)
	}
	return m.dataBus
}

// Write implements the CPUBus interface.
func (m *Map) Write(address uint16, value uint8) {
	m.dataBus = value
	if area, ma, ok := m.mapAddress(address); ok {
		area.Write(ma, value)
	}
}
