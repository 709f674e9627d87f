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

package cpu_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

// a single access of the memory bus
type access struct {
	address uint16
	value   uint8
	write   bool
}

func (a access) String() string {
	if a.write {
		return fmt.Sprintf("W %04x %02x", a.address, a.value)
	}
	return fmt.Sprintf("R %04x %02x", a.address, a.value)
}

func read(address uint16, value uint8) access {
	return access{address: address, value: value}
}

func write(address uint16, value uint8) access {
	return access{address: address, value: value, write: true}
}

// mockMem is a full 64K of RAM that records every access made through the
// CPU bus
type mockMem struct {
	*memory.RAM
	trace []access
}

func newMockMem() *mockMem {
	return &mockMem{RAM: memory.NewRAM(0x10000)}
}

func (mem *mockMem) Read(address uint16) uint8 {
	v := mem.RAM.Read(address)
	mem.trace = append(mem.trace, read(address, v))
	return v
}

func (mem *mockMem) Write(address uint16, value uint8) {
	mem.RAM.Write(address, value)
	mem.trace = append(mem.trace, write(address, value))
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Poke(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) clearTrace() {
	mem.trace = mem.trace[:0]
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	v, _ := mem.Peek(address)
	test.ExpectEquality(t, v, value, "memory at %04x", address)
}

func (mem *mockMem) assertTrace(t *testing.T, expected ...access) {
	t.Helper()
	if !test.ExpectEquality(t, len(mem.trace), len(expected), "number of bus accesses") {
		t.Logf("trace: %v", mem.trace)
		return
	}
	for i := range expected {
		test.ExpectEquality(t, mem.trace[i], expected[i], "cycle %d", i+1)
	}
}

func newCPU() (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	return cpu.NewCPU(mem), mem
}

// step executes a single instruction and checks the validity of the result
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid())
	return mc.LastResult
}
