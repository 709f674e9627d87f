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

package functional_test

import (
	"os"
	"path/filepath"
	"runtime/pprof"
	"testing"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/test"
)

const (
	// whether to create a CPU profile of the host computer when running the test
	profiling = false

	// the file the CPU history is written to if the test fails
	historyFile = "functional_test_history.dot"
)

// these addresses are specific to the functional test binary
var programOrigin = uint16(0x0400)
var loadAddress = uint16(0x000a)
var successAddress = uint16(0x347d)

func TestFunctional(t *testing.T) {
	functionalTest, err := os.ReadFile(filepath.Join("testdata", "6502_functional_test.bin"))
	if err != nil {
		t.Skipf("functional test binary not available: %v", err)
	}

	mem := memory.NewRAM(0x10000)
	err = memory.PokeSlice(mem, loadAddress, functionalTest)
	test.DemandSuccess(t, err)

	// set reset vectors
	mem.Poke(cpubus.Reset, uint8(programOrigin))
	mem.Poke(cpubus.Reset+1, uint8(programOrigin>>8))

	// create CPU. reset will be done in run() function
	mc := cpu.NewCPU(mem)

	// cpu snapshot to be examined in case of test failure
	type snapshot struct {
		state  cpu.State
		result execution.Result
		stack  []byte
		valid  bool
	}
	var history [15]snapshot

	// benchmarking. reset on every call to run()
	var totalCycles int
	var startTime time.Time

	// the run function is run at least once with the record parameter set to
	// false. if the run() fails, the function is run again with the record
	// parameter set to true
	run := func(record bool) bool {
		// start and end profile only if record is set to false - we don't want
		// to profile all the memory allocations
		if profiling && !record {
			f, err := os.Create("cpu_performance.profile")
			if err != nil {
				t.Fatal(err.Error())
			}
			defer func() {
				err := f.Close()
				if err != nil {
					t.Fatal(err.Error())
				}
			}()

			err = pprof.StartCPUProfile(f)
			if err != nil {
				t.Fatal(err.Error())
			}
			defer pprof.StopCPUProfile()
		}

		totalCycles = 0
		startTime = time.Now()

		mc.Reset()
		err := mc.LoadPCIndirect(cpubus.Reset)
		if err != nil {
			t.Fatal(err)
		}

		for {
			addr := mc.PC.Address()

			err := mc.ExecuteInstruction(cpu.NilCycleCallback)
			if err != nil {
				t.Fatal(err)
			}

			totalCycles += mc.LastResult.Cycles

			if record {
				copy(history[:], history[1:])
				history[len(history)-1].state = mc.State.Snapshot()
				history[len(history)-1].result = mc.LastResult
				history[len(history)-1].valid = true

				top := cpubus.StackPage + uint16(mc.SP.Value()) + 1
				history[len(history)-1].stack = append([]byte(nil), mem.Bytes()[top:0x0200]...)
			}

			// reaching the successAddress means that all tests have completed
			if mc.PC.Address() == successAddress {
				return true
			}

			// "Loop on program counter determines error or successful completion of test"
			if mc.PC.Address() == addr {
				return false
			}
		}
	}

	if run(false) {
		elapsed := time.Since(startTime)
		if elapsed > 0 {
			t.Logf("approx cycles per second: %.0f", float64(totalCycles)/elapsed.Seconds())
		}

		// the totalCycles value is the same regardless of the performance and
		// capabilities of the host machine
		test.ExpectEquality(t, totalCycles, 96247556)
	} else {
		// the first run() failed so we run it again with the record parameter
		// set to true. note that we expect the execution to return false. if it
		// does not then something unexpected has gone wrong
		ok := run(true)
		test.DemandFailure(t, ok)

		// output immediate CPU history
		for _, l := range history {
			if l.valid {
				t.Logf("%s", l.result.String())
				t.Logf("%s", l.state.String())
				if len(l.stack) == 0 {
					t.Log("[stack is empty]")
				} else {
					t.Logf("[% 02x]", l.stack)
				}
			}
		}

		// the full history as a graph
		f, err := os.Create(historyFile)
		if err != nil {
			t.Fatal(err)
		}
		memviz.Map(f, &history)
		err = f.Close()
		if err != nil {
			t.Fatal(err)
		}
		t.Logf("CPU history written to %s", historyFile)

		t.Fail()
	}
}
