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

// Package logger is the central log for the emulation core. Entries are
// tagged with the name of the component making the entry ("CPU", "memory")
// and the log has a fixed maximum length, the oldest entries being dropped
// when it is reached.
//
// Logging is not used on the per-cycle path of the CPU. Events that a host
// would want to know about, such as an illegal opcode or an interrupt being
// serviced, are logged.
//
// Whether an entry is made depends on the Permission argument. Use
// logger.Allow if the entry should always be made.
package logger
