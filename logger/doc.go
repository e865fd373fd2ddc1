// This file is part of Embr.
//
// Embr is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Embr is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Embr.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for Embr. Entries are tagged, usually
// with the name of the package making the entry, and are held in memory
// until they are written out with Write() or Tail().
//
//	logger.Logf("shader", "%s: unresolved #include %q", id, incl)
//
// Consecutive identical entries are collapsed into one entry with a repeat
// count. The log holds a fixed number of entries; older entries are dropped.
//
// SetEcho() causes every new entry to also be written to the supplied
// io.Writer as soon as it is logged. The viewer uses this with os.Stderr
// when the -log flag is given.
package logger
