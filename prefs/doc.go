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

// Package prefs holds typed preference values and saves them to disk.
//
// The Bool, Int, Float and String types hold a single value that can be set
// and read concurrently. Hook functions can be attached to a value to react
// to, or veto, changes.
//
// A Disk associates values with keys and saves them to a TOML file. Keys can
// contain periods, in which case the value is placed in a TOML table. For
// example, the key "window.width" is saved as
//
//	[window]
//	width = 640
//
// Values can also be given on the command line as a string of key::value
// pairs separated by semicolons. See PushCommandLineStack() for details.
package prefs
