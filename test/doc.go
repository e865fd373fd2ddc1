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

// Package test contains helper functions to remove common boilerplate from
// the tests of other Embr packages.
//
// The ExpectFailure() and ExpectSuccess() functions test for failure and
// success under generic conditions. A bool is successful if it is true and an
// error is successful if it is nil.
//
// It is worth describing how the nil type is handled because it is not
// obvious. The nil type is considered a success and consequently will cause
// ExpectFailure() to fail and ExpectSuccess() to succeed. Because of how
// errors usually work (nil to indicate no error) we need to interpret nil in
// this way.
//
// The Demand*() functions are the same as the Expect*() functions but stop
// the test immediately. They should be used when the value being tested is
// required by later parts of the test.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
