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

package main

import (
	"strings"
	"testing"

	"github.com/jetsetilly/embr/test"
	"github.com/jetsetilly/embr/version"
)

func TestLaunchVersion(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"version"}, w), 0)
	test.ExpectSuccess(t, w.Compare(version.Current().String()+"\n"))
}

func TestLaunchHelp(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-help"}, w), 0)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "usage:"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "modes: VIEW, INSPECT, VERSION (default VIEW)"))
}

func TestLaunchErrors(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, w), 10)

	// inspect mode fails before opening a window when there are no files
	w.Clear()
	test.ExpectEquality(t, launch([]string{"inspect"}, w), 20)
	test.ExpectEquality(t, w.String(), "* error in INSPECT mode: at least one shader file is required\n")
}
