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

// Package version reports the version of the program as set by the build and
// the version control information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "embr"

// number is set by the linker for release builds:
//
//	go build -ldflags "-X github.com/jetsetilly/embr/version.number=v0.1.0"
var number string

// Info is the version information for the running program.
type Info struct {
	// the release number. "unreleased" if the program was built from a
	// repository without a release number and "local" if there is no version
	// control information at all
	Version string

	// the vcs revision. suffixed with "+dirty" if the working tree had
	// uncommitted changes
	Revision string

	// true if Version is a release number
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

var current Info

// Current returns the version information for the running program.
func Current() Info {
	return current
}

func init() {
	current = fromSettings(number, buildSettings())
}

func buildSettings() map[string]string {
	settings := make(map[string]string)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}
	return settings
}

func fromSettings(number string, settings map[string]string) Info {
	var inf Info

	if rev := settings["vcs.revision"]; rev == "" {
		inf.Revision = "no revision information"
	} else {
		inf.Revision = rev
		if settings["vcs.modified"] == "true" {
			inf.Revision += "+dirty"
		}
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case settings["vcs"] != "":
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}
