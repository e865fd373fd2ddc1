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
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/jetsetilly/embr/logger"
	"github.com/jetsetilly/embr/modalflag"
	"github.com/jetsetilly/embr/statsview"
	"github.com/jetsetilly/embr/version"
)

// GL and SDL must be used from the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the program with the supplied arguments. returns the value to be
// used with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("VIEW", "INSPECT", "VERSION")
	echo := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* %s\n", err)
		return 10
	}

	if *echo {
		logger.SetEcho(output)
	}

	if *stats {
		stop := statsview.Launch("", output)
		defer stop()
	}

	// interrupt closes the window at the next opportunity
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var err error
	switch md.Mode() {
	case "VIEW":
		err = view(md, intChan)
	case "INSPECT":
		err = inspect(md)
	case "VERSION":
		fmt.Fprintln(output, version.Current())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}
