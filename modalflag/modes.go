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

package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// continue processing the command line
	ParseContinue ParseResult = iota

	// help was requested and has been written to the Output
	ParseHelp

	// the command line could not be parsed. the error is returned as the
	// second return value of Parse()
	ParseError
)

// Modes is a command line parser that understands modes. Output should be
// set before calling Parse() or help messages will be lost.
type Modes struct {
	Output io.Writer

	args []string
	idx  int

	flags    *flag.FlagSet
	subModes []string
	help     string

	// modes selected so far. never reset
	path []string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs starts parsing a new list of arguments.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.NewMode()
}

// NewMode prepares for the flags and sub-modes of the mode most recently
// selected by Parse().
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet(md.Mode(), flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.subModes = md.subModes[:0]
	md.help = ""
}

// Mode returns the most recently selected mode. Returns the empty string if
// no mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// AddSubModes adds modes that can be selected by the next call to Parse().
// The first sub-mode to be added is the default.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp is text printed after the list of flags and sub-modes.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// Parse the flags for the current level and select a sub-mode if any have
// been added.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.idx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.writeHelp()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// the arguments consumed by the flag set
	md.idx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		if arg := strings.ToUpper(md.flags.Arg(0)); arg != "" {
			for _, m := range md.subModes {
				if m == arg {
					mode = m
					md.idx++
					break
				}
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are neither flags nor a selected
// sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.idx:]
}

// Visit calls fn for every flag that was set on the command line.
func (md *Modes) Visit(fn func(name string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

func (md *Modes) writeHelp() {
	if md.Output == nil {
		return
	}

	var s strings.Builder

	title := "usage"
	if p := md.Path(); p != "" {
		title = fmt.Sprintf("usage for %s mode", p)
	}
	s.WriteString(title)
	s.WriteString(":\n")

	n := 0
	md.flags.VisitAll(func(f *flag.Flag) {
		n++
		name, usage := flag.UnquoteUsage(f)
		if name != "" {
			fmt.Fprintf(&s, "  -%s %s\n", f.Name, name)
		} else {
			fmt.Fprintf(&s, "  -%s\n", f.Name)
		}
		fmt.Fprintf(&s, "\t%s", usage)
		if f.DefValue != "" && f.DefValue != "false" {
			fmt.Fprintf(&s, " (default %s)", f.DefValue)
		}
		s.WriteString("\n")
	})

	if len(md.subModes) > 0 {
		if n > 0 {
			s.WriteString("\n")
		}
		fmt.Fprintf(&s, "  modes: %s (default %s)\n", strings.Join(md.subModes, ", "), md.subModes[0])
	} else if n == 0 {
		s.Reset()
		s.WriteString("no help available")
		if p := md.Path(); p != "" {
			fmt.Fprintf(&s, " for %s mode", p)
		}
		s.WriteString("\n")
	}

	if md.help != "" {
		s.WriteString("\n")
		s.WriteString(md.help)
		s.WriteString("\n")
	}

	io.WriteString(md.Output, s.String())
}
