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

// Package modalflag handles command lines made up of modes, each with its own
// set of flags. For example:
//
//	embr -statsview VIEW -watch
//
// Here, -statsview is a flag of the top level and VIEW is a mode with its
// own -watch flag. Parsing is done one level at a time. Flags for the current
// level are added, Parse() is called and then Mode() says which mode was
// selected. NewMode() then prepares for the flags of that mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("VIEW", "INSPECT")
//	stats := md.AddBool("statsview", false, "run stats server")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "VIEW":
//		md.NewMode()
//		watch := md.AddBool("watch", false, "reload shaders")
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not a mode name. Mode names are not case sensitive.
package modalflag
