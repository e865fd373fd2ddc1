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
	"os"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/embr/gpu/glcore"
	"github.com/jetsetilly/embr/modalflag"
	"github.com/jetsetilly/embr/program"
	"github.com/jetsetilly/embr/resources"
	"github.com/jetsetilly/embr/sdlview"
	"github.com/jetsetilly/embr/shader"
	"github.com/jetsetilly/embr/version"
)

// inspect builds a program from the shader files on the command line and
// prints the result of introspection. every file is registered, in order,
// with its base name as the identifier. the last file is the one that is
// built.
func inspect(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("files are registered in order. the last file is built")
	dot := md.AddBool("memviz", false, "write graphviz dot file of the program bindings")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	files := md.RemainingArgs()
	if len(files) == 0 {
		return fmt.Errorf("at least one shader file is required")
	}

	reg := shader.NewRegistry()
	var src string
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		src, err = reg.LoadFile(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
		if err != nil {
			return err
		}
	}

	win, err := sdlview.New(version.ApplicationName, 64, 64, true)
	if err != nil {
		return err
	}
	defer win.Destroy()

	ctx, err := glcore.New()
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	h, err := shader.NewProgram(ctx, src)
	if err != nil {
		return err
	}

	prog := program.New(ctx, h)
	defer prog.Destroy()

	fmt.Fprint(md.Output, prog.String())

	if *dot {
		pth, err := resources.JoinPath("memviz", resources.UniqueFilename("bindings", filepath.Base(files[len(files)-1]))+".dot")
		if err != nil {
			return err
		}
		f, err := os.Create(pth)
		if err != nil {
			return err
		}
		defer f.Close()

		bindings := prog.Bindings()
		memviz.Map(f, &bindings)
		fmt.Fprintf(md.Output, "bindings written to %s\n", pth)
	}

	return nil
}
