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

package shader

import (
	"io/fs"
	"regexp"
	"strings"

	"github.com/jetsetilly/embr/curated"
	"github.com/jetsetilly/embr/gpu"
)

// Patterns for errors raised when building a program. CompileError values
// are the stage ("vertex" or "fragment") and the driver's info log.
// LinkError has the driver's info log as its only value.
const (
	CompileError = "shader: compile: %s: %s"
	LinkError    = "shader: link: %s"
)

// The single line definitions that select the stage when a combined source
// is compiled.
const (
	VertexDefine   = "#define VERTEX\n"
	FragmentDefine = "#define FRAGMENT\n"
)

// a #version directive must be the first thing in a GLSL source. leading
// white space and blank lines are allowed
var versionDirective = regexp.MustCompile(`^\s*#version[^\n]*\n`)

// withDefine prepends the define to the source. if the source begins with a
// #version directive the define is placed immediately after it.
func withDefine(define string, src string) string {
	if loc := versionDirective.FindStringIndex(src); loc != nil {
		return src[:loc[1]] + define + src[loc[1]:]
	}
	return define + src
}

// StageName returns the name used for a shader stage in error messages.
func StageName(stage uint32) string {
	switch stage {
	case gpu.VERTEX_SHADER:
		return "vertex"
	case gpu.FRAGMENT_SHADER:
		return "fragment"
	}
	return gpu.EnumName(stage)
}

// compile a single shader stage. the shader object is deleted if compilation
// fails.
func compile(ctx gpu.Context, stage uint32, src string) (uint32, error) {
	sh := ctx.CreateShader(stage)
	ctx.ShaderSource(sh, src)
	ctx.CompileShader(sh)

	if ctx.GetShaderiv(sh, gpu.COMPILE_STATUS) != gpu.TRUE {
		log := strings.TrimSpace(ctx.GetShaderInfoLog(sh))
		ctx.DeleteShader(sh)
		return 0, curated.Errorf(CompileError, StageName(stage), log)
	}

	return sh, nil
}

// link the vertex and fragment shaders into a new program. the shader
// objects are no longer needed once linking has been attempted and are
// deleted in all cases. the program is deleted if linking fails.
func link(ctx gpu.Context, vert uint32, frag uint32) (uint32, error) {
	prog := ctx.CreateProgram()
	ctx.AttachShader(prog, vert)
	ctx.AttachShader(prog, frag)
	ctx.LinkProgram(prog)

	ctx.DeleteShader(frag)
	ctx.DeleteShader(vert)

	if ctx.GetProgramiv(prog, gpu.LINK_STATUS) != gpu.TRUE {
		log := strings.TrimSpace(ctx.GetProgramInfoLog(prog))
		ctx.DeleteProgram(prog)
		return 0, curated.Errorf(LinkError, log)
	}

	return prog, nil
}

// NewProgramStages compiles the vertex and fragment sources and links them.
// The sources are used as they are, without any stage definition.
func NewProgramStages(ctx gpu.Context, vertex string, fragment string) (uint32, error) {
	vert, err := compile(ctx, gpu.VERTEX_SHADER, vertex)
	if err != nil {
		return 0, err
	}

	frag, err := compile(ctx, gpu.FRAGMENT_SHADER, fragment)
	if err != nil {
		ctx.DeleteShader(vert)
		return 0, err
	}

	return link(ctx, vert, frag)
}

// NewProgram compiles a combined source containing both stages. The vertex
// stage is compiled with VERTEX defined and the fragment stage with FRAGMENT
// defined.
func NewProgram(ctx gpu.Context, source string) (uint32, error) {
	return NewProgramStages(ctx,
		withDefine(VertexDefine, source),
		withDefine(FragmentDefine, source))
}

// MakeProgram loads and registers the file at path and builds a program from
// the resolved source.
func (reg *Registry) MakeProgram(ctx gpu.Context, fsys fs.FS, path string) (uint32, error) {
	src, err := reg.LoadFile(fsys, path)
	if err != nil {
		return 0, err
	}
	return NewProgram(ctx, src)
}
