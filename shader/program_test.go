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

package shader_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/jetsetilly/embr/curated"
	"github.com/jetsetilly/embr/gpu"
	"github.com/jetsetilly/embr/gpu/gputest"
	"github.com/jetsetilly/embr/shader"
	"github.com/jetsetilly/embr/test"
)

const combined = `uniform mat4 u_mvp;
#ifdef VERTEX
void main() { gl_Position = u_mvp * vec4(0.0); }
#endif
#ifdef FRAGMENT
void main() { gl_FragColor = vec4(1.0); }
#endif
`

func TestNewProgram(t *testing.T) {
	ctx := gputest.New()

	prog, err := shader.NewProgram(ctx, combined)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, prog, 0)

	p, ok := ctx.Programs[prog]
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, p.Linked)
	test.DemandEquality(t, len(p.Shaders), 2)

	vert := ctx.Shaders[p.Shaders[0]]
	frag := ctx.Shaders[p.Shaders[1]]
	test.ExpectEquality(t, vert.Stage, uint32(gpu.VERTEX_SHADER))
	test.ExpectEquality(t, frag.Stage, uint32(gpu.FRAGMENT_SHADER))
	test.ExpectEquality(t, vert.Source, shader.VertexDefine+combined)
	test.ExpectEquality(t, frag.Source, shader.FragmentDefine+combined)

	// shader objects are released once the program has been linked
	test.ExpectSuccess(t, vert.Deleted)
	test.ExpectSuccess(t, frag.Deleted)
}

func TestVersionDirective(t *testing.T) {
	ctx := gputest.New()

	src := "#version 150\n" + combined
	prog, err := shader.NewProgram(ctx, src)
	test.DemandSuccess(t, err)

	p := ctx.Programs[prog]
	vert := ctx.Shaders[p.Shaders[0]]
	test.ExpectEquality(t, vert.Source, "#version 150\n"+shader.VertexDefine+combined)

	// leading blank lines before the version directive are kept
	src = "\n\n#version 150 core\nvoid main() {}"
	prog, err = shader.NewProgram(ctx, src)
	test.DemandSuccess(t, err)

	p = ctx.Programs[prog]
	frag := ctx.Shaders[p.Shaders[1]]
	test.ExpectEquality(t, frag.Source, "\n\n#version 150 core\n"+shader.FragmentDefine+"void main() {}")
}

func TestCompileError(t *testing.T) {
	ctx := gputest.New()
	ctx.CompileLog[gpu.FRAGMENT_SHADER] = "0:3(1): error: syntax error\n"

	prog, err := shader.NewProgram(ctx, combined)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, prog, 0)
	test.ExpectSuccess(t, curated.Is(err, shader.CompileError))
	test.ExpectEquality(t, err.Error(), "shader: compile: fragment: 0:3(1): error: syntax error")

	// both shader objects have been deleted and no program was created
	for _, sh := range ctx.Shaders {
		test.ExpectSuccess(t, sh.Deleted)
	}
	test.ExpectEquality(t, len(ctx.Programs), 0)

	// vertex failure is reported as such
	ctx = gputest.New()
	ctx.CompileLog[gpu.VERTEX_SHADER] = "bad vertex"
	_, err = shader.NewProgram(ctx, combined)
	test.ExpectSuccess(t, curated.Is(err, shader.CompileError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "vertex: bad vertex"))

	// the fragment stage is never compiled if the vertex stage fails
	test.ExpectEquality(t, len(ctx.Calls("CompileShader")), 1)
}

func TestLinkError(t *testing.T) {
	ctx := gputest.New()
	ctx.LinkLog = "error: varying v_color not written by vertex shader"

	prog, err := shader.NewProgram(ctx, combined)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, prog, 0)
	test.ExpectSuccess(t, curated.Is(err, shader.LinkError))
	test.ExpectEquality(t, err.Error(), "shader: link: error: varying v_color not written by vertex shader")

	for _, p := range ctx.Programs {
		test.ExpectSuccess(t, p.Deleted)
	}
}

func TestMakeProgram(t *testing.T) {
	fsys := fstest.MapFS{
		"common.glsl": {Data: []byte("uniform vec4 u_color;\n")},
		"flat.glsl":   {Data: []byte("#include \"common.glsl\"\n#ifdef FRAGMENT\nvoid main() { gl_FragColor = u_color; }\n#endif\n")},
	}

	ctx := gputest.New()
	reg := shader.NewRegistry()

	_, err := reg.LoadFile(fsys, "common.glsl")
	test.DemandSuccess(t, err)

	prog, err := reg.MakeProgram(ctx, fsys, "flat.glsl")
	test.DemandSuccess(t, err)

	p := ctx.Programs[prog]
	frag := ctx.Shaders[p.Shaders[1]]
	test.ExpectEquality(t, frag.Source, shader.FragmentDefine+"uniform vec4 u_color;\n\n#ifdef FRAGMENT\nvoid main() { gl_FragColor = u_color; }\n#endif\n")

	// the file has been registered as part of building the program
	_, ok := reg.Lookup("flat.glsl")
	test.ExpectSuccess(t, ok)

	_, err = reg.MakeProgram(ctx, fsys, "missing.glsl")
	test.ExpectSuccess(t, curated.Is(err, shader.LoadError))
}

func TestStageName(t *testing.T) {
	test.ExpectEquality(t, shader.StageName(gpu.VERTEX_SHADER), "vertex")
	test.ExpectEquality(t, shader.StageName(gpu.FRAGMENT_SHADER), "fragment")
}
