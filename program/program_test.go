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

package program_test

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/embr/curated"
	"github.com/jetsetilly/embr/gpu"
	"github.com/jetsetilly/embr/gpu/gputest"
	"github.com/jetsetilly/embr/logger"
	"github.com/jetsetilly/embr/program"
	"github.com/jetsetilly/embr/shader"
	"github.com/jetsetilly/embr/test"
)

// link a program in the fake driver with the specified active uniforms and
// attributes.
func link(t *testing.T, ctx *gputest.Context, uniforms []gpu.ActiveInfo, attributes []gpu.ActiveInfo) uint32 {
	t.Helper()
	ctx.Uniforms = uniforms
	ctx.Attributes = attributes
	h, err := shader.NewProgram(ctx, "void main() {}")
	test.DemandSuccess(t, err)
	return h
}

func TestIntrospection(t *testing.T) {
	ctx := gputest.New()
	h := link(t, ctx, []gpu.ActiveInfo{
		{Name: "u_color", Size: 1, Type: gpu.FLOAT_VEC4},
		{Name: "u_mvp", Size: 1, Type: gpu.FLOAT_MAT4},
		{Name: "u_tex", Size: 1, Type: gpu.SAMPLER_2D},
	}, []gpu.ActiveInfo{
		{Name: "a_position", Size: 1, Type: gpu.FLOAT_VEC3},
	})

	p := program.New(ctx, h)
	test.ExpectEquality(t, p.Handle(), h)

	b := p.Bindings()
	test.DemandEquality(t, len(b), 4)

	test.ExpectEquality(t, b[0].Name, "u_color")
	test.ExpectEquality(t, b[0].Kind, program.Vec4)
	test.ExpectEquality(t, b[0].Location, gputest.UniformLocation(0))
	test.ExpectEquality(t, b[1].Name, "u_mvp")
	test.ExpectEquality(t, b[1].Kind, program.Mat4)
	test.ExpectEquality(t, b[2].Name, "u_tex")
	test.ExpectEquality(t, b[2].Kind, program.Int)
	test.ExpectEquality(t, b[3].Name, "a_position")
	test.ExpectEquality(t, b[3].Kind, program.Attribute)
	test.ExpectEquality(t, b[3].Location, gputest.AttribLocation(0))
	test.ExpectFailure(t, b[3].IsUniform())

	// exactly three uniform bindings
	uniforms := 0
	for _, bb := range b {
		if bb.IsUniform() {
			uniforms++
		}
	}
	test.ExpectEquality(t, uniforms, 3)

	// introspection does not change driver state
	test.ExpectEquality(t, len(ctx.Calls("UseProgram")), 0)
	test.ExpectEquality(t, len(ctx.Calls("Uniform4f")), 0)
	test.ExpectEquality(t, len(ctx.Calls("UniformMatrix4fv")), 0)
	test.ExpectEquality(t, len(ctx.Calls("Uniform1i")), 0)
}

func TestSetters(t *testing.T) {
	ctx := gputest.New()
	h := link(t, ctx, []gpu.ActiveInfo{
		{Name: "u_color", Size: 1, Type: gpu.FLOAT_VEC4},
		{Name: "u_mvp", Size: 1, Type: gpu.FLOAT_MAT4},
		{Name: "u_tex", Size: 1, Type: gpu.SAMPLER_2D},
	}, nil)

	p := program.New(ctx, h)
	p.Use()
	test.ExpectEquality(t, ctx.CurrentProgram, h)

	test.DemandSuccess(t, p.Set("u_color", mgl32.Vec4{0.1, 0.2, 0.3, 0.4}))
	c, ok := ctx.Last("Uniform4f")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, c.Args[0].(int32), gputest.UniformLocation(0))
	test.ExpectEquality(t, c.Args[1].(float32), 0.1)
	test.ExpectEquality(t, c.Args[2].(float32), 0.2)
	test.ExpectEquality(t, c.Args[3].(float32), 0.3)
	test.ExpectEquality(t, c.Args[4].(float32), 0.4)

	m := mgl32.Translate3D(1, 2, 3)
	test.DemandSuccess(t, p.Set("u_mvp", m))
	c, ok = ctx.Last("UniformMatrix4fv")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, c.Args[0].(int32), gputest.UniformLocation(1))
	test.ExpectFailure(t, c.Args[1].(bool))

	// column-major: the translation is in elements 12, 13 and 14
	mv := c.Args[2].([16]float32)
	test.ExpectEquality(t, mv, [16]float32(m))
	test.ExpectEquality(t, mv[12], 1.0)
	test.ExpectEquality(t, mv[13], 2.0)
	test.ExpectEquality(t, mv[14], 3.0)

	test.DemandSuccess(t, p.Set("u_tex", 3))
	c, ok = ctx.Last("Uniform1i")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, c.Args[0].(int32), gputest.UniformLocation(2))
	test.ExpectEquality(t, c.Args[1].(int32), 3)

	test.DemandSuccess(t, p.Set("u_tex", true))
	c, _ = ctx.Last("Uniform1i")
	test.ExpectEquality(t, c.Args[1].(int32), 1)
}

func TestScalarAndVectorSetters(t *testing.T) {
	ctx := gputest.New()
	h := link(t, ctx, []gpu.ActiveInfo{
		{Name: "u_time", Size: 1, Type: gpu.FLOAT},
		{Name: "u_size", Size: 1, Type: gpu.FLOAT_VEC2},
		{Name: "u_light", Size: 1, Type: gpu.FLOAT_VEC3},
		{Name: "u_enabled", Size: 1, Type: gpu.BOOL},
		{Name: "u_count", Size: 1, Type: gpu.INT},
		{Name: "u_env", Size: 1, Type: gpu.SAMPLER_CUBE},
	}, nil)

	p := program.New(ctx, h)

	test.ExpectSuccess(t, p.Set("u_time", float32(1.5)))
	c, _ := ctx.Last("Uniform1f")
	test.ExpectEquality(t, c.Args[1].(float32), 1.5)

	test.ExpectSuccess(t, p.Set("u_time", 2.5))
	c, _ = ctx.Last("Uniform1f")
	test.ExpectEquality(t, c.Args[1].(float32), 2.5)

	test.ExpectSuccess(t, p.Set("u_size", mgl32.Vec2{640, 480}))
	c, _ = ctx.Last("Uniform2f")
	test.ExpectEquality(t, c.Args[1].(float32), 640)
	test.ExpectEquality(t, c.Args[2].(float32), 480)

	test.ExpectSuccess(t, p.Set("u_light", mgl32.Vec3{1, 2, 3}))
	c, _ = ctx.Last("Uniform3f")
	test.ExpectEquality(t, c.Args[3].(float32), 3)

	test.ExpectSuccess(t, p.Set("u_light", [3]float32{4, 5, 6}))
	c, _ = ctx.Last("Uniform3f")
	test.ExpectEquality(t, c.Args[1].(float32), 4)

	test.ExpectSuccess(t, p.Set("u_enabled", false))
	test.ExpectSuccess(t, p.Set("u_count", int32(7)))
	test.ExpectSuccess(t, p.Set("u_env", 1))
	test.ExpectEquality(t, len(ctx.Calls("Uniform1i")), 3)
}

func TestWrongValueType(t *testing.T) {
	ctx := gputest.New()
	h := link(t, ctx, []gpu.ActiveInfo{
		{Name: "u_color", Size: 1, Type: gpu.FLOAT_VEC4},
		{Name: "u_time", Size: 1, Type: gpu.FLOAT},
	}, nil)

	p := program.New(ctx, h)

	err := p.Set("u_color", mgl32.Vec3{1, 1, 1})
	test.ExpectSuccess(t, curated.Is(err, program.UniformValueType))
	test.ExpectEquality(t, err.Error(), "program: uniform u_color: cannot set mgl32.Vec3")

	err = p.Set("u_time", 1)
	test.ExpectSuccess(t, curated.Is(err, program.UniformValueType))

	test.ExpectEquality(t, len(ctx.Calls("Uniform4f")), 0)
	test.ExpectEquality(t, len(ctx.Calls("Uniform1f")), 0)
}

func TestUnsupportedType(t *testing.T) {
	ctx := gputest.New()
	h := link(t, ctx, []gpu.ActiveInfo{
		{Name: "u_cells", Size: 1, Type: gpu.INT_VEC2},
		{Name: "u_normal", Size: 1, Type: gpu.FLOAT_MAT3},
	}, nil)

	// introspection succeeds
	p := program.New(ctx, h)

	b, ok := p.Uniform("u_cells")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, b.Kind, program.Unsupported)
	test.ExpectEquality(t, b.Type, uint32(gpu.INT_VEC2))

	// setting fails
	err := b.Set([2]int32{1, 2})
	test.ExpectSuccess(t, curated.Is(err, program.UnsupportedUniformType))
	test.ExpectEquality(t, err.Error(), "program: uniform u_cells: unsupported type 0x8b53")

	err = p.Set("u_normal", mgl32.Mat3{})
	test.ExpectSuccess(t, curated.Is(err, program.UnsupportedUniformType))
}

func TestUnknownNames(t *testing.T) {
	ctx := gputest.New()
	h := link(t, ctx, nil, []gpu.ActiveInfo{
		{Name: "a_position", Size: 1, Type: gpu.FLOAT_VEC3},
		{Name: "a_normal", Size: 1, Type: gpu.FLOAT_VEC3},
	})

	p := program.New(ctx, h)

	err := p.Set("u_missing", 1)
	test.ExpectSuccess(t, curated.Is(err, program.UnknownUniform))

	err = p.Set("a_position", mgl32.Vec3{})
	test.ExpectSuccess(t, curated.Is(err, program.NotUniform))

	b, ok := p.Attribute("a_normal")
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, curated.Is(b.Set(1), program.NotUniform))

	loc, ok := p.Location("a_normal")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, loc, gputest.AttribLocation(1))

	loc, ok = p.Location("u_missing")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, loc, -1)

	_, ok = p.Uniform("a_normal")
	test.ExpectFailure(t, ok)
}

func TestArrayUniform(t *testing.T) {
	ctx := gputest.New()
	h := link(t, ctx, []gpu.ActiveInfo{
		{Name: "u_weights[0]", Size: 5, Type: gpu.FLOAT},
	}, nil)

	logger.Clear()
	p := program.New(ctx, h)

	// the array is counted once even though it is indexed under two names
	tw := &test.Writer{}
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, strings.HasSuffix(tw.String(), ": 1 uniforms, 0 attributes\n"))

	b, ok := p.Uniform("u_weights")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, b.Name, "u_weights[0]")
	test.ExpectEquality(t, b.Size, 5)

	_, ok = p.Uniform("u_weights[0]")
	test.ExpectSuccess(t, ok)

	// only one binding exists
	test.ExpectEquality(t, len(p.Bindings()), 1)
}

func TestBindingsAreACopy(t *testing.T) {
	ctx := gputest.New()
	h := link(t, ctx, []gpu.ActiveInfo{
		{Name: "u_time", Size: 1, Type: gpu.FLOAT},
	}, nil)

	p := program.New(ctx, h)
	b := p.Bindings()
	b[0].Name = "changed"

	_, ok := p.Uniform("u_time")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p.Bindings()[0].Name, "u_time")
}

func TestDestroy(t *testing.T) {
	ctx := gputest.New()
	h := link(t, ctx, nil, nil)

	p := program.New(ctx, h)
	p.Destroy()
	test.ExpectSuccess(t, ctx.Programs[h].Deleted)
	test.ExpectEquality(t, p.Handle(), 0)

	// a second call does nothing
	p.Destroy()
	test.ExpectEquality(t, len(ctx.Calls("DeleteProgram")), 1)
}

func TestKindOf(t *testing.T) {
	test.ExpectEquality(t, program.KindOf(gpu.BOOL), program.Int)
	test.ExpectEquality(t, program.KindOf(gpu.INT), program.Int)
	test.ExpectEquality(t, program.KindOf(gpu.SAMPLER_2D), program.Int)
	test.ExpectEquality(t, program.KindOf(gpu.SAMPLER_CUBE), program.Int)
	test.ExpectEquality(t, program.KindOf(gpu.FLOAT), program.Float)
	test.ExpectEquality(t, program.KindOf(gpu.FLOAT_VEC2), program.Vec2)
	test.ExpectEquality(t, program.KindOf(gpu.FLOAT_VEC3), program.Vec3)
	test.ExpectEquality(t, program.KindOf(gpu.FLOAT_VEC4), program.Vec4)
	test.ExpectEquality(t, program.KindOf(gpu.FLOAT_MAT4), program.Mat4)
	test.ExpectEquality(t, program.KindOf(gpu.SAMPLER_3D), program.Unsupported)
	test.ExpectEquality(t, program.KindOf(gpu.BOOL_VEC3), program.Unsupported)
}
