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

// Package program introspects a linked shader program and creates a binding
// for every active uniform and attribute.
//
// Bindings are created once, when New() is called, and never change. If the
// underlying GL program is relinked a new Program must be created.
//
// Uniform bindings have a setter whose accepted value depends on the
// declared type of the uniform:
//
//	bool, int, sampler2D, samplerCube    int, int32, bool
//	float                                float32, float64
//	vec2, vec3, vec4                     mgl32.Vec2, mgl32.Vec3, mgl32.Vec4
//	mat4                                 mgl32.Mat4 or [16]float32 (column-major)
//
// Uniforms of any other type are bound with the Unsupported kind. Creating
// the binding never fails but calling Set() on it always returns an
// UnsupportedUniformType error.
//
// Attribute bindings only carry the attribute location. Attribute values are
// supplied through vertex buffers, see the vbo package.
//
// Typical use in a render loop:
//
//	prog := program.New(ctx, handle)
//	prog.Use()
//	err := prog.Set("u_mvp", projection.Mul4(modelview))
package program
