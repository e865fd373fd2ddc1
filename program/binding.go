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

package program

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/embr/curated"
	"github.com/jetsetilly/embr/gpu"
)

// Patterns for errors raised by Binding.Set() and Program.Set().
const (
	// values are the uniform name and the raw GL type
	UnsupportedUniformType = "program: uniform %s: unsupported type %#x"

	// values are the uniform name and the value that could not be set
	UniformValueType = "program: uniform %s: cannot set %T"

	// value is the name that was not found
	UnknownUniform = "program: unknown uniform: %s"

	// value is the name of the attribute
	NotUniform = "program: %s is an attribute"
)

// Binding is a single active uniform or attribute.
type Binding struct {
	Kind     Kind
	Name     string
	Location int32

	// the type and array size as reported by the driver
	Type uint32
	Size int32

	ctx gpu.Context
}

// IsUniform returns true if the binding is for a uniform. Unsupported
// uniforms are still uniforms.
func (b Binding) IsUniform() bool {
	return b.Kind != Attribute
}

// Set the uniform to the value. The program the binding belongs to must be
// the program in use.
func (b Binding) Set(value interface{}) error {
	switch b.Kind {
	case Int:
		switch v := value.(type) {
		case int:
			b.ctx.Uniform1i(b.Location, int32(v))
		case int32:
			b.ctx.Uniform1i(b.Location, v)
		case bool:
			b.ctx.Uniform1i(b.Location, boolToInt32(v))
		default:
			return curated.Errorf(UniformValueType, b.Name, value)
		}

	case Float:
		switch v := value.(type) {
		case float32:
			b.ctx.Uniform1f(b.Location, v)
		case float64:
			b.ctx.Uniform1f(b.Location, float32(v))
		default:
			return curated.Errorf(UniformValueType, b.Name, value)
		}

	case Vec2:
		switch v := value.(type) {
		case mgl32.Vec2:
			b.ctx.Uniform2f(b.Location, v.X(), v.Y())
		case [2]float32:
			b.ctx.Uniform2f(b.Location, v[0], v[1])
		default:
			return curated.Errorf(UniformValueType, b.Name, value)
		}

	case Vec3:
		switch v := value.(type) {
		case mgl32.Vec3:
			b.ctx.Uniform3f(b.Location, v.X(), v.Y(), v.Z())
		case [3]float32:
			b.ctx.Uniform3f(b.Location, v[0], v[1], v[2])
		default:
			return curated.Errorf(UniformValueType, b.Name, value)
		}

	case Vec4:
		switch v := value.(type) {
		case mgl32.Vec4:
			b.ctx.Uniform4f(b.Location, v.X(), v.Y(), v.Z(), v.W())
		case [4]float32:
			b.ctx.Uniform4f(b.Location, v[0], v[1], v[2], v[3])
		default:
			return curated.Errorf(UniformValueType, b.Name, value)
		}

	case Mat4:
		// mgl32.Mat4 is stored in column-major order, which is what GL
		// expects when transpose is false
		switch v := value.(type) {
		case mgl32.Mat4:
			b.ctx.UniformMatrix4fv(b.Location, false, v)
		case [16]float32:
			b.ctx.UniformMatrix4fv(b.Location, false, v)
		default:
			return curated.Errorf(UniformValueType, b.Name, value)
		}

	case Unsupported:
		return curated.Errorf(UnsupportedUniformType, b.Name, b.Type)

	case Attribute:
		return curated.Errorf(NotUniform, b.Name)
	}

	return nil
}

// helper function to convert bool to int32.
func boolToInt32(v bool) int32 {
	if v {
		return 1
	}
	return 0
}
