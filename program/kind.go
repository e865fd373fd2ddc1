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

import "github.com/jetsetilly/embr/gpu"

// Kind is the category of a binding. The uniform kinds determine which value
// types the binding's setter accepts.
type Kind int

// List of valid Kind values.
const (
	Unsupported Kind = iota
	Int
	Float
	Vec2
	Vec3
	Vec4
	Mat4
	Attribute
)

func (k Kind) String() string {
	switch k {
	case Unsupported:
		return "unsupported"
	case Int:
		return "int"
	case Float:
		return "float"
	case Vec2:
		return "vec2"
	case Vec3:
		return "vec3"
	case Vec4:
		return "vec4"
	case Mat4:
		return "mat4"
	case Attribute:
		return "attribute"
	}
	return "unknown kind"
}

// KindOf returns the Kind of setter used for a uniform of the specified GL
// type.
func KindOf(xtype uint32) Kind {
	switch xtype {
	// a bool could also be set with Uniform1f but Uniform1i is used
	case gpu.BOOL, gpu.INT, gpu.SAMPLER_2D, gpu.SAMPLER_CUBE:
		return Int
	case gpu.FLOAT:
		return Float
	case gpu.FLOAT_VEC2:
		return Vec2
	case gpu.FLOAT_VEC3:
		return Vec3
	case gpu.FLOAT_VEC4:
		return Vec4
	case gpu.FLOAT_MAT4:
		return Mat4
	}
	return Unsupported
}
