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

package gpu

// Boolean values.
const (
	FALSE = 0
	TRUE  = 1
)

// Errors returned by GetError().
const (
	NO_ERROR                      = 0x0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506
)

// Shader and program parameters.
const (
	FRAGMENT_SHADER             = 0x8B30
	VERTEX_SHADER               = 0x8B31
	COMPILE_STATUS              = 0x8B81
	LINK_STATUS                 = 0x8B82
	INFO_LOG_LENGTH             = 0x8B84
	ACTIVE_UNIFORMS             = 0x8B86
	ACTIVE_UNIFORM_MAX_LENGTH   = 0x8B87
	ACTIVE_ATTRIBUTES           = 0x8B89
	ACTIVE_ATTRIBUTE_MAX_LENGTH = 0x8B8A
)

// Data types. Also used as the type of active uniforms and attributes.
const (
	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	INT            = 0x1404
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406

	FLOAT_VEC2   = 0x8B50
	FLOAT_VEC3   = 0x8B51
	FLOAT_VEC4   = 0x8B52
	INT_VEC2     = 0x8B53
	INT_VEC3     = 0x8B54
	INT_VEC4     = 0x8B55
	BOOL         = 0x8B56
	BOOL_VEC2    = 0x8B57
	BOOL_VEC3    = 0x8B58
	BOOL_VEC4    = 0x8B59
	FLOAT_MAT2   = 0x8B5A
	FLOAT_MAT3   = 0x8B5B
	FLOAT_MAT4   = 0x8B5C
	SAMPLER_2D   = 0x8B5E
	SAMPLER_3D   = 0x8B5F
	SAMPLER_CUBE = 0x8B60
)

// Textures.
const (
	TEXTURE_2D         = 0x0DE1
	TEXTURE_CUBE_MAP   = 0x8513
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	TEXTURE0           = 0x84C0

	NEAREST         = 0x2600
	LINEAR          = 0x2601
	REPEAT          = 0x2901
	CLAMP_TO_BORDER = 0x812D
	CLAMP_TO_EDGE   = 0x812F

	DEPTH_COMPONENT   = 0x1902
	RED               = 0x1903
	RGB               = 0x1907
	RGBA              = 0x1908
	RGBA8             = 0x8058
	RGBA32F           = 0x8814
	RGBA16F           = 0x881A
	DEPTH_COMPONENT24 = 0x81A6
)

// Framebuffers.
const (
	FRAMEBUFFER       = 0x8D40
	READ_FRAMEBUFFER  = 0x8CA8
	DRAW_FRAMEBUFFER  = 0x8CA9
	COLOR_ATTACHMENT0 = 0x8CE0
	DEPTH_ATTACHMENT  = 0x8D00

	FRAMEBUFFER_COMPLETE                      = 0x8CD5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = 0x8CD7
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER        = 0x8CDB
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER        = 0x8CDC
	FRAMEBUFFER_UNSUPPORTED                   = 0x8CDD
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        = 0x8D56
	FRAMEBUFFER_UNDEFINED                     = 0x8219
)

// Buffers.
const (
	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STREAM_DRAW          = 0x88E0
	STATIC_DRAW          = 0x88E4
	DYNAMIC_DRAW         = 0x88E8
)

// Primitives.
const (
	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_LOOP      = 0x0002
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006
)

// Clearing.
const (
	DEPTH_BUFFER_BIT = 0x00000100
	COLOR_BUFFER_BIT = 0x00004000
)
