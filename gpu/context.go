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

// ActiveInfo is the information returned by the driver for an active uniform
// or attribute.
type ActiveInfo struct {
	Name string
	Size int32
	Type uint32
}

// Context is the GL API surface consumed by Embr. Method names follow the GL
// function names. Object creation returns the new object name. Query
// functions return their result rather than writing through a pointer.
type Context interface {
	// shaders and programs
	CreateShader(stage uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// introspection
	GetActiveUniform(program uint32, index uint32) ActiveInfo
	GetActiveAttrib(program uint32, index uint32) ActiveInfo
	GetUniformLocation(program uint32, name string) int32
	GetAttribLocation(program uint32, name string) int32

	// uniform values. applies to the program currently in use
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x, y float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4fv(location int32, transpose bool, m [16]float32)

	// textures. a nil pixels slice allocates storage without uploading
	CreateTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target uint32, texture uint32)
	TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []byte)
	TexParameteri(target uint32, pname uint32, param int32)
	DeleteTexture(texture uint32)

	// framebuffers
	CreateFramebuffer() uint32
	BindFramebuffer(target uint32, fbo uint32)
	FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, texture uint32, level int32)
	CheckFramebufferStatus(target uint32) uint32
	DeleteFramebuffer(fbo uint32)

	// buffers
	CreateBuffer() uint32
	BindBuffer(target uint32, buffer uint32)
	BufferDataFloat32(target uint32, data []float32, usage uint32)
	BufferDataUint16(target uint32, data []uint16, usage uint32)
	DeleteBuffer(buffer uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	// drawing
	DrawArrays(mode uint32, first int32, count int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)

	GetError() uint32
}
