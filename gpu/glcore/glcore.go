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

// Package glcore implements gpu.Context with the go-gl OpenGL 3.2 core
// profile bindings.
//
// New() must be called after a GL context has been made current and from the
// thread that owns that context. Every method of the returned Context must be
// called from that same thread.
package glcore

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/embr/gpu"
	"github.com/jetsetilly/embr/logger"
)

// Context implements the gpu.Context interface.
type Context struct {
	// the core profile requires a vertex array object to be bound before
	// vertex attributes can be specified. we create one and leave it bound
	// for the lifetime of the context
	vao uint32
}

// New is the preferred method of initialisation for the Context type.
func New() (*Context, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("glcore: %w", err)
	}

	logger.Logf("glcore", "GL version %s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Logf("glcore", "GLSL version %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	ctx := &Context{}
	gl.GenVertexArrays(1, &ctx.vao)
	gl.BindVertexArray(ctx.vao)

	return ctx, nil
}

// Destroy releases the resources created by New().
func (ctx *Context) Destroy() {
	if ctx.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &ctx.vao)
		ctx.vao = 0
	}
}

// infoLog allocates a buffer of the required length and returns the result
// of the supplied info log function as a Go string.
func infoLog(length int32, get func(int32, *int32, *uint8)) string {
	if length <= 0 {
		return ""
	}

	// the length includes the NULL character
	log := strings.Repeat("\x00", int(length+1))
	get(length, &length, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (ctx *Context) CreateShader(stage uint32) uint32 {
	return gl.CreateShader(stage)
}

func (ctx *Context) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csource, nil)
}

func (ctx *Context) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (ctx *Context) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (ctx *Context) GetShaderInfoLog(shader uint32) string {
	return infoLog(ctx.GetShaderiv(shader, gl.INFO_LOG_LENGTH), func(l int32, n *int32, s *uint8) {
		gl.GetShaderInfoLog(shader, l, n, s)
	})
}

func (ctx *Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (ctx *Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (ctx *Context) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (ctx *Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (ctx *Context) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (ctx *Context) GetProgramInfoLog(program uint32) string {
	return infoLog(ctx.GetProgramiv(program, gl.INFO_LOG_LENGTH), func(l int32, n *int32, s *uint8) {
		gl.GetProgramInfoLog(program, l, n, s)
	})
}

func (ctx *Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (ctx *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// activeInfo is the common implementation for GetActiveUniform() and
// GetActiveAttrib().
func activeInfo(maxLength int32, get func(bufSize int32, length *int32, size *int32, xtype *uint32, name *uint8)) gpu.ActiveInfo {
	if maxLength <= 0 {
		maxLength = 256
	}

	var length int32
	var info gpu.ActiveInfo
	name := make([]uint8, maxLength+1)
	get(maxLength, &length, &info.Size, &info.Type, &name[0])
	info.Name = string(name[:length])
	return info
}

func (ctx *Context) GetActiveUniform(program uint32, index uint32) gpu.ActiveInfo {
	return activeInfo(ctx.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH), func(b int32, l *int32, s *int32, t *uint32, n *uint8) {
		gl.GetActiveUniform(program, index, b, l, s, t, n)
	})
}

func (ctx *Context) GetActiveAttrib(program uint32, index uint32) gpu.ActiveInfo {
	return activeInfo(ctx.GetProgramiv(program, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH), func(b int32, l *int32, s *int32, t *uint32, n *uint8) {
		gl.GetActiveAttrib(program, index, b, l, s, t, n)
	})
}

func (ctx *Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (ctx *Context) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (ctx *Context) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (ctx *Context) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (ctx *Context) Uniform2f(location int32, x, y float32) {
	gl.Uniform2f(location, x, y)
}

func (ctx *Context) Uniform3f(location int32, x, y, z float32) {
	gl.Uniform3f(location, x, y, z)
}

func (ctx *Context) Uniform4f(location int32, x, y, z, w float32) {
	gl.Uniform4f(location, x, y, z, w)
}

func (ctx *Context) UniformMatrix4fv(location int32, transpose bool, m [16]float32) {
	gl.UniformMatrix4fv(location, 1, transpose, &m[0])
}

func (ctx *Context) CreateTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (ctx *Context) ActiveTexture(unit uint32) {
	gl.ActiveTexture(unit)
}

func (ctx *Context) BindTexture(target uint32, texture uint32) {
	gl.BindTexture(target, texture)
}

func (ctx *Context) TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []byte) {
	if len(pixels) == 0 {
		gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, nil)
		return
	}
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, gl.Ptr(pixels))
}

func (ctx *Context) TexParameteri(target uint32, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (ctx *Context) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (ctx *Context) CreateFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (ctx *Context) BindFramebuffer(target uint32, fbo uint32) {
	gl.BindFramebuffer(target, fbo)
}

func (ctx *Context) FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, texture uint32, level int32) {
	gl.FramebufferTexture2D(target, attachment, textarget, texture, level)
}

func (ctx *Context) CheckFramebufferStatus(target uint32) uint32 {
	return gl.CheckFramebufferStatus(target)
}

func (ctx *Context) DeleteFramebuffer(fbo uint32) {
	gl.DeleteFramebuffers(1, &fbo)
}

func (ctx *Context) CreateBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (ctx *Context) BindBuffer(target uint32, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (ctx *Context) BufferDataFloat32(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (ctx *Context) BufferDataUint16(target uint32, data []uint16, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*2, gl.Ptr(data), usage)
}

func (ctx *Context) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (ctx *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (ctx *Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (ctx *Context) DrawArrays(mode uint32, first int32, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (ctx *Context) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElementsWithOffset(mode, count, xtype, offset)
}

func (ctx *Context) GetError() uint32 {
	return gl.GetError()
}

// Clear is not part of the gpu.Context interface. It is used by the viewer
// to prepare the default framebuffer.
func (ctx *Context) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport is not part of the gpu.Context interface.
func (ctx *Context) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

// EnableDepthTest is not part of the gpu.Context interface.
func (ctx *Context) EnableDepthTest(enable bool) {
	if enable {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// compile time check that Context satisfies the interface.
var _ gpu.Context = (*Context)(nil)
