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

// Package gputest provides an in-memory implementation of gpu.Context for use
// in tests. No GL driver is required.
//
// The Context records every call made to it. Tests can inspect the recorded
// calls with the Calls() and Last() functions.
//
// The behaviour of the driver is scripted with the exported fields of
// Context. For example, to make the next compilation of a fragment shader
// fail:
//
//	ctx := gputest.New()
//	ctx.CompileLog[gpu.FRAGMENT_SHADER] = "0:1(1): error: syntax error"
//
// and to give the next linked program a set of active uniforms:
//
//	ctx.Uniforms = []gpu.ActiveInfo{{Name: "u_mvp", Size: 1, Type: gpu.FLOAT_MAT4}}
package gputest

import (
	"github.com/jetsetilly/embr/gpu"
)

// Call is a single recorded call.
type Call struct {
	Name string
	Args []interface{}
}

// Shader is the fake driver's representation of a shader object.
type Shader struct {
	Stage    uint32
	Source   string
	Compiled bool
	Log      string
	Deleted  bool
}

// Program is the fake driver's representation of a program object.
type Program struct {
	Shaders    []uint32
	Linked     bool
	Log        string
	Uniforms   []gpu.ActiveInfo
	Attributes []gpu.ActiveInfo
	Deleted    bool
}

// Texture is the fake driver's representation of a texture object.
type Texture struct {
	Target         uint32
	InternalFormat int32
	Width          int32
	Height         int32
	Format         uint32
	Type           uint32
	Pixels         []byte
	Params         map[uint32]int32
	Deleted        bool
}

// Framebuffer is the fake driver's representation of a framebuffer object.
type Framebuffer struct {
	Attachments map[uint32]uint32
	Deleted     bool
}

// Buffer is the fake driver's representation of a buffer object.
type Buffer struct {
	Float32 []float32
	Uint16  []uint16
	Usage   uint32
	Deleted bool
}

// Context implements gpu.Context.
type Context struct {
	calls []Call

	// object names are allocated from a single counter, starting at one.
	// zero is never a valid object name
	next uint32

	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program
	Textures     map[uint32]*Texture
	Framebuffers map[uint32]*Framebuffer
	Buffers      map[uint32]*Buffer

	// current bindings
	CurrentProgram     uint32
	ActiveUnit         uint32
	BoundTextures      map[uint32]uint32 // texture unit -> texture
	BoundFramebuffer   uint32
	BoundArrayBuffer   uint32
	BoundElementBuffer uint32

	// if a stage has an entry in CompileLog then compilation of a shader
	// of that stage will fail with the log
	CompileLog map[uint32]string

	// if LinkLog is not empty then the next link will fail
	LinkLog string

	// active uniforms and attributes given to the next successfully linked
	// program
	Uniforms   []gpu.ActiveInfo
	Attributes []gpu.ActiveInfo

	// if FramebufferStatus is zero then CheckFramebufferStatus() reports
	// FRAMEBUFFER_COMPLETE if the bound framebuffer has at least one
	// attachment and FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT otherwise
	FramebufferStatus uint32

	// errors returned in order by GetError()
	PendingErrors []uint32
}

// New is the preferred method of initialisation for the Context type.
func New() *Context {
	return &Context{
		Shaders:       make(map[uint32]*Shader),
		Programs:      make(map[uint32]*Program),
		Textures:      make(map[uint32]*Texture),
		Framebuffers:  make(map[uint32]*Framebuffer),
		Buffers:       make(map[uint32]*Buffer),
		BoundTextures: make(map[uint32]uint32),
		CompileLog:    make(map[uint32]string),
		ActiveUnit:    gpu.TEXTURE0,
	}
}

func (ctx *Context) record(name string, args ...interface{}) {
	ctx.calls = append(ctx.calls, Call{Name: name, Args: args})
}

func (ctx *Context) name() uint32 {
	ctx.next++
	return ctx.next
}

// Calls returns all recorded calls with the specified name. If name is the
// empty string then all calls are returned.
func (ctx *Context) Calls(name string) []Call {
	var c []Call
	for _, cl := range ctx.calls {
		if name == "" || cl.Name == name {
			c = append(c, cl)
		}
	}
	return c
}

// Last returns the most recent call with the specified name. Returns false
// if there is no such call.
func (ctx *Context) Last(name string) (Call, bool) {
	for i := len(ctx.calls) - 1; i >= 0; i-- {
		if ctx.calls[i].Name == name {
			return ctx.calls[i], true
		}
	}
	return Call{}, false
}

// Reset forgets all recorded calls. Objects and bindings are not affected.
func (ctx *Context) Reset() {
	ctx.calls = ctx.calls[:0]
}

func (ctx *Context) CreateShader(stage uint32) uint32 {
	id := ctx.name()
	ctx.record("CreateShader", stage)
	ctx.Shaders[id] = &Shader{Stage: stage}
	return id
}

func (ctx *Context) ShaderSource(shader uint32, source string) {
	ctx.record("ShaderSource", shader, source)
	if sh, ok := ctx.Shaders[shader]; ok {
		sh.Source = source
	}
}

func (ctx *Context) CompileShader(shader uint32) {
	ctx.record("CompileShader", shader)
	sh, ok := ctx.Shaders[shader]
	if !ok {
		ctx.PendingErrors = append(ctx.PendingErrors, gpu.INVALID_VALUE)
		return
	}
	if log, ok := ctx.CompileLog[sh.Stage]; ok {
		sh.Compiled = false
		sh.Log = log
		return
	}
	sh.Compiled = true
	sh.Log = ""
}

func (ctx *Context) GetShaderiv(shader uint32, pname uint32) int32 {
	ctx.record("GetShaderiv", shader, pname)
	sh, ok := ctx.Shaders[shader]
	if !ok {
		return 0
	}
	switch pname {
	case gpu.COMPILE_STATUS:
		if sh.Compiled {
			return gpu.TRUE
		}
		return gpu.FALSE
	case gpu.INFO_LOG_LENGTH:
		if sh.Log == "" {
			return 0
		}
		return int32(len(sh.Log) + 1)
	}
	return 0
}

func (ctx *Context) GetShaderInfoLog(shader uint32) string {
	ctx.record("GetShaderInfoLog", shader)
	if sh, ok := ctx.Shaders[shader]; ok {
		return sh.Log
	}
	return ""
}

func (ctx *Context) DeleteShader(shader uint32) {
	ctx.record("DeleteShader", shader)
	if sh, ok := ctx.Shaders[shader]; ok {
		sh.Deleted = true
	}
}

func (ctx *Context) CreateProgram() uint32 {
	id := ctx.name()
	ctx.record("CreateProgram")
	ctx.Programs[id] = &Program{}
	return id
}

func (ctx *Context) AttachShader(program uint32, shader uint32) {
	ctx.record("AttachShader", program, shader)
	if p, ok := ctx.Programs[program]; ok {
		p.Shaders = append(p.Shaders, shader)
	}
}

func (ctx *Context) LinkProgram(program uint32) {
	ctx.record("LinkProgram", program)
	p, ok := ctx.Programs[program]
	if !ok {
		ctx.PendingErrors = append(ctx.PendingErrors, gpu.INVALID_VALUE)
		return
	}

	if ctx.LinkLog != "" {
		p.Linked = false
		p.Log = ctx.LinkLog
		return
	}

	for _, s := range p.Shaders {
		if sh, ok := ctx.Shaders[s]; !ok || !sh.Compiled {
			p.Linked = false
			p.Log = "error: shader not compiled"
			return
		}
	}

	p.Linked = true
	p.Log = ""
	p.Uniforms = append([]gpu.ActiveInfo{}, ctx.Uniforms...)
	p.Attributes = append([]gpu.ActiveInfo{}, ctx.Attributes...)
}

func (ctx *Context) GetProgramiv(program uint32, pname uint32) int32 {
	ctx.record("GetProgramiv", program, pname)
	p, ok := ctx.Programs[program]
	if !ok {
		return 0
	}
	switch pname {
	case gpu.LINK_STATUS:
		if p.Linked {
			return gpu.TRUE
		}
		return gpu.FALSE
	case gpu.INFO_LOG_LENGTH:
		if p.Log == "" {
			return 0
		}
		return int32(len(p.Log) + 1)
	case gpu.ACTIVE_UNIFORMS:
		return int32(len(p.Uniforms))
	case gpu.ACTIVE_ATTRIBUTES:
		return int32(len(p.Attributes))
	}
	return 0
}

func (ctx *Context) GetProgramInfoLog(program uint32) string {
	ctx.record("GetProgramInfoLog", program)
	if p, ok := ctx.Programs[program]; ok {
		return p.Log
	}
	return ""
}

func (ctx *Context) UseProgram(program uint32) {
	ctx.record("UseProgram", program)
	ctx.CurrentProgram = program
}

func (ctx *Context) DeleteProgram(program uint32) {
	ctx.record("DeleteProgram", program)
	if p, ok := ctx.Programs[program]; ok {
		p.Deleted = true
	}
	if ctx.CurrentProgram == program {
		ctx.CurrentProgram = 0
	}
}

func (ctx *Context) GetActiveUniform(program uint32, index uint32) gpu.ActiveInfo {
	ctx.record("GetActiveUniform", program, index)
	p, ok := ctx.Programs[program]
	if !ok || int(index) >= len(p.Uniforms) {
		ctx.PendingErrors = append(ctx.PendingErrors, gpu.INVALID_VALUE)
		return gpu.ActiveInfo{}
	}
	return p.Uniforms[index]
}

func (ctx *Context) GetActiveAttrib(program uint32, index uint32) gpu.ActiveInfo {
	ctx.record("GetActiveAttrib", program, index)
	p, ok := ctx.Programs[program]
	if !ok || int(index) >= len(p.Attributes) {
		ctx.PendingErrors = append(ctx.PendingErrors, gpu.INVALID_VALUE)
		return gpu.ActiveInfo{}
	}
	return p.Attributes[index]
}

// UniformLocation returns the location the fake driver assigns to the named
// uniform. Locations are the index of the uniform in the active list,
// multiplied by ten so that they are distinct from attribute locations.
func UniformLocation(index int) int32 {
	return int32(index * 10)
}

// AttribLocation returns the location the fake driver assigns to the
// attribute at index in the active list.
func AttribLocation(index int) int32 {
	return int32(index)
}

func (ctx *Context) GetUniformLocation(program uint32, name string) int32 {
	ctx.record("GetUniformLocation", program, name)
	p, ok := ctx.Programs[program]
	if !ok {
		return -1
	}
	for i, u := range p.Uniforms {
		if u.Name == name {
			return UniformLocation(i)
		}
	}
	return -1
}

func (ctx *Context) GetAttribLocation(program uint32, name string) int32 {
	ctx.record("GetAttribLocation", program, name)
	p, ok := ctx.Programs[program]
	if !ok {
		return -1
	}
	for i, a := range p.Attributes {
		if a.Name == name {
			return AttribLocation(i)
		}
	}
	return -1
}

func (ctx *Context) Uniform1i(location int32, v int32) {
	ctx.record("Uniform1i", location, v)
}

func (ctx *Context) Uniform1f(location int32, v float32) {
	ctx.record("Uniform1f", location, v)
}

func (ctx *Context) Uniform2f(location int32, x, y float32) {
	ctx.record("Uniform2f", location, x, y)
}

func (ctx *Context) Uniform3f(location int32, x, y, z float32) {
	ctx.record("Uniform3f", location, x, y, z)
}

func (ctx *Context) Uniform4f(location int32, x, y, z, w float32) {
	ctx.record("Uniform4f", location, x, y, z, w)
}

func (ctx *Context) UniformMatrix4fv(location int32, transpose bool, m [16]float32) {
	ctx.record("UniformMatrix4fv", location, transpose, m)
}

func (ctx *Context) CreateTexture() uint32 {
	id := ctx.name()
	ctx.record("CreateTexture")
	ctx.Textures[id] = &Texture{Params: make(map[uint32]int32)}
	return id
}

func (ctx *Context) ActiveTexture(unit uint32) {
	ctx.record("ActiveTexture", unit)
	ctx.ActiveUnit = unit
}

func (ctx *Context) BindTexture(target uint32, texture uint32) {
	ctx.record("BindTexture", target, texture)
	ctx.BoundTextures[ctx.ActiveUnit] = texture
	if t, ok := ctx.Textures[texture]; ok && t.Target == 0 {
		t.Target = target
	}
}

func (ctx *Context) TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []byte) {
	ctx.record("TexImage2D", target, level, internalFormat, width, height, format, xtype, len(pixels))
	t, ok := ctx.Textures[ctx.BoundTextures[ctx.ActiveUnit]]
	if !ok {
		ctx.PendingErrors = append(ctx.PendingErrors, gpu.INVALID_OPERATION)
		return
	}
	t.InternalFormat = internalFormat
	t.Width = width
	t.Height = height
	t.Format = format
	t.Type = xtype
	t.Pixels = append([]byte{}, pixels...)
}

func (ctx *Context) TexParameteri(target uint32, pname uint32, param int32) {
	ctx.record("TexParameteri", target, pname, param)
	if t, ok := ctx.Textures[ctx.BoundTextures[ctx.ActiveUnit]]; ok {
		t.Params[pname] = param
	}
}

func (ctx *Context) DeleteTexture(texture uint32) {
	ctx.record("DeleteTexture", texture)
	if t, ok := ctx.Textures[texture]; ok {
		t.Deleted = true
	}
}

func (ctx *Context) CreateFramebuffer() uint32 {
	id := ctx.name()
	ctx.record("CreateFramebuffer")
	ctx.Framebuffers[id] = &Framebuffer{Attachments: make(map[uint32]uint32)}
	return id
}

func (ctx *Context) BindFramebuffer(target uint32, fbo uint32) {
	ctx.record("BindFramebuffer", target, fbo)
	ctx.BoundFramebuffer = fbo
}

func (ctx *Context) FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, texture uint32, level int32) {
	ctx.record("FramebufferTexture2D", target, attachment, textarget, texture, level)
	fb, ok := ctx.Framebuffers[ctx.BoundFramebuffer]
	if !ok {
		ctx.PendingErrors = append(ctx.PendingErrors, gpu.INVALID_OPERATION)
		return
	}
	fb.Attachments[attachment] = texture
}

func (ctx *Context) CheckFramebufferStatus(target uint32) uint32 {
	ctx.record("CheckFramebufferStatus", target)
	if ctx.FramebufferStatus != 0 {
		return ctx.FramebufferStatus
	}
	fb, ok := ctx.Framebuffers[ctx.BoundFramebuffer]
	if !ok {
		return gpu.FRAMEBUFFER_UNDEFINED
	}
	if len(fb.Attachments) == 0 {
		return gpu.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	return gpu.FRAMEBUFFER_COMPLETE
}

func (ctx *Context) DeleteFramebuffer(fbo uint32) {
	ctx.record("DeleteFramebuffer", fbo)
	if fb, ok := ctx.Framebuffers[fbo]; ok {
		fb.Deleted = true
	}
}

func (ctx *Context) CreateBuffer() uint32 {
	id := ctx.name()
	ctx.record("CreateBuffer")
	ctx.Buffers[id] = &Buffer{}
	return id
}

func (ctx *Context) BindBuffer(target uint32, buffer uint32) {
	ctx.record("BindBuffer", target, buffer)
	switch target {
	case gpu.ARRAY_BUFFER:
		ctx.BoundArrayBuffer = buffer
	case gpu.ELEMENT_ARRAY_BUFFER:
		ctx.BoundElementBuffer = buffer
	}
}

func (ctx *Context) bound(target uint32) (*Buffer, bool) {
	var id uint32
	switch target {
	case gpu.ARRAY_BUFFER:
		id = ctx.BoundArrayBuffer
	case gpu.ELEMENT_ARRAY_BUFFER:
		id = ctx.BoundElementBuffer
	}
	b, ok := ctx.Buffers[id]
	return b, ok
}

func (ctx *Context) BufferDataFloat32(target uint32, data []float32, usage uint32) {
	ctx.record("BufferDataFloat32", target, len(data), usage)
	b, ok := ctx.bound(target)
	if !ok {
		ctx.PendingErrors = append(ctx.PendingErrors, gpu.INVALID_OPERATION)
		return
	}
	b.Float32 = append([]float32{}, data...)
	b.Usage = usage
}

func (ctx *Context) BufferDataUint16(target uint32, data []uint16, usage uint32) {
	ctx.record("BufferDataUint16", target, len(data), usage)
	b, ok := ctx.bound(target)
	if !ok {
		ctx.PendingErrors = append(ctx.PendingErrors, gpu.INVALID_OPERATION)
		return
	}
	b.Uint16 = append([]uint16{}, data...)
	b.Usage = usage
}

func (ctx *Context) DeleteBuffer(buffer uint32) {
	ctx.record("DeleteBuffer", buffer)
	if b, ok := ctx.Buffers[buffer]; ok {
		b.Deleted = true
	}
}

func (ctx *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	ctx.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (ctx *Context) EnableVertexAttribArray(index uint32) {
	ctx.record("EnableVertexAttribArray", index)
}

func (ctx *Context) DrawArrays(mode uint32, first int32, count int32) {
	ctx.record("DrawArrays", mode, first, count)
}

func (ctx *Context) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	ctx.record("DrawElements", mode, count, xtype, offset)
}

func (ctx *Context) GetError() uint32 {
	ctx.record("GetError")
	if len(ctx.PendingErrors) == 0 {
		return gpu.NO_ERROR
	}
	e := ctx.PendingErrors[0]
	ctx.PendingErrors = ctx.PendingErrors[1:]
	return e
}

// compile time check that Context satisfies the interface.
var _ gpu.Context = (*Context)(nil)
