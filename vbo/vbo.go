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

// Package vbo uploads vertex attributes, and optionally indices, to buffer
// objects and draws them.
package vbo

import (
	"math"

	"github.com/jetsetilly/embr/gpu"
)

// Attribute is the data for a single vertex attribute. Size is the number of
// components per vertex. Location is the attribute location in the program
// the data will be drawn with. A negative location means the attribute is not
// active in the program. The data is uploaded but the attribute is not
// enabled when drawing.
type Attribute struct {
	Data     []float32
	Size     int32
	Location int32
}

type buffer struct {
	id       uint32
	size     int32
	location int32
}

// Vbo is a set of vertex attribute buffers and an optional index buffer.
type Vbo struct {
	ctx  gpu.Context
	mode uint32

	attributes []buffer

	// index buffer. zero if the Vbo was created without indices
	indices uint32

	count int32
}

// New uploads the attributes and indices to new buffer objects. The mode is
// the primitive type used by Draw() and usage is the usage hint for the
// buffers.
//
// If indices is nil then the number of vertices drawn is the smallest number
// of whole vertices in any attribute. Otherwise, the number of indices is
// used.
func New(ctx gpu.Context, mode uint32, usage uint32, attrs []Attribute, indices []uint16) *Vbo {
	vbo := &Vbo{
		ctx:  ctx,
		mode: mode,
	}

	count := math.MaxInt32
	for _, a := range attrs {
		if a.Size > 0 {
			count = min(count, len(a.Data)/int(a.Size))
		}

		b := buffer{
			id:       ctx.CreateBuffer(),
			size:     a.Size,
			location: a.Location,
		}
		ctx.BindBuffer(gpu.ARRAY_BUFFER, b.id)
		ctx.BufferDataFloat32(gpu.ARRAY_BUFFER, a.Data, usage)
		vbo.attributes = append(vbo.attributes, b)
	}
	ctx.BindBuffer(gpu.ARRAY_BUFFER, 0)

	if indices != nil {
		vbo.indices = ctx.CreateBuffer()
		ctx.BindBuffer(gpu.ELEMENT_ARRAY_BUFFER, vbo.indices)
		ctx.BufferDataUint16(gpu.ELEMENT_ARRAY_BUFFER, indices, usage)
		ctx.BindBuffer(gpu.ELEMENT_ARRAY_BUFFER, 0)
		count = len(indices)
	}

	if count == math.MaxInt32 {
		count = 0
	}
	vbo.count = int32(count)

	return vbo
}

// Count returns the number of vertices, or indices, drawn by Draw().
func (vbo *Vbo) Count() int32 {
	return vbo.count
}

// Indexed returns true if the Vbo was created with indices.
func (vbo *Vbo) Indexed() bool {
	return vbo.indices != 0
}

// Draw the Vbo with the program that is currently in use.
func (vbo *Vbo) Draw() {
	for _, b := range vbo.attributes {
		if b.location < 0 {
			continue
		}
		vbo.ctx.BindBuffer(gpu.ARRAY_BUFFER, b.id)
		vbo.ctx.VertexAttribPointer(uint32(b.location), b.size, gpu.FLOAT, false, 0, 0)
		vbo.ctx.EnableVertexAttribArray(uint32(b.location))
	}

	if vbo.indices != 0 {
		vbo.ctx.BindBuffer(gpu.ELEMENT_ARRAY_BUFFER, vbo.indices)
		vbo.ctx.DrawElements(vbo.mode, vbo.count, gpu.UNSIGNED_SHORT, 0)
	} else {
		vbo.ctx.DrawArrays(vbo.mode, 0, vbo.count)
	}
}

// Destroy every buffer object created by New(). The Vbo should not be drawn
// again.
func (vbo *Vbo) Destroy() {
	for _, b := range vbo.attributes {
		vbo.ctx.DeleteBuffer(b.id)
	}
	vbo.attributes = nil
	if vbo.indices != 0 {
		vbo.ctx.DeleteBuffer(vbo.indices)
		vbo.indices = 0
	}
}
