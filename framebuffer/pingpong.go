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

package framebuffer

import (
	"github.com/jetsetilly/embr/gpu"
	"github.com/jetsetilly/embr/texture"
)

// PingPong is a pair of identical framebuffers. One is written to and the
// other is read from.
type PingPong struct {
	write *Fbo
	read  *Fbo
}

// NewPingPong creates two framebuffers with the same dimensions and formats.
// The framebuffers are swapped once before returning.
func NewPingPong(ctx gpu.Context, width int32, height int32, formats []texture.Format) (*PingPong, error) {
	w, err := New(ctx, width, height, formats)
	if err != nil {
		return nil, err
	}

	r, err := New(ctx, width, height, formats)
	if err != nil {
		w.Destroy()
		return nil, err
	}

	pp := &PingPong{
		write: w,
		read:  r,
	}
	pp.Swap()

	return pp, nil
}

// Swap the write and read framebuffers.
func (pp *PingPong) Swap() {
	pp.write, pp.read = pp.read, pp.write
}

// Write returns the framebuffer currently being written to.
func (pp *PingPong) Write() *Fbo {
	return pp.write
}

// Read returns the framebuffer currently being read from.
func (pp *PingPong) Read() *Fbo {
	return pp.read
}

// Bind the write framebuffer.
func (pp *PingPong) Bind() {
	pp.write.Bind()
}

// Unbind the write framebuffer.
func (pp *PingPong) Unbind() {
	pp.write.Unbind()
}

// BindTexture binds attachment i of the read framebuffer to the texture unit.
func (pp *PingPong) BindTexture(i int, unit uint32) {
	pp.read.BindTexture(i, unit)
}

// UnbindTexture unbinds attachment i of the read framebuffer.
func (pp *PingPong) UnbindTexture(i int) {
	pp.read.UnbindTexture(i)
}

// Process binds the write framebuffer, calls the draw function and then swaps
// the framebuffers. The result of the draw function is the texture returned
// by Texture(0), which is nil if the framebuffers have no attachments.
func (pp *PingPong) Process(draw func()) *texture.Texture {
	pp.Bind()
	draw()
	pp.Unbind()
	pp.Swap()
	return pp.Texture(0)
}

// Texture returns the texture of attachment i of the read framebuffer.
// Returns nil if there is no such attachment.
func (pp *PingPong) Texture(i int) *texture.Texture {
	return pp.read.Attachment(i)
}

// Destroy both framebuffers.
func (pp *PingPong) Destroy() {
	pp.write.Destroy()
	pp.read.Destroy()
}
