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
	"github.com/jetsetilly/embr/curated"
	"github.com/jetsetilly/embr/gpu"
	"github.com/jetsetilly/embr/logger"
	"github.com/jetsetilly/embr/texture"
)

// FramebufferIncomplete is returned by New() when the driver reports that the
// framebuffer is not complete. The value is the name of the status.
const FramebufferIncomplete = "framebuffer: incomplete: %s"

type attachment struct {
	tex *texture.Texture

	// the texture unit (TEXTURE0 based) most recently used by BindTexture()
	unit uint32
}

// Fbo is a framebuffer object and its texture attachments.
type Fbo struct {
	ctx    gpu.Context
	id     uint32
	width  int32
	height int32

	attachments []attachment
}

// New creates a framebuffer of the specified dimensions with one texture
// attachment for every format. Completeness of the framebuffer is checked
// once. If the framebuffer is not complete then every object created is
// deleted and a FramebufferIncomplete error returned.
//
// The default framebuffer is bound on return.
func New(ctx gpu.Context, width int32, height int32, formats []texture.Format) (*Fbo, error) {
	fbo := &Fbo{
		ctx:    ctx,
		id:     ctx.CreateFramebuffer(),
		width:  width,
		height: height,
	}

	ctx.BindFramebuffer(gpu.FRAMEBUFFER, fbo.id)

	for i, f := range formats {
		f = f.WithDefaults()
		tex := texture.New(ctx, width, height, nil, f)

		var point uint32
		if f.IsDepth() {
			point = gpu.DEPTH_ATTACHMENT
		} else {
			point = gpu.COLOR_ATTACHMENT0 + uint32(i)
		}
		ctx.FramebufferTexture2D(gpu.FRAMEBUFFER, point, f.Target, tex.ID(), 0)

		fbo.attachments = append(fbo.attachments, attachment{
			tex:  tex,
			unit: gpu.TEXTURE0,
		})
	}

	status := ctx.CheckFramebufferStatus(gpu.FRAMEBUFFER)
	ctx.BindFramebuffer(gpu.FRAMEBUFFER, 0)

	if status != gpu.FRAMEBUFFER_COMPLETE {
		fbo.Destroy()
		return nil, curated.Errorf(FramebufferIncomplete, gpu.EnumName(status))
	}

	logger.Logf("framebuffer", "fbo %d: %dx%d with %d attachments", fbo.id, width, height, len(fbo.attachments))

	return fbo, nil
}

// ID returns the framebuffer object name.
func (fbo *Fbo) ID() uint32 {
	return fbo.id
}

// Dimensions returns the width and height of the framebuffer.
func (fbo *Fbo) Dimensions() (width int32, height int32) {
	return fbo.width, fbo.height
}

// Len returns the number of attachments.
func (fbo *Fbo) Len() int {
	return len(fbo.attachments)
}

// Attachment returns the texture for attachment i. Returns nil if there is no
// such attachment.
func (fbo *Fbo) Attachment(i int) *texture.Texture {
	if i < 0 || i >= len(fbo.attachments) {
		return nil
	}
	return fbo.attachments[i].tex
}

// Bind the framebuffer for rendering.
func (fbo *Fbo) Bind() {
	fbo.ctx.BindFramebuffer(gpu.FRAMEBUFFER, fbo.id)
}

// Unbind the framebuffer. The default framebuffer will be bound.
func (fbo *Fbo) Unbind() {
	fbo.ctx.BindFramebuffer(gpu.FRAMEBUFFER, 0)
}

// BindTexture binds the texture of attachment i to the texture unit. The unit
// is remembered for UnbindTexture().
func (fbo *Fbo) BindTexture(i int, unit uint32) {
	att := &fbo.attachments[i]
	att.unit = gpu.TEXTURE0 + unit
	fbo.ctx.ActiveTexture(att.unit)
	fbo.ctx.BindTexture(att.tex.Target(), att.tex.ID())
}

// UnbindTexture unbinds the texture of attachment i from the texture unit most
// recently given to BindTexture(). If BindTexture() has never been called for
// the attachment then texture unit zero is used.
func (fbo *Fbo) UnbindTexture(i int) {
	att := &fbo.attachments[i]
	fbo.ctx.ActiveTexture(att.unit)
	fbo.ctx.BindTexture(att.tex.Target(), 0)
}

// Destroy the framebuffer and all attachments.
func (fbo *Fbo) Destroy() {
	for _, att := range fbo.attachments {
		att.tex.Destroy()
	}
	fbo.attachments = nil
	if fbo.id != 0 {
		fbo.ctx.DeleteFramebuffer(fbo.id)
		fbo.id = 0
	}
}
