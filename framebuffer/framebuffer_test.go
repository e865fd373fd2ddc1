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

package framebuffer_test

import (
	"testing"

	"github.com/jetsetilly/embr/curated"
	"github.com/jetsetilly/embr/framebuffer"
	"github.com/jetsetilly/embr/gpu"
	"github.com/jetsetilly/embr/gpu/gputest"
	"github.com/jetsetilly/embr/texture"
	"github.com/jetsetilly/embr/test"
)

func TestAttachments(t *testing.T) {
	ctx := gputest.New()

	fbo, err := framebuffer.New(ctx, 64, 32, []texture.Format{
		{},
		{InternalFormat: gpu.RGBA32F, Type: gpu.FLOAT},
		{InternalFormat: gpu.DEPTH_COMPONENT24, Format: gpu.DEPTH_COMPONENT, Type: gpu.UNSIGNED_SHORT},
	})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, fbo.Len(), 3)

	w, h := fbo.Dimensions()
	test.ExpectEquality(t, w, 64)
	test.ExpectEquality(t, h, 32)

	gf := ctx.Framebuffers[fbo.ID()]
	test.DemandEquality(t, len(gf.Attachments), 3)
	test.ExpectEquality(t, gf.Attachments[gpu.COLOR_ATTACHMENT0], fbo.Attachment(0).ID())
	test.ExpectEquality(t, gf.Attachments[gpu.COLOR_ATTACHMENT0+1], fbo.Attachment(1).ID())
	test.ExpectEquality(t, gf.Attachments[gpu.DEPTH_ATTACHMENT], fbo.Attachment(2).ID())

	// textures have the dimensions of the framebuffer and no pixel data
	for i := 0; i < fbo.Len(); i++ {
		gt := ctx.Textures[fbo.Attachment(i).ID()]
		test.ExpectEquality(t, gt.Width, 64)
		test.ExpectEquality(t, gt.Height, 32)
		test.ExpectEquality(t, len(gt.Pixels), 0)
	}
	test.ExpectEquality(t, ctx.Textures[fbo.Attachment(1).ID()].InternalFormat, int32(gpu.RGBA32F))

	// default framebuffer bound after creation
	test.ExpectEquality(t, ctx.BoundFramebuffer, 0)
	test.ExpectEquality(t, len(ctx.Calls("CheckFramebufferStatus")), 1)
}

func TestBindTexture(t *testing.T) {
	ctx := gputest.New()

	fbo, err := framebuffer.New(ctx, 8, 8, []texture.Format{{}, {}})
	test.DemandSuccess(t, err)

	fbo.Bind()
	test.ExpectEquality(t, ctx.BoundFramebuffer, fbo.ID())
	fbo.Unbind()
	test.ExpectEquality(t, ctx.BoundFramebuffer, 0)

	fbo.BindTexture(1, 2)
	test.ExpectEquality(t, ctx.BoundTextures[gpu.TEXTURE0+2], fbo.Attachment(1).ID())

	// unbind uses the unit most recently given to BindTexture()
	ctx.ActiveTexture(gpu.TEXTURE0)
	fbo.UnbindTexture(1)
	test.ExpectEquality(t, ctx.ActiveUnit, uint32(gpu.TEXTURE0+2))
	test.ExpectEquality(t, ctx.BoundTextures[gpu.TEXTURE0+2], 0)

	// attachment without a previous BindTexture() uses unit zero
	fbo.UnbindTexture(0)
	test.ExpectEquality(t, ctx.ActiveUnit, uint32(gpu.TEXTURE0))
}

func TestIncomplete(t *testing.T) {
	ctx := gputest.New()
	ctx.FramebufferStatus = gpu.FRAMEBUFFER_UNSUPPORTED

	fbo, err := framebuffer.New(ctx, 8, 8, []texture.Format{{}})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, fbo == nil)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.FramebufferIncomplete))
	test.ExpectEquality(t, err.Error(), "framebuffer: incomplete: FRAMEBUFFER_UNSUPPORTED")

	// created objects are deleted
	for _, gf := range ctx.Framebuffers {
		test.ExpectSuccess(t, gf.Deleted)
	}
	for _, gt := range ctx.Textures {
		test.ExpectSuccess(t, gt.Deleted)
	}
	test.ExpectEquality(t, ctx.BoundFramebuffer, 0)
}

func TestNoFormats(t *testing.T) {
	// a driver that rejects a framebuffer without attachments
	ctx := gputest.New()
	_, err := framebuffer.New(ctx, 8, 8, nil)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.FramebufferIncomplete))
	test.ExpectEquality(t, err.Error(), "framebuffer: incomplete: FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT")
	test.ExpectEquality(t, len(ctx.Calls("CheckFramebufferStatus")), 1)

	// a driver that accepts it
	ctx = gputest.New()
	ctx.FramebufferStatus = gpu.FRAMEBUFFER_COMPLETE
	fbo, err := framebuffer.New(ctx, 8, 8, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fbo.Len(), 0)
	test.ExpectEquality(t, len(ctx.Calls("FramebufferTexture2D")), 0)
}

func TestPingPongNoFormats(t *testing.T) {
	ctx := gputest.New()
	ctx.FramebufferStatus = gpu.FRAMEBUFFER_COMPLETE
	pp, err := framebuffer.NewPingPong(ctx, 4, 4, nil)
	test.DemandSuccess(t, err)

	var drawn bool
	tex := pp.Process(func() { drawn = true })
	test.ExpectSuccess(t, drawn)
	test.ExpectSuccess(t, tex == nil)
	test.ExpectSuccess(t, pp.Texture(0) == nil)
	test.ExpectSuccess(t, pp.Texture(-1) == nil)
	test.ExpectEquality(t, ctx.BoundFramebuffer, 0)
}

func TestDestroy(t *testing.T) {
	ctx := gputest.New()

	fbo, err := framebuffer.New(ctx, 8, 8, []texture.Format{{}})
	test.DemandSuccess(t, err)

	id := fbo.ID()
	tex := fbo.Attachment(0).ID()
	fbo.Destroy()
	test.ExpectSuccess(t, ctx.Framebuffers[id].Deleted)
	test.ExpectSuccess(t, ctx.Textures[tex].Deleted)
	test.ExpectEquality(t, fbo.Len(), 0)

	fbo.Destroy()
	test.ExpectEquality(t, len(ctx.Calls("DeleteFramebuffer")), 1)
}

func TestPingPong(t *testing.T) {
	ctx := gputest.New()

	pp, err := framebuffer.NewPingPong(ctx, 16, 16, []texture.Format{{}})
	test.DemandSuccess(t, err)

	// two framebuffers, created in order, and swapped once during
	// construction. the first framebuffer created is the read buffer
	fbos := ctx.Calls("CreateFramebuffer")
	test.DemandEquality(t, len(fbos), 2)
	first := pp.Read().ID()
	second := pp.Write().ID()
	test.ExpectInequality(t, first, second)
	test.ExpectSuccess(t, first < second)

	pp.Bind()
	test.ExpectEquality(t, ctx.BoundFramebuffer, second)
	pp.Unbind()
	test.ExpectEquality(t, ctx.BoundFramebuffer, 0)

	pp.BindTexture(0, 1)
	test.ExpectEquality(t, ctx.BoundTextures[gpu.TEXTURE0+1], pp.Read().Attachment(0).ID())
	pp.UnbindTexture(0)
	test.ExpectEquality(t, ctx.BoundTextures[gpu.TEXTURE0+1], 0)

	pp.Swap()
	test.ExpectEquality(t, pp.Read().ID(), second)
	test.ExpectEquality(t, pp.Write().ID(), first)

	pp.Bind()
	test.ExpectEquality(t, ctx.BoundFramebuffer, first)

	pp.Swap()
	test.ExpectEquality(t, pp.Read().ID(), first)
}

func TestPingPongProcess(t *testing.T) {
	ctx := gputest.New()

	pp, err := framebuffer.NewPingPong(ctx, 16, 16, []texture.Format{{}})
	test.DemandSuccess(t, err)

	w := pp.Write()
	var bound uint32
	tex := pp.Process(func() {
		bound = ctx.BoundFramebuffer
	})

	test.ExpectEquality(t, bound, w.ID())
	test.ExpectEquality(t, ctx.BoundFramebuffer, 0)

	// the result of the draw is now readable
	test.ExpectEquality(t, pp.Read(), w)
	test.ExpectEquality(t, tex, w.Attachment(0))
	test.ExpectEquality(t, pp.Texture(0), tex)
}

func TestPingPongIncomplete(t *testing.T) {
	ctx := gputest.New()
	ctx.FramebufferStatus = gpu.FRAMEBUFFER_INCOMPLETE_ATTACHMENT

	pp, err := framebuffer.NewPingPong(ctx, 16, 16, []texture.Format{{}})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, pp == nil)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.FramebufferIncomplete))
}

func TestPingPongDestroy(t *testing.T) {
	ctx := gputest.New()

	pp, err := framebuffer.NewPingPong(ctx, 16, 16, []texture.Format{{}})
	test.DemandSuccess(t, err)
	pp.Destroy()

	for _, gf := range ctx.Framebuffers {
		test.ExpectSuccess(t, gf.Deleted)
	}
	for _, gt := range ctx.Textures {
		test.ExpectSuccess(t, gt.Deleted)
	}
}
