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

// Package framebuffer creates framebuffer objects with texture attachments.
//
// An Fbo has one texture attachment for every Format it is created with.
// Colour formats are attached to successive colour attachment points and a
// DEPTH_COMPONENT format is attached to the depth attachment point.
//
// PingPong pairs two identical Fbos for effects that read the result of the
// previous pass while writing the next one. Rendering is to the write buffer
// and sampling is from the read buffer. Swap() exchanges the two.
//
//	pp, err := framebuffer.NewPingPong(ctx, 512, 512, []texture.Format{{}})
//	...
//	pp.Process(func() {
//		pp.BindTexture(0, 0)
//		quad.Draw()
//	})
package framebuffer
