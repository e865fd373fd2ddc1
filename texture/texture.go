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

package texture

import (
	"image"
	"io"

	// image formats understood by Decode()
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"

	"github.com/jetsetilly/embr/curated"
	"github.com/jetsetilly/embr/gpu"
	"github.com/jetsetilly/embr/logger"
)

// DecodeError is returned by Decode() when the image data cannot be decoded.
const DecodeError = "texture: decode: %v"

// Texture is a texture object and the dimensions it was created with.
type Texture struct {
	ctx    gpu.Context
	id     uint32
	target uint32
	width  int32
	height int32
}

// New creates a texture of the specified dimensions. The data slice is
// uploaded as is and must match the size implied by the format. A nil data
// slice allocates storage without initialising it.
func New(ctx gpu.Context, width int32, height int32, data []byte, f Format) *Texture {
	f = f.WithDefaults()

	tex := &Texture{
		ctx:    ctx,
		id:     ctx.CreateTexture(),
		target: f.Target,
		width:  width,
		height: height,
	}

	ctx.BindTexture(f.Target, tex.id)
	f.Upload(ctx, width, height, data)

	return tex
}

// FromImage creates a texture from an image. The image is converted to
// non-premultiplied 8bit RGBA before being uploaded so the storage fields of
// the Format (InternalFormat, Format and Type) are ignored.
func FromImage(ctx gpu.Context, img image.Image, f Format) *Texture {
	b := img.Bounds()
	return FromImageScaled(ctx, img, int32(b.Dx()), int32(b.Dy()), f)
}

// FromImageScaled is like FromImage except that the image is scaled to the
// specified dimensions.
func FromImageScaled(ctx gpu.Context, img image.Image, width int32, height int32, f Format) *Texture {
	f.InternalFormat = gpu.RGBA
	f.Format = gpu.RGBA
	f.Type = gpu.UNSIGNED_BYTE

	rgba := image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	if img.Bounds().Size() == rgba.Bounds().Size() {
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	} else {
		draw.BiLinear.Scale(rgba, rgba.Bounds(), img, img.Bounds(), draw.Src, nil)
	}

	return New(ctx, width, height, rgba.Pix, f)
}

// Decode an image and create a texture from it.
func Decode(ctx gpu.Context, r io.Reader, f Format) (*Texture, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, curated.Errorf(DecodeError, err)
	}
	b := img.Bounds()
	logger.Logf("texture", "decoded %s image (%dx%d)", format, b.Dx(), b.Dy())
	return FromImage(ctx, img, f), nil
}

// ID returns the texture object name.
func (tex *Texture) ID() uint32 {
	return tex.id
}

// Target returns the target the texture is bound to.
func (tex *Texture) Target() uint32 {
	return tex.target
}

// Width of the texture in texels.
func (tex *Texture) Width() int32 {
	return tex.width
}

// Height of the texture in texels.
func (tex *Texture) Height() int32 {
	return tex.height
}

// Bind the texture to the specified texture unit. The unit is an index and not
// a TEXTURE0 based enumeration.
func (tex *Texture) Bind(unit uint32) {
	tex.ctx.ActiveTexture(gpu.TEXTURE0 + unit)
	tex.ctx.BindTexture(tex.target, tex.id)
}

// Unbind whatever texture is bound to the target of this texture on the
// specified texture unit.
func (tex *Texture) Unbind(unit uint32) {
	tex.ctx.ActiveTexture(gpu.TEXTURE0 + unit)
	tex.ctx.BindTexture(tex.target, 0)
}

// Destroy the texture object. The Texture should not be used again.
func (tex *Texture) Destroy() {
	if tex.id != 0 {
		tex.ctx.DeleteTexture(tex.id)
		tex.id = 0
	}
}
