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

// Package texture creates and binds 2D textures. A Texture is created from raw
// pixel data with New(), from an image.Image with FromImage(), or from an
// encoded image file with Decode().
//
// The Format type describes how a texture is stored and sampled. Any field
// left as zero takes its default value, which is an RGBA texture of unsigned
// bytes, sampled with NEAREST filtering and clamped to the edge in both
// directions.
//
// In addition to the formats understood by the standard library (PNG, JPEG and
// GIF), Decode() understands BMP, TIFF and WebP images.
package texture
