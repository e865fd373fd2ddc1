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

import "github.com/jetsetilly/embr/gpu"

// Format describes the storage and sampling of a texture. Zero fields take the
// default value for that field.
type Format struct {
	Target         uint32
	InternalFormat int32
	Format         uint32
	Type           uint32
	FilterMin      int32
	FilterMag      int32
	WrapS          int32
	WrapT          int32
}

// Default texture format.
var Default = Format{
	Target:         gpu.TEXTURE_2D,
	InternalFormat: gpu.RGBA,
	Format:         gpu.RGBA,
	Type:           gpu.UNSIGNED_BYTE,
	FilterMin:      gpu.NEAREST,
	FilterMag:      gpu.NEAREST,
	WrapS:          gpu.CLAMP_TO_EDGE,
	WrapT:          gpu.CLAMP_TO_EDGE,
}

// WithDefaults returns a copy of the Format with every zero field replaced by
// the corresponding field in Default.
func (f Format) WithDefaults() Format {
	if f.Target == 0 {
		f.Target = Default.Target
	}
	if f.InternalFormat == 0 {
		f.InternalFormat = Default.InternalFormat
	}
	if f.Format == 0 {
		f.Format = Default.Format
	}
	if f.Type == 0 {
		f.Type = Default.Type
	}
	if f.FilterMin == 0 {
		f.FilterMin = Default.FilterMin
	}
	if f.FilterMag == 0 {
		f.FilterMag = Default.FilterMag
	}
	if f.WrapS == 0 {
		f.WrapS = Default.WrapS
	}
	if f.WrapT == 0 {
		f.WrapT = Default.WrapT
	}
	return f
}

// IsDepth returns true if the format describes a depth texture.
func (f Format) IsDepth() bool {
	return f.WithDefaults().Format == gpu.DEPTH_COMPONENT
}

// Upload allocates storage for the currently bound texture and sets its
// sampling parameters. The texture must already be bound to the target in the
// Format. A nil data slice allocates uninitialised storage.
//
// Format should have had WithDefaults() applied.
func (f Format) Upload(ctx gpu.Context, width int32, height int32, data []byte) {
	ctx.TexImage2D(f.Target, 0, f.InternalFormat, width, height, f.Format, f.Type, data)
	ctx.TexParameteri(f.Target, gpu.TEXTURE_MIN_FILTER, f.FilterMin)
	ctx.TexParameteri(f.Target, gpu.TEXTURE_MAG_FILTER, f.FilterMag)
	ctx.TexParameteri(f.Target, gpu.TEXTURE_WRAP_S, f.WrapS)
	ctx.TexParameteri(f.Target, gpu.TEXTURE_WRAP_T, f.WrapT)
}
