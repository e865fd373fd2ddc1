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

// Package assets holds the shader files used by the embr program. The files
// are registered with a shader.Registry in the order given by Shaders so
// that included files are registered before the files that include them.
package assets

import "embed"

//go:embed shaders/*.glsl
var files embed.FS

// Shaders lists the shader files in registration order.
var Shaders = []string{
	"common.glsl",
	"feedback.glsl",
	"post.glsl",
}

// FS returns the shader files. The file names in Shaders are relative to the
// root of the returned file system.
func FS() embed.FS {
	return files
}
