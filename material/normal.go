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

package material

import "github.com/jetsetilly/embr/gpu"

// shows the view space normal of a surface as a colour
const normalVertex = `#version 150

uniform mat4 modelview;
uniform mat4 projection;

in vec3 a_position;
in vec3 a_normal;

out vec4 v_color;

void main() {
	vec4 normal = modelview * vec4(a_normal, 0.0);
	v_color = vec4((normal.xyz + 1.0) * 0.5, 1.0);
	gl_Position = projection * modelview * vec4(a_position, 1.0);
}
`

const normalFragment = `#version 150

in vec4 v_color;

out vec4 fragColor;

void main() {
	fragColor = v_color;
}
`

var normalOptions = Options{
	Attributes: map[string]string{
		"position": "a_position",
		"normal":   "a_normal",
	},
	Uniforms: map[string]string{
		"modelview":  "modelview",
		"projection": "projection",
	},
}

// NewNormal creates a material that colours a surface by its normal. The
// program expects the "modelview" and "projection" uniforms and the
// "position" and "normal" attributes. The options are merged with the
// default options.
func NewNormal(ctx gpu.Context, opts Options) (*Material, error) {
	return New(ctx, normalVertex, normalFragment, MergeOptions(normalOptions, opts))
}
