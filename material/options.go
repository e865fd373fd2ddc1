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

import (
	"maps"

	"github.com/jinzhu/copier"

	"github.com/jetsetilly/embr/logger"
)

// deepCopy is replaced in tests
var deepCopy = func(to interface{}, from interface{}) error {
	return copier.CopyWithOption(to, from, copier.Option{DeepCopy: true})
}

// Options maps semantic names to the names used in a shader. Attributes maps
// names such as "position", "normal" and "texcoord" to attribute names.
// Uniforms maps names such as "modelview" and "projection" to uniform names.
type Options struct {
	Attributes map[string]string
	Uniforms   map[string]string
}

// MergeOptions returns a deep copy of defaults with the entries of options
// added. Entries in options replace entries in defaults with the same key.
// Empty names in options are ignored. Neither argument is changed.
func MergeOptions(defaults Options, options Options) Options {
	var merged Options
	if err := deepCopy(&merged, &defaults); err != nil {
		// the maps are the only fields so a shallow copy of each is enough
		logger.Logf("material", "merging options: %v", err)
		merged = Options{
			Attributes: maps.Clone(defaults.Attributes),
			Uniforms:   maps.Clone(defaults.Uniforms),
		}
	}

	if merged.Attributes == nil {
		merged.Attributes = make(map[string]string)
	}
	if merged.Uniforms == nil {
		merged.Uniforms = make(map[string]string)
	}

	overlay(merged.Attributes, options.Attributes)
	overlay(merged.Uniforms, options.Uniforms)

	return merged
}

func overlay(dst map[string]string, src map[string]string) {
	for k, v := range src {
		if v != "" {
			dst[k] = v
		}
	}
}
