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

package shader

import (
	"io/fs"
	"regexp"
	"sort"
	"strings"

	"github.com/jetsetilly/embr/curated"
	"github.com/jetsetilly/embr/logger"
)

// LoadError is the pattern used when a shader file cannot be read.
const LoadError = "shader: %v"

// an include directive must begin a line. leading spaces are allowed. the
// identifier is restricted to word, hyphen and dot characters
var includeDirective = regexp.MustCompile(`(?m)^ *#include +"([\w\-\.]+)"`)

// Registry maps shader identifiers to resolved source text. Entries are
// never removed. Registering an identifier a second time replaces the
// previous entry.
//
// The Registry is not safe for concurrent use.
type Registry struct {
	sources map[string]string
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]string),
	}
}

// Register resolves the #include directives in the raw source and stores the
// result under id. The resolved source is returned.
func (reg *Registry) Register(id string, raw string) string {
	src := reg.resolve(id, raw)
	reg.sources[id] = src
	return src
}

// Lookup returns the resolved source stored under id.
func (reg *Registry) Lookup(id string) (string, bool) {
	src, ok := reg.sources[id]
	return src, ok
}

// IDs returns the identifiers of every registered source in sorted order.
func (reg *Registry) IDs() []string {
	ids := make([]string, 0, len(reg.sources))
	for id := range reg.sources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadFile reads the file at path from fsys and registers it using the path
// as the identifier.
func (reg *Registry) LoadFile(fsys fs.FS, path string) (string, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", curated.Errorf(LoadError, err)
	}
	return reg.Register(path, string(b)), nil
}

// resolve replaces every include directive in src with the registered source
// for that identifier. the id argument is only used for logging.
func (reg *Registry) resolve(id string, src string) string {
	pos := 0
	for {
		loc := findDirective(src, pos)
		if loc == nil {
			break
		}

		incl := src[loc[2]:loc[3]]
		body, ok := reg.sources[incl]
		if !ok {
			logger.Logf("shader", "%s: unresolved #include %q", id, incl)
			pos = loc[1]
			continue
		}

		src = src[:loc[0]] + body + src[loc[1]:]

		// scanning continues after the inserted text
		pos = loc[0] + len(body)
	}

	return src
}

// findDirective returns the submatch indexes of the first include directive
// in src that begins at or after pos. the indexes are relative to the start
// of src.
//
// the anchor in the regular expression matches at the start of any string
// passed to it. when searching from the middle of a line a match at the very
// start of the substring is not at the start of a line and must be skipped.
func findDirective(src string, pos int) []int {
	for pos <= len(src) {
		loc := includeDirective.FindStringSubmatchIndex(src[pos:])
		if loc == nil {
			return nil
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += pos
			}
		}

		if loc[0] == 0 || src[loc[0]-1] == '\n' {
			return loc
		}

		nl := strings.IndexByte(src[loc[0]:], '\n')
		if nl < 0 {
			return nil
		}
		pos = loc[0] + nl + 1
	}

	return nil
}
