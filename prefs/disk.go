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

package prefs

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/jetsetilly/embr/curated"
	"github.com/jetsetilly/embr/logger"
)

// Patterns for errors raised by the Disk type.
const (
	DiskError    = "prefs: disk: %v"
	InvalidKey   = "prefs: invalid key: %s"
	DuplicateKey = "prefs: duplicate key: %s"
)

// WarningBoilerPlate is written at the top of every preferences file.
const WarningBoilerPlate = "# embr preferences file. do not edit while embr is running"

// Disk associates preference values with keys and loads and saves them from
// a file.
type Disk struct {
	crit sync.Mutex

	path    string
	entries map[string]pref

	// values in the file that have no entry. they are written back to the
	// file unchanged by Save()
	unknown map[string]interface{}
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file is not read until Load() is called.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "no path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
		unknown: make(map[string]interface{}),
	}, nil
}

// Path returns the path of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add a preference value to the disk with the specified key. A key is a list
// of identifiers separated by periods. A key cannot be the prefix of another
// key in the same Disk, for example, "window" and "window.width".
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, s := range strings.Split(key, ".") {
		if s == "" || strings.ContainsAny(s, " \t:;=\"'") {
			return curated.Errorf(InvalidKey, key)
		}
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	for k := range dsk.entries {
		if strings.HasPrefix(k, key+".") || strings.HasPrefix(key, k+".") {
			return curated.Errorf(InvalidKey, key)
		}
	}

	dsk.entries[key] = p

	return nil
}

// Reset all values in the Disk to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// Load values from the preferences file. A missing file is not an error.
// Values in the file with no matching entry are kept and written back by
// Save().
//
// After loading from the file, the current command line group is checked for
// every key in the Disk. A value on the command line takes precedence over
// the value in the file.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	data, err := os.ReadFile(dsk.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return curated.Errorf(DiskError, err)
	}

	tree := make(map[string]interface{})
	if err := toml.Unmarshal(data, &tree); err != nil {
		return curated.Errorf(DiskError, err)
	}

	flat := make(map[string]interface{})
	flatten(flat, "", tree)

	dsk.unknown = make(map[string]interface{})
	for k, v := range flat {
		p, ok := dsk.entries[k]
		if !ok {
			dsk.unknown[k] = v
			continue
		}
		if err := p.Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
			logger.Logf("prefs", "%s set from command line", k)
		}
	}

	return nil
}

// Save values to the preferences file.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	tree := make(map[string]interface{})
	for k, v := range dsk.unknown {
		insert(tree, k, v)
	}
	for k, p := range dsk.entries {
		insert(tree, k, p.Get())
	}

	data, err := toml.Marshal(tree)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	var b bytes.Buffer
	b.WriteString(WarningBoilerPlate)
	b.WriteString("\n")
	b.Write(data)

	if err := os.WriteFile(dsk.path, b.Bytes(), 0o644); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Keys returns the keys in the Disk in sorted order.
func (dsk *Disk) Keys() []string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// flatten nested tables into dotted keys
func flatten(flat map[string]interface{}, prefix string, tree map[string]interface{}) {
	for k, v := range tree {
		if prefix != "" {
			k = prefix + "." + k
		}
		if sub, ok := v.(map[string]interface{}); ok {
			flatten(flat, k, sub)
		} else {
			flat[k] = v
		}
	}
}

// insert a value into nested tables using a dotted key
func insert(tree map[string]interface{}, key string, v interface{}) {
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		sub, ok := tree[p].(map[string]interface{})
		if !ok {
			sub = make(map[string]interface{})
			tree[p] = sub
		}
		tree = sub
	}
	tree[parts[len(parts)-1]] = v
}
