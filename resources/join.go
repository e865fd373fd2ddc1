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

package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// the name of the base directory in the current working directory
const localPath = ".embr"

// JoinPath prepends the supplied path with the base path.
//
// All directories leading to the end of the path are created if necessary.
func JoinPath(path ...string) (string, error) {
	var b string

	if fi, err := os.Stat(localPath); err == nil && fi.IsDir() {
		b = localPath
	} else {
		b, err = basePath()
		if err != nil {
			return "", err
		}
	}

	p := filepath.Join(path...)

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", err
	}

	return p, nil
}

// UniqueFilename creates a filename that should not collide with any existing
// file, assuming a functioning clock. The existence of the file is not
// checked.
//
// Format of the returned string is:
//
//	prepend_name_YYYYMMDD_HHMMSS
//
// If name is empty the format is:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, name string) string {
	return uniqueFilename(prepend, name, time.Now())
}

func uniqueFilename(prepend string, name string, n time.Time) string {
	timestamp := n.Format("20060102_150405")

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Sprintf("%s_%s", prepend, timestamp)
	}

	// spaces and path separators in the name are replaced with underscores
	name = strings.Map(func(r rune) rune {
		if r == ' ' || r == '/' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, name)

	return fmt.Sprintf("%s_%s_%s", prepend, name, timestamp)
}
