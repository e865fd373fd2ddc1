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

// Package watch reloads shader files into a shader.Registry when they change
// on disk.
//
// File system events are received on a background goroutine but the
// registry is only ever changed by Service(), which should be called from
// the same goroutine as every other use of the registry. Typically this is
// once per frame from the render loop.
package watch

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/jetsetilly/embr/curated"
	"github.com/jetsetilly/embr/logger"
	"github.com/jetsetilly/embr/shader"
)

// WatchError is returned when a file cannot be watched.
const WatchError = "watch: %v"

// Watcher re-registers shader files that have changed.
type Watcher struct {
	reg  *shader.Registry
	fsys fs.FS
	root string

	watcher *fsnotify.Watcher
	done    chan bool
	wg      sync.WaitGroup

	closeOnce sync.Once
	closeErr  error

	// crit protects the fields below it. they are accessed by the event
	// goroutine and by the caller
	crit sync.Mutex

	// watched files. keyed by the cleaned operating system path with the
	// value being the path in fsys
	files map[string]string

	// paths in fsys in the order they were added. changed files are reloaded
	// in this order so that a file is registered after the files it includes
	order []string

	// directories already added to the fsnotify watcher
	dirs map[string]bool

	// paths in fsys that have changed since the last call to Service()
	pending map[string]bool
}

// New creates a Watcher for files in fsys. The root argument is the operating
// system directory that fsys is rooted at, for example the directory given
// to os.DirFS().
func New(reg *shader.Registry, fsys fs.FS, root string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(WatchError, err)
	}

	wtc := &Watcher{
		reg:     reg,
		fsys:    fsys,
		root:    root,
		watcher: w,
		done:    make(chan bool),
		files:   make(map[string]string),
		dirs:    make(map[string]bool),
		pending: make(map[string]bool),
	}

	wtc.wg.Add(1)
	go wtc.run()

	return wtc, nil
}

func (wtc *Watcher) run() {
	defer wtc.wg.Done()
	for {
		select {
		case <-wtc.done:
			return
		case ev, ok := <-wtc.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			wtc.crit.Lock()
			if p, ok := wtc.files[filepath.Clean(ev.Name)]; ok {
				wtc.pending[p] = true
			}
			wtc.crit.Unlock()
		case err, ok := <-wtc.watcher.Errors:
			if !ok {
				return
			}
			logger.Log("watch", err.Error())
		}
	}
}

// Add a file to the list of watched files. The path is a path in the fsys
// given to New() and is also the identifier the file is registered with.
//
// Files should be added in dependency order, with included files added
// before the files that include them. Service() reloads in the same order.
//
// The directory containing the file is watched rather than the file itself
// so that editors which replace a file on save are handled.
func (wtc *Watcher) Add(path string) error {
	if _, err := fs.Stat(wtc.fsys, path); err != nil {
		return curated.Errorf(WatchError, err)
	}

	osPath := filepath.Clean(filepath.Join(wtc.root, filepath.FromSlash(path)))
	dir := filepath.Dir(osPath)

	wtc.crit.Lock()
	defer wtc.crit.Unlock()

	if !wtc.dirs[dir] {
		if err := wtc.watcher.Add(dir); err != nil {
			return curated.Errorf(WatchError, err)
		}
		wtc.dirs[dir] = true
	}
	if _, ok := wtc.files[osPath]; !ok {
		wtc.order = append(wtc.order, path)
	}
	wtc.files[osPath] = path

	logger.Logf("watch", "watching %s", path)

	return nil
}

// Service reloads every changed file into the registry and returns the
// identifiers that were reloaded, in the order the files were added. Files
// that cannot be read are logged and remain pending until the next call.
func (wtc *Watcher) Service() []string {
	wtc.crit.Lock()
	if len(wtc.pending) == 0 {
		wtc.crit.Unlock()
		return nil
	}
	paths := make([]string, 0, len(wtc.pending))
	for _, p := range wtc.order {
		if wtc.pending[p] {
			paths = append(paths, p)
		}
	}
	wtc.pending = make(map[string]bool)
	wtc.crit.Unlock()

	var changed []string
	for _, p := range paths {
		if _, err := wtc.reg.LoadFile(wtc.fsys, p); err != nil {
			logger.Log("watch", err.Error())
			wtc.crit.Lock()
			wtc.pending[p] = true
			wtc.crit.Unlock()
			continue
		}
		logger.Logf("watch", "reloaded %s", p)
		changed = append(changed, p)
	}

	return changed
}

// Close stops watching. Service() should not be called after Close().
// Calling Close() more than once returns the result of the first call.
func (wtc *Watcher) Close() error {
	wtc.closeOnce.Do(func() {
		close(wtc.done)
		err := wtc.watcher.Close()
		wtc.wg.Wait()
		if err != nil {
			wtc.closeErr = curated.Errorf(WatchError, err)
		}
	})
	return wtc.closeErr
}
