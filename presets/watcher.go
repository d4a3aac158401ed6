// This file is part of Lightmass.
//
// Lightmass is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Lightmass is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Lightmass.  If not, see <https://www.gnu.org/licenses/>.

package presets

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/lightmass/lightmass/curated"
	"github.com/lightmass/lightmass/logger"
)

// Error patterns.
const (
	WatchError = "presets: watch: %v"
)

// Reload is the result of reading a file after it has changed. Either
// Presets or Err is valid.
type Reload struct {
	Presets []Preset
	Err     error
}

// Watcher reloads a presets file whenever it is changed.
//
// The file is loaded on a goroutine owned by the Watcher but the results
// are only ever delivered on the channel returned by Reloads(). The owner of
// the GL context is expected to poll the channel between frames.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	reloads chan Reload
	done    chan struct{}
}

// NewWatcher starts watching the named file. The directory containing the
// file is watched so that editors that replace the file on save are
// handled.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(WatchError, err)
	}

	w := &Watcher{
		path:    filepath.Clean(path),
		watcher: fw,
		reloads: make(chan Reload, 1),
		done:    make(chan struct{}),
	}

	err = fw.Add(filepath.Dir(w.path))
	if err != nil {
		fw.Close()
		return nil, curated.Errorf(WatchError, err)
	}

	go w.run()

	return w, nil
}

// Reloads returns the channel on which reloads are delivered. Only the most
// recent reload is kept if the channel is not read. The channel is closed
// when the Watcher is closed.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Close stops watching the file.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	if err != nil {
		return curated.Errorf(WatchError, err)
	}
	return nil
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.reloads)

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			p, err := Load(w.path)
			if err != nil {
				logger.Logf(logger.Allow, "presets", "reload failed: %v", err)
			} else {
				logger.Logf(logger.Allow, "presets", "reloaded %d presets from %s", len(p), w.path)
			}
			w.deliver(Reload{Presets: p, Err: err})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Logf(logger.Allow, "presets", "watch: %v", err)
		}
	}
}

// deliver replaces any reload that has not been read.
func (w *Watcher) deliver(r Reload) {
	select {
	case w.reloads <- r:
		return
	default:
	}
	select {
	case <-w.reloads:
	default:
	}
	w.reloads <- r
}
