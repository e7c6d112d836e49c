package devserver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/ingyamilmolinar/reverbfx/internal/log"
)

const settle = 100 * time.Millisecond

var skipDirs = map[string]bool{".git": true, "node_modules": true}

// watchMatch reports whether rel, relative to the site root, matches any
// pattern. Patterns use doublestar syntax.
func watchMatch(rel string, patterns []string) bool {
	rel = filepath.ToSlash(rel)
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// watcher reports changed files under root, coalescing bursts of writes.
type watcher struct {
	fs       *fsnotify.Watcher
	root     string
	patterns []string
	log      *log.Logger
}

func newWatcher(root string, patterns []string, logger *log.Logger) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watching %s: %w", root, err)
	}
	w := &watcher{fs: fw, root: root, patterns: patterns, log: logger}
	if err := w.addTree(root); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

func (w *watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != dir && skipDirs[d.Name()] {
			return filepath.SkipDir
		}
		if err := w.fs.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
		return nil
	})
}

func (w *watcher) Close() error { return w.fs.Close() }

// run calls notify with each changed path once its writes settle.
func (w *watcher) run(ctx context.Context, notify func(rel string)) {
	pending := map[string]bool{}
	timer := time.NewTimer(settle)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warnf("watch: %v", err)
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Create) {
				if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						w.log.Warnf("%v", err)
					}
					continue
				}
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			rel, err := filepath.Rel(w.root, ev.Name)
			if err != nil || !watchMatch(rel, w.patterns) {
				continue
			}
			pending[filepath.ToSlash(rel)] = true
			timer.Reset(settle)
		case <-timer.C:
			for rel := range pending {
				w.log.Debugf("changed %s", rel)
				notify(rel)
			}
			clear(pending)
		}
	}
}
