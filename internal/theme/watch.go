package theme

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/hugo-lorenzo-mato/swatch/internal/logging"
)

// Watch reloads the theme file at path into live whenever it changes, until
// ctx is done. The parent directory is watched so editors that replace the
// file on save are picked up. A file that fails to load leaves the previous
// theme in place.
func Watch(ctx context.Context, path string, live *Live, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving theme path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	logger.Debug("watching theme file", "path", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			t, err := LoadFile(abs)
			if err != nil {
				logger.Warn("theme reload failed, keeping previous theme", "path", abs, "error", err)
				continue
			}
			live.Store(t)
			logger.WithTheme(t.Name).Info("theme reloaded", "variables", t.Len())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("theme watcher error", "error", err)
		}
	}
}
