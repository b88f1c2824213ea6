package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads src whenever its file is written or replaced, until ctx is
// canceled. It watches the parent directory so editors that save by rename
// are picked up. src must be backed by the OS filesystem. The watcher is
// started before Watch returns.
func Watch(ctx context.Context, src *FileSource) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}

	dir := filepath.Dir(src.Path())
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()
		target := filepath.Clean(src.Path())
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if err := src.Reload(); err != nil {
					slog.Warn("catalog reload failed, keeping previous data", "path", target, "error", err)
					continue
				}
				slog.Info("catalog reloaded", "path", target)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("catalog watcher error", "error", err)
			}
		}
	}()

	return nil
}
