package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events an editor produces on save.
const reloadDelay = 250 * time.Millisecond

// Watch calls fn with the freshly loaded file each time the file at path
// changes, until ctx is done. The directory is watched rather than the file
// so that editors replacing the file on save are seen. Files that fail to
// load are logged and skipped. fn runs on Watch's goroutine.
func Watch(ctx context.Context, path string, logger *slog.Logger, fn func(File)) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: create watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			timer.Reset(reloadDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config: watcher error", "err", err)
		case <-timer.C:
			f, err := Load(abs)
			if err != nil {
				logger.Warn("config: reload failed", "path", abs, "err", err)
				continue
			}
			logger.Info("config: reloaded", "path", abs, "items", len(f.Items))
			fn(f)
		}
	}
}
