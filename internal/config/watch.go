package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path whenever it changes and sends the result on the
// returned channel until ctx is done. The parent directory is watched so that
// editors replacing the file are seen. Only the latest reload is kept when the
// receiver falls behind; malformed files are logged and skipped. Renaming or
// removing the file keeps the current settings until it reappears.
func Watch(ctx context.Context, path string, logger *slog.Logger) (<-chan Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	out := make(chan Config, 1)
	target := filepath.Clean(path)

	go func() {
		defer watcher.Close()
		defer close(out)
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
				if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
					logger.Debug("config file gone, keeping current settings", "path", path)
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					logger.Warn("config reload failed", "path", path, "error", err)
					continue
				}
				logger.Info("config reloaded", "path", path)
				// Replace any reload the receiver has not picked up yet.
				select {
				case <-out:
				default:
				}
				out <- cfg
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "error", err)
			}
		}
	}()
	return out, nil
}
