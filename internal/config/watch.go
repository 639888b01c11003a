package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the configuration at path whenever the file is written or
// replaced and passes each successfully loaded result to onChange. Load
// failures are logged and skipped. Watch returns once the watcher is
// running; it stops when ctx is cancelled.
//
// The containing directory is watched so that editors saving through a
// rename are still observed.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(*Config)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("absolute path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	logger.Info("watching config file", "path", abs)
	go watchLoop(ctx, watcher, abs, logger, onChange)
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, logger *slog.Logger, onChange func(*Config)) {
	defer watcher.Close()
	name := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			logger.Debug("config file changed", "event", event.Op.String())
			cfg, err := Load(path)
			if err != nil {
				logger.Error("config reload failed", "error", err)
				continue
			}
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Error("config watcher error", "error", err)
		}
	}
}
