package config

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config file at path each time it is rewritten and
// hands the parsed result to onChange. It blocks until ctx is cancelled.
//
// A reload that fails to parse or validate is logged and dropped; the
// caller keeps running on its previous config. Atomic saves (write to a
// temp file, rename over the original) replace the inode, so the watch
// is re-registered after every delivery.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}
	slog.Info("config: watching for changes", "path", path)

	reload := func() {
		cfg, err := Load(path)
		if err != nil {
			slog.Error("config: reload rejected — previous config stays active",
				"path", path, "err", err)
			return
		}
		slog.Info("config: reloaded", "path", path)
		onChange(cfg)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
				reload()
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				// Inode replaced or gone; fall through to the re-add below
				// and pick the file up again if it reappears.
			default:
				continue
			}
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}
