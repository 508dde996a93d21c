package cmd

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ardnew/recipegen/log"
	"github.com/ardnew/recipegen/manifest"
)

// defaultDebounce is how long the watcher waits for changes to settle
// before regenerating.
const defaultDebounce = 250 * time.Millisecond

// watch calls run each time a manifest under paths changes, until ctx is
// done. Bursts of events closer together than delay trigger a single run.
func watch(
	ctx context.Context,
	paths []string,
	delay time.Duration,
	run func(context.Context),
) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return ErrWatch.Wrap(err)
	}
	defer w.Close()

	for _, path := range paths {
		if err := watchTree(w, path); err != nil {
			return ErrWatch.Wrap(err).With(slog.String("path", path))
		}
	}

	log.InfoContext(ctx, "watching inputs", slog.Any("paths", paths))

	timer := time.NewTimer(delay)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !relevant(w, ev) {
				continue
			}

			log.DebugContext(ctx, "input changed",
				slog.String("path", ev.Name),
				slog.String("op", ev.Op.String()),
			)

			timer.Reset(delay)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			log.WarnContext(ctx, "watcher error", slog.Any("error", err))

		case <-timer.C:
			run(ctx)
		}
	}
}

// watchTree adds path to w, and every directory beneath it if path is a
// directory.
func watchTree(w *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return w.Add(path)
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return w.Add(p)
		}

		return nil
	})
}

// relevant reports whether ev should trigger a regeneration. New
// directories are added to w as a side effect.
func relevant(w *fsnotify.Watcher, ev fsnotify.Event) bool {
	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
		return false
	}

	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			_ = watchTree(w, ev.Name)

			return true
		}
	}

	return manifest.IsManifest(ev.Name) || watched(w, ev.Name)
}

// watched reports whether path itself, not its directory, is watched.
func watched(w *fsnotify.Watcher, path string) bool {
	return slices.Contains(w.WatchList(), path)
}
