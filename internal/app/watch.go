package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/specialistvlad/gmc/internal/resultstore"
)

// watchDebounce collects bursts of events, editors often write a file in
// several steps.
const watchDebounce = 100 * time.Millisecond

// Watch compiles every document under root, then recompiles documents as
// they are written or created until ctx is cancelled. Results whose outcome
// changed since the previous compile are passed to onResults.
func (a *App) Watch(ctx context.Context, root string, onResults func([]Result)) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("error accessing path %s: %w", root, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dirs := []string{root}
	if !info.IsDir() {
		dirs = []string{filepath.Dir(root)}
	} else {
		dirs, err = subdirectories(root)
		if err != nil {
			return err
		}
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	results, err := a.CompileAll(ctx, []string{root})
	if err != nil {
		return err
	}
	onResults(a.changed(ctx, results))
	a.logger.Info("Watching for changes.", "path", root, "directories", len(dirs))

	wanted := func(path string) bool {
		if !info.IsDir() {
			return filepath.Clean(path) == filepath.Clean(root)
		}
		return slices.Contains(a.Extensions(), strings.ToLower(filepath.Ext(path)))
	}

	pending := make(map[string]struct{})
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Debug("Watch stopped.", "reason", ctx.Err())
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && info.IsDir() {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						a.logger.Warn("Failed to watch new directory.", "path", event.Name, "error", err)
					}
					continue
				}
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				a.results.Forget(ctx, event.Name)
				delete(pending, event.Name)
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !wanted(event.Name) {
				continue
			}
			a.logger.Debug("Change detected.", "path", event.Name, "op", event.Op.String())
			pending[event.Name] = struct{}{}
			timer.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Error("Watcher error.", "error", err)

		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			clear(pending)
			slices.Sort(paths)

			batch, err := a.CompileAll(ctx, paths)
			if err != nil {
				a.logger.Warn("Recompile failed.", "error", err)
				continue
			}
			if changed := a.changed(ctx, batch); len(changed) > 0 {
				onResults(changed)
			}
		}
	}
}

// changed records every result and keeps those whose outcome differs from
// the previous compile of the same document.
func (a *App) changed(ctx context.Context, results []Result) []Result {
	var out []Result
	for _, r := range results {
		entry := resultstore.Entry{Path: r.Path, Fingerprint: r.Fingerprint}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		}
		if a.results.Record(a.withLogger(ctx), entry) {
			out = append(out, r)
		}
	}
	return out
}

func subdirectories(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return dirs, nil
}
