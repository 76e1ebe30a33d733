package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"stratigo-site/internal/pkg/logger"
	"stratigo-site/pkg/sitemap"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 250 * time.Millisecond

// WatchSitemapPages reloads the routes file whenever it changes and hands
// the new table to apply. The parent directory is watched because editors
// usually replace files instead of writing them in place. A file that fails
// to parse keeps the previous table.
func WatchSitemapPages(ctx context.Context, path string, apply func([]sitemap.Page), log logger.ILogger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating routes watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("error watching %s: %w", path, err)
	}

	target := filepath.Clean(path)
	go func() {
		defer watcher.Close()

		var debounce <-chan time.Time
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
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					debounce = time.After(reloadDebounce)
				}
			case <-debounce:
				debounce = nil
				pages, err := LoadSitemapPages(path)
				if err != nil {
					log.Warn("CONFIG", "Ignoring invalid sitemap routes file", map[string]interface{}{"path": path, "error": err.Error()})
					continue
				}
				apply(pages)
				log.Info("CONFIG", "Sitemap routes reloaded", map[string]interface{}{"path": path, "pages": len(pages)})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("CONFIG", "Routes watcher error", map[string]interface{}{"error": err.Error()})
			}
		}
	}()
	return nil
}
