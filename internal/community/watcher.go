package community

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher drops the aggregated manifest whenever a resource pack changes so
// the next /libs_manifest request rebuilds it.
type Watcher struct {
	watcher      *fsnotify.Watcher
	packsDir     string
	manifestPath string
	logger       *zerolog.Logger
}

func NewWatcher(packsDir, manifestPath string, logger *zerolog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := os.MkdirAll(packsDir, 0o755); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to create resource packs dir: %w", err)
	}

	watcher := &Watcher{
		watcher:      w,
		packsDir:     packsDir,
		manifestPath: manifestPath,
		logger:       logger,
	}

	if err := watcher.addTree(packsDir); err != nil {
		w.Close()
		return nil, err
	}

	return watcher, nil
}

// Run blocks until ctx is cancelled and then closes the underlying watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("Resource pack watcher error")
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				w.logger.Warn().Err(err).Str("dir", event.Name).Msg("Failed to watch resource pack")
			}
		}
	}

	w.invalidate(event.Name)
}

func (w *Watcher) invalidate(cause string) {
	err := os.Remove(w.manifestPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		w.logger.Error().Err(err).Msg("Failed to remove stale manifest")
		return
	}
	if err == nil {
		w.logger.Debug().Str("cause", cause).Msg("Community manifest invalidated")
	}
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}
