// Package watch regenerates readmes whenever fragment files change, for use
// while authoring documentation.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/genreadme/internal/compose"
	"git.home.luguber.info/inful/genreadme/internal/fragment"
	"git.home.luguber.info/inful/genreadme/internal/htmlindex"
	"git.home.luguber.info/inful/genreadme/internal/logfields"
	"git.home.luguber.info/inful/genreadme/internal/pipeline"
	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs the generation pipeline when addon descriptors or fragment
// files change. Changes are debounced so a burst of editor writes triggers a
// single regeneration.
type Watcher struct {
	opts     pipeline.Options
	fsw      *fsnotify.Watcher
	debounce time.Duration
}

func New(opts pipeline.Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &Watcher{
		opts:     opts,
		fsw:      fsw,
		debounce: 500 * time.Millisecond,
	}, nil
}

// Run performs an initial generation, then blocks regenerating on changes
// until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close() //nolint:errcheck

	if _, err := pipeline.Run(w.opts); err != nil {
		return err
	}
	if err := w.addPaths(); err != nil {
		return err
	}
	slog.Info("Watching for fragment changes", logfields.Path(w.opts.AddonsDir))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			slog.Info("Watch stopped")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if isOwnOutput(event.Name) {
				continue
			}
			slog.Debug("Change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			if !pending {
				pending = true
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))

		case <-timer.C:
			pending = false
			if _, err := pipeline.Run(w.opts); err != nil {
				slog.Error("Regeneration failed", logfields.Error(err))
			}
			// New addons or readme folders may have appeared.
			if err := w.addPaths(); err != nil {
				slog.Warn("Failed to refresh watch paths", logfields.Error(err))
			}
		}
	}
}

// addPaths watches the addons root, each addon directory, and each existing
// readme subfolder. fsnotify tolerates re-adding known paths.
func (w *Watcher) addPaths() error {
	if err := w.fsw.Add(w.opts.AddonsDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.opts.AddonsDir, err)
	}

	entries, err := os.ReadDir(w.opts.AddonsDir)
	if err != nil {
		return fmt.Errorf("failed to read addons directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		dir := filepath.Join(w.opts.AddonsDir, entry.Name())
		if err := w.fsw.Add(dir); err != nil {
			slog.Warn("Failed to watch addon directory", logfields.Path(dir), logfields.Error(err))
			continue
		}
		readmeDir := filepath.Join(dir, fragment.FragmentsDir)
		if _, err := os.Stat(readmeDir); err == nil {
			if err := w.fsw.Add(readmeDir); err != nil {
				slog.Warn("Failed to watch readme directory", logfields.Path(readmeDir), logfields.Error(err))
			}
		}
	}
	return nil
}

// isOwnOutput filters events caused by the generator itself: composed
// readmes, the index page, and the hidden temp files of atomic writes.
func isOwnOutput(name string) bool {
	base := filepath.Base(name)
	return base == compose.OutputFile ||
		base == htmlindex.IndexFile ||
		strings.HasPrefix(base, ".")
}
