package addon

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/genreadme/internal/logfields"
)

var (
	// ErrAddonsDirNotFound indicates the configured addons root does not exist.
	ErrAddonsDirNotFound = errors.New("addons directory not found")

	// ErrManifestReadFailed indicates reading an addon descriptor failed.
	ErrManifestReadFailed = errors.New("addon manifest read failed")

	// ErrManifestInvalid indicates an addon descriptor could not be parsed.
	ErrManifestInvalid = errors.New("addon manifest invalid")
)

// Addon represents a discovered addon module directory.
type Addon struct {
	Name     string // Directory basename
	Dir      string // Absolute or root-relative path to the addon directory
	Manifest Manifest
}

// Title returns the human-readable addon title: the manifest name when
// declared, otherwise the directory basename.
func (a Addon) Title() string {
	if a.Manifest.Name != "" {
		return a.Manifest.Name
	}
	return a.Name
}

// FindAddons scans root for direct child directories that qualify as
// installable addons. Results are sorted lexicographically by directory name
// so repeated runs produce identical output. skipped counts directories that
// carried a descriptor but were excluded (not installable, or descriptor
// unparseable).
func FindAddons(root string, defaultInstallable bool) (addons []Addon, skipped int, err error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("%w: %s", ErrAddonsDirNotFound, root)
		}
		return nil, 0, fmt.Errorf("failed to read addons directory %s: %w", root, err)
	}

	// os.ReadDir returns entries sorted by name.
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		manifest, err := loadManifest(dir)
		if err != nil {
			slog.Warn("Skipping addon with unreadable manifest", logfields.Addon(entry.Name()), logfields.Error(err))
			skipped++
			continue
		}

		if !manifest.IsInstallable(defaultInstallable) {
			slog.Debug("Skipping non-installable addon", logfields.Addon(entry.Name()))
			skipped++
			continue
		}

		addons = append(addons, Addon{
			Name:     entry.Name(),
			Dir:      dir,
			Manifest: manifest,
		})
		slog.Debug("Discovered addon", logfields.Addon(entry.Name()), logfields.Path(dir))
	}

	slog.Info("Addon discovery completed", logfields.Count(len(addons)), slog.Int("skipped", skipped))
	return addons, skipped, nil
}
