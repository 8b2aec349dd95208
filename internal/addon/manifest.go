package addon

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the descriptor file that marks a directory as an addon.
const ManifestFile = "addon.yaml"

// Manifest is the addon descriptor. All fields are optional; an addon
// directory without a descriptor gets a zero Manifest.
type Manifest struct {
	Name              string `yaml:"name,omitempty"`
	Summary           string `yaml:"summary,omitempty"`
	Author            string `yaml:"author,omitempty"`
	Website           string `yaml:"website,omitempty"`
	License           string `yaml:"license,omitempty"`
	DevelopmentStatus string `yaml:"development_status,omitempty"`
	Installable       *bool  `yaml:"installable,omitempty"`
}

// IsInstallable reports whether the addon should be processed. When the
// descriptor does not declare the attribute, fallback decides.
func (m Manifest) IsInstallable(fallback bool) bool {
	if m.Installable == nil {
		return fallback
	}
	return *m.Installable
}

// loadManifest reads and parses the descriptor in dir. A missing descriptor
// is not an error and yields a zero Manifest.
func loadManifest(dir string) (Manifest, error) {
	var m Manifest

	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return m, fmt.Errorf("%w: %s: %w", ErrManifestReadFailed, path, err)
	}

	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("%w: %s: %w", ErrManifestInvalid, path, err)
	}
	return m, nil
}
