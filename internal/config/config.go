// Package config loads the optional defaults file that supplies repository
// coordinates and behavior toggles when they are not given on the command
// line.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/genreadme/internal/logfields"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultsFile is looked up in the addons directory first, then the working
// directory.
const DefaultsFile = ".genreadme.yaml"

// Defaults mirrors the CLI flags. Pointer fields distinguish "unset" from an
// explicit false.
type Defaults struct {
	OrgName            string `yaml:"org_name,omitempty"`
	RepoName           string `yaml:"repo_name,omitempty"`
	Branch             string `yaml:"branch,omitempty"`
	GenHTML            *bool  `yaml:"gen_html,omitempty"`
	DefaultInstallable *bool  `yaml:"default_installable,omitempty"`
}

// LoadDefaults reads the first defaults file found. A missing file is not an
// error and yields a zero Defaults. Environment variables referenced in the
// file are expanded after .env loading.
func LoadDefaults(addonsDir string) (Defaults, error) {
	loadEnvFile()

	for _, dir := range []string{addonsDir, "."} {
		path := filepath.Join(dir, DefaultsFile)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return Defaults{}, fmt.Errorf("failed to read defaults file %s: %w", path, err)
		}

		var d Defaults
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &d); err != nil {
			return Defaults{}, fmt.Errorf("failed to parse defaults file %s: %w", path, err)
		}
		slog.Debug("Loaded defaults file", logfields.Path(path))
		return d, nil
	}
	return Defaults{}, nil
}

// loadEnvFile loads environment variables from .env/.env.local. Existing
// process environment variables are not overwritten; a missing file is fine.
func loadEnvFile() {
	for _, path := range []string{".env", ".env.local"} {
		if err := godotenv.Load(path); err == nil {
			slog.Debug("Loaded environment file", logfields.Path(path))
			return
		}
	}
}
