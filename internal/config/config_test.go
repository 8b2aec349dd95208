package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsMissingFile(t *testing.T) {
	d, err := LoadDefaults(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, Defaults{}, d)
}

func TestLoadDefaultsFromAddonsDir(t *testing.T) {
	dir := t.TempDir()
	content := "org_name: acme\nrepo_name: server-tools\nbranch: \"16.0\"\ngen_html: true\ndefault_installable: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultsFile), []byte(content), 0o644))

	d, err := LoadDefaults(dir)
	require.NoError(t, err)
	require.Equal(t, "acme", d.OrgName)
	require.Equal(t, "server-tools", d.RepoName)
	require.Equal(t, "16.0", d.Branch)
	require.NotNil(t, d.GenHTML)
	require.True(t, *d.GenHTML)
	require.NotNil(t, d.DefaultInstallable)
	require.False(t, *d.DefaultInstallable)
}

func TestLoadDefaultsExpandsEnvironment(t *testing.T) {
	t.Setenv("GENREADME_TEST_ORG", "acme")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultsFile),
		[]byte("org_name: ${GENREADME_TEST_ORG}\n"), 0o644))

	d, err := LoadDefaults(dir)
	require.NoError(t, err)
	require.Equal(t, "acme", d.OrgName)
}

func TestLoadDefaultsMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultsFile), []byte("org_name: [oops\n"), 0o644))

	_, err := LoadDefaults(dir)
	require.Error(t, err)
}
