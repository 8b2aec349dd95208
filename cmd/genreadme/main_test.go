package main

import (
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/genreadme/internal/config"
	"github.com/stretchr/testify/require"
)

func TestResolveOptionsFlagsWin(t *testing.T) {
	dir := t.TempDir()
	content := "org_name: from-file\nrepo_name: file-repo\nbranch: \"15.0\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultsFile), []byte(content), 0o644))

	opts, err := resolveOptions(generateFlags{
		OrgName:   "from-flag",
		AddonsDir: dir,
	})
	require.NoError(t, err)
	require.Equal(t, "from-flag", opts.Org)
	require.Equal(t, "file-repo", opts.Repo)
	require.Equal(t, "15.0", opts.Branch)
}

func TestResolveOptionsMissingCoordinates(t *testing.T) {
	_, err := resolveOptions(generateFlags{AddonsDir: t.TempDir()})
	require.Error(t, err)
	require.Contains(t, err.Error(), "--org-name")
}

func TestResolveOptionsGenHTMLPrecedence(t *testing.T) {
	dir := t.TempDir()
	content := "org_name: acme\nrepo_name: tools\nbranch: \"16.0\"\ngen_html: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultsFile), []byte(content), 0o644))

	opts, err := resolveOptions(generateFlags{AddonsDir: dir})
	require.NoError(t, err)
	require.True(t, opts.GenHTML)

	off := false
	opts, err = resolveOptions(generateFlags{AddonsDir: dir, GenHTML: &off})
	require.NoError(t, err)
	require.False(t, opts.GenHTML, "--no-gen-html must override the defaults file")
}

func TestResolveOptionsDefaultInstallable(t *testing.T) {
	dir := t.TempDir()
	content := "org_name: acme\nrepo_name: tools\nbranch: \"16.0\"\ndefault_installable: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultsFile), []byte(content), 0o644))

	opts, err := resolveOptions(generateFlags{AddonsDir: dir})
	require.NoError(t, err)
	require.False(t, opts.DefaultInstallable)
}

func TestFirstNonEmpty(t *testing.T) {
	require.Equal(t, "a", firstNonEmpty("", "a", "b"))
	require.Equal(t, "", firstNonEmpty("", ""))
}
