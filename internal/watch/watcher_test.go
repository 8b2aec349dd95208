package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"git.home.luguber.info/inful/genreadme/internal/compose"
	"git.home.luguber.info/inful/genreadme/internal/pipeline"
	"github.com/stretchr/testify/require"
)

func TestIsOwnOutput(t *testing.T) {
	require.True(t, isOwnOutput("/addons/mod_a/README.rst"))
	require.True(t, isOwnOutput("/addons/index.html"))
	require.True(t, isOwnOutput("/addons/mod_a/.README.rst123"))
	require.False(t, isOwnOutput("/addons/mod_a/readme/DESCRIPTION.rst"))
	require.False(t, isOwnOutput("/addons/mod_a/addon.yaml"))
}

func TestRunPerformsInitialGeneration(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "mod_a")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "readme"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "readme", "DESCRIPTION.rst"), []byte("watched"), 0o644))

	w, err := New(pipeline.Options{
		AddonsDir:          root,
		Org:                "acme",
		Repo:               "server-tools",
		Branch:             "16.0",
		DefaultInstallable: true,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	require.NoError(t, w.Run(ctx))

	data, err := os.ReadFile(filepath.Join(dir, compose.OutputFile))
	require.NoError(t, err)
	require.Contains(t, string(data), "watched")
}

func TestRunFatalOnMissingRoot(t *testing.T) {
	w, err := New(pipeline.Options{AddonsDir: filepath.Join(t.TempDir(), "nope")})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.Error(t, w.Run(ctx))
}
