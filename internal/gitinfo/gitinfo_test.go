package gitinfo

import (
	"testing"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/require"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		org  string
		repo string
		ok   bool
	}{
		{"scp style", "git@github.com:acme/server-tools.git", "acme", "server-tools", true},
		{"https", "https://github.com/acme/server-tools.git", "acme", "server-tools", true},
		{"https no suffix", "https://github.com/acme/server-tools", "acme", "server-tools", true},
		{"ssh scheme", "ssh://git@git.example.org/acme/server-tools.git", "acme", "server-tools", true},
		{"nested path", "https://git.example.org/group/sub/project.git", "sub", "project", true},
		{"bare host", "https://github.com/", "", "", false},
		{"not a url", "just-a-name", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			org, repo, ok := ParseRemoteURL(tt.url)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.org, org)
			require.Equal(t, tt.repo, repo)
		})
	}
}

func TestDetectFromRepository(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:acme/server-tools.git"},
	})
	require.NoError(t, err)

	info := Detect(dir)
	require.Equal(t, "acme", info.Org)
	require.Equal(t, "server-tools", info.Repo)
	// A repository without commits has no resolvable HEAD.
	require.Empty(t, info.Branch)
}

func TestDetectOutsideRepository(t *testing.T) {
	info := Detect(t.TempDir())
	require.Empty(t, info.Org)
	require.Empty(t, info.Repo)
	require.Empty(t, info.Branch)
}
