// Package gitinfo derives repository coordinates from the Git repository
// enclosing the addons directory, so org/repo/branch flags can be omitted
// when the tool runs inside a checkout.
package gitinfo

import (
	"log/slog"
	"net/url"
	"strings"

	"git.home.luguber.info/inful/genreadme/internal/logfields"
	git "github.com/go-git/go-git/v5"
)

// Info holds whatever coordinates could be detected. Undetected fields stay
// empty; the caller decides whether that is fatal.
type Info struct {
	Org    string
	Repo   string
	Branch string
}

// Detect opens the repository containing dir (walking up like the git CLI)
// and reads the origin remote and current branch. Detection is best-effort:
// a missing repository, remote, or HEAD just leaves fields empty.
func Detect(dir string) Info {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		slog.Debug("No enclosing git repository", logfields.Path(dir), logfields.Error(err))
		return Info{}
	}

	var info Info
	if remote, err := repo.Remote("origin"); err == nil {
		if urls := remote.Config().URLs; len(urls) > 0 {
			if org, name, ok := ParseRemoteURL(urls[0]); ok {
				info.Org, info.Repo = org, name
			}
		}
	}
	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}

	slog.Debug("Detected repository coordinates",
		slog.String("org", info.Org), slog.String("repo", info.Repo), logfields.Branch(info.Branch))
	return info
}

// ParseRemoteURL extracts organization and repository names from a remote
// URL. Both scp-style (git@host:org/repo.git) and scheme URLs
// (https://host/org/repo.git, ssh://git@host/org/repo) are supported.
func ParseRemoteURL(raw string) (org, repo string, ok bool) {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), ".git")

	var path string
	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return "", "", false
		}
		path = strings.Trim(u.Path, "/")
	case strings.Contains(raw, ":"):
		path = strings.Trim(raw[strings.Index(raw, ":")+1:], "/")
	default:
		return "", "", false
	}

	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[len(parts)-1] == "" || parts[len(parts)-2] == "" {
		return "", "", false
	}
	return parts[len(parts)-2], parts[len(parts)-1], true
}
