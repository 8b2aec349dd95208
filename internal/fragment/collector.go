package fragment

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/genreadme/internal/logfields"
)

// Fragment is the content found for one section of an addon's readme folder.
type Fragment struct {
	Section  Section
	Content  string
	Markdown bool // true when the fragment came from a .md file
}

// LinkMeta carries the repository coordinates interpolated into image links.
type LinkMeta struct {
	Org    string
	Repo   string
	Branch string
	Addon  string
}

// Collect reads the recognized fragment files under <addonDir>/readme/ and
// returns them in fixed Sections order. Missing and empty fragments are
// skipped silently; for each section an .rst file takes precedence over the
// .md variant. Relative image references are rewritten to absolute URLs so
// the composed document renders outside the repository tree.
func Collect(addonDir string, meta LinkMeta) ([]Fragment, error) {
	fragmentsDir := filepath.Join(addonDir, FragmentsDir)
	if _, err := os.Stat(fragmentsDir); os.IsNotExist(err) {
		slog.Debug("No readme folder", logfields.Addon(meta.Addon), logfields.Path(fragmentsDir))
		return nil, nil
	}

	var fragments []Fragment
	for _, section := range Sections {
		frag, ok, err := readSection(fragmentsDir, section, meta)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		fragments = append(fragments, frag)
		slog.Debug("Collected fragment", logfields.Addon(meta.Addon), logfields.Section(section.Name))
	}
	return fragments, nil
}

func readSection(dir string, section Section, meta LinkMeta) (Fragment, bool, error) {
	for _, candidate := range []struct {
		ext      string
		markdown bool
	}{
		{".rst", false},
		{".md", true},
	} {
		path := filepath.Join(dir, section.Name+candidate.ext)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return Fragment{}, false, fmt.Errorf("failed to read fragment %s: %w", path, err)
		}

		content := string(data)
		if strings.TrimSpace(content) == "" {
			// An empty fragment file contributes no section.
			continue
		}

		if candidate.markdown {
			content = rewriteMarkdownImages(content, meta)
		} else {
			content = rewriteRSTImages(content, meta)
		}
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}

		return Fragment{Section: section, Content: content, Markdown: candidate.markdown}, true, nil
	}
	return Fragment{}, false, nil
}

// TotalLength returns the combined content length of the fragments, used to
// decide whether the composed document gets a table of contents.
func TotalLength(fragments []Fragment) int {
	total := 0
	for _, f := range fragments {
		total += len(f.Content)
	}
	return total
}
