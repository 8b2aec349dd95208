package compose

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"text/template"
	"unicode/utf8"

	"git.home.luguber.info/inful/genreadme/internal/addon"
	"git.home.luguber.info/inful/genreadme/internal/fragment"
	"git.home.luguber.info/inful/genreadme/internal/logfields"
	"github.com/google/renameio/v2"
)

// ErrWriteFailed indicates the composed document could not be written to the
// addon directory. Callers treat this as a per-addon failure, not a fatal one.
var ErrWriteFailed = errors.New("readme write failed")

// OutputFile is the composed document name, written at the addon root.
const OutputFile = "README.rst"

// tocThreshold is the combined fragment length above which the document gets
// a table of contents.
const tocThreshold = 1000

//go:embed templates/readme.rst.tmpl
var readmeTemplate string

// Metadata carries the repository coordinates interpolated into badge and
// image links. Identical for every addon in a run.
type Metadata struct {
	Org    string
	Repo   string
	Branch string
}

// Composer renders README.rst documents for addons.
type Composer struct {
	meta Metadata
	tpl  *template.Template
}

type templateData struct {
	Title       string
	Badges      []Badge
	Org         string
	Repo        string
	RepoURL     string
	Description string
	TOC         bool
	Sections    []renderedSection
}

type renderedSection struct {
	Heading string
	Content string
}

func NewComposer(meta Metadata) *Composer {
	funcs := template.FuncMap{
		"rule": func(s string) string {
			return strings.Repeat("=", utf8.RuneCountInString(s))
		},
		"inc": func(i int) int { return i + 1 },
		"badgeRefs": func(badges []Badge) string {
			refs := make([]string, len(badges))
			for i := range badges {
				refs[i] = fmt.Sprintf("|badge%d|", i+1)
			}
			return strings.Join(refs, " ")
		},
	}
	tpl := template.Must(template.New("readme").Funcs(funcs).Parse(readmeTemplate))
	return &Composer{meta: meta, tpl: tpl}
}

// Compose renders the document for one addon from its collected fragments.
// Fragments arrive in fixed section order; the description leads the body and
// every other section gets an underlined heading. The result depends only on
// the inputs, so unchanged addons compose byte-identical documents.
func (c *Composer) Compose(a addon.Addon, fragments []fragment.Fragment) ([]byte, error) {
	data := templateData{
		Title:  a.Title(),
		Badges: badgesFor(a.Manifest),
		Org:    c.meta.Org,
		Repo:   c.meta.Repo,
		RepoURL: fmt.Sprintf("https://github.com/%s/%s/tree/%s/%s",
			c.meta.Org, c.meta.Repo, c.meta.Branch, a.Name),
		TOC: fragment.TotalLength(fragments) > tocThreshold,
	}

	for _, f := range fragments {
		if f.Section.Heading == "" {
			data.Description = strings.TrimRight(f.Content, "\n") + "\n"
			continue
		}
		data.Sections = append(data.Sections, renderedSection{
			Heading: f.Section.Heading,
			Content: f.Content,
		})
	}

	var buf bytes.Buffer
	if err := c.tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render readme for %s: %w", a.Name, err)
	}

	out := buf.Bytes()
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	return out, nil
}

// Write composes the document and writes it atomically to the addon root,
// replacing any previous README.rst.
func (c *Composer) Write(a addon.Addon, fragments []fragment.Fragment) error {
	content, err := c.Compose(a, fragments)
	if err != nil {
		return err
	}

	path := filepath.Join(a.Dir, OutputFile)
	if err := renameio.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}

	slog.Debug("Wrote readme", logfields.Addon(a.Name), logfields.Path(path))
	return nil
}
