// Package htmlindex emits the optional index.html listing page at the addons
// root, linking the composed README of every processed addon.
package htmlindex

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/genreadme/internal/logfields"
	"github.com/google/renameio/v2"
	"github.com/yuin/goldmark"
)

// IndexFile is the listing page name, written at the addons root.
const IndexFile = "index.html"

//go:embed templates/index.html.tmpl
var indexTemplate string

var tpl = template.Must(template.New("index").Parse(indexTemplate))

// Entry is one addon row on the index page.
type Entry struct {
	Name    string
	Link    string        // Relative link to the addon's composed document
	Summary template.HTML // Optional pre-rendered summary snippet
}

type templateData struct {
	Title   string
	Entries []Entry
}

// TextSummary wraps a plain-text manifest summary for the template, escaping
// it on the way in.
func TextSummary(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}

// MarkdownSummary renders a Markdown description fragment to an HTML snippet.
func MarkdownSummary(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown summary: %w", err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // goldmark output, authored content
}

// Generate writes the index page listing entries to <root>/index.html,
// replacing any previous page.
func Generate(root, title string, entries []Entry) error {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, templateData{Title: title, Entries: entries}); err != nil {
		return fmt.Errorf("failed to render index page: %w", err)
	}

	path := filepath.Join(root, IndexFile)
	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write index page %s: %w", path, err)
	}

	slog.Info("Generated index page", logfields.Path(path), logfields.Count(len(entries)))
	return nil
}
