// Package pipeline runs the per-addon generation sequence: discover addons,
// collect fragments, compose the readme, and optionally emit the index page.
package pipeline

import (
	"fmt"
	"log/slog"
	"path"

	"git.home.luguber.info/inful/genreadme/internal/addon"
	"git.home.luguber.info/inful/genreadme/internal/compose"
	"git.home.luguber.info/inful/genreadme/internal/fragment"
	"git.home.luguber.info/inful/genreadme/internal/htmlindex"
	"git.home.luguber.info/inful/genreadme/internal/logfields"
)

// Options are the resolved settings for one run.
type Options struct {
	AddonsDir          string
	Org                string
	Repo               string
	Branch             string
	GenHTML            bool
	DefaultInstallable bool
}

// Summary counts the per-addon outcomes of a run. Per-addon failures are
// reported here instead of aborting the run.
type Summary struct {
	Processed int // Readmes written
	Skipped   int // Addons excluded by discovery (not installable, bad descriptor)
	Failed    int // Addons whose collection or write failed
}

// Run processes every installable addon under opts.AddonsDir sequentially.
// A failure in one addon is logged and counted, and the run continues; only
// root-level problems (missing addons dir, index page write) return an error.
func Run(opts Options) (Summary, error) {
	addons, skipped, err := addon.FindAddons(opts.AddonsDir, opts.DefaultInstallable)
	if err != nil {
		return Summary{}, err
	}
	summary := Summary{Skipped: skipped}

	composer := compose.NewComposer(compose.Metadata{
		Org:    opts.Org,
		Repo:   opts.Repo,
		Branch: opts.Branch,
	})

	var entries []htmlindex.Entry
	for _, a := range addons {
		fragments, err := fragment.Collect(a.Dir, fragment.LinkMeta{
			Org:    opts.Org,
			Repo:   opts.Repo,
			Branch: opts.Branch,
			Addon:  a.Name,
		})
		if err != nil {
			slog.Error("Fragment collection failed", logfields.Addon(a.Name), logfields.Error(err))
			summary.Failed++
			continue
		}

		if err := composer.Write(a, fragments); err != nil {
			slog.Error("Readme write failed", logfields.Addon(a.Name), logfields.Error(err))
			summary.Failed++
			continue
		}

		summary.Processed++
		slog.Info("Generated readme", logfields.Addon(a.Name))

		if opts.GenHTML {
			entries = append(entries, indexEntry(a, fragments))
		}
	}

	if opts.GenHTML {
		title := fmt.Sprintf("%s/%s addons", opts.Org, opts.Repo)
		if err := htmlindex.Generate(opts.AddonsDir, title, entries); err != nil {
			return summary, err
		}
	}

	slog.Info("Run completed",
		slog.Int("processed", summary.Processed),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed))
	return summary, nil
}

// indexEntry builds the listing row for a successfully processed addon. A
// Markdown description fragment becomes a rendered snippet; otherwise the
// manifest summary is used as plain text.
func indexEntry(a addon.Addon, fragments []fragment.Fragment) htmlindex.Entry {
	entry := htmlindex.Entry{
		Name: a.Name,
		Link: path.Join(a.Name, compose.OutputFile),
	}

	for _, f := range fragments {
		if f.Section.Name == "DESCRIPTION" && f.Markdown {
			if snippet, err := htmlindex.MarkdownSummary([]byte(f.Content)); err == nil {
				entry.Summary = snippet
				return entry
			}
		}
	}
	if a.Manifest.Summary != "" {
		entry.Summary = htmlindex.TextSummary(a.Manifest.Summary)
	}
	return entry
}
