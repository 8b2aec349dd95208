package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/genreadme/internal/config"
	"git.home.luguber.info/inful/genreadme/internal/gitinfo"
	"git.home.luguber.info/inful/genreadme/internal/logfields"
	"git.home.luguber.info/inful/genreadme/internal/pipeline"
	"git.home.luguber.info/inful/genreadme/internal/watch"
	"github.com/alecthomas/kong"
)

type generateFlags struct {
	OrgName   string `help:"Organization name interpolated into badge and repository links" placeholder:"TEXT"`
	RepoName  string `help:"Repository name, eg. server-tools" placeholder:"TEXT"`
	Branch    string `help:"Branch or series identifier embedded in links, eg. 16.0" placeholder:"TEXT"`
	AddonsDir string `short:"d" required:"" type:"existingdir" help:"Root directory containing the addon modules"`
	GenHTML   *bool  `negatable:"" help:"Generate an index.html listing page at the addons root"`
}

var CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Gen struct {
		generateFlags
	} `cmd:"" default:"withargs" help:"Generate README.rst for every installable addon"`

	Watch struct {
		generateFlags
	} `cmd:"" help:"Generate readmes, then regenerate whenever fragment files change"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("genreadme"),
		kong.Description("Assemble README.rst files for addon modules from fragment files in their readme folders."))

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	switch ctx.Command() {
	case "gen":
		opts, err := resolveOptions(CLI.Gen.generateFlags)
		if err != nil {
			slog.Error("Invalid options", logfields.Error(err))
			os.Exit(1)
		}
		if _, err := pipeline.Run(opts); err != nil {
			slog.Error("Generation failed", logfields.Error(err))
			os.Exit(1)
		}
	case "watch":
		opts, err := resolveOptions(CLI.Watch.generateFlags)
		if err != nil {
			slog.Error("Invalid options", logfields.Error(err))
			os.Exit(1)
		}
		if err := runWatch(opts); err != nil {
			slog.Error("Watch failed", logfields.Error(err))
			os.Exit(1)
		}
	}
}

// resolveOptions merges the flag values with the defaults file and, as a
// last resort, coordinates detected from the enclosing git repository. The
// three link coordinates are required; the run never starts without them.
func resolveOptions(flags generateFlags) (pipeline.Options, error) {
	defaults, err := config.LoadDefaults(flags.AddonsDir)
	if err != nil {
		return pipeline.Options{}, err
	}
	detected := gitinfo.Detect(flags.AddonsDir)

	opts := pipeline.Options{
		AddonsDir:          flags.AddonsDir,
		Org:                firstNonEmpty(flags.OrgName, defaults.OrgName, detected.Org),
		Repo:               firstNonEmpty(flags.RepoName, defaults.RepoName, detected.Repo),
		Branch:             firstNonEmpty(flags.Branch, defaults.Branch, detected.Branch),
		DefaultInstallable: true,
	}

	if defaults.GenHTML != nil {
		opts.GenHTML = *defaults.GenHTML
	}
	if flags.GenHTML != nil {
		opts.GenHTML = *flags.GenHTML
	}
	if defaults.DefaultInstallable != nil {
		opts.DefaultInstallable = *defaults.DefaultInstallable
	}

	for _, required := range []struct {
		flag  string
		value string
	}{
		{"--org-name", opts.Org},
		{"--repo-name", opts.Repo},
		{"--branch", opts.Branch},
	} {
		if required.value == "" {
			return pipeline.Options{}, fmt.Errorf(
				"missing required option %s (not given, not in %s, not detectable from git)",
				required.flag, config.DefaultsFile)
		}
	}
	return opts, nil
}

func runWatch(opts pipeline.Options) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	w, err := watch.New(opts)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
