package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zcohort/internal/cli"
	"github.com/zarlcorp/zcohort/internal/config"
	"github.com/zarlcorp/zcohort/internal/corpus"
	"github.com/zarlcorp/zcohort/internal/identity"
	"github.com/zarlcorp/zcohort/internal/tui"
	"golang.org/x/term"
)

// version is set at build time via ldflags.
var version = "dev"

const tuiCohortSize = 30

func main() {
	app := zapp.New(zapp.WithName("zcohort"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "zcohort: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg, args, err = config.ParseArgs(cfg, args)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	profile, err := loadProfile(cfg)
	if err != nil {
		return err
	}

	var opts []identity.Option
	if cfg.Seed != 0 {
		opts = append(opts, identity.WithSeed(cfg.Seed))
	}
	gen := identity.New(corpus.Load(), opts...)

	if len(args) > 0 && args[0] == "version" {
		fmt.Printf("zcohort %s\n", version)
		return nil
	}

	if len(args) == 0 && term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runTUI(ctx, gen, profile); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	}

	cmd := "identity"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	r := &cli.Runner{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Gen:     gen,
		Profile: profile,
		Domain:  cfg.Domain,
		FS:      zfilesystem.NewOSFileSystem("."),
	}
	if err := r.Run(cmd, args); err != nil {
		if errors.Is(err, cli.ErrUnknownCommand) {
			return fmt.Errorf("%w (try identity, cohort, assignment or validate)", err)
		}
		return err
	}
	return nil
}

// loadProfile reads the configured profile relative to its own directory.
func loadProfile(cfg config.Config) (identity.Profile, error) {
	dir, name := ".", cfg.Profile
	if name != "" {
		dir, name = filepath.Split(filepath.Clean(name))
		if dir == "" {
			dir = "."
		}
	}
	cfg.Profile = name
	return config.ResolveProfile(cfg, zfilesystem.NewOSFileSystem(dir))
}

func runTUI(ctx context.Context, gen *identity.Generator, profile identity.Profile) error {
	m := tui.New(version, gen, profile, tuiCohortSize)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
