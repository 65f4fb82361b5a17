// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/aibor/virtpack/internal/manifest"
	"github.com/aibor/virtpack/internal/pack"
)

const localConfigFile = ".virtpack-args"

// IO provides input and output details for the command.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

func newFlags(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func loadPack(manifestPath string) (*pack.Pack, error) {
	dir, file := filepath.Split(manifestPath)
	fsys := os.DirFS(dir)

	m, err := manifest.Load(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}

	p, err := m.Pack(fsys)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", file, err)
	}

	slog.Debug("Loaded pack",
		slog.String("manifest", manifestPath),
		slog.String("pack", p.Name()),
		slog.Int("files", len(p.Paths())),
	)

	return p, nil
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	p, err := loadPack(flags.ManifestPath)
	if err != nil {
		return err
	}
	defer p.Close()

	err = commands[flags.Command].run(ctx, p, flags, cfg.Stdout)
	if err != nil {
		return fmt.Errorf("%s: %w", flags.Command, err)
	}

	return nil
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	slog.Error(err.Error())
	return 1
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags, err := newFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.Debug)

	if flags.Version {
		buildInfo, err := getBuildInfo()
		if err != nil {
			slog.Error(err.Error())
			return -1
		}

		fmt.Fprintf(cfg.Stdout, "Version: %s\n", buildInfo.Main.Version)

		return 0
	}

	err = run(ctx, flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}
