// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/virtpack/internal/archive"
	"github.com/aibor/virtpack/internal/metadata"
	"github.com/aibor/virtpack/internal/pack"
	"github.com/aibor/virtpack/internal/verify"
	"github.com/bytedance/sonic"
)

type command struct {
	minArgs int
	run     func(ctx context.Context, p *pack.Pack, flags *flags, stdout io.Writer) error
}

var commands = map[string]command{
	"list":       {run: listPaths},
	"namespaces": {run: listNamespaces},
	"cat":        {run: catFiles, minArgs: 1},
	"find":       {run: findResources},
	"meta":       {run: printMetadata},
	"verify":     {run: verifyPack},
	"export":     {run: exportPack},
	"name":       {run: printName},
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		_, err := fmt.Fprintln(w, line)
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}

	return nil
}

func listPaths(_ context.Context, p *pack.Pack, _ *flags, stdout io.Writer) error {
	return printLines(stdout, p.Paths())
}

func listNamespaces(_ context.Context, p *pack.Pack, flags *flags, stdout io.Writer) error {
	return printLines(stdout, p.Namespaces(flags.Type))
}

func catFiles(_ context.Context, p *pack.Pack, flags *flags, stdout io.Writer) error {
	for _, path := range flags.CommandArgs {
		err := catFile(p, path, stdout)
		if err != nil {
			return err
		}
	}

	return nil
}

func catFile(p *pack.Pack, path string, stdout io.Writer) error {
	file, err := p.OpenFile(path)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer file.Close()

	_, err = io.Copy(stdout, file)
	if err != nil {
		return fmt.Errorf("copy %s: %w", path, err)
	}

	return nil
}

func findResources(_ context.Context, p *pack.Pack, flags *flags, stdout io.Writer) error {
	filter, err := flags.filter()
	if err != nil {
		return err
	}

	ids := p.FindResources(flags.Type, flags.Prefix, flags.Depth, filter)

	lines := make([]string, len(ids))
	for idx, id := range ids {
		lines[idx] = id.String()
	}

	return printLines(stdout, lines)
}

func printMetadata(_ context.Context, p *pack.Pack, _ *flags, stdout io.Writer) error {
	section, ok := pack.ParseMetadata(p, metadata.PackReader{})
	if !ok {
		return ErrMetadataMissing
	}

	doc := map[string]metadata.PackSection{
		metadata.PackSectionKey: section,
	}

	data, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	return printLines(stdout, []string{string(data)})
}

func verifyPack(ctx context.Context, p *pack.Pack, flags *flags, stdout io.Writer) error {
	report, err := verify.Run(ctx, p, verify.Config{Jobs: flags.Jobs})
	if err != nil {
		return err //nolint:wrapcheck
	}

	lines := make([]string, len(report.Problems))
	for idx, problem := range report.Problems {
		lines[idx] = problem.String()
	}

	err = printLines(stdout, lines)
	if err != nil {
		return err
	}

	if !report.OK() {
		return fmt.Errorf("%w: %d", ErrProblemsFound, len(report.Problems))
	}

	return nil
}

func exportPack(_ context.Context, p *pack.Pack, flags *flags, stdout io.Writer) error {
	if flags.Output.IsStdio() {
		return archive.Write(stdout, p, flags.Compression) //nolint:wrapcheck
	}

	file, err := os.Create(string(flags.Output))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	err = archive.Write(file, p, flags.Compression)
	if err != nil {
		_ = file.Close()
		_ = os.Remove(file.Name())

		return err //nolint:wrapcheck
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	slog.Debug("Exported pack",
		slog.String("pack", p.Name()),
		slog.String("path", file.Name()),
		slog.String("compression", flags.Compression.String()),
	)

	return nil
}

func printName(_ context.Context, p *pack.Pack, flags *flags, stdout io.Writer) error {
	return printLines(stdout, []string{p.Name(), p.ID(flags.Index)})
}
