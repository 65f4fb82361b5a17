// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/aibor/virtpack/internal/pack"
	"github.com/bytedance/sonic"
	"golang.org/x/sync/errgroup"
)

const jsonExt = ".json"

var (
	// ErrInvalidJSON is reported for JSON files with malformed content.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrPathInvalid is reported for files that are not reachable via the
	// pack's [fs.FS] view.
	ErrPathInvalid = errors.New("not a valid file system path")
)

// Config configures a verification run.
type Config struct {
	// Jobs is the maximum number of files checked concurrently. Values below
	// 1 mean [runtime.NumCPU].
	Jobs int
}

func (c Config) jobs() int {
	if c.Jobs < 1 {
		return runtime.NumCPU()
	}

	return c.Jobs
}

// Problem is a single problem found for a file.
type Problem struct {
	Path string
	Err  error
}

func (p Problem) String() string {
	return p.Path + ": " + p.Err.Error()
}

// Report is the result of a verification run.
type Report struct {
	// Problems found, ordered by path. A file may have more than one.
	Problems []Problem
}

// OK returns true if no problems were found.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// Run checks all files of the given pack.
//
// Problems with files are collected in the returned [Report]. An error is
// returned only if the context is done before all files are checked.
func Run(ctx context.Context, p *pack.Pack, cfg Config) (Report, error) {
	var (
		report Report
		mu     sync.Mutex
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.jobs())

	for _, key := range p.Paths() {
		if egCtx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err //nolint:wrapcheck
			}

			problems := check(p, key)
			if len(problems) == 0 {
				return nil
			}

			mu.Lock()
			report.Problems = append(report.Problems, problems...)
			mu.Unlock()

			return nil
		})
	}

	// The group's context is always done after Wait, so check the parent.
	err := eg.Wait()
	if err == nil {
		err = ctx.Err()
	}

	if err != nil {
		return Report{}, fmt.Errorf("verify: %w", err)
	}

	slices.SortStableFunc(report.Problems, func(a, b Problem) int {
		return strings.Compare(a.Path, b.Path)
	})

	return report, nil
}

func check(p *pack.Pack, key string) []Problem {
	var problems []Problem

	report := func(err error) {
		problems = append(problems, Problem{Path: key, Err: err})
	}

	if _, _, err := p.KeyIdentifier(key); err != nil {
		report(err)
	}

	if !fs.ValidPath(key) {
		report(ErrPathInvalid)
	}

	content, err := readFile(p, key)
	if err != nil {
		report(err)
		return problems
	}

	if path.Ext(key) == jsonExt && !sonic.Valid(content) {
		report(ErrInvalidJSON)
	}

	return problems
}

func readFile(p *pack.Pack, key string) ([]byte, error) {
	file, err := p.OpenFile(key)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	return content, nil
}
