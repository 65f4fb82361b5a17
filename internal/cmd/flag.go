// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/aibor/virtpack/internal/archive"
	"github.com/aibor/virtpack/internal/pack"
	"github.com/aibor/virtpack/internal/resource"
)

const (
	name = "virtpack"

	jobsMax = 256

	usageMessage = `Usage of 'virtpack':
    virtpack [flags...] manifest command [args...]

Commands:
    list          list all file paths of the pack
    namespaces    list the namespaces of the pack
    cat PATH...   print the content of the given files
    find          list resource identifiers (see -type, -prefix, -match)
    meta          print the pack metadata
    verify        check all files for problems
    export        write the pack as cpio archive (see -output, -compress)
    name          print name and ID of the pack (see -index)

The manifest may be a TOML, YAML or JSON file.

All virtpack flags can also be provided via environment variable VIRTPACK_ARGS:
    VIRTPACK_ARGS="-type=assets -debug" virtpack pack.toml find

All virtpack flags can also be provided via file ./.virtpack-args, with one
argument per line.
`
)

type flags struct {
	ManifestPath string
	Command      string
	CommandArgs  []string

	Type        resource.Type
	Prefix      string
	Match       string
	Depth       int
	Index       int
	Output      FilePath
	Compression archive.Compression
	Jobs        int

	Debug   bool
	Version bool
}

// filter returns the [pack.Filter] for the -match flag.
func (f *flags) filter() (pack.Filter, error) {
	if f.Match == "" {
		return pack.All(), nil
	}

	return pack.Glob(f.Match) //nolint:wrapcheck
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := &flags{}

	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(flagSet.Output(), usageMessage)
		fmt.Fprintln(flagSet.Output(), "\nFlags:")
		flagSet.PrintDefaults()
	}

	flagSet.TextVar(
		&flags.Type,
		"type",
		resource.TypeData,
		"resource type for namespaces and find: assets, data",
	)

	flagSet.StringVar(
		&flags.Prefix,
		"prefix",
		flags.Prefix,
		"path prefix for find, matched literally (add a trailing / for a "+
			"directory)",
	)

	flagSet.StringVar(
		&flags.Match,
		"match",
		flags.Match,
		"glob pattern the file name must match for find",
	)

	flagSet.Var(
		&LimitedIntValue{Value: &flags.Depth},
		"depth",
		"maximum path depth for find",
	)

	flagSet.Var(
		&LimitedIntValue{Value: &flags.Index},
		"index",
		"position of the pack in a pack stack, used for its ID",
	)

	flagSet.Var(
		&flags.Output,
		"output",
		"output file for export (default stdout)",
	)

	flagSet.TextVar(
		&flags.Compression,
		"compress",
		archive.CompressionNone,
		"compression for export: none, gzip, zstd",
	)

	flagSet.Var(
		&LimitedIntValue{Value: &flags.Jobs, Upper: jobsMax},
		"jobs",
		"number of files checked concurrently by verify (default number of CPUs)",
	)

	flagSet.BoolVar(
		&flags.Debug,
		"debug",
		flags.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&flags.Version,
		"version",
		flags.Version,
		"show version and exit",
	)

	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := flagSet.Parse(args)
	if err != nil {
		return nil, &ParseArgsError{msg: "flag parse", err: err}
	}

	if flags.Version {
		return flags, nil
	}

	fail := func(msg string, err error) error {
		err = &ParseArgsError{msg: msg, err: err}
		fmt.Fprintln(flagSet.Output(), err.Error())
		flagSet.Usage()

		return err
	}

	_, err = flags.filter()
	if err != nil {
		return nil, fail("match", err)
	}

	positionalArgs := flagSet.Args()

	// First positional argument is supposed to be the manifest, the second
	// one the command.
	if len(positionalArgs) < 2 { //nolint:mnd
		return nil, fail("no manifest and command given", ErrArgsMissing)
	}

	flags.ManifestPath, err = AbsoluteFilePath(positionalArgs[0])
	if err != nil {
		return nil, fail("manifest path", err)
	}

	flags.Command = positionalArgs[1]
	flags.CommandArgs = positionalArgs[2:]

	cmd, exists := commands[flags.Command]
	if !exists {
		return nil, fail(flags.Command, ErrCommandUnknown)
	}

	if len(flags.CommandArgs) < cmd.minArgs {
		return nil, fail(flags.Command, ErrArgsMissing)
	}

	return flags, nil
}
