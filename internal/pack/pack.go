// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/aibor/virtpack/internal/resource"
)

const (
	// DefaultPackFormat is the pack format reported in the pack metadata if
	// none is set with [WithPackFormat].
	DefaultPackFormat = 15

	// namespaceProbe is the path used for validating namespaces as complete
	// identifiers.
	namespaceProbe = "probe"

	separator = "/"
)

// Supplier produces the current content of a file. It is called anew each
// time the file is opened.
type Supplier func() (string, error)

// Text returns a [Supplier] that always returns the given content.
func Text(content string) Supplier {
	return func() (string, error) {
		return content, nil
	}
}

// TextFunc returns a [Supplier] for a producer that can not fail.
func TextFunc(fn func() string) Supplier {
	return func() (string, error) {
		return fn(), nil
	}
}

// Contents maps file paths to the [Supplier] of the file's content.
type Contents map[string]Supplier

// Option configures a [Pack].
type Option func(*Pack)

// WithHost sets the [resource.Host] that defines the identifier grammar and
// the resource type names. Default is [resource.DefaultHost].
func WithHost(host resource.Host) Option {
	return func(p *Pack) {
		p.host = host
	}
}

// WithPackFormat sets the pack format reported in the pack metadata.
func WithPackFormat(format int) Option {
	return func(p *Pack) {
		p.packFormat = format
	}
}

// WithLogger sets the logger used for reporting skipped resources. Default is
// [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pack) {
		p.logger = logger
	}
}

// Pack is a virtual resource pack.
//
// It is immutable once created. It is safe for concurrent use as long as the
// suppliers are.
type Pack struct {
	id         string
	namespaces []string
	contents   Contents
	paths      []string
	dirs       map[string][]string

	host       resource.Host
	packFormat int
	logger     *slog.Logger
}

// New creates a new [Pack].
//
// The id is used for diagnostics only. It does not have to be unique. Each of
// the namespaces must be valid according to the pack's [resource.Host].
// Otherwise, an error wrapping [ErrInvalidNamespace] is returned. Contents
// maps file paths to their [Supplier]. The map is copied, so later changes
// by the caller do not affect the pack.
func New(id string, namespaces []string, contents Contents, opts ...Option) (*Pack, error) {
	pack := &Pack{
		id:         id,
		host:       resource.DefaultHost{},
		packFormat: DefaultPackFormat,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(pack)
	}

	for _, namespace := range namespaces {
		err := validateNamespace(pack.host, namespace)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidNamespace, namespace, err)
		}
	}

	for path, supplier := range contents {
		if supplier == nil {
			return nil, &PathError{
				Op:   "new",
				Path: path,
				Err:  fmt.Errorf("%w: supplier is nil", ErrInvalidArgument),
			}
		}
	}

	pack.namespaces = slices.Compact(slices.Sorted(slices.Values(namespaces)))
	pack.contents = maps.Clone(contents)
	pack.paths = slices.Sorted(maps.Keys(contents))
	pack.dirs = dirIndex(pack.paths)

	return pack, nil
}

func validateNamespace(host resource.Host, namespace string) error {
	id, err := host.ParseIdentifier(namespace + ":" + namespaceProbe)
	if err != nil {
		return err //nolint:wrapcheck
	}

	// Catches namespaces that contain the namespace separator themselves.
	if id.Namespace != namespace {
		return resource.ErrNamespaceInvalid
	}

	return nil
}

// Name returns the display name of the pack.
func (p *Pack) Name() string {
	return p.id + " (virtual)"
}

// ID returns an identifier for the pack at the given index of a pack stack.
func (p *Pack) ID(index int) string {
	return fmt.Sprintf("virtual/%d_%s", index, p.id)
}

// PackFormat returns the pack format reported in the pack metadata.
func (p *Pack) PackFormat() int {
	return p.packFormat
}

// Close does nothing. There are no resources to release.
func (*Pack) Close() error {
	return nil
}

// Namespaces returns the namespaces the pack provides. The same namespaces are
// returned for any resource type.
func (p *Pack) Namespaces(_ resource.Type) []string {
	return slices.Clone(p.namespaces)
}

// Paths returns the paths of all files in lexical order.
func (p *Pack) Paths() []string {
	return slices.Clone(p.paths)
}

// ContainsFile checks if a file with exactly the given path exists.
func (p *Pack) ContainsFile(path string) bool {
	_, exists := p.contents[path]
	return exists
}

// OpenFile opens the file with exactly the given path for reading.
//
// The file's supplier is called on each invocation, so the content is always
// the current one. It returns a [PathError] wrapping [ErrFileNotExist] if
// there is no such file.
func (p *Pack) OpenFile(path string) (*File, error) {
	file, err := p.openRegular(path)
	if err != nil {
		return nil, &PathError{
			Op:   "open",
			Path: path,
			Err:  err,
		}
	}

	return file, nil
}

func (p *Pack) openRegular(path string) (*File, error) {
	supplier, exists := p.contents[path]
	if !exists {
		return nil, ErrFileNotExist
	}

	content, err := supplier()
	if err != nil {
		return nil, err
	}

	reader := strings.NewReader(content)

	file := &File{
		info: fileInfo{
			dirEntry: dirEntry{
				pack: p,
				name: path,
			},
			size: reader.Size(),
		},
		reader: reader,
	}

	return file, nil
}
