// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pack

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/aibor/virtpack/internal/resource"
)

// Type, namespace and at least one path segment.
const minKeySegments = 3

// FindResources returns the identifiers of all files of the given resource
// type whose namespace relative path starts with pathPrefix and whose file
// name matches the filter. A nil filter matches any name.
//
// The prefix is matched literally, so "recipes" matches "recipes/a.json" as
// well as "recipes_extra/b.json". Add a trailing "/" to match a directory
// only. maxDepth is accepted for compatibility with other packs, but not
// enforced.
//
// Files that do not result in valid identifiers are logged and skipped. The
// order of the returned identifiers is not specified.
func (p *Pack) FindResources(
	typ resource.Type,
	pathPrefix string,
	_ int,
	filter Filter,
) []resource.Identifier {
	if filter == nil {
		filter = All()
	}

	ids := []resource.Identifier{}
	typeName := p.host.TypeName(typ)

	for _, namespace := range p.namespaces {
		prefix := fmt.Sprintf("%s/%s/%s", typeName, namespace, pathPrefix)

		for _, key := range p.paths {
			if !strings.HasPrefix(key, prefix) {
				continue
			}

			segments := strings.Split(key, separator)
			if !filter(segments[len(segments)-1]) {
				continue
			}

			id, err := p.identifier(namespace, segments)
			if err != nil {
				p.logger.Error("Invalid identifier found in virtual pack",
					slog.String("pack", p.Name()),
					slog.String("path", key),
					slog.Any("error", err),
				)

				continue
			}

			ids = append(ids, id)
		}
	}

	return ids
}

// KeyIdentifier splits the given file path into the resource type name and
// the identifier of the resource, the same way [Pack.FindResources] does.
//
// It returns an error wrapping [ErrKeyMalformed] if the path has too few
// segments, [ErrNamespaceUnknown] if the namespace is not provided by the pack
// or the host's error if the identifier is invalid.
func (p *Pack) KeyIdentifier(key string) (string, resource.Identifier, error) {
	segments := strings.Split(key, separator)
	if len(segments) < minKeySegments {
		return "", resource.Identifier{}, fmt.Errorf("%w: %s", ErrKeyMalformed, key)
	}

	typeName, namespace := segments[0], segments[1]

	_, found := slices.BinarySearch(p.namespaces, namespace)
	if !found {
		return "", resource.Identifier{}, fmt.Errorf("%w: %s", ErrNamespaceUnknown, namespace)
	}

	id, err := p.identifier(namespace, segments)
	if err != nil {
		return "", resource.Identifier{}, err
	}

	return typeName, id, nil
}

func (p *Pack) identifier(namespace string, segments []string) (resource.Identifier, error) {
	if len(segments) < minKeySegments {
		return resource.Identifier{}, fmt.Errorf("%w: %d segments",
			ErrKeyMalformed, len(segments))
	}

	path := strings.Join(segments[minKeySegments-1:], separator)

	id, err := p.host.NewIdentifier(namespace, path)
	if err != nil {
		return resource.Identifier{}, fmt.Errorf("identifier: %w", err)
	}

	return id, nil
}
