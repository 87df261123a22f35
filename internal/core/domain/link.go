package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Link declares a symlink inside the bottled app pointing back into the invoker directory.
type Link struct {
	// Source is relative to the invoker directory.
	Source string
	// Destination is relative to the cache directory.
	Destination string
}

// ParseLink parses "path" (same source and destination) or "source:destination".
func ParseLink(s string) (Link, error) {
	source, destination, found := strings.Cut(s, ":")
	if !found {
		destination = source
	}
	source = strings.TrimSpace(source)
	destination = strings.TrimSpace(destination)

	if source == "" || destination == "" {
		return Link{}, zerr.With(zerr.Wrap(ErrInvalidLink, "failed to parse link"), "link", s)
	}
	if !IsLocalDestination(destination) {
		return Link{}, zerr.With(zerr.Wrap(ErrInvalidLink, "link destination must stay inside the bottled app"), "link", s)
	}
	return Link{Source: source, Destination: filepath.Clean(destination)}, nil
}

// IsLocalDestination reports whether destination names a path strictly below
// the cache directory.
func IsLocalDestination(destination string) bool {
	clean := filepath.Clean(destination)
	return clean != "." && filepath.IsLocal(clean)
}

// ParseLinks parses every declaration in order.
func ParseLinks(specs []string) ([]Link, error) {
	links := make([]Link, 0, len(specs))
	for _, s := range specs {
		link, err := ParseLink(s)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}

// String returns the declaration form of the link.
func (l Link) String() string {
	if l.Source == l.Destination {
		return l.Source
	}
	return l.Source + ":" + l.Destination
}

// MarshalYAML renders the link in its declaration form.
func (l Link) MarshalYAML() (any, error) {
	return l.String(), nil
}
