package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager matches zerr.Error, which reports its own message without the chain.
type messager interface {
	Message() string
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the error chain. zerr errors contribute one entry
// each; the first foreign error contributes its full text and ends the walk.
// Metadata-only wrappers are folded into the neighbouring entry.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		if m.Message() == "" {
			if len(entries) > 0 {
				entries[len(entries)-1].Metadata = mergeMetadata(entries[len(entries)-1].Metadata, m.Metadata())
			} else {
				pending = mergeMetadata(pending, m.Metadata())
			}
			current = errors.Unwrap(current)
			continue
		}

		entries = append(entries, ErrorEntry{
			Message:  m.Message(),
			Metadata: mergeMetadata(m.Metadata(), pending),
		})
		pending = nil
		current = errors.Unwrap(current)
	}

	return entries
}

func mergeMetadata(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// formatErrorEntries renders entries as an "Error / Caused by" report.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
