package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the
// chain, as zerr.Error does.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

type stackTracer interface {
	StackTrace() string
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain of err. zerr links contribute their own
// message and metadata; the first standard error ends the walk with its full
// text. Links without a message pass their metadata on to the next entry.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		meta := map[string]any{}
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}
		if pending != nil {
			maps.Copy(meta, pending)
			pending = nil
		}

		if m.Message() == "" {
			pending = meta
		} else {
			entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: meta})
		}
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as an "Error:" line followed by a
// "Caused by:" list. Metadata is printed under its entry, sorted by key.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		var first, indent string
		if i == 0 {
			first, indent = "Error: ", "       "
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			first, indent = "    → ", "      "
		}

		lines = append(lines, first+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}

// Headline returns the first message of the chain of err, without causes or
// metadata.
func Headline(err error) string {
	if err == nil {
		return ""
	}
	entries := collectErrorEntries(err)
	if len(entries) == 0 {
		return err.Error()
	}
	return entries[0].Message
}

// FormatError renders err the way Error logs it, followed by the first stack
// trace captured anywhere in the chain.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	out := formatErrorEntries(collectErrorEntries(err))
	for current := err; current != nil; current = errors.Unwrap(current) {
		if st, ok := current.(stackTracer); ok {
			if trace := strings.TrimSpace(st.StackTrace()); trace != "" {
				return out + "\n\nStack trace:\n" + trace
			}
		}
	}
	return out
}
