package yep

import (
	"strings"
)

// headerBlock holds the parsed RFC-2822-style header block of a YEP source
// file. Field names are case-sensitive; only the first occurrence of a field
// is kept. Folded continuation lines are joined with a newline so callers can
// decide how to collapse them.
type headerBlock struct {
	values map[string]string
	order  []string
}

// parseHeaderBlock reads `Field-Name: value` pairs from the top of the
// document. The block ends at the first blank line. Continuation lines
// (leading whitespace) extend the previous field's value.
//
// The stdlib textproto reader is deliberately not used here: it canonicalizes
// field-name case, while the YEP format requires exact, case-sensitive names
// ("YEP", not "Yep").
func parseHeaderBlock(text string) *headerBlock {
	h := &headerBlock{values: make(map[string]string)}

	var current string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			break
		}

		if current != "" && (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) {
			h.values[current] += "\n " + strings.TrimSpace(line)
			continue
		}

		name, value, found := strings.Cut(line, ":")
		if !found || name == "" || strings.ContainsAny(name, " \t") {
			// Not a header line; the block is over.
			break
		}
		current = name
		if _, seen := h.values[name]; seen {
			// First occurrence wins.
			continue
		}
		h.values[name] = strings.TrimSpace(value)
		h.order = append(h.order, name)
	}

	return h
}

// HeaderFields returns a document's header fields with folded continuation
// lines collapsed to single spaces. Used by consumers (the feed generator)
// that need raw field access without full record validation.
func HeaderFields(text []byte) map[string]string {
	h := parseHeaderBlock(string(text))
	fields := make(map[string]string, len(h.order))
	for _, name := range h.order {
		fields[name] = collapseFolds(h.values[name])
	}
	return fields
}

// get returns the value of a header, or "" when absent.
func (h *headerBlock) get(name string) string {
	return h.values[name]
}

// has reports whether a header is present.
func (h *headerBlock) has(name string) bool {
	_, ok := h.values[name]
	return ok
}
