package yep

import (
	"errors"
	"strings"
)

// Author is a value type identifying one proposal author. Identity is by
// exact full-name string equality across documents.
type Author struct {
	FullName string
	Email    string
}

// jrPlaceholder protects generational suffixes from being mis-split as an
// author separator.
const jrPlaceholder = ",Jr"

var errEmptyAuthorName = errors.New("author name is empty")

// parseAuthors splits a raw Author header value into its authors, preserving
// declaration order. Embedded newlines are folded to spaces, the substring
// ", Jr" is protected from the ", " separator split and restored afterwards,
// emails are lower-cased, and an empty resulting name is an error.
func parseAuthors(data string) ([]Author, error) {
	data = strings.ReplaceAll(data, "\n", " ")
	data = strings.ReplaceAll(data, ", Jr", jrPlaceholder)
	data = strings.TrimRight(data, " \t")
	data = strings.TrimSuffix(data, ",")

	var authors []Author
	for _, entry := range strings.Split(data, ", ") {
		var name, email string
		if strings.Contains(entry, " <") {
			entry = strings.TrimSuffix(entry, ">")
			name, email, _ = strings.Cut(entry, " <")
		} else {
			name = entry
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errEmptyAuthorName
		}
		name = strings.ReplaceAll(name, jrPlaceholder, ", Jr")

		authors = append(authors, Author{FullName: name, Email: strings.ToLower(email)})
	}
	return authors, nil
}
