// Package api exports the machine-readable yeps.json metadata snapshot.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JPEWdev/yeps/internal/errors"
	"github.com/JPEWdev/yeps/internal/refs"
	"github.com/JPEWdev/yeps/internal/yep"
)

// Record is the flat per-proposal metadata map. Field order is fixed and
// user-visible; it is not alphabetical.
type Record struct {
	Number        int      `json:"number"`
	Title         string   `json:"title"`
	Authors       string   `json:"authors"`
	DiscussionsTo string   `json:"discussions_to"`
	Status        string   `json:"status"`
	Type          string   `json:"type"`
	Topic         string   `json:"topic"`
	Created       string   `json:"created"`
	YoctoVersion  string   `json:"yocto_version"`
	PostHistory   string   `json:"post_history"`
	Resolution    string   `json:"resolution"`
	Requires      string   `json:"requires"`
	Replaces      string   `json:"replaces"`
	SupersededBy  string   `json:"superseded_by"`
	AuthorNames   []string `json:"author_names"`
	URL           string   `json:"url"`
}

// RecordFor flattens one proposal for the snapshot.
func RecordFor(y *yep.YEP, resolver *refs.Resolver) Record {
	return Record{
		Number:        y.Number,
		Title:         y.Title,
		Authors:       y.JoinedAuthorNames(),
		DiscussionsTo: y.DiscussionsTo,
		Status:        y.Status,
		Type:          y.Type,
		Topic:         strings.Join(y.SortedTopics(), ", "),
		Created:       y.Created,
		YoctoVersion:  y.YoctoVersion,
		PostHistory:   y.PostHistory,
		Resolution:    y.Resolution,
		Requires:      y.Requires,
		Replaces:      y.Replaces,
		SupersededBy:  y.SupersededBy,
		AuthorNames:   y.AuthorNames(),
		URL:           resolver.Canonical(y.Number),
	}
}

// Snapshot serializes the full record set as one JSON object keyed by
// proposal number, ascending, with one-space indentation.
func Snapshot(yeps []*yep.YEP, resolver *refs.Resolver) ([]byte, error) {
	sorted := make([]*yep.YEP, len(yeps))
	copy(sorted, yeps)
	yep.SortByNumber(sorted)

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, y := range sorted {
		entry, err := marshalRecord(RecordFor(y, resolver))
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryInternal, errors.SeverityFatal,
				fmt.Sprintf("marshal YEP %d", y.Number))
		}
		fmt.Fprintf(&buf, " \"%d\": %s", y.Number, entry)
		if i < len(sorted)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

func marshalRecord(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(" ", " ")
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteSnapshot writes the snapshot to both canonical locations: the
// top-level yeps.json and the api/ sub-path.
func WriteSnapshot(yeps []*yep.YEP, outDir string, resolver *refs.Resolver) error {
	data, err := Snapshot(yeps, resolver)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(outDir, "api"), 0o755); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "create api directory")
	}
	for _, path := range []string{
		filepath.Join(outDir, "yeps.json"),
		filepath.Join(outDir, "api", "yeps.json"),
	} {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "write "+path)
		}
	}
	return nil
}
