// Package feed produces the yeps.rss syndication feed of the most recently
// created proposals, reading from rendered document trees through a
// path-keyed cache.
package feed

import (
	"bytes"
	"os"

	"github.com/JPEWdev/yeps/internal/errors"
	"github.com/JPEWdev/yeps/internal/excerptcache"
	"github.com/JPEWdev/yeps/internal/yep"
)

// Fields is the fixed set of named fields extracted from one document tree,
// including the derived Abstract.
type Fields map[string]string

// Loader loads a document tree and extracts its fields. Implementations are
// expected to be expensive; the DocCache ensures one load per path per run.
type Loader interface {
	Load(path string) (Fields, error)
}

// DocCache memoizes tree loads by path. It is constructed per run and
// discarded at run end; the run is single-threaded, so no locking.
type DocCache struct {
	loader  Loader
	entries map[string]Fields
}

// NewDocCache creates a cache around the given loader.
func NewDocCache(loader Loader) *DocCache {
	return &DocCache{loader: loader, entries: make(map[string]Fields)}
}

// Get returns the named field of the document at path, loading the tree on
// first access. A field the document lacks is the empty string.
func (c *DocCache) Get(path, field string) (string, error) {
	fields, ok := c.entries[path]
	if !ok {
		var err error
		fields, err = c.loader.Load(path)
		if err != nil {
			return "", err
		}
		c.entries[path] = fields
	}
	return fields[field], nil
}

// TreeLoader parses a document into its header fields and abstract. When an
// excerpt store is attached, abstracts for unchanged content are served from
// it instead of re-parsing the body.
type TreeLoader struct {
	// Excerpts is optional; nil disables persistent caching.
	Excerpts *excerptcache.Store
}

// Load implements Loader.
func (l *TreeLoader) Load(path string) (Fields, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryFeed, errors.SeverityFatal, "load document tree "+path)
	}

	fields := Fields(yep.HeaderFields(content))
	fields["Abstract"] = l.abstract(content)
	return fields, nil
}

func (l *TreeLoader) abstract(content []byte) string {
	var key string
	if l.Excerpts != nil {
		key = excerptcache.Key(content)
		if excerpt, ok, err := l.Excerpts.Get(key); err == nil && ok {
			return excerpt
		}
	}

	abstract := ExtractAbstract(documentBody(content))
	if l.Excerpts != nil {
		// Cache write failures are soft; the abstract was computed anyway.
		_ = l.Excerpts.Put(key, abstract)
	}
	return abstract
}

// documentBody returns the text following the header block's first blank line.
func documentBody(content []byte) []byte {
	if i := bytes.Index(content, []byte("\n\n")); i >= 0 {
		return content[i+2:]
	}
	return nil
}
