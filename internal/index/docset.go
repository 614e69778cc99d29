package index

import (
	"os"
	"path/filepath"

	"github.com/JPEWdev/yeps/internal/errors"
)

// DocSet tracks the synthesized index documents handed to the downstream
// rendering pipeline: each document is written as source text into the source
// directory and its logical name recorded in both the to-be-built list and
// the found-documents set.
type DocSet struct {
	srcDir string
	names  []string
	found  map[string]bool
}

// NewDocSet creates a DocSet rooted at the source directory.
func NewDocSet(srcDir string) *DocSet {
	return &DocSet{srcDir: srcDir, found: make(map[string]bool)}
}

// Add writes a synthesized document under its logical name (path separators
// allowed, extension appended) and registers it. It returns the written path.
func (d *DocSet) Add(name, text string) (string, error) {
	path := filepath.Join(d.srcDir, name+".rst")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "create directory for "+name)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "write "+path)
	}
	d.names = append(d.names, name)
	d.found[name] = true
	return path, nil
}

// Names returns the logical names in registration order.
func (d *DocSet) Names() []string {
	return d.names
}

// Found returns the found-documents set.
func (d *DocSet) Found() map[string]bool {
	return d.found
}
