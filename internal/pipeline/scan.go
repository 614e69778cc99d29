package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/JPEWdev/yeps/internal/errors"
	"github.com/JPEWdev/yeps/internal/yep"
)

// ScanSources parses every proposal document in dir, returning records sorted
// ascending by number. Document zero (yep-0000*) is regenerated by the
// pipeline and excluded from the scan. The first invalid document aborts the
// scan: no partial registry is ever returned.
func ScanSources(dir string) ([]*yep.YEP, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "read source directory "+dir)
	}

	var yeps []*yep.YEP
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "yep-0000") {
			continue // Skip pre-existing YEP 0 files
		}
		if ok, _ := filepath.Match("yep-????.rst", name); !ok {
			continue
		}
		y, err := yep.ParseFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		yeps = append(yeps, y)
	}

	yep.SortByNumber(yeps)
	return yeps, nil
}
