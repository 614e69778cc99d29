// Package refs resolves inline proposal cross-references (":yep:`N`" and
// ":yep:`N#fragment`") to URLs for the configured builder mode.
package refs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JPEWdev/yeps/internal/errors"
)

// Builder modes for the downstream rendering pipeline.
const (
	BuilderHTML    = "html"
	BuilderDirHTML = "dirhtml"
)

// Resolver maps proposal numbers to URLs. The relative path depends on the
// builder mode and on whether the referring page lives under topic/.
type Resolver struct {
	// Builder is the rendering mode, BuilderHTML or BuilderDirHTML.
	Builder string
	// BaseURL is the canonical absolute site root, used for permanent links
	// in the API snapshot and feed.
	BaseURL string
}

// Relative returns the builder-relative URL for a proposal number. Dirhtml
// pages live one directory deeper, and topic sub-index pages one deeper
// still; each hop prepends "../".
func (r *Resolver) Relative(number int, fromTopicPage bool) string {
	var url string
	if r.Builder == BuilderDirHTML {
		url = "../" + fmt.Sprintf("yep-%04d/", number)
	} else {
		url = fmt.Sprintf("yep-%04d.html", number)
	}
	if fromTopicPage {
		url = "../" + url
	}
	return url
}

// Resolve parses a reference target of the form "N" or "N#fragment" and
// returns the resolved URL plus the default link title.
func (r *Resolver) Resolve(target string, fromTopicPage bool) (url, title string, err error) {
	numStr, fragment, _ := strings.Cut(target, "#")
	number, convErr := strconv.Atoi(numStr)
	if convErr != nil {
		return "", "", errors.New(errors.CategoryRender, errors.SeverityFatal,
			fmt.Sprintf("invalid YEP number %s", target))
	}
	url = r.Relative(number, fromTopicPage)
	if fragment != "" {
		url += "#" + fragment
	}
	return url, fmt.Sprintf("YEP %d", number), nil
}

// Canonical returns the permanent absolute URL for a proposal.
func (r *Resolver) Canonical(number int) string {
	base := strings.TrimSuffix(r.BaseURL, "/")
	return fmt.Sprintf("%s/yep-%04d/", base, number)
}
