package feed

import (
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/JPEWdev/yeps/internal/errors"
	"github.com/JPEWdev/yeps/internal/refs"
	"github.com/JPEWdev/yeps/internal/yep"
)

// feedSize is the fixed number of most recent proposals in the feed.
const feedSize = 10

// rfc2822GMT is the pubDate / lastBuildDate layout.
const rfc2822GMT = "Mon, 02 Jan 2006 15:04:05 GMT"

// Generator produces the RSS feed from rendered document trees.
type Generator struct {
	Cache    *DocCache
	Resolver *refs.Resolver

	// Channel metadata.
	Title       string
	Link        string
	Description string

	// Now is injectable for deterministic tests; defaults to time.Now.
	Now func() time.Time
}

type candidate struct {
	path    string
	created time.Time
}

// Generate renders the feed document for the trees under docDir.
func (g *Generator) Generate(docDir string) (string, error) {
	paths, err := filepath.Glob(filepath.Join(docDir, "yep-????.rst"))
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryFeed, errors.SeverityFatal, "scan document trees")
	}

	candidates := make([]candidate, 0, len(paths))
	for _, path := range paths {
		created, err := g.creation(path)
		if err != nil {
			return "", err
		}
		candidates = append(candidates, candidate{path: path, created: created})
	}
	// Stable: ties keep path order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].created.Before(candidates[j].created)
	})
	if len(candidates) > feedSize {
		candidates = candidates[len(candidates)-feedSize:]
	}

	var items []string
	for i := len(candidates) - 1; i >= 0; i-- {
		item, ok, err := g.item(candidates[i])
		if err != nil {
			return "", err
		}
		if ok {
			items = append(items, item)
		}
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	lastBuildDate := now().UTC().Format(rfc2822GMT)

	return fmt.Sprintf(`<?xml version='1.0' encoding='UTF-8'?>
<rss xmlns:atom="http://www.w3.org/2005/Atom" xmlns:content="http://purl.org/rss/1.0/modules/content/" version="2.0">
  <channel>
    <title>%s</title>
    <link>%s</link>
    <description>%s</description>
    <atom:link href="%syeps.rss" rel="self"/>
    <docs>https://cyber.harvard.edu/rss/rss.html</docs>
    <language>en</language>
    <lastBuildDate>%s</lastBuildDate>
%s
  </channel>
</rss>
`, escapeXML(g.Title), escapeXML(g.Link), escapeXML(g.Description), g.Link, lastBuildDate, strings.Join(items, "\n")), nil
}

// creation parses the record's Created field. Unparsable dates sort as the
// minimum date; they never fail the feed.
func (g *Generator) creation(path string) (time.Time, error) {
	createdStr, err := g.Cache.Get(path, "Created")
	if err != nil {
		return time.Time{}, err
	}
	created, parseErr := time.Parse(yep.CreatedFormat, createdStr)
	if parseErr != nil {
		return time.Time{}, nil
	}
	return created, nil
}

// item renders one feed item. A tree whose own number field is not an
// integer is skipped, not fatal.
func (g *Generator) item(c candidate) (string, bool, error) {
	numStr, err := g.Cache.Get(c.path, "YEP")
	if err != nil {
		return "", false, err
	}
	number, convErr := strconv.Atoi(numStr)
	if convErr != nil {
		return "", false, nil
	}

	title, err := g.Cache.Get(c.path, "Title")
	if err != nil {
		return "", false, err
	}
	abstract, err := g.Cache.Get(c.path, "Abstract")
	if err != nil {
		return "", false, err
	}
	author, err := g.Cache.Get(c.path, "Author")
	if err != nil {
		return "", false, err
	}

	url := g.Resolver.Canonical(number)
	item := fmt.Sprintf(`    <item>
      <title>YEP %d: %s</title>
      <link>%s</link>
      <description>%s</description>
      <author>%s</author>
      <guid isPermaLink="true">%s</guid>
      <pubDate>%s</pubDate>
    </item>`,
		number, escapeXML(title),
		escapeXML(url),
		escapeXML(abstract),
		escapeXML(joinAuthors(author)),
		url,
		c.created.UTC().Format(rfc2822GMT),
	)
	return item, true, nil
}

// joinAuthors applies address-list parsing only when the raw author string
// looks like it contains email addresses; otherwise the raw string is kept.
func joinAuthors(author string) string {
	if !strings.Contains(author, "@") && !strings.Contains(author, " at ") {
		return author
	}
	addresses, err := mail.ParseAddressList(author)
	if err != nil {
		return author
	}
	parts := make([]string, len(addresses))
	for i, addr := range addresses {
		parts[i] = fmt.Sprintf("%s (%s)", addr.Name, addr.Address)
	}
	return strings.Join(parts, ", ")
}

// WriteFeed renders the feed and writes it to outDir/yeps.rss.
func (g *Generator) WriteFeed(docDir, outDir string) error {
	output, err := g.Generate(docDir)
	if err != nil {
		return err
	}
	path := filepath.Join(outDir, "yeps.rss")
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "write "+path)
	}
	return nil
}

// escapeXML escapes the XML special characters, leaving quotes alone as the
// values are element content, not attributes.
func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}

var xmlReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
