package feed

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractAbstract returns the first paragraph of the section titled
// "Abstract". If there is no such section, it falls back to the first
// paragraph of the "Introduction" section; failing that it returns "".
// Section underlines in the source parse as setext headings.
func ExtractAbstract(body []byte) string {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	introduction := ""
	inAbstract := false
	current := ""
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *gmast.Heading:
			if inAbstract {
				// Abstract section ended without a paragraph.
				return ""
			}
			current = nodeText(node, body)
			inAbstract = current == "Abstract"
		case *gmast.Paragraph:
			para := collapseWhitespace(nodeText(node, body))
			if inAbstract {
				return para
			}
			if current == "Introduction" && introduction == "" {
				introduction = para
			}
		}
	}
	return introduction
}

// TruncateAbstract shortens an abstract for use as a page description.
func TruncateAbstract(abstract string) string {
	if len(abstract) > 256 {
		return abstract[:253] + "..."
	}
	return abstract
}

// nodeText collects the plain text content of a node's subtree.
func nodeText(n gmast.Node, source []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(n, func(child gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *gmast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteString("\n")
			}
		case *gmast.String:
			sb.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
