// Package index renders the synthesized YEP index documents: the YEP 0
// master index, the numerical index, and per-topic sub-indices.
package index

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/JPEWdev/yeps/internal/classify"
	"github.com/JPEWdev/yeps/internal/yep"
)

// Header is the RFC-2822 header block of the regenerated YEP 0 document.
const Header = `YEP: 0
Title: Index of Yocto Enhancement Proposals (YEPs)
Author: The YEP Editors
Status: Active
Type: Informational
Content-Type: text/x-rst
Created: 13-Jul-2000
`

// Intro is the introduction section of the master index.
const Intro = `This YEP contains the index of all Yocto Enhancement Proposals,
known as YEPs.  YEP numbers are :yep:` + "`assigned <1#yep-editors>`" + `
by the YEP editors, and once assigned are never changed.  The
` + "`version control history <https://github.com/JPEWdev/yeps>`_" + ` of
the YEP texts represent their historical record.
`

// Options selects which master-index-only sections a rendering emits.
// Sub-indices use the zero value.
type Options struct {
	TopicsSection             bool
	APISection                bool
	NumericalLink             bool
	OwnerRoster               bool
	ReservedTable             bool
	EmptyCategoryPlaceholders bool
}

// MasterOptions enables every section for the YEP 0 master index.
func MasterOptions() Options {
	return Options{
		TopicsSection:             true,
		APISection:                true,
		NumericalLink:             true,
		OwnerRoster:               true,
		ReservedTable:             true,
		EmptyCategoryPlaceholders: true,
	}
}

// Writer emits index documents as RST text. Reserved numbers, sub-index
// topics, and the builder mode are immutable configuration fixed at
// construction.
type Writer struct {
	output   []string
	reserved map[int]string
	topics   map[string]string
	builder  string
}

// NewWriter creates a Writer. reserved maps set-aside YEP numbers to their
// claimants; topics maps sub-index topic keys to extra descriptions; builder
// is the rendering mode ("html" or "dirhtml").
func NewWriter(reserved map[int]string, topics map[string]string, builder string) *Writer {
	return &Writer{reserved: reserved, topics: topics, builder: builder}
}

func (w *Writer) emitText(content string) {
	w.output = append(w.output, content)
}

func (w *Writer) emitNewline() {
	w.output = append(w.output, "")
}

func (w *Writer) emitTitle(text, symbol string) {
	w.output = append(w.output, text)
	w.output = append(w.output, strings.Repeat(symbol, utf8.RuneCountInString(text)))
	w.emitNewline()
}

func (w *Writer) emitSubtitle(text string) {
	w.emitTitle(text, "-")
}

func (w *Writer) emitAuthorTableSeparator(maxNameLen int) {
	w.output = append(w.output, strings.Repeat("=", maxNameLen)+"  "+strings.Repeat("=", len("email address")))
}

func (w *Writer) emitColumnHeaders(includeVersion bool) {
	w.emitText(".. list-table::")
	w.emitText("   :header-rows: 1")
	w.emitText("   :widths: auto")
	w.emitText("   :class: yep-zero-table")
	w.emitNewline()
	w.emitText("   * - ")
	w.emitText("     - YEP")
	w.emitText("     - Title")
	w.emitText("     - Authors")
	if includeVersion {
		w.emitText("     - ") // for Yocto-Version
	}
}

func (w *Writer) emitRow(shorthand string, number int, title, authors string, yoctoVersion *string) {
	w.emitText(fmt.Sprintf("   * - %s", shorthand))
	w.emitText(fmt.Sprintf("     - :yep:`%d <%d>`", number, number))
	w.emitText(fmt.Sprintf("     - :yep:`%s <%d>`", strings.ReplaceAll(title, "`", ""), number))
	w.emitText(fmt.Sprintf("     - %s", authors))
	if yoctoVersion != nil {
		w.emitText(fmt.Sprintf("     - %s", *yoctoVersion))
	}
}

func (w *Writer) emitTable(yeps []*yep.YEP) {
	includeVersion := false
	for _, y := range yeps {
		if y.YoctoVersion != "" {
			includeVersion = true
			break
		}
	}
	w.emitColumnHeaders(includeVersion)
	for _, y := range yeps {
		var version *string
		if includeVersion {
			v := y.YoctoVersion
			version = &v
		}
		w.emitRow(y.Shorthand(), y.Number, y.Title, y.JoinedAuthorNames(), version)
	}
}

func (w *Writer) emitCategory(label string, yeps []*yep.YEP) {
	w.emitSubtitle(label)
	w.emitTable(yeps)
	w.emitNewline()
}

// WriteNumericalIndex renders the table of all YEPs ordered by number.
// Callers pass the record set sorted ascending by number.
func (w *Writer) WriteNumericalIndex(yeps []*yep.YEP) string {
	w.emitText(".. _numerical-index:")
	w.emitNewline()

	w.emitTitle("Numerical Index", "=")
	w.emitTable(yeps)
	w.emitNewline()

	return strings.Join(w.output, "\n")
}

// WriteIndex renders a categorized index document: the master index with
// MasterOptions, or a sub-index with the zero Options. header and intro are
// the document's metadata block and introduction text.
func (w *Writer) WriteIndex(yeps []*yep.YEP, header, intro string, opts Options) (string, error) {
	w.emitText(header)
	w.emitNewline()

	if len(yeps) == 0 {
		return strings.Join(w.output, "\n"), nil
	}

	w.emitTitle("Introduction", "=")
	w.emitText(intro)
	w.emitNewline()

	if opts.TopicsSection {
		w.emitTopicsSection()
	}
	if opts.APISection {
		w.emitTitle("API", "=")
		w.emitText("The `YEPS API <https://JPEWdev.github.io/yeps/api/yeps.json>`__ is a JSON file of metadata about " +
			"all the published YEPs. :doc:`Read more here <api/index>`.")
		w.emitNewline()
	}
	if opts.NumericalLink {
		w.emitTitle("Numerical Index", "=")
		w.emitText("The :doc:`numerical index </numerical>` contains " +
			"a table of all YEPs, ordered by number.")
		w.emitNewline()
	}

	w.emitTitle("Index by Category", "=")
	buckets, err := classify.ClassifyAll(yeps)
	if err != nil {
		return "", err
	}
	for _, category := range classify.Categories {
		members := buckets[category]
		if len(members) > 0 {
			w.emitCategory(category.Label(), members)
		} else if opts.EmptyCategoryPlaceholders {
			w.emitSubtitle(category.Label())
			w.emitText("None.")
			w.emitNewline()
		}
	}
	w.emitNewline()

	if opts.ReservedTable && len(w.reserved) > 0 {
		w.emitReservedTable()
	}

	w.emitTypesKey()
	w.emitStatusKey()

	if opts.OwnerRoster {
		if err := w.emitOwnerRoster(yeps); err != nil {
			return "", err
		}
	}

	return strings.Join(w.output, "\n"), nil
}

func (w *Writer) emitTopicsSection() {
	w.emitTitle("Topics", "=")
	w.emitText("YEPs for specialist subjects are :doc:`indexed by topic <topic/index>`.")
	w.emitNewline()
	topics := make([]string, 0, len(w.topics))
	for topic := range w.topics {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	for _, topic := range topics {
		target := fmt.Sprintf("../topic/%s/", topic)
		if w.builder == "html" {
			target = fmt.Sprintf("topic/%s.html", topic)
		}
		w.emitText(fmt.Sprintf("* `%s YEPs <%s>`_", titleCase(topic), target))
		w.emitNewline()
	}
	w.emitNewline()
}

func (w *Writer) emitReservedTable() {
	w.emitTitle("Reserved YEP Numbers", "=")
	w.emitColumnHeaders(false)
	numbers := make([]int, 0, len(w.reserved))
	for number := range w.reserved {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)
	for _, number := range numbers {
		w.emitRow("", number, "RESERVED", w.reserved[number], nil)
	}
	w.emitNewline()
}

func (w *Writer) emitTypesKey() {
	w.emitTitle("YEP Types Key", "=")
	types := make([]string, 0, len(yep.TypeValues))
	for t := range yep.TypeValues {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		w.emitText(fmt.Sprintf("* **%s** --- *%s*: %s", t[:1], t, yep.AbbreviatedTypes[t]))
		w.emitNewline()
	}
	w.emitText(":yep:`More info in YEP 1 <1#yep-types>`.")
	w.emitNewline()
}

func (w *Writer) emitStatusKey() {
	w.emitTitle("YEP Status Key", "=")
	statuses := make([]string, 0, len(yep.StatusValues))
	for s := range yep.StatusValues {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		// Draft YEPs have no status letter; Active shares a letter with Accepted.
		code := s[:1]
		if s == yep.StatusDraft {
			code = "<No letter>"
		}
		w.emitText(fmt.Sprintf("* **%s** --- *%s*: %s", code, s, yep.AbbreviatedStatuses[s]))
		w.emitNewline()
	}
	w.emitText(":yep:`More info in YEP 1 <1#yep-review-resolution>`.")
	w.emitNewline()
}

func (w *Writer) emitOwnerRoster(yeps []*yep.YEP) error {
	authors, err := yep.VerifyEmailAddresses(yeps)
	if err != nil {
		return err
	}

	maxNameLen := 0
	for name := range authors {
		if n := utf8.RuneCountInString(name); n > maxNameLen {
			maxNameLen = n
		}
	}

	w.emitTitle("Authors/Owners", "=")
	w.emitAuthorTableSeparator(maxNameLen)
	w.emitText(padRight("Name", maxNameLen) + "  Email Address")
	w.emitAuthorTableSeparator(maxNameLen)
	for _, name := range yep.SortAuthorNames(authors) {
		// The registry email wins over any per-record author entry, which
		// may be empty.
		w.emitText(padRight(name, maxNameLen) + "  " + authors[name])
	}
	w.emitAuthorTableSeparator(maxNameLen)
	w.emitNewline()
	w.emitNewline()
	return nil
}

// padRight pads by rune count, not bytes, so non-ASCII names stay aligned.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
