// Package yep holds the in-memory representation of a Yocto Enhancement
// Proposal: header parsing, field validation, and the author registry used
// for index synthesis.
package yep

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/JPEWdev/yeps/internal/errors"
)

// YEP is one proposal record, constructed fresh on every build run and never
// mutated after parsing.
type YEP struct {
	Number  int
	Title   string
	Type    string
	Status  string
	Authors []Author

	// Topics is the lower-cased set of topic labels used for sub-index
	// membership.
	Topics map[string]bool

	// Optional descriptive headers, carried through verbatim.
	Created       string
	DiscussionsTo string
	YoctoVersion  string
	Replaces      string
	Requires      string
	Resolution    string
	SupersededBy  string
	PostHistory   string

	// Filename is the base name of the source file, kept for error
	// attribution and feed lookups.
	Filename string
}

// ParseFile reads and parses one YEP source file.
func ParseFile(path string) (*YEP, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, fmt.Sprintf("read %s", path))
	}
	return Parse(path, text)
}

// Parse builds a validated YEP record from raw document text, or fails with
// a document-attributed error. It never returns a half-built record.
func Parse(path string, text []byte) (*YEP, error) {
	filename := filepath.Base(path)
	headers := parseHeaderBlock(string(text))

	var missing []string
	for _, name := range RequiredHeaders {
		if !headers.has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, errors.NewDocumentErrorf(filename, "YEP is missing required headers %v", missing)
	}

	number, err := strconv.Atoi(headers.get("YEP"))
	if err != nil {
		return nil, errors.NewDocumentError(filename, "YEP number isn't an integer")
	}

	// The declared number must match the number embedded in the filename.
	// The number is not trusted at this point, so the error carries none.
	if fileNum, err := numberFromFilename(filename); err != nil || number != fileNum {
		return nil, errors.NewDocumentErrorf(filename, "YEP number does not match file name (%s)", filename)
	}

	y := &YEP{
		Number:   number,
		Title:    collapseFolds(headers.get("Title")),
		Filename: filename,
	}

	y.Type = collapseFolds(headers.get("Type"))
	if !TypeValues[y.Type] {
		return nil, errors.NewDocumentErrorf(filename, "%s is not a valid Type value", y.Type).WithNumber(number)
	}

	status := collapseFolds(headers.get("Status"))
	if canonical, ok := SpecialStatuses[status]; ok {
		status = canonical
	}
	if !StatusValues[status] {
		return nil, errors.NewDocumentErrorf(filename, "%s is not a valid Status value", status).WithNumber(number)
	}
	if status == StatusActive && !ActiveAllowed[y.Type] {
		return nil, errors.NewDocumentError(filename, "Only Process and Informational YEPs may have an Active status").WithNumber(number)
	}
	if status == StatusProvisional && y.Type != TypeStandards {
		return nil, errors.NewDocumentError(filename, "Only Standards Track YEPs may have a Provisional status").WithNumber(number)
	}
	y.Status = status

	y.Authors, err = parseAuthors(headers.get("Author"))
	if err != nil {
		return nil, errors.NewDocumentError(filename, err.Error()).WithNumber(number)
	}
	if len(y.Authors) == 0 {
		return nil, errors.NewDocumentError(filename, "no authors found").WithNumber(number)
	}

	y.Topics = make(map[string]bool)
	for _, topic := range strings.Split(strings.ToLower(headers.get("Topic")), ",") {
		if topic = strings.TrimSpace(topic); topic != "" {
			y.Topics[topic] = true
		}
	}

	y.Created = collapseFolds(headers.get("Created"))
	y.DiscussionsTo = collapseFolds(headers.get("Discussions-To"))
	y.YoctoVersion = collapseFolds(headers.get("Yocto-Version"))
	y.Replaces = collapseFolds(headers.get("Replaces"))
	y.Requires = collapseFolds(headers.get("Requires"))
	y.Resolution = collapseFolds(headers.get("Resolution"))
	y.SupersededBy = collapseFolds(headers.get("Superseded-By"))
	y.PostHistory = strings.Join(strings.Fields(headers.get("Post-History")), " ")

	return y, nil
}

// numberFromFilename extracts the numeric token from a yep-NNNN.rst name.
func numberFromFilename(filename string) (int, error) {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	return strconv.Atoi(strings.TrimPrefix(stem, "yep-"))
}

// collapseFolds flattens folded continuation lines into a single line.
func collapseFolds(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// AuthorNames returns the authors' full names in declaration order.
func (y *YEP) AuthorNames() []string {
	names := make([]string, len(y.Authors))
	for i, a := range y.Authors {
		names[i] = a.FullName
	}
	return names
}

// JoinedAuthorNames is the comma-separated author-name string used in tables.
func (y *YEP) JoinedAuthorNames() string {
	return strings.Join(y.AuthorNames(), ", ")
}

// SortedTopics returns the topic set as a sorted slice.
func (y *YEP) SortedTopics() []string {
	topics := make([]string, 0, len(y.Topics))
	for topic := range y.Topics {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// HasTopic reports sub-index membership.
func (y *YEP) HasTopic(topic string) bool {
	return y.Topics[topic]
}

// Shorthand returns the RST tooltip glyph encoding the YEP's type and status.
// Draft and Active statuses contribute no status letter.
func (y *YEP) Shorthand() string {
	typeCode := strings.ToUpper(y.Type[:1])
	if HideStatus[y.Status] {
		return fmt.Sprintf(":abbr:`%s (%s, %s)`", typeCode, y.Type, y.Status)
	}
	statusCode := strings.ToUpper(y.Status[:1])
	return fmt.Sprintf(":abbr:`%s%s (%s, %s)`", typeCode, statusCode, y.Type, y.Status)
}

// SortByNumber sorts records ascending by number, in place.
func SortByNumber(yeps []*YEP) {
	sort.Slice(yeps, func(i, j int) bool { return yeps[i].Number < yeps[j].Number })
}
