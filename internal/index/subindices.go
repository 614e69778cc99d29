package index

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JPEWdev/yeps/internal/yep"
)

// topicContents is the generated topic/index page listing all sub-indices.
const topicContents = `.. _topic-index:

Topic Index
***********

YEPs are indexed by topic on the pages below:

.. toctree::
   :maxdepth: 1
   :titlesonly:
   :glob:

   *
`

// GenerateSubindices renders one sub-index per configured topic plus the
// topic contents page, registering each into the doc set. Sub-indices omit
// the master-index-only sections and skip empty categories entirely.
func GenerateSubindices(topics map[string]string, yeps []*yep.YEP, docs *DocSet, builder string) error {
	if _, err := docs.Add("topic/index", topicContents); err != nil {
		return err
	}

	keys := make([]string, 0, len(topics))
	for topic := range topics {
		keys = append(keys, topic)
	}
	sort.Strings(keys)

	for _, topic := range keys {
		headerText := fmt.Sprintf("%s YEPs", titleCase(topic))
		header := headerText + "\n" + strings.Repeat("#", len(headerText)) + "\n"

		var filtered []*yep.YEP
		for _, y := range yeps {
			if y.HasTopic(topic) {
				filtered = append(filtered, y)
			}
		}

		intro := fmt.Sprintf(`This is the index of all Yocto Enhancement Proposals (YEPs) labelled
under the '%s' topic. This is a sub-index of :yep:`+"`0`"+`,
the YEP index.

%s
`, titleCase(topic), topics[topic])

		w := NewWriter(nil, nil, builder)
		text, err := w.WriteIndex(filtered, header, intro, Options{})
		if err != nil {
			return err
		}
		if _, err := docs.Add("topic/"+topic, text); err != nil {
			return err
		}
	}
	return nil
}
