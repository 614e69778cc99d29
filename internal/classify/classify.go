// Package classify assigns every proposal record to exactly one display
// category for the master index.
package classify

import (
	"fmt"
	"strings"

	"github.com/JPEWdev/yeps/internal/errors"
	"github.com/JPEWdev/yeps/internal/yep"
)

// Category is one of the nine fixed display buckets of the master index.
type Category int

const (
	Meta Category = iota
	Info
	Provisional
	Accepted
	Open
	Finished
	Historical
	Deferred
	Dead
	numCategories
)

// Categories lists all categories in fixed display order.
var Categories = []Category{Meta, Info, Provisional, Accepted, Open, Finished, Historical, Deferred, Dead}

// Label returns the category's display heading.
func (c Category) Label() string {
	switch c {
	case Meta:
		return "Process and Meta-YEPs"
	case Info:
		return "Other Informational YEPs"
	case Provisional:
		return "Provisional YEPs (provisionally accepted; interface may still change)"
	case Accepted:
		return "Accepted YEPs (accepted; may not be implemented yet)"
	case Open:
		return "Open YEPs (under consideration)"
	case Finished:
		return "Finished YEPs (done, with a stable interface)"
	case Historical:
		return "Historical Meta-YEPs and Informational YEPs"
	case Deferred:
		return "Deferred YEPs (postponed pending further research or updates)"
	case Dead:
		return "Rejected, Superseded, and Withdrawn YEPs"
	default:
		return "Unknown"
	}
}

// Classify maps one record to its category. The precedence order is fixed;
// key status values dominate type and vice versa. The ok result is false for
// a type/status combination no rule covers.
func Classify(y *yep.YEP) (Category, bool) {
	switch {
	case y.Status == yep.StatusDraft:
		return Open, true
	case y.Status == yep.StatusDeferred:
		return Deferred, true
	case y.Type == yep.TypeProcess:
		switch y.Status {
		case yep.StatusAccepted, yep.StatusActive:
			return Meta, true
		case yep.StatusWithdrawn, yep.StatusRejected:
			return Dead, true
		default:
			return Historical, true
		}
	case yep.DeadStatuses[y.Status]:
		return Dead, true
	case y.Type == yep.TypeInfo:
		// Hack until the conflict between the use of "Final" for both API
		// definition YEPs and other (actually obsolete) YEPs is addressed.
		if y.Status == yep.StatusActive || !strings.Contains(strings.ToLower(y.Title), "release schedule") {
			return Info, true
		}
		return Historical, true
	case y.Status == yep.StatusProvisional:
		return Provisional, true
	case y.Status == yep.StatusAccepted, y.Status == yep.StatusActive:
		return Accepted, true
	case y.Status == yep.StatusFinal:
		return Finished, true
	}
	return 0, false
}

// ClassifyAll partitions the record set into the nine categories, preserving
// input order within each bucket. Unclassifiable records are collected across
// the whole set and reported as one aggregate error.
func ClassifyAll(yeps []*yep.YEP) (map[Category][]*yep.YEP, error) {
	buckets := make(map[Category][]*yep.YEP, numCategories)
	var unsorted []string
	for _, y := range yeps {
		category, ok := Classify(y)
		if !ok {
			unsorted = append(unsorted, fmt.Sprintf("    YEP %d (%s): Unsorted (%s/%s)", y.Number, y.Filename, y.Type, y.Status))
			continue
		}
		buckets[category] = append(buckets[category], y)
	}
	if len(unsorted) > 0 {
		msg := "some YEPs could not be classified:\n" + strings.Join(unsorted, "\n")
		return nil, errors.New(errors.CategoryClassification, errors.SeverityFatal, msg)
	}
	return buckets, nil
}
