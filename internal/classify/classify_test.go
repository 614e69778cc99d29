package classify

import (
	"testing"

	"github.com/stretchr/testify/require"

	yeperrors "github.com/JPEWdev/yeps/internal/errors"
	"github.com/JPEWdev/yeps/internal/yep"
)

func record(number int, kind, status, title string) *yep.YEP {
	return &yep.YEP{Number: number, Type: kind, Status: status, Title: title, Filename: "yep-0001.rst"}
}

func TestClassifyPrecedence(t *testing.T) {
	cases := []struct {
		name     string
		kind     string
		status   string
		title    string
		expected Category
	}{
		{"draft dominates everything", yep.TypeProcess, yep.StatusDraft, "T", Open},
		{"deferred dominates type", yep.TypeStandards, yep.StatusDeferred, "T", Deferred},
		{"accepted process is meta", yep.TypeProcess, yep.StatusAccepted, "T", Meta},
		{"active process is meta", yep.TypeProcess, yep.StatusActive, "T", Meta},
		{"withdrawn process is dead", yep.TypeProcess, yep.StatusWithdrawn, "T", Dead},
		{"rejected process is dead", yep.TypeProcess, yep.StatusRejected, "T", Dead},
		{"final process is historical", yep.TypeProcess, yep.StatusFinal, "T", Historical},
		{"superseded standards is dead", yep.TypeStandards, yep.StatusSuperseded, "T", Dead},
		{"active informational is info", yep.TypeInfo, yep.StatusActive, "T", Info},
		{"final informational is info", yep.TypeInfo, yep.StatusFinal, "T", Info},
		{"provisional standards", yep.TypeStandards, yep.StatusProvisional, "T", Provisional},
		{"accepted standards", yep.TypeStandards, yep.StatusAccepted, "T", Accepted},
		{"final standards is finished", yep.TypeStandards, yep.StatusFinal, "T", Finished},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			category, ok := Classify(record(1, tc.kind, tc.status, tc.title))
			require.True(t, ok)
			require.Equal(t, tc.expected, category)
		})
	}
}

func TestClassifyReleaseScheduleSpecialCase(t *testing.T) {
	// Non-Active informational documents about release schedules are
	// archival, not live informational content.
	category, ok := Classify(record(1, yep.TypeInfo, yep.StatusFinal, "Yocto 5.0 Release Schedule"))
	require.True(t, ok)
	require.Equal(t, Historical, category)

	// Active release schedules stay informational.
	category, ok = Classify(record(1, yep.TypeInfo, yep.StatusActive, "Yocto 5.1 Release Schedule"))
	require.True(t, ok)
	require.Equal(t, Info, category)

	// The phrase match is case-insensitive.
	category, _ = Classify(record(1, yep.TypeInfo, yep.StatusFinal, "RELEASE SCHEDULE for 5.2"))
	require.Equal(t, Historical, category)
}

func TestClassifyAllFormsPartition(t *testing.T) {
	yeps := []*yep.YEP{
		record(1, yep.TypeProcess, yep.StatusActive, "Process"),
		record(2, yep.TypeStandards, yep.StatusDraft, "Draft"),
		record(3, yep.TypeStandards, yep.StatusFinal, "Done"),
		record(4, yep.TypeInfo, yep.StatusWithdrawn, "Gone"),
		record(5, yep.TypeStandards, yep.StatusDeferred, "Later"),
		record(6, yep.TypeInfo, yep.StatusActive, "Guide"),
	}
	buckets, err := ClassifyAll(yeps)
	require.NoError(t, err)

	total := 0
	seen := make(map[int]bool)
	for _, members := range buckets {
		for _, y := range members {
			require.False(t, seen[y.Number], "YEP %d classified twice", y.Number)
			seen[y.Number] = true
			total++
		}
	}
	require.Equal(t, len(yeps), total)
}

func TestClassifyAllPreservesInputOrderWithinBuckets(t *testing.T) {
	yeps := []*yep.YEP{
		record(9, yep.TypeStandards, yep.StatusDraft, "A"),
		record(3, yep.TypeStandards, yep.StatusDraft, "B"),
		record(7, yep.TypeStandards, yep.StatusDraft, "C"),
	}
	buckets, err := ClassifyAll(yeps)
	require.NoError(t, err)
	open := buckets[Open]
	require.Equal(t, []int{9, 3, 7}, []int{open[0].Number, open[1].Number, open[2].Number})
}

func TestClassifyAllAggregatesUnclassifiable(t *testing.T) {
	yeps := []*yep.YEP{
		record(1, yep.TypeStandards, "Bogus", "A"),
		record(2, yep.TypeInfo, yep.StatusActive, "B"),
		record(3, yep.TypeStandards, "Stranger", "C"),
	}
	_, err := ClassifyAll(yeps)
	require.Error(t, err)
	require.Equal(t, yeperrors.CategoryClassification, yeperrors.GetCategory(err))
	require.Contains(t, err.Error(), "Standards Track/Bogus")
	require.Contains(t, err.Error(), "Standards Track/Stranger")
}

func TestCategoryLabels(t *testing.T) {
	require.Len(t, Categories, 9)
	require.Equal(t, "Process and Meta-YEPs", Meta.Label())
	require.Equal(t, "Rejected, Superseded, and Withdrawn YEPs", Dead.Label())
}
