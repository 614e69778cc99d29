package yep

import (
	"testing"

	"github.com/stretchr/testify/require"

	yeperrors "github.com/JPEWdev/yeps/internal/errors"
)

const validDoc = `YEP: 12
Title: Sample Proposal
Author: Alice Smith <Alice@Example.com>, Bob Jones
Status: Draft
Type: Standards Track
Topic: Kernel, Release
Created: 01-Jan-2020
Yocto-Version: 5.0
Post-History: 02-Jan-2020,
              03-Jan-2020
Content-Type: text/x-rst

Abstract
========

Some text.
`

func TestParseValidDocument(t *testing.T) {
	y, err := Parse("yep-0012.rst", []byte(validDoc))
	require.NoError(t, err)

	require.Equal(t, 12, y.Number)
	require.Equal(t, "Sample Proposal", y.Title)
	require.Equal(t, TypeStandards, y.Type)
	require.Equal(t, StatusDraft, y.Status)
	require.Equal(t, []Author{
		{FullName: "Alice Smith", Email: "alice@example.com"},
		{FullName: "Bob Jones", Email: ""},
	}, y.Authors)
	require.Equal(t, map[string]bool{"kernel": true, "release": true}, y.Topics)
	require.Equal(t, "01-Jan-2020", y.Created)
	require.Equal(t, "5.0", y.YoctoVersion)
	require.Equal(t, "02-Jan-2020, 03-Jan-2020", y.PostHistory)
}

func TestParseMissingHeadersNamesAllOfThem(t *testing.T) {
	doc := "YEP: 7\nTitle: Incomplete\n\nBody.\n"
	_, err := Parse("yep-0007.rst", []byte(doc))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing required headers")
	require.Contains(t, err.Error(), "Author")
	require.Contains(t, err.Error(), "Created")
	require.Contains(t, err.Error(), "Status")
	require.Contains(t, err.Error(), "Type")
}

func TestParseNumberFilenameMismatchHasNoNumber(t *testing.T) {
	doc := "YEP: 13\nTitle: T\nAuthor: A Smith\nStatus: Draft\nType: Process\nCreated: 01-Jan-2020\n"
	_, err := Parse("yep-0012.rst", []byte(doc))
	require.Error(t, err)
	de, ok := err.(*yeperrors.DocumentError)
	require.True(t, ok)
	require.False(t, de.HasNum)
	require.Contains(t, de.Error(), "does not match file name")
}

func TestParseNonIntegerNumberHasNoNumber(t *testing.T) {
	doc := "YEP: twelve\nTitle: T\nAuthor: A Smith\nStatus: Draft\nType: Process\nCreated: 01-Jan-2020\n"
	_, err := Parse("yep-0012.rst", []byte(doc))
	require.Error(t, err)
	de, ok := err.(*yeperrors.DocumentError)
	require.True(t, ok)
	require.False(t, de.HasNum)
	require.Contains(t, de.Error(), "isn't an integer")
}

func TestParseInvalidTypeCarriesNumber(t *testing.T) {
	doc := "YEP: 12\nTitle: T\nAuthor: A Smith\nStatus: Draft\nType: Procedural\nCreated: 01-Jan-2020\n"
	_, err := Parse("yep-0012.rst", []byte(doc))
	require.Error(t, err)
	de := err.(*yeperrors.DocumentError)
	require.True(t, de.HasNum)
	require.Equal(t, 12, de.Number)
	require.Contains(t, de.Error(), "not a valid Type value")
}

func TestParseInvalidStatusCarriesNumber(t *testing.T) {
	doc := "YEP: 12\nTitle: T\nAuthor: A Smith\nStatus: Pondering\nType: Process\nCreated: 01-Jan-2020\n"
	_, err := Parse("yep-0012.rst", []byte(doc))
	require.Error(t, err)
	de := err.(*yeperrors.DocumentError)
	require.True(t, de.HasNum)
	require.Contains(t, de.Error(), "not a valid Status value")
}

func TestParseStatusAliasResolvesBeforeLegalityChecks(t *testing.T) {
	// The alias maps to Rejected, which is legal for any type.
	doc := "YEP: 12\nTitle: T\nAuthor: A Smith\nStatus: April Fool!\nType: Standards Track\nCreated: 01-Apr-2020\n"
	y, err := Parse("yep-0012.rst", []byte(doc))
	require.NoError(t, err)
	require.Equal(t, StatusRejected, y.Status)
}

func TestParseActiveOnlyForProcessAndInformational(t *testing.T) {
	doc := "YEP: 12\nTitle: T\nAuthor: A Smith\nStatus: Active\nType: Standards Track\nCreated: 01-Jan-2020\n"
	_, err := Parse("yep-0012.rst", []byte(doc))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Only Process and Informational YEPs may have an Active status")

	doc = "YEP: 12\nTitle: T\nAuthor: A Smith\nStatus: Active\nType: Process\nCreated: 01-Jan-2020\n"
	_, err = Parse("yep-0012.rst", []byte(doc))
	require.NoError(t, err)
}

func TestParseProvisionalOnlyForStandardsTrack(t *testing.T) {
	doc := "YEP: 12\nTitle: T\nAuthor: A Smith\nStatus: Provisional\nType: Informational\nCreated: 01-Jan-2020\n"
	_, err := Parse("yep-0012.rst", []byte(doc))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Only Standards Track YEPs may have a Provisional status")

	doc = "YEP: 12\nTitle: T\nAuthor: A Smith\nStatus: Provisional\nType: Standards Track\nCreated: 01-Jan-2020\n"
	_, err = Parse("yep-0012.rst", []byte(doc))
	require.NoError(t, err)
}

func TestParseTopicsDropEmptyTokens(t *testing.T) {
	doc := "YEP: 12\nTitle: T\nAuthor: A Smith\nStatus: Draft\nType: Process\nTopic: Release, , kernel\nCreated: 01-Jan-2020\n"
	y, err := Parse("yep-0012.rst", []byte(doc))
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"release": true, "kernel": true}, y.Topics)
	require.True(t, y.HasTopic("kernel"))
	require.False(t, y.HasTopic("typing"))
}

func TestShorthand(t *testing.T) {
	y := &YEP{Type: TypeStandards, Status: StatusFinal}
	require.Equal(t, ":abbr:`SF (Standards Track, Final)`", y.Shorthand())

	// Draft and Active hide the status letter.
	y = &YEP{Type: TypeProcess, Status: StatusDraft}
	require.Equal(t, ":abbr:`P (Process, Draft)`", y.Shorthand())
	y = &YEP{Type: TypeInfo, Status: StatusActive}
	require.Equal(t, ":abbr:`I (Informational, Active)`", y.Shorthand())
}

func TestSortByNumber(t *testing.T) {
	yeps := []*YEP{{Number: 30}, {Number: 2}, {Number: 113}}
	SortByNumber(yeps)
	require.Equal(t, 2, yeps[0].Number)
	require.Equal(t, 30, yeps[1].Number)
	require.Equal(t, 113, yeps[2].Number)
}
