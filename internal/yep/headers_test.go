package yep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHeaderBlockBasic(t *testing.T) {
	h := parseHeaderBlock("YEP: 1\nTitle: Hello\n\nBody: not a header\n")
	require.Equal(t, "1", h.get("YEP"))
	require.Equal(t, "Hello", h.get("Title"))
	require.False(t, h.has("Body"))
}

func TestParseHeaderBlockIsCaseSensitive(t *testing.T) {
	h := parseHeaderBlock("yep: 1\nTitle: Hello\n")
	require.False(t, h.has("YEP"))
	require.True(t, h.has("yep"))
}

func TestParseHeaderBlockFoldsContinuations(t *testing.T) {
	h := parseHeaderBlock("Author: Alice Smith <alice@example.com>,\n        Bob Jones\nStatus: Draft\n")
	require.Equal(t, "Alice Smith <alice@example.com>,\n Bob Jones", h.get("Author"))
	require.Equal(t, "Draft", h.get("Status"))
}

func TestParseHeaderBlockFirstOccurrenceWins(t *testing.T) {
	h := parseHeaderBlock("Title: First\nTitle: Second\n")
	require.Equal(t, "First", h.get("Title"))
}

func TestHeaderFieldsCollapsesFolds(t *testing.T) {
	fields := HeaderFields([]byte("Title: A very\n  long title\nCreated: 01-Jan-2020\n\nBody\n"))
	require.Equal(t, "A very long title", fields["Title"])
	require.Equal(t, "01-Jan-2020", fields["Created"])
	_, hasBody := fields["Body"]
	require.False(t, hasBody)
}
