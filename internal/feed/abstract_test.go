package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const abstractBody = `Abstract
========

This proposal describes a sample feature
spanning two source lines.

A second paragraph that must not appear.

Motivation
==========

Unrelated text.
`

func TestExtractAbstractFirstParagraph(t *testing.T) {
	abstract := ExtractAbstract([]byte(abstractBody))
	require.Equal(t, "This proposal describes a sample feature spanning two source lines.", abstract)
}

func TestExtractAbstractFallsBackToIntroduction(t *testing.T) {
	body := `Introduction
============

The introduction paragraph.

Details
=======

More text.
`
	require.Equal(t, "The introduction paragraph.", ExtractAbstract([]byte(body)))
}

func TestExtractAbstractPrefersAbstractOverIntroduction(t *testing.T) {
	body := `Introduction
============

Intro text.

Abstract
========

Abstract text.
`
	require.Equal(t, "Abstract text.", ExtractAbstract([]byte(body)))
}

func TestExtractAbstractEmptySectionYieldsNothing(t *testing.T) {
	body := `Abstract
========

Motivation
==========

Text here.
`
	require.Equal(t, "", ExtractAbstract([]byte(body)))
}

func TestExtractAbstractNoMatchingSection(t *testing.T) {
	body := `Rationale
=========

Nothing to excerpt.
`
	require.Equal(t, "", ExtractAbstract([]byte(body)))
}

func TestTruncateAbstract(t *testing.T) {
	short := "short abstract"
	require.Equal(t, short, TruncateAbstract(short))

	long := strings.Repeat("a", 300)
	truncated := TruncateAbstract(long)
	require.Len(t, truncated, 256)
	require.True(t, strings.HasSuffix(truncated, "..."))
}
