package fuzzyac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofuzzyac/fuzzyac"
)

func TestSegmentIter_CoversInputExactly(t *testing.T) {
	m, err := fuzzyac.New([]string{"fox", "dog"})
	require.NoError(t, err)

	text := "the quick fox jumps over the lazy dog"
	segs := m.SegmentIter(text, 1.0)

	var rebuilt string
	for _, seg := range segs {
		rebuilt += text[seg.Start:seg.End]
	}
	assert.Equal(t, text, rebuilt)
}

func TestSplit_LengthIsMatchesPlusOne(t *testing.T) {
	m, err := fuzzyac.New([]string{"fox", "dog"})
	require.NoError(t, err)

	text := "the quick fox jumps over the lazy dog"
	matches := m.Search(text, 1.0)
	split := m.Split(text, 1.0)
	assert.Len(t, split, len(matches)+1)
}

func TestSplit_EmptyBoundariesWhenMatchesTouchEdges(t *testing.T) {
	m, err := fuzzyac.New([]string{"ab"})
	require.NoError(t, err)

	split := m.Split("ab", 1.0)
	require.Len(t, split, 2)
	assert.Equal(t, "", split[0])
	assert.Equal(t, "", split[1])
}

func TestStripPrefix_TrimsLeadingWhitespaceBeforeFirstMatch(t *testing.T) {
	m, err := fuzzyac.New([]string{"world"})
	require.NoError(t, err)

	assert.Equal(t, "hello world   ", m.StripPrefix("   hello world   ", 1.0))
}

func TestStripPrefix_DropsLeadingMatchAndWhitespace(t *testing.T) {
	m, err := fuzzyac.New([]string{"hello"})
	require.NoError(t, err)

	// "hello" sits right after leading whitespace with nothing else before
	// it, so both the whitespace and the match itself are stripped.
	assert.Equal(t, "world", m.StripPrefix("   hello world", 1.0))
}

func TestStripPostfix_TrimsTrailingWhitespaceAfterLastMatch(t *testing.T) {
	m, err := fuzzyac.New([]string{"hello"})
	require.NoError(t, err)

	assert.Equal(t, "   hello world", m.StripPostfix("   hello world   ", 1.0))
}

func TestStripPostfix_DropsTrailingMatchAndWhitespace(t *testing.T) {
	m, err := fuzzyac.New([]string{"world"})
	require.NoError(t, err)

	assert.Equal(t, "hello", m.StripPostfix("hello world   ", 1.0))
}

func TestSegmentText_NoDoubleSpaceWhenWhitespaceAlreadyPresent(t *testing.T) {
	m, err := fuzzyac.New([]string{"fox"})
	require.NoError(t, err)

	got := m.SegmentText("a fox jumps", 1.0)
	assert.Equal(t, "a fox jumps", got)
}
