package fuzzyac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofuzzyac/fuzzyac/internal/normalize"
)

// The classic four-pattern Aho-Corasick textbook example: "he", "she",
// "his", "hers" over "ushers" should report every pattern that occurs in the
// text ("she", "he" and "hers"), including "he", which ends inside "she".
func TestBuildTrie_ClassicOutputChain(t *testing.T) {
	m, err := New([]string{"he", "she", "his", "hers"})
	require.NoError(t, err)

	matches := m.SearchUnsorted("ushers", 1.0)
	texts := make(map[string]bool, len(matches))
	for _, mtch := range matches {
		texts[mtch.Text] = true
	}

	assert.True(t, texts["she"])
	assert.True(t, texts["he"])
	assert.True(t, texts["hers"])
}

func TestBuildTrie_RootFailsToItself(t *testing.T) {
	tr := buildTrie([]*Pattern{{Text: "a", Tokens: tokensOf("a"), index: 0}})
	assert.Equal(t, rootID, tr.nodes[rootID].fail)
}

func TestBuildTrie_SharesPrefixes(t *testing.T) {
	tr := buildTrie([]*Pattern{
		{Text: "cat", Tokens: tokensOf("c", "a", "t"), index: 0},
		{Text: "car", Tokens: tokensOf("c", "a", "r"), index: 1},
	})
	// Root -> 'c' -> 'a' is shared; only the final token diverges.
	cNode, ok := tr.child(rootID, "c")
	require.True(t, ok)
	aNode, ok := tr.child(cNode, "a")
	require.True(t, ok)
	_, okT := tr.child(aNode, "t")
	_, okR := tr.child(aNode, "r")
	assert.True(t, okT)
	assert.True(t, okR)
}

func tokensOf(texts ...string) []normalize.Token {
	out := make([]normalize.Token, len(texts))
	offset := 0
	for i, s := range texts {
		out[i] = normalize.Token{Text: s, Offset: offset, Length: len(s)}
		offset += len(s)
	}
	return out
}
