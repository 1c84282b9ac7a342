package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gofuzzyac/fuzzyac/internal/normalize"
)

func TestTokenize_Empty(t *testing.T) {
	assert.Nil(t, normalize.Tokenize("", false))
}

func TestTokenize_ASCIIOffsetsAndLengths(t *testing.T) {
	toks := normalize.Tokenize("cat", false)
	want := []normalize.Token{
		{Text: "c", Offset: 0, Length: 1},
		{Text: "a", Offset: 1, Length: 1},
		{Text: "t", Offset: 2, Length: 1},
	}
	assert.Equal(t, want, toks)
}

func TestTokenize_FoldLowercasesTextButKeepsOriginalOffsets(t *testing.T) {
	toks := normalize.Tokenize("CAT", true)
	assert.Equal(t, []string{"c", "a", "t"}, textsOf(toks))
	assert.Equal(t, 0, toks[0].Offset)
	assert.Equal(t, 1, toks[1].Offset)
	assert.Equal(t, 2, toks[2].Offset)
}

func TestTokenize_NoFoldPreservesCase(t *testing.T) {
	toks := normalize.Tokenize("CaT", false)
	assert.Equal(t, []string{"C", "a", "T"}, textsOf(toks))
}

// A multi-byte character must collapse to a single grapheme cluster with a
// byte Length matching its UTF-8 encoding, not a rune count of 1.
func TestTokenize_MultiByteRuneIsOneClusterWithCorrectByteLength(t *testing.T) {
	toks := normalize.Tokenize("é", false)
	assert.Len(t, toks, 1)
	assert.Equal(t, 0, toks[0].Offset)
	assert.Equal(t, len("é"), toks[0].Length)
}

// An emoji with a combining modifier is one extended grapheme cluster per
// UAX #29, even though it is multiple Unicode code points.
func TestTokenize_EmojiWithModifierIsOneCluster(t *testing.T) {
	s := "\U0001F44D\U0001F3FB" // thumbs up + light skin tone modifier
	toks := normalize.Tokenize(s, false)
	assert.Len(t, toks, 1)
	assert.Equal(t, s, toks[0].Text)
	assert.Equal(t, len(s), toks[0].Length)
}

func TestTokenize_OffsetsAccumulateAcrossVaryingWidths(t *testing.T) {
	s := "aé中"
	toks := normalize.Tokenize(s, false)
	offset := 0
	for _, tok := range toks {
		assert.Equal(t, offset, tok.Offset)
		offset += tok.Length
	}
	assert.Equal(t, len(s), offset)
}

func textsOf(toks []normalize.Token) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Text
	}
	return out
}
