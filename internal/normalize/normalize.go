// Package normalize splits text into Unicode extended grapheme clusters and,
// optionally, case-folds each cluster, recording the byte offset and length
// of every cluster in the original (un-folded) string.
package normalize

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"golang.org/x/text/cases"
)

// foldCaser is a package-level Unicode case folder, built once and reused
// across calls rather than allocated per token.
var foldCaser = cases.Fold()

// Token is a grapheme cluster plus its location in the source text it was
// cut from. Text is case-folded when Tokenize is called with fold=true;
// Offset/Length always describe the un-folded original bytes.
type Token struct {
	Text   string
	Offset int
	Length int
}

// Tokenize splits s into grapheme clusters in order. When fold is true each
// cluster's Text is replaced by its full Unicode case fold; Offset and
// Length still describe the original bytes so callers can recover the exact
// source substring regardless of folding.
func Tokenize(s string, fold bool) []Token {
	if s == "" {
		return nil
	}

	segs := graphemes.FromString(s)
	tokens := make([]Token, 0, len(s))
	offset := 0
	for segs.Next() {
		cluster := segs.Value()
		length := len(cluster)
		text := cluster
		if fold {
			text = foldCaser.String(cluster)
		}
		tokens = append(tokens, Token{Text: text, Offset: offset, Length: length})
		offset += length
	}
	return tokens
}
