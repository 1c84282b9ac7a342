package fuzzyac

import (
	"sort"
	"strings"
)

// ReplacementPair couples a pattern's text with the replacement to splice
// in when that pattern fuzzy-matches.
type ReplacementPair struct {
	Text        string
	Replacement string
}

// Replacer owns its own Matcher built from a set of (pattern, replacement)
// pairs and performs find-and-replace over fuzzy hits.
type Replacer struct {
	matcher      *Matcher
	replacements []string
}

// NewReplacer builds a Replacer from pattern/replacement pairs, using the
// same engine-wide options a Builder would take.
func NewReplacer(pairs []ReplacementPair, opts ...Option) (*Replacer, error) {
	specs := make([]PatternSpec, len(pairs))
	replacements := make([]string, len(pairs))
	for i, pr := range pairs {
		specs[i] = Pat(pr.Text)
		replacements[i] = pr.Replacement
	}

	matcher, err := NewBuilder(opts...).Patterns(specs...).Build()
	if err != nil {
		return nil, err
	}
	return &Replacer{matcher: matcher, replacements: replacements}, nil
}

// Replace runs a non-overlapping search at threshold and splices in each
// match's registered replacement.
func (r *Replacer) Replace(text string, threshold float64) string {
	matches := r.matcher.Search(text, threshold)
	return splice(matches, text, func(m Match) (string, bool) {
		return r.replacements[m.PatternIndex], true
	})
}

// ReplaceWith runs a non-overlapping search and splices in replacements
// from an explicit pattern-index -> replacement mapping; a match whose
// pattern has no entry keeps its original matched substring.
func (m *Matcher) ReplaceWith(text string, threshold float64, replacements map[int]string) string {
	matches := m.Search(text, threshold)
	return splice(matches, text, func(mtch Match) (string, bool) {
		repl, ok := replacements[mtch.PatternIndex]
		return repl, ok
	})
}

// ReplaceFunc runs a non-overlapping search and lets fn decide, per match,
// whether and how to replace it; fn returning false keeps the original
// matched substring.
func (m *Matcher) ReplaceFunc(text string, threshold float64, fn func(Match) (string, bool)) string {
	matches := m.Search(text, threshold)
	return splice(matches, text, fn)
}

// splice concatenates the unmatched slice before each match, the match's
// replacement (or its original text when fn declines), and the unmatched
// tail, in input order.
func splice(matches []Match, text string, fn func(Match) (string, bool)) string {
	ordered := make([]Match, len(matches))
	copy(ordered, matches)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Start < ordered[j].Start })

	var b strings.Builder
	pos := 0
	for _, m := range ordered {
		b.WriteString(text[pos:m.Start])
		if repl, ok := fn(m); ok {
			b.WriteString(repl)
		} else {
			b.WriteString(m.Text)
		}
		pos = m.End
	}
	b.WriteString(text[pos:])
	return b.String()
}
