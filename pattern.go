package fuzzyac

import (
	"github.com/google/uuid"

	"github.com/gofuzzyac/fuzzyac/internal/normalize"
)

// Pattern is an immutable registered pattern: its original text, its
// normalized token sequence, a similarity weight, its effective fuzzy
// limits, and a dedup key (UniqueID, defaulting to its dense index).
type Pattern struct {
	Text     string
	Tokens   []normalize.Token
	Weight   float64
	Limits   FuzzyLimits
	UniqueID any

	index int // dense index, assigned in registration order
}

// Index returns the pattern's dense position in the registry, assigned in
// insertion order.
func (p *Pattern) Index() int { return p.index }

// PatternSpec describes a pattern before normalization, in one of the three
// shapes the registry accepts: bare text (Pat), a weighted tuple
// (PatWeighted), or a fully specified record (PatFull).
type PatternSpec struct {
	Text     string
	Weight   float64
	Limits   *FuzzyLimits // nil: inherit the builder's engine defaults
	UniqueID any          // nil: defaults to the pattern's dense index
}

// Pat is a bare-text pattern spec with default weight 1.0.
func Pat(text string) PatternSpec {
	return PatternSpec{Text: text, Weight: 1}
}

// PatWeighted is a (text, weight) tuple pattern spec.
func PatWeighted(text string, weight float64) PatternSpec {
	return PatternSpec{Text: text, Weight: weight}
}

// PatFull is a fully specified pattern spec: text, weight, per-pattern fuzzy
// limit override, and a caller-supplied unique id for dedup.
func PatFull(text string, weight float64, limits FuzzyLimits, uniqueID any) PatternSpec {
	return PatternSpec{Text: text, Weight: weight, Limits: &limits, UniqueID: uniqueID}
}

// PatGenerated is a pattern spec whose UniqueID is a freshly generated UUID
// rather than the pattern's dense index or a caller-supplied value. Use this
// when patterns are assembled dynamically and no natural dedup key exists.
func PatGenerated(text string, weight float64) PatternSpec {
	return PatternSpec{Text: text, Weight: weight, UniqueID: uuid.NewString()}
}
