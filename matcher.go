// Package fuzzyac locates occurrences of a fixed set of string patterns
// inside an input text, permitting a bounded number of insertions,
// deletions, substitutions, and adjacent transpositions relative to a
// registered pattern. Matches are scored as a normalized similarity in
// [0,1]; the package also selects non-overlapping subsets of matches under
// several ordering policies, supports find-and-replace over fuzzy hits, and
// exposes a segmentation view of the input.
package fuzzyac

import "github.com/gofuzzyac/fuzzyac/internal/normalize"

// Match is the external shape of a fuzzy hit: the pattern it matched, the
// substring of the input it matched against, its byte span, similarity,
// and how many of each edit kind its alignment consumed.
type Match struct {
	PatternIndex int
	PatternText  string
	UniqueID     any
	Text         string
	Start        int
	End          int
	Similarity   float64
	Edits        EditCounts
}

// Matcher is an immutable, built fuzzy automaton: a pattern registry plus
// its trie and failure/output links. It carries no interior mutability, so
// a single Matcher can be shared across goroutines and searched
// concurrently — every search call owns its own frontier and match slice.
type Matcher struct {
	patterns          []*Pattern
	trie              *trie
	limits            FuzzyLimits
	penalties         FuzzyPenalties
	caseInsensitive   bool
	explorationLimits FuzzyLimits
}

// Builder accumulates pattern specs and engine-wide configuration before
// producing an immutable Matcher via Build.
type Builder struct {
	cfg   buildConfig
	specs []PatternSpec
}

// NewBuilder creates a Builder with the given engine-wide options applied.
func NewBuilder(opts ...Option) *Builder {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder{cfg: cfg}
}

// Pattern registers one pattern spec.
func (b *Builder) Pattern(spec PatternSpec) *Builder {
	b.specs = append(b.specs, spec)
	return b
}

// Patterns registers several pattern specs at once.
func (b *Builder) Patterns(specs ...PatternSpec) *Builder {
	b.specs = append(b.specs, specs...)
	return b
}

// Build normalizes and registers every pattern, in insertion order, then
// constructs the trie and its failure/output links. It fails with
// ErrNoPatterns if no pattern was registered, or ErrEmptyPattern if any
// pattern normalizes to zero tokens.
func (b *Builder) Build() (*Matcher, error) {
	if len(b.specs) == 0 {
		return nil, ErrNoPatterns
	}

	patterns := make([]*Pattern, 0, len(b.specs))
	exploration := b.cfg.limits

	for i, spec := range b.specs {
		tokens := normalize.Tokenize(spec.Text, b.cfg.caseInsensitive)
		if len(tokens) == 0 {
			return nil, ErrEmptyPattern
		}

		weight := spec.Weight
		switch {
		case weight == 0:
			weight = 1
		case weight < 0:
			return nil, ErrInvalidWeight
		}

		limits := b.cfg.limits
		if spec.Limits != nil {
			limits = *spec.Limits
		}

		uid := spec.UniqueID
		if uid == nil {
			uid = i
		}

		patterns = append(patterns, &Pattern{
			Text:     spec.Text,
			Tokens:   tokens,
			Weight:   weight,
			Limits:   limits,
			UniqueID: uid,
			index:    i,
		})
		exploration = exploration.max(limits)
	}

	return &Matcher{
		patterns:          patterns,
		trie:              buildTrie(patterns),
		limits:            b.cfg.limits,
		penalties:         b.cfg.penalties,
		caseInsensitive:   b.cfg.caseInsensitive,
		explorationLimits: exploration,
	}, nil
}

// New builds a Matcher from bare pattern text, the simplest of the three
// accepted pattern shapes.
func New(patterns []string, opts ...Option) (*Matcher, error) {
	specs := make([]PatternSpec, len(patterns))
	for i, text := range patterns {
		specs[i] = Pat(text)
	}
	return NewBuilder(opts...).Patterns(specs...).Build()
}

// Patterns returns the registered patterns in dense-index order.
func (m *Matcher) Patterns() []*Pattern { return m.patterns }

// tokenize normalizes text the same way patterns were normalized, so the
// engine compares like with like.
func (m *Matcher) tokenize(text string) []normalize.Token {
	return normalize.Tokenize(text, m.caseInsensitive)
}
