package fuzzyac

// FuzzyLimits caps the number of edit operations a fuzzy alignment may
// consume. A zero value for a given field disables that operation entirely;
// MaxEdits additionally bounds the total across all kinds.
type FuzzyLimits struct {
	MaxInsertions    int
	MaxDeletions     int
	MaxSubstitutions int
	MaxSwaps         int
	MaxEdits         int
}

// NoFuzz returns limits that permit only exact matches.
func NoFuzz() FuzzyLimits {
	return FuzzyLimits{}
}

// max returns the component-wise maximum of a and b.
func (a FuzzyLimits) max(b FuzzyLimits) FuzzyLimits {
	return FuzzyLimits{
		MaxInsertions:    maxInt(a.MaxInsertions, b.MaxInsertions),
		MaxDeletions:     maxInt(a.MaxDeletions, b.MaxDeletions),
		MaxSubstitutions: maxInt(a.MaxSubstitutions, b.MaxSubstitutions),
		MaxSwaps:         maxInt(a.MaxSwaps, b.MaxSwaps),
		MaxEdits:         maxInt(a.MaxEdits, b.MaxEdits),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// EditCounts tallies how many of each edit kind a match's alignment consumed.
type EditCounts struct {
	Insertions    int
	Deletions     int
	Substitutions int
	Swaps         int
}

// Total returns the sum of all edit kinds.
func (c EditCounts) Total() int {
	return c.Insertions + c.Deletions + c.Substitutions + c.Swaps
}

// within reports whether c respects the caps in l.
func (c EditCounts) within(l FuzzyLimits) bool {
	return c.Insertions <= l.MaxInsertions &&
		c.Deletions <= l.MaxDeletions &&
		c.Substitutions <= l.MaxSubstitutions &&
		c.Swaps <= l.MaxSwaps &&
		c.Total() <= l.MaxEdits
}

// FuzzyPenalties assigns a non-negative dimensionless cost to each edit
// kind; the scoring kernel consumes these to normalize similarity.
type FuzzyPenalties struct {
	Substitution float64
	Insertion    float64
	Deletion     float64
	Swap         float64
}

// DefaultPenalties returns the engine's default per-edit costs: 1.0 for
// every kind.
func DefaultPenalties() FuzzyPenalties {
	return FuzzyPenalties{Substitution: 1, Insertion: 1, Deletion: 1, Swap: 1}
}

// cost computes the weighted edit cost for a set of edit counts.
func (p FuzzyPenalties) cost(c EditCounts) float64 {
	return p.Insertion*float64(c.Insertions) +
		p.Deletion*float64(c.Deletions) +
		p.Substitution*float64(c.Substitutions) +
		p.Swap*float64(c.Swaps)
}
