package fuzzyac

import "sort"

// Search runs default ordering (descending similarity, then longer match,
// then earlier start, then lower pattern index) followed by overlap
// pruning. This is the library's main entry point.
func (m *Matcher) Search(text string, threshold float64) []Match {
	matches := dedupe(m.candidates(m.tokenize(text), text, threshold))
	sortDefault(matches)
	return pruneOverlaps(matches, nil)
}

// SearchGreedy runs greedy ordering (descending matched byte length, then
// descending similarity, then earlier start, then lower pattern index)
// followed by overlap pruning. Useful when longer matches should win over
// shorter, higher-scoring ones.
func (m *Matcher) SearchGreedy(text string, threshold float64) []Match {
	matches := dedupe(m.candidates(m.tokenize(text), text, threshold))
	sortGreedy(matches)
	return pruneOverlaps(matches, nil)
}

// SearchNonOverlapping is an alias of Search, naming the default-sort-then-
// prune pipeline by its output guarantee rather than its sort order.
func (m *Matcher) SearchNonOverlapping(text string, threshold float64) []Match {
	return m.Search(text, threshold)
}

// SearchNonOverlappingUnique runs default ordering and prunes both
// overlapping spans and repeated pattern unique ids, so at most one match
// per unique id survives.
func (m *Matcher) SearchNonOverlappingUnique(text string, threshold float64) []Match {
	matches := dedupe(m.candidates(m.tokenize(text), text, threshold))
	sortDefault(matches)
	consumed := make(map[any]struct{})
	return pruneOverlaps(matches, consumed)
}

// SearchUnsorted returns deduplicated raw candidates in discovery order,
// with no sorting and no overlap pruning applied. This is the only entry
// point that can return overlapping matches.
func (m *Matcher) SearchUnsorted(text string, threshold float64) []Match {
	return dedupe(m.candidates(m.tokenize(text), text, threshold))
}

// dedupe keeps, for each (pattern, start, end) triple, only the
// highest-similarity candidate, preserving the first-seen relative order of
// surviving entries.
func dedupe(matches []Match) []Match {
	type spanKey struct {
		pattern, start, end int
	}
	best := make(map[spanKey]int, len(matches)) // key -> index into out
	out := make([]Match, 0, len(matches))

	for _, cand := range matches {
		k := spanKey{cand.PatternIndex, cand.Start, cand.End}
		if idx, ok := best[k]; ok {
			if cand.Similarity > out[idx].Similarity {
				out[idx] = cand
			}
			continue
		}
		best[k] = len(out)
		out = append(out, cand)
	}
	return out
}

func sortDefault(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Similarity != b.Similarity {
			return a.Similarity > b.Similarity
		}
		lenA, lenB := a.End-a.Start, b.End-b.Start
		if lenA != lenB {
			return lenA > lenB
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.PatternIndex < b.PatternIndex
	})
}

func sortGreedy(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		lenA, lenB := a.End-a.Start, b.End-b.Start
		if lenA != lenB {
			return lenA > lenB
		}
		if a.Similarity != b.Similarity {
			return a.Similarity > b.Similarity
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.PatternIndex < b.PatternIndex
	})
}

// pruneOverlaps walks matches in the given order, keeping a candidate only
// if its byte span is disjoint from every accepted span. When consumed is
// non-nil it additionally tracks pattern unique ids and rejects a candidate
// whose pattern's id has already been accepted.
func pruneOverlaps(matches []Match, consumed map[any]struct{}) []Match {
	type interval struct{ start, end int }
	var accepted []interval
	out := make([]Match, 0, len(matches))

	for _, cand := range matches {
		if consumed != nil {
			if _, used := consumed[cand.UniqueID]; used {
				continue
			}
		}

		overlaps := false
		for _, iv := range accepted {
			if cand.Start < iv.end && iv.start < cand.End {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		accepted = append(accepted, interval{cand.Start, cand.End})
		if consumed != nil {
			consumed[cand.UniqueID] = struct{}{}
		}
		out = append(out, cand)
	}
	return out
}
