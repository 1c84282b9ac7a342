package fuzzyac

import "github.com/gofuzzyac/fuzzyac/internal/normalize"

// searchState is one traversal branch: the trie node it sits at, the input
// position it has consumed up to, its remaining per-kind edit budget, and
// the byte offset its candidate match would start at.
type searchState struct {
	node      int
	pos       int
	remaining FuzzyLimits
	start     int
}

// stateKey dedups branches that have converged to the same node, position,
// remaining budget and start offset; a branch is pruned only when all four
// agree, since the remaining budget alone determines the edit counts (and
// therefore the cost) a branch has accumulated.
type stateKey struct {
	node, pos                          int
	ins, del, sub, swap, total, start int
}

func key(s searchState) stateKey {
	r := s.remaining
	return stateKey{s.node, s.pos, r.MaxInsertions, r.MaxDeletions, r.MaxSubstitutions, r.MaxSwaps, r.MaxEdits, s.start}
}

// candidates drives the automaton over tokens, forking exact and
// edit-allowing transitions at every reachable state, and returns every
// candidate match (with possible (pattern,start,end) duplicates) scoring at
// or above threshold. The frontier is bounded because every edit transition
// strictly decreases the remaining total-edit budget, and exact/failure
// transitions either advance the input position or walk toward the root.
func (m *Matcher) candidates(tokens []normalize.Token, text string, threshold float64) []Match {
	n := len(tokens)
	offsets := make([]int, n+1)
	for i, tok := range tokens {
		offsets[i] = tok.Offset
	}
	offsets[n] = len(text)

	seen := make(map[stateKey]struct{})
	stack := make([]searchState, 0, n+1)
	push := func(s searchState) {
		k := key(s)
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		stack = append(stack, s)
	}

	for i := 0; i <= n; i++ {
		push(searchState{node: rootID, pos: i, remaining: m.explorationLimits, start: offsets[i]})
	}

	var out []Match
	var terms []int
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		terms = terms[:0]
		terms = m.trie.terminalsAt(s.node, terms)
		if len(terms) > 0 {
			consumed := m.consumedCounts(s.remaining)
			for _, pidx := range terms {
				p := m.patterns[pidx]
				if !consumed.within(p.Limits) {
					continue
				}
				sim := similarity(consumed, m.penalties, len(p.Tokens), p.Weight)
				if sim < threshold {
					continue
				}
				out = append(out, Match{
					PatternIndex: pidx,
					PatternText:  p.Text,
					UniqueID:     p.UniqueID,
					Text:         text[s.start:offsets[s.pos]],
					Start:        s.start,
					End:          offsets[s.pos],
					Similarity:   sim,
					Edits:        consumed,
				})
			}
		}

		node, pos, r := s.node, s.pos, s.remaining
		hasTok := pos < n
		var tok string
		if hasTok {
			tok = tokens[pos].Text
		}

		if hasTok {
			if child, ok := m.trie.child(node, tok); ok {
				push(searchState{node: child, pos: pos + 1, remaining: r, start: s.start})
			} else if node != rootID {
				push(searchState{node: m.trie.nodes[node].fail, pos: pos, remaining: r, start: s.start})
			}
		}

		if hasTok && r.MaxSubstitutions > 0 && r.MaxEdits > 0 {
			for childTok, childID := range m.trie.nodes[node].children {
				if childTok == tok {
					continue
				}
				nr := r
				nr.MaxSubstitutions--
				nr.MaxEdits--
				push(searchState{node: childID, pos: pos + 1, remaining: nr, start: s.start})
			}
		}

		if hasTok && r.MaxInsertions > 0 && r.MaxEdits > 0 {
			nr := r
			nr.MaxInsertions--
			nr.MaxEdits--
			push(searchState{node: node, pos: pos + 1, remaining: nr, start: s.start})
		}

		if r.MaxDeletions > 0 && r.MaxEdits > 0 {
			for _, childID := range m.trie.nodes[node].children {
				nr := r
				nr.MaxDeletions--
				nr.MaxEdits--
				push(searchState{node: childID, pos: pos, remaining: nr, start: s.start})
			}
		}

		if pos+1 < n && r.MaxSwaps > 0 && r.MaxEdits > 0 {
			if n1, ok := m.trie.child(node, tokens[pos+1].Text); ok {
				if n2, ok := m.trie.child(n1, tok); ok {
					nr := r
					nr.MaxSwaps--
					nr.MaxEdits--
					push(searchState{node: n2, pos: pos + 2, remaining: nr, start: s.start})
				}
			}
		}
	}

	return out
}

// consumedCounts derives per-kind edit counts from how far the exploration
// budget has been drawn down, since every branch starts from the same
// m.explorationLimits and only ever decrements.
func (m *Matcher) consumedCounts(remaining FuzzyLimits) EditCounts {
	el := m.explorationLimits
	return EditCounts{
		Insertions:    el.MaxInsertions - remaining.MaxInsertions,
		Deletions:     el.MaxDeletions - remaining.MaxDeletions,
		Substitutions: el.MaxSubstitutions - remaining.MaxSubstitutions,
		Swaps:         el.MaxSwaps - remaining.MaxSwaps,
	}
}
