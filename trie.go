package fuzzyac

import "container/list"

// rootID is the trie's root node id; its own failure link points to itself.
const rootID = 0

// trieNode is a dense automaton node keyed by grapheme token text. Keeping
// nodes in a single growable slice (rather than individually heap-allocated
// structs) avoids pointer-chasing and keeps related nodes close in memory.
type trieNode struct {
	children  map[string]int
	fail      int
	output    int // dictionary output link node id, -1 if none
	terminals []int
}

// trie is the built Aho-Corasick automaton: a dense node arena plus
// breadth-first-computed failure and dictionary-output links. It is
// immutable once built and safe to share across concurrent searches.
type trie struct {
	nodes []trieNode
}

func newNode() trieNode {
	return trieNode{children: make(map[string]int), fail: rootID, output: -1}
}

// buildTrie inserts every pattern's token sequence, sharing prefixes, then
// computes failure and output links with a breadth-first traversal from the
// root — an insert-then-link-build two-phase construction over grapheme
// tokens.
func buildTrie(patterns []*Pattern) *trie {
	size := 1
	for _, p := range patterns {
		size += len(p.Tokens)
	}

	t := &trie{nodes: make([]trieNode, 1, size)}
	t.nodes[0] = newNode()

	for _, p := range patterns {
		n := rootID
		for _, tok := range p.Tokens {
			child, ok := t.nodes[n].children[tok.Text]
			if !ok {
				t.nodes = append(t.nodes, newNode())
				child = len(t.nodes) - 1
				t.nodes[n].children[tok.Text] = child
			}
			n = child
		}
		t.nodes[n].terminals = append(t.nodes[n].terminals, p.index)
	}

	t.buildLinks()
	return t
}

// buildLinks computes, for every node n reached by token tok from parent p,
// the deepest proper suffix match reachable by following fail(p) and
// attempting tok — root if none exists — then derives the dictionary output
// link from the nearest ancestor-by-failure that is terminal.
func (t *trie) buildLinks() {
	queue := list.New()
	for _, child := range t.nodes[rootID].children {
		t.nodes[child].fail = rootID
		queue.PushBack(child)
	}

	for queue.Len() > 0 {
		front := queue.Remove(queue.Front()).(int)
		for tok, child := range t.nodes[front].children {
			queue.PushBack(child)

			f := t.nodes[front].fail
			for {
				if fc, ok := t.nodes[f].children[tok]; ok {
					t.nodes[child].fail = fc
					break
				}
				if f == rootID {
					t.nodes[child].fail = rootID
					break
				}
				f = t.nodes[f].fail
			}

			failNode := t.nodes[child].fail
			if len(t.nodes[failNode].terminals) > 0 {
				t.nodes[child].output = failNode
			} else {
				t.nodes[child].output = t.nodes[failNode].output
			}
		}
	}
}

// child looks up the child of n reached by token text tok.
func (t *trie) child(n int, tok string) (int, bool) {
	c, ok := t.nodes[n].children[tok]
	return c, ok
}

// terminalsAt collects every pattern index terminating at n, either directly
// or via n's dictionary-output chain, appending to dst. Duplicates from
// patterns sharing a full token sequence are preserved as distinct entries,
// matching the trie's own terminal-list semantics.
func (t *trie) terminalsAt(n int, dst []int) []int {
	dst = append(dst, t.nodes[n].terminals...)
	for out := t.nodes[n].output; out != -1; out = t.nodes[out].output {
		dst = append(dst, t.nodes[out].terminals...)
	}
	return dst
}
