package fuzzyac

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SegmentKind tags a Segment as covering a matched span or the unmatched
// text between/around matches.
type SegmentKind int

const (
	SegmentUnmatched SegmentKind = iota
	SegmentMatched
)

// Segment is one piece of a segmented input: either an accepted Match or an
// unmatched byte range. Segments from SegmentIter cover the whole input
// exactly once, in order, with no gaps — including zero-length Unmatched
// segments at boundaries where two matches touch or a match sits at either
// edge of the text.
type Segment struct {
	Kind  SegmentKind
	Match Match
	Start int
	End   int
}

// SegmentIter produces the alternating Matched/Unmatched view of text for a
// non-overlapping match set: one Unmatched segment before every match
// (possibly empty), the match itself, and a final Unmatched segment after
// the last match (possibly empty). This guarantees exactly len(matches)+1
// Unmatched segments regardless of adjacency, which is what Split relies on.
func SegmentIter(matches []Match, text string) []Segment {
	sorted := make([]Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	segs := make([]Segment, 0, 2*len(sorted)+1)
	pos := 0
	for _, mtch := range sorted {
		segs = append(segs, Segment{Kind: SegmentUnmatched, Start: pos, End: mtch.Start})
		segs = append(segs, Segment{Kind: SegmentMatched, Match: mtch, Start: mtch.Start, End: mtch.End})
		pos = mtch.End
	}
	segs = append(segs, Segment{Kind: SegmentUnmatched, Start: pos, End: len(text)})
	return segs
}

// Split returns the text of every Unmatched segment, including empty ones
// at boundaries, in order. Its length is always len(matches)+1.
func Split(matches []Match, text string) []string {
	segs := SegmentIter(matches, text)
	out := make([]string, 0, len(matches)+1)
	for _, seg := range segs {
		if seg.Kind == SegmentUnmatched {
			out = append(out, text[seg.Start:seg.End])
		}
	}
	return out
}

// SegmentText joins every non-empty segment's text in order, inserting a
// single space between two adjacent segments only when neither touching
// end already contains whitespace.
func SegmentText(matches []Match, text string) string {
	var b strings.Builder
	for _, seg := range SegmentIter(matches, text) {
		piece := text[seg.Start:seg.End]
		if piece == "" {
			continue
		}
		if b.Len() > 0 && needsSpaceBetween(b.String(), piece) {
			b.WriteByte(' ')
		}
		b.WriteString(piece)
	}
	return b.String()
}

func needsSpaceBetween(before, after string) bool {
	r1, _ := utf8.DecodeLastRuneInString(before)
	r2, _ := utf8.DecodeRuneInString(after)
	return !unicode.IsSpace(r1) && !unicode.IsSpace(r2)
}

// StripPrefix drops leading Matched segments and leading whitespace-only
// Unmatched segments, then left-trims the first retained Unmatched segment.
func StripPrefix(matches []Match, text string) string {
	segs := SegmentIter(matches, text)
	i := 0
	for i < len(segs) {
		seg := segs[i]
		if seg.Kind == SegmentMatched {
			i++
			continue
		}
		if strings.TrimSpace(text[seg.Start:seg.End]) == "" {
			i++
			continue
		}
		break
	}
	if i >= len(segs) {
		return ""
	}

	start := segs[i].Start
	if segs[i].Kind == SegmentUnmatched {
		piece := text[segs[i].Start:segs[i].End]
		trimmed := strings.TrimLeftFunc(piece, unicode.IsSpace)
		start = segs[i].End - len(trimmed)
	}
	return text[start:]
}

// SegmentIter runs a non-overlapping search at threshold and segments text
// against the result.
func (m *Matcher) SegmentIter(text string, threshold float64) []Segment {
	return SegmentIter(m.Search(text, threshold), text)
}

// Split runs a non-overlapping search at threshold and returns the
// unmatched slices of text, including empty ones at boundaries.
func (m *Matcher) Split(text string, threshold float64) []string {
	return Split(m.Search(text, threshold), text)
}

// SegmentText runs a non-overlapping search at threshold and joins the
// resulting segments with the single-space heuristic.
func (m *Matcher) SegmentText(text string, threshold float64) string {
	return SegmentText(m.Search(text, threshold), text)
}

// StripPrefix runs a non-overlapping search at threshold and strips leading
// matched/whitespace segments from text.
func (m *Matcher) StripPrefix(text string, threshold float64) string {
	return StripPrefix(m.Search(text, threshold), text)
}

// StripPostfix runs a non-overlapping search at threshold and strips
// trailing matched/whitespace segments from text.
func (m *Matcher) StripPostfix(text string, threshold float64) string {
	return StripPostfix(m.Search(text, threshold), text)
}

// StripPostfix is the symmetric counterpart of StripPrefix: it drops
// trailing Matched segments and trailing whitespace-only Unmatched
// segments, then right-trims the last retained Unmatched segment.
func StripPostfix(matches []Match, text string) string {
	segs := SegmentIter(matches, text)
	i := len(segs) - 1
	for i >= 0 {
		seg := segs[i]
		if seg.Kind == SegmentMatched {
			i--
			continue
		}
		if strings.TrimSpace(text[seg.Start:seg.End]) == "" {
			i--
			continue
		}
		break
	}
	if i < 0 {
		return ""
	}

	end := segs[i].End
	if segs[i].Kind == SegmentUnmatched {
		piece := text[segs[i].Start:segs[i].End]
		trimmed := strings.TrimRightFunc(piece, unicode.IsSpace)
		end = segs[i].Start + len(trimmed)
	}
	return text[:end]
}
