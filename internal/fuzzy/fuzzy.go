// Package fuzzy ranks candidate spellings by edit distance.
// argp uses it to propose a flag or command when a token is not recognized.
package fuzzy

import (
	"cmp"
	"slices"
	"strings"
)

// Matcher finds close spellings among a set of candidates
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher accepting candidates within maxDistance edits
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // single characters match almost anything
	}
}

// Match is one ranked candidate
type Match struct {
	Value    string
	Distance int
	Prefix   int // length of the common prefix with the input
}

// Closest returns the best candidate, or false when none is close enough.
func (m *Matcher) Closest(input string, candidates []string) (string, bool) {
	matches := m.Rank(input, candidates)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Value, true
}

// Rank returns the candidates within range, best first. Exact matches are
// skipped. Ties keep the order of candidates, which for argp is declaration
// order.
func (m *Matcher) Rank(input string, candidates []string) []Match {
	in := []rune(strings.ToLower(input))
	if len(in) < m.minLength {
		return nil
	}

	var matches []Match
	for _, c := range candidates {
		cr := []rune(strings.ToLower(c))
		if slices.Equal(in, cr) {
			continue
		}
		d := m.distance(in, cr)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{Value: c, Distance: d, Prefix: commonPrefix(in, cr)})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(b.Prefix, a.Prefix)
	})
	return matches
}

// distance is the Levenshtein distance between a and b, cut off at
// maxDistance+1 as soon as the bound is exceeded.
func (m *Matcher) distance(a, b []rune) int {
	if d := len(a) - len(b); d > m.maxDistance || -d > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b []rune) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// Suggest returns up to limit candidates close to input, best first.
func Suggest(input string, candidates []string, maxDistance, limit int) []string {
	matches := NewMatcher(maxDistance).Rank(input, candidates)
	out := make([]string, 0, min(len(matches), limit))
	for _, m := range matches[:min(len(matches), limit)] {
		out = append(out, m.Value)
	}
	return out
}
