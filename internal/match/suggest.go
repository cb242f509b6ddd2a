package match

import (
	"sort"
	"strings"
)

// DefaultMaxSuggestions is the number of suggestions Closest returns by default.
const DefaultMaxSuggestions = 3

// Distance computes the Levenshtein edit distance between a and b.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(a); i++ {
			above := row[i]

			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			row[i] = min(row[i]+1, row[i-1]+1, diag+cost)
			diag = above
		}
	}

	return row[len(a)]
}

// Similarity returns 1 for equal strings and 0 for completely different
// ones, ignoring case.
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == "" && b == "" {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(max(len(a), len(b)))
}

// Closest returns up to limit candidates similar to name, best first.
// Candidates scoring below minScore are dropped. Ties keep input order.
func Closest(name string, candidates []string, limit int, minScore float64) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Similarity(name, c); s >= minScore {
			ranked = append(ranked, scored{c, s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.name)
	}

	return out
}
