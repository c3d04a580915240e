package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Closest returns the index of the item best matching query, or -1 when
// items or query are empty. Prefix matches win over edit distance.
func Closest(items []MenuItem, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(items) == 0 {
		return -1
	}
	for i, it := range items {
		if strings.HasPrefix(strings.ToLower(it.Name), q) {
			return i
		}
	}
	best, bestDist := -1, 0
	for i, it := range items {
		// Compare against the same-length head so short queries are not
		// penalised for the rest of a long name.
		name := []rune(strings.ToLower(it.Name))
		if n := len([]rune(q)); len(name) > n {
			name = name[:n]
		}
		d := levenshtein.ComputeDistance(q, string(name))
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
