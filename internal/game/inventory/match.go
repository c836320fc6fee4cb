package inventory

import "strings"

// maxSuggestions bounds the "did you mean" list.
const maxSuggestions = 3

// FindMatch resolves a free-form chat query against the bag. Returns
// the matched item name, or up to three close suggestions when nothing
// matched.
//
// Resolution order: exact normalized match, then prefix, then
// substring, then edit-distance suggestions.
func FindMatch(inventory []string, query string) (string, []string) {
	qn := normalize(query)
	if qn == "" {
		return "", nil
	}

	for _, name := range inventory {
		if normalize(name) == qn {
			return name, nil
		}
	}
	for _, name := range inventory {
		n := normalize(name)
		if strings.HasPrefix(n, qn) || strings.Contains(n, qn) {
			return name, nil
		}
	}

	var suggestions []string
	seen := make(map[string]bool)
	for _, name := range inventory {
		if seen[name] {
			continue
		}
		seen[name] = true
		n := normalize(name)
		limit := len(n) / 3
		if limit < 2 {
			limit = 2
		}
		if editDistance(qn, n) <= limit {
			suggestions = append(suggestions, name)
			if len(suggestions) == maxSuggestions {
				break
			}
		}
	}
	return "", suggestions
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minOf(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minOf(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
