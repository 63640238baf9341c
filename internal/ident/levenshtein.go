package ident

// DefaultMinSimilarity is the lowest normalized similarity Closest accepts.
const DefaultMinSimilarity = 0.5

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-character edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity computes a normalized similarity score between 0 and 1 of two
// keys after NormalizeKey. 1.0 means identical keys.
func Similarity(a, b string) float64 {
	normA := NormalizeKey(a)
	normB := NormalizeKey(b)

	if len(normA) == 0 && len(normB) == 0 {
		return 1.0
	}

	maxLen := max(len(normA), len(normB))

	return 1.0 - float64(Levenshtein(normA, normB))/float64(maxLen)
}

// Closest returns the candidate most similar to key, or "" when none
// reaches DefaultMinSimilarity. Ties keep the earliest candidate.
func Closest(key string, candidates []string) string {
	best := ""
	bestScore := DefaultMinSimilarity

	for _, c := range candidates {
		score := Similarity(key, c)
		if score > bestScore || (best == "" && score == bestScore) {
			best = c
			bestScore = score
		}
	}

	return best
}
