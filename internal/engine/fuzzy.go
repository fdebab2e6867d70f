package engine

import "strings"

// FuzzyScore rates how well a free-text query matches a title using a
// case-insensitive, order-preserving subsequence scan. Not an edit
// distance: out-of-order query characters only earn credit for the
// in-order prefix they can align.
//
// Scoring: +1 per matched character, +0.5*streak when a run of
// consecutive matches ends, -0.1 per gap while query remains, then
// +2*len(query) for a prefix match, +10 for an exact match, and -0.5
// per unmatched query character. Result floors at 0.
func FuzzyScore(query, target string) float64 {
	if query == "" || target == "" {
		return 0
	}

	q := strings.ToLower(query)
	t := strings.ToLower(target)

	score := 0.0
	queryIdx := 0
	consecutive := 0

	for i := 0; i < len(t); i++ {
		if queryIdx < len(q) && t[i] == q[queryIdx] {
			score++
			consecutive++
			queryIdx++
			continue
		}
		if consecutive > 0 {
			score += float64(consecutive) * 0.5
		}
		consecutive = 0
		if queryIdx < len(q) {
			score -= 0.1
		}
	}

	if strings.HasPrefix(t, q) {
		score += float64(len(q)) * 2
	}
	if q == t {
		score += 10
	}

	score -= float64(len(q)-queryIdx) * 0.5

	return max(0, score)
}
