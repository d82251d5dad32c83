package match

import (
	"strings"
	"unicode/utf8"
)

// MinSimilarity is the score a candidate needs to be suggested.
const MinSimilarity = 0.6

// normalize folds case and drops underscores so that "order_item" and
// "OrderItem" compare equal.
func normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

// Similarity scores a against b in [0, 1], 1 meaning equal after
// normalization.
func Similarity(a, b string) float64 {
	na, nb := normalize(a), normalize(b)

	longest := max(utf8.RuneCountInString(na), utf8.RuneCountInString(nb))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(na, nb))/float64(longest)
}

// Suggest returns the candidate most similar to name, if any reaches
// MinSimilarity. Ties go to the earlier candidate.
func Suggest(name string, candidates []string) (string, bool) {
	best, bestScore := "", MinSimilarity

	for _, c := range candidates {
		if c == name {
			continue
		}

		if score := Similarity(name, c); score >= bestScore && (best == "" || score > bestScore) {
			best, bestScore = c, score
		}
	}

	return best, best != ""
}
