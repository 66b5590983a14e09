package similarity

import "github.com/adrg/strutil/metrics"

// Metric compares two strings and returns a similarity in [0,1].
// Implementations from github.com/adrg/strutil/metrics satisfy it.
type Metric interface {
	Compare(a, b string) float64
}

var (
	jaroWinkler = &metrics.JaroWinkler{
		CaseSensitive: true,
	}

	smithWatermanGotoh = &metrics.SmithWatermanGotoh{
		CaseSensitive: true,
		GapPenalty:    -0.5,
		Substitution: metrics.MatchMismatch{
			Match:    1,
			Mismatch: -2,
		},
	}

	levenshtein = &metrics.Levenshtein{
		CaseSensitive: true,
		InsertCost:    1,
		DeleteCost:    1,
		ReplaceCost:   1,
	}
)

// SmithWatermanGotoh returns the default alignment metric: local alignment
// with match 1, mismatch -2 and gap -0.5, normalised by the shorter string.
func SmithWatermanGotoh() Metric {
	return smithWatermanGotoh
}

// Levenshtein returns an alignment metric based on unit-cost edit distance,
// normalised by the longer string.
func Levenshtein() Metric {
	return levenshtein
}

// JaroWinkler returns the case-sensitive Jaro-Winkler similarity of a and b.
func JaroWinkler(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return jaroWinkler.Compare(a, b)
}

// SimilarText returns the character overlap ratio of a and b:
// twice the number of matching runes divided by the total rune count.
//
// Matching runes are found by taking the first longest common substring and
// recursing into the parts on its left and right. Ties are resolved in favour
// of the earliest position in a, which makes the result order dependent:
// SimilarText("bafoobar", "barfoo") != SimilarText("barfoo", "bafoobar").
func SimilarText(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 0
	}
	return float64(2*commonRunes(ra, rb)) / float64(total)
}

func commonRunes(a, b []rune) int {
	posA, posB, length := longestCommonSubstring(a, b)
	if length == 0 {
		return 0
	}

	sum := length
	if posA > 0 && posB > 0 {
		sum += commonRunes(a[:posA], b[:posB])
	}
	if posA+length < len(a) && posB+length < len(b) {
		sum += commonRunes(a[posA+length:], b[posB+length:])
	}
	return sum
}

// longestCommonSubstring returns the first (by position in a, then b) longest
// common substring of a and b.
func longestCommonSubstring(a, b []rune) (posA, posB, length int) {
	for i := range a {
		for j := range b {
			n := 0
			for i+n < len(a) && j+n < len(b) && a[i+n] == b[j+n] {
				n++
			}
			if n > length {
				posA, posB, length = i, j, n
			}
		}
	}
	return posA, posB, length
}
