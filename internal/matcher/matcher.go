// Package matcher provides description normalization and fuzzy similarity
// matching between estimate line-item descriptions and the reference price
// catalog. Exact matches go through Normalize; near misses are scored with
// normalized Levenshtein similarity and reported as capped, ordered
// suggestions.
package matcher

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/estimatics/roofline/pkg/constants"
)

// stripMarks removes diacritic marks so accented vendor text compares equal
// to its plain-ASCII catalog form.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a description for comparison: diacritics stripped,
// lowercased, punctuation dropped, whitespace collapsed.
func Normalize(s string) string {
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Equal reports whether two descriptions are the same after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Distance computes the Levenshtein edit distance between two strings.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Similarity scores two strings in [0, 1]: the edit distance normalized by
// the longer length. Two empty strings score 1.
func Similarity(a, b string) float64 {
	longer := len([]rune(a))
	if l := len([]rune(b)); l > longer {
		longer = l
	}
	if longer == 0 {
		return 1
	}
	return float64(longer-Distance(a, b)) / float64(longer)
}

// Suggestion is a scored fuzzy-match candidate.
type Suggestion struct {
	Index     int     // position in the candidate list
	Candidate string  // the candidate description
	Score     float64 // similarity in [0, 1]
}

// Suggest scores the target against every candidate using normalized forms,
// keeps scores at or above the similarity threshold, orders them by score
// descending with ties broken by candidate order, and caps the result at
// the suggestion limit.
func Suggest(target string, candidates []string) []Suggestion {
	normTarget := Normalize(target)

	var out []Suggestion
	for i, c := range candidates {
		score := Similarity(normTarget, Normalize(c))
		if score >= constants.SimilarityThreshold {
			out = append(out, Suggestion{Index: i, Candidate: c, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > constants.MaxSuggestions {
		out = out[:constants.MaxSuggestions]
	}
	return out
}
