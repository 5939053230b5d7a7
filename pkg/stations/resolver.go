package stations

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/lirantal/railil/pkg/models"
)

// matchThreshold is the normalized edit-distance cutoff: 0 is an exact
// match, 1 is totally dissimilar.
const matchThreshold = 0.3

// Resolve maps user input to a station. An exact id match wins
// immediately; otherwise the input is fuzzy-matched against every name
// field in every language, and the globally best-scoring station under
// the threshold is returned.
func Resolve(input string) (models.Station, bool) {
	if s, ok := ByID(input); ok {
		return s, true
	}

	query := normalize(input)
	if query == "" {
		return models.Station{}, false
	}

	var best models.Station
	bestScore := 1.0
	found := false
	for _, s := range All {
		for _, name := range []string{s.Name.EN, s.Name.HE, s.Name.RU, s.Name.AR} {
			score := nameScore(query, name)
			if score < bestScore {
				best = s
				bestScore = score
				found = true
			}
		}
	}
	if !found || bestScore > matchThreshold {
		return models.Station{}, false
	}
	return best, true
}

// nameScore returns the best normalized edit distance between the query
// and any contiguous run of the name's tokens. Scoring token windows
// rather than only the whole name makes the match substring-tolerant:
// "Savidor" scores 0 against "Tel Aviv - Savidor Center".
func nameScore(query, name string) float64 {
	tokens := strings.Fields(normalize(name))
	best := 1.0
	for i := range tokens {
		for j := i + 1; j <= len(tokens); j++ {
			window := strings.Join(tokens[i:j], " ")
			d := levenshtein.ComputeDistance(query, window)
			length := utf8.RuneCountInString(query)
			if wl := utf8.RuneCountInString(window); wl > length {
				length = wl
			}
			if length == 0 {
				continue
			}
			if score := float64(d) / float64(length); score < best {
				best = score
			}
		}
	}
	return best
}

// normalize case-folds, drops apostrophes and geresh marks so that
// "Modiin" still matches "Modi'in", turns other punctuation into
// spaces, and collapses runs of whitespace.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r == '\'' || r == '’' || r == '`' || r == '׳' || r == '״':
			// dropped entirely
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
