package fontfamily

import (
	"strings"

	"github.com/AuburnSounds/printed/sfnt"
)

// score computes the matcher's distance between a registered font and a
// requested (family, weight, style) triple, per spec §4.9's exact scoring
// formula. Lower is better; FindBestMatch keeps the minimum, first-seen
// candidate winning ties.
func score(candidate KnownFont, family string, weight sfnt.Weight, style sfnt.Style) int {
	s := 0

	if !strings.EqualFold(candidate.FamilyName, family) {
		s += 100000
	}

	s += absWeight(candidate.Weight - weight)

	s += styleMismatchPenalty(candidate.Style, style)

	return s
}

func absWeight(w sfnt.Weight) int {
	if w < 0 {
		return int(-w)
	}
	return int(w)
}

// styleMismatchPenalty scores exact matches as 0, an italic<->oblique
// mismatch (the two slant styles closest to each other visually) as 1, and
// every other style mismatch (normal vs. italic, normal vs. oblique) as
// 10000 (spec §4.9).
func styleMismatchPenalty(a, b sfnt.Style) int {
	if a == b {
		return 0
	}
	if isSlanted(a) && isSlanted(b) {
		return 1
	}
	return 10000
}

func isSlanted(s sfnt.Style) bool {
	return s == sfnt.StyleItalic || s == sfnt.StyleOblique
}
