package fontfamily

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AuburnSounds/printed/sfnt"
)

func TestScoreExactMatchIsZero(t *testing.T) {
	c := KnownFont{FamilyName: "Arial", Weight: sfnt.WeightNormal, Style: sfnt.StyleNormal}
	require.Equal(t, 0, score(c, "Arial", sfnt.WeightNormal, sfnt.StyleNormal))
}

func TestScoreFamilyMismatchIsCaseInsensitive(t *testing.T) {
	c := KnownFont{FamilyName: "Arial", Weight: sfnt.WeightNormal, Style: sfnt.StyleNormal}
	require.Equal(t, 0, score(c, "arial", sfnt.WeightNormal, sfnt.StyleNormal))
}

func TestScoreItalicObliqueMismatchCostsOne(t *testing.T) {
	c := KnownFont{FamilyName: "Arial", Weight: sfnt.WeightNormal, Style: sfnt.StyleItalic}
	require.Equal(t, 1, score(c, "Arial", sfnt.WeightNormal, sfnt.StyleOblique))
}

func TestScoreOtherStyleMismatchCosts10000(t *testing.T) {
	c := KnownFont{FamilyName: "Arial", Weight: sfnt.WeightNormal, Style: sfnt.StyleNormal}
	require.Equal(t, 10000, score(c, "Arial", sfnt.WeightNormal, sfnt.StyleItalic))
}

// TestScoreMatcherExample reproduces the worked example: two Arial
// descriptors, one normal-weight/normal-style, one bold/italic; requesting
// ("arial", 500, oblique) must prefer the bold/italic descriptor.
func TestScoreMatcherExample(t *testing.T) {
	normal := KnownFont{FamilyName: "Arial", Weight: sfnt.WeightNormal, Style: sfnt.StyleNormal}
	boldItalic := KnownFont{FamilyName: "Arial", Weight: sfnt.WeightBold, Style: sfnt.StyleItalic}

	sNormal := score(normal, "arial", sfnt.WeightMedium, sfnt.StyleOblique)
	sBoldItalic := score(boldItalic, "arial", sfnt.WeightMedium, sfnt.StyleOblique)

	require.Equal(t, 10100, sNormal)
	require.Equal(t, 201, sBoldItalic)
	require.Less(t, sBoldItalic, sNormal)
}
