package sfnt

import "strings"

// classify derives a Classification following the cascade of spec §4.7:
// OS/2 first, then post+head, then a last-chance sub-family substring
// heuristic. Each source is a clearly separated rule set selected by a
// single dispatch, per the design note in spec §9 ("model it as a tagged
// sum of sources and a single selector, not as nested conditionals").
func classify(os2 *os2Table, headData []byte, post *postTable, subFamily string) Classification {
	if os2 != nil {
		return classifyFromOS2(os2)
	}
	return classifyFallback(headData, post, subFamily)
}

func classifyFromOS2(os2 *os2Table) Classification {
	c := Classification{
		Weight:       Weight(100 * ((int(os2.usWeightClass) + 50) / 100)),
		IsMonospaced: os2.panose[0] == 2 && os2.panose[3] == 9,
	}

	const (
		fsSelectionItalic  = 1 << 0
		fsSelectionOblique = 1 << 9
	)
	switch {
	case os2.fsSelection&fsSelectionOblique != 0:
		c.Style = StyleOblique
	case os2.fsSelection&fsSelectionItalic != 0:
		c.Style = StyleItalic
	default:
		c.Style = StyleNormal
	}

	return c
}

// classifyFallback implements spec §4.7 rules 2-4: post.isFixedPitch for
// monospace when OS/2 is absent, head.macStyle for weight/style when head
// is present, and finally sub-family substring matching.
func classifyFallback(headData []byte, post *postTable, subFamily string) Classification {
	var c Classification
	c.Weight = WeightNormal

	if post != nil {
		c.IsMonospaced = post.isFixedPitch
	}

	if headData != nil {
		macStyle, err := headMacStyle(headData)
		if err == nil {
			if macStyle&(1<<0) != 0 {
				c.Weight = WeightBold
			}
			if macStyle&(1<<1) != 0 {
				c.Style = StyleItalic
			}
			return c
		}
	}

	return classifyFromSubFamily(subFamily, c)
}

func classifyFromSubFamily(subFamily string, base Classification) Classification {
	lower := strings.ToLower(subFamily)

	switch {
	case strings.Contains(lower, "thin"):
		base.Weight = WeightThin
	case strings.Contains(lower, "ultra light"), strings.Contains(lower, "ultralight"), strings.Contains(lower, "hairline"):
		base.Weight = WeightThinest
	case strings.Contains(lower, "extralight"):
		base.Weight = WeightExtraLight
	case strings.Contains(lower, "light"):
		base.Weight = WeightLight
	case strings.Contains(lower, "demi bold"), strings.Contains(lower, "semibold"):
		base.Weight = WeightSemiBold
	case strings.Contains(lower, "extrabold"):
		base.Weight = WeightExtraBold
	case strings.Contains(lower, "bold"), strings.Contains(lower, "heavy"):
		base.Weight = WeightBold
	case strings.Contains(lower, "medium"):
		base.Weight = WeightMedium
	case strings.Contains(lower, "black"), strings.Contains(lower, "negreta"):
		base.Weight = WeightBlack
	default:
		base.Weight = WeightNormal
	}

	switch {
	case strings.Contains(lower, "italic"):
		base.Style = StyleItalic
	case strings.Contains(lower, "oblique"):
		base.Style = StyleOblique
	default:
		base.Style = StyleNormal
	}

	return base
}
