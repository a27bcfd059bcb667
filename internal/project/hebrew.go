package project

import "unicode"

// Text shaping flag values understood by the renderer.
const (
	TextShapingOff = 0
	TextShapingOn  = 1
)

// hebrewRatioThreshold is the fraction of non-whitespace runes that must
// fall in the Hebrew block before a string counts as Hebrew text.
const hebrewRatioThreshold = 0.30

// RequiresTextShaping reports whether the given overlay text needs
// complex text shaping. Hebrew is detected by the share of runes in the
// U+0590..U+05FF block among all non-whitespace runes.
func RequiresTextShaping(text string) bool {
	var total, hebrew int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if r >= 0x0590 && r <= 0x05FF {
			hebrew++
		}
	}
	if total == 0 {
		return false
	}
	return float64(hebrew)/float64(total) >= hebrewRatioThreshold
}
