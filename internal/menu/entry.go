package menu

import (
	"strings"

	"winepair/internal"
)

// LooksLikeWineEntry gates whether an entry with no keyword match of its
// own may inherit the enclosing section's pairing score. It keeps logistics
// lines like "Glass $12 | Bottle $44" from being scored as wines.
func LooksLikeWineEntry(e internal.MenuEntry) bool {
	if isPurePriceLine(e.Combined) {
		return false
	}
	if hasVintageYear(e.Combined) {
		return true
	}
	for _, w := range strings.Fields(e.Combined) {
		if w == "NV" {
			return true
		}
	}
	f := computeFeatures(e.DisplayLine)
	return f.wordCount >= 2 && f.capitalizedWords >= 2
}

// IsBareKeywordEntry flags entries that are just a short keyword label with
// no price, vintage, or volume. They are excluded from keyword-fallback
// scoring unless a section context explicitly applies.
func IsBareKeywordEntry(e internal.MenuEntry) bool {
	f := computeFeatures(e.Combined)
	return isBareKeywordLine(e.Combined, f)
}
