package menu

import (
	"regexp"
	"strings"

	"winepair/internal/pairing"
	"winepair/internal/textnorm"
)

// LineKind tags each OCR line before coalescing.
type LineKind int

const (
	LineBlank LineKind = iota
	LineHeader
	LineBareKeyword
	LineContent
)

// continuationRE matches trailing "cont.", "cont'd", "continued" markers,
// parenthesized or not, that menus put on headers spanning a page break.
var continuationRE = regexp.MustCompile(`(?i)\(?\s*(cont\.?|cont'd|continued)\s*\)?\s*$`)

// headerPhrases are generic section titles compared against a line's
// letters-only lowercase projection.
var headerPhrases = map[string]struct{}{
	"wine": {}, "wines": {}, "winelist": {}, "winemenu": {}, "wineselection": {},
	"ourwines": {}, "housewines": {}, "premiumwines": {}, "reservelist": {},
	"red": {}, "reds": {}, "redwine": {}, "redwines": {},
	"white": {}, "whites": {}, "whitewine": {}, "whitewines": {},
	"rose": {}, "roses": {}, "rosewine": {}, "rosewines": {},
	"sparkling": {}, "sparklingwine": {}, "sparklingwines": {}, "bubbles": {},
	"dessertwines": {}, "sweetwines": {}, "fortifiedwines": {},
	"bytheglass": {}, "bythebottle": {}, "glasspours": {},
	"winesbytheglass": {}, "winesbythebottle": {},
	"cellarselections": {}, "sommelierselection": {}, "sommelierselections": {},
}

// classifyLine tags a trimmed line. LineBareKeyword is only acted on by the
// coalescer when no entry is being accumulated; mid-entry it is treated as
// content.
func classifyLine(line string, f lineFeatures) LineKind {
	if len(line) <= 2 {
		return LineBlank
	}
	if isHeaderLine(line, f) {
		return LineHeader
	}
	if isBareKeywordLine(line, f) {
		return LineBareKeyword
	}
	return LineContent
}

func isHeaderLine(line string, f lineFeatures) bool {
	if continuationRE.MatchString(line) && continuationRE.FindStringIndex(line)[0] > 0 {
		return true
	}
	projection := strings.ToLower(textnorm.StripAccents(lettersOnly(line)))
	if _, ok := headerPhrases[projection]; ok {
		return true
	}
	// Short all-caps lines with no entry signals read as section titles.
	if f.wordCount <= 4 && f.allUpperLetters && !f.hasVintage && !f.hasPrice && !f.hasVolume {
		return true
	}
	return false
}

// isBareKeywordLine detects a lone keyword label like "Merlot" or
// "Chardonnay Wines" used as a sub-heading. The accepted suffix forms are a
// fixed rule set, not general pluralization.
func isBareKeywordLine(line string, f lineFeatures) bool {
	if f.wordCount > 3 || f.hasVintage || f.hasPrice || f.hasVolume {
		return false
	}
	normalized := textnorm.NormalizeForMatching(strings.TrimSpace(line))
	for _, kw := range pairing.Keywords() {
		key := textnorm.NormalizeForMatching(kw)
		switch normalized {
		case key, key + "s", key + " wine", key + " wines":
			return true
		}
	}
	return false
}

// sectionKeywordFrom extracts the pairing keyword carried by a header, if
// any. "PINOT NOIR cont." yields "pinot noir"; "RED WINES" yields nothing.
func sectionKeywordFrom(line string) string {
	cleaned := continuationRE.ReplaceAllString(line, "")
	if kw, ok := pairing.KeywordIn(cleaned); ok {
		return kw
	}
	return ""
}
