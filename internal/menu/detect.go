package menu

import (
	"strings"

	"winepair/internal/pairing"
	"winepair/internal/textnorm"
)

type DetectResult struct {
	IsWineList bool
	Score      float64
	Reason     string
}

var detectWords = []string{"wine", "vineyard", "cellar", "sommelier", "glass", "bottle", "vintage", "reserve"}

// DetectWineList scores whether OCR text plausibly came from a wine list.
// Useful as a guard before running the full pipeline on a photo of the
// dessert menu.
func DetectWineList(text string) DetectResult {
	normalized := textnorm.NormalizeForOCRMatching(text)

	score := 0.0
	for _, w := range detectWords {
		if strings.Contains(normalized, w) {
			score += 0.1
		}
	}

	keywordHits := 0
	for _, kw := range pairing.Keywords() {
		if strings.Contains(normalized, textnorm.NormalizeForMatching(kw)) {
			keywordHits++
			if keywordHits >= 4 {
				break
			}
		}
	}
	score += 0.15 * float64(keywordHits)

	lines := strings.Split(text, "\n")
	priceLines, vintageLines := 0, 0
	for _, line := range lines {
		if hasPriceMarker(line) {
			priceLines++
		}
		if hasVintageYear(line) {
			vintageLines++
		}
	}
	if priceLines >= 2 {
		score += 0.2
	}
	if vintageLines >= 2 {
		score += 0.2
	}
	if score > 1 {
		score = 1
	}

	isWineList := score >= 0.45
	reason := "rules_negative"
	if isWineList {
		reason = "rules_positive"
	}
	return DetectResult{IsWineList: isWineList, Score: score, Reason: reason}
}
