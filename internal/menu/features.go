// Package menu reconstructs discrete wine listings from noisy line-based
// OCR output. Photographed menus rarely preserve blank-line structure, so
// the coalescer leans on the cues that survive OCR: capitalization, price
// patterns, and vintage years.
package menu

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	vintageYearRE = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	volumeRE      = regexp.MustCompile(`(?i)\b(\d+\s?(ml|cl|oz|ltr)|glass|bottle|btl|gls|carafe|half bottle|magnum)\b`)
)

// lineFeatures are the named boolean signals every classification and split
// decision is computed from. Each one is cheap and independently testable.
type lineFeatures struct {
	wordCount        int
	capitalizedWords int
	hasVintage       bool
	hasPrice         bool
	hasVolume        bool
	allUpperLetters  bool
	pricePure        bool
}

func computeFeatures(line string) lineFeatures {
	words := strings.Fields(line)
	f := lineFeatures{
		wordCount:  len(words),
		hasVintage: vintageYearRE.MatchString(line),
		hasPrice:   hasPriceMarker(line),
		hasVolume:  volumeRE.MatchString(line),
		pricePure:  isPurePriceLine(line),
	}
	for _, w := range words {
		if startsCapitalized(w) {
			f.capitalizedWords++
		}
	}
	letters := lettersOnly(line)
	f.allUpperLetters = letters != "" && letters == strings.ToUpper(letters)
	return f
}

func startsCapitalized(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		return unicode.IsUpper(r)
	}
	return false
}

// lettersOnly strips everything except letters, keeping accented Latin.
func lettersOnly(line string) string {
	var b strings.Builder
	for _, r := range line {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hasVintageYear(line string) bool {
	return vintageYearRE.MatchString(line)
}

// isPurePriceLine reports whether a line carries only price and serving
// information ("Glass $12 | Bottle $44", "14 / 52"). Stripping every price,
// volume, and separator token must leave almost nothing.
func isPurePriceLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	stripped := stripCurrencyPrices(line, " ")
	stripped = glassBottlePriceRE.ReplaceAllString(stripped, " ")
	stripped = volumeRE.ReplaceAllString(stripped, " ")
	stripped = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, stripped)
	return len(stripped) <= 2
}

// looksLikeNewWineStart decides whether a line plausibly begins a new
// listing rather than continuing the current one.
func looksLikeNewWineStart(line string, f lineFeatures) bool {
	if f.pricePure {
		return false
	}
	if f.hasVintage {
		return true
	}
	if f.hasPrice && len(nonPriceText(line)) > 3 {
		return true
	}
	return f.wordCount >= 2 && f.capitalizedWords >= 2 && startsCapitalized(strings.Fields(line)[0])
}

func nonPriceText(line string) string {
	stripped := stripCurrencyPrices(line, "")
	stripped = glassBottlePriceRE.ReplaceAllString(stripped, "")
	return strings.TrimSpace(stripped)
}
