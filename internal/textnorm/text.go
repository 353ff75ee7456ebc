// Package textnorm holds the pure text normalization used by both index
// building and query matching. It deals with the two classes of OCR error
// that break matching on real menu photos: dropped accents
// (Château→Chateau, Rosé→Rose) and visually-confused characters
// (O↔0, l↔1, S↔5, rn↔m).
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// StripAccents removes diacritical marks via Unicode NFD decomposition
// followed by removal of combining marks. Total: on a transform failure the
// input is returned unchanged.
func StripAccents(text string) string {
	out, _, err := transform.String(accentStripper, text)
	if err != nil {
		return text
	}
	return out
}

// NormalizeForMatching lowercases and strips accents. Index builders and
// query paths must both go through this function or matching breaks.
func NormalizeForMatching(text string) string {
	return StripAccents(strings.ToLower(text))
}

// OCRCorrectWord applies the common digit-for-letter substitutions 0→o,
// 1→l, 5→s. A word that is entirely digits is returned unchanged so prices
// and vintages survive.
func OCRCorrectWord(word string) string {
	allDigits := len(word) > 0
	for _, r := range word {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return word
	}
	return substituteDigits(word)
}

func substituteDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '0':
			b.WriteRune('o')
		case '1':
			b.WriteRune('l')
		case '5':
			b.WriteRune('s')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RnmVariants returns the word plus its rn↔m ligature confusions. At most
// three variants come back.
func RnmVariants(word string) []string {
	variants := []string{word}
	if strings.Contains(word, "rn") {
		variants = append(variants, strings.ReplaceAll(word, "rn", "m"))
	}
	if strings.Contains(word, "m") {
		variants = append(variants, strings.ReplaceAll(word, "m", "rn"))
	}
	return variants
}

// OCRWordVariants expands a query word into the set of index keys it could
// appear under: the original, the digit-corrected form, and the rn/m
// confusions of each. Typically 1-6 results.
func OCRWordVariants(word string) map[string]struct{} {
	base := []string{word}
	if corrected := OCRCorrectWord(word); corrected != word {
		base = append(base, corrected)
	}
	result := make(map[string]struct{}, 6)
	for _, w := range base {
		for _, v := range RnmVariants(w) {
			result[v] = struct{}{}
		}
	}
	return result
}

// NormalizeForOCRMatching is the substring-scan form: lowercase, strip
// accents, then apply digit substitutions character-wise across the whole
// text. Unlike OCRCorrectWord it is not word-aware, so legitimate numbers
// are rewritten too; callers that need prices intact extract them first.
func NormalizeForOCRMatching(text string) string {
	return substituteDigits(NormalizeForMatching(text))
}
