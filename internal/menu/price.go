package menu

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Symbol-first amounts: "$45", "€ 38.5".
	symbolFirstPriceRE = regexp.MustCompile(`[\$€£]\s*\d+\.?\d*`)

	// Amount-first: "42€", or a bare decimal with exactly two fraction
	// digits. A bare 4-digit integer in the vintage range is a year, not
	// a price; findCurrencyPrice filters those out.
	amountFirstPriceRE = regexp.MustCompile(`\b\d+\.?\d*\s*[\$€£]|\b\d+\.\d{2}\b`)

	// Glass/bottle pairs: "14/52".
	glassBottlePriceRE = regexp.MustCompile(`\b\d{1,4}\s*/\s*\d{1,4}\b`)

	// A trailing bare integer that could be a whole-currency price.
	bareTrailingPriceRE = regexp.MustCompile(`(?:^|\s)(\d{2,5})\s*$`)
)

// findCurrencyPrice returns the first currency-marked amount in the line.
// The symbol-first form is tried before the amount-first form so that in
// "Chianti Classico 2018 $45" the vintage year next to the dollar sign
// cannot shadow the real price.
func findCurrencyPrice(text string) string {
	if m := symbolFirstPriceRE.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	for _, m := range amountFirstPriceRE.FindAllString(text, -1) {
		if !leadsWithVintageYear(m) {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// leadsWithVintageYear reports whether the matched amount starts with a
// bare 4-digit year in [1900, 2099]. Amounts with a decimal part are
// always prices.
func leadsWithVintageYear(m string) bool {
	digits := m
	for i, r := range m {
		if r < '0' || r > '9' {
			if r == '.' {
				return false
			}
			digits = m[:i]
			break
		}
	}
	if len(digits) != 4 {
		return false
	}
	n, err := strconv.Atoi(digits)
	return err == nil && n >= 1900 && n <= 2099
}

// ExtractPrice pulls the most plausible price substring out of a line.
// Currency-marked amounts win, then glass/bottle pairs, then a bare
// trailing 2-5 digit number that is not a plausible vintage year.
func ExtractPrice(text string) string {
	if m := findCurrencyPrice(text); m != "" {
		return m
	}
	if m := glassBottlePriceRE.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	if m := bareTrailingPriceRE.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && (n < 1900 || n > 2099) {
			return m[1]
		}
	}
	return ""
}

func hasPriceMarker(text string) bool {
	return ExtractPrice(text) != ""
}

// stripCurrencyPrices blanks out currency-marked amounts, leaving
// year-leading amount-first matches in place.
func stripCurrencyPrices(text, replacement string) string {
	out := symbolFirstPriceRE.ReplaceAllString(text, replacement)
	return amountFirstPriceRE.ReplaceAllStringFunc(out, func(m string) string {
		if leadsWithVintageYear(m) {
			return m
		}
		return replacement
	})
}

// entryPrice picks the price for a flushed entry from its lines: the first
// line with a currency amount, else the first with a glass/bottle pair,
// else the last with a bare trailing non-year number.
func entryPrice(lines []string) string {
	for _, line := range lines {
		if m := findCurrencyPrice(line); m != "" {
			return m
		}
	}
	for _, line := range lines {
		if m := glassBottlePriceRE.FindString(line); m != "" {
			return strings.TrimSpace(m)
		}
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if m := bareTrailingPriceRE.FindStringSubmatch(lines[i]); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && (n < 1900 || n > 2099) {
				return m[1]
			}
		}
	}
	return ""
}
