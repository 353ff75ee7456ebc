package engine

import (
	"regexp"
	"strconv"
	"strings"

	"winepair/internal"
	"winepair/internal/pairing"
)

var (
	displayVintageRE      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	trailingSymbolPriceRE = regexp.MustCompile(`(?:[\$€£]\s*\d+\.?\d*|\b\d{1,4}\s*/\s*\d{1,4})\s*$`)
	// Amount-first trailing prices; group 1 lets the caller keep a bare
	// vintage year that happens to sit before a stray symbol.
	trailingAmountPriceRE = regexp.MustCompile(`\b(\d+\.?\d*)\s*[\$€£]\s*$|\b\d+\.\d{2}\s*$`)
	trailingBareNumberRE  = regexp.MustCompile(`(\d{2,5})\s*$`)
	trailingSeparatorRE   = regexp.MustCompile(`[\s|,\-–—·.]+$`)
	trailingServingWordRE = regexp.MustCompile(`(?i)\b(glass|bottle|btl|gls|carafe)\s*$`)
)

// displayName picks the best line of a multi-line entry for presentation:
// a line carrying both a pairing keyword and a vintage, else the first
// vintage line, else the first keyword line with more than one word, else
// the parser's default. Trailing price and serving fragments are stripped,
// but a trailing vintage year is kept.
func displayName(entry internal.MenuEntry) string {
	pick := ""
	for _, line := range entry.Lines {
		if hasKeyword(line) && displayVintageRE.MatchString(line) {
			pick = line
			break
		}
	}
	if pick == "" {
		for _, line := range entry.Lines {
			if displayVintageRE.MatchString(line) && !looksLikePriceOnly(line) {
				pick = line
				break
			}
		}
	}
	if pick == "" {
		for _, line := range entry.Lines {
			if len(strings.Fields(line)) > 1 && hasKeyword(line) {
				pick = line
				break
			}
		}
	}
	if pick == "" {
		pick = entry.DisplayLine
	}
	return stripTrailingPrice(pick)
}

func hasKeyword(line string) bool {
	_, ok := pairing.KeywordIn(line)
	return ok
}

func looksLikePriceOnly(line string) bool {
	stripped := stripTrailingPriceFrag(line)
	stripped = strings.TrimFunc(stripped, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
	})
	return len(stripped) <= 2
}

// stripTrailingPrice removes trailing price and serving fragments. A bare
// trailing number that parses as a plausible vintage year stays.
func stripTrailingPrice(line string) string {
	out := line
	for {
		prev := out
		out = stripTrailingPriceFrag(out)
		out = trailingServingWordRE.ReplaceAllString(out, "")
		if m := trailingBareNumberRE.FindStringSubmatch(out); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && (n < 1900 || n > 2099) {
				out = out[:len(out)-len(m[0])]
			}
		}
		out = trailingSeparatorRE.ReplaceAllString(out, "")
		if out == prev {
			break
		}
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return strings.TrimSpace(line)
	}
	return out
}

// stripTrailingPriceFrag removes one trailing currency or glass/bottle
// fragment. An amount-first match led by a plausible vintage year stays,
// mirroring the menu parser's price extraction.
func stripTrailingPriceFrag(line string) string {
	out := trailingSymbolPriceRE.ReplaceAllString(line, "")
	if m := trailingAmountPriceRE.FindStringSubmatch(out); m != nil {
		if !plausibleVintageYear(m[1]) {
			out = out[:len(out)-len(m[0])]
		}
	}
	return out
}

func plausibleVintageYear(s string) bool {
	if len(s) != 4 || strings.Contains(s, ".") {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1900 && n <= 2099
}
