package internal

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultMaxPrice is the currency-agnostic price ceiling applied when the
// user has not configured one.
const DefaultMaxPrice = 60

// Preferences is the per-request wine filter supplied by the settings store.
type Preferences struct {
	MaxPrice      int
	IgnoredGrapes []string
	AllowedTypes  []WineType
}

func DefaultPreferences() Preferences {
	return Preferences{
		MaxPrice:     DefaultMaxPrice,
		AllowedTypes: append([]WineType(nil), AllWineTypes...),
	}
}

// AcceptsPrice reports whether a price string fits under the maximum.
// Missing or unparseable prices are allowed: the filter only rejects
// listings it can prove are too expensive.
func (p Preferences) AcceptsPrice(priceText string) bool {
	if priceText == "" {
		return true
	}
	price, ok := extractNumericPrice(priceText)
	if !ok {
		return true
	}
	return price <= float64(p.MaxPrice)
}

func (p Preferences) AcceptsGrapes(grapes []string) bool {
	if len(p.IgnoredGrapes) == 0 {
		return true
	}
	for _, grape := range grapes {
		lower := strings.ToLower(grape)
		for _, ignored := range p.IgnoredGrapes {
			if lower == strings.ToLower(ignored) {
				return false
			}
		}
	}
	return true
}

// AcceptsTypeString matches a dataset type string ("Red", "White/Rosé", ...)
// against the allowed set. All types selected means no filtering.
func (p Preferences) AcceptsTypeString(typeText string) bool {
	if len(p.AllowedTypes) == 0 || len(p.AllowedTypes) == len(AllWineTypes) {
		return true
	}
	lower := strings.ToLower(typeText)
	lower = strings.ReplaceAll(lower, "é", "e")
	for _, t := range p.AllowedTypes {
		if strings.Contains(lower, string(t)) {
			return true
		}
	}
	return false
}

// AcceptsType matches an optional keyword-profile type tag. A nil tag means
// the keyword is ambiguous (regional blend) and is never filtered out.
func (p Preferences) AcceptsType(t *WineType) bool {
	if t == nil {
		return true
	}
	if len(p.AllowedTypes) == 0 || len(p.AllowedTypes) == len(AllWineTypes) {
		return true
	}
	for _, allowed := range p.AllowedTypes {
		if *t == allowed {
			return true
		}
	}
	return false
}

var (
	symbolAmountRE = regexp.MustCompile(`[\$€£]\s*(\d+\.?\d*)`)
	amountSymbolRE = regexp.MustCompile(`\b(\d+\.?\d*)\s*[\$€£]|\b(\d+\.\d{2})\b`)
	glassBottleRE  = regexp.MustCompile(`\b(\d{1,4})/(\d{1,4})\b`)
	bareTrailingRE = regexp.MustCompile(`(?:^|\s)(\d{2,5})\s*$`)
)

// extractNumericPrice pulls a numeric magnitude out of a price string for
// comparison against the maximum. Symbol-first amounts are preferred, and
// an amount-first match that is really a bare vintage year is skipped, so
// "2018 $45" compares as 45. For glass/bottle "N/M" pairs the higher
// number (the bottle) is used.
func extractNumericPrice(text string) (float64, bool) {
	if m := symbolAmountRE.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, true
		}
	}

	for _, m := range amountSymbolRE.FindAllStringSubmatch(text, -1) {
		group := m[1]
		if group == "" {
			group = m[2]
		}
		if isBareVintageYear(group) {
			continue
		}
		if v, err := strconv.ParseFloat(group, 64); err == nil {
			return v, true
		}
	}

	if m := glassBottleRE.FindStringSubmatch(text); m != nil {
		best := 0.0
		found := false
		for _, group := range m[1:] {
			if v, err := strconv.ParseFloat(group, 64); err == nil {
				found = true
				if v > best {
					best = v
				}
			}
		}
		if found {
			return best, true
		}
	}

	if m := bareTrailingRE.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil && (v < 1900 || v > 2099) {
			return float64(v), true
		}
	}

	return 0, false
}

func isBareVintageYear(s string) bool {
	if len(s) != 4 || strings.IndexByte(s, '.') >= 0 {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1900 && n <= 2099
}
