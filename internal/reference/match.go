package reference

import (
	"regexp"
	"strconv"
	"strings"

	"winepair/internal"
	"winepair/internal/textnorm"
)

var vintageRE = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// FindMatch resolves noisy menu text to a dataset wine using the word
// index. A match requires at least 2 distinctive name words present in the
// text and coverage of at least half the wine's distinctive words, which
// keeps common label words from pulling in unrelated wines. Ties prefer
// higher coverage, then more matched words. When no name matches, grape
// names in the text are tried as a fallback.
func (s *Store) FindMatch(text string) *internal.WineRecord {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lower := textnorm.NormalizeForMatching(text)
	query := queryWords(lower)

	counts := map[int]int{}
	for word := range query {
		for _, entry := range s.wordIndex[word] {
			counts[entry.wineIdx]++
		}
	}

	bestIdx := -1
	var bestRatio float32
	bestCount := 0
	for idx, matchCount := range counts {
		total := s.wordCount[idx]
		if total == 0 || matchCount < 2 {
			continue
		}
		ratio := float32(matchCount) / float32(total)
		if ratio < 0.5 {
			continue
		}
		if ratio > bestRatio || (ratio == bestRatio && matchCount > bestCount) {
			bestRatio = ratio
			bestCount = matchCount
			bestIdx = idx
		}
	}
	if bestIdx >= 0 {
		return &s.wines[bestIdx]
	}

	// Single-word grape fallback.
	for word := range query {
		if idx, ok := s.grapeIndex[word]; ok {
			return &s.wines[idx]
		}
	}
	// Multi-word grapes as substrings of the full text.
	for grape, idx := range s.grapeIndex {
		if strings.Contains(grape, " ") && strings.Contains(lower, grape) {
			return &s.wines[idx]
		}
	}
	return nil
}

// FindMatchWithVintage matches the text and classifies the vintage year
// found in it against the wine's known vintages.
func (s *Store) FindMatchWithVintage(text string) *internal.MatchResult {
	rec := s.FindMatch(text)
	if rec == nil {
		return nil
	}

	year, ok := ExtractVintageYear(text)
	if !ok {
		return &internal.MatchResult{Record: rec, VintageMatch: internal.VintageNotChecked}
	}
	if len(rec.Vintages) == 0 {
		return &internal.MatchResult{Record: rec, VintageMatch: internal.VintageNotInDatabase, Year: year}
	}
	for _, v := range rec.Vintages {
		if v == year {
			return &internal.MatchResult{Record: rec, VintageMatch: internal.VintageExact, Year: year}
		}
	}
	return &internal.MatchResult{Record: rec, VintageMatch: internal.VintageClosest, Year: year}
}

// ExtractVintageYear finds the first plausible vintage year in the text.
func ExtractVintageYear(text string) (int, bool) {
	m := vintageRE.FindString(text)
	if m == "" {
		return 0, false
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return year, true
}

// FindClosestVintage returns the known vintage nearest to the target year.
func FindClosestVintage(vintages []int, target int) (int, bool) {
	if len(vintages) == 0 {
		return 0, false
	}
	best := vintages[0]
	for _, v := range vintages[1:] {
		if abs(v-target) < abs(best-target) {
			best = v
		}
	}
	return best, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
