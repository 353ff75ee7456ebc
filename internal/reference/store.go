// Package reference loads the X-Wines dataset and matches noisy menu text
// against it. The store is immutable after load: indexes are built once and
// lookups never mutate state, so a loaded Store is safe for concurrent use.
package reference

import (
	"regexp"

	"winepair/internal"
	"winepair/internal/textnorm"
)

type indexEntry struct {
	wineIdx    int
	totalWords int
}

type Store struct {
	wines []internal.WineRecord

	// wordIndex maps each distinctive name word to the wines containing it.
	// wordCount[i] is the number of distinctive words in wines[i]'s name.
	wordIndex map[string][]indexEntry
	wordCount []int

	// grapeIndex maps a normalized grape name to the first wine carrying it.
	grapeIndex map[string]int
}

// Words too common across wine names to be useful for matching. They cause
// false matches: "Chateau Petrus" matching "Chateau Belair" and so on.
var stopWords = map[string]struct{}{
	// French/Italian/Spanish titles and connectors.
	"château": {}, "chateau": {}, "domaine": {}, "clos": {}, "casa": {},
	"bodega": {}, "tenuta": {}, "grand": {}, "cru": {}, "premier": {},
	"classé": {}, "classe": {}, "superiore": {},
	"del": {}, "della": {}, "delle": {}, "dei": {}, "des": {}, "les": {}, "the": {},
	// Common wine label terms.
	"reserve": {}, "reserva": {}, "riserva": {}, "selection": {}, "estate": {},
	"vineyard": {}, "vineyards": {}, "winery": {}, "cellars": {}, "collection": {},
	// Regions and geography too broad to distinguish.
	"valley": {}, "river": {}, "hills": {}, "county": {}, "coast": {},
	"mountain": {}, "napa": {}, "sonoma": {}, "russian": {}, "santa": {}, "san": {},
	// Generic descriptors.
	"wine": {}, "wines": {}, "red": {}, "white": {}, "old": {}, "vine": {},
	"vines": {}, "special": {}, "limited": {}, "edition": {}, "vintage": {},
	"bottle": {}, "brut": {}, "sec": {}, "dry": {}, "sweet": {}, "noir": {}, "blanc": {},
}

var (
	nonLetterRE      = regexp.MustCompile(`[^a-z\s]`)
	nonAlphanumRE    = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceSplitRE = regexp.MustCompile(`\s+`)
)

func NewStore(wines []internal.WineRecord) *Store {
	s := &Store{wines: wines}
	s.buildIndexes()
	return s
}

func (s *Store) WineCount() int { return len(s.wines) }

// Wines exposes the loaded records for export and diagnostics. Callers must
// not mutate the returned slice.
func (s *Store) Wines() []internal.WineRecord { return s.wines }

func (s *Store) buildIndexes() {
	s.wordIndex = make(map[string][]indexEntry, len(s.wines)*3)
	s.wordCount = make([]int, len(s.wines))
	s.grapeIndex = make(map[string]int, len(s.wines))

	for i := range s.wines {
		words := distinctiveWords(s.wines[i].Name)
		s.wordCount[i] = len(words)
		entry := indexEntry{wineIdx: i, totalWords: len(words)}
		for _, w := range words {
			s.wordIndex[w] = append(s.wordIndex[w], entry)
		}

		for _, grape := range s.wines[i].Grapes {
			key := textnorm.NormalizeForMatching(grape)
			if len(key) <= 3 {
				continue
			}
			if _, taken := s.grapeIndex[key]; !taken {
				s.grapeIndex[key] = i
			}
		}
	}
}

// distinctiveWords extracts the indexable words of a wine name: normalized,
// letters only, longer than 2 characters, and not a stop word.
func distinctiveWords(name string) []string {
	normalized := nonLetterRE.ReplaceAllString(textnorm.NormalizeForMatching(name), " ")
	var out []string
	for _, w := range whitespaceSplitRE.Split(normalized, -1) {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		out = append(out, w)
	}
	return out
}

// queryWords expands OCR text into the set of candidate index words,
// including digit-substitution variants for each word.
func queryWords(normalized string) map[string]struct{} {
	cleaned := nonAlphanumRE.ReplaceAllString(normalized, " ")
	out := map[string]struct{}{}
	for _, w := range whitespaceSplitRE.Split(cleaned, -1) {
		if len(w) <= 2 {
			continue
		}
		for variant := range textnorm.OCRWordVariants(w) {
			if _, stop := stopWords[variant]; stop {
				continue
			}
			out[variant] = struct{}{}
		}
	}
	return out
}
