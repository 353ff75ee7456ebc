// Package engine orchestrates menu parsing, reference matching, and pairing
// knowledge into ranked recommendations. All scoring is deterministic and
// every score carries a human-readable reason.
package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"winepair/internal"
	"winepair/internal/config"
	"winepair/internal/menu"
	"winepair/internal/pairing"
	"winepair/internal/reference"
	"winepair/internal/textnorm"
)

// Engine scores a parsed wine list against a food category. The reference
// store may be nil, in which case scoring degrades to keyword matching
// only. Engines are immutable and safe for concurrent use.
type Engine struct {
	cfg   config.Config
	store *reference.Store
}

func New(cfg config.Config, store *reference.Store) *Engine {
	return &Engine{cfg: cfg, store: store}
}

func (e *Engine) Store() *reference.Store { return e.store }

// WineCount reports the size of the attached dataset, 0 in keyword-only mode.
func (e *Engine) WineCount() int {
	if e.store == nil {
		return 0
	}
	return e.store.WineCount()
}

// RecommendWines parses the OCR text and returns scored candidates, best
// first. Candidates with score 0 are never returned, and no two results
// share the same alphanumeric projection of their text.
func (e *Engine) RecommendWines(text string, food internal.FoodCategory, prefs internal.Preferences) []internal.ScoredWine {
	entries := menu.CoalesceEntries(text)

	var scored []internal.ScoredWine
	for _, entry := range entries {
		if sw, ok := e.scoreEntry(entry, food, prefs); ok {
			scored = append(scored, sw)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		ri, rj := ratingOrZero(scored[i].Record), ratingOrZero(scored[j].Record)
		if ri != rj {
			return ri > rj
		}
		return strings.ToLower(scored[i].DisplayName) < strings.ToLower(scored[j].DisplayName)
	})

	seen := map[string]struct{}{}
	out := scored[:0]
	for _, sw := range scored {
		key := dedupKey(sw.OriginalText)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, sw)
	}
	return out
}

// scoreEntry merges database and keyword evidence for one entry. Keyword
// and grape evidence anchor the score; database harmonization only nudges
// it by a bonus, so ranking is never solely a function of ratings.
func (e *Engine) scoreEntry(entry internal.MenuEntry, food internal.FoodCategory, prefs internal.Preferences) (internal.ScoredWine, bool) {
	if !prefs.AcceptsPrice(entry.Price) {
		return internal.ScoredWine{}, false
	}
	if menu.IsBareKeywordEntry(entry) && entry.SectionKeyword == "" {
		return internal.ScoredWine{}, false
	}

	// Reference-database identity match, rejected if it fails preferences.
	var match *internal.MatchResult
	if e.store != nil {
		if m := e.store.FindMatchWithVintage(entry.Combined); m != nil {
			if prefs.AcceptsTypeString(m.Record.Type) && prefs.AcceptsGrapes(m.Record.Grapes) {
				match = m
			}
		}
	}

	// Three independent evidence sources for the base score.
	keywordScore, keywordReason := e.bestKeywordScore(entry.Combined, food, prefs)
	sectionScore, sectionReason := 0, ""
	if entry.SectionKeyword != "" && menu.LooksLikeWineEntry(entry) {
		sectionScore, sectionReason = profileScore(entry.SectionKeyword, food, prefs)
	}
	grapeScore, grapeReason := 0, ""
	if match != nil {
		grapeScore, grapeReason = e.bestGrapeScore(match.Record, food, prefs)
	}

	// Highest evidence wins; ties break toward grape inference.
	base, reason, pass := grapeScore, grapeReason, internal.PassDatabase
	if keywordScore > base {
		base, reason, pass = keywordScore, keywordReason, internal.PassKeyword
	}
	if sectionScore > base {
		base, reason, pass = sectionScore, sectionReason, internal.PassSection
	}

	score := 0
	switch {
	case match != nil && reference.HarmonizesWithFood(match.Record, food):
		if base > 0 {
			score = min(base+e.cfg.DBConfirmBonus, 10)
			reason = fmt.Sprintf("%s. Database confirms this pairing with %s", reason, food.DisplayName())
		} else {
			score = e.ratingTier(match.Record, 8, 7, 6)
			reason = fmt.Sprintf("Database confirms %s pairs with %s", match.Record.Name, food.DisplayName())
			pass = internal.PassDatabase
		}
	case match != nil:
		if base > 0 {
			score = base
		} else {
			score = e.ratingTier(match.Record, 5, 4, 3)
			reason = fmt.Sprintf("%s is in the wine database but its pairing with %s is unconfirmed", match.Record.Name, food.DisplayName())
			pass = internal.PassDatabase
		}
	default:
		if base <= 0 {
			return internal.ScoredWine{}, false
		}
		score = base
		// Keyword-scored entries still get display enrichment from the
		// store, with a smaller bonus than a primary database match.
		if e.store != nil {
			if enrich := e.store.FindMatch(entry.Combined); enrich != nil && prefs.AcceptsGrapes(enrich.Grapes) {
				match = &internal.MatchResult{Record: enrich, VintageMatch: internal.VintageNotChecked}
				if reference.HarmonizesWithFood(enrich, food) {
					score = min(score+e.cfg.EnrichBonus, 10)
				}
			}
		}
	}
	if score <= 0 {
		return internal.ScoredWine{}, false
	}

	sw := internal.ScoredWine{
		OriginalText: entry.Combined,
		Score:        score,
		Reason:       reason,
		Pass:         pass,
		DisplayName:  displayName(entry),
		Price:        entry.Price,
		VintageMatch: internal.VintageNotChecked,
	}
	if match != nil {
		sw.Record = match.Record
		sw.VintageMatch = match.VintageMatch
		sw.Year = match.Year
		if match.VintageMatch == internal.VintageClosest {
			if closest, ok := reference.FindClosestVintage(match.Record.Vintages, match.Year); ok {
				sw.ClosestVintage = closest
			}
		}
	}
	return sw, true
}

// bestKeywordScore scans the text for every pairing keyword and returns the
// best score for the food. Score wins, not keyword length: a line matching
// both "cabernet sauvignon" and "cabernet" uses whichever profile scores
// higher for the target food.
func (e *Engine) bestKeywordScore(text string, food internal.FoodCategory, prefs internal.Preferences) (int, string) {
	normalized := textnorm.NormalizeForOCRMatching(text)
	best, reason := 0, ""
	for _, kw := range pairing.Keywords() {
		if !strings.Contains(normalized, textnorm.NormalizeForMatching(kw)) {
			continue
		}
		profile, _ := pairing.Lookup(kw)
		if !prefs.AcceptsType(profile.Type) {
			continue
		}
		if s := profile.Score(food); s > best {
			best = s
			reason = profile.Description
		}
	}
	return best, reason
}

// bestGrapeScore infers a pairing score from a matched record's grape list.
func (e *Engine) bestGrapeScore(rec *internal.WineRecord, food internal.FoodCategory, prefs internal.Preferences) (int, string) {
	best, reason := 0, ""
	for _, grape := range rec.Grapes {
		s, r := profileScore(textnorm.NormalizeForMatching(grape), food, prefs)
		if s > best {
			best = s
			reason = r
		}
	}
	return best, reason
}

func profileScore(keyword string, food internal.FoodCategory, prefs internal.Preferences) (int, string) {
	profile, ok := pairing.Lookup(keyword)
	if !ok {
		return 0, ""
	}
	if !prefs.AcceptsType(profile.Type) {
		return 0, ""
	}
	return profile.Score(food), profile.Description
}

func (e *Engine) ratingTier(rec *internal.WineRecord, high, mid, low int) int {
	rating := float64(rec.AverageRating)
	switch {
	case !math.IsNaN(rating) && rating >= e.cfg.RatingTierHigh:
		return high
	case !math.IsNaN(rating) && rating >= e.cfg.RatingTierMid:
		return mid
	default:
		return low
	}
}

func ratingOrZero(rec *internal.WineRecord) float32 {
	if rec == nil || math.IsNaN(float64(rec.AverageRating)) {
		return 0
	}
	return rec.AverageRating
}

// dedupKey is the alphanumeric-only lowercase projection two duplicate
// listings share.
func dedupKey(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
