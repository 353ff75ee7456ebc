package engine

import (
	"fmt"

	"winepair/internal"
	"winepair/internal/menu"
)

const noMatchReasoning = "Could not identify any wines from the list that match known varieties. " +
	"Try taking a clearer photo of the wine list."

// BuildRecommendation turns ranked candidates into the final result: the
// top pick plus up to MaxAlternatives runners-up, each with its own
// reasoning and vintage note. Pure transform, no I/O.
func (e *Engine) BuildRecommendation(scored []internal.ScoredWine, food internal.FoodCategory, rawText string) internal.WineRecommendation {
	if len(scored) == 0 {
		return internal.WineRecommendation{
			WineName:  internal.NoMatchWineName,
			Reasoning: noMatchReasoning,
			RawText:   rawText,
		}
	}

	top := scored[0]
	price := top.Price
	if price == "" {
		price = menu.ExtractPrice(top.OriginalText)
	}

	rec := internal.WineRecommendation{
		WineName:     top.DisplayName,
		Price:        price,
		Reasoning:    fmt.Sprintf("%s. Scored %d/10 as a pairing with %s.", top.Reason, top.Score, food.DisplayName()),
		RawText:      rawText,
		Record:       top.Record,
		VintageMatch: top.VintageMatch,
		VintageNote:  vintageNote(top),
	}

	limit := e.cfg.MaxAlternatives
	for i := 1; i < len(scored) && i <= limit; i++ {
		alt := scored[i]
		rec.Alternatives = append(rec.Alternatives, internal.WineAlternative{
			WineName:     alt.DisplayName,
			Price:        alt.Price,
			Score:        alt.Score,
			Reason:       alt.Reason,
			Record:       alt.Record,
			VintageMatch: alt.VintageMatch,
			VintageNote:  vintageNote(alt),
		})
	}
	if len(rec.Alternatives) > 0 {
		rec.RunnerUp = rec.Alternatives[0].WineName
	}
	return rec
}

// vintageNote synthesizes the user-facing note for a candidate's vintage
// state. Exact and unchecked vintages need no note.
func vintageNote(sw internal.ScoredWine) string {
	switch sw.VintageMatch {
	case internal.VintageClosest:
		if sw.ClosestVintage != 0 {
			return fmt.Sprintf("%d not found in database, showing data for %d vintage", sw.Year, sw.ClosestVintage)
		}
		return fmt.Sprintf("%d not found in database", sw.Year)
	case internal.VintageNotInDatabase:
		return fmt.Sprintf("no vintage data in database for %d", sw.Year)
	default:
		return ""
	}
}
