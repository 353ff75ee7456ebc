package menu

import (
	"strings"

	"winepair/internal"
)

// CoalesceEntries splits raw OCR text into discrete wine entries, carrying
// the pairing keyword of the enclosing section header onto every entry
// flushed under it.
func CoalesceEntries(text string) []internal.MenuEntry {
	var (
		entries        []internal.MenuEntry
		current        []string
		sectionKeyword string
	)

	flush := func() {
		if len(current) == 0 {
			return
		}
		entries = append(entries, buildEntry(current, sectionKeyword))
		current = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		f := computeFeatures(line)

		switch classifyLine(line, f) {
		case LineBlank:
			flush()

		case LineHeader:
			flush()
			sectionKeyword = sectionKeywordFrom(line)

		case LineBareKeyword:
			// A lone keyword label only acts as a sub-heading when no
			// entry is being accumulated. Mid-entry it is content.
			if len(current) == 0 {
				sectionKeyword = sectionKeywordFrom(line)
				continue
			}
			if shouldSplitBefore(current, line, f) {
				flush()
			}
			current = append(current, line)

		case LineContent:
			if len(current) > 0 && shouldSplitBefore(current, line, f) {
				flush()
			}
			current = append(current, line)
		}
	}
	flush()

	return entries
}

// shouldSplitBefore decides whether a line begins a new listing instead of
// continuing the accumulated one. A split needs both a completion signal in
// the accumulator (a price, a vintage with multiple lines, or sheer length)
// and a plausible wine start on the new line.
func shouldSplitBefore(current []string, line string, f lineFeatures) bool {
	if !looksLikeNewWineStart(line, f) {
		return false
	}
	accumHasPrice := false
	accumHasVintage := false
	for _, l := range current {
		if hasPriceMarker(l) {
			accumHasPrice = true
		}
		if hasVintageYear(l) {
			accumHasVintage = true
		}
	}
	if accumHasPrice {
		return true
	}
	if accumHasVintage && len(current) >= 2 {
		return true
	}
	return len(current) >= 4
}

func buildEntry(lines []string, sectionKeyword string) internal.MenuEntry {
	display := lines[0]
	for _, l := range lines {
		if !isPurePriceLine(l) {
			display = l
			break
		}
	}
	return internal.MenuEntry{
		Lines:          append([]string(nil), lines...),
		Combined:       strings.Join(lines, " "),
		DisplayLine:    display,
		Price:          entryPrice(lines),
		SectionKeyword: sectionKeyword,
	}
}
