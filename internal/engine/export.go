package engine

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"winepair/internal"
)

// ExportScoredToXLSX writes the full ranked candidate list to a worksheet
// for offline review of a recommendation run.
func ExportScoredToXLSX(scored []internal.ScoredWine, food internal.FoodCategory, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"rank", "food", "display_name", "score", "price", "pass", "reason",
		"wine_id", "db_name", "type", "country", "region", "winery", "avg_rating",
		"vintage_match", "ocr_year", "closest_vintage", "original_text",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, sw := range scored {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, i+1)
		set(2, string(food))
		set(3, sw.DisplayName)
		set(4, sw.Score)
		set(5, sw.Price)
		set(6, string(sw.Pass))
		set(7, sw.Reason)
		if sw.Record != nil {
			set(8, sw.Record.WineID)
			set(9, sw.Record.Name)
			set(10, sw.Record.Type)
			set(11, sw.Record.Country)
			set(12, sw.Record.RegionName)
			set(13, sw.Record.WineryName)
			set(14, ratingOrZero(sw.Record))
		}
		set(15, string(sw.VintageMatch))
		if sw.Year != 0 {
			set(16, sw.Year)
		}
		if sw.ClosestVintage != 0 {
			set(17, sw.ClosestVintage)
		}
		set(18, sw.OriginalText)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
