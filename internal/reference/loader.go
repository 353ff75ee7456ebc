package reference

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"winepair/internal"
)

// X-Wines CSV column positions. The dataset carries more columns than we
// use; rows shorter than wineMinFields are skipped.
const (
	colWineID   = 0
	colName     = 1
	colType     = 2
	colGrapes   = 4
	colHarmonize = 5
	colABV      = 6
	colBody     = 7
	colAcidity  = 8
	colCountry  = 10
	colRegion   = 12
	colWinery   = 14
	colVintages = 16

	wineMinFields = 15
)

const (
	minVintageYear = 1900
	maxVintageYear = 2099
)

// LoadFromFiles loads the dataset, preferring the binary cache next to the
// wines CSV. A stale or corrupt cache is deleted and the CSVs are parsed
// instead, after which the cache is rewritten.
func LoadFromFiles(winesPath, ratingsPath string) (*Store, error) {
	cachePath := cachePathFor(winesPath)

	if s, err := loadFromCache(cachePath); err == nil {
		return s, nil
	} else if !os.IsNotExist(err) {
		os.Remove(cachePath)
	}

	s, err := loadFromCSVFiles(winesPath, ratingsPath)
	if err != nil {
		return nil, err
	}
	if err := writeCache(cachePath, s.wines); err != nil {
		os.Remove(cachePath)
	}
	return s, nil
}

// LoadFromFilesContext is LoadFromFiles with the two CSVs parsed in
// parallel. Ratings are attached to wines after both finish.
func LoadFromFilesContext(ctx context.Context, winesPath, ratingsPath string) (*Store, error) {
	cachePath := cachePathFor(winesPath)

	if s, err := loadFromCache(cachePath); err == nil {
		return s, nil
	} else if !os.IsNotExist(err) {
		os.Remove(cachePath)
	}

	var (
		wines   []wineRow
		ratings map[string]float32
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := os.Open(winesPath)
		if err != nil {
			return err
		}
		defer f.Close()
		wines, err = parseWines(f)
		return err
	})
	g.Go(func() error {
		f, err := os.Open(ratingsPath)
		if err != nil {
			return err
		}
		defer f.Close()
		ratings, err = parseRatings(f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := storeFromRows(wines, ratings)
	if err := writeCache(cachePath, s.wines); err != nil {
		os.Remove(cachePath)
	}
	return s, nil
}

func loadFromCSVFiles(winesPath, ratingsPath string) (*Store, error) {
	rf, err := os.Open(ratingsPath)
	if err != nil {
		return nil, fmt.Errorf("open ratings: %w", err)
	}
	defer rf.Close()
	ratings, err := parseRatings(rf)
	if err != nil {
		return nil, fmt.Errorf("parse ratings: %w", err)
	}

	wf, err := os.Open(winesPath)
	if err != nil {
		return nil, fmt.Errorf("open wines: %w", err)
	}
	defer wf.Close()
	rows, err := parseWines(wf)
	if err != nil {
		return nil, fmt.Errorf("parse wines: %w", err)
	}

	return storeFromRows(rows, ratings), nil
}

// LoadFromReaders parses the two CSV streams directly, bypassing the cache.
func LoadFromReaders(winesReader, ratingsReader io.Reader) (*Store, error) {
	ratings, err := parseRatings(ratingsReader)
	if err != nil {
		return nil, fmt.Errorf("parse ratings: %w", err)
	}
	rows, err := parseWines(winesReader)
	if err != nil {
		return nil, fmt.Errorf("parse wines: %w", err)
	}
	return storeFromRows(rows, ratings), nil
}

type wineRow struct {
	record internal.WineRecord
}

func storeFromRows(rows []wineRow, ratings map[string]float32) *Store {
	wines := make([]internal.WineRecord, 0, len(rows))
	for _, row := range rows {
		rec := row.record
		if avg, ok := ratings[rec.WineID]; ok {
			rec.AverageRating = avg
		}
		wines = append(wines, rec)
	}
	return NewStore(wines)
}

func parseWines(r io.Reader) ([]wineRow, error) {
	cr := csv.NewReader(bufio.NewReaderSize(r, 128*1024))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	// Skip header.
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var rows []wineRow
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(fields) < wineMinFields {
			continue
		}
		rec := internal.WineRecord{
			WineID:        fields[colWineID],
			Name:          fields[colName],
			Type:          fields[colType],
			Grapes:        parseBracketList(fields[colGrapes]),
			Harmonize:     parseBracketList(fields[colHarmonize]),
			ABV:           parseFloatOrNaN(fields[colABV]),
			Body:          fields[colBody],
			Acidity:       fields[colAcidity],
			Country:       fields[colCountry],
			RegionName:    fields[colRegion],
			WineryName:    fields[colWinery],
			AverageRating: float32(math.NaN()),
		}
		if len(fields) > colVintages {
			rec.Vintages = parseVintages(fields[colVintages])
		}
		rows = append(rows, wineRow{record: rec})
	}
	return rows, nil
}

// parseRatings streams the ratings CSV and returns per-wine averages rounded
// down to one decimal. The file is large (21M rows for the full dataset), so
// fields are sliced out of each line without a CSV reader: the columns we
// need never contain quoted commas.
func parseRatings(r io.Reader) (map[string]float32, error) {
	type sumCount struct {
		sum   float64
		count int
	}
	sums := make(map[string]sumCount, 131072)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 128*1024), 1024*1024)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			first = false
			continue
		}
		// RatingID,UserID,WineID,Vintage,Rating,Date
		c1 := strings.IndexByte(line, ',')
		if c1 <= 0 {
			continue
		}
		c2 := strings.IndexByte(line[c1+1:], ',')
		if c2 < 0 {
			continue
		}
		c2 += c1 + 1
		c3 := strings.IndexByte(line[c2+1:], ',')
		if c3 < 0 {
			continue
		}
		c3 += c2 + 1
		c4 := strings.IndexByte(line[c3+1:], ',')
		if c4 < 0 {
			continue
		}
		c4 += c3 + 1
		ratingEnd := strings.IndexByte(line[c4+1:], ',')
		if ratingEnd < 0 {
			ratingEnd = len(line)
		} else {
			ratingEnd += c4 + 1
		}

		rating, err := strconv.ParseFloat(line[c4+1:ratingEnd], 64)
		if err != nil {
			continue
		}
		wineID := line[c2+1 : c3]
		agg := sums[wineID]
		agg.sum += rating
		agg.count++
		sums[wineID] = agg
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	out := make(map[string]float32, len(sums))
	for wineID, agg := range sums {
		avg := agg.sum / float64(agg.count)
		out[wineID] = float32(math.Trunc(avg*10) / 10)
	}
	return out, nil
}

// parseBracketList parses the dataset's list syntax: ['Merlot', 'Malbec'].
func parseBracketList(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" || text == "[]" {
		return nil
	}
	text = strings.TrimPrefix(text, "[")
	text = strings.TrimSuffix(text, "]")
	var out []string
	for _, part := range strings.Split(text, ",") {
		part = strings.Trim(strings.TrimSpace(part), "'")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseVintages parses the vintages list, dropping values outside the
// plausible year range. The raw dataset contains sentinel entries there.
func parseVintages(text string) []int {
	text = strings.TrimSpace(text)
	if text == "" || text == "[]" {
		return nil
	}
	text = strings.TrimPrefix(text, "[")
	text = strings.TrimSuffix(text, "]")
	var out []int
	for _, part := range strings.Split(text, ",") {
		part = strings.Trim(strings.TrimSpace(part), "'")
		year, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		if year < minVintageYear || year > maxVintageYear {
			continue
		}
		out = append(out, year)
	}
	return out
}

func parseFloatOrNaN(s string) float32 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return float32(math.NaN())
	}
	return float32(f)
}
