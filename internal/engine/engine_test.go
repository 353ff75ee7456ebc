package engine

import (
	"math"
	"strings"
	"testing"

	"winepair/internal"
	"winepair/internal/config"
	"winepair/internal/reference"
)

func keywordOnlyEngine() *Engine {
	return New(config.Default(), nil)
}

func openPrefs() internal.Preferences {
	p := internal.DefaultPreferences()
	p.MaxPrice = 500
	return p
}

func TestHeaderOnlyInputYieldsNothing(t *testing.T) {
	e := keywordOnlyEngine()
	text := "RED WINES\nWHITE WINES\nSPARKLING\nROSÉ\nCHAMPAGNE"
	for _, food := range internal.AllFoodCategories {
		if got := e.RecommendWines(text, food, openPrefs()); len(got) != 0 {
			t.Fatalf("headers scored for %s: %+v", food, got)
		}
	}
}

func TestSectionContextInheritance(t *testing.T) {
	e := keywordOnlyEngine()
	text := "CHAMPAGNE\nVeuve Clicquot Brut NV\nGlass $24 | Bottle $120"
	got := e.RecommendWines(text, internal.FoodSeafood, openPrefs())
	if len(got) != 1 {
		t.Fatalf("unexpected candidates: %+v", got)
	}
	if !strings.Contains(got[0].OriginalText, "Clicquot") {
		t.Fatalf("candidate text = %q", got[0].OriginalText)
	}
	if strings.Contains(got[0].OriginalText, "CHAMPAGNE") {
		t.Fatalf("header leaked into candidate: %q", got[0].OriginalText)
	}
	if got[0].Pass != internal.PassSection {
		t.Fatalf("pass = %v", got[0].Pass)
	}
}

func TestChiantiTopsForPasta(t *testing.T) {
	e := keywordOnlyEngine()
	text := "RED WINES\n" +
		"Barolo Riserva 2017 Bottle $95\n" +
		"Chianti Classico Riserva 2018 Bottle $75\n" +
		"Montepulciano d'Abruzzo 2020 Bottle $45"
	got := e.RecommendWines(text, internal.FoodPasta, openPrefs())
	if len(got) == 0 {
		t.Fatal("no candidates")
	}
	top := got[0]
	if !strings.Contains(top.OriginalText, "Chianti") || top.Score != 10 {
		t.Fatalf("top = %+v", top)
	}
}

func TestSteakhouseBeefPairing(t *testing.T) {
	e := keywordOnlyEngine()
	text := "Loscano Malbec 2020 Bottle $56\nSilver Oak Cabernet Sauvignon 2018 $58"
	got := e.RecommendWines(text, internal.FoodBeef, openPrefs())
	if len(got) == 0 {
		t.Fatal("no candidates")
	}
	top := got[0]
	if top.Score != 10 {
		t.Fatalf("top score = %d", top.Score)
	}
	if !strings.Contains(top.OriginalText, "Malbec") && !strings.Contains(top.OriginalText, "Cabernet") {
		t.Fatalf("top = %+v", top)
	}
}

func TestContinuationHeaderScoring(t *testing.T) {
	e := keywordOnlyEngine()
	text := "Pinot Noir cont.\nKosta Browne, Sonoma Coast 2019\n$85"
	got := e.RecommendWines(text, internal.FoodChicken, openPrefs())
	if len(got) != 1 {
		t.Fatalf("candidates = %+v", got)
	}
	if strings.Contains(got[0].OriginalText, "cont.") {
		t.Fatalf("continuation marker leaked: %q", got[0].OriginalText)
	}
	if !strings.Contains(got[0].OriginalText, "Kosta Browne") || got[0].Score != 9 {
		t.Fatalf("candidate = %+v", got[0])
	}
}

func TestOCRFuzzRecoversKeyword(t *testing.T) {
	e := keywordOnlyEngine()
	got := e.RecommendWines("Merl0t Reserve 2019 $45", internal.FoodBeef, openPrefs())
	if len(got) == 0 {
		t.Fatal("digit-substituted merlot not recovered")
	}
	if got[0].Score <= 0 {
		t.Fatalf("score = %d", got[0].Score)
	}
}

func TestScoreBoundsAndDedup(t *testing.T) {
	e := keywordOnlyEngine()
	text := "Duckhorn Merlot 2018 $55\n\nDuckhorn   Merlot 2018  $55\n\nCloudy Bay Sauvignon Blanc 2022 $60"
	got := e.RecommendWines(text, internal.FoodChicken, openPrefs())
	seen := map[string]struct{}{}
	for _, sw := range got {
		if sw.Score <= 0 || sw.Score > 10 {
			t.Fatalf("score out of bounds: %+v", sw)
		}
		key := dedupKey(sw.OriginalText)
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate candidate: %+v", got)
		}
		seen[key] = struct{}{}
	}
	if len(got) != 2 {
		t.Fatalf("candidates = %+v", got)
	}
}

func TestPriceFilterRejectsExpensive(t *testing.T) {
	e := keywordOnlyEngine()
	prefs := internal.DefaultPreferences() // max 60
	got := e.RecommendWines("Opus One Cabernet 2018 $450", internal.FoodBeef, prefs)
	if len(got) != 0 {
		t.Fatalf("expensive wine not filtered: %+v", got)
	}
}

func TestTypeFilter(t *testing.T) {
	e := keywordOnlyEngine()
	prefs := openPrefs()
	prefs.AllowedTypes = []internal.WineType{internal.TypeWhite}
	got := e.RecommendWines("Silver Oak Cabernet Sauvignon 2018 $58", internal.FoodBeef, prefs)
	if len(got) != 0 {
		t.Fatalf("red keyword passed white-only filter: %+v", got)
	}
}

func dbEngine(t *testing.T) *Engine {
	t.Helper()
	nan := float32(math.NaN())
	wines := []internal.WineRecord{
		{
			WineID: "200001", Name: "Duckhorn Three Palms", Type: "Red",
			Grapes: []string{"Merlot"}, Harmonize: []string{"Beef", "Pork"},
			AverageRating: 4.5, Vintages: []int{2015, 2018},
		},
		{
			WineID: "200002", Name: "Quilceda Creek", Type: "Red",
			Grapes: nil, Harmonize: []string{"Lamb"},
			AverageRating: 4.5, Vintages: []int{2016},
		},
		{
			WineID: "200003", Name: "Quinta Crasto Douro", Type: "Red",
			Grapes: nil, Harmonize: nil,
			AverageRating: nan,
		},
	}
	return New(config.Default(), reference.NewStore(wines))
}

func TestDatabaseConfirmationBonus(t *testing.T) {
	e := dbEngine(t)
	got := e.RecommendWines("Duckhorn Three Palms 2018 $55", internal.FoodBeef, openPrefs())
	if len(got) != 1 {
		t.Fatalf("candidates = %+v", got)
	}
	sw := got[0]
	// Grape inference gives merlot/beef = 8; harmonization adds +2.
	if sw.Score != 10 {
		t.Fatalf("score = %d, want 10", sw.Score)
	}
	if sw.Record == nil || sw.Record.WineID != "200001" {
		t.Fatalf("record = %+v", sw.Record)
	}
	if sw.VintageMatch != internal.VintageExact {
		t.Fatalf("vintage match = %v", sw.VintageMatch)
	}
}

func TestRatingTierWhenConfirmedWithoutBase(t *testing.T) {
	e := dbEngine(t)
	got := e.RecommendWines("Quilceda Creek 2016 $95", internal.FoodLamb, openPrefs())
	if len(got) != 1 {
		t.Fatalf("candidates = %+v", got)
	}
	// No grape, keyword, or section evidence; database confirms; rating 4.5.
	if got[0].Score != 8 {
		t.Fatalf("score = %d, want 8", got[0].Score)
	}
}

func TestUnconfirmedTierWithoutBase(t *testing.T) {
	e := dbEngine(t)
	got := e.RecommendWines("Quinta Crasto Douro $40", internal.FoodBeef, openPrefs())
	if len(got) != 1 {
		t.Fatalf("candidates = %+v", got)
	}
	// Matched but unconfirmed, no rating: lowest tier.
	if got[0].Score != 3 {
		t.Fatalf("score = %d, want 3", got[0].Score)
	}
}

func TestIgnoredGrapeRejectsMatch(t *testing.T) {
	e := dbEngine(t)
	prefs := openPrefs()
	prefs.IgnoredGrapes = []string{"Merlot"}
	got := e.RecommendWines("Duckhorn Three Palms 2018 $55", internal.FoodBeef, prefs)
	if len(got) != 0 {
		t.Fatalf("ignored grape still scored: %+v", got)
	}
}

func TestClosestVintageNote(t *testing.T) {
	e := dbEngine(t)
	got := e.RecommendWines("Duckhorn Three Palms 2019 $55", internal.FoodBeef, openPrefs())
	if len(got) != 1 {
		t.Fatalf("candidates = %+v", got)
	}
	sw := got[0]
	if sw.VintageMatch != internal.VintageClosest || sw.ClosestVintage != 2018 {
		t.Fatalf("candidate = %+v", sw)
	}
	rec := e.BuildRecommendation(got, internal.FoodBeef, "raw")
	if rec.VintageNote != "2019 not found in database, showing data for 2018 vintage" {
		t.Fatalf("vintage note = %q", rec.VintageNote)
	}
}

func TestBuildRecommendationSentinel(t *testing.T) {
	e := keywordOnlyEngine()
	rec := e.BuildRecommendation(nil, internal.FoodBeef, "some raw text")
	if rec.WineName != internal.NoMatchWineName {
		t.Fatalf("wine name = %q", rec.WineName)
	}
	if rec.Price != "" || rec.RawText != "some raw text" {
		t.Fatalf("rec = %+v", rec)
	}
}

func TestBuildRecommendationAlternatives(t *testing.T) {
	e := keywordOnlyEngine()
	text := "Chianti Classico 2018 $45\n\nBarolo 2017 $90\n\nBarbera d'Alba 2020 $38\n\nValpolicella 2021 $35\n\nMontepulciano 2020 $32"
	got := e.RecommendWines(text, internal.FoodPasta, openPrefs())
	if len(got) < 4 {
		t.Fatalf("candidates = %+v", got)
	}
	rec := e.BuildRecommendation(got, internal.FoodPasta, text)
	if len(rec.Alternatives) != 3 {
		t.Fatalf("alternatives = %+v", rec.Alternatives)
	}
	if rec.RunnerUp != rec.Alternatives[0].WineName {
		t.Fatalf("runner up = %q", rec.RunnerUp)
	}
	if !strings.Contains(rec.WineName, "Chianti") {
		t.Fatalf("wine name = %q", rec.WineName)
	}
	if !strings.Contains(rec.Reasoning, "10/10") {
		t.Fatalf("reasoning = %q", rec.Reasoning)
	}
}

func TestHandleSwap(t *testing.T) {
	old := keywordOnlyEngine()
	h := NewHandle(old)
	if h.Current() != old {
		t.Fatal("handle does not return initial engine")
	}
	replacement := dbEngine(t)
	h.Swap(replacement)
	if h.Current() != replacement {
		t.Fatal("swap not visible")
	}
	if h.Current().WineCount() != 3 {
		t.Fatalf("wine count = %d", h.Current().WineCount())
	}
}

func TestVintageAndPriceOnOneLine(t *testing.T) {
	// "Name YEAR $NN" is the most common menu line shape; the year must
	// not be mistaken for the price by the default price ceiling.
	e := keywordOnlyEngine()
	got := e.RecommendWines("Chianti Classico 2018 $45", internal.FoodPasta, internal.DefaultPreferences())
	if len(got) != 1 {
		t.Fatalf("unexpected candidates: %+v", got)
	}
	if got[0].Score != 10 || got[0].Price != "$45" {
		t.Fatalf("unexpected result: %+v", got[0])
	}
	if !strings.Contains(got[0].DisplayName, "2018") {
		t.Fatalf("vintage lost from display name: %q", got[0].DisplayName)
	}

	// Still rejected when the real price is over the ceiling.
	if got := e.RecommendWines("Chianti Classico 2018 $95", internal.FoodPasta, internal.DefaultPreferences()); len(got) != 0 {
		t.Fatalf("over-ceiling entry scored: %+v", got)
	}
}

func TestKeywordAndSectionEvidenceOrder(t *testing.T) {
	e := keywordOnlyEngine()

	// In-line keyword outscores a weaker section: chianti 10 for pasta
	// beats the merlot section's 7.
	got := e.RecommendWines("MERLOT\nChianti Classico 2018 $45", internal.FoodPasta, openPrefs())
	if len(got) != 1 || got[0].Score != 10 || got[0].Pass != internal.PassKeyword {
		t.Fatalf("unexpected result: %+v", got)
	}

	// Section outscores a weaker in-line keyword: the chianti section's
	// 10 for pasta beats merlot's 7.
	got = e.RecommendWines("CHIANTI\nMerlot Riserva 2019 $45", internal.FoodPasta, openPrefs())
	if len(got) != 1 || got[0].Score != 10 || got[0].Pass != internal.PassSection {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestStripTrailingPrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Chianti Classico Riserva 2018 Bottle $75", "Chianti Classico Riserva 2018"},
		{"Duckhorn Merlot 95", "Duckhorn Merlot"},
		{"Kosta Browne, Sonoma Coast 2019", "Kosta Browne, Sonoma Coast 2019"},
		{"house pour 14/52", "house pour"},
	}
	for _, tc := range cases {
		if got := stripTrailingPrice(tc.in); got != tc.want {
			t.Errorf("stripTrailingPrice(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
