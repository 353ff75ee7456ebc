package internal

import "strings"

// FoodCategory is the closed set of food targets a recommendation can be
// scored against.
type FoodCategory string

const (
	FoodBeef       FoodCategory = "beef"
	FoodPork       FoodCategory = "pork"
	FoodChicken    FoodCategory = "chicken"
	FoodPasta      FoodCategory = "pasta"
	FoodFish       FoodCategory = "fish"
	FoodSeafood    FoodCategory = "seafood"
	FoodLamb       FoodCategory = "lamb"
	FoodVegetarian FoodCategory = "vegetarian"
	FoodCheese     FoodCategory = "cheese"
	FoodDessert    FoodCategory = "dessert"
	FoodSushi      FoodCategory = "sushi"
	FoodPizza      FoodCategory = "pizza"
)

var AllFoodCategories = []FoodCategory{
	FoodBeef, FoodPork, FoodChicken, FoodPasta, FoodFish, FoodSeafood,
	FoodLamb, FoodVegetarian, FoodCheese, FoodDessert, FoodSushi, FoodPizza,
}

func ParseFoodCategory(input string) (FoodCategory, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, cat := range AllFoodCategories {
		if normalized == string(cat) {
			return cat, true
		}
	}
	return "", false
}

func (c FoodCategory) DisplayName() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// WineType is the user-filterable wine color.
type WineType string

const (
	TypeRed   WineType = "red"
	TypeWhite WineType = "white"
	TypeRose  WineType = "rose"
)

var AllWineTypes = []WineType{TypeRed, TypeWhite, TypeRose}

func ParseWineType(input string) (WineType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.ReplaceAll(normalized, "é", "e")
	for _, t := range AllWineTypes {
		if normalized == string(t) {
			return t, true
		}
	}
	return "", false
}

// WineRecord is one row of the reference dataset. Records are built once
// during load and never mutated; a dataset switch replaces the whole table.
type WineRecord struct {
	WineID        string
	Name          string
	Type          string
	Grapes        []string
	Harmonize     []string
	ABV           float32 // NaN when absent
	Body          string
	Acidity       string
	Country       string
	RegionName    string
	WineryName    string
	AverageRating float32 // NaN when absent
	Vintages      []int
}

// VintageMatch classifies how an OCR-extracted year relates to a matched
// record's known vintages.
type VintageMatch string

const (
	VintageExact         VintageMatch = "exact"
	VintageClosest       VintageMatch = "closest"
	VintageNotInDatabase VintageMatch = "not_in_database"
	VintageNotChecked    VintageMatch = "not_checked"
)

// MatchResult is the identity-resolution result for one piece of menu text.
type MatchResult struct {
	Record       *WineRecord
	VintageMatch VintageMatch
	Year         int // 0 when no year was found in the text
}

// MatchPass tags which scoring path produced a candidate.
type MatchPass string

const (
	PassDatabase MatchPass = "database"
	PassKeyword  MatchPass = "keyword"
	PassSection  MatchPass = "section"
)

// MenuEntry is one coalesced wine listing reconstructed from OCR lines.
// It lives only for the duration of a single recommendation request.
type MenuEntry struct {
	Lines          []string
	Combined       string
	DisplayLine    string
	Price          string // empty when no price was found
	SectionKeyword string // pairing keyword carried from the enclosing header
}

// ScoredWine is a transient recommendation candidate.
type ScoredWine struct {
	OriginalText   string
	Score          int
	Reason         string
	Pass           MatchPass
	Record         *WineRecord
	DisplayName    string
	Price          string
	VintageMatch   VintageMatch
	Year           int
	ClosestVintage int
}

// WineAlternative is a runner-up carried on the final recommendation.
type WineAlternative struct {
	WineName     string
	Price        string
	Score        int
	Reason       string
	Record       *WineRecord
	VintageMatch VintageMatch
	VintageNote  string
}

// WineRecommendation is the final output of a recommendation request.
type WineRecommendation struct {
	WineName     string
	Price        string
	Reasoning    string
	RunnerUp     string
	RawText      string
	Record       *WineRecord
	VintageMatch VintageMatch
	VintageNote  string
	Alternatives []WineAlternative
}

// NoMatchWineName is the sentinel name used when nothing on the list scored.
const NoMatchWineName = "No match found"
