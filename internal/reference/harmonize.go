package reference

import (
	"strings"

	"winepair/internal"
)

// harmonizeToCategory maps dataset harmonize tags to food categories. Tags
// not listed here are ignored.
var harmonizeToCategory = map[string]internal.FoodCategory{
	// Meat.
	"beef":       internal.FoodBeef,
	"veal":       internal.FoodBeef,
	"game meat":  internal.FoodBeef,
	"pork":       internal.FoodPork,
	"cured meat": internal.FoodPork,
	"cold cuts":  internal.FoodPork,
	"barbecue":   internal.FoodPork,
	"chicken":    internal.FoodChicken,
	"poultry":    internal.FoodChicken,
	"lamb":       internal.FoodLamb,
	// Pasta and grains.
	"pasta":         internal.FoodPasta,
	"risotto":       internal.FoodPasta,
	"tomato dishes": internal.FoodPasta,
	// Fish and seafood.
	"fish":      internal.FoodFish,
	"rich fish": internal.FoodFish,
	"lean fish": internal.FoodFish,
	"codfish":   internal.FoodFish,
	"seafood":   internal.FoodSeafood,
	"shellfish": internal.FoodSeafood,
	// Vegetarian.
	"vegetarian": internal.FoodVegetarian,
	"salad":      internal.FoodVegetarian,
	"mushrooms":  internal.FoodVegetarian,
	// Cheese.
	"maturated cheese": internal.FoodCheese,
	"soft cheese":      internal.FoodCheese,
	"blue cheese":      internal.FoodCheese,
	"hard cheese":      internal.FoodCheese,
	"goat cheese":      internal.FoodCheese,
	"cheese":           internal.FoodCheese,
	// Dessert.
	"sweet dessert": internal.FoodDessert,
	"fruit dessert": internal.FoodDessert,
	"cake":          internal.FoodDessert,
	"chocolate":     internal.FoodDessert,
	"fruit":         internal.FoodDessert,
	// Pizza.
	"pizza":   internal.FoodPizza,
	"grilled": internal.FoodPizza,
}

// HarmonizesWithFood reports whether any of the record's harmonize tags map
// to the given food category.
func HarmonizesWithFood(rec *internal.WineRecord, food internal.FoodCategory) bool {
	for _, tag := range rec.Harmonize {
		if harmonizeToCategory[strings.ToLower(tag)] == food {
			return true
		}
	}
	return false
}

// MappedFoodCategories returns the set of food categories the record's
// harmonize tags map to.
func MappedFoodCategories(rec *internal.WineRecord) map[internal.FoodCategory]struct{} {
	out := map[internal.FoodCategory]struct{}{}
	for _, tag := range rec.Harmonize {
		if cat, ok := harmonizeToCategory[strings.ToLower(tag)]; ok {
			out[cat] = struct{}{}
		}
	}
	return out
}
