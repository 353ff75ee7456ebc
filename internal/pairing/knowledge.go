// Package pairing holds the static keyword knowledge base: grape, region,
// and style names mapped to per-food pairing scores. The table is built once
// at process start and never mutated; lookups are exact on lowercase keys,
// with all fuzziness handled by normalization before the lookup.
package pairing

import (
	"sort"
	"strings"

	"winepair/internal"
	"winepair/internal/textnorm"
)

// Profile scores one keyword against every food category (0-10, missing =
// 0) with a short description used as recommendation reasoning. Type is nil
// for ambiguous keywords such as regional blends, which are never filtered
// by wine type.
type Profile struct {
	Scores      map[internal.FoodCategory]int
	Description string
	Type        *internal.WineType
}

func (p Profile) Score(food internal.FoodCategory) int {
	return p.Scores[food]
}

func typ(t internal.WineType) *internal.WineType { return &t }

var keywords = map[string]Profile{
	// Red grapes.
	"cabernet sauvignon": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 10, internal.FoodLamb: 9, internal.FoodPork: 6,
			internal.FoodCheese: 7, internal.FoodPasta: 6, internal.FoodChicken: 4,
			internal.FoodVegetarian: 3, internal.FoodPizza: 6,
		},
		Description: "Full-bodied red with firm tannins that cut through rich, fatty meats",
		Type:        typ(internal.TypeRed),
	},
	"cabernet": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 10, internal.FoodLamb: 9, internal.FoodPork: 6,
			internal.FoodCheese: 7, internal.FoodPasta: 6, internal.FoodChicken: 4,
		},
		Description: "Full-bodied red with firm tannins that cut through rich, fatty meats",
		Type:        typ(internal.TypeRed),
	},
	"merlot": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 8, internal.FoodLamb: 7, internal.FoodPork: 7,
			internal.FoodChicken: 6, internal.FoodPasta: 7, internal.FoodCheese: 6,
			internal.FoodPizza: 7, internal.FoodVegetarian: 5,
		},
		Description: "Medium-bodied, smooth red that pairs broadly with meats and pasta",
		Type:        typ(internal.TypeRed),
	},
	"pinot noir": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodChicken: 9, internal.FoodPork: 8, internal.FoodLamb: 7,
			internal.FoodFish: 6, internal.FoodPasta: 7, internal.FoodBeef: 5,
			internal.FoodCheese: 7, internal.FoodSushi: 5, internal.FoodVegetarian: 7,
			internal.FoodPizza: 6,
		},
		Description: "Light, elegant red with earthy notes, extremely versatile with lighter dishes",
		Type:        typ(internal.TypeRed),
	},
	"malbec": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 10, internal.FoodLamb: 8, internal.FoodPork: 7,
			internal.FoodCheese: 6, internal.FoodPasta: 6, internal.FoodPizza: 6,
		},
		Description: "Bold, juicy red with dark fruit, a classic steak wine",
		Type:        typ(internal.TypeRed),
	},
	"syrah": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 8, internal.FoodLamb: 9, internal.FoodPork: 7,
			internal.FoodCheese: 6, internal.FoodPasta: 5, internal.FoodPizza: 5,
		},
		Description: "Spicy, peppery red that stands up to bold, gamey flavors",
		Type:        typ(internal.TypeRed),
	},
	"shiraz": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 8, internal.FoodLamb: 9, internal.FoodPork: 7,
			internal.FoodCheese: 6, internal.FoodPasta: 5, internal.FoodPizza: 6,
		},
		Description: "Bold, fruit-forward red with spice, great with grilled meats",
		Type:        typ(internal.TypeRed),
	},
	"zinfandel": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 7, internal.FoodPork: 8, internal.FoodLamb: 6,
			internal.FoodPizza: 8, internal.FoodPasta: 6, internal.FoodCheese: 5,
		},
		Description: "Jammy, bold red with high fruit that loves BBQ and spiced dishes",
		Type:        typ(internal.TypeRed),
	},
	"tempranillo": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 8, internal.FoodLamb: 8, internal.FoodPork: 7,
			internal.FoodCheese: 7, internal.FoodPasta: 6, internal.FoodPizza: 5,
		},
		Description: "Medium-bodied Spanish red with savory leather and cherry notes",
		Type:        typ(internal.TypeRed),
	},
	"sangiovese": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodPasta: 10, internal.FoodPizza: 9, internal.FoodBeef: 6,
			internal.FoodLamb: 6, internal.FoodPork: 6, internal.FoodChicken: 6,
			internal.FoodCheese: 7, internal.FoodVegetarian: 6,
		},
		Description: "Italian red with high acidity, born for tomato-based dishes",
		Type:        typ(internal.TypeRed),
	},
	"nebbiolo": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 9, internal.FoodLamb: 8, internal.FoodPasta: 8,
			internal.FoodCheese: 8, internal.FoodPork: 6,
		},
		Description: "Powerful, tannic Italian red with roses and tar, pairs with rich dishes",
		Type:        typ(internal.TypeRed),
	},
	"grenache": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodLamb: 8, internal.FoodBeef: 7, internal.FoodPork: 7,
			internal.FoodChicken: 6, internal.FoodPasta: 6, internal.FoodCheese: 6,
			internal.FoodPizza: 6, internal.FoodVegetarian: 6,
		},
		Description: "Fruity, spicy red that works with a wide range of Mediterranean dishes",
		Type:        typ(internal.TypeRed),
	},
	"gamay": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodChicken: 8, internal.FoodPork: 7, internal.FoodPasta: 6,
			internal.FoodFish: 5, internal.FoodCheese: 6, internal.FoodVegetarian: 6,
		},
		Description: "Light, fresh red with juicy cherry fruit, best slightly chilled",
		Type:        typ(internal.TypeRed),
	},
	"barbera": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodPasta: 9, internal.FoodPizza: 8, internal.FoodPork: 7,
			internal.FoodBeef: 6, internal.FoodChicken: 6, internal.FoodCheese: 6,
		},
		Description: "High-acid Italian red, excellent with tomato sauces and cured meats",
		Type:        typ(internal.TypeRed),
	},
	"primitivo": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 7, internal.FoodPork: 8, internal.FoodLamb: 6,
			internal.FoodPizza: 8, internal.FoodPasta: 7,
		},
		Description: "Rich, ripe red similar to Zinfandel, pairs with hearty grilled fare",
		Type:        typ(internal.TypeRed),
	},
	"carmenere": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 8, internal.FoodPork: 7, internal.FoodLamb: 7,
			internal.FoodPasta: 6, internal.FoodCheese: 6, internal.FoodPizza: 6,
		},
		Description: "Chilean red with green pepper and dark fruit, built for roasted meats",
		Type:        typ(internal.TypeRed),
	},
	"touriga nacional": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 8, internal.FoodLamb: 8, internal.FoodPork: 7,
			internal.FoodCheese: 7, internal.FoodPasta: 5,
		},
		Description: "Portugal's flagship red grape, dense and floral, made for braised meats",
		Type:        typ(internal.TypeRed),
	},

	// White grapes.
	"chardonnay": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodChicken: 9, internal.FoodFish: 8, internal.FoodSeafood: 7,
			internal.FoodPork: 6, internal.FoodPasta: 6, internal.FoodVegetarian: 6,
			internal.FoodCheese: 6,
		},
		Description: "Rich white with buttery notes, ideal with poultry and creamy sauces",
		Type:        typ(internal.TypeWhite),
	},
	"sauvignon blanc": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodFish: 9, internal.FoodSeafood: 9, internal.FoodChicken: 7,
			internal.FoodVegetarian: 8, internal.FoodSushi: 7, internal.FoodCheese: 7,
			internal.FoodPasta: 5,
		},
		Description: "Crisp, zesty white with herbal notes, perfect with seafood and salads",
		Type:        typ(internal.TypeWhite),
	},
	"riesling": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodSushi: 9, internal.FoodSeafood: 8, internal.FoodFish: 8,
			internal.FoodChicken: 7, internal.FoodPork: 7, internal.FoodVegetarian: 7,
			internal.FoodDessert: 6, internal.FoodCheese: 6,
		},
		Description: "Aromatic white with bright acidity, versatile, especially with Asian cuisine",
		Type:        typ(internal.TypeWhite),
	},
	"pinot grigio": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodFish: 8, internal.FoodSeafood: 7, internal.FoodChicken: 7,
			internal.FoodPasta: 6, internal.FoodVegetarian: 7, internal.FoodSushi: 6,
			internal.FoodPizza: 5,
		},
		Description: "Light, refreshing white, a safe, easy-drinking choice with lighter fare",
		Type:        typ(internal.TypeWhite),
	},
	"pinot gris": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodFish: 8, internal.FoodSeafood: 7, internal.FoodChicken: 7,
			internal.FoodPasta: 6, internal.FoodVegetarian: 7, internal.FoodPork: 6,
		},
		Description: "Fuller-bodied style of Pinot Grigio with stone fruit notes",
		Type:        typ(internal.TypeWhite),
	},
	"viognier": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodChicken: 8, internal.FoodFish: 7, internal.FoodSeafood: 6,
			internal.FoodVegetarian: 6, internal.FoodPork: 6, internal.FoodCheese: 5,
		},
		Description: "Aromatic, full white with peach and floral notes",
		Type:        typ(internal.TypeWhite),
	},
	"gewurztraminer": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodSushi: 8, internal.FoodSeafood: 7, internal.FoodPork: 7,
			internal.FoodChicken: 6, internal.FoodCheese: 7, internal.FoodDessert: 6,
			internal.FoodVegetarian: 6,
		},
		Description: "Intensely aromatic white with lychee and spice, great with Asian food",
		Type:        typ(internal.TypeWhite),
	},
	"gruner veltliner": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodVegetarian: 8, internal.FoodFish: 7, internal.FoodChicken: 7,
			internal.FoodSushi: 7, internal.FoodSeafood: 7, internal.FoodPork: 6,
		},
		Description: "Crisp Austrian white with white pepper, excellent with vegetables",
		Type:        typ(internal.TypeWhite),
	},
	"albarino": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodSeafood: 9, internal.FoodFish: 9, internal.FoodSushi: 7,
			internal.FoodChicken: 6, internal.FoodVegetarian: 6,
		},
		Description: "Bright Spanish white with citrus and salinity, made for shellfish",
		Type:        typ(internal.TypeWhite),
	},
	"muscadet": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodSeafood: 9, internal.FoodFish: 8, internal.FoodSushi: 6,
			internal.FoodVegetarian: 5,
		},
		Description: "Bone-dry, mineral French white, the classic oyster wine",
		Type:        typ(internal.TypeWhite),
	},
	"chenin blanc": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodChicken: 7, internal.FoodFish: 7, internal.FoodPork: 7,
			internal.FoodVegetarian: 7, internal.FoodSeafood: 6, internal.FoodCheese: 6,
			internal.FoodDessert: 5,
		},
		Description: "Versatile white ranging from dry to sweet, pairs broadly",
		Type:        typ(internal.TypeWhite),
	},
	"semillon": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodFish: 7, internal.FoodChicken: 7, internal.FoodSeafood: 6,
			internal.FoodCheese: 6, internal.FoodDessert: 5,
		},
		Description: "Waxy, full white with honey notes",
		Type:        typ(internal.TypeWhite),
	},
	"vermentino": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodSeafood: 8, internal.FoodFish: 8, internal.FoodVegetarian: 6,
			internal.FoodChicken: 6, internal.FoodPasta: 6,
		},
		Description: "Coastal Italian white with saline freshness, a natural with shellfish",
		Type:        typ(internal.TypeWhite),
	},
	"verdejo": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodFish: 8, internal.FoodSeafood: 7, internal.FoodVegetarian: 7,
			internal.FoodChicken: 6, internal.FoodSushi: 6,
		},
		Description: "Herbal Spanish white with citrus bite, great with lighter plates",
		Type:        typ(internal.TypeWhite),
	},
	"torrontes": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodChicken: 7, internal.FoodSushi: 7, internal.FoodSeafood: 6,
			internal.FoodVegetarian: 6, internal.FoodCheese: 5,
		},
		Description: "Floral Argentine white, aromatic partner for spiced dishes",
		Type:        typ(internal.TypeWhite),
	},
	"soave": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodFish: 7, internal.FoodSeafood: 7, internal.FoodChicken: 6,
			internal.FoodPasta: 6, internal.FoodVegetarian: 6,
		},
		Description: "Gentle northern Italian white with almond and citrus",
		Type:        typ(internal.TypeWhite),
	},
	"gavi": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodFish: 7, internal.FoodSeafood: 7, internal.FoodChicken: 6,
			internal.FoodPasta: 5, internal.FoodVegetarian: 6,
		},
		Description: "Crisp Piedmont white, clean and mineral with light seafood",
		Type:        typ(internal.TypeWhite),
	},
	"vinho verde": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodSeafood: 8, internal.FoodFish: 7, internal.FoodSushi: 7,
			internal.FoodVegetarian: 6, internal.FoodChicken: 5,
		},
		Description: "Light, spritzy Portuguese white, built for shellfish and hot days",
		Type:        typ(internal.TypeWhite),
	},

	// Rosé.
	"rosé": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodChicken: 7, internal.FoodFish: 7, internal.FoodSeafood: 7,
			internal.FoodVegetarian: 7, internal.FoodPasta: 6, internal.FoodPizza: 6,
			internal.FoodSushi: 6, internal.FoodPork: 6, internal.FoodCheese: 5,
		},
		Description: "Dry rosé is extremely versatile, a great crowd-pleaser",
		Type:        typ(internal.TypeRose),
	},
	"rose": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodChicken: 7, internal.FoodFish: 7, internal.FoodSeafood: 7,
			internal.FoodVegetarian: 7, internal.FoodPasta: 6, internal.FoodPizza: 6,
			internal.FoodSushi: 6, internal.FoodPork: 6, internal.FoodCheese: 5,
		},
		Description: "Dry rosé is extremely versatile, a great crowd-pleaser",
		Type:        typ(internal.TypeRose),
	},

	// Sparkling.
	"champagne": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodSeafood: 9, internal.FoodSushi: 8, internal.FoodFish: 8,
			internal.FoodChicken: 7, internal.FoodCheese: 7, internal.FoodDessert: 6,
			internal.FoodVegetarian: 7, internal.FoodPasta: 5,
		},
		Description: "Sparkling wine with high acidity and bubbles that cleanse the palate",
		Type:        typ(internal.TypeWhite),
	},
	"prosecco": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodSeafood: 7, internal.FoodFish: 7, internal.FoodSushi: 7,
			internal.FoodChicken: 6, internal.FoodVegetarian: 6, internal.FoodPasta: 5,
			internal.FoodPizza: 5, internal.FoodDessert: 5,
		},
		Description: "Light, fruity sparkling, refreshing aperitif or light food pairing",
		Type:        typ(internal.TypeWhite),
	},
	"cava": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodSeafood: 8, internal.FoodFish: 7, internal.FoodSushi: 7,
			internal.FoodChicken: 6, internal.FoodCheese: 6,
		},
		Description: "Spanish sparkling with citrus and toast, great value bubbly",
		Type:        typ(internal.TypeWhite),
	},
	"cremant": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodSeafood: 8, internal.FoodFish: 7, internal.FoodSushi: 7,
			internal.FoodChicken: 6, internal.FoodCheese: 6, internal.FoodVegetarian: 6,
		},
		Description: "Traditional-method French sparkling outside Champagne, superb value",
		Type:        typ(internal.TypeWhite),
	},
	"lambrusco": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodPizza: 7, internal.FoodPasta: 7, internal.FoodPork: 7,
			internal.FoodCheese: 6, internal.FoodDessert: 4,
		},
		Description: "Lightly sparkling Italian red, made for cured meats and rich pasta",
		Type:        typ(internal.TypeRed),
	},
	"sparkling": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodSeafood: 8, internal.FoodFish: 7, internal.FoodSushi: 7,
			internal.FoodChicken: 6, internal.FoodVegetarian: 6, internal.FoodCheese: 6,
		},
		Description: "Bubbles and acidity make sparkling wine a versatile food partner",
		Type:        nil,
	},

	// Dessert wines.
	"moscato": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodDessert: 9, internal.FoodCheese: 6, internal.FoodSushi: 4,
		},
		Description: "Sweet, lightly sparkling wine, a natural dessert companion",
		Type:        typ(internal.TypeWhite),
	},
	"muscat": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodDessert: 8, internal.FoodCheese: 6,
		},
		Description: "Grapey, perfumed sweet wine for fruit desserts",
		Type:        typ(internal.TypeWhite),
	},
	"port": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodDessert: 9, internal.FoodCheese: 9, internal.FoodBeef: 4,
		},
		Description: "Rich, sweet fortified wine, classic with chocolate and blue cheese",
		Type:        typ(internal.TypeRed),
	},
	"sauternes": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodDessert: 10, internal.FoodCheese: 8, internal.FoodFish: 4,
		},
		Description: "Luscious sweet French wine, the ultimate dessert pairing",
		Type:        typ(internal.TypeWhite),
	},
	"ice wine": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodDessert: 9, internal.FoodCheese: 7,
		},
		Description: "Intensely sweet wine from frozen grapes",
		Type:        typ(internal.TypeWhite),
	},
	"icewine": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodDessert: 9, internal.FoodCheese: 7,
		},
		Description: "Intensely sweet wine from frozen grapes",
		Type:        typ(internal.TypeWhite),
	},

	// Regions and blends.
	"bordeaux": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 9, internal.FoodLamb: 9, internal.FoodCheese: 7,
			internal.FoodPork: 6, internal.FoodPasta: 5,
		},
		Description: "Classic Bordeaux blend, structured, age-worthy, and built for red meat",
		Type:        typ(internal.TypeRed),
	},
	"burgundy": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodChicken: 8, internal.FoodBeef: 7, internal.FoodLamb: 7,
			internal.FoodPork: 7, internal.FoodFish: 6, internal.FoodCheese: 7,
			internal.FoodPasta: 6,
		},
		Description: "Elegant Burgundy, Pinot Noir or Chardonnay depending on color",
		Type:        nil,
	},
	"bourgogne": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodChicken: 8, internal.FoodBeef: 7, internal.FoodLamb: 7,
			internal.FoodPork: 7, internal.FoodFish: 6, internal.FoodCheese: 7,
		},
		Description: "Elegant Burgundy, Pinot Noir or Chardonnay depending on color",
		Type:        nil,
	},
	"chianti": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodPasta: 10, internal.FoodPizza: 9, internal.FoodBeef: 6,
			internal.FoodLamb: 6, internal.FoodCheese: 7, internal.FoodChicken: 5,
		},
		Description: "Tuscan Sangiovese, the definitive Italian food wine",
		Type:        typ(internal.TypeRed),
	},
	"barolo": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 9, internal.FoodLamb: 8, internal.FoodPasta: 8,
			internal.FoodCheese: 8, internal.FoodPork: 5,
		},
		Description: "King of Italian wines, powerful Nebbiolo with truffle and tar",
		Type:        typ(internal.TypeRed),
	},
	"barbaresco": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 8, internal.FoodLamb: 8, internal.FoodPasta: 8,
			internal.FoodCheese: 7, internal.FoodPork: 6,
		},
		Description: "Elegant Nebbiolo, slightly lighter than Barolo, equally food-friendly",
		Type:        typ(internal.TypeRed),
	},
	"rioja": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 8, internal.FoodLamb: 8, internal.FoodPork: 7,
			internal.FoodCheese: 7, internal.FoodChicken: 6, internal.FoodPasta: 5,
		},
		Description: "Spanish Tempranillo, oaky, savory, built for grilled meats",
		Type:        typ(internal.TypeRed),
	},
	"cotes du rhone": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodLamb: 8, internal.FoodBeef: 7, internal.FoodPork: 7,
			internal.FoodChicken: 6, internal.FoodCheese: 6, internal.FoodPasta: 5,
			internal.FoodPizza: 5,
		},
		Description: "Southern Rhône blend, fruity, spicy, great value",
		Type:        typ(internal.TypeRed),
	},
	"chateauneuf": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodLamb: 9, internal.FoodBeef: 8, internal.FoodPork: 7,
			internal.FoodCheese: 7,
		},
		Description: "Complex Rhône blend, rich and powerful with herbal garrigue notes",
		Type:        typ(internal.TypeRed),
	},
	"sancerre": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodFish: 9, internal.FoodSeafood: 8, internal.FoodCheese: 8,
			internal.FoodChicken: 7, internal.FoodVegetarian: 7, internal.FoodSushi: 6,
		},
		Description: "Loire Sauvignon Blanc, crisp and mineral with goat cheese affinity",
		Type:        typ(internal.TypeWhite),
	},
	"chablis": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodFish: 9, internal.FoodSeafood: 9, internal.FoodSushi: 7,
			internal.FoodChicken: 6, internal.FoodVegetarian: 6,
		},
		Description: "Unoaked Burgundy Chardonnay, steely, mineral, built for shellfish",
		Type:        typ(internal.TypeWhite),
	},
	"pouilly": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodFish: 8, internal.FoodSeafood: 8, internal.FoodChicken: 6,
			internal.FoodVegetarian: 6, internal.FoodCheese: 6,
		},
		Description: "Loire white, crisp, elegant, great with lighter fare",
		Type:        typ(internal.TypeWhite),
	},
	"valpolicella": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodPasta: 8, internal.FoodPizza: 7, internal.FoodBeef: 6,
			internal.FoodPork: 6, internal.FoodChicken: 6,
		},
		Description: "Light Italian red, fresh cherry fruit, great with everyday Italian food",
		Type:        typ(internal.TypeRed),
	},
	"amarone": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodBeef: 9, internal.FoodLamb: 8, internal.FoodCheese: 8,
			internal.FoodPasta: 6,
		},
		Description: "Rich, dried-grape Italian red, intense and powerful, pairs with bold dishes",
		Type:        typ(internal.TypeRed),
	},
	"beaujolais": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodChicken: 8, internal.FoodPork: 7, internal.FoodPasta: 6,
			internal.FoodPizza: 6, internal.FoodCheese: 6, internal.FoodFish: 5,
			internal.FoodVegetarian: 6,
		},
		Description: "Light, fruity Gamay, serve slightly chilled with lighter dishes",
		Type:        typ(internal.TypeRed),
	},
	"montepulciano": {
		Scores: map[internal.FoodCategory]int{
			internal.FoodPasta: 8, internal.FoodPizza: 8, internal.FoodBeef: 7,
			internal.FoodLamb: 6, internal.FoodPork: 6,
		},
		Description: "Full-bodied Italian red, dark fruit and soft tannins, great with red sauce",
		Type:        typ(internal.TypeRed),
	},
}

// sortedKeywords is deterministic iteration order for substring scans:
// longest first so "cabernet sauvignon" is seen before "cabernet", then
// alphabetical.
var sortedKeywords = func() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}()

// Lookup returns the profile for an exact lowercase keyword.
func Lookup(keyword string) (Profile, bool) {
	p, ok := keywords[keyword]
	return p, ok
}

// Keywords returns every keyword in scan order (longest first).
func Keywords() []string {
	return sortedKeywords
}

// KeywordIn finds a pairing keyword contained in arbitrary text after OCR
// normalization. The longest contained keyword wins.
func KeywordIn(text string) (string, bool) {
	normalized := textnorm.NormalizeForOCRMatching(text)
	for _, kw := range sortedKeywords {
		key := textnorm.NormalizeForMatching(kw)
		if strings.Contains(normalized, key) {
			return kw, true
		}
	}
	return "", false
}
