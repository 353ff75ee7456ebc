package pairing

import (
	"testing"

	"winepair/internal"
)

func TestLookupKnownKeywords(t *testing.T) {
	p, ok := Lookup("chianti")
	if !ok {
		t.Fatal("chianti missing from knowledge base")
	}
	if got := p.Score(internal.FoodPasta); got != 10 {
		t.Fatalf("chianti pasta score = %d, want 10", got)
	}
	if p.Type == nil || *p.Type != internal.TypeRed {
		t.Fatalf("chianti type = %v, want red", p.Type)
	}

	p, ok = Lookup("malbec")
	if !ok {
		t.Fatal("malbec missing from knowledge base")
	}
	if got := p.Score(internal.FoodBeef); got != 10 {
		t.Fatalf("malbec beef score = %d, want 10", got)
	}
}

func TestLookupMissingCategoryIsZero(t *testing.T) {
	p, ok := Lookup("muscadet")
	if !ok {
		t.Fatal("muscadet missing from knowledge base")
	}
	if got := p.Score(internal.FoodBeef); got != 0 {
		t.Fatalf("muscadet beef score = %d, want 0", got)
	}
}

func TestScoresWithinBounds(t *testing.T) {
	for _, kw := range Keywords() {
		p, ok := Lookup(kw)
		if !ok {
			t.Fatalf("Keywords() returned unknown keyword %q", kw)
		}
		if p.Description == "" {
			t.Errorf("%q has empty description", kw)
		}
		if len(p.Scores) == 0 {
			t.Errorf("%q has no scores", kw)
		}
		for food, s := range p.Scores {
			if s < 1 || s > 10 {
				t.Errorf("%q score for %s = %d, out of range", kw, food, s)
			}
		}
	}
}

func TestKeywordsLongestFirst(t *testing.T) {
	kws := Keywords()
	for i := 1; i < len(kws); i++ {
		if len(kws[i]) > len(kws[i-1]) {
			t.Fatalf("keywords not sorted longest first: %q after %q", kws[i], kws[i-1])
		}
	}
}

func TestKeywordIn(t *testing.T) {
	cases := []struct {
		text string
		want string
		ok   bool
	}{
		{"Caymus Cabernet Sauvignon Napa Valley 2019", "cabernet sauvignon", true},
		{"Silver Oak Cabernet 2018", "cabernet", true},
		{"Kosta Browne Pinot Noir", "pinot noir", true},
		{"Veuve Clicquot Brut", "", false},
		{"CHAMPAGNE & SPARKLING", "champagne", true},
		{"Merl0t Reserve", "merlot", true},
		{"Côtes du Rhône Villages", "cotes du rhone", true},
		{"Whispering Angel Rosé", "rosé", true},
	}
	for _, tc := range cases {
		got, ok := KeywordIn(tc.text)
		if ok != tc.ok || got != tc.want {
			t.Errorf("KeywordIn(%q) = %q, %v, want %q, %v", tc.text, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAmbiguousKeywordsHaveNoType(t *testing.T) {
	for _, kw := range []string{"burgundy", "bourgogne", "sparkling"} {
		p, ok := Lookup(kw)
		if !ok {
			t.Fatalf("%q missing from knowledge base", kw)
		}
		if p.Type != nil {
			t.Errorf("%q should have no wine type, got %v", kw, *p.Type)
		}
	}
}
