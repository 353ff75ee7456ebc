package internal

import "testing"

func TestAcceptsPrice(t *testing.T) {
	p := DefaultPreferences()

	cases := []struct {
		price string
		want  bool
	}{
		{"", true},
		{"by the bottle", true},
		{"$45", true},
		{"$85", false},
		{"42€", true},
		{"12.50", true},
		{"14/52", true},
		{"14/95", false},
		// A vintage year next to the amount must not be read as the price.
		{"2018 $45", true},
		{"2019 $85", false},
	}
	for _, tc := range cases {
		if got := p.AcceptsPrice(tc.price); got != tc.want {
			t.Errorf("AcceptsPrice(%q) = %v, want %v", tc.price, got, tc.want)
		}
	}
}

func TestExtractNumericPricePrefersAmountOverYear(t *testing.T) {
	v, ok := extractNumericPrice("2018 $45")
	if !ok || v != 45 {
		t.Fatalf("unexpected result: %v %v", v, ok)
	}
	v, ok = extractNumericPrice("Riesling 2019 42€")
	if !ok || v != 42 {
		t.Fatalf("unexpected result: %v %v", v, ok)
	}
	if _, ok := extractNumericPrice("Kosta Browne 2019"); ok {
		t.Fatal("a bare vintage year is not a price")
	}
}
