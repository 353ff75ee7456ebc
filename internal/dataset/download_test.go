package dataset

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

const winesHeader = "WineID,WineName,Type,Elaborate,Grapes,Harmonize,ABV,Body,Acidity,Code,Country,RegionID,RegionName,WineryID,WineryName,Website,Vintages\n"

// Rows short of the full column count are skipped by the loader, so
// padding lines inflate the file past the minimum-size check without
// polluting the parsed store.
func paddedWinesCSV() string {
	var b strings.Builder
	b.WriteString(winesHeader)
	b.WriteString(`100001,Duckhorn Three Palms,Red,Varietal,['Merlot'],"['Beef', 'Pork']",14.1,Full-bodied,Medium,US,United States,1,Napa Valley,10,Duckhorn,,"[2015, 2018]"` + "\n")
	b.WriteString(`100002,Quilceda Creek Galitzine,Red,Varietal,['Cabernet Sauvignon'],['Lamb'],14.9,Full-bodied,Medium,US,United States,2,Columbia Valley,11,Quilceda Creek,,[2016]` + "\n")
	for b.Len() < 60_000 {
		b.WriteString("pad\n")
	}
	return b.String()
}

func paddedRatingsCSV() string {
	var b strings.Builder
	b.WriteString("RatingID,UserID,WineID,Vintage,Rating,Date\n")
	b.WriteString("1,501,100001,2018,4.5,2024-01-01\n")
	b.WriteString("2,502,100002,2016,4.0,2024-01-02\n")
	for b.Len() < 110_000 {
		b.WriteString("pad\n")
	}
	return b.String()
}

func buildZip(t *testing.T, members map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range members {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create: %v", err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func TestDownloadExtractsAndVerifies(t *testing.T) {
	archive := buildZip(t, map[string]string{
		"XWines_Slim_1K_wines.csv":     paddedWinesCSV(),
		"XWines_Slim_150K_ratings.csv": paddedRatingsCSV(),
		"README.txt":                   "ignored",
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, SizeSlim.Spec().ZipName) {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(archive)))
		w.Write(archive)
	}))
	defer srv.Close()

	d := NewDownloader(t.TempDir(), srv.URL, 30*time.Second, nil)

	var lastPct int
	wines, ratings, err := d.Download(context.Background(), SizeSlim, func(pct int) { lastPct = pct })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lastPct != 100 {
		t.Fatalf("expected progress to reach 100, got %d", lastPct)
	}
	if !d.IsCached(SizeSlim) {
		t.Fatal("expected variant to be cached after download")
	}

	gotWines, gotRatings, ok := d.CachedFiles(SizeSlim)
	if !ok || gotWines != wines || gotRatings != ratings {
		t.Fatalf("unexpected cached files: %q %q %v", gotWines, gotRatings, ok)
	}

	store, ok, err := LoadCached(context.Background(), nil, d, SizeSlim)
	if err != nil || !ok {
		t.Fatalf("unexpected load result: %v %v", ok, err)
	}
	if store.WineCount() != 2 {
		t.Fatalf("unexpected wine count: %d", store.WineCount())
	}
}

func TestDownloadHTTPFailureClearsCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := NewDownloader(t.TempDir(), srv.URL, 5*time.Second, nil)
	if _, _, err := d.Download(context.Background(), SizeSlim, nil); err == nil {
		t.Fatal("expected error on HTTP 500")
	}
	if d.IsCached(SizeSlim) {
		t.Fatal("cache should be cleared after failure")
	}
	if _, err := os.Stat(d.variantDir(SizeSlim)); !os.IsNotExist(err) {
		t.Fatalf("variant dir should be removed, stat err: %v", err)
	}
}

func TestDownloadRejectsUndersizedExtraction(t *testing.T) {
	archive := buildZip(t, map[string]string{
		"XWines_Slim_1K_wines.csv":     winesHeader,
		"XWines_Slim_150K_ratings.csv": "RatingID,UserID,WineID,Vintage,Rating,Date\n",
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	defer srv.Close()

	d := NewDownloader(t.TempDir(), srv.URL, 5*time.Second, nil)
	_, _, err := d.Download(context.Background(), SizeSlim, nil)
	if err == nil || !strings.Contains(err.Error(), "too small") {
		t.Fatalf("expected size verification error, got %v", err)
	}
	if d.IsCached(SizeSlim) {
		t.Fatal("cache should be cleared after failed verification")
	}
}

func TestCachedFilesMissingVariant(t *testing.T) {
	d := NewDownloader(t.TempDir(), "http://unused", time.Second, nil)
	if _, _, ok := d.CachedFiles(SizeFull); ok {
		t.Fatal("expected no cached files for empty cache dir")
	}
	if _, ok, err := LoadCached(context.Background(), nil, d, SizeFull); ok || err != nil {
		t.Fatalf("unexpected result for missing cache: %v %v", ok, err)
	}
}

func TestParseSize(t *testing.T) {
	cases := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{"slim", SizeSlim, false},
		{" Full ", SizeFull, false},
		{"medium", "", true},
	}
	for _, tc := range cases {
		got, err := ParseSize(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseSize(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseSize(%q) = %v, %v", tc.in, got, err)
		}
	}
}

func TestURLJoin(t *testing.T) {
	got := SizeSlim.URL("https://repo.buildanddeploy.com/wines/")
	want := "https://repo.buildanddeploy.com/wines/XWines_Slim_1K_wines_150K_ratings.zip"
	if got != want {
		t.Fatalf("unexpected URL: %q", got)
	}
}
