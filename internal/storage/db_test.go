package storage

import (
	"path/filepath"
	"testing"

	"winepair/internal"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "winepair.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadPreferencesDefaults(t *testing.T) {
	db := openTestDB(t)

	prefs, err := db.LoadPreferences()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefs.MaxPrice != internal.DefaultMaxPrice {
		t.Fatalf("unexpected default max price: %d", prefs.MaxPrice)
	}
	if len(prefs.AllowedTypes) != len(internal.AllWineTypes) {
		t.Fatalf("unexpected default allowed types: %+v", prefs.AllowedTypes)
	}
}

func TestSaveAndLoadPreferences(t *testing.T) {
	db := openTestDB(t)

	want := internal.Preferences{
		MaxPrice:      120,
		IgnoredGrapes: []string{"Merlot"},
		AllowedTypes:  []internal.WineType{internal.TypeRed, internal.TypeWhite},
	}
	if err := db.SavePreferences(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := db.LoadPreferences()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.MaxPrice != 120 || len(got.IgnoredGrapes) != 1 || got.IgnoredGrapes[0] != "Merlot" {
		t.Fatalf("unexpected preferences: %+v", got)
	}
	if len(got.AllowedTypes) != 2 || got.AllowedTypes[0] != internal.TypeRed {
		t.Fatalf("unexpected allowed types: %+v", got.AllowedTypes)
	}

	// Second save overwrites the single row.
	want.MaxPrice = 80
	if err := db.SavePreferences(want); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err = db.LoadPreferences()
	if err != nil || got.MaxPrice != 80 {
		t.Fatalf("unexpected after overwrite: %+v %v", got, err)
	}
}

func TestDatasetChoiceLifecycle(t *testing.T) {
	db := openTestDB(t)

	if _, made, err := db.DatasetChoice(); err != nil || made {
		t.Fatalf("expected no initial choice, got made=%v err=%v", made, err)
	}

	if err := db.SaveDatasetChoice("slim"); err != nil {
		t.Fatalf("save choice: %v", err)
	}
	choice, made, err := db.DatasetChoice()
	if err != nil || !made || choice != "slim" {
		t.Fatalf("unexpected choice: %q made=%v err=%v", choice, made, err)
	}

	if err := db.SaveDatasetChoice(DatasetSkipped); err != nil {
		t.Fatalf("save skip: %v", err)
	}
	choice, made, _ = db.DatasetChoice()
	if !made || choice != DatasetSkipped {
		t.Fatalf("unexpected skip state: %q made=%v", choice, made)
	}

	if err := db.ClearDatasetChoice(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, made, _ := db.DatasetChoice(); made {
		t.Fatal("expected choice cleared")
	}
}

func TestInsertAndListRuns(t *testing.T) {
	db := openTestDB(t)

	recs := []RunRecord{
		{TraceID: "t1", Food: "beef", InputChars: 120, Timings: map[string]float64{"score_ms": 4.2}, Counts: map[string]int{"entries": 7, "scored": 3}},
		{TraceID: "t2", Food: "pasta", InputChars: 88, Counts: map[string]int{"entries": 2}},
	}
	for _, rec := range recs {
		if err := db.InsertRun(rec); err != nil {
			t.Fatalf("insert run: %v", err)
		}
	}

	got, err := db.RecentRuns(10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected run count: %d", len(got))
	}
	// Newest first.
	if got[0].TraceID != "t2" || got[1].TraceID != "t1" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[1].Counts["scored"] != 3 || got[1].Timings["score_ms"] != 4.2 {
		t.Fatalf("unexpected round trip: %+v", got[1])
	}
	if got[0].CreatedAt == "" {
		t.Fatal("expected createdAt to be populated")
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	db := openTestDB(t)

	if v, err := db.GetMetadata("missing"); err != nil || v != nil {
		t.Fatalf("unexpected missing key result: %v %v", v, err)
	}
	if err := db.SetMetadata("schema", "1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := db.SetMetadata("schema", "2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, err := db.GetMetadata("schema")
	if err != nil || v == nil || *v != "2" {
		t.Fatalf("unexpected value: %v %v", v, err)
	}
}
