package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"winepair/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS preferences (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  maxPrice INTEGER NOT NULL,
  ignoredGrapes TEXT NOT NULL,
  allowedTypes TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  food TEXT NOT NULL,
  inputChars INTEGER NOT NULL,
  timingsJson TEXT NOT NULL,
  countsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

// SavePreferences overwrites the single preferences row.
func (d *DB) SavePreferences(prefs internal.Preferences) error {
	grapesJSON, _ := json.Marshal(prefs.IgnoredGrapes)
	typesJSON, _ := json.Marshal(prefs.AllowedTypes)
	_, err := d.conn.Exec(`
INSERT INTO preferences (id, maxPrice, ignoredGrapes, allowedTypes) VALUES (1, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  maxPrice=excluded.maxPrice,
  ignoredGrapes=excluded.ignoredGrapes,
  allowedTypes=excluded.allowedTypes,
  updatedAt=CURRENT_TIMESTAMP
`, prefs.MaxPrice, string(grapesJSON), string(typesJSON))
	return err
}

// LoadPreferences returns the stored preferences, or the defaults when
// none have been saved yet.
func (d *DB) LoadPreferences() (internal.Preferences, error) {
	var (
		maxPrice   int
		grapesJSON string
		typesJSON  string
	)
	err := d.conn.QueryRow(`SELECT maxPrice, ignoredGrapes, allowedTypes FROM preferences WHERE id = 1`).
		Scan(&maxPrice, &grapesJSON, &typesJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return internal.DefaultPreferences(), nil
	}
	if err != nil {
		return internal.Preferences{}, err
	}

	prefs := internal.Preferences{MaxPrice: maxPrice}
	_ = json.Unmarshal([]byte(grapesJSON), &prefs.IgnoredGrapes)
	_ = json.Unmarshal([]byte(typesJSON), &prefs.AllowedTypes)
	return prefs, nil
}

const (
	keyDatasetChoice = "dataset_choice"

	// DatasetSkipped marks an explicit "no download" choice; the engine
	// then runs in keyword-only mode.
	DatasetSkipped = "skipped"
)

func (d *DB) SaveDatasetChoice(choice string) error {
	return d.SetMetadata(keyDatasetChoice, choice)
}

// DatasetChoice returns the stored choice ("slim", "full", or
// DatasetSkipped) and whether any choice has been made.
func (d *DB) DatasetChoice() (string, bool, error) {
	value, err := d.GetMetadata(keyDatasetChoice)
	if err != nil {
		return "", false, err
	}
	if value == nil {
		return "", false, nil
	}
	return *value, true, nil
}

func (d *DB) ClearDatasetChoice() error {
	_, err := d.conn.Exec(`DELETE FROM metadata WHERE key = ?`, keyDatasetChoice)
	return err
}

// RunRecord is one audit row for a recommendation request.
type RunRecord struct {
	TraceID    string
	Food       string
	InputChars int
	Timings    map[string]float64
	Counts     map[string]int
	CreatedAt  string
}

func (d *DB) InsertRun(rec RunRecord) error {
	timingsJSON, _ := json.Marshal(rec.Timings)
	countsJSON, _ := json.Marshal(rec.Counts)
	_, err := d.conn.Exec(`
INSERT INTO runs (traceId, food, inputChars, timingsJson, countsJson) VALUES (?, ?, ?, ?, ?)
`, rec.TraceID, rec.Food, rec.InputChars, string(timingsJSON), string(countsJSON))
	return err
}

func (d *DB) RecentRuns(limit int) ([]RunRecord, error) {
	rows, err := d.conn.Query(`
SELECT traceId, food, inputChars, timingsJson, countsJson, createdAt
FROM runs ORDER BY id DESC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var timingsJSON, countsJSON string
		if err := rows.Scan(&rec.TraceID, &rec.Food, &rec.InputChars, &timingsJSON, &countsJSON, &rec.CreatedAt); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(timingsJSON), &rec.Timings)
		_ = json.Unmarshal([]byte(countsJSON), &rec.Counts)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
