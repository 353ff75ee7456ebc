package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string
	DataDir    string
	OutputDir  string

	DatasetBaseURL    string
	DownloadTimeoutMs int

	// Scoring bonuses. Tuned constants, not derived: a database-confirmed
	// pairing nudges an existing keyword score by DBConfirmBonus; a Pass-2
	// enrichment hit adds the smaller EnrichBonus.
	DBConfirmBonus int
	EnrichBonus    int

	MaxAlternatives int

	RatingTierHigh float64
	RatingTierMid  float64
}

// Default returns the built-in tuning values without touching the
// environment or filesystem. Paths are left empty.
func Default() Config {
	return Config{
		DatasetBaseURL:    "https://repo.buildanddeploy.com/wines",
		DownloadTimeoutMs: 600000,
		DBConfirmBonus:    2,
		EnrichBonus:       1,
		MaxAlternatives:   3,
		RatingTierHigh:    4.0,
		RatingTierMid:     3.5,
	}
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		DataDir:   getEnv("DATA_DIR", filepath.Join(cwd, "data", "xwines")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		DatasetBaseURL:    getEnv("DATASET_BASE_URL", "https://repo.buildanddeploy.com/wines"),
		DownloadTimeoutMs: getEnvInt("DOWNLOAD_TIMEOUT_MS", 600000),

		DBConfirmBonus: getEnvInt("DB_CONFIRM_BONUS", 2),
		EnrichBonus:    getEnvInt("ENRICH_BONUS", 1),

		MaxAlternatives: getEnvInt("MAX_ALTERNATIVES", 3),

		RatingTierHigh: getEnvFloat("RATING_TIER_HIGH", 4.0),
		RatingTierMid:  getEnvFloat("RATING_TIER_MID", 3.5),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return parsed
}
