package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"winepair/internal"
	"winepair/internal/config"
	"winepair/internal/dataset"
	"winepair/internal/engine"
	"winepair/internal/menu"
	"winepair/internal/ocr"
	"winepair/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	must(err)
	defer logger.Sync()
	log := logger.Sugar()

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	downloader := dataset.NewDownloader(cfg.DataDir, cfg.DatasetBaseURL,
		time.Duration(cfg.DownloadTimeoutMs)*time.Millisecond, log)

	cmd := os.Args[1]
	switch cmd {
	case "dataset:download":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		sizeFlag := fs.String("size", "slim", "slim|full")
		_ = fs.Parse(os.Args[2:])
		size, err := dataset.ParseSize(*sizeFlag)
		must(err)

		wines, ratings, err := downloader.Download(context.Background(), size, func(pct int) {
			fmt.Printf("\rdownloading %s dataset: %d%%", size, pct)
		})
		fmt.Println()
		must(err)
		must(db.SaveDatasetChoice(string(size)))

		store, err := dataset.Load(context.Background(), log, wines, ratings)
		must(err)
		fmt.Printf("dataset ready: %d wines\n", store.WineCount())
	case "dataset:skip":
		must(db.SaveDatasetChoice(storage.DatasetSkipped))
		fmt.Println("dataset download skipped: recommendations will use keyword matching only")
	case "dataset:status":
		choice, made, err := db.DatasetChoice()
		must(err)
		switch {
		case !made:
			fmt.Println("dataset: no choice made yet")
		case choice == storage.DatasetSkipped:
			fmt.Println("dataset: skipped (keyword-only mode)")
		default:
			fmt.Printf("dataset: %s\n", choice)
		}
		for _, size := range dataset.AllSizes() {
			spec := size.Spec()
			state := "not cached"
			if downloader.IsCached(size) {
				state = "cached"
			}
			fmt.Printf("  %-18s %-45s %s\n", spec.Label, spec.Description, state)
		}
	case "recommend":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input file path or raw text")
		inType := fs.String("type", "", "text|html|pdf (default: guess from file extension)")
		foodFlag := fs.String("food", "", strings.Join(foodNames(), "|"))
		out := fs.String("out", "", "optional output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" || strings.TrimSpace(*foodFlag) == "" {
			must(fmt.Errorf("--input and --food are required"))
		}
		food, ok := internal.ParseFoodCategory(*foodFlag)
		if !ok {
			must(fmt.Errorf("unknown food category %q (want one of %s)", *foodFlag, strings.Join(foodNames(), ", ")))
		}

		text, err := readInput(*input, *inType)
		must(err)

		if det := menu.DetectWineList(text); !det.IsWineList {
			fmt.Printf("warning: input does not look like a wine list (%s, score %.2f)\n", det.Reason, det.Score)
		}

		eng := buildEngine(cfg, log, db, downloader)
		prefs, err := db.LoadPreferences()
		must(err)

		start := time.Now()
		scored := eng.RecommendWines(text, food, prefs)
		rec := eng.BuildRecommendation(scored, food, text)

		_ = db.InsertRun(storage.RunRecord{
			TraceID:    traceID(),
			Food:       string(food),
			InputChars: len(text),
			Timings:    map[string]float64{"score_ms": float64(time.Since(start).Microseconds()) / 1000},
			Counts:     map[string]int{"scored": len(scored)},
		})

		printRecommendation(rec, scored, food)

		if strings.TrimSpace(*out) != "" {
			outPath := *out
			if !filepath.IsAbs(outPath) {
				outPath = filepath.Join(cfg.OutputDir, outPath)
			}
			must(engine.ExportScoredToXLSX(scored, food, outPath))
			fmt.Printf("exported %d rows to %s\n", len(scored), outPath)
		}
	case "prefs:set":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		maxPrice := fs.Int("max-price", -1, "price ceiling (currency-agnostic)")
		grapes := fs.String("ignore-grapes", "", "comma-separated grape names, empty string clears")
		types := fs.String("types", "", "comma-separated: red,white,rose")
		_ = fs.Parse(os.Args[2:])

		prefs, err := db.LoadPreferences()
		must(err)
		if *maxPrice >= 0 {
			prefs.MaxPrice = *maxPrice
		}
		if flagPassed(fs, "ignore-grapes") {
			prefs.IgnoredGrapes = splitCSV(*grapes)
		}
		if flagPassed(fs, "types") {
			allowed := []internal.WineType{}
			for _, name := range splitCSV(*types) {
				wt, ok := internal.ParseWineType(name)
				if !ok {
					must(fmt.Errorf("unknown wine type %q (want red, white, or rose)", name))
				}
				allowed = append(allowed, wt)
			}
			if len(allowed) == 0 {
				allowed = append(allowed, internal.AllWineTypes...)
			}
			prefs.AllowedTypes = allowed
		}
		must(db.SavePreferences(prefs))
		printPreferences(prefs)
	case "prefs:show":
		prefs, err := db.LoadPreferences()
		must(err)
		printPreferences(prefs)
	case "cache:clear":
		must(downloader.ClearAll())
		must(db.ClearDatasetChoice())
		fmt.Println("dataset cache cleared")
	case "runs":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 10, "number of runs to show")
		_ = fs.Parse(os.Args[2:])
		runs, err := db.RecentRuns(*limit)
		must(err)
		for _, run := range runs {
			fmt.Printf("%s  trace=%s food=%s input=%dch scored=%d\n",
				run.CreatedAt, run.TraceID, run.Food, run.InputChars, run.Counts["scored"])
		}
	default:
		usage()
		os.Exit(1)
	}
}

// buildEngine attaches the reference store named by the saved dataset
// choice. A missing, skipped, or unloadable dataset degrades to
// keyword-only mode rather than failing the request.
func buildEngine(cfg config.Config, log *zap.SugaredLogger, db *storage.DB, d *dataset.Downloader) *engine.Engine {
	choice, made, err := db.DatasetChoice()
	if err != nil || !made || choice == storage.DatasetSkipped {
		return engine.New(cfg, nil)
	}
	size, err := dataset.ParseSize(choice)
	if err != nil {
		return engine.New(cfg, nil)
	}
	store, ok, err := dataset.LoadCached(context.Background(), log, d, size)
	if err != nil || !ok {
		if err != nil {
			log.Warnw("dataset load failed, using keyword-only matching", "error", err)
		}
		return engine.New(cfg, nil)
	}
	return engine.New(cfg, store)
}

func readInput(input, inType string) (string, error) {
	isFile := false
	if info, err := os.Stat(input); err == nil && !info.IsDir() {
		isFile = true
	}

	if inType == "" {
		if isFile {
			lines, err := ocr.ExtractLinesFromFile(input)
			if err != nil {
				return "", err
			}
			return strings.Join(lines, "\n"), nil
		}
		// Not a file: the argument itself is the menu text.
		return input, nil
	}

	value := input
	if inType == "pdf" {
		if !isFile {
			return "", fmt.Errorf("pdf input must be a file path: %s", input)
		}
	} else if isFile {
		blob, err := os.ReadFile(input)
		if err != nil {
			return "", err
		}
		value = string(blob)
	}
	lines, err := ocr.ExtractLines(inType, value)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

func printRecommendation(rec internal.WineRecommendation, scored []internal.ScoredWine, food internal.FoodCategory) {
	fmt.Printf("pairing for %s:\n", food.DisplayName())
	fmt.Printf("  %s", rec.WineName)
	if rec.Price != "" {
		fmt.Printf("  (%s)", rec.Price)
	}
	fmt.Println()
	fmt.Printf("  %s\n", rec.Reasoning)
	if rec.VintageNote != "" {
		fmt.Printf("  note: %s\n", rec.VintageNote)
	}
	if len(rec.Alternatives) > 0 {
		fmt.Println("alternatives:")
		for _, alt := range rec.Alternatives {
			fmt.Printf("  %d/10  %s\n", alt.Score, alt.WineName)
		}
	}
	if len(scored) == 0 {
		return
	}
	fmt.Printf("(%d candidates scored)\n", len(scored))
}

func printPreferences(prefs internal.Preferences) {
	fmt.Printf("max price:      %d\n", prefs.MaxPrice)
	if len(prefs.IgnoredGrapes) == 0 {
		fmt.Println("ignored grapes: none")
	} else {
		fmt.Printf("ignored grapes: %s\n", strings.Join(prefs.IgnoredGrapes, ", "))
	}
	names := make([]string, 0, len(prefs.AllowedTypes))
	for _, wt := range prefs.AllowedTypes {
		names = append(names, string(wt))
	}
	fmt.Printf("allowed types:  %s\n", strings.Join(names, ", "))
}

func foodNames() []string {
	out := make([]string, 0, len(internal.AllFoodCategories))
	for _, food := range internal.AllFoodCategories {
		out = append(out, string(food))
	}
	return out
}

func splitCSV(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func flagPassed(fs *flag.FlagSet, name string) bool {
	passed := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func traceID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func usage() {
	prog := filepath.Base(os.Args[0])
	fmt.Printf(`usage: %s <command> [flags]

commands:
  dataset:download  --size slim|full
  dataset:status
  dataset:skip
  recommend         --input <file|text> [--type text|html|pdf] --food <category> [--out file.xlsx]
  prefs:set         [--max-price N] [--ignore-grapes a,b] [--types red,white,rose]
  prefs:show
  cache:clear
  runs              [--limit N]
`, prog)
}
