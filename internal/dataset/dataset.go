package dataset

import (
	"fmt"
	"strings"
)

// Size selects which X-Wines dataset variant to fetch.
type Size string

const (
	SizeSlim Size = "slim"
	SizeFull Size = "full"
)

func AllSizes() []Size {
	return []Size{SizeSlim, SizeFull}
}

func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "slim":
		return SizeSlim, nil
	case "full":
		return SizeFull, nil
	default:
		return "", fmt.Errorf("unknown dataset size: %q (want slim or full)", s)
	}
}

// Spec carries everything needed to fetch and verify one variant.
type Spec struct {
	Label           string
	Description     string
	ZipName         string
	WinesFilename   string
	RatingsFilename string
	RequiredSpaceMB int64
	MinWinesBytes   int64
	MinRatingsBytes int64
}

var specs = map[Size]Spec{
	SizeSlim: {
		Label:           "Slim (1K wines)",
		Description:     "1,007 wines with 150K ratings (~3 MB download)",
		ZipName:         "XWines_Slim_1K_wines_150K_ratings.zip",
		WinesFilename:   "XWines_Slim_1K_wines.csv",
		RatingsFilename: "XWines_Slim_150K_ratings.csv",
		RequiredSpaceMB: 300,
		MinWinesBytes:   50_000,
		MinRatingsBytes: 100_000,
	},
	SizeFull: {
		Label:           "Full (100K wines)",
		Description:     "100K wines with 21M ratings (~300 MB download)",
		ZipName:         "All-XWines_Full_100K_wines_21M_ratings.zip",
		WinesFilename:   "XWines_Full_100K_wines.csv",
		RatingsFilename: "XWines_Full_21M_ratings.csv",
		RequiredSpaceMB: 1024,
		MinWinesBytes:   1_000_000,
		MinRatingsBytes: 10_000_000,
	},
}

func (s Size) Spec() Spec {
	return specs[s]
}

// URL joins the configured dataset mirror with the variant's archive name.
func (s Size) URL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/" + specs[s].ZipName
}
