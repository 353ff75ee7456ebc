package dataset

import (
	"context"
	"time"

	"go.uber.org/zap"

	"winepair/internal/reference"
)

// Load parses the extracted dataset files into a reference store,
// logging timings. The reference loader handles its own binary cache.
func Load(ctx context.Context, log *zap.SugaredLogger, winesPath, ratingsPath string) (*reference.Store, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	start := time.Now()
	store, err := reference.LoadFromFilesContext(ctx, winesPath, ratingsPath)
	if err != nil {
		log.Errorw("dataset load failed", "wines", winesPath, "error", err)
		return nil, err
	}

	log.Infow("dataset loaded",
		"wines", store.WineCount(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return store, nil
}

// LoadCached loads the named variant from the downloader's cache.
// ok=false means the variant is not cached; that is not an error.
func LoadCached(ctx context.Context, log *zap.SugaredLogger, d *Downloader, size Size) (*reference.Store, bool, error) {
	winesPath, ratingsPath, ok := d.CachedFiles(size)
	if !ok {
		return nil, false, nil
	}
	store, err := Load(ctx, log, winesPath, ratingsPath)
	if err != nil {
		return nil, true, err
	}
	return store, true, nil
}
