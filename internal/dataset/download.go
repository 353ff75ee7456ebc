package dataset

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	winesCacheName   = "wines.csv"
	ratingsCacheName = "ratings.csv"
)

// Downloader fetches a dataset zip, extracts the wines and ratings
// members into a per-variant cache directory, and verifies their
// sizes. A failed download clears the variant's cache so a partial
// extraction is never mistaken for a usable dataset.
type Downloader struct {
	cacheDir string
	baseURL  string
	client   *http.Client
	log      *zap.SugaredLogger
}

func NewDownloader(cacheDir, baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Downloader {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Downloader{
		cacheDir: cacheDir,
		baseURL:  baseURL,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

func (d *Downloader) variantDir(size Size) string {
	return filepath.Join(d.cacheDir, string(size))
}

func (d *Downloader) winesFile(size Size) string {
	return filepath.Join(d.variantDir(size), winesCacheName)
}

func (d *Downloader) ratingsFile(size Size) string {
	return filepath.Join(d.variantDir(size), ratingsCacheName)
}

// IsCached reports whether both extracted files exist and exceed the
// variant's minimum byte thresholds.
func (d *Downloader) IsCached(size Size) bool {
	spec := size.Spec()
	return fileAtLeast(d.winesFile(size), spec.MinWinesBytes) &&
		fileAtLeast(d.ratingsFile(size), spec.MinRatingsBytes)
}

// CachedFiles returns the extracted wines and ratings paths, or
// ok=false when the variant is not (fully) cached.
func (d *Downloader) CachedFiles(size Size) (wines, ratings string, ok bool) {
	if !d.IsCached(size) {
		return "", "", false
	}
	return d.winesFile(size), d.ratingsFile(size), true
}

// Download fetches and extracts one variant. onProgress, when non-nil,
// receives whole percentages as bytes arrive.
func (d *Downloader) Download(ctx context.Context, size Size, onProgress func(percent int)) (wines, ratings string, err error) {
	spec := size.Spec()
	dir := d.variantDir(size)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}

	zipPath := filepath.Join(dir, "download.zip")
	defer os.Remove(zipPath)

	url := size.URL(d.baseURL)
	d.log.Infow("downloading dataset", "size", size, "url", url)

	if err := d.fetchZip(ctx, url, zipPath, onProgress); err != nil {
		d.ClearCache(size)
		return "", "", fmt.Errorf("fetch %s: %w", url, err)
	}

	d.log.Infow("extracting dataset", "size", size)
	if err := d.extractZip(zipPath, size); err != nil {
		d.ClearCache(size)
		return "", "", fmt.Errorf("extract %s: %w", zipPath, err)
	}

	if !fileAtLeast(d.winesFile(size), spec.MinWinesBytes) {
		d.ClearCache(size)
		return "", "", fmt.Errorf("wines csv missing or too small after extraction")
	}
	if !fileAtLeast(d.ratingsFile(size), spec.MinRatingsBytes) {
		d.ClearCache(size)
		return "", "", fmt.Errorf("ratings csv missing or too small after extraction")
	}

	d.log.Infow("dataset ready", "size", size, "dir", dir)
	return d.winesFile(size), d.ratingsFile(size), nil
}

func (d *Downloader) ClearCache(size Size) error {
	return os.RemoveAll(d.variantDir(size))
}

func (d *Downloader) ClearAll() error {
	return os.RemoveAll(d.cacheDir)
}

func (d *Downloader) fetchZip(ctx context.Context, url, destination string, onProgress func(int)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	tmpPath := destination + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	var reader io.Reader = resp.Body
	if onProgress != nil && resp.ContentLength > 0 {
		reader = &progressReader{
			inner:   resp.Body,
			total:   resp.ContentLength,
			report:  onProgress,
			lastPct: -1,
		}
	}

	if _, err := io.Copy(out, reader); err != nil {
		out.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, destination)
}

func (d *Downloader) extractZip(zipPath string, size Size) error {
	spec := size.Spec()
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer zr.Close()

	for _, member := range zr.File {
		name := strings.ToLower(member.Name)
		var dest string
		switch {
		case strings.Contains(name, strings.ToLower(spec.WinesFilename)):
			dest = d.winesFile(size)
		case strings.Contains(name, strings.ToLower(spec.RatingsFilename)):
			dest = d.ratingsFile(size)
		case strings.HasSuffix(name, "wines.csv"):
			dest = d.winesFile(size)
		case strings.HasSuffix(name, "ratings.csv"):
			dest = d.ratingsFile(size)
		default:
			continue
		}

		if err := extractMember(member, dest); err != nil {
			return err
		}
	}
	return nil
}

func extractMember(member *zip.File, dest string) error {
	in, err := member.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func fileAtLeast(path string, minBytes int64) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() > minBytes
}

type progressReader struct {
	inner   io.Reader
	total   int64
	read    int64
	lastPct int
	report  func(int)
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.inner.Read(buf)
	p.read += int64(n)
	pct := int(p.read * 100 / p.total)
	if pct != p.lastPct {
		p.lastPct = pct
		p.report(pct)
	}
	return n, err
}
