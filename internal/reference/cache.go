package reference

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"winepair/internal"
)

// Binary cache of the parsed dataset. Parsing the full CSVs takes seconds;
// reading this back takes a fraction of that. The format is versioned and
// any read error falls back to CSV parsing, so it never needs migration.
const (
	cacheFileName = "xwines.bin"
	cacheVersion  = int32(3)
)

var errCacheVersion = errors.New("reference: cache version mismatch")

func cachePathFor(winesPath string) string {
	return filepath.Join(filepath.Dir(winesPath), cacheFileName)
}

func loadFromCache(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() <= 8 {
		return nil, fmt.Errorf("reference: cache too small: %d bytes", info.Size())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wines, err := readCache(bufio.NewReaderSize(f, 64*1024))
	if err != nil {
		return nil, err
	}
	return NewStore(wines), nil
}

func writeCache(path string, wines []internal.WineRecord) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	w := bufio.NewWriterSize(f, 64*1024)
	if err := encodeCache(w, wines); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

func encodeCache(w io.Writer, wines []internal.WineRecord) error {
	if err := binary.Write(w, binary.BigEndian, cacheVersion); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, int32(len(wines))); err != nil {
		return err
	}
	for i := range wines {
		if err := encodeWine(w, &wines[i]); err != nil {
			return err
		}
	}
	return nil
}

func encodeWine(w io.Writer, rec *internal.WineRecord) error {
	for _, s := range []string{rec.WineID, rec.Name, rec.Type} {
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	if err := writeStringList(w, rec.Grapes); err != nil {
		return err
	}
	if err := writeStringList(w, rec.Harmonize); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, rec.ABV); err != nil {
		return err
	}
	for _, s := range []string{rec.Body, rec.Acidity, rec.Country, rec.RegionName, rec.WineryName} {
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.BigEndian, rec.AverageRating); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(rec.Vintages))); err != nil {
		return err
	}
	for _, v := range rec.Vintages {
		if err := binary.Write(w, binary.BigEndian, int32(v)); err != nil {
			return err
		}
	}
	return nil
}

func readCache(r io.Reader) ([]internal.WineRecord, error) {
	var version int32
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return nil, err
	}
	if version != cacheVersion {
		return nil, errCacheVersion
	}
	var count int32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("reference: invalid cache record count %d", count)
	}

	wines := make([]internal.WineRecord, 0, count)
	for i := int32(0); i < count; i++ {
		rec, err := readWine(r)
		if err != nil {
			return nil, err
		}
		wines = append(wines, rec)
	}
	return wines, nil
}

func readWine(r io.Reader) (internal.WineRecord, error) {
	var rec internal.WineRecord
	var err error
	if rec.WineID, err = readString(r); err != nil {
		return rec, err
	}
	if rec.Name, err = readString(r); err != nil {
		return rec, err
	}
	if rec.Type, err = readString(r); err != nil {
		return rec, err
	}
	if rec.Grapes, err = readStringList(r); err != nil {
		return rec, err
	}
	if rec.Harmonize, err = readStringList(r); err != nil {
		return rec, err
	}
	if err = binary.Read(r, binary.BigEndian, &rec.ABV); err != nil {
		return rec, err
	}
	if rec.Body, err = readString(r); err != nil {
		return rec, err
	}
	if rec.Acidity, err = readString(r); err != nil {
		return rec, err
	}
	if rec.Country, err = readString(r); err != nil {
		return rec, err
	}
	if rec.RegionName, err = readString(r); err != nil {
		return rec, err
	}
	if rec.WineryName, err = readString(r); err != nil {
		return rec, err
	}
	if err = binary.Read(r, binary.BigEndian, &rec.AverageRating); err != nil {
		return rec, err
	}

	var n uint16
	if err = binary.Read(r, binary.BigEndian, &n); err != nil {
		return rec, err
	}
	if n > 0 {
		rec.Vintages = make([]int, 0, n)
		for j := uint16(0); j < n; j++ {
			var year int32
			if err = binary.Read(r, binary.BigEndian, &year); err != nil {
				return rec, err
			}
			rec.Vintages = append(rec.Vintages, int(year))
		}
	}
	return rec, nil
}

func writeString(w io.Writer, s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("reference: string too long for cache: %d bytes", len(s))
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writeStringList(w io.Writer, list []string) error {
	if len(list) > math.MaxUint16 {
		return fmt.Errorf("reference: list too long for cache: %d items", len(list))
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(list))); err != nil {
		return err
	}
	for _, s := range list {
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func readStringList(r io.Reader) ([]string, error) {
	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]string, 0, n)
	for i := uint16(0); i < n; i++ {
		s, err := readString(r)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
