package storage

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Footprint is the disk space used by the candidate database and the search index.
type Footprint struct {
	DatabaseBytes int64 `json:"database_bytes"`
	IndexBytes    int64 `json:"index_bytes"`
}

// Total returns the combined size in bytes.
func (f Footprint) Total() int64 {
	return f.DatabaseBytes + f.IndexBytes
}

// MeasureFootprint sums the database file with its WAL side files, and the index
// directory recursively. Missing paths count as zero.
func MeasureFootprint(dbPath, indexPath string) (Footprint, error) {
	var fp Footprint
	if dbPath != "" {
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			n, err := sizeOf(p)
			if err != nil {
				return Footprint{}, err
			}
			fp.DatabaseBytes += n
		}
	}
	if indexPath != "" {
		n, err := sizeOf(indexPath)
		if err != nil {
			return Footprint{}, err
		}
		fp.IndexBytes = n
	}
	return fp, nil
}

func sizeOf(path string) (int64, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return info.Size(), nil
	}
	var total int64
	err = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		total += fi.Size()
		return nil
	})
	return total, err
}
