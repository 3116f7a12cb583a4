// Package store handles the filesystem boundary of the archive: raw
// record files written by the crawler, read back for parsing, and swept
// for well-formedness before the parser ever sees them.
package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FSStore reads and writes raw record files under a base directory.
type FSStore struct {
	basePath string
}

// NewFSStore constructs a store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// BasePath exposes the store root (primarily for testing).
func (s *FSStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// WriteRecord persists one raw record under its archive key, creating
// directories as needed. The write is atomic: content lands in a temp
// file that is renamed into place.
func (s *FSStore) WriteRecord(tournType, tournID, travellerID, recordID string, content []byte) error {
	if s == nil {
		return errors.New("record store not configured")
	}
	if recordID == "" {
		return errors.New("record id required")
	}

	target := RecordPath(s.basePath, tournType, tournID, travellerID, recordID)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// ReadRecord returns the raw text of one record file.
func (s *FSStore) ReadRecord(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ListRecords walks the store and returns the paths of every record
// file, in walk order.
func (s *FSStore) ListRecords() ([]string, error) {
	if s == nil {
		return nil, errors.New("record store not configured")
	}

	var paths []string
	err := filepath.WalkDir(s.basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, RecordExt) {
			paths = append(paths, path)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return paths, nil
}
