package store

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"bridge-deals-service/internal/lin"
)

// Sweep removes record files that fail the well-formedness sniff test:
// a record is kept only if its first line begins with the player-list
// tag. The crawler occasionally saves an upstream error page instead of
// a record (well under 1% of attempts), and those throw off the parser,
// so they are deleted before a batch run.
//
// It returns the number of files removed.
func (s *FSStore) Sweep(logger *slog.Logger) (int, error) {
	paths, err := s.ListRecords()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, path := range paths {
		ok, err := wellFormed(path)
		if err != nil {
			return removed, err
		}
		if ok {
			continue
		}
		if err := os.Remove(path); err != nil {
			return removed, err
		}
		removed++
		if logger != nil {
			logger.Debug("removed malformed record file", "path", path)
		}
	}
	return removed, nil
}

// wellFormed checks only the first line; the parser deals with
// everything past the sniff test.
func wellFormed(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	return strings.HasPrefix(scanner.Text(), lin.WellFormedPrefix), nil
}
