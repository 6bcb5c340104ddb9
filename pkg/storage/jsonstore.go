package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store persists named record collections as JSON files under a base
// directory. Each collection is one file holding the whole ordered
// sequence of records; writes replace the file, so the last writer wins.
type Store struct {
	dataDir string
	logger  *zap.Logger
}

// Open ensures the data directory exists and returns a store handle.
func Open(dataDir string, logger *zap.Logger) (*Store, error) {
	if dataDir == "" {
		dataDir = "./data"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dataDir: dataDir, logger: logger}, nil
}

// Load reads a collection's raw records. A missing or unparsable file is
// treated as an empty collection: corrupt storage must never reach the
// caller as an error, only as absent data.
func (s *Store) Load(collection string) []json.RawMessage {
	raw, err := os.ReadFile(s.Path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("collection unreadable, treating as empty",
				zap.String("collection", collection), zap.Error(err))
		}
		return nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.Warn("collection unparsable, treating as empty",
			zap.String("collection", collection), zap.Error(err))
		return nil
	}
	return records
}

// Save replaces the whole stored collection. The file is created if
// absent. Records are written as pretty-printed UTF-8 JSON with string
// values kept literal, matching the on-disk format described in the data
// layout: a top-level array of flat objects.
func (s *Store) Save(collection string, records any) error {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}
	if err := os.WriteFile(s.Path(collection), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}

// Path returns the backing file for a collection (useful for debugging).
func (s *Store) Path(collection string) string {
	return filepath.Join(s.dataDir, collection+".json")
}

// LoadAll decodes every record of a collection into T. Records that do
// not decode are skipped with a warning; the fail-open policy of Load
// applies to the file as a whole.
func LoadAll[T any](s *Store, collection string) []T {
	raws := s.Load(collection)
	if len(raws) == 0 {
		return nil
	}
	records := make([]T, 0, len(raws))
	for _, raw := range raws {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			s.logger.Warn("skipping undecodable record",
				zap.String("collection", collection), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records
}

// SaveAll writes the given records as the new full contents of the
// collection. A nil slice is stored as an empty array rather than null.
func SaveAll[T any](s *Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	return s.Save(collection, records)
}
