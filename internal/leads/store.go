package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store persists lead records.
type Store interface {
	Append(ctx context.Context, rec *Record) error
}

// JSONLStore appends records to a newline-delimited JSON file, one
// complete line per record. Each append is a single write on an
// O_APPEND handle, so concurrent appends do not interleave partial
// lines. The file is write-only from the application's perspective.
type JSONLStore struct {
	dir  string
	path string
	now  func() time.Time
}

// NewJSONLStore creates a store writing to dir/file. The directory is
// created on first append if absent.
func NewJSONLStore(dir, file string) *JSONLStore {
	return &JSONLStore{
		dir:  dir,
		path: filepath.Join(dir, file),
		now:  time.Now,
	}
}

// Append stamps the record with the current time and writes it as one
// JSON line.
func (s *JSONLStore) Append(ctx context.Context, rec *Record) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("leads: create data dir: %w", err)
	}

	rec.TS = s.now().UTC()

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("leads: marshal record: %w", err)
	}
	line = append(line, '\n')

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("leads: open log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("leads: append record: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append stamps and retains a copy of the record.
func (s *MemoryStore) Append(ctx context.Context, rec *Record) error {
	rec.TS = time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *rec)
	return nil
}

// Records returns a snapshot of everything appended so far, in arrival
// order.
func (s *MemoryStore) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}
