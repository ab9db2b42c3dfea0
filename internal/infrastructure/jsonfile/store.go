// Package jsonfile keeps the authoritative ledger in memory and mirrors
// it to a single JSON file, rewritten in full after every mutation via a
// temp-file-and-rename swap so the file is never observed half-written.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"bookkeeping/internal/domain/record"
)

// Store owns the in-memory collection and arbitrates concurrent access
// to it. Any number of Views may run together; an Update excludes
// everything else for its in-memory step only. Disk I/O happens after
// the collection lock is released, so a stalled disk never blocks
// readers or other writers.
type Store struct {
	path string

	mu      sync.RWMutex
	records []record.Record

	// tail is the head-of-line gate of the persist queue. Each
	// committed mutation swaps in its own gate while mu is still held,
	// then waits for the previous gate after releasing mu, so disk
	// writes happen in commit order and mu is never held across a
	// wait on the disk.
	tail chan struct{}
}

// Open loads the ledger at path. A missing or unparseable file starts
// an empty ledger: a corrupt mirror degrades to "no data" rather than
// preventing the service from starting.
func Open(path string) *Store {
	tail := make(chan struct{})
	close(tail)
	return &Store{path: path, records: load(path), tail: tail}
}

func load(path string) []record.Record {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("ledger file unreadable, starting empty")
		}
		return []record.Record{}
	}

	var records []record.Record
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("ledger file unparseable, starting empty")
		return []record.Record{}
	}
	if records == nil {
		records = []record.Record{}
	}
	return records
}

// View runs fn with shared access to the collection. fn must not mutate
// the slice or retain it past the call. View never performs I/O.
func (s *Store) View(fn func(records []record.Record)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.records)
}

// Update runs fn with exclusive access and replaces the collection with
// fn's result. If fn returns an error nothing is replaced and nothing
// is written. On success the in-memory swap commits before the disk
// write starts; a persist failure is reported as a PersistenceError
// without rolling the memory state back, since the mutation already
// happened and the next successful mutation rewrites the full file.
func (s *Store) Update(fn func(records []record.Record) ([]record.Record, error)) error {
	s.mu.Lock()

	next, err := fn(s.records)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if next == nil {
		next = []record.Record{}
	}
	s.records = next

	// Snapshot the committed state and take the next slot in the
	// persist queue while the collection lock is still held.
	snapshot := make([]record.Record, len(next))
	copy(snapshot, next)
	prev := s.tail
	done := make(chan struct{})
	s.tail = done
	s.mu.Unlock()

	// Wait for the preceding mutation's disk write, then do ours. A
	// stalled disk delays only the writes queued behind it; the
	// collection stays available to readers and writers throughout.
	<-prev
	err = persist(s.path, snapshot)
	close(done)
	if err != nil {
		return &record.PersistenceError{Err: err}
	}
	return nil
}

// Len reports the current number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// persist serializes the full collection to a sibling temp file and
// atomically renames it over path. A crash mid-write leaves a stray
// temp file and the original untouched; a crash after the rename
// leaves the new state. No partial write is ever visible at path.
func persist(path string, records []record.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
