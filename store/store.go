// Package store provides the optional transaction store the planner can
// sync manual events with. The core never depends on it: a store is just an
// alternate source for the manual event list.
package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/lionrock/treasury"
)

// Store is a key-value collection of manual events keyed by event id.
type Store interface {
	// FetchAll returns every stored event.
	FetchAll() ([]treasury.CashFlowEvent, error)
	// Upsert inserts or replaces the event under its id.
	Upsert(e treasury.CashFlowEvent) error
	// Delete removes the event with the given id. Deleting an unknown id
	// is not an error.
	Delete(id string) error
}

// FileStore keeps events in a JSONL file, one event per line, in id order
// so the file diffs cleanly.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore backed by path. The file is created on
// the first Upsert.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// FetchAll implements Store.
func (s *FileStore) FetchAll() ([]treasury.CashFlowEvent, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var events []treasury.CashFlowEvent
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(strings.TrimSpace(string(raw))) == 0 {
			continue
		}
		var e treasury.CashFlowEvent
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.path, line, err)
		}
		events = append(events, e)
	}
	return events, scanner.Err()
}

// Upsert implements Store.
func (s *FileStore) Upsert(e treasury.CashFlowEvent) error {
	if e.ID == "" {
		return fmt.Errorf("cannot store an event without id")
	}
	events, err := s.FetchAll()
	if err != nil {
		return err
	}
	replaced := false
	for i := range events {
		if events[i].ID == e.ID {
			events[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		events = append(events, e)
	}
	return s.write(events)
}

// Delete implements Store.
func (s *FileStore) Delete(id string) error {
	events, err := s.FetchAll()
	if err != nil {
		return err
	}
	kept := slices.DeleteFunc(events, func(e treasury.CashFlowEvent) bool {
		return e.ID == id
	})
	return s.write(kept)
}

func (s *FileStore) write(events []treasury.CashFlowEvent) error {
	slices.SortFunc(events, func(a, b treasury.CashFlowEvent) int {
		return strings.Compare(a.ID, b.ID)
	})
	var b strings.Builder
	for _, e := range events {
		raw, err := json.Marshal(e)
		if err != nil {
			return err
		}
		b.Write(raw)
		b.WriteByte('\n')
	}
	return os.WriteFile(s.path, []byte(b.String()), 0644)
}

var _ Store = (*FileStore)(nil)
