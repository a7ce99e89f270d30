// Package store implements the shared document store: the whole bot
// state as one JSON document, loaded at startup and rewritten on every
// mutation. All access goes through a single exclusive lock, so each
// handler's read-modify-write is serialized and lost updates cannot
// happen even when two commands race on the same chat.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"vibecore-bot/internal/model"
)

// Store owns the live document and its file on disk.
type Store struct {
	mu   sync.Mutex
	path string
	doc  *model.Document
}

// Open loads the document at path, starting from an empty document when
// the file does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, doc: model.NewDocument()}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", path).Msg("No existing database, starting fresh")
			return s, nil
		}
		return nil, fmt.Errorf("failed to read database: %w", err)
	}

	doc := model.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse database %s: %w", path, err)
	}
	doc.Normalize()
	s.doc = doc

	log.Info().
		Str("path", path).
		Int("polls", len(doc.Polls)).
		Int("splits", len(doc.Splits)).
		Int("leaderboard_users", doc.Leaderboard.Len()).
		Msg("Database loaded")
	return s, nil
}

// Update runs fn with exclusive access to the document and persists the
// whole document afterwards. If fn returns an error nothing is written
// and the error is returned as-is, so domain errors pass through
// unchanged; mutations made by a failing fn must be avoided by fn
// itself (validate before mutating).
func (s *Store) Update(fn func(doc *model.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.doc); err != nil {
		return err
	}
	return s.save()
}

// View runs fn with exclusive read access to the document. fn must not
// mutate the document and must not retain references past its return.
func (s *Store) View(fn func(doc *model.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

// save writes the document atomically: marshal to a temp file in the
// same directory, then rename over the target.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal database: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp database file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close database file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace database: %w", err)
	}
	return nil
}
