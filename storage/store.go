package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"weekplanner/model"
)

// Store is the single-document storage engine. All mutations go through
// Update, which serializes read-modify-write cycles behind one lock and
// rewrites the whole file on success.
type Store interface {
	Initialize() error
	Document() model.Document
	Update(fn func(*model.Document) error) error
	Path() string
}

type FileStore struct {
	path string

	mu  sync.Mutex
	doc *model.Document
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Initialize loads the document from disk. A missing or unparsable file is
// non-fatal: the store falls back to a default document and writes it out
// (backups exist to recover a corrupt file).
func (s *FileStore) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to read storage file, falling back to defaults", "path", s.path, "error", err)
		}
		s.doc = model.DefaultDocument()
		if err := s.saveLocked(); err != nil {
			return err
		}
		slog.Info("storage initialized with defaults", "path", s.path)
		return nil
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		slog.Error("storage file is corrupt, falling back to defaults", "path", s.path, "error", err)
		s.doc = model.DefaultDocument()
		if err := s.saveLocked(); err != nil {
			return err
		}
		return nil
	}

	normalize(&doc)
	s.doc = &doc
	slog.Info("storage initialized", "path", s.path)
	return nil
}

// Document returns a deep-copy snapshot of the current document.
func (s *FileStore) Document() model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.doc.Clone()
}

// Update applies fn to a copy of the document and persists the result. If
// fn or the write fails, the in-memory document is left unchanged.
func (s *FileStore) Update(fn func(*model.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	if err := fn(next); err != nil {
		return err
	}

	prev := s.doc
	s.doc = next
	if err := s.saveLocked(); err != nil {
		s.doc = prev
		return err
	}
	return nil
}

func (s *FileStore) saveLocked() error {
	timer := trackOperation("write", "document")
	defer timer.ObserveDuration()

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage document: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		trackFailure("write")
		return fmt.Errorf("write storage file: %w", err)
	}
	return nil
}

// normalize repairs collections a hand-edited or pre-migration file may
// leave as null.
func normalize(doc *model.Document) {
	if doc.Weeks == nil {
		doc.Weeks = []model.Week{}
	}
	if doc.Tasks == nil {
		doc.Tasks = []model.Task{}
	}
	if doc.Meals == nil {
		doc.Meals = []model.Meal{}
	}
	if doc.DailyData == nil {
		doc.DailyData = []model.DailyData{}
	}
	if doc.TaskTemplates == nil {
		doc.TaskTemplates = []model.TaskTemplate{}
	}
}
