package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/digimosa/exposure-scan/internal/models"
)

// FileStore keeps the scan history as a single JSON array on disk,
// most recent first. Writes go through a mutex and a temp-file rename,
// so concurrent creates cannot lose entries or tear the file.
type FileStore struct {
	mu    sync.Mutex
	path  string
	limit int
}

// NewFileStore opens (or creates) the history file at path. A limit <= 0
// falls back to DefaultHistoryLimit.
func NewFileStore(path string, limit int) (*FileStore, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	s := &FileStore{path: path, limit: limit}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write([]models.Scan{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) Create(result models.AnalysisResult) (*models.Scan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.read()
	if err != nil {
		return nil, err
	}

	scan := models.Scan{
		ID:             uuid.NewString(),
		AnalysisResult: result,
		ScannedAt:      time.Now().UTC(),
	}

	history = append([]models.Scan{scan}, history...)
	if len(history) > s.limit {
		history = history[:s.limit]
	}

	if err := s.write(history); err != nil {
		return nil, err
	}
	return &scan, nil
}

func (s *FileStore) List() ([]models.Scan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) Get(id string) (*models.Scan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range history {
		if history[i].ID == id {
			return &history[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write([]models.Scan{})
}

func (s *FileStore) read() ([]models.Scan, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}
	var history []models.Scan
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("decode history file: %w", err)
	}
	return history, nil
}

// write replaces the history file atomically via temp file + rename.
func (s *FileStore) write(history []models.Scan) error {
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}
