package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"straysense/pkg/utils"
)

// FileStore keeps records in a single JSON file. It exists for deployments
// without a database; a shelter laptop is a supported install target.
type FileStore struct {
	path string

	mu      sync.Mutex
	records []Record
}

func NewFileStore(path string) (*FileStore, error) {
	records, err := utils.Load[[]Record](path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load records file: %w", err)
	}
	return &FileStore{path: path, records: records}, nil
}

func (s *FileStore) Save(_ context.Context, rec *Record) (string, error) {
	rec.prepare()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, *rec)
	if err := utils.Save(s.path, s.records); err != nil {
		s.records = s.records[:len(s.records)-1]
		return "", fmt.Errorf("save records file: %w", err)
	}
	return rec.ID, nil
}

func (s *FileStore) List(_ context.Context, userID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Records are appended in creation order, so walk backwards.
	out := make([]Record, 0, limit)
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		if userID != "" && s.records[i].UserID != userID {
			continue
		}
		out = append(out, s.records[i])
	}
	return out, nil
}

func (s *FileStore) Close() {}
