package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pitchstats/matches-api/internal/models"
)

// document is the expected top-level shape of the source file. A document
// without a matches key yields an empty dataset, not an error.
type document struct {
	Matches []models.Match `json:"matches"`
}

// FileStore serves matches from a JSON document on disk.
type FileStore struct {
	path   string
	logger *zap.SugaredLogger
	snap   snapshot
}

func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger.Sugar(),
	}
}

func (s *FileStore) GetAll(ctx context.Context) ([]models.Match, error) {
	return s.snap.get(ctx, s.load)
}

func (s *FileStore) Reload(ctx context.Context) error {
	return s.snap.reload(ctx, s.load)
}

func (s *FileStore) load(_ context.Context) ([]models.Match, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Errorw("Failed to read match source", "path", s.path, "error", err)
		return nil, fmt.Errorf("%w: read %s: %v", ErrDataUnavailable, s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Errorw("Failed to parse match source", "path", s.path, "error", err)
		return nil, fmt.Errorf("%w: parse %s: %v", ErrDataUnavailable, s.path, err)
	}

	s.logger.Infow("Loaded match dataset", "path", s.path, "matches", len(doc.Matches))
	return doc.Matches, nil
}
