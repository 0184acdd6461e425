// Package store provides read-only match dataset snapshots. A snapshot is
// loaded lazily at most once per process and cached; reload is an explicit
// operation, never automatic.
package store

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/pitchstats/matches-api/internal/models"
)

// ErrDataUnavailable marks a missing, unreadable, or structurally invalid
// match source. It is non-retryable within a request.
var ErrDataUnavailable = errors.New("match data unavailable")

// MatchStore hands out the ordered match collection.
type MatchStore interface {
	// GetAll returns the full dataset in source order. The returned slice is
	// the caller's to reorder.
	GetAll(ctx context.Context) ([]models.Match, error)
	// Reload replaces the cached snapshot from the underlying source.
	Reload(ctx context.Context) error
}

// snapshot caches a loaded dataset for the process lifetime. The initial
// load is deduplicated through singleflight so concurrent first requests
// trigger exactly one read of the source.
type snapshot struct {
	mu      sync.RWMutex
	loaded  bool
	matches []models.Match
	group   singleflight.Group
}

type loadFunc func(ctx context.Context) ([]models.Match, error)

func (s *snapshot) get(ctx context.Context, load loadFunc) ([]models.Match, error) {
	s.mu.RLock()
	if s.loaded {
		out := make([]models.Match, len(s.matches))
		copy(out, s.matches)
		s.mu.RUnlock()
		return out, nil
	}
	s.mu.RUnlock()

	if _, err, _ := s.group.Do("load", func() (interface{}, error) {
		return nil, s.reload(ctx, load)
	}); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Match, len(s.matches))
	copy(out, s.matches)
	return out, nil
}

func (s *snapshot) reload(ctx context.Context, load loadFunc) error {
	matches, err := load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.matches = matches
	s.loaded = true
	s.mu.Unlock()
	return nil
}
