package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/pitchstats/matches-api/internal/logic"
	"github.com/pitchstats/matches-api/internal/models"
)

// MockMatchStore
type MockMatchStore struct {
	GetAllFunc func(ctx context.Context) ([]models.Match, error)
	ReloadFunc func(ctx context.Context) error
}

func (m *MockMatchStore) GetAll(ctx context.Context) ([]models.Match, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockMatchStore) Reload(ctx context.Context) error {
	if m.ReloadFunc != nil {
		return m.ReloadFunc(ctx)
	}
	return nil
}

// newTestHandler wires the real (pure) logic services around a mock store.
// The cache stays nil; every cache method is a no-op without a client.
func newTestHandler(store *MockMatchStore) *Handler {
	stats := logic.NewStatsService()
	return New(Config{
		Store:      store,
		Logger:     zap.NewNop(),
		Filter:     logic.NewFilterService(),
		Stats:      stats,
		Prediction: logic.NewPredictionService(stats, 0),
	})
}

func ip(n int) *int { return &n }

func fixture(home, away, date string, hg, ag int) models.Match {
	return models.Match{
		HomeTeam: home,
		AwayTeam: away,
		Date:     date,
		Score:    &models.Score{Home: ip(hg), Away: ip(ag)},
	}
}
