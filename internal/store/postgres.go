package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/pitchstats/matches-api/internal/models"
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresStore serves matches from a Postgres table. Rows are read once on
// first access and cached like the file-backed store.
type PostgresStore struct {
	pool   PgPool
	logger *zap.SugaredLogger
	snap   snapshot
}

func NewPostgresStore(pool PgPool, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		logger: logger.Sugar(),
	}
}

func (s *PostgresStore) GetAll(ctx context.Context) ([]models.Match, error) {
	return s.snap.get(ctx, s.load)
}

func (s *PostgresStore) Reload(ctx context.Context) error {
	return s.snap.reload(ctx, s.load)
}

func (s *PostgresStore) load(ctx context.Context) ([]models.Match, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, match_date, home_team, away_team,
		       home_goals, away_goals, competition, season
		FROM matches
		ORDER BY match_date, id
	`)
	if err != nil {
		s.logger.Errorw("Failed to query matches table", "error", err)
		return nil, fmt.Errorf("%w: postgres query: %v", ErrDataUnavailable, err)
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		var (
			m           models.Match
			date        time.Time
			home, away  *int
			competition *string
			season      *string
		)
		if err := rows.Scan(&m.ID, &date, &m.HomeTeam, &m.AwayTeam, &home, &away, &competition, &season); err != nil {
			return nil, fmt.Errorf("%w: postgres scan: %v", ErrDataUnavailable, err)
		}
		m.Date = date.Format("2006-01-02")
		if home != nil || away != nil {
			m.Score = &models.Score{Home: home, Away: away}
		}
		if competition != nil {
			m.Competition = *competition
		}
		if season != nil {
			m.Season = *season
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: postgres rows: %v", ErrDataUnavailable, err)
	}

	s.logger.Infow("Loaded match dataset", "source", "postgres", "matches", len(matches))
	return matches, nil
}
