package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/pitchstats/matches-api/internal/models"
)

// ClickHouseStore serves matches from a ClickHouse analytics table, for
// deployments that already warehouse historical results there.
type ClickHouseStore struct {
	ch     driver.Conn
	logger *zap.SugaredLogger
	snap   snapshot
}

func NewClickHouseStore(ch driver.Conn, logger *zap.Logger) *ClickHouseStore {
	return &ClickHouseStore{
		ch:     ch,
		logger: logger.Sugar(),
	}
}

func (s *ClickHouseStore) GetAll(ctx context.Context) ([]models.Match, error) {
	return s.snap.get(ctx, s.load)
}

func (s *ClickHouseStore) Reload(ctx context.Context) error {
	return s.snap.reload(ctx, s.load)
}

func (s *ClickHouseStore) load(ctx context.Context) ([]models.Match, error) {
	rows, err := s.ch.Query(ctx, `
		SELECT id, match_date, home_team, away_team,
		       home_goals, away_goals, competition, season
		FROM matches
		ORDER BY match_date, id
	`)
	if err != nil {
		s.logger.Errorw("Failed to query matches table", "error", err)
		return nil, fmt.Errorf("%w: clickhouse query: %v", ErrDataUnavailable, err)
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		var (
			m           models.Match
			date        time.Time
			home, away  *int32
			competition string
			season      string
		)
		if err := rows.Scan(&m.ID, &date, &m.HomeTeam, &m.AwayTeam, &home, &away, &competition, &season); err != nil {
			return nil, fmt.Errorf("%w: clickhouse scan: %v", ErrDataUnavailable, err)
		}
		m.Date = date.Format("2006-01-02")
		if home != nil || away != nil {
			m.Score = &models.Score{}
			if home != nil {
				h := int(*home)
				m.Score.Home = &h
			}
			if away != nil {
				a := int(*away)
				m.Score.Away = &a
			}
		}
		m.Competition = competition
		m.Season = season
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: clickhouse rows: %v", ErrDataUnavailable, err)
	}

	s.logger.Infow("Loaded match dataset", "source", "clickhouse", "matches", len(matches))
	return matches, nil
}
