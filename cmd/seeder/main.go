package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sample league used when generating fixtures
var teams = []string{
	"Arsenal", "Chelsea", "Liverpool", "Manchester City", "Manchester United",
	"Tottenham", "Newcastle", "Aston Villa", "Brighton", "West Ham",
	"Everton", "Leeds", "Brentford", "Fulham", "Wolves", "Crystal Palace",
}

type score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type match struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	Score       *score `json:"score,omitempty"`
	Competition string `json:"competition"`
	Season      string `json:"season"`
}

type document struct {
	Matches []match `json:"matches"`
}

func main() {
	var (
		out      = flag.String("out", "data/matches.json", "output dataset path")
		count    = flag.Int("count", 500, "number of matches to generate")
		seed     = flag.Int64("seed", 42, "rng seed for reproducible datasets")
		postgres = flag.String("postgres", "", "optional Postgres URL to seed the matches table")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	matches := generate(rng, *count)

	if err := writeDataset(*out, matches); err != nil {
		log.Fatalf("write dataset: %v", err)
	}
	fmt.Printf("wrote %d matches to %s\n", len(matches), *out)

	if *postgres != "" {
		if err := seedPostgres(*postgres, matches); err != nil {
			log.Fatalf("seed postgres: %v", err)
		}
		fmt.Printf("seeded %d matches into postgres\n", len(matches))
	}
}

func generate(rng *rand.Rand, count int) []match {
	start := time.Date(2021, 8, 14, 0, 0, 0, 0, time.UTC)
	matches := make([]match, 0, count)

	for i := 0; i < count; i++ {
		home := teams[rng.Intn(len(teams))]
		away := teams[rng.Intn(len(teams))]
		for away == home {
			away = teams[rng.Intn(len(teams))]
		}

		date := start.AddDate(0, 0, i*2)
		m := match{
			ID:          uuid.NewString(),
			Date:        date.Format("2006-01-02"),
			HomeTeam:    home,
			AwayTeam:    away,
			Competition: "Premier League",
			Season:      seasonFor(date),
		}

		// leave a small tail of fixtures unplayed
		if i < count-count/20 {
			m.Score = &score{Home: rng.Intn(5), Away: rng.Intn(4)}
		}

		matches = append(matches, m)
	}
	return matches
}

func seasonFor(date time.Time) string {
	year := date.Year()
	if date.Month() < time.July {
		year--
	}
	return fmt.Sprintf("%d/%02d", year, (year+1)%100)
}

func writeDataset(path string, matches []match) error {
	data, err := json.MarshalIndent(document{Matches: matches}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func seedPostgres(url string, matches []match) error {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return err
	}
	defer pool.Close()

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS matches (
			id          TEXT PRIMARY KEY,
			match_date  DATE NOT NULL,
			home_team   TEXT NOT NULL,
			away_team   TEXT NOT NULL,
			home_goals  INT,
			away_goals  INT,
			competition TEXT,
			season      TEXT
		)
	`)
	if err != nil {
		return err
	}

	for _, m := range matches {
		var home, away *int
		if m.Score != nil {
			home, away = &m.Score.Home, &m.Score.Away
		}
		_, err := pool.Exec(ctx, `
			INSERT INTO matches (id, match_date, home_team, away_team, home_goals, away_goals, competition, season)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING
		`, m.ID, m.Date, m.HomeTeam, m.AwayTeam, home, away, m.Competition, m.Season)
		if err != nil {
			return err
		}
	}
	return nil
}
