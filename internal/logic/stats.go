package logic

import (
	"math"
	"strings"

	"github.com/pitchstats/matches-api/internal/models"
)

// DefaultFormWindow is the number of recent matches the form index considers
// when the caller does not override it.
const DefaultFormWindow = 5

type statsService struct{}

func NewStatsService() StatsService {
	return &statsService{}
}

// round2 rounds half away from zero to two decimal places. Every percentage
// and average this service emits goes through it.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BothTeamsScoredPercentage returns the share of the input where both sides
// scored. The denominator is the full input count: matches without a recorded
// result count against the percentage. BothTeamsToScoreProb is the
// valid-results-only variant.
func (s *statsService) BothTeamsScoredPercentage(matches []models.Match) float64 {
	if len(matches) == 0 {
		return 0.0
	}
	count := 0
	for i := range matches {
		if bothScored(&matches[i]) {
			count++
		}
	}
	return round2(float64(count) / float64(len(matches)) * 100)
}

// AverageGoals sums goals across all matches, treating missing score fields
// as zero, and divides by the total match count.
func (s *statsService) AverageGoals(matches []models.Match) models.AverageGoals {
	if len(matches) == 0 {
		return models.AverageGoals{}
	}

	var home, away int
	for i := range matches {
		if g, ok := matches[i].ScoreField("home"); ok {
			home += g
		}
		if g, ok := matches[i].ScoreField("away"); ok {
			away += g
		}
	}

	n := float64(len(matches))
	return models.AverageGoals{
		Total: round2(float64(home+away) / n),
		Home:  round2(float64(home) / n),
		Away:  round2(float64(away) / n),
	}
}

// FormIndex scores a team's recent results as a percentage of the maximum
// attainable points (3 per win, 1 per draw) over the first recentGames
// matches involving the team, in the order given. Callers wanting
// most-recent-first must sort before calling; this function does not.
func (s *statsService) FormIndex(matches []models.Match, team string, recentGames int) float64 {
	if team == "" || len(matches) == 0 {
		return 0.0
	}
	if recentGames <= 0 {
		recentGames = DefaultFormWindow
	}

	points := 0
	considered := 0
	for i := range matches {
		if considered == recentGames {
			break
		}
		m := &matches[i]
		if !strings.EqualFold(m.HomeTeam, team) && !strings.EqualFold(m.AwayTeam, team) {
			continue
		}
		considered++
		points += formPoints(m, team)
	}

	if considered == 0 {
		return 0.0
	}
	return round2(float64(points) / float64(3*considered) * 100)
}

// formPoints awards 3/1/0 from the team's perspective; a match without a
// full result is worth nothing but still occupies a slot in the window.
func formPoints(m *models.Match, team string) int {
	if !m.HasResult() {
		return 0
	}
	home, away := *m.Score.Home, *m.Score.Away
	if home == away {
		return 1
	}
	homeWon := home > away
	teamAtHome := strings.EqualFold(m.HomeTeam, team)
	if homeWon == teamAtHome {
		return 3
	}
	return 0
}

// HeadToHeadStats breaks down results by outcome over the matches with both
// scores recorded. Percentages are over that valid count; with no valid
// matches the whole structure is zero.
func (s *statsService) HeadToHeadStats(matches []models.Match) models.HeadToHeadStats {
	var stats models.HeadToHeadStats

	valid := 0
	for i := range matches {
		m := &matches[i]
		if !m.HasResult() {
			continue
		}
		valid++
		switch {
		case *m.Score.Home > *m.Score.Away:
			stats.HomeWins++
		case *m.Score.Away > *m.Score.Home:
			stats.AwayWins++
		default:
			stats.Draws++
		}
	}

	if valid == 0 {
		return stats
	}

	n := float64(valid)
	stats.HomeWinPercentage = round2(float64(stats.HomeWins) / n * 100)
	stats.AwayWinPercentage = round2(float64(stats.AwayWins) / n * 100)
	stats.DrawPercentage = round2(float64(stats.Draws) / n * 100)
	return stats
}

// BothTeamsToScoreProb is the both-teams-scored rate over matches with a
// recorded result only. See BothTeamsScoredPercentage for the full-input
// variant with its larger denominator.
func (s *statsService) BothTeamsToScoreProb(matches []models.Match) float64 {
	valid, count := 0, 0
	for i := range matches {
		if !matches[i].HasResult() {
			continue
		}
		valid++
		if bothScored(&matches[i]) {
			count++
		}
	}
	if valid == 0 {
		return 0.0
	}
	return round2(float64(count) / float64(valid) * 100)
}

func bothScored(m *models.Match) bool {
	return m.HasResult() && *m.Score.Home > 0 && *m.Score.Away > 0
}
