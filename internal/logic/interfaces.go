package logic

import (
	"github.com/pitchstats/matches-api/internal/models"
)

// FilterService evaluates named predicates against a match collection.
type FilterService interface {
	Filter(matches []models.Match, criteria models.FilterCriteria) []models.Match
}

// StatsService computes aggregate metrics over a match collection. All
// methods are pure functions of their arguments and safe for concurrent use.
type StatsService interface {
	BothTeamsScoredPercentage(matches []models.Match) float64
	AverageGoals(matches []models.Match) models.AverageGoals
	FormIndex(matches []models.Match, team string, recentGames int) float64
	HeadToHeadStats(matches []models.Match) models.HeadToHeadStats
	BothTeamsToScoreProb(matches []models.Match) float64
}

// PredictionService derives a heuristic outcome forecast from history.
type PredictionService interface {
	PredictWinner(homeTeam, awayTeam string, headToHead []models.Match) models.WinnerPrediction
	ExpectedGoals(team string, matches []models.Match) float64
	RunPrediction(homeTeam, awayTeam string, allMatches []models.Match) models.PredictionBundle
}
