package logic

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pitchstats/matches-api/internal/models"
)

// Confidence levels bucketed by head-to-head sample size. This is a coarse
// data-sufficiency score, separate from WinnerPrediction.Confidence which
// carries the winning outcome's percentage.
const (
	confidenceNone   = 0.0
	confidenceLow    = 30.0
	confidenceMedium = 50.0
	confidenceHigh   = 70.0
	confidenceMax    = 85.0
)

type predictionService struct {
	stats      StatsService
	formWindow int
}

// NewPredictionService builds a prediction service computing form over the
// given window; zero or negative falls back to DefaultFormWindow.
func NewPredictionService(stats StatsService, formWindow int) PredictionService {
	if formWindow <= 0 {
		formWindow = DefaultFormWindow
	}
	return &predictionService{stats: stats, formWindow: formWindow}
}

// PredictWinner picks the historically most frequent outcome between the two
// teams. On exact percentage ties the outcome is chosen in fixed priority
// order: home win, away win, draw.
func (s *predictionService) PredictWinner(homeTeam, awayTeam string, headToHead []models.Match) models.WinnerPrediction {
	if len(headToHead) == 0 {
		return models.WinnerPrediction{
			PredictedWinner: models.PredictedInsufficientData,
			Confidence:      0.0,
			Reasoning:       "No historical data available for these teams",
		}
	}

	stats := s.stats.HeadToHeadStats(headToHead)
	total := len(headToHead)

	winner := models.PredictedUncertain
	confidence := 0.0
	reasoning := fmt.Sprintf("Based on %d head-to-head matches.", total)

	switch {
	case stats.HomeWinPercentage > 0 &&
		stats.HomeWinPercentage >= stats.AwayWinPercentage &&
		stats.HomeWinPercentage >= stats.DrawPercentage:
		winner = homeTeam
		confidence = stats.HomeWinPercentage
		reasoning = fmt.Sprintf("Based on %d head-to-head matches. %s has won %.2f%% of these encounters.",
			total, homeTeam, confidence)
	case stats.AwayWinPercentage > 0 &&
		stats.AwayWinPercentage >= stats.DrawPercentage:
		winner = awayTeam
		confidence = stats.AwayWinPercentage
		reasoning = fmt.Sprintf("Based on %d head-to-head matches. %s has won %.2f%% of these encounters.",
			total, awayTeam, confidence)
	case stats.DrawPercentage > 0:
		winner = models.PredictedDraw
		confidence = stats.DrawPercentage
		reasoning = fmt.Sprintf("Based on %d head-to-head matches. %.2f%% of these encounters ended in a draw.",
			total, confidence)
	}

	return models.WinnerPrediction{
		PredictedWinner: winner,
		Confidence:      confidence,
		Reasoning:       reasoning,
	}
}

// ExpectedGoals is the mean number of goals the team scored on its own side
// across every match it played with that side's score recorded.
func (s *predictionService) ExpectedGoals(team string, matches []models.Match) float64 {
	if team == "" {
		return 0.0
	}

	goals, played := 0, 0
	for i := range matches {
		m := &matches[i]
		var side string
		switch {
		case strings.EqualFold(m.HomeTeam, team):
			side = "home"
		case strings.EqualFold(m.AwayTeam, team):
			side = "away"
		default:
			continue
		}
		if g, ok := m.ScoreField(side); ok {
			goals += g
			played++
		}
	}

	if played == 0 {
		return 0.0
	}
	return round2(float64(goals) / float64(played))
}

// RunPrediction assembles the full forecast bundle for a fixture. The winner
// heuristic and scoring probability run over the head-to-head subset;
// expected goals and form run over each team's complete history.
func (s *predictionService) RunPrediction(homeTeam, awayTeam string, allMatches []models.Match) models.PredictionBundle {
	h2h := headToHeadSubset(homeTeam, awayTeam, allMatches)

	bundle := models.PredictionBundle{
		HomeTeam:        homeTeam,
		AwayTeam:        awayTeam,
		MatchesAnalyzed: len(h2h),
		ConfidenceLevel: confidenceLevel(len(h2h)),
	}

	var g errgroup.Group
	g.Go(func() error {
		bundle.WinnerPrediction = s.PredictWinner(homeTeam, awayTeam, h2h)
		return nil
	})
	g.Go(func() error {
		bundle.ExpectedGoals.Home = s.ExpectedGoals(homeTeam, allMatches)
		bundle.ExpectedGoals.Away = s.ExpectedGoals(awayTeam, allMatches)
		return nil
	})
	g.Go(func() error {
		bundle.FormAnalysis.HomeForm = s.stats.FormIndex(allMatches, homeTeam, s.formWindow)
		bundle.FormAnalysis.AwayForm = s.stats.FormIndex(allMatches, awayTeam, s.formWindow)
		return nil
	})
	g.Go(func() error {
		bundle.BothTeamsToScoreProbability = s.stats.BothTeamsToScoreProb(h2h)
		bundle.HeadToHeadStats = s.stats.HeadToHeadStats(h2h)
		return nil
	})
	// goroutines write disjoint fields and never fail
	_ = g.Wait()

	return bundle
}

// headToHeadSubset keeps the matches where the two teams met, in either
// home/away orientation, preserving input order.
func headToHeadSubset(teamA, teamB string, matches []models.Match) []models.Match {
	h2h := make([]models.Match, 0)
	for i := range matches {
		m := &matches[i]
		straight := strings.EqualFold(m.HomeTeam, teamA) && strings.EqualFold(m.AwayTeam, teamB)
		reversed := strings.EqualFold(m.HomeTeam, teamB) && strings.EqualFold(m.AwayTeam, teamA)
		if straight || reversed {
			h2h = append(h2h, *m)
		}
	}
	return h2h
}

// confidenceLevel buckets the head-to-head sample size into a fixed scale.
func confidenceLevel(count int) float64 {
	switch {
	case count == 0:
		return confidenceNone
	case count <= 2:
		return confidenceLow
	case count <= 4:
		return confidenceMedium
	case count <= 9:
		return confidenceHigh
	default:
		return confidenceMax
	}
}
