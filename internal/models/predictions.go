package models

// Predicted winner labels that are not team names.
const (
	PredictedDraw             = "draw"
	PredictedUncertain        = "uncertain"
	PredictedInsufficientData = "insufficient_data"
)

// WinnerPrediction is the outcome of the head-to-head heuristic.
// Confidence is the winning outcome's historical percentage, not the
// count-based ConfidenceLevel reported alongside it.
type WinnerPrediction struct {
	PredictedWinner string  `json:"predicted_winner"`
	Confidence      float64 `json:"confidence"`
	Reasoning       string  `json:"reasoning"`
}

// ExpectedGoals holds per-side mean goals scored across each team's full
// match history, not just head-to-head encounters.
type ExpectedGoals struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

// FormAnalysis holds the recent-form index (0-100) for both teams.
type FormAnalysis struct {
	HomeForm float64 `json:"home_form"`
	AwayForm float64 `json:"away_form"`
}

// PredictionBundle is the full prediction payload for a fixture.
type PredictionBundle struct {
	HomeTeam                    string           `json:"home_team"`
	AwayTeam                    string           `json:"away_team"`
	WinnerPrediction            WinnerPrediction `json:"winner_prediction"`
	ExpectedGoals               ExpectedGoals    `json:"expected_goals"`
	BothTeamsToScoreProbability float64          `json:"both_teams_to_score_probability"`
	FormAnalysis                FormAnalysis     `json:"form_analysis"`
	HeadToHeadStats             HeadToHeadStats  `json:"head_to_head_stats"`
	MatchesAnalyzed             int              `json:"matches_analyzed"`
	ConfidenceLevel             float64          `json:"confidence_level"`
}
