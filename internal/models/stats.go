package models

// AverageGoals holds mean goals per match, split by side.
type AverageGoals struct {
	Total float64 `json:"total"`
	Home  float64 `json:"home"`
	Away  float64 `json:"away"`
}

// HeadToHeadStats is the win/draw/loss breakdown between two teams.
// Percentages are over matches with a recorded result and sum to ~100
// whenever any result exists.
type HeadToHeadStats struct {
	HomeWins          int     `json:"home_wins"`
	AwayWins          int     `json:"away_wins"`
	Draws             int     `json:"draws"`
	HomeWinPercentage float64 `json:"home_win_percentage"`
	AwayWinPercentage float64 `json:"away_win_percentage"`
	DrawPercentage    float64 `json:"draw_percentage"`
}

// MatchStatistics aggregates descriptive metrics for a match listing.
type MatchStatistics struct {
	TotalMatches              int          `json:"total_matches"`
	BothTeamsScoredPercentage float64      `json:"both_teams_scored_percentage"`
	AverageGoals              AverageGoals `json:"average_goals"`
}
