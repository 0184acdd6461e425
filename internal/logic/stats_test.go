package logic

import (
	"testing"

	"github.com/pitchstats/matches-api/internal/models"
)

func TestBothTeamsScoredPercentage(t *testing.T) {
	svc := NewStatsService()

	tests := []struct {
		name    string
		matches []models.Match
		want    float64
	}{
		{"empty input", nil, 0.0},
		{
			"one of three, rounded half away from zero",
			[]models.Match{
				scored("A", "B", "2023-01-01", 1, 1),
				scored("C", "D", "2023-01-02", 0, 2),
				scored("E", "F", "2023-01-03", 3, 0),
			},
			33.33,
		},
		{
			// denominator stays at the full input count even when a match
			// has no result
			"unplayed match counts against the denominator",
			[]models.Match{
				scored("A", "B", "2023-01-01", 2, 1),
				unplayed("C", "D", "2023-01-02"),
			},
			50.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.BothTeamsScoredPercentage(tt.matches); got != tt.want {
				t.Errorf("BothTeamsScoredPercentage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBothTeamsToScoreProb(t *testing.T) {
	svc := NewStatsService()

	// same matches as above: the unplayed one drops out of the denominator
	matches := []models.Match{
		scored("A", "B", "2023-01-01", 2, 1),
		unplayed("C", "D", "2023-01-02"),
	}
	if got := svc.BothTeamsToScoreProb(matches); got != 100.0 {
		t.Errorf("BothTeamsToScoreProb() = %v, want 100.0", got)
	}

	if got := svc.BothTeamsToScoreProb(nil); got != 0.0 {
		t.Errorf("BothTeamsToScoreProb(nil) = %v, want 0.0", got)
	}
}

func TestAverageGoals(t *testing.T) {
	svc := NewStatsService()

	if got := svc.AverageGoals(nil); got != (models.AverageGoals{}) {
		t.Fatalf("AverageGoals(nil) = %v, want zero struct", got)
	}

	matches := []models.Match{
		scored("A", "B", "2023-01-01", 3, 1),
		scored("C", "D", "2023-01-02", 1, 0),
		unplayed("E", "F", "2023-01-03"), // missing score counts as 0 goals
	}
	got := svc.AverageGoals(matches)
	want := models.AverageGoals{Total: 1.67, Home: 1.33, Away: 0.33}
	if got != want {
		t.Errorf("AverageGoals() = %v, want %v", got, want)
	}
}

func TestFormIndex(t *testing.T) {
	svc := NewStatsService()

	// 2 wins, 1 draw, 2 losses over a 5 match window: 7 of 15 points
	matches := []models.Match{
		scored("Arsenal", "Chelsea", "2023-05-01", 2, 0),   // W
		scored("Liverpool", "Arsenal", "2023-04-01", 1, 3), // W
		scored("Arsenal", "Everton", "2023-03-01", 1, 1),   // D
		scored("Spurs", "Arsenal", "2023-02-01", 2, 0),     // L
		scored("Arsenal", "Leeds", "2023-01-01", 0, 1),     // L
	}

	if got := svc.FormIndex(matches, "Arsenal", 5); got != 46.67 {
		t.Errorf("FormIndex() = %v, want 46.67", got)
	}

	// case-insensitive team lookup
	if got := svc.FormIndex(matches, "arsenal", 5); got != 46.67 {
		t.Errorf("FormIndex(lowercase) = %v, want 46.67", got)
	}

	// window takes the first N in the given order, no internal sort
	if got := svc.FormIndex(matches, "Arsenal", 2); got != 100.0 {
		t.Errorf("FormIndex(window 2) = %v, want 100.0", got)
	}

	if got := svc.FormIndex(matches, "", 5); got != 0.0 {
		t.Errorf("FormIndex(empty team) = %v, want 0.0", got)
	}
	if got := svc.FormIndex(matches, "Brentford", 5); got != 0.0 {
		t.Errorf("FormIndex(unknown team) = %v, want 0.0", got)
	}
}

func TestFormIndexUnplayedOccupiesSlot(t *testing.T) {
	svc := NewStatsService()

	matches := []models.Match{
		scored("Arsenal", "Chelsea", "2023-05-01", 2, 0), // W
		unplayed("Arsenal", "Leeds", "2023-04-01"),       // 0 points, still counted
	}

	// 3 points of a possible 6
	if got := svc.FormIndex(matches, "Arsenal", 5); got != 50.0 {
		t.Errorf("FormIndex() = %v, want 50.0", got)
	}
}

func TestHeadToHeadStats(t *testing.T) {
	svc := NewStatsService()

	var matches []models.Match
	for i := 0; i < 4; i++ {
		matches = append(matches, scored("A", "B", "2023-01-01", 2, 0)) // home wins
	}
	for i := 0; i < 3; i++ {
		matches = append(matches, scored("A", "B", "2023-01-01", 0, 1)) // away wins
	}
	for i := 0; i < 3; i++ {
		matches = append(matches, scored("A", "B", "2023-01-01", 1, 1)) // draws
	}

	got := svc.HeadToHeadStats(matches)
	want := models.HeadToHeadStats{
		HomeWins: 4, AwayWins: 3, Draws: 3,
		HomeWinPercentage: 40.0, AwayWinPercentage: 30.0, DrawPercentage: 30.0,
	}
	if got != want {
		t.Errorf("HeadToHeadStats() = %+v, want %+v", got, want)
	}

	if sum := got.HomeWinPercentage + got.AwayWinPercentage + got.DrawPercentage; sum != 100.0 {
		t.Errorf("percentages sum to %v, want 100.0", sum)
	}
}

func TestHeadToHeadStatsNoValidResults(t *testing.T) {
	svc := NewStatsService()

	matches := []models.Match{
		unplayed("A", "B", "2023-01-01"),
		{HomeTeam: "A", AwayTeam: "B", Score: &models.Score{Home: ip(2)}}, // half a score
	}

	if got := svc.HeadToHeadStats(matches); got != (models.HeadToHeadStats{}) {
		t.Errorf("HeadToHeadStats() = %+v, want zero struct", got)
	}
}
