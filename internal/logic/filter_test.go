package logic

import (
	"testing"

	"github.com/pitchstats/matches-api/internal/models"
)

func ip(n int) *int { return &n }

func scored(home, away, date string, hg, ag int) models.Match {
	return models.Match{
		HomeTeam: home,
		AwayTeam: away,
		Date:     date,
		Score:    &models.Score{Home: ip(hg), Away: ip(ag)},
	}
}

func unplayed(home, away, date string) models.Match {
	return models.Match{HomeTeam: home, AwayTeam: away, Date: date}
}

func TestFilterIdentity(t *testing.T) {
	svc := NewFilterService()
	matches := []models.Match{
		scored("Arsenal", "Chelsea", "2023-01-01", 2, 1),
		unplayed("Liverpool", "Everton", "2024-05-01"),
	}

	got := svc.Filter(matches, nil)
	if len(got) != len(matches) {
		t.Fatalf("empty criteria: got %d matches, want %d", len(got), len(matches))
	}

	got = svc.Filter(matches, models.FilterCriteria{})
	if len(got) != len(matches) {
		t.Fatalf("empty map criteria: got %d matches, want %d", len(got), len(matches))
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	svc := NewFilterService()
	matches := []models.Match{
		scored("Arsenal", "Chelsea", "2023-01-01", 2, 1),
		scored("Chelsea", "Liverpool", "2023-02-01", 0, 0),
		scored("Arsenal", "Liverpool", "2023-03-01", 1, 1),
		scored("Everton", "Arsenal", "2023-04-01", 0, 3),
	}

	got := svc.Filter(matches, models.FilterCriteria{"team": "arsenal"})
	wantDates := []string{"2023-01-01", "2023-03-01", "2023-04-01"}
	if len(got) != len(wantDates) {
		t.Fatalf("got %d matches, want %d", len(got), len(wantDates))
	}
	for i, m := range got {
		if m.Date != wantDates[i] {
			t.Errorf("match %d: date = %s, want %s", i, m.Date, wantDates[i])
		}
	}
}

func TestFilterPredicates(t *testing.T) {
	matches := []models.Match{
		scored("arsenal", "Chelsea", "2023-01-01", 1, 1),
		scored("Liverpool", "Everton", "2023-06-01", 0, 2),
		scored("Chelsea", "Arsenal", "2024-01-01", 3, 0),
	}
	matches[0].Competition = "Premier League"
	matches[0].Season = "2022/23"

	tests := []struct {
		name     string
		criteria models.FilterCriteria
		want     int
	}{
		{"home team case-insensitive", models.FilterCriteria{"home_team": "Arsenal"}, 1},
		{"away team", models.FilterCriteria{"away_team": "arsenal"}, 1},
		{"team either side", models.FilterCriteria{"team": "ARSENAL"}, 2},
		{"team no hits", models.FilterCriteria{"team": "Spurs"}, 0},
		{"date is a lower bound, not equality", models.FilterCriteria{"date": "2023-06-01"}, 2},
		{"date beyond all", models.FilterCriteria{"date": "2025-01-01"}, 0},
		{"unparsable criterion date", models.FilterCriteria{"date": "yesterday"}, 0},
		{"both teams scored true", models.FilterCriteria{"both_teams_scored": "true"}, 1},
		{"both teams scored yes", models.FilterCriteria{"both_teams_scored": "yes"}, 1},
		{"both teams scored false", models.FilterCriteria{"both_teams_scored": "0"}, 2},
		{"both teams scored garbage", models.FilterCriteria{"both_teams_scored": "maybe"}, 0},
		{"score_home exact", models.FilterCriteria{"score_home": "3"}, 1},
		{"score_away exact", models.FilterCriteria{"score_away": "2"}, 1},
		{"score_home no match", models.FilterCriteria{"score_home": "9"}, 0},
		{"default field competition", models.FilterCriteria{"competition": "premier league"}, 1},
		{"default field season", models.FilterCriteria{"season": "2022/23"}, 1},
		{"unknown field excludes", models.FilterCriteria{"venue": "Wembley"}, 0},
		{"pagination keys pass", models.FilterCriteria{"page": "2", "page_size": "10"}, 3},
		{"AND across keys", models.FilterCriteria{"team": "Arsenal", "date": "2024-01-01"}, 1},
	}

	svc := NewFilterService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Filter(matches, tt.criteria)
			if len(got) != tt.want {
				t.Errorf("Filter(%v) = %d matches, want %d", tt.criteria, len(got), tt.want)
			}
		})
	}
}

func TestFilterBothTeamsScoredWords(t *testing.T) {
	// {1,1} passes, {0,2} and {3,0} do not
	matches := []models.Match{
		scored("A", "B", "2023-01-01", 1, 1),
		scored("C", "D", "2023-01-02", 0, 2),
		scored("E", "F", "2023-01-03", 3, 0),
	}

	svc := NewFilterService()
	got := svc.Filter(matches, models.FilterCriteria{"both_teams_scored": "true"})
	if len(got) != 1 || got[0].HomeTeam != "A" {
		t.Fatalf("got %v, want only the 1-1 match", got)
	}
}

func TestFilterMissingFieldsExclude(t *testing.T) {
	matches := []models.Match{
		unplayed("Arsenal", "Chelsea", "2023-01-01"), // no score
		{HomeTeam: "Leeds", Date: "2023-01-02"},      // no away team
	}

	svc := NewFilterService()

	if got := svc.Filter(matches, models.FilterCriteria{"score_home": "0"}); len(got) != 0 {
		t.Errorf("absent score should exclude, got %d matches", len(got))
	}
	if got := svc.Filter(matches, models.FilterCriteria{"team": "Leeds"}); len(got) != 0 {
		t.Errorf("missing away team should exclude from team filter, got %d matches", len(got))
	}
	if got := svc.Filter(matches, models.FilterCriteria{"home_team": "Leeds"}); len(got) != 1 {
		t.Errorf("single-field filter should still match, got %d matches", len(got))
	}
}
