package logic

import (
	"strconv"
	"strings"
	"time"

	"github.com/pitchstats/matches-api/internal/models"
)

// dateLayout is the calendar format used by the dataset
const dateLayout = "2006-01-02"

// scorePrefix marks criteria addressing a single score side (score_home, score_away)
const scorePrefix = "score_"

type filterService struct{}

func NewFilterService() FilterService {
	return &filterService{}
}

// predicate reports whether a match satisfies one criterion value
type predicate func(m *models.Match, value string) bool

// predicates maps recognized criterion names to their evaluation strategy.
// Names not listed here (and not score_*) fall through to direct field
// matching; pagination keys are consumed downstream and always pass.
var predicates = map[string]predicate{
	"team": matchesEitherSide,
	"home_team": func(m *models.Match, v string) bool {
		return equalsFold(m.HomeTeam, v)
	},
	"away_team": func(m *models.Match, v string) bool {
		return equalsFold(m.AwayTeam, v)
	},
	"date":              matchesDateFrom,
	"both_teams_scored": matchesBothTeamsScored,
	"page":              passThrough,
	"page_size":         passThrough,
}

// Filter returns the matches satisfying every criterion, preserving the
// original relative order. Empty criteria is the identity.
func (s *filterService) Filter(matches []models.Match, criteria models.FilterCriteria) []models.Match {
	if len(criteria) == 0 {
		return matches
	}

	out := make([]models.Match, 0, len(matches))
	for i := range matches {
		if satisfiesAll(&matches[i], criteria) {
			out = append(out, matches[i])
		}
	}
	return out
}

func satisfiesAll(m *models.Match, criteria models.FilterCriteria) bool {
	for key, value := range criteria {
		if p, ok := predicates[key]; ok {
			if !p(m, value) {
				return false
			}
			continue
		}
		if side, ok := strings.CutPrefix(key, scorePrefix); ok {
			if !matchesScoreField(m, side, value) {
				return false
			}
			continue
		}
		if !matchesField(m, key, value) {
			return false
		}
	}
	return true
}

func passThrough(*models.Match, string) bool { return true }

func equalsFold(field, value string) bool {
	return field != "" && strings.EqualFold(field, value)
}

// matchesEitherSide matches the value against home or away; a match missing
// either team name is excluded outright.
func matchesEitherSide(m *models.Match, value string) bool {
	if m.HomeTeam == "" || m.AwayTeam == "" {
		return false
	}
	return strings.EqualFold(m.HomeTeam, value) || strings.EqualFold(m.AwayTeam, value)
}

// matchesDateFrom is an inclusive lower bound, not an equality test: the
// criterion selects matches played on or after the given date.
func matchesDateFrom(m *models.Match, value string) bool {
	matchDate, err := time.Parse(dateLayout, m.Date)
	if err != nil {
		return false
	}
	from, err := time.Parse(dateLayout, value)
	if err != nil {
		return false
	}
	return !matchDate.Before(from)
}

func matchesBothTeamsScored(m *models.Match, value string) bool {
	want, ok := parseBoolWord(value)
	if !ok {
		return false
	}
	got := m.HasResult() && *m.Score.Home > 0 && *m.Score.Away > 0
	return got == want
}

func matchesScoreField(m *models.Match, side, value string) bool {
	goals, ok := m.ScoreField(side)
	if !ok {
		return false
	}
	return strconv.Itoa(goals) == value
}

// matchesField is the default fallback: direct lookup on the match record
// with case-insensitive string equality. Absent or unknown fields exclude.
func matchesField(m *models.Match, key, value string) bool {
	field, ok := m.Field(key)
	if !ok {
		return false
	}
	return strings.EqualFold(field, value)
}

func parseBoolWord(s string) (value, ok bool) {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}
