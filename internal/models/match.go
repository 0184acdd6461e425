package models

// Score holds the final score of a played match. Either side may be absent
// when the match has not been played or the source had no result for it.
type Score struct {
	Home *int `json:"home,omitempty"`
	Away *int `json:"away,omitempty"`
}

// Match is an immutable, externally sourced match record.
type Match struct {
	ID          string `json:"id,omitempty"`
	Date        string `json:"date"`
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	Score       *Score `json:"score,omitempty"`
	Competition string `json:"competition,omitempty"`
	Season      string `json:"season,omitempty"`
}

// HasResult reports whether both score fields are present. Matches without a
// full result are excluded from any statistic that compares scores.
func (m *Match) HasResult() bool {
	return m.Score != nil && m.Score.Home != nil && m.Score.Away != nil
}

// Field resolves a match attribute by its wire name for generic filtering.
// The second return is false when the attribute is unknown or empty.
func (m *Match) Field(name string) (string, bool) {
	var v string
	switch name {
	case "id":
		v = m.ID
	case "date":
		v = m.Date
	case "home_team":
		v = m.HomeTeam
	case "away_team":
		v = m.AwayTeam
	case "competition":
		v = m.Competition
	case "season":
		v = m.Season
	default:
		return "", false
	}
	if v == "" {
		return "", false
	}
	return v, true
}

// ScoreField resolves a score side ("home" or "away") by name.
func (m *Match) ScoreField(side string) (int, bool) {
	if m.Score == nil {
		return 0, false
	}
	switch side {
	case "home":
		if m.Score.Home != nil {
			return *m.Score.Home, true
		}
	case "away":
		if m.Score.Away != nil {
			return *m.Score.Away, true
		}
	}
	return 0, false
}
