package models

// FilterCriteria maps predicate names to their raw string values. The
// parameter layer guarantees a single value per key.
type FilterCriteria map[string]string

// MatchesQuery carries the sanitized pagination values for a match listing.
type MatchesQuery struct {
	Page     int `validate:"min=1"`
	PageSize int `validate:"min=1,max=100"`
}

// PredictionQuery identifies the fixture to predict.
type PredictionQuery struct {
	HomeTeam string `validate:"required"`
	AwayTeam string `validate:"required"`
}

// Pagination describes the slice of the filtered set being returned.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// MatchesResponse is the envelope for the match listing endpoint.
type MatchesResponse struct {
	Matches        []Match           `json:"matches"`
	Pagination     Pagination        `json:"pagination"`
	Statistics     MatchStatistics   `json:"statistics"`
	AvailableTeams []string          `json:"available_teams"`
	Prediction     *PredictionBundle `json:"prediction,omitempty"`
}
