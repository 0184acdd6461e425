package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/pitchstats/matches-api/internal/models"
)

const dateLayout = "2006-01-02"

// allowedCriteria restricts query keys before they reach the filter engine.
// The engine itself accepts arbitrary keys; the API surface does not.
var allowedCriteria = map[string]struct{}{
	"id":                {},
	"date":              {},
	"team":              {},
	"home_team":         {},
	"away_team":         {},
	"both_teams_scored": {},
	"score_home":        {},
	"score_away":        {},
	"competition":       {},
	"season":            {},
	"page":              {},
	"page_size":         {},
}

// GetMatches returns the filtered, paginated match listing
// @Summary List Matches
// @Description Filter, sort and paginate the match dataset with aggregate statistics
// @Tags Matches
// @Produce json
// @Param team query string false "Team name, either side"
// @Param home_team query string false "Home team name"
// @Param away_team query string false "Away team name"
// @Param date query string false "Earliest match date (YYYY-MM-DD, inclusive)"
// @Param both_teams_scored query string false "true/false"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} models.MatchesResponse "Match listing"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 404 {object} map[string]string "Data unavailable"
// @Router /matches [get]
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	matchRequests.Inc()

	query := r.URL.Query()
	criteria, fieldErrs := buildCriteria(query)
	if len(fieldErrs) > 0 {
		h.validationErrorResponse(w, fieldErrs)
		return
	}

	pq, fieldErrs := h.parsePagination(query)
	if len(fieldErrs) > 0 {
		h.validationErrorResponse(w, fieldErrs)
		return
	}

	cacheKey := "list:" + query.Encode()
	if data, ok := h.cache.Get(ctx, cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	all, err := h.store.GetAll(ctx)
	if err != nil {
		h.logger.Errorw("Failed to load matches", "error", err)
		h.storeErrorResponse(w, err)
		return
	}
	datasetSize.Set(float64(len(all)))

	start := time.Now()
	filtered := h.filter.Filter(all, criteria)
	filterDuration.Observe(time.Since(start).Seconds())

	sortMatchesByDateDesc(filtered)

	page, pagination := paginate(filtered, pq.Page, pq.PageSize)

	resp := models.MatchesResponse{
		Matches:    page,
		Pagination: pagination,
		Statistics: models.MatchStatistics{
			TotalMatches:              len(filtered),
			BothTeamsScoredPercentage: h.stats.BothTeamsScoredPercentage(filtered),
			AverageGoals:              h.stats.AverageGoals(filtered),
		},
		AvailableTeams: collectTeams(all),
	}

	// a fully specified fixture gets a prediction block
	if home, away := criteria["home_team"], criteria["away_team"]; home != "" && away != "" {
		bundle := h.prediction.RunPrediction(home, away, all)
		resp.Prediction = &bundle
	}

	data, err := json.Marshal(resp)
	if err != nil {
		h.logger.Errorw("Failed to marshal response", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}
	h.cache.Set(ctx, cacheKey, data)

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// buildCriteria keeps the last value per key, rejecting keys outside the
// allow-list.
func buildCriteria(query url.Values) (models.FilterCriteria, map[string]string) {
	criteria := make(models.FilterCriteria, len(query))
	fieldErrs := make(map[string]string)
	for key, values := range query {
		if _, ok := allowedCriteria[key]; !ok {
			fieldErrs[key] = "unknown filter parameter"
			continue
		}
		if len(values) > 0 {
			criteria[key] = values[len(values)-1]
		}
	}
	return criteria, fieldErrs
}

func (h *Handler) parsePagination(query url.Values) (models.MatchesQuery, map[string]string) {
	pq := models.MatchesQuery{
		Page:     1,
		PageSize: h.defaultPageSize,
	}
	fieldErrs := make(map[string]string)

	if raw := query.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrs["page"] = "must be an integer"
		} else {
			pq.Page = n
		}
	}
	if raw := query.Get("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrs["page_size"] = "must be an integer"
		} else {
			pq.PageSize = n
		}
	}
	if len(fieldErrs) > 0 {
		return pq, fieldErrs
	}

	if err := h.validator.Struct(pq); err != nil {
		for _, fe := range extractFieldErrors(err) {
			switch fe.field {
			case "Page":
				fieldErrs["page"] = fe.message
			case "PageSize":
				fieldErrs["page_size"] = fe.message
			}
		}
	}
	if pq.PageSize > h.maxPageSize {
		fieldErrs["page_size"] = "exceeds maximum page size"
	}
	return pq, fieldErrs
}

// paginate slices one page out of the filtered set.
func paginate(matches []models.Match, page, size int) ([]models.Match, models.Pagination) {
	total := len(matches)
	totalPages := 0
	if total > 0 {
		totalPages = (total + size - 1) / size
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return matches[start:end], models.Pagination{
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// sortMatchesByDateDesc orders most recent first; matches with unparsable
// dates sink to the end keeping their relative order.
func sortMatchesByDateDesc(matches []models.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		di, erri := time.Parse(dateLayout, matches[i].Date)
		dj, errj := time.Parse(dateLayout, matches[j].Date)
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return di.After(dj)
	})
}

// collectTeams returns the unique team names in the dataset, sorted.
func collectTeams(matches []models.Match) []string {
	seen := make(map[string]struct{}, len(matches)*2)
	teams := make([]string, 0)
	for i := range matches {
		for _, name := range []string{matches[i].HomeTeam, matches[i].AwayTeam} {
			if name == "" {
				continue
			}
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				teams = append(teams, name)
			}
		}
	}
	sort.Strings(teams)
	return teams
}
