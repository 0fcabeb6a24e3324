package api

import (
	"encoding/json"
	"net/http"

	"stormlightlabs.org/matchday/internal/cache"
	"stormlightlabs.org/matchday/internal/core"
	"stormlightlabs.org/matchday/internal/search"
)

// RosterRoutes exposes read/write access to stored rosters.
type RosterRoutes struct {
	repo  core.RosterRepository
	cache *cache.Client
}

func NewRosterRoutes(repo core.RosterRepository, cacheClient *cache.Client) *RosterRoutes {
	return &RosterRoutes{repo: repo, cache: cacheClient}
}

func (rr *RosterRoutes) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/rosters/{id}", rr.handleGetRoster)
	mux.HandleFunc("POST /v1/rosters", rr.handleSaveRoster)
	mux.HandleFunc("GET /v1/rosters/{id}/search", rr.handleSearchRoster)
}

// RosterRequest is the JSON body accepted by POST /v1/rosters.
type RosterRequest struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Players []core.Player `json:"players"`
}

// RosterResponse is the JSON body returned by GET /v1/rosters/{id}.
type RosterResponse struct {
	ID      string        `json:"id"`
	Players []core.Player `json:"players"`
}

// handleGetRoster godoc
// @Summary Get a stored roster
// @Description Fetch a previously saved roster without running the balance engine
// @Tags rosters
// @Accept json
// @Produce json
// @Param id path string true "Roster ID"
// @Success 200 {object} RosterResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /rosters/{id} [get]
func (rr *RosterRoutes) handleGetRoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var negKey string
	if rr.cache != nil {
		negKey = rr.cache.EntityKey("roster-missing", id)
		if entry, hit := rr.cache.GetNegativeCache(ctx, negKey); hit {
			writeNotFound(w, entry.Message)
			return
		}
	}

	players, err := rr.repo.GetRoster(ctx, id)
	if err != nil {
		if rr.cache != nil && core.IsNotFound(err) {
			_ = rr.cache.CacheNegativeResponse(ctx, negKey, id)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RosterResponse{ID: id, Players: players})
}

// handleSaveRoster godoc
// @Summary Store a roster for later balancing
// @Description Upsert a named roster and its players
// @Tags rosters
// @Accept json
// @Produce json
// @Param roster body RosterRequest true "Roster to store"
// @Success 200 {object} RosterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /rosters [post]
func (rr *RosterRoutes) handleSaveRoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body: "+err.Error())
		return
	}

	if req.ID == "" {
		writeBadRequest(w, "id is required")
		return
	}

	if err := rr.repo.SaveRoster(ctx, req.ID, req.Name, req.Players); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RosterResponse{ID: req.ID, Players: req.Players})
}

// RosterSearchResponse is the JSON body returned by GET /v1/rosters/{id}/search.
type RosterSearchResponse struct {
	ID      string             `json:"id"`
	Query   search.RosterQuery `json:"query"`
	Players []core.RatedPlayer `json:"players"`
}

// handleSearchRoster godoc
// @Summary Search a stored roster
// @Description Filter a stored roster's rated players by a natural-language query (games-played threshold, play style, tier number)
// @Tags rosters
// @Accept json
// @Produce json
// @Param id path string true "Roster ID"
// @Param q query string false "Natural language filter, e.g. '10+ games tier 2 fast'"
// @Success 200 {object} RosterSearchResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /rosters/{id}/search [get]
func (rr *RosterRoutes) handleSearchRoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	players, err := rr.repo.GetRoster(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	query := search.ParseRosterQuery(r.URL.Query().Get("q"))

	stats := core.ComputeLeagueStats(players)
	rated := core.RateRoster(players, stats)
	_, tiers := core.BuildTiers(rated)

	matches := filterRatedPlayers(tiers, query)

	writeJSON(w, http.StatusOK, RosterSearchResponse{ID: id, Query: query, Players: matches})
}

// filterRatedPlayers applies a parsed RosterQuery's optional games, style,
// and tier filters to every rated player across the roster's tiers.
func filterRatedPlayers(tiers []core.Tier, query search.RosterQuery) []core.RatedPlayer {
	var matches []core.RatedPlayer

	for _, tier := range tiers {
		if query.TierNum != nil && tier.Number != *query.TierNum {
			continue
		}

		for _, rp := range tier.Members {
			if query.MinGames != nil {
				if rp.Career == nil || rp.Career.TotalGames < *query.MinGames {
					continue
				}
			}

			if query.Style != nil && !hasDominantStyle(rp, *query.Style) {
				continue
			}

			matches = append(matches, rp)
		}
	}

	return matches
}

// hasDominantStyle reports whether the named style component is the largest
// of a rated player's six style attributes.
func hasDominantStyle(rp core.RatedPlayer, field string) bool {
	if rp.Style == nil {
		return false
	}

	components := map[string]float64{
		"pace":      rp.Style.Pace,
		"shooting":  rp.Style.Shooting,
		"passing":   rp.Style.Passing,
		"dribbling": rp.Style.Dribbling,
		"defending": rp.Style.Defending,
		"physical":  rp.Style.Physical,
	}

	target, ok := components[field]
	if !ok {
		return false
	}

	for name, v := range components {
		if name != field && v > target {
			return false
		}
	}
	return true
}
