package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"stormlightlabs.org/matchday/internal/cache"
	"stormlightlabs.org/matchday/internal/core"
	"stormlightlabs.org/matchday/internal/db"
)

// BalanceRoutes runs the balance engine over a posted roster, or a roster
// already stored via RosterRoutes.
type BalanceRoutes struct {
	rosterRepo core.RosterRepository
	cache      *cache.BalanceCacheHelper
	rnd        core.RandomSource
	db         *db.DB
}

func NewBalanceRoutes(rosterRepo core.RosterRepository, cacheClient *cache.Client, database *db.DB) *BalanceRoutes {
	return &BalanceRoutes{
		rosterRepo: rosterRepo,
		cache:      cache.NewBalanceCacheHelper(cacheClient),
		rnd:        core.CryptoRandomSource{},
		db:         database,
	}
}

func (br *BalanceRoutes) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/balance", br.handleBalance)
	mux.HandleFunc("POST /v1/rosters/{id}/balance", br.handleBalanceStored)
}

// BalanceRequest is the JSON body accepted by POST /v1/balance.
type BalanceRequest struct {
	Players []core.Player `json:"players"`
}

// handleBalance godoc
// @Summary Balance a posted roster
// @Description Run the rating, tiering, draft, and optimization pipeline over a roster supplied in the request body
// @Tags balance
// @Accept json
// @Produce json
// @Param roster body BalanceRequest true "Roster to balance"
// @Success 200 {object} core.Result
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /balance [post]
func (br *BalanceRoutes) handleBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeBadRequest(w, "failed to read request body: "+err.Error())
		return
	}

	var req BalanceRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeBadRequest(w, "invalid JSON body: "+err.Error())
		return
	}

	result, err := br.runBalance(ctx, "ad-hoc", body, req.Players)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleBalanceStored godoc
// @Summary Balance a stored roster
// @Description Fetch a previously saved roster and run the balance engine over it
// @Tags balance
// @Accept json
// @Produce json
// @Param id path string true "Roster ID"
// @Success 200 {object} core.Result
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /rosters/{id}/balance [post]
func (br *BalanceRoutes) handleBalanceStored(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	players, err := br.rosterRepo.GetRoster(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := json.Marshal(players)
	if err != nil {
		writeInternalServerError(w, err)
		return
	}

	result, err := br.runBalance(ctx, id, body, players)
	if err != nil {
		writeError(w, err)
		return
	}

	br.recordRun(ctx, id, result)

	writeJSON(w, http.StatusOK, result)
}

// recordRun persists the audit summary of a completed run against a stored
// roster. Failures are logged but non-fatal: the balance result has already
// been computed and served regardless of whether its history is recorded.
func (br *BalanceRoutes) recordRun(ctx context.Context, rosterID string, result *core.Result) {
	if br.db == nil || result.Audit == nil {
		return
	}

	summary := result.Audit.Summary
	if err := br.db.RecordBalanceRun(ctx, rosterID, summary.FinalScore, summary.QualityBand, summary.AdvantageTag, summary.SwapCount, result.Audit.String()); err != nil {
		log.Printf("recordRun: %v", err)
	}
}

// runBalance checks the result cache before invoking the engine, keyed by the
// roster ID plus a hash of the exact player data, so an edited roster never
// serves a stale cached result.
func (br *BalanceRoutes) runBalance(ctx context.Context, rosterID string, body []byte, players []core.Player) (*core.Result, error) {
	sum := sha256.Sum256(body)
	inputsHash := hex.EncodeToString(sum[:])

	return br.cache.GetOrCompute(ctx, rosterID, inputsHash, func() (*core.Result, error) {
		return core.BalanceRoster(ctx, players, br.rnd)
	})
}
