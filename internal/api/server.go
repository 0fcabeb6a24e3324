// Package api provides HTTP handlers for the Matchday balance API.
//
// @title Matchday API
// @description.markdown
// @version 1.0
// @BasePath /v1
//
// @contact.name API Support
// @contact.url https://github.com/stormlightlabs/matchday
// @contact.email info@stormlightlabs.org
//
// @license.name MPL-2.0
// @license.url https://opensource.org/license/mpl-2-0
//
// @tag.name balance
// @tag.description Team-balancing endpoints
//
// @tag.name rosters
// @tag.description Stored roster CRUD
//
// @tag.name health
// @tag.description Service health
package api

import (
	_ "expvar"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"stormlightlabs.org/matchday/internal/cache"
	"stormlightlabs.org/matchday/internal/db"
	docs "stormlightlabs.org/matchday/internal/docs"
	"stormlightlabs.org/matchday/internal/echo"
	"stormlightlabs.org/matchday/internal/repository"
)

type Server struct {
	mux *http.ServeMux
}

// NewServer wires the roster repository into the balance and roster route
// registrars and mounts them on a fresh mux.
func NewServer(database *db.DB, cacheClient *cache.Client) *Server {
	echo.Info("Initializing repositories...")

	rosterRepo := repository.NewRosterRepository(database.DB)

	echo.Info("Registering routes...")

	return newServer(
		NewBalanceRoutes(rosterRepo, cacheClient, database),
		NewRosterRoutes(rosterRepo, cacheClient),
	)
}

// newServer wires all registrars into one mux.
func newServer(registrars ...Registrar) *Server {
	docs.SwaggerInfo.BasePath = "/v1"

	mux := http.NewServeMux()

	for _, r := range registrars {
		r.RegisterRoutes(mux)
	}

	// Health check endpoint
	// @Summary Health check
	// @Description Check if the API server is running
	// @Tags health
	// @Accept json
	// @Produce json
	// @Success 200 {object} HealthResponse
	// @Router /health [get]
	mux.HandleFunc("GET /v1/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	})

	mux.HandleFunc("/docs/", httpSwagger.WrapHandler)
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/", http.StatusMovedPermanently)
	})

	mux.Handle("GET /debug/vars", http.DefaultServeMux)
	return &Server{mux: mux}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
