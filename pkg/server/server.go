// Package server exposes the estimator and scenario table builder as a small
// JSON API. Every request is independent and stateless: handlers thread all
// state through explicit values, so concurrent requests need no coordination.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/chatcost-ai/chatcost/pkg/config"
	"github.com/chatcost-ai/chatcost/pkg/estimator"
	"github.com/chatcost-ai/chatcost/pkg/export"
	"github.com/chatcost-ai/chatcost/pkg/models"
	"github.com/chatcost-ai/chatcost/pkg/scenario"
)

// Server serves cost estimates over HTTP.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router chi.Router
}

// New creates a Server with its routes configured.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{cfg: cfg, log: logger}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/v1/estimate", s.handleEstimate)
	r.Post("/v1/scenarios", s.handleScenarios)
	r.Post("/v1/scenarios.csv", s.handleScenariosCSV)

	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the server and shuts down gracefully when ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Listen,
		Handler: s,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("chatcost api listening", "addr", s.cfg.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

// EstimateRequest bundles the inputs for one estimation call. Pricing is
// resolved from the explicit rates if given, otherwise from the named model,
// otherwise from the configured default model.
type EstimateRequest struct {
	Traffic models.TrafficInputs    `json:"traffic"`
	Usage   models.UsageParameters  `json:"usage"`
	Profile models.TurnTokenProfile `json:"turn_profile"`
	Pricing *models.TokenPricing    `json:"pricing,omitempty"`
	Model   string                  `json:"model,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// resolve validates the request and returns the complete input bundle.
func (s *Server) resolve(req EstimateRequest) (models.InputSnapshot, error) {
	pricing := s.cfg.PricingFor(req.Model)
	if req.Pricing != nil {
		pricing = *req.Pricing
	}
	snap := models.InputSnapshot{
		Traffic: req.Traffic,
		Params:  req.Usage,
		Profile: req.Profile,
		Pricing: pricing,
	}
	if err := snap.Validate(); err != nil {
		return models.InputSnapshot{}, err
	}
	return snap, nil
}

func (s *Server) decodeAndResolve(w http.ResponseWriter, r *http.Request) (models.InputSnapshot, bool) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return models.InputSnapshot{}, false
	}
	snap, err := s.resolve(req)
	if err != nil {
		resp := errorResponse{Error: err.Error()}
		var ipe *models.InvalidParameterError
		if errors.As(err, &ipe) {
			resp.Field = ipe.Field
		}
		writeError(w, http.StatusBadRequest, resp)
		return models.InputSnapshot{}, false
	}
	return snap, true
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.decodeAndResolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, estimator.EstimateSnapshot(snap))
}

// scenariosResponse carries the table rows in stable preset order.
type scenariosResponse struct {
	Rows []scenario.Row `json:"rows"`
}

func (s *Server) buildTable(snap models.InputSnapshot) []scenario.Row {
	return scenario.BuildTable(scenario.DefaultSources(), snap.Params, snap.Pricing, snap.Traffic, snap.Profile)
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.decodeAndResolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, scenariosResponse{Rows: s.buildTable(snap)})
}

func (s *Server) handleScenariosCSV(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.decodeAndResolve(w, r)
	if !ok {
		return
	}
	rows := s.buildTable(snap)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="cost_estimates.csv"`)
	if err := export.WriteCSV(w, rows, snap.Pricing, s.cfg.Currency); err != nil {
		s.log.Error("write csv response", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, resp errorResponse) {
	writeJSON(w, status, resp)
}
