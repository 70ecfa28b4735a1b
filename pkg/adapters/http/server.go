package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fodmaplab/reintro/internal/engine"
	"github.com/fodmaplab/reintro/internal/logging"
	"github.com/fodmaplab/reintro/internal/notify"
	"github.com/fodmaplab/reintro/internal/report"
	"github.com/fodmaplab/reintro/pkg/domain"
	"github.com/fodmaplab/reintro/pkg/schema"
	"github.com/fodmaplab/reintro/pkg/session"
)

// Server exposes the decision engine and the protocol store over HTTP.
type Server struct {
	engine   *engine.Engine
	sessions *session.Manager
	logger   *slog.Logger

	registry  *prometheus.Registry
	decisions *prometheus.CounterVec
	latency   prometheus.Histogram
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a structured logger for request handling.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates a new HTTP handler around the engine and session manager.
func NewHandler(eng *engine.Engine, sessions *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		engine:   eng,
		sessions: sessions,
		logger:   logging.NewNop(),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.decisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reintro_decisions_total",
			Help: "Decisions computed, by resulting action.",
		},
		[]string{"action"},
	)
	s.latency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reintro_decision_duration_seconds",
			Help:    "Time spent computing a decision.",
			Buckets: prometheus.DefBuckets,
		},
	)
	s.registry.MustRegister(s.decisions, s.latency)

	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Post("/v1/next-action", s.NextActionStateless)

	r.Route("/v1/protocols/{userID}", func(r chi.Router) {
		r.Get("/", s.GetProtocol)
		r.Put("/", s.PutProtocol)
		r.Delete("/", s.DeleteProtocol)
		r.Post("/next-action", s.NextActionStored)
		r.Get("/reminders", s.GetReminders)
		r.Get("/report", s.GetReport)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Custom-Header")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// nextActionRequest is the stateless decision request body.
type nextActionRequest struct {
	State map[string]any `json:"state"`
	Now   string         `json:"now"`
}

// errorResponse carries structural validation failures back to the caller.
type errorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

// NextActionStateless handles POST /v1/next-action: the caller supplies the
// full snapshot and timestamp, nothing is persisted.
func (s *Server) NextActionStateless(w http.ResponseWriter, r *http.Request) {
	var body nextActionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if body.Now == "" {
		writeError(w, http.StatusBadRequest, "field \"now\" is required", nil)
		return
	}
	now, err := time.Parse(time.RFC3339, body.Now)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid \"now\": %v", err), nil)
		return
	}

	state, err := decodeState(body.State)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid state: %v", err), nil)
		return
	}

	s.decide(w, r, state, now)
}

// NextActionStored handles POST /v1/protocols/{userID}/next-action: the
// snapshot is loaded from the store; "now" comes from the query or the server
// clock (the engine itself never reads a clock).
func (s *Server) NextActionStored(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	now := time.Now().UTC()
	if raw := r.URL.Query().Get("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid \"now\": %v", err), nil)
			return
		}
		now = parsed
	}

	state, err := s.sessions.Load(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProtocolNotFound) {
			writeError(w, http.StatusNotFound, "protocol not found", nil)
			return
		}
		s.logger.Error("failed to load protocol", "user_id", userID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to load protocol", nil)
		return
	}

	s.decide(w, r, state, now)
}

// decide runs the engine and writes the decision. Shape violations are the
// caller's fault (400); semantic violations come back as a 200 with the
// engine's error action, per the engine contract.
func (s *Server) decide(w http.ResponseWriter, r *http.Request, state *domain.ProtocolState, now time.Time) {
	started := time.Now()
	action, err := s.engine.NextAction(state, now)
	if err != nil {
		var aggr *schema.AggregateError
		if errors.As(err, &aggr) {
			msgs := make([]string, len(aggr.Errors))
			for i, e := range aggr.Errors {
				msgs[i] = e.Error()
			}
			writeError(w, http.StatusBadRequest, "protocol state failed validation", msgs)
			return
		}
		s.logger.Error("decision failed", "err", err)
		writeError(w, http.StatusInternalServerError, "decision failed", nil)
		return
	}
	s.latency.Observe(time.Since(started).Seconds())
	s.decisions.WithLabelValues(string(action.Action)).Inc()

	writeJSON(w, http.StatusOK, action)
}

// GetProtocol handles GET /v1/protocols/{userID}.
func (s *Server) GetProtocol(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	state, err := s.sessions.Load(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProtocolNotFound) {
			writeError(w, http.StatusNotFound, "protocol not found", nil)
			return
		}
		s.logger.Error("failed to load protocol", "user_id", userID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to load protocol", nil)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// PutProtocol handles PUT /v1/protocols/{userID}: the caller persists an
// advanced snapshot. The body is shape-checked before it reaches the store.
func (s *Server) PutProtocol(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	state, err := decodeState(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid state: %v", err), nil)
		return
	}
	state.UserID = userID

	if err := schema.CheckState(state); err != nil {
		var msgs []string
		for _, e := range schema.ValidationErrors(err) {
			msgs = append(msgs, e.Error())
		}
		writeError(w, http.StatusBadRequest, "protocol state failed validation", msgs)
		return
	}

	if err := s.sessions.Save(r.Context(), userID, state); err != nil {
		s.logger.Error("failed to save protocol", "user_id", userID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to save protocol", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteProtocol handles DELETE /v1/protocols/{userID}.
func (s *Server) DeleteProtocol(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := s.sessions.Delete(r.Context(), userID); err != nil {
		s.logger.Error("failed to delete protocol", "user_id", userID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to delete protocol", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetReminders handles GET /v1/protocols/{userID}/reminders: it computes the
// decision for the stored snapshot and derives the reminder schedule from it.
func (s *Server) GetReminders(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	now := time.Now().UTC()
	if raw := r.URL.Query().Get("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid \"now\": %v", err), nil)
			return
		}
		now = parsed
	}

	state, err := s.sessions.Load(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProtocolNotFound) {
			writeError(w, http.StatusNotFound, "protocol not found", nil)
			return
		}
		s.logger.Error("failed to load protocol", "user_id", userID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to load protocol", nil)
		return
	}

	action, err := s.engine.NextAction(state, now)
	if err != nil {
		var aggr *schema.AggregateError
		if errors.As(err, &aggr) {
			msgs := make([]string, len(aggr.Errors))
			for i, e := range aggr.Errors {
				msgs[i] = e.Error()
			}
			writeError(w, http.StatusBadRequest, "protocol state failed validation", msgs)
			return
		}
		s.logger.Error("decision failed", "err", err)
		writeError(w, http.StatusInternalServerError, "decision failed", nil)
		return
	}

	reminders := notify.Schedule(state, action, now)
	if reminders == nil {
		reminders = []notify.Reminder{}
	}
	writeJSON(w, http.StatusOK, reminders)
}

// GetReport handles GET /v1/protocols/{userID}/report, serving the markdown
// protocol report.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	state, err := s.sessions.Load(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProtocolNotFound) {
			writeError(w, http.StatusNotFound, "protocol not found", nil)
			return
		}
		s.logger.Error("failed to load protocol", "user_id", userID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to load protocol", nil)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(report.Build(state)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("response encode error", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, errs []string) {
	writeJSON(w, status, errorResponse{Error: msg, Errors: errs})
}
