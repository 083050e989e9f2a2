package handlers

import (
	"context"
	"net/http"
	"time"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/logx"
)

const healthcheckTimeout = time.Second

// Pinger checks that a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers serves the infrastructure endpoints.
type Handlers struct {
	logger logx.Logger
	db     Pinger
}

// New creates Handlers. A nil db makes the healthcheck report liveness only.
func New(logger logx.Logger, db Pinger) *Handlers {
	return &Handlers{logger: orNop(logger), db: db}
}

// Ping handles GET /ping.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck: 204 when the database answers,
// 503 otherwise.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			h.logger.Warn("healthcheck: database unreachable",
				logx.String("request_id", reqID(r.Context())),
				logx.Err(err),
			)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// NotFound answers unknown routes with a JSON 404.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.logger, w, r, http.StatusNotFound, apperr.CodeNotFound, "route not found")
}
