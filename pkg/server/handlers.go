package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/yourusername/yahtzeesolver/pkg/solver"
)

// Handlers implements the REST/SSE/WebSocket surface over a Solver.
type Handlers struct {
	solver  *solver.Solver
	version string
	pool    *WorkerPool
}

// NewHandlers creates Handlers backed by s, using a default worker pool.
func NewHandlers(s *solver.Solver, version string) *Handlers {
	return NewHandlersWithPool(s, version, NewWorkerPool(DefaultPoolConfig()))
}

// NewHandlersWithPool creates Handlers with an explicit worker pool.
func NewHandlersWithPool(s *solver.Solver, version string, pool *WorkerPool) *Handlers {
	return &Handlers{solver: s, version: version, pool: pool}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}

// Value answers POST /api/value.
func (h *Handlers) Value(w http.ResponseWriter, r *http.Request) {
	var req ValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	if err := h.pool.AcquireFast(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "server busy: "+err.Error())
		return
	}
	defer h.pool.ReleaseFast()

	v, err := h.solver.Value(req.State)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ValueResponse{State: req.State, Value: v})
}

// Action answers POST /api/action.
func (h *Handlers) Action(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	if err := h.pool.AcquireFast(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "server busy: "+err.Error())
		return
	}
	defer h.pool.ReleaseFast()

	action, err := h.solver.BestAction(req.State, req.Hand, req.RerollsRemaining)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ActionResponse{
		IsHold:   action.IsHold,
		HoldMask: action.HoldMask,
		Category: action.Category,
		Value:    action.Value,
	})
}

// ExpectedScore answers GET /api/expected-score.
func (h *Handlers) ExpectedScore(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	if err := h.pool.AcquireSlow(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "server busy: "+err.Error())
		return
	}
	defer h.pool.ReleaseSlow()

	writeJSON(w, http.StatusOK, ValueResponse{State: uint32(8191), Value: h.solver.ExpectedScore()})
}
