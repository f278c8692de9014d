package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/yourusername/yahtzeesolver/pkg/solver"
)

// SolveSSE streams per-level progress for a full DP run via Server-Sent
// Events.
// GET /api/solve/stream
func (h *Handlers) SolveSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeSSEError(w, "streaming not supported")
		return
	}

	ctx := r.Context()
	if err := h.pool.AcquireSlow(ctx); err != nil {
		writeSSEError(w, "server busy: "+err.Error())
		return
	}
	defer h.pool.ReleaseSlow()

	opts := solver.DefaultDriverOptions()
	opts.OnLevelDone = func(level, levelTotal, states int) {
		writeSSEEvent(w, "progress", SolveProgress{Level: level, LevelTotal: levelTotal, States: states})
		flusher.Flush()
	}

	if err := h.solver.RunWith(opts); err != nil {
		writeSSEError(w, "solve failed: "+err.Error())
		return
	}

	writeSSEEvent(w, "result", ValueResponse{State: uint32(8191), Value: h.solver.ExpectedScore()})
	flusher.Flush()
	writeSSEEvent(w, "done", nil)
	flusher.Flush()
}

func writeSSEEvent(w http.ResponseWriter, event string, data interface{}) {
	fmt.Fprintf(w, "event: %s\n", event)
	if data != nil {
		jsonData, _ := json.Marshal(data)
		fmt.Fprintf(w, "data: %s\n", jsonData)
	}
	fmt.Fprintf(w, "\n")
}

func writeSSEError(w http.ResponseWriter, message string) {
	writeSSEEvent(w, "error", map[string]string{"error": message})
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}
