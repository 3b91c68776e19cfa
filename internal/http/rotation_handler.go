package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/rotation"
)

// RotationHandler exposes the current carousel positions so every client
// renders the same frame.
type RotationHandler struct {
	runners []*rotation.Runner
	logger  *zap.Logger
}

func NewRotationHandler(runners []*rotation.Runner, logger *zap.Logger) *RotationHandler {
	return &RotationHandler{runners: runners, logger: logger}
}

type rotationState struct {
	Index int `json:"index"`
	Len   int `json:"len"`
}

// State GET /api/rotation
func (h *RotationHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	out := make(map[string]rotationState, len(h.runners))
	for _, runner := range h.runners {
		out[runner.Name()] = rotationState{Index: runner.Index(), Len: runner.Len()}
	}
	writeJSON(w, http.StatusOK, Ok(out))
}
