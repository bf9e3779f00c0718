package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-user-admin/internal/workflow"
)

// PhaseReader exposes the current phase of the shared workflow state.
type PhaseReader interface {
	Phase() workflow.Phase
}

// StatusResponse represents the shared workflow state
// swagger:model StatusResponse
type StatusResponse struct {
	// Current phase: idle, loading, or error
	// example: idle
	State workflow.Phase `json:"state"`
}

// NewStatusHandler returns an HTTP handler exposing the workflow state.
// @Summary Get workflow state
// @Description Returns the current phase of the shared loading state.
// @Tags status
// @Produce json
// @Success 200 {object} handlers.StatusResponse "Current workflow state"
// @Router /status [get]
func NewStatusHandler(state PhaseReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{State: state.Phase()})
	}
}
