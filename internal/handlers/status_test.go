package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/gw-user-admin/internal/workflow"
	"github.com/stretchr/testify/assert"
)

func TestStatusHandler(t *testing.T) {
	state := workflow.NewState()
	handler := NewStatusHandler(state)

	get := func() StatusResponse {
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp StatusResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		return resp
	}

	assert.Equal(t, workflow.PhaseIdle, get().State)

	assert.NoError(t, state.Begin())
	assert.Equal(t, workflow.PhaseLoading, get().State)

	state.Fail()
	assert.Equal(t, workflow.PhaseError, get().State)

	assert.NoError(t, state.Begin())
	state.Finish()
	assert.Equal(t, workflow.PhaseIdle, get().State)
}
