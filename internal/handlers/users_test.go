package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-user-admin/internal/facades"
	"github.com/sbilibin2017/gw-user-admin/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserFetcher(ctrl)

	listing := []models.UserProfile{
		{UID: "uid-1", Username: "alice", Email: "alice@example.com", DisplayName: "alice"},
		{UID: "uid-2", Username: "bob", Email: "bob@example.com", DisplayName: "bob"},
	}
	mockSvc.EXPECT().FetchUsers(gomock.Any()).Return(listing, nil)

	handler := NewListUsersHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ListUsersResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, listing, resp.Users)
	assert.Nil(t, resp.Message)
}

func TestListUsersHandler_QueryFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserFetcher(ctrl)
	mockSvc.EXPECT().
		FetchUsers(gomock.Any()).
		Return([]models.UserProfile{}, &facades.Error{Code: "network-request-failed", Message: "connection refused"})

	handler := NewListUsersHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	// A failed query still renders as an empty listing, with the feedback
	// message as the only indication of the failure.
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ListUsersResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp.Users)
	assert.NotNil(t, resp.Message)
	assert.Equal(t, "Network error. Please check your connection", resp.Message.Text)
	assert.Equal(t, "error", resp.Message.Kind)
}

func TestListUsersHandler_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserFetcher(ctrl)

	listing := []models.UserProfile{{UID: "uid-1", Username: "alice"}}
	mockSvc.EXPECT().FetchUsers(gomock.Any()).Return(listing, nil).Times(2)

	handler := NewListUsersHandler(mockSvc)

	var bodies []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		bodies = append(bodies, rr.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1], "repeated renders of unchanged data must be identical")
}
