package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-user-admin/internal/models"
	"github.com/sbilibin2017/gw-user-admin/internal/services"
)

// UserFetcher defines the interface that the listing service must implement.
type UserFetcher interface {
	FetchUsers(ctx context.Context) ([]models.UserProfile, error)
}

// ListUsersResponse represents the profile listing
// swagger:model ListUsersResponse
type ListUsersResponse struct {
	// Profile rows; each row carries all current field values so a client
	// can pre-fill the edit form without a second fetch
	Users []models.UserProfile `json:"users"`

	// Error feedback when the query failed; the row set is empty in that
	// case and not distinguishable from "no users"
	Message *models.Message `json:"message,omitempty"`
}

// NewListUsersHandler returns an HTTP handler for the profile listing.
// @Summary List user profiles
// @Description Returns all stored profile documents. Safe to call repeatedly; a failed query yields an empty list plus an error message.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.ListUsersResponse "Profile listing"
// @Router /users [get]
func NewListUsersHandler(svc UserFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := ListUsersResponse{}

		users, err := svc.FetchUsers(r.Context())
		resp.Users = users
		if err != nil {
			text, _ := services.UserMessage(err)
			msg := models.ErrorMessage(text)
			resp.Message = &msg
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
