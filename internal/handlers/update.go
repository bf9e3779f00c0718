package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-user-admin/internal/models"
)

// UserUpdater defines the interface that the edit service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, uid, username, email string) error
}

// UpdateUserRequest represents the JSON body for a profile edit
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// Username
	// required: true
	// example: bob2
	Username string `json:"username"`

	// Email
	// required: true
	// example: bob2@x.com
	Email string `json:"email"`
}

// UpdateUserResponse represents a successful edit response
// swagger:model UpdateUserResponse
type UpdateUserResponse struct {
	// Feedback message
	Message models.Message `json:"message"`

	// Refreshed profile listing
	Users []models.UserProfile `json:"users"`
}

// NewUpdateUserHandler returns an HTTP handler for the edit workflow.
// @Summary Edit a user profile
// @Description Applies a partial update of username, email, and displayName to the profile document. The listing is refreshed regardless of whether anything changed.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "Account id"
// @Param updateUserRequest body handlers.UpdateUserRequest true "Profile edit request"
// @Success 200 {object} handlers.UpdateUserResponse "Profile updated"
// @Failure 400 {object} handlers.FeedbackResponse "Validation or provider error"
// @Failure 409 {object} handlers.FeedbackResponse "Another operation is in progress"
// @Router /users/{id} [patch]
func NewUpdateUserHandler(svc UserUpdater, users UserFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "id")

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFeedback(w, http.StatusBadRequest, models.ErrorMessage("Invalid request payload"))
			return
		}

		username := strings.TrimSpace(req.Username)
		email := strings.TrimSpace(req.Email)

		if err := svc.UpdateUser(r.Context(), uid, username, email); err != nil {
			writeWorkflowError(w, err)
			return
		}

		listing, _ := users.FetchUsers(r.Context())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateUserResponse{
			Message: models.SuccessMessage("User updated successfully"),
			Users:   listing,
		})
	}
}
