package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-user-admin/internal/models"
)

// UserDeleter defines the interface that the delete service must implement.
type UserDeleter interface {
	DeleteUser(ctx context.Context, uid string) error
}

// DeleteUserResponse represents a successful delete response
// swagger:model DeleteUserResponse
type DeleteUserResponse struct {
	// Feedback message
	Message models.Message `json:"message"`

	// Refreshed profile listing
	Users []models.UserProfile `json:"users"`
}

// NewDeleteUserHandler returns an HTTP handler for the delete workflow.
// @Summary Delete a user profile
// @Description Removes the profile document by id. Requires confirm=true; the account at the identity provider is not removed. No undo.
// @Tags users
// @Produce json
// @Param id path string true "Account id"
// @Param confirm query bool true "Explicit confirmation, must be true"
// @Success 200 {object} handlers.DeleteUserResponse "Profile deleted"
// @Failure 400 {object} handlers.FeedbackResponse "Missing confirmation or provider error"
// @Failure 409 {object} handlers.FeedbackResponse "Another operation is in progress"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter, users UserFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "id")

		// The destructive call is gated on an explicit confirmation.
		if r.URL.Query().Get("confirm") != "true" {
			writeFeedback(w, http.StatusBadRequest, models.ErrorMessage("Deletion requires confirmation"))
			return
		}

		if err := svc.DeleteUser(r.Context(), uid); err != nil {
			writeWorkflowError(w, err)
			return
		}

		listing, _ := users.FetchUsers(r.Context())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteUserResponse{
			Message: models.SuccessMessage("User deleted successfully"),
			Users:   listing,
		})
	}
}
