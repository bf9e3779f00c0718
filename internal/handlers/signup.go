package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-user-admin/internal/logger"
	"github.com/sbilibin2017/gw-user-admin/internal/models"
	"github.com/sbilibin2017/gw-user-admin/internal/services"
	"github.com/sbilibin2017/gw-user-admin/internal/workflow"
)

// SignUpper defines the interface that the signup service must implement.
type SignUpper interface {
	Signup(ctx context.Context, email, username, password string) (*models.UserProfile, error)
}

// SignupRequest represents the JSON body for signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	// example: alice@example.com
	Email string `json:"email"`

	// Username
	// required: true
	// example: alice
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// Feedback message
	Message models.Message `json:"message"`

	// The created profile
	User *models.UserProfile `json:"user"`

	// Refreshed profile listing
	Users []models.UserProfile `json:"users"`
}

// FeedbackResponse represents an error response carrying only a message
// swagger:model FeedbackResponse
type FeedbackResponse struct {
	// Feedback message
	Message models.Message `json:"message"`
}

// NewSignupHandler returns an HTTP handler for the signup workflow.
// @Summary Sign up a new user
// @Description Validates the form input, creates the account at the identity provider, sets its display name, and writes the profile document. The success response includes a refreshed listing.
// @Tags users
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 201 {object} handlers.SignupResponse "User successfully signed up"
// @Failure 400 {object} handlers.FeedbackResponse "Validation or provider error"
// @Failure 409 {object} handlers.FeedbackResponse "Another operation is in progress"
// @Router /signup [post]
func NewSignupHandler(svc SignUpper, users UserFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFeedback(w, http.StatusBadRequest, models.ErrorMessage("Invalid request payload"))
			return
		}

		email := strings.TrimSpace(req.Email)
		username := strings.TrimSpace(req.Username)

		profile, err := svc.Signup(r.Context(), email, username, req.Password)
		if err != nil {
			writeWorkflowError(w, err)
			return
		}

		// The listing is always refreshed after a successful signup. A
		// refresh failure is logged by the service and leaves the list empty.
		listing, _ := users.FetchUsers(r.Context())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SignupResponse{
			Message: models.SuccessMessage(fmt.Sprintf("Welcome %s! Your account has been created successfully.", profile.Username)),
			User:    profile,
			Users:   listing,
		})
	}
}

// writeFeedback writes a feedback-only response with the given status.
func writeFeedback(w http.ResponseWriter, status int, msg models.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(FeedbackResponse{Message: msg})
}

// writeWorkflowError maps a workflow error onto the user-facing message and
// status code shared by all workflows.
func writeWorkflowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrFieldsRequired):
		writeFeedback(w, http.StatusBadRequest, models.ErrorMessage("Please fill in all fields"))
	case errors.Is(err, services.ErrUsernameTooShort):
		writeFeedback(w, http.StatusBadRequest, models.ErrorMessage("Username must be at least 3 characters"))
	case errors.Is(err, services.ErrInvalidEmail):
		writeFeedback(w, http.StatusBadRequest, models.ErrorMessage("Please enter a valid email address"))
	case errors.Is(err, workflow.ErrInProgress):
		writeFeedback(w, http.StatusConflict, models.ErrorMessage("Another operation is already in progress"))
	default:
		msg, known := services.UserMessage(err)
		status := http.StatusBadRequest
		if !known {
			logger.Log.Errorw("unmapped workflow error", "err", err)
			status = http.StatusInternalServerError
		}
		writeFeedback(w, status, models.ErrorMessage(msg))
	}
}
