package services

import (
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-user-admin/internal/facades"
)

// Validation errors returned before any network call is made.
var (
	ErrFieldsRequired   = errors.New("all fields are required")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
	ErrInvalidEmail     = errors.New("invalid email address")
)

// errorMessages is the exhaustive provider-code to user-message table.
// Codes are matched with the optional "auth/" namespace stripped.
var errorMessages = map[string]string{
	"email-already-in-use":   "This username is already taken",
	"weak-password":          "Password is too weak",
	"invalid-email":          "Invalid username format",
	"operation-not-allowed":  "Email/password signup is not enabled",
	"network-request-failed": "Network error. Please check your connection",
}

// UserMessage maps a backend error to the user-facing message shown by the
// workflows. known reports whether the code was found in the table; unknown
// codes fall through to the raw provider message prefixed with "Error: ".
func UserMessage(err error) (msg string, known bool) {
	var provErr *facades.Error
	if errors.As(err, &provErr) {
		code := strings.TrimPrefix(provErr.Code, "auth/")
		if msg, ok := errorMessages[code]; ok {
			return msg, true
		}
		return "Error: " + provErr.Message, false
	}
	return "Error: " + err.Error(), false
}
