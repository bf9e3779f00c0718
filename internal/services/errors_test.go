package services_test

import (
	"errors"
	"testing"

	"github.com/sbilibin2017/gw-user-admin/internal/facades"
	"github.com/sbilibin2017/gw-user-admin/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantMsg   string
		wantKnown bool
	}{
		{
			name:      "email already in use",
			err:       &facades.Error{Code: "auth/email-already-in-use", Message: "EMAIL_EXISTS"},
			wantMsg:   "This username is already taken",
			wantKnown: true,
		},
		{
			name:      "weak password",
			err:       &facades.Error{Code: "auth/weak-password", Message: "WEAK_PASSWORD"},
			wantMsg:   "Password is too weak",
			wantKnown: true,
		},
		{
			name:      "invalid email",
			err:       &facades.Error{Code: "auth/invalid-email", Message: "INVALID_EMAIL"},
			wantMsg:   "Invalid username format",
			wantKnown: true,
		},
		{
			name:      "signup disabled",
			err:       &facades.Error{Code: "auth/operation-not-allowed", Message: "OPERATION_NOT_ALLOWED"},
			wantMsg:   "Email/password signup is not enabled",
			wantKnown: true,
		},
		{
			name:      "network failure",
			err:       &facades.Error{Code: "auth/network-request-failed", Message: "connection refused"},
			wantMsg:   "Network error. Please check your connection",
			wantKnown: true,
		},
		{
			name:      "store network failure without namespace",
			err:       &facades.Error{Code: "network-request-failed", Message: "connection refused"},
			wantMsg:   "Network error. Please check your connection",
			wantKnown: true,
		},
		{
			name:      "unknown provider code",
			err:       &facades.Error{Code: "auth/user-disabled", Message: "USER_DISABLED"},
			wantMsg:   "Error: USER_DISABLED",
			wantKnown: false,
		},
		{
			name:      "plain error",
			err:       errors.New("something broke"),
			wantMsg:   "Error: something broke",
			wantKnown: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, known := services.UserMessage(tt.err)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.wantKnown, known)
		})
	}
}
