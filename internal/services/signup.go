package services

import (
	"context"
	"regexp"
	"time"

	"github.com/sbilibin2017/gw-user-admin/internal/logger"
	"github.com/sbilibin2017/gw-user-admin/internal/models"
	"github.com/sbilibin2017/gw-user-admin/internal/workflow"
)

// emailPattern is the signup email check: local@domain.tld, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AccountCreator defines the identity provider operations used at signup.
type AccountCreator interface {
	SignUp(ctx context.Context, email, password string) (*models.Account, error)
	UpdateDisplayName(ctx context.Context, idToken, displayName string) error
}

// ProfileWriter defines the document write used at signup.
type ProfileWriter interface {
	Set(ctx context.Context, uid string, profile models.UserProfile) error
}

// SignupService runs the signup workflow: local validation, account
// creation, display name update, and the profile document write.
type SignupService struct {
	accounts    AccountCreator
	profiles    ProfileWriter
	state       *workflow.State
	kafkaWriter KafkaWriter
}

// NewSignupService creates a new SignupService.
func NewSignupService(
	accounts AccountCreator,
	profiles ProfileWriter,
	state *workflow.State,
	kafkaWriter KafkaWriter,
) *SignupService {
	return &SignupService{
		accounts:    accounts,
		profiles:    profiles,
		state:       state,
		kafkaWriter: kafkaWriter,
	}
}

// Signup validates the form input and, when valid, creates the account and
// its profile document. Validation failures return before any network call.
// The loading state is released on every path.
func (s *SignupService) Signup(ctx context.Context, email, username, password string) (*models.UserProfile, error) {
	if email == "" || username == "" || password == "" {
		return nil, ErrFieldsRequired
	}
	if len(username) < 3 {
		return nil, ErrUsernameTooShort
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	if err := s.state.Begin(); err != nil {
		logger.Log.Warnw("signup rejected, workflow busy", "username", username)
		return nil, err
	}

	profile, err := s.signup(ctx, email, username, password)
	if err != nil {
		s.state.Fail()
		return nil, err
	}

	s.state.Finish()
	return profile, nil
}

func (s *SignupService) signup(ctx context.Context, email, username, password string) (*models.UserProfile, error) {
	account, err := s.accounts.SignUp(ctx, email, password)
	if err != nil {
		logger.Log.Errorw("failed to create account", "email", email, "error", err)
		return nil, err
	}

	if err := s.accounts.UpdateDisplayName(ctx, account.IDToken, username); err != nil {
		logger.Log.Errorw("failed to update display name", "uid", account.UID, "error", err)
		return nil, err
	}

	profile := models.UserProfile{
		UID:         account.UID,
		Username:    username,
		Email:       email,
		DisplayName: username,
		CreatedAt:   time.Now().UTC(),
	}

	// The two backend calls are not transactional: a failure here leaves an
	// account with no profile document.
	if err := s.profiles.Set(ctx, account.UID, profile); err != nil {
		logger.Log.Errorw("failed to write profile document", "uid", account.UID, "error", err)
		return nil, err
	}

	publishAuditEvent(ctx, s.kafkaWriter, "signup", account.UID, username, email)
	return &profile, nil
}
