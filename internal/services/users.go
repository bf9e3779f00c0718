package services

import (
	"context"

	"github.com/sbilibin2017/gw-user-admin/internal/logger"
	"github.com/sbilibin2017/gw-user-admin/internal/models"
	"github.com/sbilibin2017/gw-user-admin/internal/workflow"
)

// ProfileReader defines the document query used by the listing.
type ProfileReader interface {
	List(ctx context.Context) ([]models.UserProfile, error)
}

// ProfileUpdater defines the partial document update used by the edit workflow.
type ProfileUpdater interface {
	Update(ctx context.Context, uid string, update models.ProfileUpdate) error
}

// ProfileDeleter defines the document removal used by the delete workflow.
type ProfileDeleter interface {
	Delete(ctx context.Context, uid string) error
}

// UserService runs the listing, edit, and delete workflows over the stored
// profile documents.
type UserService struct {
	reader      ProfileReader
	updater     ProfileUpdater
	deleter     ProfileDeleter
	state       *workflow.State
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService.
func NewUserService(
	reader ProfileReader,
	updater ProfileUpdater,
	deleter ProfileDeleter,
	state *workflow.State,
	kafkaWriter KafkaWriter,
) *UserService {
	return &UserService{
		reader:      reader,
		updater:     updater,
		deleter:     deleter,
		state:       state,
		kafkaWriter: kafkaWriter,
	}
}

// FetchUsers returns all profile documents. On query failure it logs and
// returns an empty list together with the error: the rendered rows do not
// distinguish "no users" from "query failed".
func (s *UserService) FetchUsers(ctx context.Context) ([]models.UserProfile, error) {
	profiles, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch users", "error", err)
		return []models.UserProfile{}, err
	}
	return profiles, nil
}

// UpdateUser applies a partial update of username, email, and displayName to
// the profile keyed by uid. displayName is always kept equal to username.
// Both fields must be non-empty; the email format is not re-validated here.
func (s *UserService) UpdateUser(ctx context.Context, uid, username, email string) error {
	if username == "" || email == "" {
		return ErrFieldsRequired
	}

	if err := s.state.Begin(); err != nil {
		logger.Log.Warnw("update rejected, workflow busy", "uid", uid)
		return err
	}

	update := models.ProfileUpdate{
		Username:    username,
		Email:       email,
		DisplayName: username,
	}

	if err := s.updater.Update(ctx, uid, update); err != nil {
		logger.Log.Errorw("failed to update user", "uid", uid, "error", err)
		s.state.Fail()
		return err
	}

	publishAuditEvent(ctx, s.kafkaWriter, "update", uid, username, email)
	s.state.Finish()
	return nil
}

// DeleteUser removes the profile document keyed by uid. The account at the
// identity provider is intentionally left in place.
func (s *UserService) DeleteUser(ctx context.Context, uid string) error {
	if err := s.state.Begin(); err != nil {
		logger.Log.Warnw("delete rejected, workflow busy", "uid", uid)
		return err
	}

	if err := s.deleter.Delete(ctx, uid); err != nil {
		logger.Log.Errorw("failed to delete user", "uid", uid, "error", err)
		s.state.Fail()
		return err
	}

	publishAuditEvent(ctx, s.kafkaWriter, "delete", uid, "", "")
	s.state.Finish()
	return nil
}
