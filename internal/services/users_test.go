package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-user-admin/internal/models"
	"github.com/sbilibin2017/gw-user-admin/internal/services"
	"github.com/sbilibin2017/gw-user-admin/internal/workflow"
	"github.com/stretchr/testify/assert"
)

func newUserService(t *testing.T) (*services.UserService, *services.MockProfileReader, *services.MockProfileUpdater, *services.MockProfileDeleter, *services.MockKafkaWriter, *workflow.State) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	reader := services.NewMockProfileReader(ctrl)
	updater := services.NewMockProfileUpdater(ctrl)
	deleter := services.NewMockProfileDeleter(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)
	state := workflow.NewState()

	svc := services.NewUserService(reader, updater, deleter, state, kafkaWriter)
	return svc, reader, updater, deleter, kafkaWriter, state
}

func TestUserService_FetchUsers(t *testing.T) {
	svc, reader, _, _, _, _ := newUserService(t)

	profiles := []models.UserProfile{
		{UID: "uid-1", Username: "alice", Email: "alice@example.com", DisplayName: "alice"},
		{UID: "uid-2", Username: "bob", Email: "bob@example.com", DisplayName: "bob"},
	}
	reader.EXPECT().List(gomock.Any()).Return(profiles, nil)

	got, err := svc.FetchUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, profiles, got)
}

func TestUserService_FetchUsers_QueryFails(t *testing.T) {
	svc, reader, _, _, _, _ := newUserService(t)

	reader.EXPECT().List(gomock.Any()).Return(nil, errors.New("store unavailable"))

	got, err := svc.FetchUsers(context.Background())
	assert.Error(t, err)
	assert.NotNil(t, got, "a failed query still yields a renderable empty list")
	assert.Empty(t, got)
}

func TestUserService_UpdateUser(t *testing.T) {
	svc, _, updater, _, kafkaWriter, state := newUserService(t)

	updater.EXPECT().
		Update(gomock.Any(), "uid-1", models.ProfileUpdate{
			Username:    "bob2",
			Email:       "bob2@x.com",
			DisplayName: "bob2",
		}).
		Return(nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	err := svc.UpdateUser(context.Background(), "uid-1", "bob2", "bob2@x.com")
	assert.NoError(t, err)
	assert.Equal(t, workflow.PhaseIdle, state.Phase())
}

func TestUserService_UpdateUser_Validation(t *testing.T) {
	svc, _, _, _, _, _ := newUserService(t)

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"empty username", "", "bob2@x.com"},
		{"empty email", "bob2", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateUser(context.Background(), "uid-1", tt.username, tt.email)
			assert.ErrorIs(t, err, services.ErrFieldsRequired)
		})
	}
}

func TestUserService_UpdateUser_StoreFails(t *testing.T) {
	svc, _, updater, _, _, state := newUserService(t)

	updater.EXPECT().
		Update(gomock.Any(), "uid-1", gomock.Any()).
		Return(errors.New("store unavailable"))

	err := svc.UpdateUser(context.Background(), "uid-1", "bob2", "bob2@x.com")
	assert.Error(t, err)
	assert.Equal(t, workflow.PhaseError, state.Phase())
}

func TestUserService_DeleteUser(t *testing.T) {
	svc, _, _, deleter, kafkaWriter, state := newUserService(t)

	deleter.EXPECT().Delete(gomock.Any(), "uid-1").Return(nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	err := svc.DeleteUser(context.Background(), "uid-1")
	assert.NoError(t, err)
	assert.Equal(t, workflow.PhaseIdle, state.Phase())
}

func TestUserService_DeleteUser_StoreFails(t *testing.T) {
	svc, _, _, deleter, _, state := newUserService(t)

	deleter.EXPECT().Delete(gomock.Any(), "uid-1").Return(errors.New("store unavailable"))

	err := svc.DeleteUser(context.Background(), "uid-1")
	assert.Error(t, err)
	assert.Equal(t, workflow.PhaseError, state.Phase())
}

func TestUserService_RejectsWhileBusy(t *testing.T) {
	svc, _, _, _, _, state := newUserService(t)

	assert.NoError(t, state.Begin())

	assert.ErrorIs(t, svc.UpdateUser(context.Background(), "uid-1", "bob2", "bob2@x.com"), workflow.ErrInProgress)
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), "uid-1"), workflow.ErrInProgress)
}
