package user_settings_usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bm/domain"
	"bm/mocks"
)

func TestUserSettingsUsecase_GetSettings(t *testing.T) {
	userID := uuid.New()

	t.Run("returns stored settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockUserSettingsPort(ctrl)
		usecase := NewUserSettingsUsecase(mockGateway)

		stored := &domain.UserSettings{UserID: userID, GithubPAT: "ghp_token"}
		mockGateway.EXPECT().GetUserSettings(gomock.Any(), userID).Return(stored, nil)

		settings, err := usecase.GetSettings(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, stored, settings)
	})

	t.Run("first access creates an empty row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockUserSettingsPort(ctrl)
		usecase := NewUserSettingsUsecase(mockGateway)

		mockGateway.EXPECT().GetUserSettings(gomock.Any(), userID).Return(nil, domain.ErrSettingsNotFound)
		mockGateway.EXPECT().SaveUserSettings(gomock.Any(), &domain.UserSettings{UserID: userID}).Return(nil)

		settings, err := usecase.GetSettings(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, userID, settings.UserID)
		assert.False(t, settings.HasGithubCredentials())
	})
}

func TestUserSettingsUsecase_SaveSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockUserSettingsPort(ctrl)
	usecase := NewUserSettingsUsecase(mockGateway)

	settings := &domain.UserSettings{UserID: uuid.New(), FeedbinUsername: "me@example.com", FeedbinPassword: "secret"}
	mockGateway.EXPECT().SaveUserSettings(gomock.Any(), settings).Return(nil)

	saved, err := usecase.SaveSettings(context.Background(), settings)

	require.NoError(t, err)
	assert.Equal(t, settings, saved)
}
