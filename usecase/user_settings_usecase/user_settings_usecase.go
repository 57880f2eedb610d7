package user_settings_usecase

import (
	"context"

	"github.com/google/uuid"

	"bm/domain"
	"bm/port/user_settings_port"
)

type UserSettingsUsecase struct {
	settingsGateway user_settings_port.UserSettingsPort
}

func NewUserSettingsUsecase(settingsGateway user_settings_port.UserSettingsPort) *UserSettingsUsecase {
	return &UserSettingsUsecase{settingsGateway: settingsGateway}
}

// GetSettings returns the user's settings, creating an empty row on
// first access so the settings form always has something to edit.
func (u *UserSettingsUsecase) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	settings, err := u.settingsGateway.GetUserSettings(ctx, userID)
	if err == domain.ErrSettingsNotFound {
		settings = &domain.UserSettings{UserID: userID}
		if err := u.settingsGateway.SaveUserSettings(ctx, settings); err != nil {
			return nil, err
		}
		return settings, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (u *UserSettingsUsecase) SaveSettings(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error) {
	if err := u.settingsGateway.SaveUserSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
