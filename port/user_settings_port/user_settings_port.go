package user_settings_port

import (
	"context"

	"github.com/google/uuid"

	"bm/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=user_settings_port.go -destination=../../mocks/mock_user_settings_port.go -package=mocks

type UserSettingsPort interface {
	GetUserSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	SaveUserSettings(ctx context.Context, settings *domain.UserSettings) error
}
