package settings_gateway

import (
	"context"

	"github.com/google/uuid"

	"bm/domain"
	"bm/driver/bm_db"
	"bm/driver/models"
	"bm/utils/errors"
)

type SettingsGateway struct {
	bmDB *bm_db.BmDBRepository
}

func NewSettingsGateway(pool bm_db.DBPool) *SettingsGateway {
	return &SettingsGateway{bmDB: bm_db.NewBmDBRepository(pool)}
}

func (g *SettingsGateway) GetUserSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	row, err := g.bmDB.GetUserSettings(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseContextError("failed to fetch user settings", "gateway", "SettingsGateway", "GetUserSettings", err, nil)
	}
	if row == nil {
		return nil, domain.ErrSettingsNotFound
	}
	return row.ToDomain(), nil
}

func (g *SettingsGateway) SaveUserSettings(ctx context.Context, settings *domain.UserSettings) error {
	row := &models.UserSettings{
		UserID:          settings.UserID,
		GithubPAT:       settings.GithubPAT,
		FeedbinUsername: settings.FeedbinUsername,
		FeedbinPassword: settings.FeedbinPassword,
		HNUsername:      settings.HNUsername,
	}
	if err := g.bmDB.UpsertUserSettings(ctx, row); err != nil {
		return errors.NewDatabaseContextError("failed to save user settings", "gateway", "SettingsGateway", "SaveUserSettings", err, nil)
	}
	return nil
}
