package bm_db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bm/driver/models"
	"bm/utils/logger"
)

// GetUserSettings returns the user's importer credentials, or nil when
// none were ever saved.
func (r *BmDBRepository) GetUserSettings(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	query := `
		SELECT user_id, github_pat, feedbin_username, feedbin_password, hn_username
		FROM user_settings WHERE user_id = $1
	`

	var settings models.UserSettings
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.GithubPAT,
		&settings.FeedbinUsername,
		&settings.FeedbinPassword,
		&settings.HNUsername,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Logger.Error("error fetching user settings", "error", err, "user_id", userID)
		return nil, errors.New("error fetching user settings")
	}

	return &settings, nil
}

// UpsertUserSettings writes the full settings row for the user.
func (r *BmDBRepository) UpsertUserSettings(ctx context.Context, settings *models.UserSettings) error {
	query := `
		INSERT INTO user_settings (user_id, github_pat, feedbin_username, feedbin_password, hn_username)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			github_pat = EXCLUDED.github_pat,
			feedbin_username = EXCLUDED.feedbin_username,
			feedbin_password = EXCLUDED.feedbin_password,
			hn_username = EXCLUDED.hn_username
	`

	_, err := r.pool.Exec(ctx, query,
		settings.UserID,
		settings.GithubPAT,
		settings.FeedbinUsername,
		settings.FeedbinPassword,
		settings.HNUsername,
	)
	if err != nil {
		logger.Logger.Error("error saving user settings", "error", err, "user_id", settings.UserID)
		return errors.New("error saving user settings")
	}

	return nil
}
