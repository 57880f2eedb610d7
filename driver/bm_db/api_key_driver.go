package bm_db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"bm/driver/models"
	"bm/utils/logger"
)

// GetAPIKey looks up a bearer key. Missing keys return nil without an
// error so callers can map them to a 401 uniformly.
func (r *BmDBRepository) GetAPIKey(ctx context.Context, key string) (*models.ApiKey, error) {
	query := `
		SELECT id, user_id, key, created, expires FROM api_keys WHERE key = $1
	`

	var apiKey models.ApiKey
	err := r.pool.QueryRow(ctx, query, key).Scan(&apiKey.ID, &apiKey.UserID, &apiKey.Key, &apiKey.Created, &apiKey.Expires)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Logger.Error("error fetching api key", "error", err)
		return nil, errors.New("error fetching api key")
	}

	return &apiKey, nil
}

func (r *BmDBRepository) CreateAPIKey(ctx context.Context, apiKey *models.ApiKey) error {
	query := `
		INSERT INTO api_keys (id, user_id, key, created, expires) VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, apiKey.ID, apiKey.UserID, apiKey.Key, apiKey.Created, apiKey.Expires)
	if err != nil {
		logger.Logger.Error("error creating api key", "error", err)
		return errors.New("error creating api key")
	}

	return nil
}
