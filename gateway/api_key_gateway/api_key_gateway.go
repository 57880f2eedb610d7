package api_key_gateway

import (
	"context"

	"bm/domain"
	"bm/driver/bm_db"
	"bm/driver/models"
	"bm/utils/errors"
)

type ApiKeyGateway struct {
	bmDB *bm_db.BmDBRepository
}

func NewApiKeyGateway(pool bm_db.DBPool) *ApiKeyGateway {
	return &ApiKeyGateway{bmDB: bm_db.NewBmDBRepository(pool)}
}

func (g *ApiKeyGateway) GetAPIKey(ctx context.Context, key string) (*domain.ApiKey, error) {
	row, err := g.bmDB.GetAPIKey(ctx, key)
	if err != nil {
		return nil, errors.NewDatabaseContextError("failed to fetch api key", "gateway", "ApiKeyGateway", "GetAPIKey", err, nil)
	}
	if row == nil {
		return nil, domain.ErrUnauthorized
	}
	return row.ToDomain(), nil
}

func (g *ApiKeyGateway) CreateAPIKey(ctx context.Context, apiKey *domain.ApiKey) error {
	row := &models.ApiKey{
		ID:      apiKey.ID,
		UserID:  apiKey.UserID,
		Key:     apiKey.Key,
		Created: apiKey.Created,
		Expires: apiKey.Expires,
	}
	if err := g.bmDB.CreateAPIKey(ctx, row); err != nil {
		return errors.NewDatabaseContextError("failed to create api key", "gateway", "ApiKeyGateway", "CreateAPIKey", err, nil)
	}
	return nil
}
