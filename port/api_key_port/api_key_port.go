package api_key_port

import (
	"context"

	"bm/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=api_key_port.go -destination=../../mocks/mock_api_key_port.go -package=mocks

type ApiKeyPort interface {
	GetAPIKey(ctx context.Context, key string) (*domain.ApiKey, error)
	CreateAPIKey(ctx context.Context, apiKey *domain.ApiKey) error
}
