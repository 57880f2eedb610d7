package screenshot_port

import (
	"context"

	"github.com/google/uuid"

	"bm/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=screenshot_port.go -destination=../../mocks/mock_screenshot_port.go -package=mocks

type ScreenshotPort interface {
	GetOrCreateScreenshot(ctx context.Context, linkID uuid.UUID, url string) (*domain.LinkScreenshot, bool, error)
	GetScreenshotsForLink(ctx context.Context, linkID uuid.UUID) ([]*domain.LinkScreenshot, error)
}
