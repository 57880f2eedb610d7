package screenshot_gateway

import (
	"context"

	"github.com/google/uuid"

	"bm/domain"
	"bm/driver/bm_db"
	"bm/utils/errors"
)

type ScreenshotGateway struct {
	bmDB *bm_db.BmDBRepository
}

func NewScreenshotGateway(pool bm_db.DBPool) *ScreenshotGateway {
	return &ScreenshotGateway{bmDB: bm_db.NewBmDBRepository(pool)}
}

func (g *ScreenshotGateway) GetOrCreateScreenshot(ctx context.Context, linkID uuid.UUID, url string) (*domain.LinkScreenshot, bool, error) {
	row, created, err := g.bmDB.GetOrCreateScreenshot(ctx, linkID, url)
	if err != nil {
		return nil, false, errors.NewDatabaseContextError("failed to attach screenshot", "gateway", "ScreenshotGateway", "GetOrCreateScreenshot", err, nil)
	}
	return row.ToDomain(), created, nil
}

func (g *ScreenshotGateway) GetScreenshotsForLink(ctx context.Context, linkID uuid.UUID) ([]*domain.LinkScreenshot, error) {
	rows, err := g.bmDB.GetScreenshotsForLink(ctx, linkID)
	if err != nil {
		return nil, errors.NewDatabaseContextError("failed to fetch screenshots", "gateway", "ScreenshotGateway", "GetScreenshotsForLink", err, nil)
	}

	shots := make([]*domain.LinkScreenshot, 0, len(rows))
	for _, row := range rows {
		shots = append(shots, row.ToDomain())
	}
	return shots, nil
}
