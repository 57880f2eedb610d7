package attach_screenshot_usecase

import (
	"context"

	"github.com/google/uuid"

	"bm/domain"
	"bm/port/link_port"
	"bm/port/screenshot_port"
	"bm/utils/errors"
	"bm/utils/security"
)

type AttachScreenshotUsecase struct {
	linkGateway       link_port.LinkCrudPort
	screenshotGateway screenshot_port.ScreenshotPort
	ssrfGuard         *security.SSRFGuard
}

func NewAttachScreenshotUsecase(
	linkGateway link_port.LinkCrudPort,
	screenshotGateway screenshot_port.ScreenshotPort,
	ssrfGuard *security.SSRFGuard,
) *AttachScreenshotUsecase {
	return &AttachScreenshotUsecase{
		linkGateway:       linkGateway,
		screenshotGateway: screenshotGateway,
		ssrfGuard:         ssrfGuard,
	}
}

// Execute attaches a screenshot URL to one of the caller's links. The
// URL must pass the SSRF guard before it is persisted. Links owned by
// other users surface as not found.
func (u *AttachScreenshotUsecase) Execute(ctx context.Context, userID, linkID uuid.UUID, screenshotURL string) (*domain.Link, bool, error) {
	link, err := u.linkGateway.GetLinkByID(ctx, userID, linkID)
	if err != nil {
		return nil, false, err
	}

	if !u.ssrfGuard.IsSafeURI(ctx, screenshotURL) {
		return nil, false, errors.NewValidationContextError(
			"screenshot_url is not a safe URL",
			"usecase", "AttachScreenshotUsecase", "Execute",
			map[string]interface{}{"field": "screenshot_url"})
	}

	_, created, err := u.screenshotGateway.GetOrCreateScreenshot(ctx, link.ID, screenshotURL)
	if err != nil {
		return nil, false, err
	}

	return link, created, nil
}

// GetLinkWithScreenshots returns the caller's link and its screenshots.
func (u *AttachScreenshotUsecase) GetLinkWithScreenshots(ctx context.Context, userID, linkID uuid.UUID) (*domain.Link, []*domain.LinkScreenshot, error) {
	link, err := u.linkGateway.GetLinkByID(ctx, userID, linkID)
	if err != nil {
		return nil, nil, err
	}

	shots, err := u.screenshotGateway.GetScreenshotsForLink(ctx, link.ID)
	if err != nil {
		return nil, nil, err
	}

	return link, shots, nil
}
