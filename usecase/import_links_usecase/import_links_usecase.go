package import_links_usecase

import (
	"context"

	"github.com/google/uuid"

	"bm/domain"
	"bm/port/import_port"
	"bm/port/user_settings_port"
	"bm/utils/errors"
)

// ImportSource names one of the configured importers.
type ImportSource string

const (
	SourceGithub     ImportSource = "github"
	SourceFeedbin    ImportSource = "feedbin"
	SourceHackerNews ImportSource = "hackernews"
)

// ImportLinksUsecase loads the caller's stored credentials and runs the
// requested importer. Dispatch is explicit per source.
type ImportLinksUsecase struct {
	settingsGateway   user_settings_port.UserSettingsPort
	githubGateway     import_port.ImporterPort
	feedbinGateway    import_port.ImporterPort
	hackerNewsGateway import_port.ImporterPort
}

func NewImportLinksUsecase(
	settingsGateway user_settings_port.UserSettingsPort,
	githubGateway import_port.ImporterPort,
	feedbinGateway import_port.ImporterPort,
	hackerNewsGateway import_port.ImporterPort,
) *ImportLinksUsecase {
	return &ImportLinksUsecase{
		settingsGateway:   settingsGateway,
		githubGateway:     githubGateway,
		feedbinGateway:    feedbinGateway,
		hackerNewsGateway: hackerNewsGateway,
	}
}

func (u *ImportLinksUsecase) Execute(ctx context.Context, userID uuid.UUID, source ImportSource) (int, error) {
	settings, err := u.settingsGateway.GetUserSettings(ctx, userID)
	if err != nil && err != domain.ErrSettingsNotFound {
		return 0, err
	}
	// Absent settings behave like empty credentials so each importer
	// reports its own missing-credential error.

	switch source {
	case SourceGithub:
		return u.githubGateway.Import(ctx, userID, settings)
	case SourceFeedbin:
		return u.feedbinGateway.Import(ctx, userID, settings)
	case SourceHackerNews:
		return u.hackerNewsGateway.Import(ctx, userID, settings)
	default:
		return 0, errors.NewValidationContextError(
			"unknown import source",
			"usecase", "ImportLinksUsecase", "Execute",
			map[string]interface{}{"source": string(source)})
	}
}
