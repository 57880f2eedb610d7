package di

import (
	"bm/config"
	"bm/driver/bm_db"
	"bm/gateway/api_key_gateway"
	"bm/gateway/import_gateway"
	"bm/gateway/link_gateway"
	"bm/gateway/screenshot_gateway"
	"bm/gateway/settings_gateway"
	"bm/port/api_key_port"
	"bm/usecase/attach_screenshot_usecase"
	"bm/usecase/import_links_usecase"
	"bm/usecase/link_crud_usecase"
	"bm/usecase/list_links_usecase"
	"bm/usecase/user_settings_usecase"
	"bm/utils"
	"bm/utils/rate_limiter"
	"bm/utils/security"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	ListLinksUsecase        *list_links_usecase.ListLinksUsecase
	LinkCrudUsecase         *link_crud_usecase.LinkCrudUsecase
	AttachScreenshotUsecase *attach_screenshot_usecase.AttachScreenshotUsecase
	ImportLinksUsecase      *import_links_usecase.ImportLinksUsecase
	UserSettingsUsecase     *user_settings_usecase.UserSettingsUsecase
	ApiKeyGateway           api_key_port.ApiKeyPort
	BmDBRepository          *bm_db.BmDBRepository
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	linkGatewayImpl := link_gateway.NewLinkGateway(pool)
	screenshotGatewayImpl := screenshot_gateway.NewScreenshotGateway(pool)
	settingsGatewayImpl := settings_gateway.NewSettingsGateway(pool)
	apiKeyGatewayImpl := api_key_gateway.NewApiKeyGateway(pool)

	listLinksUsecase := list_links_usecase.NewListLinksUsecase(linkGatewayImpl)
	linkCrudUsecase := link_crud_usecase.NewLinkCrudUsecase(linkGatewayImpl)

	ssrfGuard := security.NewSSRFGuard()
	attachScreenshotUsecase := attach_screenshot_usecase.NewAttachScreenshotUsecase(
		linkGatewayImpl, screenshotGatewayImpl, ssrfGuard)

	// Importers share one hardened HTTP client and one per-host limiter.
	httpClient := utils.SecureHTTPClientWithConfig(&cfg.HTTP)
	rateLimiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.ImportInterval)

	githubGatewayImpl := import_gateway.NewGithubImportGateway(pool, httpClient, rateLimiter, cfg.Import.GithubAPIURL)
	feedbinGatewayImpl := import_gateway.NewFeedbinImportGateway(pool, httpClient, rateLimiter, cfg.Import.FeedbinAPIURL)
	hackerNewsGatewayImpl := import_gateway.NewHackerNewsImportGateway(pool, httpClient, rateLimiter, cfg.Import.HackerNewsAPIURL)

	importLinksUsecase := import_links_usecase.NewImportLinksUsecase(
		settingsGatewayImpl, githubGatewayImpl, feedbinGatewayImpl, hackerNewsGatewayImpl)

	userSettingsUsecase := user_settings_usecase.NewUserSettingsUsecase(settingsGatewayImpl)

	bmDBRepository := bm_db.NewBmDBRepository(pool)

	return &ApplicationComponents{
		ListLinksUsecase:        listLinksUsecase,
		LinkCrudUsecase:         linkCrudUsecase,
		AttachScreenshotUsecase: attachScreenshotUsecase,
		ImportLinksUsecase:      importLinksUsecase,
		UserSettingsUsecase:     userSettingsUsecase,
		ApiKeyGateway:           apiKeyGatewayImpl,
		BmDBRepository:          bmDBRepository,
	}
}
