package import_gateway

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"bm/domain"
	"bm/driver/bm_db"
	"bm/utils/logger"
	"bm/utils/rate_limiter"
)

type githubStar struct {
	StarredAt string `json:"starred_at"`
	Repo      struct {
		HTMLURL     string   `json:"html_url"`
		FullName    string   `json:"full_name"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Topics      []string `json:"topics"`
	} `json:"repo"`
}

// GithubImportGateway copies the user's starred repositories into links.
type GithubImportGateway struct {
	bmDB    *bm_db.BmDBRepository
	client  *remoteClient
	baseURL string
}

func NewGithubImportGateway(pool bm_db.DBPool, httpClient *http.Client, rateLimiter *rate_limiter.HostRateLimiter, baseURL string) *GithubImportGateway {
	return &GithubImportGateway{
		bmDB:    bm_db.NewBmDBRepository(pool),
		client:  newRemoteClient(httpClient, rateLimiter),
		baseURL: baseURL,
	}
}

func (g *GithubImportGateway) Import(ctx context.Context, userID uuid.UUID, settings *domain.UserSettings) (int, error) {
	if settings == nil || !settings.HasGithubCredentials() {
		return 0, missingCredential("GithubImportGateway")
	}

	var stars []githubStar
	status, err := g.client.getJSON(ctx, g.baseURL+"/user/starred", requestOptions{
		headers: map[string]string{
			"Authorization": "token " + settings.GithubPAT,
			// The star media type includes starred_at timestamps.
			"Accept": "application/vnd.github.v3.star+json",
		},
	}, &stars)
	if err != nil {
		return 0, remoteFetchFailed("GithubImportGateway", err)
	}
	if status != http.StatusOK {
		return 0, expiredCredential("GithubImportGateway", status)
	}

	// One bad star must not abort the rest of the run.
	countAdded := 0
	for _, star := range stars {
		link, created, err := g.bmDB.GetOrCreateLink(ctx, userID, star.Repo.HTMLURL)
		if err != nil {
			logger.Logger.Warn("skipping starred repository", "url", star.Repo.HTMLURL, "error", err)
			continue
		}
		if !created {
			continue
		}
		countAdded++

		link.Title = g.client.clean(star.Repo.FullName)
		if link.Title == "" {
			link.Title = g.client.clean(star.Repo.Name)
		}
		link.Note = g.client.clean(star.Repo.Description)
		link.Added = parseRemoteTime(star.StarredAt)
		if err := g.bmDB.UpdateLink(ctx, link); err != nil {
			logger.Logger.Warn("failed to populate imported link", "url", link.URL, "error", err)
			continue
		}

		tags := append([]string{"github-starred"}, star.Repo.Topics...)
		if err := g.bmDB.SetLinkTags(ctx, link.ID, tags); err != nil {
			logger.Logger.Warn("failed to tag imported link", "url", link.URL, "error", err)
		}
	}

	return countAdded, nil
}
