package import_gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"bm/domain"
	"bm/driver/bm_db"
	"bm/utils/logger"
	"bm/utils/rate_limiter"
)

type hackerNewsFavourites struct {
	Links []struct {
		URL   string `json:"url"`
		Title string `json:"title"`
	} `json:"links"`
}

// HackerNewsImportGateway copies the user's public Hacker News
// favourites into links. The favourites page has no API, so this goes
// through a scraping service and needs only a username.
type HackerNewsImportGateway struct {
	bmDB    *bm_db.BmDBRepository
	client  *remoteClient
	baseURL string
}

func NewHackerNewsImportGateway(pool bm_db.DBPool, httpClient *http.Client, rateLimiter *rate_limiter.HostRateLimiter, baseURL string) *HackerNewsImportGateway {
	return &HackerNewsImportGateway{
		bmDB:    bm_db.NewBmDBRepository(pool),
		client:  newRemoteClient(httpClient, rateLimiter),
		baseURL: baseURL,
	}
}

func (g *HackerNewsImportGateway) Import(ctx context.Context, userID uuid.UUID, settings *domain.UserSettings) (int, error) {
	if settings == nil || !settings.HasHNCredentials() {
		return 0, missingCredential("HackerNewsImportGateway")
	}

	var favourites hackerNewsFavourites
	favouritesURL := g.baseURL + "/api/users/" + url.PathEscape(settings.HNUsername)
	status, err := g.client.getJSON(ctx, favouritesURL, requestOptions{}, &favourites)
	if err != nil {
		return 0, remoteFetchFailed("HackerNewsImportGateway", err)
	}
	if status != http.StatusOK {
		return 0, remoteFetchFailed("HackerNewsImportGateway", nil)
	}

	// One bad favourite must not abort the rest of the run.
	countAdded := 0
	linkIDs := make([]uuid.UUID, 0, len(favourites.Links))
	for _, favourite := range favourites.Links {
		link, created, err := g.bmDB.GetOrCreateLink(ctx, userID, favourite.URL)
		if err != nil {
			logger.Logger.Warn("skipping favourite", "url", favourite.URL, "error", err)
			continue
		}

		if created {
			countAdded++
			link.Title = g.client.clean(favourite.Title)
			if err := g.bmDB.UpdateLink(ctx, link); err != nil {
				logger.Logger.Warn("failed to populate imported link", "url", link.URL, "error", err)
			}
		}

		linkIDs = append(linkIDs, link.ID)
	}

	// Unlike the other importers the tag is refreshed on links that
	// already exist, so re-imports converge on tagged favourites. The
	// tag writes are independent, so they fan out with a small bound.
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(4)
	for _, linkID := range linkIDs {
		group.Go(func() error {
			if err := g.bmDB.AddTagToLink(groupCtx, linkID, "hn-fav"); err != nil {
				logger.Logger.Warn("failed to tag favourite", "link_id", linkID, "error", err)
			}
			return nil
		})
	}
	_ = group.Wait()

	return countAdded, nil
}
