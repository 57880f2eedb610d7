package import_gateway

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"bm/domain"
	"bm/driver/bm_db"
	"bm/utils/logger"
	"bm/utils/rate_limiter"
)

type feedbinEntry struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	CreatedAt string `json:"created_at"`
}

// FeedbinImportGateway copies the user's starred Feedbin entries into
// links. Only the most recent 100 stars are fetched, matching the
// entries endpoint's ids limit.
type FeedbinImportGateway struct {
	bmDB    *bm_db.BmDBRepository
	client  *remoteClient
	baseURL string
}

func NewFeedbinImportGateway(pool bm_db.DBPool, httpClient *http.Client, rateLimiter *rate_limiter.HostRateLimiter, baseURL string) *FeedbinImportGateway {
	return &FeedbinImportGateway{
		bmDB:    bm_db.NewBmDBRepository(pool),
		client:  newRemoteClient(httpClient, rateLimiter),
		baseURL: baseURL,
	}
}

func (g *FeedbinImportGateway) Import(ctx context.Context, userID uuid.UUID, settings *domain.UserSettings) (int, error) {
	if settings == nil || !settings.HasFeedbinCredentials() {
		return 0, missingCredential("FeedbinImportGateway")
	}

	auth := requestOptions{basicUser: settings.FeedbinUsername, basicPass: settings.FeedbinPassword}

	var starredIDs []int64
	status, err := g.client.getJSON(ctx, g.baseURL+"/v2/starred_entries.json", auth, &starredIDs)
	if err != nil {
		return 0, remoteFetchFailed("FeedbinImportGateway", err)
	}
	if status != http.StatusOK {
		return 0, expiredCredential("FeedbinImportGateway", status)
	}

	if len(starredIDs) == 0 {
		return 0, nil
	}
	if len(starredIDs) > 100 {
		starredIDs = starredIDs[len(starredIDs)-100:]
	}

	ids := make([]string, 0, len(starredIDs))
	for _, id := range starredIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}

	var entries []feedbinEntry
	entriesURL := fmt.Sprintf("%s/v2/entries.json?ids=%s", g.baseURL, strings.Join(ids, ","))
	status, err = g.client.getJSON(ctx, entriesURL, auth, &entries)
	if err != nil || status != http.StatusOK {
		return 0, remoteFetchFailed("FeedbinImportGateway", err)
	}

	// One bad entry must not abort the rest of the run.
	countAdded := 0
	for _, entry := range entries {
		link, created, err := g.bmDB.GetOrCreateLink(ctx, userID, entry.URL)
		if err != nil {
			logger.Logger.Warn("skipping starred entry", "url", entry.URL, "error", err)
			continue
		}
		if !created {
			continue
		}
		countAdded++

		link.Title = g.client.clean(entry.Title)
		if link.Title == "" {
			link.Title = g.client.clean(ShortText(entry.Summary))
		}
		if link.Title == "" {
			link.Title = "No title"
		}
		link.Added = parseRemoteTime(entry.CreatedAt)
		if err := g.bmDB.UpdateLink(ctx, link); err != nil {
			logger.Logger.Warn("failed to populate imported link", "url", link.URL, "error", err)
			continue
		}

		if err := g.bmDB.SetLinkTags(ctx, link.ID, []string{"feedbin-starred"}); err != nil {
			logger.Logger.Warn("failed to tag imported link", "url", link.URL, "error", err)
		}
	}

	return countAdded, nil
}
