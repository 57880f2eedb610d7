package bm_db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bm/driver/models"
	"bm/utils/logger"
)

// GetOrCreateScreenshot attaches a screenshot URL to a link. The
// UNIQUE(link_id, url) constraint makes concurrent attaches converge on
// one row; the created flag reports whether this call inserted it.
func (r *BmDBRepository) GetOrCreateScreenshot(ctx context.Context, linkID uuid.UUID, url string) (*models.LinkScreenshot, bool, error) {
	insert := `
		INSERT INTO link_screenshots (id, link_id, url, added)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (link_id, url) DO NOTHING
		RETURNING id, link_id, url, added
	`

	var shot models.LinkScreenshot
	err := r.pool.QueryRow(ctx, insert, uuid.New(), linkID, url).Scan(&shot.ID, &shot.LinkID, &shot.URL, &shot.Added)
	if err == nil {
		return &shot, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		logger.Logger.Error("error creating screenshot", "error", err, "link_id", linkID)
		return nil, false, errors.New("error creating screenshot")
	}

	query := `
		SELECT id, link_id, url, added FROM link_screenshots WHERE link_id = $1 AND url = $2
	`

	err = r.pool.QueryRow(ctx, query, linkID, url).Scan(&shot.ID, &shot.LinkID, &shot.URL, &shot.Added)
	if err != nil {
		logger.Logger.Error("error fetching screenshot", "error", err, "link_id", linkID)
		return nil, false, errors.New("error fetching screenshot")
	}

	return &shot, false, nil
}

// GetScreenshotsForLink returns the screenshots of a link, newest first.
func (r *BmDBRepository) GetScreenshotsForLink(ctx context.Context, linkID uuid.UUID) ([]*models.LinkScreenshot, error) {
	query := `
		SELECT id, link_id, url, added FROM link_screenshots WHERE link_id = $1 ORDER BY added DESC
	`

	rows, err := r.pool.Query(ctx, query, linkID)
	if err != nil {
		logger.Logger.Error("error fetching screenshots", "error", err, "link_id", linkID)
		return nil, errors.New("error fetching screenshots")
	}
	defer rows.Close()

	var shots []*models.LinkScreenshot
	for rows.Next() {
		var shot models.LinkScreenshot
		if err := rows.Scan(&shot.ID, &shot.LinkID, &shot.URL, &shot.Added); err != nil {
			logger.Logger.Error("error scanning screenshots", "error", err)
			return nil, errors.New("error scanning screenshots")
		}
		shots = append(shots, &shot)
	}

	return shots, nil
}
