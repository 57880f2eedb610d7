package bm_db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bm/driver/models"
	"bm/utils/logger"
)

// GetLinkByID fetches a link only when the given user owns it.
func (r *BmDBRepository) GetLinkByID(ctx context.Context, userID, linkID uuid.UUID) (*models.Link, error) {
	query := `
		SELECT id, user_id, url, title, note, added, updated FROM links WHERE id = $1 AND user_id = $2
	`

	var link models.Link
	err := r.pool.QueryRow(ctx, query, linkID, userID).Scan(&link.ID, &link.UserID, &link.URL, &link.Title, &link.Note, &link.Added, &link.Updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Logger.Error("error fetching link", "error", err, "link_id", linkID)
		return nil, errors.New("error fetching link")
	}

	return &link, nil
}

func (r *BmDBRepository) CreateLink(ctx context.Context, link *models.Link) error {
	query := `
		INSERT INTO links (id, user_id, url, title, note, added, updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query, link.ID, link.UserID, link.URL, link.Title, link.Note, link.Added, link.Updated)
	if err != nil {
		logger.Logger.Error("error creating link", "error", err)
		return errors.New("error creating link")
	}

	return nil
}

// GetOrCreateLink returns the user's link for the URL, inserting a bare
// row first when none exists. The created flag tells importers whether
// metadata should be populated. (user_id, url) carries no unique
// constraint, so a concurrent duplicate insert is tolerated rather than
// prevented; dedup happens on the read side.
func (r *BmDBRepository) GetOrCreateLink(ctx context.Context, userID uuid.UUID, url string) (*models.Link, bool, error) {
	existing, err := r.getLinkByURL(ctx, userID, url)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	query := `
		INSERT INTO links (id, user_id, url, title, note, added, updated)
		VALUES ($1, $2, $3, '', '', now(), now())
		RETURNING id, user_id, url, title, note, added, updated
	`

	var link models.Link
	err = r.pool.QueryRow(ctx, query, uuid.New(), userID, url).Scan(&link.ID, &link.UserID, &link.URL, &link.Title, &link.Note, &link.Added, &link.Updated)
	if err != nil {
		logger.Logger.Error("error creating link", "error", err, "url", url)
		return nil, false, errors.New("error creating link")
	}

	return &link, true, nil
}

func (r *BmDBRepository) getLinkByURL(ctx context.Context, userID uuid.UUID, url string) (*models.Link, error) {
	query := `
		SELECT id, user_id, url, title, note, added, updated FROM links WHERE user_id = $1 AND url = $2
	`

	var link models.Link
	err := r.pool.QueryRow(ctx, query, userID, url).Scan(&link.ID, &link.UserID, &link.URL, &link.Title, &link.Note, &link.Added, &link.Updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Logger.Error("error fetching link by url", "error", err)
		return nil, errors.New("error fetching link by url")
	}

	return &link, nil
}

func (r *BmDBRepository) UpdateLink(ctx context.Context, link *models.Link) error {
	query := `
		UPDATE links SET url = $1, title = $2, note = $3, added = $4, updated = now()
		WHERE id = $5 AND user_id = $6
	`

	tag, err := r.pool.Exec(ctx, query, link.URL, link.Title, link.Note, link.Added, link.ID, link.UserID)
	if err != nil {
		logger.Logger.Error("error updating link", "error", err, "link_id", link.ID)
		return errors.New("error updating link")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("link not found: %s", link.ID)
	}

	return nil
}

func (r *BmDBRepository) DeleteLink(ctx context.Context, userID, linkID uuid.UUID) error {
	query := `
		DELETE FROM links WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, linkID, userID)
	if err != nil {
		logger.Logger.Error("error deleting link", "error", err, "link_id", linkID)
		return errors.New("error deleting link")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("link not found: %s", linkID)
	}

	return nil
}
