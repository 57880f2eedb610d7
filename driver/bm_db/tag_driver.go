package bm_db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bm/domain"
	"bm/utils/logger"
)

// SetLinkTags replaces the tag set of a link. Tag rows are shared
// across links and upserted by slug.
func (r *BmDBRepository) SetLinkTags(ctx context.Context, linkID uuid.UUID, tags []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.Logger.Error("error starting tag transaction", "error", err)
		return errors.New("error setting link tags")
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM link_tags WHERE link_id = $1`, linkID); err != nil {
		logger.Logger.Error("error clearing link tags", "error", err, "link_id", linkID)
		return errors.New("error setting link tags")
	}

	for _, name := range tags {
		if err := attachTag(ctx, tx, linkID, name); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Logger.Error("error committing tag transaction", "error", err)
		return errors.New("error setting link tags")
	}

	return nil
}

// AddTagToLink attaches a single tag, keeping existing ones.
func (r *BmDBRepository) AddTagToLink(ctx context.Context, linkID uuid.UUID, name string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.Logger.Error("error starting tag transaction", "error", err)
		return errors.New("error adding link tag")
	}
	defer tx.Rollback(ctx)

	if err := attachTag(ctx, tx, linkID, name); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Logger.Error("error committing tag transaction", "error", err)
		return errors.New("error adding link tag")
	}

	return nil
}

func attachTag(ctx context.Context, tx pgx.Tx, linkID uuid.UUID, name string) error {
	slug := domain.Slugify(name)
	if slug == "" {
		return nil
	}

	var tagID uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO tags (id, name, slug) VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET slug = tags.slug
		RETURNING id
	`, uuid.New(), name, slug).Scan(&tagID)
	if err != nil {
		logger.Logger.Error("error upserting tag", "error", err, "slug", slug)
		return errors.New("error upserting tag")
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO link_tags (link_id, tag_id) VALUES ($1, $2)
		ON CONFLICT (link_id, tag_id) DO NOTHING
	`, linkID, tagID)
	if err != nil {
		logger.Logger.Error("error attaching tag", "error", err, "slug", slug)
		return errors.New("error attaching tag")
	}

	return nil
}

// GetTagsForLinks returns tag names grouped by link, ordered by name.
func (r *BmDBRepository) GetTagsForLinks(ctx context.Context, linkIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	tags := make(map[uuid.UUID][]string, len(linkIDs))
	if len(linkIDs) == 0 {
		return tags, nil
	}

	query := `
		SELECT lt.link_id, t.name
		FROM link_tags lt
		JOIN tags t ON t.id = lt.tag_id
		WHERE lt.link_id = ANY($1)
		ORDER BY t.name
	`

	rows, err := r.pool.Query(ctx, query, linkIDs)
	if err != nil {
		logger.Logger.Error("error fetching link tags", "error", err)
		return nil, errors.New("error fetching link tags")
	}
	defer rows.Close()

	for rows.Next() {
		var linkID uuid.UUID
		var name string
		if err := rows.Scan(&linkID, &name); err != nil {
			logger.Logger.Error("error scanning link tags", "error", err)
			return nil, errors.New("error scanning link tags")
		}
		tags[linkID] = append(tags[linkID], name)
	}

	return tags, nil
}
