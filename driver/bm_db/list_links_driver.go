package bm_db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bm/domain"
	"bm/driver/models"
	"bm/utils/logger"
)

// ListLinks returns one page of the owner's links matching the filter,
// plus a flag reporting whether another page exists. One extra row is
// requested beyond the page size to detect that without a count query.
func (r *BmDBRepository) ListLinks(ctx context.Context, userID uuid.UUID, filter domain.LinkFilter) ([]*models.Link, bool, error) {
	query, args := buildListLinksQuery(userID, filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Logger.Error("error listing links", "error", err)
		return nil, false, errors.New("error listing links")
	}
	defer rows.Close()

	var links []*models.Link
	for rows.Next() {
		var link models.Link
		err := rows.Scan(&link.ID, &link.UserID, &link.URL, &link.Title, &link.Note, &link.Added, &link.Updated)
		if err != nil {
			logger.Logger.Error("error scanning links page", "error", err)
			return nil, false, errors.New("error scanning links page")
		}
		links = append(links, &link)
	}
	if err := rows.Err(); err != nil {
		logger.Logger.Error("error reading links page", "error", err)
		return nil, false, errors.New("error listing links")
	}

	hasMore := false
	if len(links) > filter.Limit {
		hasMore = true
		links = links[:filter.Limit]
	}

	return links, hasMore, nil
}

func buildListLinksQuery(userID uuid.UUID, filter domain.LinkFilter) (string, []any) {
	var sb strings.Builder
	args := []any{userID}

	sb.WriteString(`SELECT l.id, l.user_id, l.url, l.title, l.note, l.added, l.updated FROM links l WHERE l.user_id = $1`)

	if filter.Domain != "" {
		domain := escapeLikePattern(filter.Domain)
		args = append(args, "https://"+domain+"%", "http://"+domain+"%")
		fmt.Fprintf(&sb, " AND (l.url LIKE $%d OR l.url LIKE $%d)", len(args)-1, len(args))
	}

	if filter.Date != nil {
		day := filter.Date.Truncate(24 * time.Hour)
		args = append(args, day, day.Add(24*time.Hour))
		fmt.Fprintf(&sb, " AND l.added >= $%d AND l.added < $%d", len(args)-1, len(args))
	}

	if filter.Tag != "" {
		args = append(args, filter.Tag)
		fmt.Fprintf(&sb, ` AND EXISTS (
			SELECT 1 FROM link_tags lt JOIN tags t ON t.id = lt.tag_id
			WHERE lt.link_id = l.id AND lower(t.slug) = lower($%d)
		)`, len(args))
	}

	if filter.Search != "" {
		args = append(args, "%"+escapeLikePattern(filter.Search)+"%", filter.Search)
		fmt.Fprintf(&sb, ` AND (l.url ILIKE $%d OR l.title ILIKE $%d OR EXISTS (
			SELECT 1 FROM link_tags lt JOIN tags t ON t.id = lt.tag_id
			WHERE lt.link_id = l.id AND lower(t.slug) = lower($%d)
		))`, len(args)-1, len(args)-1, len(args))
	}

	if filter.Random {
		sb.WriteString(" ORDER BY random()")
	} else {
		sb.WriteString(" ORDER BY l.added DESC")
	}

	args = append(args, filter.Limit+1, filter.Offset())
	fmt.Fprintf(&sb, " LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return sb.String(), args
}

// escapeLikePattern escapes LIKE wildcards so filter values match
// literally when embedded in a pattern.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
