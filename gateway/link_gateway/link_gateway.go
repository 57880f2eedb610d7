package link_gateway

import (
	"context"

	"github.com/google/uuid"

	"bm/domain"
	"bm/driver/bm_db"
	"bm/driver/models"
	"bm/utils/errors"
)

// LinkGateway adapts the links tables to the domain. Listing returns
// links with their tags already joined in.
type LinkGateway struct {
	bmDB *bm_db.BmDBRepository
}

func NewLinkGateway(pool bm_db.DBPool) *LinkGateway {
	return &LinkGateway{bmDB: bm_db.NewBmDBRepository(pool)}
}

func (g *LinkGateway) ListLinks(ctx context.Context, userID uuid.UUID, filter domain.LinkFilter) ([]*domain.Link, bool, error) {
	rows, hasMore, err := g.bmDB.ListLinks(ctx, userID, filter)
	if err != nil {
		return nil, false, errors.NewDatabaseContextError("failed to list links", "gateway", "LinkGateway", "ListLinks", err, nil)
	}

	links, err := g.withTags(ctx, rows)
	if err != nil {
		return nil, false, err
	}

	return links, hasMore, nil
}

func (g *LinkGateway) GetLinkByID(ctx context.Context, userID, linkID uuid.UUID) (*domain.Link, error) {
	row, err := g.bmDB.GetLinkByID(ctx, userID, linkID)
	if err != nil {
		return nil, errors.NewDatabaseContextError("failed to fetch link", "gateway", "LinkGateway", "GetLinkByID", err, nil)
	}
	if row == nil {
		return nil, domain.ErrLinkNotFound
	}

	links, err := g.withTags(ctx, []*models.Link{row})
	if err != nil {
		return nil, err
	}

	return links[0], nil
}

func (g *LinkGateway) CreateLink(ctx context.Context, link *domain.Link) error {
	row := &models.Link{
		ID:      link.ID,
		UserID:  link.UserID,
		URL:     link.URL,
		Title:   link.Title,
		Note:    link.Note,
		Added:   link.Added,
		Updated: link.Updated,
	}
	if err := g.bmDB.CreateLink(ctx, row); err != nil {
		return errors.NewDatabaseContextError("failed to create link", "gateway", "LinkGateway", "CreateLink", err, nil)
	}
	return nil
}

func (g *LinkGateway) GetOrCreateLink(ctx context.Context, userID uuid.UUID, url string) (*domain.Link, bool, error) {
	row, created, err := g.bmDB.GetOrCreateLink(ctx, userID, url)
	if err != nil {
		return nil, false, errors.NewDatabaseContextError("failed to get or create link", "gateway", "LinkGateway", "GetOrCreateLink", err, nil)
	}

	links, err := g.withTags(ctx, []*models.Link{row})
	if err != nil {
		return nil, false, err
	}

	return links[0], created, nil
}

func (g *LinkGateway) UpdateLink(ctx context.Context, link *domain.Link) error {
	row := &models.Link{
		ID:     link.ID,
		UserID: link.UserID,
		URL:    link.URL,
		Title:  link.Title,
		Note:   link.Note,
		Added:  link.Added,
	}
	if err := g.bmDB.UpdateLink(ctx, row); err != nil {
		return errors.NewDatabaseContextError("failed to update link", "gateway", "LinkGateway", "UpdateLink", err, nil)
	}
	return nil
}

func (g *LinkGateway) DeleteLink(ctx context.Context, userID, linkID uuid.UUID) error {
	if err := g.bmDB.DeleteLink(ctx, userID, linkID); err != nil {
		return errors.NewDatabaseContextError("failed to delete link", "gateway", "LinkGateway", "DeleteLink", err, nil)
	}
	return nil
}

func (g *LinkGateway) SetLinkTags(ctx context.Context, linkID uuid.UUID, tags []string) error {
	if err := g.bmDB.SetLinkTags(ctx, linkID, tags); err != nil {
		return errors.NewDatabaseContextError("failed to set link tags", "gateway", "LinkGateway", "SetLinkTags", err, nil)
	}
	return nil
}

func (g *LinkGateway) AddTagToLink(ctx context.Context, linkID uuid.UUID, tag string) error {
	if err := g.bmDB.AddTagToLink(ctx, linkID, tag); err != nil {
		return errors.NewDatabaseContextError("failed to add link tag", "gateway", "LinkGateway", "AddTagToLink", err, nil)
	}
	return nil
}

func (g *LinkGateway) withTags(ctx context.Context, rows []*models.Link) ([]*domain.Link, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	tags, err := g.bmDB.GetTagsForLinks(ctx, ids)
	if err != nil {
		return nil, errors.NewDatabaseContextError("failed to fetch link tags", "gateway", "LinkGateway", "GetTagsForLinks", err, nil)
	}

	links := make([]*domain.Link, 0, len(rows))
	for _, row := range rows {
		links = append(links, row.ToDomain(tags[row.ID]))
	}
	return links, nil
}
