package link_crud_usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bm/domain"
	"bm/port/link_port"
	"bm/validation"
)

type LinkCrudUsecase struct {
	linkGateway link_port.LinkCrudPort
}

func NewLinkCrudUsecase(linkGateway link_port.LinkCrudPort) *LinkCrudUsecase {
	return &LinkCrudUsecase{linkGateway: linkGateway}
}

func (u *LinkCrudUsecase) GetLink(ctx context.Context, userID, linkID uuid.UUID) (*domain.Link, error) {
	return u.linkGateway.GetLinkByID(ctx, userID, linkID)
}

// CreateLink saves a new bookmark. Adding a URL that the user already
// bookmarked returns the existing link untouched instead of erroring.
func (u *LinkCrudUsecase) CreateLink(ctx context.Context, userID uuid.UUID, url, title, note string, tags []string) (*domain.Link, bool, error) {
	if err := validation.ValidateLinkURL(ctx, url); err != nil {
		return nil, false, err
	}

	link, created, err := u.linkGateway.GetOrCreateLink(ctx, userID, url)
	if err != nil {
		return nil, false, err
	}
	if !created {
		return link, false, nil
	}

	link.Title = title
	link.Note = note
	if err := u.linkGateway.UpdateLink(ctx, link); err != nil {
		return nil, false, err
	}
	if len(tags) > 0 {
		if err := u.linkGateway.SetLinkTags(ctx, link.ID, tags); err != nil {
			return nil, false, err
		}
		link.Tags = tags
	}

	return link, true, nil
}

func (u *LinkCrudUsecase) UpdateLink(ctx context.Context, userID, linkID uuid.UUID, url, title, note string, tags []string) (*domain.Link, error) {
	if err := validation.ValidateLinkURL(ctx, url); err != nil {
		return nil, err
	}

	link, err := u.linkGateway.GetLinkByID(ctx, userID, linkID)
	if err != nil {
		return nil, err
	}

	link.URL = url
	link.Title = title
	link.Note = note
	link.Updated = time.Now()
	if err := u.linkGateway.UpdateLink(ctx, link); err != nil {
		return nil, err
	}

	if err := u.linkGateway.SetLinkTags(ctx, link.ID, tags); err != nil {
		return nil, err
	}
	link.Tags = tags

	return link, nil
}

func (u *LinkCrudUsecase) DeleteLink(ctx context.Context, userID, linkID uuid.UUID) error {
	if _, err := u.linkGateway.GetLinkByID(ctx, userID, linkID); err != nil {
		return err
	}
	return u.linkGateway.DeleteLink(ctx, userID, linkID)
}
