package link_port

import (
	"context"

	"github.com/google/uuid"

	"bm/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=link_port.go -destination=../../mocks/mock_link_port.go -package=mocks

type ListLinksPort interface {
	ListLinks(ctx context.Context, userID uuid.UUID, filter domain.LinkFilter) ([]*domain.Link, bool, error)
}

type LinkCrudPort interface {
	GetLinkByID(ctx context.Context, userID, linkID uuid.UUID) (*domain.Link, error)
	CreateLink(ctx context.Context, link *domain.Link) error
	GetOrCreateLink(ctx context.Context, userID uuid.UUID, url string) (*domain.Link, bool, error)
	UpdateLink(ctx context.Context, link *domain.Link) error
	DeleteLink(ctx context.Context, userID, linkID uuid.UUID) error
	SetLinkTags(ctx context.Context, linkID uuid.UUID, tags []string) error
	AddTagToLink(ctx context.Context, linkID uuid.UUID, tag string) error
}
