package list_links_usecase

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"bm/domain"
	"bm/port/link_port"
)

type ListLinksUsecase struct {
	listLinksGateway link_port.ListLinksPort
}

func NewListLinksUsecase(listLinksGateway link_port.ListLinksPort) *ListLinksUsecase {
	return &ListLinksUsecase{listLinksGateway: listLinksGateway}
}

// Execute returns one page of the owner's links. requestURL is the
// absolute URL of the current request; next and prev pointers are that
// URL with only the page parameter overwritten, so every other filter
// survives pagination.
func (u *ListLinksUsecase) Execute(ctx context.Context, userID uuid.UUID, filter domain.LinkFilter, requestURL *url.URL) (*domain.PageResult, error) {
	links, hasMore, err := u.listLinksGateway.ListLinks(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	result := &domain.PageResult{Links: links}
	if hasMore {
		result.Next = urlWithPage(requestURL, filter.Page+1)
	}
	// A page past the end of the result set gets no prev pointer; only
	// pages that actually hold links point backwards.
	if filter.Page > 1 && len(links) > 0 {
		result.Prev = urlWithPage(requestURL, filter.Page-1)
	}

	return result, nil
}

func urlWithPage(requestURL *url.URL, page int) string {
	u := *requestURL
	query := u.Query()
	query.Set("page", strconv.Itoa(page))
	u.RawQuery = query.Encode()
	return u.String()
}
