package domain

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Link represents a saved bookmark. UserID is nullable so that links
// survive deletion of their owner.
type Link struct {
	ID      uuid.UUID  `json:"id"`
	UserID  *uuid.UUID `json:"-"`
	URL     string     `json:"url"`
	Title   string     `json:"title"`
	Note    string     `json:"note"`
	Tags    []string   `json:"tags"`
	Added   time.Time  `json:"added"`
	Updated time.Time  `json:"updated"`
}

// Domain returns the host part of the link's URL.
func (l *Link) Domain() string {
	parts, err := url.Parse(l.URL)
	if err != nil {
		return ""
	}
	return parts.Host
}

// Icon returns the favicon URL served by the DuckDuckGo icon service.
func (l *Link) Icon() string {
	return fmt.Sprintf("https://icons.duckduckgo.com/ip3/%s.ico", l.Domain())
}

// LinkScreenshot is exclusively owned by a Link and cascade-deleted with it.
// The URL must pass the SSRF guard before a screenshot is ever created.
type LinkScreenshot struct {
	ID     uuid.UUID `json:"id"`
	LinkID uuid.UUID `json:"-"`
	URL    string    `json:"url"`
	Added  time.Time `json:"added"`
}

// PageResult is one page of a filtered listing. Next and Prev hold
// absolute URLs for the adjacent pages, or "" when no such page exists.
type PageResult struct {
	Links []*Link
	Next  string
	Prev  string
}
