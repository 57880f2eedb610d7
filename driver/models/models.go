package models

import (
	"time"

	"github.com/google/uuid"

	"bm/domain"
)

// Link is the row shape of the links table.
type Link struct {
	ID      uuid.UUID
	UserID  *uuid.UUID
	URL     string
	Title   string
	Note    string
	Added   time.Time
	Updated time.Time
}

func (l *Link) ToDomain(tags []string) *domain.Link {
	return &domain.Link{
		ID:      l.ID,
		UserID:  l.UserID,
		URL:     l.URL,
		Title:   l.Title,
		Note:    l.Note,
		Tags:    tags,
		Added:   l.Added,
		Updated: l.Updated,
	}
}

// LinkScreenshot is the row shape of the link_screenshots table.
type LinkScreenshot struct {
	ID     uuid.UUID
	LinkID uuid.UUID
	URL    string
	Added  time.Time
}

func (s *LinkScreenshot) ToDomain() *domain.LinkScreenshot {
	return &domain.LinkScreenshot{
		ID:     s.ID,
		LinkID: s.LinkID,
		URL:    s.URL,
		Added:  s.Added,
	}
}

// UserSettings is the row shape of the user_settings table.
type UserSettings struct {
	UserID          uuid.UUID
	GithubPAT       string
	FeedbinUsername string
	FeedbinPassword string
	HNUsername      string
}

func (s *UserSettings) ToDomain() *domain.UserSettings {
	return &domain.UserSettings{
		UserID:          s.UserID,
		GithubPAT:       s.GithubPAT,
		FeedbinUsername: s.FeedbinUsername,
		FeedbinPassword: s.FeedbinPassword,
		HNUsername:      s.HNUsername,
	}
}

// ApiKey is the row shape of the api_keys table.
type ApiKey struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Key     string
	Created time.Time
	Expires time.Time
}

func (k *ApiKey) ToDomain() *domain.ApiKey {
	return &domain.ApiKey{
		ID:      k.ID,
		UserID:  k.UserID,
		Key:     k.Key,
		Created: k.Created,
		Expires: k.Expires,
	}
}
