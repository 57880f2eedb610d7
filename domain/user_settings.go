package domain

import "github.com/google/uuid"

// UserSettings holds per-user import credentials. The values are opaque
// secrets; the core only ever checks them for presence.
type UserSettings struct {
	UserID          uuid.UUID `json:"-"`
	GithubPAT       string    `json:"github_pat"`
	FeedbinUsername string    `json:"feedbin_username"`
	FeedbinPassword string    `json:"feedbin_password"`
	HNUsername      string    `json:"hn_username"`
}

func (s *UserSettings) HasGithubCredentials() bool {
	return s.GithubPAT != ""
}

func (s *UserSettings) HasFeedbinCredentials() bool {
	return s.FeedbinUsername != "" && s.FeedbinPassword != ""
}

func (s *UserSettings) HasHNCredentials() bool {
	return s.HNUsername != ""
}
