package rest

import (
	"time"

	"bm/domain"
)

type createLinkRequest struct {
	URL   string   `json:"url"`
	Title string   `json:"title"`
	Note  string   `json:"note"`
	Tags  []string `json:"tags"`
}

type updateLinkRequest struct {
	URL   string   `json:"url"`
	Title string   `json:"title"`
	Note  string   `json:"note"`
	Tags  []string `json:"tags"`
}

type settingsRequest struct {
	GithubPAT       string `json:"github_pat"`
	FeedbinUsername string `json:"feedbin_username"`
	FeedbinPassword string `json:"feedbin_password"`
	HNUsername      string `json:"hn_username"`
}

type listLinksResponse struct {
	Links []*domain.Link `json:"links"`
	Next  string         `json:"next,omitempty"`
	Prev  string         `json:"prev,omitempty"`
}

type importResponse struct {
	Imported int    `json:"imported"`
	Message  string `json:"message,omitempty"`
}

type screenshotRequest struct {
	ScreenshotURL string `json:"screenshot_url"`
}

// apiLinkResponse is the wire form of a link on the /api surface,
// screenshots included.
type apiLinkResponse struct {
	ID          string                  `json:"id"`
	URL         string                  `json:"url"`
	Note        string                  `json:"note"`
	Tags        []string                `json:"tags"`
	Added       time.Time               `json:"added"`
	Updated     time.Time               `json:"updated"`
	Screenshots []apiScreenshotResponse `json:"screenshots"`
}

type apiScreenshotResponse struct {
	ID    string    `json:"id"`
	URL   string    `json:"url"`
	Added time.Time `json:"added"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiErrorsResponse struct {
	Errors []apiError `json:"errors"`
}

type apiDataResponse struct {
	Data     apiLinkResponse `json:"data"`
	Messages []string        `json:"messages"`
}

func newAPILinkResponse(link *domain.Link, screenshots []*domain.LinkScreenshot) apiLinkResponse {
	resp := apiLinkResponse{
		ID:          link.ID.String(),
		URL:         link.URL,
		Note:        link.Note,
		Tags:        link.Tags,
		Added:       link.Added,
		Updated:     link.Updated,
		Screenshots: make([]apiScreenshotResponse, 0, len(screenshots)),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	for _, shot := range screenshots {
		resp.Screenshots = append(resp.Screenshots, apiScreenshotResponse{
			ID:    shot.ID.String(),
			URL:   shot.URL,
			Added: shot.Added,
		})
	}
	return resp
}
