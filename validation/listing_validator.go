package validation

import (
	"strconv"
	"strings"
	"time"
)

// ListingQuery is the parsed, normalized form of the link listing
// query parameters. Unparsable values fall back to defaults instead
// of erroring so that hand-typed URLs still return a page.
type ListingQuery struct {
	Domain string
	Tag    string
	Date   *time.Time
	Search string
	Random bool
	Limit  int
	Page   int
}

// ParseListingQuery normalizes raw query parameters.
//
// limit: defaults to defaultLimit, clamped to [1, maxLimit]; a value
// that does not parse also falls back to defaultLimit.
// page: defaults to 1; values below 1 or unparsable fall back to 1.
// date: must be YYYY-MM-DD, otherwise ignored.
func ParseListingQuery(params map[string]string, defaultLimit, maxLimit int) ListingQuery {
	q := ListingQuery{
		Domain: strings.TrimSpace(params["domain"]),
		Tag:    strings.TrimSpace(params["tag"]),
		Search: strings.TrimSpace(params["q"]),
		Random: params["random"] != "",
		Limit:  defaultLimit,
		Page:   1,
	}

	if raw := strings.TrimSpace(params["limit"]); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			q.Limit = limit
		}
	}
	if q.Limit < 1 || q.Limit > maxLimit {
		q.Limit = defaultLimit
	}

	if raw := strings.TrimSpace(params["page"]); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 {
			q.Page = page
		}
	}

	if raw := strings.TrimSpace(params["date"]); raw != "" {
		if day, err := time.Parse("2006-01-02", raw); err == nil {
			q.Date = &day
		}
	}

	return q
}
