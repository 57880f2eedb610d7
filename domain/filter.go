package domain

import "time"

// LinkFilter narrows a link listing. Zero values mean "no filter".
// All filters combine with AND; Search alone expands into an OR over
// url, title and tag slug.
type LinkFilter struct {
	Domain string
	Tag    string
	Date   *time.Time
	Search string
	Random bool
	Limit  int
	Page   int
}

// Offset returns the row offset implied by Page and Limit.
func (f LinkFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit
}
