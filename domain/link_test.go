package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLink_Domain(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "https url", url: "https://example.org/some/path", want: "example.org"},
		{name: "http url with port", url: "http://example.org:8080/x", want: "example.org:8080"},
		{name: "bare host", url: "https://example.org", want: "example.org"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := &Link{URL: tt.url}
			assert.Equal(t, tt.want, link.Domain())
		})
	}
}

func TestLink_Icon(t *testing.T) {
	link := &Link{URL: "https://example.org"}
	assert.Equal(t, "https://icons.duckduckgo.com/ip3/example.org.ico", link.Icon())
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Wordle", "wordle"},
		{"Side Projects", "side-projects"},
		{"  Mixed   CASE tag ", "mixed-case-tag"},
		{"already-slugged", "already-slugged"},
		{"under_score", "under_score"},
		{"trailing!", "trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
