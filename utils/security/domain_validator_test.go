package security

import "testing"

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   bool
	}{
		{name: "simple domain", domain: "example.com", want: true},
		{name: "subdomain", domain: "www.example.com", want: true},
		{name: "internal hyphen", domain: "my-site.example.com", want: true},
		{name: "mixed case", domain: "ExAmPlE.CoM", want: true},
		{name: "single label", domain: "example", want: true},
		{name: "digits in label", domain: "web3.example.com", want: true},

		{name: "empty", domain: "", want: false},
		{name: "contains slash", domain: "example.com/path", want: false},
		{name: "contains space", domain: "exa mple.com", want: false},
		{name: "purely numeric tld", domain: "example.123", want: false},
		{name: "ipv4 address", domain: "127.0.0.1", want: false},
		{name: "leading hyphen", domain: "-bad.example.com", want: false},
		{name: "trailing hyphen", domain: "bad-.example.com", want: false},
		{name: "hyphen in tld", domain: "example.co-m", want: false},
		{name: "empty label", domain: "example..com", want: false},
		{name: "trailing dot", domain: "example.com.", want: false},
		{name: "leading dot", domain: ".example.com", want: false},
		{name: "port is not part of a domain", domain: "example.com:8080", want: false},
		{name: "underscore", domain: "_dmarc.example.com", want: false},
		{name: "label too long", domain: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDomain(tt.domain); got != tt.want {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}
