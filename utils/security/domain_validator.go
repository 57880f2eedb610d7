package security

// IsValidDomain reports whether domain is a syntactically valid hostname:
// one or more dot-separated labels, each 1-63 characters, alphanumeric with
// internal hyphens, and a final label that is alphanumeric only and not
// purely numeric. Matching is case-insensitive. No trailing dot, no
// wildcard, and no IDN/punycode normalization is performed (a documented
// limitation carried over from the original validator).
func IsValidDomain(domain string) bool {
	if domain == "" || len(domain) > 253 {
		return false
	}

	start := 0
	for i := 0; i <= len(domain); i++ {
		if i < len(domain) && domain[i] != '.' {
			continue
		}

		label := domain[start:i]
		isLast := i == len(domain)

		if isLast {
			if !isValidTLD(label) {
				return false
			}
		} else if !isValidLabel(label) {
			return false
		}
		start = i + 1
	}

	return true
}

func isValidLabel(label string) bool {
	if len(label) < 1 || len(label) > 63 {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if isAlphanumeric(c) {
			continue
		}
		// hyphens are internal only
		if c == '-' && i > 0 && i < len(label)-1 {
			continue
		}
		return false
	}
	return true
}

func isValidTLD(label string) bool {
	if len(label) < 1 || len(label) > 63 {
		return false
	}
	numeric := true
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !isAlphanumeric(c) {
			return false
		}
		if c < '0' || c > '9' {
			numeric = false
		}
	}
	return !numeric
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
