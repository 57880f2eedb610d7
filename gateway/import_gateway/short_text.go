package import_gateway

import "strings"

// ShortText builds a title out of the leading sentences of text,
// stopping once the accumulated prefix passes 80 characters.
func ShortText(text string) string {
	parts := strings.Split(text, ".")

	result := ""
	for _, p := range parts {
		result += p + "."
		if len(result) > 80 {
			return result
		}
	}

	return result
}
