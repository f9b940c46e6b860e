package auth

import "strings"

// ExtractToken returns the Authorization header value, dropping an optional "Bearer " prefix.
func ExtractToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
