package http

import "strings"

// parseCookieHeader parses the flat Cookie header into name/value pairs.
// Segments split on ';', name/value on the first '='; names and values are
// trimmed of surrounding whitespace, entries with an empty name or value are
// dropped, and the last occurrence of a duplicate name wins.
func parseCookieHeader(header string) map[string]string {
	cookies := make(map[string]string)
	for _, segment := range strings.Split(header, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		name, value, found := strings.Cut(segment, "=")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		cookies[name] = value
	}
	return cookies
}
