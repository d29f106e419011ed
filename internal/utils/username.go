package utils

import "strings"

// UsernameBase derives a handle base from a display name: lowercased with
// whitespace stripped. Collisions are resolved by the caller with a numeric
// suffix.
func UsernameBase(displayName string) string {
	base := strings.ToLower(displayName)
	base = strings.Join(strings.Fields(base), "")
	if base == "" {
		base = "user"
	}
	return base
}
