package hashext

import "strings"

func unifyString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
