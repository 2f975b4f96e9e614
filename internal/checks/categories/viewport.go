package categories

import (
	"strconv"
	"strings"
)

// parseViewport splits a viewport meta content attribute into its
// properties. Keys and values are trimmed and lower-cased; browsers accept
// both commas and semicolons as separators.
func parseViewport(content string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.FieldsFunc(content, func(r rune) bool { return r == ',' || r == ';' }) {
		key, value, _ := strings.Cut(part, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		props[key] = strings.ToLower(strings.TrimSpace(value))
	}
	return props
}

// viewportScale parses a numeric viewport property.
func viewportScale(props map[string]string, key string) (float64, bool) {
	v, ok := props[key]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
