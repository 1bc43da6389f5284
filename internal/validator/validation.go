package validator

import (
	"errors"
	"strings"
	"unicode/utf8"
)

func ValidateKeyword(s string) (string, error) {
	k := strings.TrimSpace(s)
	if k == "" {
		return "", errors.New("keyword is required")
	}
	if utf8.RuneCountInString(k) > 100 {
		return "", errors.New("keyword too long")
	}
	return k, nil
}

// ParseSources splits a comma separated source list into a deduplicated,
// lowercased slice. Unknown source names are kept; they simply select no
// provider downstream rather than being an error.
func ParseSources(s string) []string {
	if s == "" {
		return nil
	}
	seen := map[string]struct{}{}
	var out []string
	for _, part := range strings.Split(s, ",") {
		p := strings.ToLower(strings.TrimSpace(part))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
