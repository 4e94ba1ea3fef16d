package utils

import (
	"fmt"
	"strings"
)

// ParsePairs turns ["col=value", ...] flags into a map. Keys and values are
// trimmed; the value may itself contain '='.
func ParsePairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected column=value, got %q", p)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// SplitList splits a comma separated flag value, dropping empty items
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
