package guide

import "strings"

// ParseLanguages splits the profile form's comma-separated languages field
// into a trimmed list with empties dropped. Order is preserved.
func ParseLanguages(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinLanguages is the inverse used when loading the profile back into a
// single text input.
func JoinLanguages(languages []string) string {
	return strings.Join(languages, ", ")
}

func NormalizeLanguages(languages []string) []string {
	out := make([]string, 0, len(languages))
	for _, l := range languages {
		if trimmed := strings.TrimSpace(l); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
