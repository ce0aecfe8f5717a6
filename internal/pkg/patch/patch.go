package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceTrim is Coalesce for strings with whitespace trimming; an
// all-whitespace value counts as absent.
func CoalesceTrim(ptr *string, fallback string) string {
	if ptr == nil {
		return fallback
	}
	trimmed := strings.TrimSpace(*ptr)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
