package domain

import "strconv"

const (
	DefaultLimit = 20
	MaxLimit     = 100

	maxStateLen  = 10
	maxSearchLen = 50
)

// FireQuery holds the normalized request parameters. Identical normalized
// queries derive identical cache keys, so concurrent callers share an entry.
type FireQuery struct {
	Limit  int
	State  string
	Search string
}

// NormalizeQuery sanitizes the three raw query parameters. Out-of-range or
// malformed values are clamped and stripped, never rejected: state keeps
// letters and hyphens only (10 chars max), search keeps alphanumerics,
// spaces and hyphens (50 chars max). SQL metacharacters therefore never
// reach the query as anything but stripped text.
func NormalizeQuery(limit, state, search string) FireQuery {
	return FireQuery{
		Limit:  normalizeLimit(limit),
		State:  filterChars(state, maxStateLen, isStateChar),
		Search: filterChars(search, maxSearchLen, isSearchChar),
	}
}

func normalizeLimit(s string) int {
	if s == "" {
		return DefaultLimit
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

func filterChars(s string, maxLen int, keep func(byte) bool) string {
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if keep(s[i]) {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func isStateChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '-'
}

func isSearchChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == ' ' || c == '-'
}
