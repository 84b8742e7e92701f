package catalog

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// AllCategories is the sentinel filter value that disables category filtering.
const AllCategories = "all"

// fold normalizes s for case-insensitive comparison. A new Caser is created
// per call because cases.Caser is stateful and not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Contains reports whether needle occurs in haystack ignoring case. An empty
// needle matches everything.
func Contains(haystack, needle string) bool {
	needle = fold(needle)
	if needle == "" {
		return true
	}

	return strings.Contains(fold(haystack), needle)
}

// ContainsAny reports whether needle occurs in any of the fields.
func ContainsAny(needle string, fields ...string) bool {
	if fold(needle) == "" {
		return true
	}

	return slices.ContainsFunc(fields, func(f string) bool { return Contains(f, needle) })
}

// Equal compares two labels ignoring case and surrounding space.
func Equal(a, b string) bool {
	return fold(a) == fold(b)
}

// categoryMatches applies a category equality filter where "" and "all"
// disable the check.
func categoryMatches(value, filter string) bool {
	if f := fold(filter); f == "" || f == AllCategories {
		return true
	}

	return Equal(value, filter)
}

// Date range windows accepted by DateCutoff.
const (
	WindowWeek  = "week"
	WindowMonth = "month"
	WindowYear  = "year"
	WindowAll   = "all"
)

// DateCutoff returns the earliest publication time included by window
// relative to now. "all", empty and unknown windows return the zero time,
// which disables the filter.
func DateCutoff(window string, now time.Time) time.Time {
	switch fold(window) {
	case WindowWeek:
		return now.AddDate(0, 0, -7)
	case WindowMonth:
		return now.AddDate(0, -1, 0)
	case WindowYear:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

// Categories returns the distinct non-empty values key yields over items,
// sorted case-insensitively. The first spelling seen wins.
func Categories[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, it := range items {
		c := strings.TrimSpace(key(it))
		if c == "" {
			continue
		}
		f := fold(c)
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b string) int { return strings.Compare(fold(a), fold(b)) })

	return out
}
