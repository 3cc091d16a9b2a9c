// Package query holds the result-count modifier applied to list reads.
package query

import "strconv"

// Limit is an optional, non-negative cap on the number of results.
// The zero value means no limit.
type Limit struct {
	n   int
	set bool
}

// NoLimit returns an absent limit.
func NoLimit() Limit { return Limit{} }

// LimitOf returns a limit of n. Negative values yield an absent limit.
func LimitOf(n int) Limit {
	if n < 0 {
		return Limit{}
	}
	return Limit{n: n, set: true}
}

// ParseLimit reads a query-string value. Empty, negative or non-integer input is
// treated as absent.
func ParseLimit(raw string) Limit {
	if raw == "" {
		return Limit{}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return Limit{}
	}
	return LimitOf(n)
}

// Value returns the cap and whether one is set.
func (l Limit) Value() (int, bool) { return l.n, l.set }

// Empty reports whether the limit excludes every result.
func (l Limit) Empty() bool { return l.set && l.n == 0 }

// Apply returns the first n items of items, in order, when a cap is set.
func Apply[T any](items []T, l Limit) []T {
	if !l.set || l.n >= len(items) {
		return items
	}
	return items[:l.n]
}
