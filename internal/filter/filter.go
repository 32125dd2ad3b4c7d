// Package filter composes small predicates over in-memory record lists.
// Criteria combine with AND; a multi-select criterion matches on membership.
package filter

import (
	"slices"
	"strings"
	"time"
)

type Predicate[T any] func(T) bool

// All matches when every non-nil predicate matches.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p != nil && !p(v) {
				return false
			}
		}
		return true
	}
}

// Apply returns the matching items in their original order. The result is
// never nil and never aliases items.
func Apply[T any](items []T, p Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if p == nil || p(it) {
			out = append(out, it)
		}
	}
	return out
}

// Contains reports whether query occurs in any field, ignoring case.
// A blank query matches everything.
func Contains(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// OneOf reports whether v is in set. An empty set is no constraint.
func OneOf[T comparable](set []T, v T) bool {
	return len(set) == 0 || slices.Contains(set, v)
}

// AnyOf reports whether any of values is in set. An empty set is no constraint.
func AnyOf[T comparable](set []T, values []T) bool {
	if len(set) == 0 {
		return true
	}
	for _, v := range values {
		if slices.Contains(set, v) {
			return true
		}
	}
	return false
}

// Within reports whether t lies in [from, to]. Zero bounds are open.
func Within(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	return to.IsZero() || !t.After(to)
}
