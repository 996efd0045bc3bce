package utils

import "slices"

// Filter keeps the items accepted by keep, in order. items is not modified.
func Filter[S ~[]E, E any](items S, keep func(E) bool) S {
	out := make(S, 0, len(items))
	for i := range items {
		if keep(items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

func Map[E, R any](items []E, fn func(E) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = fn(items[i])
	}
	return out
}

// Find returns a copy of the first item that matches.
func Find[E any](items []E, match func(E) bool) (E, bool) {
	if i := slices.IndexFunc(items, match); i >= 0 {
		return items[i], true
	}
	var zero E
	return zero, false
}

// GroupBy buckets items by key. Each bucket keeps the input order.
func GroupBy[E any, K comparable](items []E, key func(E) K) map[K][]E {
	groups := make(map[K][]E, len(items))
	for i := range items {
		k := key(items[i])
		groups[k] = append(groups[k], items[i])
	}
	return groups
}

func SumBy[E any](items []E, value func(E) float64) float64 {
	var total float64
	for i := range items {
		total += value(items[i])
	}
	return total
}

func Ptr[T any](v T) *T {
	return &v
}
