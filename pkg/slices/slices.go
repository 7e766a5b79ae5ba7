package slices

import (
	"math/rand/v2"
)

// Shuffle returns a new slice with the elements of data in uniformly random
// order. The input is never modified.
func Shuffle[T any](data []T) []T {
	out := make([]T, len(data))
	copy(out, data)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Sample returns one uniformly random element of data. The second return is
// false when data is empty.
func Sample[T any](data []T) (T, bool) {
	if len(data) == 0 {
		var zero T
		return zero, false
	}
	return data[rand.IntN(len(data))], true
}

// SampleSize returns up to n distinct elements of data in random order.
// When n exceeds the length of data, every element is returned once.
func SampleSize[T any](data []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	shuffled := Shuffle(data)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Unique returns data with duplicates removed, keeping the first occurrence
// of each element and preserving order.
func Unique[T comparable](data []T) []T {
	seen := make(map[T]struct{}, len(data))
	out := make([]T, 0, len(data))
	for _, v := range data {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// UniqueBy returns data deduplicated by the key fn derives for each element,
// keeping the first element per key and preserving order.
func UniqueBy[T any, K comparable](data []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(data))
	out := make([]T, 0, len(data))
	for _, v := range data {
		k := fn(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Difference returns the elements of a that do not appear in b, preserving
// the order of a.
func Difference[T comparable](a, b []T) []T {
	exclude := make(map[T]struct{}, len(b))
	for _, v := range b {
		exclude[v] = struct{}{}
	}
	out := make([]T, 0, len(a))
	for _, v := range a {
		if _, ok := exclude[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// Intersection returns the distinct elements present in both a and b,
// preserving the order of a.
func Intersection[T comparable](a, b []T) []T {
	include := make(map[T]struct{}, len(b))
	for _, v := range b {
		include[v] = struct{}{}
	}
	out := make([]T, 0, min(len(a), len(b)))
	seen := make(map[T]struct{})
	for _, v := range a {
		if _, ok := include[v]; !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Flatten concatenates a slice of slices into a single flat slice.
func Flatten[T any](data [][]T) []T {
	total := 0
	for _, inner := range data {
		total += len(inner)
	}
	out := make([]T, 0, total)
	for _, inner := range data {
		out = append(out, inner...)
	}
	return out
}

// Compact returns data without zero-valued elements, preserving order.
func Compact[T comparable](data []T) []T {
	var zero T
	out := make([]T, 0, len(data))
	for _, v := range data {
		if v != zero {
			out = append(out, v)
		}
	}
	return out
}

// Partition splits data into the elements satisfying predicate and the rest,
// preserving order in both halves.
func Partition[T any](data []T, predicate func(T) bool) (matched, rest []T) {
	matched = make([]T, 0, len(data))
	rest = make([]T, 0, len(data))
	for _, v := range data {
		if predicate(v) {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matched, rest
}

// CountBy tallies how many elements map to each key.
func CountBy[T any, K comparable](data []T, fn func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, v := range data {
		counts[fn(v)]++
	}
	return counts
}

// KeyBy indexes data by the key fn derives for each element. Later elements
// overwrite earlier ones sharing a key.
func KeyBy[T any, K comparable](data []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(data))
	for _, v := range data {
		out[fn(v)] = v
	}
	return out
}
