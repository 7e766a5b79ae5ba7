package maps

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Values returns the values of m in unspecified order.
func Values[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// Pick returns a new map holding only the listed keys that exist in m.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a new map holding every entry of m except the listed keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	exclude := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		exclude[k] = struct{}{}
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		if _, ok := exclude[k]; !ok {
			out[k] = v
		}
	}
	return out
}

// Filter returns the entries of m for which predicate holds.
func Filter[K comparable, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	out := make(map[K]V)
	for k, v := range m {
		if predicate(k, v) {
			out[k] = v
		}
	}
	return out
}

// Invert swaps keys and values. When several keys share a value, one of them
// survives; which one is unspecified.
func Invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// MapKeys transforms every key with fn, keeping values. Colliding transformed
// keys keep one of the original values; which one is unspecified.
func MapKeys[K1, K2 comparable, V any](m map[K1]V, fn func(K1) K2) map[K2]V {
	out := make(map[K2]V, len(m))
	for k, v := range m {
		out[fn(k)] = v
	}
	return out
}

// MapValues transforms every value with fn, keeping keys.
func MapValues[K comparable, V1, V2 any](m map[K]V1, fn func(V1) V2) map[K]V2 {
	out := make(map[K]V2, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}

// Merge combines maps shallowly into a new map; entries from later maps win
// over earlier ones key by key.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	out := make(map[K]V)
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
