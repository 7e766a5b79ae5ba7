// Package maps provides generic helpers over maps: selecting and excluding
// keys, transforming keys and values, inverting, filtering and shallow
// merging.
//
// Every helper returns a freshly allocated map and never modifies its
// arguments. Iteration-order caveats are documented per function where the
// result depends on which colliding entry survives.
//
//	picked := maps.Pick(user, "id", "email")
//	merged := maps.Merge(defaults, overrides) // overrides win key by key
package maps
