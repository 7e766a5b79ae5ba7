package slices

import (
	"github.com/dmitrymomot/gokit/pkg/op"
	"github.com/dmitrymomot/gokit/pkg/outcome"
)

// Error codes for GroupBy.
const (
	// CodeMissingGroupKey identifies an element for which the selector
	// reported no key while missing keys were not allowed.
	CodeMissingGroupKey outcome.Code = "missing_group_key"
	// CodeInvalidSelector identifies a call with a nil selector.
	CodeInvalidSelector outcome.Code = "invalid_selector"
)

const (
	condMissingKey  op.Condition = "missing_key"
	condNilSelector op.Condition = "nil_selector"
)

// GroupOptions configures GroupBy for key type K. By default an element
// without a key fails the whole call; AllowMissingKey routes such elements
// into a designated bucket instead (the zero K unless MissingKeyBucket
// changes it).
type GroupOptions[K comparable] struct {
	AllowMissingKey bool
	MissingBucket   K
}

// AllowMissingKey permits elements for which the selector reports no key,
// grouping them under the designated missing-key bucket.
func AllowMissingKey[K comparable]() op.Option[GroupOptions[K]] {
	return func(o *GroupOptions[K]) { o.AllowMissingKey = true }
}

// MissingKeyBucket designates the bucket for elements without a key. It
// implies AllowMissingKey: designating a bucket that can never be used would
// be meaningless.
func MissingKeyBucket[K comparable](k K) op.Option[GroupOptions[K]] {
	return func(o *GroupOptions[K]) {
		o.AllowMissingKey = true
		o.MissingBucket = k
	}
}

func groupResolver[K comparable]() op.Resolver[GroupOptions[K]] {
	return op.NewResolver(
		GroupOptions[K]{},
		func(o GroupOptions[K], c op.Condition) (outcome.Code, string, map[string]any) {
			if c == condNilSelector {
				return CodeInvalidSelector, "group selector must not be nil", nil
			}
			return CodeMissingGroupKey,
				"selector returned no key for an element; set AllowMissingKey to group such elements",
				map[string]any{"allow_missing_key": o.AllowMissingKey}
		},
	)
}

func groupOp[T any, K comparable](selector func(T) (K, bool)) op.Op[[]T, map[K][]T, GroupOptions[K]] {
	resolver := groupResolver[K]()
	return op.Define(resolver, func(data []T, o GroupOptions[K]) (map[K][]T, *outcome.Error) {
		if selector == nil {
			return nil, resolver.Fail(o, condNilSelector)
		}
		groups := make(map[K][]T)
		for _, item := range data {
			key, ok := selector(item)
			if !ok {
				if !o.AllowMissingKey {
					return nil, resolver.Fail(o, condMissingKey)
				}
				key = o.MissingBucket
			}
			groups[key] = append(groups[key], item)
		}
		return groups, nil
	})
}

// GroupBy buckets elements by the key the selector reports for each of them.
// The selector's second return signals whether the element has a key at all;
// see GroupOptions for how keyless elements are treated.
func GroupBy[T any, K comparable](data []T, selector func(T) (K, bool), opts ...op.Option[GroupOptions[K]]) (map[K][]T, error) {
	return groupOp(selector).Call(data, opts...)
}

// TryGroupBy is GroupBy with the failure captured in an Outcome.
func TryGroupBy[T any, K comparable](data []T, selector func(T) (K, bool), opts ...op.Option[GroupOptions[K]]) outcome.Outcome[map[K][]T] {
	return groupOp(selector).Try(data, opts...)
}

// GroupByWith returns the curried form of GroupBy with the selector and
// options captured, awaiting data.
func GroupByWith[T any, K comparable](selector func(T) (K, bool), opts ...op.Option[GroupOptions[K]]) func([]T) (map[K][]T, error) {
	return groupOp(selector).Bind(opts...)
}

// TryGroupByWith returns the curried form of TryGroupBy.
func TryGroupByWith[T any, K comparable](selector func(T) (K, bool), opts ...op.Option[GroupOptions[K]]) func([]T) outcome.Outcome[map[K][]T] {
	return groupOp(selector).TryBind(opts...)
}

// Key adapts a plain selector that always produces a key to the (K, bool)
// shape GroupBy expects.
func Key[T any, K comparable](selector func(T) K) func(T) (K, bool) {
	return func(item T) (K, bool) {
		return selector(item), true
	}
}
