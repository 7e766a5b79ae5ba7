package op

import (
	"github.com/dmitrymomot/gokit/pkg/outcome"
)

// Option mutates an options record during normalization. Options are applied
// in order over a copy of the operation's defaults; the last setter for a
// field wins.
type Option[O any] func(*O)

// Condition names the specific validation failure detected by an operation's
// implementation, so one error factory can serve every failure point.
type Condition string

// ErrorFactory builds the error context for a failing call from that call's
// normalized options and the failed condition. The returned code must come
// from the operation's documented set and the message must be non-empty.
type ErrorFactory[O any] func(o O, c Condition) (outcome.Code, string, map[string]any)

// Resolver holds an operation's default options and error factory. It is
// stateless beyond this construction-time configuration; operations create
// one Resolver at definition time and share it across all calls.
type Resolver[O any] struct {
	defaults O
	factory  ErrorFactory[O]
}

// NewResolver builds a Resolver from the operation's defaults and its error
// factory. The factory is injected here rather than looked up globally, so
// two operations can never interfere with each other's error construction.
func NewResolver[O any](defaults O, factory ErrorFactory[O]) Resolver[O] {
	return Resolver[O]{defaults: defaults, factory: factory}
}

// Normalize produces a complete options record: a fresh copy of the defaults
// with each setter applied over it. Fields no setter touches keep their
// default; applying Normalize to setters that reproduce an already-normalized
// record yields an identical record.
func (r Resolver[O]) Normalize(opts ...Option[O]) O {
	o := r.defaults
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Defaults returns a copy of the resolver's default options.
func (r Resolver[O]) Defaults() O {
	return r.defaults
}

// Fail constructs the operation's structured error for the given condition.
// This is the only sanctioned way for an implementation to produce a failure:
// every error an operation emits flows through its resolver's factory.
func (r Resolver[O]) Fail(o O, c Condition) *outcome.Error {
	code, msg, details := r.factory(o, c)
	return outcome.NewError(code, msg, details)
}

// FailCause is Fail with an underlying cause attached for errors.Is chains.
func (r Resolver[O]) FailCause(o O, c Condition, cause error) *outcome.Error {
	return r.Fail(o, c).WithCause(cause)
}
