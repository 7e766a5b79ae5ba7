package op

import (
	"github.com/dmitrymomot/gokit/pkg/outcome"
)

// Func is the shape of an operation implementation: pure, data-first, already
// normalized options, failures reported exclusively through the resolver.
type Func[T, R, O any] func(data T, o O) (R, *outcome.Error)

// Op adapts one implementation into both calling shapes (data-first and
// curried data-last) and both error policies (conventional error return and
// outcome-valued). The zero Op is not usable; build one with Define.
type Op[T, R, O any] struct {
	resolver Resolver[O]
	impl     Func[T, R, O]
}

// Define wraps an implementation with its resolver. Called once per
// operation, at package initialization.
func Define[T, R, O any](resolver Resolver[O], impl Func[T, R, O]) Op[T, R, O] {
	if impl == nil {
		panic("op: Define called with nil implementation")
	}
	return Op[T, R, O]{resolver: resolver, impl: impl}
}

// Resolver exposes the operation's resolver, letting callers pre-normalize
// options or inspect defaults.
func (op Op[T, R, O]) Resolver() Resolver[O] {
	return op.resolver
}

// do is the single execution path shared by all four entry points.
func (op Op[T, R, O]) do(data T, opts []Option[O]) (R, *outcome.Error) {
	o := op.resolver.Normalize(opts...)
	return op.impl(data, o)
}

// Call invokes the operation data-first with conventional error semantics:
// the raw result on success, a non-nil error on failure.
func (op Op[T, R, O]) Call(data T, opts ...Option[O]) (R, error) {
	v, oerr := op.do(data, opts)
	if oerr != nil {
		var zero R
		return zero, oerr
	}
	return v, nil
}

// Try invokes the operation data-first and captures the result as an
// Outcome: success wraps the raw result, failure wraps the structured error.
// No error escapes by any other path.
func (op Op[T, R, O]) Try(data T, opts ...Option[O]) outcome.Outcome[R] {
	v, oerr := op.do(data, opts)
	if oerr != nil {
		return outcome.Failure[R](oerr)
	}
	return outcome.Success(v)
}

// Bind captures options now and returns the data-last form of Call. The
// returned function is reusable: each invocation normalizes the captured
// options afresh and runs the same path as Call.
func (op Op[T, R, O]) Bind(opts ...Option[O]) func(T) (R, error) {
	return func(data T) (R, error) {
		return op.Call(data, opts...)
	}
}

// TryBind captures options now and returns the data-last form of Try.
func (op Op[T, R, O]) TryBind(opts ...Option[O]) func(T) outcome.Outcome[R] {
	return func(data T) outcome.Outcome[R] {
		return op.Try(data, opts...)
	}
}
