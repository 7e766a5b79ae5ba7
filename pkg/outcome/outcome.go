package outcome

// Outcome represents the result of an operation as a tagged union: either a
// success carrying a value, or a failure carrying a structured *Error.
// Exactly one of the two is set; the zero Outcome is a failure with no error,
// which operations never produce.
type Outcome[T any] struct {
	value     T
	err       *Error
	isSuccess bool
}

// Success wraps a value in a successful Outcome. No validation is performed.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, isSuccess: true}
}

// Failure wraps a structured error in a failed Outcome.
func Failure[T any](err *Error) Outcome[T] {
	return Outcome[T]{err: err}
}

// IsSuccess reports whether the outcome carries a value.
func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

// IsFailure reports whether the outcome carries an error.
func (o Outcome[T]) IsFailure() bool {
	return !o.isSuccess
}

// Value returns the success value, or the zero value for failed outcomes.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the failure error, or nil for successful outcomes.
func (o Outcome[T]) Err() *Error {
	return o.err
}

// Unwrap converts the outcome back to Go's conventional (value, error) pair.
// The returned error is nil exactly when the outcome is a success.
func (o Outcome[T]) Unwrap() (T, error) {
	if o.isSuccess {
		return o.value, nil
	}
	return o.value, o.err
}

// MustValue returns the success value and panics on failure. Intended for
// tests and initialization code where a failure is a programming error.
func (o Outcome[T]) MustValue() T {
	if !o.isSuccess {
		panic(o.err)
	}
	return o.value
}

// ValueOr returns the success value, or fallback for failed outcomes.
func (o Outcome[T]) ValueOr(fallback T) T {
	if o.isSuccess {
		return o.value
	}
	return fallback
}

// Map transforms the value of a successful outcome, passing failures through
// untouched.
func Map[T, U any](o Outcome[T], fn func(T) U) Outcome[U] {
	if o.IsFailure() {
		return Failure[U](o.err)
	}
	return Success(fn(o.value))
}
