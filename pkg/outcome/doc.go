// Package outcome provides a tagged success/failure value as an explicit
// alternative to error returns, together with a structured, code-carrying
// error type for operations whose failures are expected and recoverable.
//
// An Outcome is created exactly once, either via Success or Failure, and is
// immutable afterwards. Callers inspect it with IsSuccess/IsFailure and read
// the payload with Value, Err or Unwrap.
//
// # Usage
//
//	import "github.com/dmitrymomot/gokit/pkg/outcome"
//
//	res := outcome.Success(42)
//	if res.IsSuccess() {
//	    fmt.Println(res.Value())
//	}
//
//	fail := outcome.Failure[int](outcome.NewError("invalid_size", "chunk size must be positive", nil))
//	v, err := fail.Unwrap() // v == 0, err carries the code
//
// # Structured Errors
//
// Error carries a machine-readable Code, a human-readable Message, an
// optional Details map with diagnostic values, and an optional wrapped Cause.
// It implements the error interface, supports errors.Unwrap chains, and
// implements slog.LogValuer so structured log sinks receive the code and
// details without any adapter code in this package.
//
// # Error Handling
//
// Use HasCode or CodeOf to classify failures regardless of how deeply the
// *Error is wrapped:
//
//	if outcome.HasCode(err, "invalid_size") {
//	    // handle the specific validation failure
//	}
package outcome
