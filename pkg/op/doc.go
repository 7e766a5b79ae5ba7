// Package op is a small framework for defining configurable operations that
// share one implementation across two calling shapes and two error policies.
//
// An operation is a pure function from (data, options) to a result. Package op
// supplies the two pieces every such operation needs and would otherwise
// re-implement:
//
//   - Resolver: normalizes caller-supplied options over the operation's
//     defaults and is the single place where the operation's structured
//     errors are constructed. Each operation builds exactly one Resolver at
//     definition time, injecting its defaults and its error factory.
//   - Op: the dual-call adapter. From one implementation it derives an eager
//     data-first form (Call, Try) and a curried data-last form (Bind,
//     TryBind), and it derives both error policies: Call/Bind surface
//     failures as conventional Go errors, Try/TryBind capture them in an
//     outcome.Outcome instead.
//
// All four entry points run the identical path — normalize options, run the
// implementation, resolve the result — so for any data X and options O,
// Call(X, O...) and Bind(O...)(X) are equivalent, as are Try and TryBind,
// down to the error code on failure.
//
// # Defining an Operation
//
//	type chunkOptions struct {
//	    Size int
//	}
//
//	var chunkResolver = op.NewResolver(
//	    chunkOptions{Size: 1},
//	    func(o chunkOptions, c op.Condition) (outcome.Code, string, map[string]any) {
//	        return "invalid_size", "chunk size must be positive", map[string]any{"size": o.Size}
//	    },
//	)
//
//	var chunkOp = op.Define(chunkResolver, func(data []int, o chunkOptions) ([][]int, *outcome.Error) {
//	    if o.Size < 1 {
//	        return nil, chunkResolver.Fail(o, "invalid_size")
//	    }
//	    // ... split data ...
//	})
//
//	// data-first, conventional errors:
//	chunks, err := chunkOp.Call(data, func(o *chunkOptions) { o.Size = 2 })
//
//	// data-last, outcome-valued:
//	try := chunkOp.TryBind(func(o *chunkOptions) { o.Size = 2 })
//	res := try(data)
//
// # Options
//
// Options records are plain structs. A caller customizes them with Option
// setters applied over a fresh copy of the defaults, so normalization is a
// shallow field-by-field override and is idempotent. Implementations never
// see un-normalized options.
//
// # Error Policy
//
// The framework never swallows a detected failure: an invalid input always
// surfaces either as a returned error (Call, Bind) or as a failed Outcome
// (Try, TryBind). The conventional error return is the default ergonomics;
// the Outcome form is opt-in per call site by choosing the Try entry point.
package op
