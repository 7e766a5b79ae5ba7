// Package validator provides declarative field validation built from small,
// composable rules.
//
// A Rule pairs a boolean check with the error to report when it fails.
// Apply runs a set of rules and returns every failure at once as a
// ValidationErrors value, which implements the error interface:
//
//	err := validator.Apply(
//	    validator.Required("email", form.Email),
//	    validator.Email("email", form.Email),
//	    validator.Between("age", form.Age, 18, 120),
//	)
//	if err != nil {
//	    for _, msg := range validator.Extract(err).Get("email") {
//	        // render per-field messages
//	    }
//	}
//
// Custom rules are plain struct literals; no registration is needed.
// ValidationErrors supports errors.As, so validation failures remain
// distinguishable after wrapping.
package validator
