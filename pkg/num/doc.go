// Package num provides small numeric helpers over the built-in number
// types: clamping, range checks, precision rounding and basic aggregates.
//
// The generic helpers accept any integer or float type via the Number
// constraint; aggregates that can be fractional (Mean, Median) always return
// float64.
package num
