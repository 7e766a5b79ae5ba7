// Package random generates cryptographically secure random strings, numbers
// and UUIDs for identifiers, suffixes and one-time codes.
//
//	code := random.StringWithAlphabet(6, random.AlphabetDigits)
//	id := random.UUID()
//
// All randomness comes from crypto/rand; selection over an alphabet is
// unbiased. The helpers panic when the platform entropy source fails, since
// falling back to predictable values would be worse than crashing.
package random
