package random

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// Alphabets for String and StringWithAlphabet.
const (
	AlphabetAlphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	AlphabetLower        = "abcdefghijklmnopqrstuvwxyz"
	AlphabetDigits       = "0123456789"
	AlphabetHex          = "0123456789abcdef"
)

// String returns n cryptographically random alphanumeric characters.
func String(n int) string {
	return StringWithAlphabet(n, AlphabetAlphanumeric)
}

// StringWithAlphabet returns n cryptographically random characters drawn
// uniformly from alphabet. Empty alphabets and non-positive lengths yield
// the empty string.
func StringWithAlphabet(n int, alphabet string) string {
	if n <= 0 || alphabet == "" {
		return ""
	}
	chars := []rune(alphabet)
	bound := big.NewInt(int64(len(chars)))

	out := make([]rune, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, bound)
		if err != nil {
			// crypto/rand failing means the platform's entropy source is
			// broken; no useful fallback exists.
			panic("random: failed to read entropy: " + err.Error())
		}
		out[i] = chars[idx.Int64()]
	}
	return string(out)
}

// Int returns a uniform random integer in the half-open range [0, n).
// Panics when n is not positive.
func Int(n int) int {
	if n <= 0 {
		panic("random: Int called with non-positive bound")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("random: failed to read entropy: " + err.Error())
	}
	return int(v.Int64())
}

// UUID returns a new random (version 4) UUID string.
func UUID() string {
	return uuid.NewString()
}
