// Package password provides bcrypt password hashing and verification with
// safe defaults.
//
//	hash, err := password.Hash(plaintext)
//	// store hash; later:
//	if err := password.Verify(hash, candidate); errors.Is(err, password.ErrMismatch) {
//	    // reject login
//	}
//
// Hashes embed their cost, so raising the cost for new hashes never breaks
// verification of old ones.
package password
