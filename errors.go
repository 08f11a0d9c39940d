package aesgcm

import "errors"

// ErrInvalidArgument is wrapped with a specific cause and returned whenever
// a caller-supplied precondition is violated: wrong key length, wrong tag
// length, or a nil buffer where a non-empty one was required. Test with
// errors.Is(err, aesgcm.ErrInvalidArgument).
var ErrInvalidArgument = errors.New("aesgcm: invalid argument")

// ErrAuthFailure is returned alone, with no further detail, when the
// computed tag does not match the one supplied to Decrypt. Deliberately
// uninformative: which byte mismatched, or by how much, is exactly the
// kind of oracle an attacker forging ciphertexts wants.
var ErrAuthFailure = errors.New("aesgcm: authentication failed")

// constantTimeCompare reports whether a and b are equal, examining every
// byte regardless of where the first mismatch occurs and branching only
// once, at the very end. Both slices must be exactly TagSize bytes; a
// caller passing anything else has violated an internal invariant and the
// mismatch panics rather than silently truncating the comparison.
func constantTimeCompare(a, b []byte) bool {
	if len(a) != TagSize || len(b) != TagSize {
		panic("aesgcm: constantTimeCompare requires two TagSize-length buffers")
	}
	var diff byte
	for i := 0; i < TagSize; i++ {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
