//go:build amd64 && gc && !purego

package aesgcm

// encryptBlockAsm is implemented in aes_amd64.s. state holds
// the plaintext block on entry and the ciphertext block on return.
// roundKey is the full expanded schedule (16*(nr+1) bytes); nr is the
// round count for the key width in use.

//go:noescape
func encryptBlockAsm(state *[16]byte, roundKey []byte, nr int)
