package aesgcm

import (
	"encoding/binary"
	"fmt"
)

// TagSize is the only tag length this package produces or accepts;
// spec.md places non-128-bit tags out of scope.
const TagSize = 16

// ivSize96 is the IV length that takes the fast J0 = IV || 0^31 || 1 path.
// Any other length falls back to the GHASH-based J0 derivation.
const ivSize96 = 12

// MaxPlaintextLen bounds a single Encrypt call's plaintext, following NIST
// SP 800-38D's limit of 2^39-256 bits per invocation under one (key, IV).
const MaxPlaintextLen = (uint64(1)<<39 - 256) / 8

// Context holds an expanded AES key schedule and is immutable after
// NewContext; it is safe for concurrent use by multiple goroutines, each
// Encrypt/Decrypt call allocating its own ephemeral GHASH state, counter
// block, and EK0.
type Context struct {
	bc *blockCipher
}

// NewContext expands key into a reusable GCM context. key must be 16, 24,
// 32, or 64 bytes (AES-128/192/256, or the non-standard, unvalidated
// 512-bit extension); the width is selected from len(key), never from a
// build-time flag.
func NewContext(key []byte) (*Context, error) {
	bc, err := newBlockCipher(key)
	if err != nil {
		return nil, err
	}
	return &Context{bc: bc}, nil
}

// Destroy overwrites the expanded round-key schedule. The Context must not
// be used afterward; doing so is a programmer error, not a recoverable one.
func (c *Context) Destroy() {
	c.bc.zero()
}

// KeySize reports the key width, in bytes, this context was constructed
// with.
func (c *Context) KeySize() int {
	return c.bc.nk * 4
}

// Nr reports the number of AES rounds this context's key width selected.
func (c *Context) Nr() int {
	return c.bc.nr
}

func (c *Context) hashSubkey() [16]byte {
	var h [16]byte
	var zero [16]byte
	c.bc.encryptBlock(h[:], zero[:])
	return h
}

// deriveJ0 computes the pre-counter block per NIST SP 800-38D §7.1: the
// fast path for a 96-bit IV, otherwise GHASH over the IV padded to a
// block boundary followed by its bit length.
func deriveJ0(h [16]byte, iv []byte) [16]byte {
	if len(iv) == ivSize96 {
		var j0 [16]byte
		copy(j0[:12], iv)
		j0[15] = 1
		return j0
	}
	g := newGHASH(h)
	g.update(iv)
	var lenBlock [16]byte
	binary.BigEndian.PutUint64(lenBlock[8:], uint64(len(iv))*8)
	g.update(lenBlock[:])
	return g.sum()
}

// ghashTag computes GHASH(AAD || ciphertext || lengths), the authenticated
// portion of the tag before the final XOR with E(K, J0).
func ghashTag(h [16]byte, aad, ciphertext []byte) [16]byte {
	g := newGHASH(h)
	// update zero-pads a call's own trailing partial block internally, so
	// AAD and ciphertext each land on a fresh block boundary without an
	// extra explicit padding block here.
	g.update(aad)
	g.update(ciphertext)
	var lenBlock [16]byte
	binary.BigEndian.PutUint64(lenBlock[0:8], uint64(len(aad))*8)
	binary.BigEndian.PutUint64(lenBlock[8:16], uint64(len(ciphertext))*8)
	g.update(lenBlock[:])
	return g.sum()
}

// Encrypt authenticates aad and encrypts plaintext under iv, returning the
// ciphertext (same length as plaintext) and a TagSize-byte tag. iv must be
// non-empty; callers own nonce uniqueness, this package never generates
// one. Re-using an (key, iv) pair across two Encrypt calls silently breaks
// GCM's security guarantees; this package does not detect that.
func (c *Context) Encrypt(iv, aad, plaintext []byte) (ciphertext, tag []byte, err error) {
	if len(iv) == 0 {
		return nil, nil, fmt.Errorf("%w: iv must be non-empty", ErrInvalidArgument)
	}
	if uint64(len(plaintext)) > MaxPlaintextLen {
		return nil, nil, fmt.Errorf("%w: plaintext of %d bytes exceeds the per-invocation limit", ErrInvalidArgument, len(plaintext))
	}

	out := make([]byte, len(plaintext))

	h := c.hashSubkey()
	j0 := deriveJ0(h, iv)

	counter := j0
	inc32(&counter)
	ctrXOR(c.bc, counter, out, plaintext)

	s := ghashTag(h, aad, out)
	var ek0 [16]byte
	c.bc.encryptBlock(ek0[:], j0[:])
	t := make([]byte, TagSize)
	for i := 0; i < TagSize; i++ {
		t[i] = s[i] ^ ek0[i]
	}

	return out, t, nil
}

// Decrypt verifies tag against aad and ciphertext under iv, and only if it
// matches does it decrypt ciphertext and return the plaintext. On mismatch
// it returns ErrAuthFailure and a nil plaintext without ever running the
// CTR keystream over ciphertext.
func (c *Context) Decrypt(iv, aad, ciphertext, tag []byte) (plaintext []byte, err error) {
	if len(iv) == 0 {
		return nil, fmt.Errorf("%w: iv must be non-empty", ErrInvalidArgument)
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: tag must be %d bytes, got %d", ErrInvalidArgument, TagSize, len(tag))
	}
	if uint64(len(ciphertext)) > MaxPlaintextLen {
		return nil, fmt.Errorf("%w: ciphertext of %d bytes exceeds the per-invocation limit", ErrInvalidArgument, len(ciphertext))
	}

	h := c.hashSubkey()
	j0 := deriveJ0(h, iv)

	// GHASH absorbs the ciphertext as received and the tag is checked
	// before any of it is decrypted — a mismatch must never expose even
	// partially-decrypted plaintext.
	s := ghashTag(h, aad, ciphertext)
	var ek0 [16]byte
	c.bc.encryptBlock(ek0[:], j0[:])
	want := make([]byte, TagSize)
	for i := 0; i < TagSize; i++ {
		want[i] = s[i] ^ ek0[i]
	}

	if !constantTimeCompare(want, tag) {
		return nil, ErrAuthFailure
	}

	out := make([]byte, len(ciphertext))

	counter := j0
	inc32(&counter)
	ctrXOR(c.bc, counter, out, ciphertext)

	return out, nil
}
