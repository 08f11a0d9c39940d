package aesgcm

import (
	"bytes"
	"testing"
)

// TestAESRound checks block encryption (through the dispatching
// encryptBlock) against the FIPS-197 Appendix C.1 example for a single
// AES-128 block.
func TestAESRound(t *testing.T) {
	key := unhex("000102030405060708090a0b0c0d0e0f")
	plaintext := unhex("00112233445566778899aabbccddeeff")
	want := unhex("69c4e0d86a7b0430d8cdb78070b4c55a")

	bc, err := newBlockCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	got := make([]byte, 16)
	bc.encryptBlock(got, plaintext)
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestAESRoundGenericMatchesAsm(t *testing.T) {
	if !haveAsm {
		t.Skip("no accelerated round function on this build")
	}
	key := unhex("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	plaintext := unhex("00112233445566778899aabbccddeeff")

	bc, err := newBlockCipher(key)
	if err != nil {
		t.Fatal(err)
	}

	var viaAsm, viaGeneric [16]byte
	var state [16]byte
	copy(state[:], plaintext)

	s1 := state
	encryptBlockAsm(&s1, bc.roundKey, bc.nr)
	viaAsm = s1

	s2 := state
	encryptBlockGeneric(&s2, bc.roundKey, bc.nr)
	viaGeneric = s2

	if viaAsm != viaGeneric {
		t.Errorf("accelerated and generic round functions disagree:\nasm:     %x\ngeneric: %x", viaAsm, viaGeneric)
	}
}

func TestKeyExpansionLengths(t *testing.T) {
	cases := []struct {
		keyLen int
		nk, nr int
	}{
		{KeySize128, 4, 10},
		{KeySize192, 6, 12},
		{KeySize256, 8, 14},
		{KeySize512, 16, 22},
	}
	for _, c := range cases {
		key := make([]byte, c.keyLen)
		bc, err := newBlockCipher(key)
		if err != nil {
			t.Fatalf("keyLen=%d: %v", c.keyLen, err)
		}
		if bc.nk != c.nk || bc.nr != c.nr {
			t.Errorf("keyLen=%d: got nk=%d nr=%d, want nk=%d nr=%d", c.keyLen, bc.nk, bc.nr, c.nk, c.nr)
		}
		wantLen := 16 * (c.nr + 1)
		if len(bc.roundKey) != wantLen {
			t.Errorf("keyLen=%d: round key length = %d, want %d", c.keyLen, len(bc.roundKey), wantLen)
		}
	}
}

func TestRconMatchesKnownValues(t *testing.T) {
	// Rcon(1..10) as tabulated in FIPS-197 Appendix A (the values the
	// reference implementation's fixed 11-entry table also encodes,
	// Rcon[0] excluded since it is never indexed by a correct schedule).
	want := []byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
	for i, w := range want {
		if got := rcon(i + 1); got != w {
			t.Errorf("rcon(%d) = %#x, want %#x", i+1, got, w)
		}
	}
}

func TestBlockCipherZero(t *testing.T) {
	key := make([]byte, KeySize128)
	for i := range key {
		key[i] = byte(i + 1)
	}
	bc, err := newBlockCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	bc.zero()
	for i, b := range bc.roundKey {
		if b != 0 {
			t.Fatalf("round key byte %d not zeroed: %#x", i, b)
		}
	}
}
