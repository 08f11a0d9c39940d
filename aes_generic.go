package aesgcm

// Rijndael S-box, as tabulated in FIPS-197 and in every tiny-AES-style
// implementation (see original_source/aes.c's sbox table).
var sbox = [256]byte{
	0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5, 0x30, 0x01, 0x67, 0x2b, 0xfe, 0xd7, 0xab, 0x76,
	0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0, 0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0,
	0xb7, 0xfd, 0x93, 0x26, 0x36, 0x3f, 0xf7, 0xcc, 0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
	0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a, 0x07, 0x12, 0x80, 0xe2, 0xeb, 0x27, 0xb2, 0x75,
	0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0, 0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84,
	0x53, 0xd1, 0x00, 0xed, 0x20, 0xfc, 0xb1, 0x5b, 0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
	0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85, 0x45, 0xf9, 0x02, 0x7f, 0x50, 0x3c, 0x9f, 0xa8,
	0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5, 0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2,
	0xcd, 0x0c, 0x13, 0xec, 0x5f, 0x97, 0x44, 0x17, 0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
	0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88, 0x46, 0xee, 0xb8, 0x14, 0xde, 0x5e, 0x0b, 0xdb,
	0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c, 0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79,
	0xe7, 0xc8, 0x37, 0x6d, 0x8d, 0xd5, 0x4e, 0xa9, 0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
	0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6, 0xe8, 0xdd, 0x74, 0x1f, 0x4b, 0xbd, 0x8b, 0x8a,
	0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e, 0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e,
	0xe1, 0xf8, 0x98, 0x11, 0x69, 0xd9, 0x8e, 0x94, 0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
	0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68, 0x41, 0x99, 0x2d, 0x0f, 0xb0, 0x54, 0xbb, 0x16,
}

// xtime multiplies by {02} in GF(2^8) under the AES reduction polynomial
// x^8 + x^4 + x^3 + x + 1 (0x11b).
func xtime(x byte) byte {
	hi := x >> 7
	return (x << 1) ^ (hi * 0x1b)
}

// gmul8 multiplies two bytes in GF(2^8); used only by MixColumns, where the
// multiplicands are always one of {01,02,03}.
func gmul8(x, y byte) byte {
	var z byte
	for y != 0 {
		if y&1 != 0 {
			z ^= x
		}
		x = xtime(x)
		y >>= 1
	}
	return z
}

// rcon computes the i-th round constant as x^(i-1) in GF(2^8), the value
// Rijndael's key schedule calls Rcon[i]. Computing it on demand rather than
// indexing a fixed table avoids the latent bug in the reference
// implementation, whose 11-entry table silently stops (and starts with an
// unused, garbage Rcon[0]) instead of being extended for wider keys.
func rcon(i int) byte {
	if i <= 0 {
		return 0
	}
	c := byte(0x01)
	for n := 1; n < i; n++ {
		c = xtime(c)
	}
	return c
}

// keyExpansionGeneric produces Nb*(Nr+1) round-key bytes from a key of
// 4*nk bytes, following the Rijndael key schedule (FIPS-197 §5.2), extended
// per rcon above for widths beyond the three standard ones.
func keyExpansionGeneric(key []byte, nk, nr int) []byte {
	const nb = 4
	roundKey := make([]byte, nb*4*(nr+1))
	copy(roundKey, key)

	var tempa [4]byte
	for i := nk; i < nb*(nr+1); i++ {
		k := (i - 1) * 4
		tempa[0] = roundKey[k+0]
		tempa[1] = roundKey[k+1]
		tempa[2] = roundKey[k+2]
		tempa[3] = roundKey[k+3]

		switch {
		case i%nk == 0:
			tempa[0], tempa[1], tempa[2], tempa[3] = tempa[1], tempa[2], tempa[3], tempa[0]
			tempa[0] = sbox[tempa[0]]
			tempa[1] = sbox[tempa[1]]
			tempa[2] = sbox[tempa[2]]
			tempa[3] = sbox[tempa[3]]
			tempa[0] ^= rcon(i / nk)
		case nk > 6 && i%nk == 4:
			tempa[0] = sbox[tempa[0]]
			tempa[1] = sbox[tempa[1]]
			tempa[2] = sbox[tempa[2]]
			tempa[3] = sbox[tempa[3]]
		}

		j := i * 4
		p := (i - nk) * 4
		roundKey[j+0] = roundKey[p+0] ^ tempa[0]
		roundKey[j+1] = roundKey[p+1] ^ tempa[1]
		roundKey[j+2] = roundKey[p+2] ^ tempa[2]
		roundKey[j+3] = roundKey[p+3] ^ tempa[3]
	}
	return roundKey
}

// The state is a 4x4 matrix in column-major order: byte at row r, column c
// lives at offset 4*c+r (spec.md §3, "Block").

func addRoundKey(state *[16]byte, roundKey []byte, round int) {
	off := round * 16
	for i := 0; i < 16; i++ {
		state[i] ^= roundKey[off+i]
	}
}

func subBytes(state *[16]byte) {
	for i := range state {
		state[i] = sbox[state[i]]
	}
}

// shiftRows rotates row r left by r columns. In column-major offset terms
// (offset = 4*c+r), row r's four bytes live at offsets r, 4+r, 8+r, 12+r;
// ShiftRows permutes them with a left rotation by r.
func shiftRows(state *[16]byte) {
	s := *state
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			state[4*c+r] = s[4*((c+r)%4)+r]
		}
	}
}

// mixColumns applies the fixed MDS matrix to each column over GF(2^8).
func mixColumns(state *[16]byte) {
	for c := 0; c < 4; c++ {
		a0 := state[4*c+0]
		a1 := state[4*c+1]
		a2 := state[4*c+2]
		a3 := state[4*c+3]
		state[4*c+0] = gmul8(a0, 2) ^ gmul8(a1, 3) ^ a2 ^ a3
		state[4*c+1] = a0 ^ gmul8(a1, 2) ^ gmul8(a2, 3) ^ a3
		state[4*c+2] = a0 ^ a1 ^ gmul8(a2, 2) ^ gmul8(a3, 3)
		state[4*c+3] = gmul8(a0, 3) ^ a1 ^ a2 ^ gmul8(a3, 2)
	}
}

// encryptBlockGeneric encrypts one 16-byte block in place under roundKey,
// the portable fallback mandated by spec.md §4.2 regardless of whether
// hardware acceleration is available.
func encryptBlockGeneric(state *[16]byte, roundKey []byte, nr int) {
	addRoundKey(state, roundKey, 0)
	for round := 1; ; round++ {
		subBytes(state)
		shiftRows(state)
		if round == nr {
			break
		}
		mixColumns(state)
		addRoundKey(state, roundKey, round)
	}
	addRoundKey(state, roundKey, nr)
}
