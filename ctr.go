package aesgcm

// inc32 increments the rightmost 32 bits of a 16-byte counter block,
// treated as a big-endian integer, wrapping modulo 2^32 without touching
// the first 12 bytes (NIST SP 800-38D §6.2's "incr" function specialized
// to s=32). This intentionally never carries into byte 11.
func inc32(block *[16]byte) {
	for i := 15; i >= 12; i-- {
		block[i]++
		if block[i] != 0 {
			return
		}
	}
}

// ctrXOR produces len(src) bytes of AES-CTR keystream starting from icb
// (the initial counter block) and XORs them into src, writing the result
// to dst. icb is not modified; dst and src may be the same slice.
func ctrXOR(bc *blockCipher, icb [16]byte, dst, src []byte) {
	counter := icb
	var ks [16]byte
	for len(src) > 0 {
		bc.encryptBlock(ks[:], counter[:])
		n := len(src)
		if n > 16 {
			n = 16
		}
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ ks[i]
		}
		dst = dst[n:]
		src = src[n:]
		inc32(&counter)
	}
}
