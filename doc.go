// Package aesgcm implements AES in Galois/Counter Mode per NIST SP 800-38D.
//
// Four key widths are supported: the three standard sizes (128, 192, 256
// bits) and a non-standard 512-bit extension obtained by continuing the
// Rijndael key schedule pattern (Nr = Nk + 6). The 512-bit variant has not
// been analyzed by any standards body; treat it as experimental.
//
// The package is one-shot: Encrypt and Decrypt operate over full buffers,
// there is no streaming API, and only 128-bit tags are produced. Callers own
// nonce uniqueness; this package never generates an IV on its own.
package aesgcm
