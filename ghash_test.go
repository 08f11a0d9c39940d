package aesgcm

import "testing"

func TestGmulIdentity(t *testing.T) {
	var x [16]byte
	for i := range x {
		x[i] = byte(i * 3)
	}
	var one [16]byte
	one[0] = 0x80 // the field element "1" under GHASH's bit ordering

	got := gmul(x, one)
	if got != x {
		t.Errorf("x * 1 = %x, want %x", got, x)
	}
}

func TestGmulZero(t *testing.T) {
	var x [16]byte
	for i := range x {
		x[i] = byte(i + 1)
	}
	var zero [16]byte
	got := gmul(x, zero)
	if got != zero {
		t.Errorf("x * 0 = %x, want 0", got)
	}
}

func TestGmulCommutative(t *testing.T) {
	var a, b [16]byte
	for i := range a {
		a[i] = byte(i*17 + 1)
		b[i] = byte(i*31 + 7)
	}
	ab := gmul(a, b)
	ba := gmul(b, a)
	if ab != ba {
		t.Errorf("gmul not commutative: a*b=%x, b*a=%x", ab, ba)
	}
}

func TestGHASHEmptyIsZero(t *testing.T) {
	var h [16]byte
	h[0] = 1
	g := newGHASH(h)
	g.update(nil)
	var zero [16]byte
	if got := g.sum(); got != zero {
		t.Errorf("GHASH of no blocks = %x, want 0", got)
	}
}

func TestGHASHPartialBlockPadding(t *testing.T) {
	var h [16]byte
	for i := range h {
		h[i] = byte(i + 1)
	}

	g1 := newGHASH(h)
	g1.update([]byte("short"))

	g2 := newGHASH(h)
	padded := make([]byte, 16)
	copy(padded, "short")
	g2.update(padded)

	if g1.sum() != g2.sum() {
		t.Errorf("unpadded partial block hashed differently from zero-padded equivalent")
	}
}
