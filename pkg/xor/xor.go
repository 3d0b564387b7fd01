// Package xor implements the XOR combinations used by the classic
// fixed, single-byte and repeating-key XOR ciphers.
package xor

import "math/bits"

// Bytes XORs the equal-length prefixes of a and b into dst and
// returns the number of bytes written.
func Bytes(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}

// Single XORs every byte of src with key. dst and src may be the
// same slice.
func Single(dst, src []byte, key byte) {
	for i := range src {
		dst[i] = src[i] ^ key
	}
}

// Repeating XORs src with key cycled over its length. The key must
// not be empty.
func Repeating(dst, src, key []byte) {
	if len(key) == 0 {
		panic("xor: empty key")
	}
	for i := range src {
		dst[i] = src[i] ^ key[i%len(key)]
	}
}

// Hamming returns the number of differing bits between two
// equal-length byte slices.
func Hamming(a, b []byte) int {
	if len(a) != len(b) {
		panic("xor: length mismatch")
	}
	var n int
	for i := range a {
		n += bits.OnesCount8(a[i] ^ b[i])
	}
	return n
}
