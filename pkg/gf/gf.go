// Package gf implements arithmetic over the Rijndael field GF(2^8).
//
// Field elements are polynomials with coefficients mod 2, packed into
// single bytes. Multiplication reduces modulo the irreducible
// polynomial x^8 + x^4 + x^3 + x + 1 (0x11b).
package gf

// Poly is the field's reduction polynomial with the x^8 term dropped,
// which is all that survives the left shift during reduction.
const Poly = 0x1b

// Add adds two field elements. Addition of coefficients mod 2 is XOR.
func Add(a, b byte) byte {
	return a ^ b
}

// Mul multiplies two field elements modulo the reduction polynomial.
// Reduction is interleaved with the shift-and-add steps so all
// intermediate values fit in a byte.
func Mul(a, b byte) byte {
	var p byte
	for a != 0 && b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		b >>= 1
		// Multiply a by x, reducing when x^8 appears.
		if a&0x80 != 0 {
			a = a<<1 ^ Poly
		} else {
			a <<= 1
		}
	}
	return p
}

// Inverse returns the multiplicative inverse of a, with Inverse(0) == 0
// by convention. The multiplicative group has order 255, so the inverse
// is a^254, computed here by square-and-multiply.
func Inverse(a byte) byte {
	if a == 0 {
		return 0
	}
	// 254 = 0b11111110
	inv := byte(1)
	sq := a
	for i := 0; i < 8; i++ {
		if 254&(1<<uint(i)) != 0 {
			inv = Mul(inv, sq)
		}
		sq = Mul(sq, sq)
	}
	return inv
}
