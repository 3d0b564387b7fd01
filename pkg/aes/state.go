package aes

import "github.com/kargakis/cipherkit/pkg/gf"

// state is one block laid out as the FIPS-197 4x4 byte matrix in
// column-major order: byte i sits at row i%4, column i/4, so row r of
// column c is s[4*c+r].
type state [BlockSize]byte

// subBytes substitutes every byte through the forward S-box.
func (s *state) subBytes() {
	for i := range s {
		s[i] = sbox0[s[i]]
	}
}

func (s *state) invSubBytes() {
	for i := range s {
		s[i] = sbox1[s[i]]
	}
}

// shiftRows rotates row r left by r positions. Row 0 is untouched.
func (s *state) shiftRows() {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[c] = s[4*c+r]
		}
		for c := 0; c < 4; c++ {
			s[4*c+r] = row[(c+r)%4]
		}
	}
}

// invShiftRows rotates row r right by r positions.
func (s *state) invShiftRows() {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[c] = s[4*c+r]
		}
		for c := 0; c < 4; c++ {
			s[4*c+r] = row[(c+4-r)%4]
		}
	}
}

// mixColumns multiplies each column, viewed as a four-term polynomial
// over GF(2^8), by the fixed matrix
//
//	| 02 03 01 01 |
//	| 01 02 03 01 |
//	| 01 01 02 03 |
//	| 03 01 01 02 |
func (s *state) mixColumns() {
	for c := 0; c < 4; c++ {
		col := s[4*c : 4*c+4]
		a0, a1, a2, a3 := col[0], col[1], col[2], col[3]
		col[0] = gf.Mul(a0, 0x02) ^ gf.Mul(a1, 0x03) ^ a2 ^ a3
		col[1] = a0 ^ gf.Mul(a1, 0x02) ^ gf.Mul(a2, 0x03) ^ a3
		col[2] = a0 ^ a1 ^ gf.Mul(a2, 0x02) ^ gf.Mul(a3, 0x03)
		col[3] = gf.Mul(a0, 0x03) ^ a1 ^ a2 ^ gf.Mul(a3, 0x02)
	}
}

// invMixColumns applies the inverse matrix, whose rows are the
// coefficients {0e 0b 0d 09} rotated.
func (s *state) invMixColumns() {
	for c := 0; c < 4; c++ {
		col := s[4*c : 4*c+4]
		a0, a1, a2, a3 := col[0], col[1], col[2], col[3]
		col[0] = gf.Mul(a0, 0x0e) ^ gf.Mul(a1, 0x0b) ^ gf.Mul(a2, 0x0d) ^ gf.Mul(a3, 0x09)
		col[1] = gf.Mul(a0, 0x09) ^ gf.Mul(a1, 0x0e) ^ gf.Mul(a2, 0x0b) ^ gf.Mul(a3, 0x0d)
		col[2] = gf.Mul(a0, 0x0d) ^ gf.Mul(a1, 0x09) ^ gf.Mul(a2, 0x0e) ^ gf.Mul(a3, 0x0b)
		col[3] = gf.Mul(a0, 0x0b) ^ gf.Mul(a1, 0x0d) ^ gf.Mul(a2, 0x09) ^ gf.Mul(a3, 0x0e)
	}
}

// addRoundKey XORs the round key into the state. Self-inverse.
func (s *state) addRoundKey(rk *[16]byte) {
	for i := range s {
		s[i] ^= rk[i]
	}
}
