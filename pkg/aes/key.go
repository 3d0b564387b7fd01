package aes

const numRounds = 10

// expandKey derives the 11 round keys of AES-128 (FIPS-197 §5.2).
// The schedule is a sequence of 44 four-byte words w[0..43]; the first
// four hold the key itself, and every subsequent word is the XOR of
// the word four positions back with the previous word, which on every
// fourth position is first rotated, substituted through the S-box and
// folded with the round constant.
func expandKey(key []byte) [numRounds + 1][16]byte {
	var w [4 * (numRounds + 1)][4]byte
	for i := 0; i < 4; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}
	for i := 4; i < len(w); i++ {
		t := w[i-1]
		if i%4 == 0 {
			t = subWord(rotWord(t))
			t[0] ^= powx[i/4-1]
		}
		for j := 0; j < 4; j++ {
			w[i][j] = w[i-4][j] ^ t[j]
		}
	}

	var rk [numRounds + 1][16]byte
	for r := range rk {
		for j := 0; j < 4; j++ {
			copy(rk[r][4*j:], w[4*r+j][:])
		}
	}
	return rk
}

// rotWord cyclically rotates a word one byte to the left.
func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

// subWord applies the S-box to each byte of a word.
func subWord(w [4]byte) [4]byte {
	for i := range w {
		w[i] = sbox0[w[i]]
	}
	return w
}
