package aes

// encryptBlock transforms one block: the initial round key addition,
// nine full rounds, and a final round without mixColumns (FIPS-197
// §5.1).
func encryptBlock(rk *[numRounds + 1][16]byte, dst, src []byte) {
	var s state
	copy(s[:], src[:BlockSize])

	s.addRoundKey(&rk[0])
	for r := 1; r < numRounds; r++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(&rk[r])
	}
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(&rk[numRounds])

	copy(dst[:BlockSize], s[:])
}

// decryptBlock runs the mirrored inverse sequence: round keys in
// reverse order, invMixColumns omitted on the last step (FIPS-197
// §5.3).
func decryptBlock(rk *[numRounds + 1][16]byte, dst, src []byte) {
	var s state
	copy(s[:], src[:BlockSize])

	s.addRoundKey(&rk[numRounds])
	for r := numRounds - 1; r > 0; r-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(&rk[r])
		s.invMixColumns()
	}
	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(&rk[0])

	copy(dst[:BlockSize], s[:])
}
