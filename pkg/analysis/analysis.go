// Package analysis recovers XOR cipher keys through frequency
// analysis against sample text.
package analysis

import (
	"io"
	"io/ioutil"

	"github.com/spf13/afero"

	"github.com/kargakis/cipherkit/pkg/xor"
)

// Candidate key sizes tried by BreakRepeatingXOR.
const (
	minKeySize = 2
	maxKeySize = 40
)

// SymbolCounts reads sample text and returns a map of UTF-8 symbol
// counts.
func SymbolCounts(in io.Reader) (map[rune]int, error) {
	buf, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, err
	}
	m := make(map[rune]int)
	for _, r := range string(buf) {
		m[r]++
	}
	return m, nil
}

// ScoreFunc reads sample text and returns a function rating a
// candidate plaintext by how common its symbols are in the sample.
func ScoreFunc(in io.Reader) (func([]byte) int, error) {
	m, err := SymbolCounts(in)
	if err != nil {
		return nil, err
	}
	return func(buf []byte) int {
		var n int
		for _, r := range string(buf) {
			n += m[r]
		}
		return n
	}, nil
}

// CorpusScoreFunc builds a scoring function from a sample-text file
// on the given filesystem.
func CorpusScoreFunc(fs afero.Fs, path string) (func([]byte) int, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ScoreFunc(f)
}

// BreakSingleXOR takes a buffer and scoring function, and returns the
// probable single-byte key.
func BreakSingleXOR(buf []byte, score func([]byte) int) byte {
	var (
		key  byte
		best int
	)
	tmp := make([]byte, len(buf))
	for i := 0; i <= 0xff; i++ {
		xor.Single(tmp, buf, byte(i))
		if n := score(tmp); n > best {
			best = n
			key = byte(i)
		}
	}
	return key
}

// BreakRepeatingXOR guesses the repeating key a buffer was XORed
// with: the key size minimizing the normalized Hamming distance
// between adjacent chunks is chosen, the buffer is transposed into
// one column per key byte, and each column is solved as a single-byte
// XOR cipher.
func BreakRepeatingXOR(buf []byte, score func([]byte) int) []byte {
	size := keySize(buf)
	key := make([]byte, size)
	column := make([]byte, 0, len(buf)/size+1)
	for i := range key {
		column = column[:0]
		for j := i; j < len(buf); j += size {
			column = append(column, buf[j])
		}
		key[i] = BreakSingleXOR(column, score)
	}
	return key
}

// keySize ranks candidate key sizes by the Hamming distance between
// adjacent size-length chunks, averaged over the whole buffer and
// normalized by the size.
func keySize(buf []byte) int {
	best := minKeySize
	bestScore := -1.0
	for n := minKeySize; n <= maxKeySize && 2*n <= len(buf); n++ {
		var (
			bits  int
			pairs int
		)
		for i := 0; i+2*n <= len(buf); i += n {
			bits += xor.Hamming(buf[i:i+n], buf[i+n:i+2*n])
			pairs++
		}
		score := float64(bits) / float64(pairs) / float64(n)
		if bestScore < 0 || score < bestScore {
			bestScore = score
			best = n
		}
	}
	return best
}
