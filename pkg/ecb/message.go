package ecb

import (
	"crypto/cipher"
	"errors"
	"runtime"
	"sync"

	"github.com/kargakis/cipherkit/pkg/aes"
	"github.com/kargakis/cipherkit/pkg/padding"
)

// ErrInputLength is returned by Decrypt when the ciphertext length is
// not a multiple of the block size.
var ErrInputLength = errors.New("ecb: ciphertext length is not a multiple of the block size")

// Messages with at least this many blocks are split across workers.
// Below it the goroutine overhead outweighs the cipher work.
const parallelBlocks = 256

// Encrypt pads msg with PKCS#7, splits it into blocks and encrypts
// each one independently with AES-128 under key, which must be 16
// bytes. Padding is always added, so the ciphertext is the smallest
// multiple of the block size strictly greater than len(msg).
func Encrypt(msg, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	src := padding.Pad(msg, block.BlockSize())
	dst := make([]byte, len(src))
	cryptBlocks(NewEncrypter, block, dst, src)
	return dst, nil
}

// Decrypt decrypts an ECB ciphertext produced by Encrypt and strips
// its padding. It fails with ErrInputLength when the ciphertext is
// not block-aligned and with padding.ErrInvalidPadding when the
// recovered padding bytes are malformed.
func Decrypt(ciphertext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext)%block.BlockSize() != 0 {
		return nil, ErrInputLength
	}
	dst := make([]byte, len(ciphertext))
	cryptBlocks(NewDecrypter, block, dst, ciphertext)
	return padding.Unpad(dst, block.BlockSize())
}

// cryptBlocks runs the given block mode over block-aligned src,
// fanning large inputs out across contiguous chunks. ECB has no
// chaining, so output block i depends only on input block i and the
// chunks can be processed in any order. The cipher.Block is shared:
// its round-key schedule is read-only after expansion.
func cryptBlocks(newMode func(cipher.Block) cipher.BlockMode, b cipher.Block, dst, src []byte) {
	blockSize := b.BlockSize()
	total := len(src) / blockSize
	if total < parallelBlocks {
		newMode(b).CryptBlocks(dst, src)
		return
	}

	workers := runtime.NumCPU()
	per := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for begin := 0; begin < total; begin += per {
		end := begin + per
		if end > total {
			end = total
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			newMode(b).CryptBlocks(dst[lo:hi], src[lo:hi])
		}(begin*blockSize, end*blockSize)
	}
	wg.Wait()
}
