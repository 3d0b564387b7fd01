// Package padding implements PKCS#7 block padding: N bytes of value N
// are appended to fill the final block, and a full block of padding is
// added when the input is already block-aligned.
package padding

import (
	"bytes"
	"errors"
)

// ErrInvalidPadding is returned by Unpad when the trailing padding
// bytes are malformed or inconsistent.
var ErrInvalidPadding = errors.New("padding: invalid PKCS#7 padding")

// Pad returns a copy of buf with PKCS#7 padding added so its length
// is a multiple of blockSize. Padding is always added, even when buf
// is already aligned.
func Pad(buf []byte, blockSize int) []byte {
	if blockSize <= 0 || blockSize > 0xff {
		panic("padding: invalid block size")
	}
	n := blockSize - len(buf)%blockSize
	padded := make([]byte, 0, len(buf)+n)
	padded = append(padded, buf...)
	return append(padded, bytes.Repeat([]byte{byte(n)}, n)...)
}

// Unpad validates and strips PKCS#7 padding. The final byte gives the
// padding length; it must be in [1, blockSize] and every one of the
// trailing bytes must hold that value.
func Unpad(buf []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 || blockSize > 0xff {
		panic("padding: invalid block size")
	}
	if len(buf) == 0 || len(buf)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}
	n := int(buf[len(buf)-1])
	if n == 0 || n > blockSize {
		return nil, ErrInvalidPadding
	}
	if !bytes.Equal(buf[len(buf)-n:], bytes.Repeat([]byte{byte(n)}, n)) {
		return nil, ErrInvalidPadding
	}
	return buf[:len(buf)-n], nil
}
