// Package ecb implements the electronic codebook mode for any
// cipher.Block, along with high-level AES-128 message encryption
// using PKCS#7 padding.
//
// ECB encrypts every block independently: there is no chaining, no IV
// and no nonce, and identical plaintext blocks yield identical
// ciphertext blocks. That property makes the mode unsafe for most
// purposes, but it is preserved here for compatibility.
package ecb

import (
	"crypto/cipher"
)

type encrypter struct {
	b         cipher.Block
	blockSize int
}

// NewEncrypter returns a cipher.BlockMode which encrypts in
// electronic codebook mode.
func NewEncrypter(b cipher.Block) cipher.BlockMode {
	return &encrypter{
		b:         b,
		blockSize: b.BlockSize(),
	}
}

func (enc *encrypter) BlockSize() int { return enc.blockSize }

func (enc *encrypter) CryptBlocks(dst, src []byte) {
	if len(src)%enc.blockSize != 0 {
		panic("ecb: input not full blocks")
	} else if len(dst) < len(src) {
		panic("ecb: output smaller than input")
	}
	for len(src) > 0 {
		enc.b.Encrypt(dst, src[:enc.blockSize])
		src = src[enc.blockSize:]
		dst = dst[enc.blockSize:]
	}
}

type decrypter struct {
	b         cipher.Block
	blockSize int
}

// NewDecrypter returns a cipher.BlockMode which decrypts in
// electronic codebook mode.
func NewDecrypter(b cipher.Block) cipher.BlockMode {
	return &decrypter{
		b:         b,
		blockSize: b.BlockSize(),
	}
}

func (dec *decrypter) BlockSize() int { return dec.blockSize }

func (dec *decrypter) CryptBlocks(dst, src []byte) {
	if len(src)%dec.blockSize != 0 {
		panic("ecb: input not full blocks")
	} else if len(dst) < len(src) {
		panic("ecb: output smaller than input")
	}
	for len(src) > 0 {
		dec.b.Decrypt(dst, src[:dec.blockSize])
		src = src[dec.blockSize:]
		dst = dst[dec.blockSize:]
	}
}
