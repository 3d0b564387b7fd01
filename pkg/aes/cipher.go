// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"crypto/cipher"
	"strconv"
)

// The AES block size in bytes.
const BlockSize = 16

// A cipher is an instance of AES-128 encryption using a particular key.
// The round-key schedule is derived once and never mutated, so a
// cipher is safe for concurrent use.
type aesCipher struct {
	rk [numRounds + 1][16]byte
}

type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes: invalid key size " + strconv.Itoa(int(k))
}

// NewCipher creates and returns a new cipher.Block.
// The key argument should be the AES key,
// 16 bytes long, to select AES-128.
func NewCipher(key []byte) (cipher.Block, error) {
	if k := len(key); k != 16 {
		return nil, KeySizeError(k)
	}
	return &aesCipher{rk: expandKey(key)}, nil
}

// PassphraseKey converts an ASCII passphrase into key material by
// truncating or zero-padding it to 16 bytes. No key derivation is
// applied; the passphrase bytes are the key.
func PassphraseKey(passphrase string) []byte {
	key := make([]byte, BlockSize)
	copy(key, passphrase)
	return key
}

func (c *aesCipher) BlockSize() int { return BlockSize }

func (c *aesCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	encryptBlock(&c.rk, dst, src)
}

func (c *aesCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	decryptBlock(&c.rk, dst, src)
}
