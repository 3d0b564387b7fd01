package xor

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// cryptopals 1.2
func TestBytes(t *testing.T) {
	a, _ := hex.DecodeString("1c0111001f010100061a024b53535009181c")
	b, _ := hex.DecodeString("686974207468652062756c6c277320657965")
	want, _ := hex.DecodeString("746865206b696420646f6e277420706c6179")

	dst := make([]byte, len(a))
	if n := Bytes(dst, a, b); n != len(a) {
		t.Fatalf("Bytes wrote %d bytes, want %d", n, len(a))
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("Bytes: got %x, want %x", dst, want)
	}
}

func TestSingle(t *testing.T) {
	src := []byte("hello")
	dst := make([]byte, len(src))
	Single(dst, src, 0x42)
	Single(dst, dst, 0x42)
	if !bytes.Equal(dst, src) {
		t.Errorf("Single applied twice: got %q, want %q", dst, src)
	}
}

// cryptopals 1.5
func TestRepeating(t *testing.T) {
	src := []byte("Burning 'em, if you ain't quick and nimble\nI go crazy when I hear a cymbal")
	want, _ := hex.DecodeString(
		"0b3637272a2b2e63622c2e69692a23693a2a3c6324202d623d63343c2a26226324272765272a" +
			"282b2f20430a652e2c652a3124333a653e2b2027630c692b20283165286326302e27282f")

	dst := make([]byte, len(src))
	Repeating(dst, src, []byte("ICE"))
	if !bytes.Equal(dst, want) {
		t.Errorf("Repeating: got %x, want %x", dst, want)
	}
}

// cryptopals 1.6
func TestHamming(t *testing.T) {
	if n := Hamming([]byte("this is a test"), []byte("wokka wokka!!!")); n != 37 {
		t.Errorf("Hamming = %d, want 37", n)
	}
	if n := Hamming([]byte("same"), []byte("same")); n != 0 {
		t.Errorf("Hamming of equal inputs = %d, want 0", n)
	}
}
