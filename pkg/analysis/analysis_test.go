package analysis

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/kargakis/cipherkit/pkg/xor"
)

// Sample English text for the frequency tables (Moby-Dick, ch. 1).
const corpus = "Call me Ishmael. Some years ago, never mind how long precisely, having " +
	"little or no money in my purse, and nothing particular to interest me on shore, " +
	"I thought I would sail about a little and see the watery part of the world. It " +
	"is a way I have of driving off the spleen and regulating the circulation. " +
	"Whenever I find myself growing grim about the mouth, whenever it is a damp, " +
	"drizzly November in my soul, I account it high time to get to sea as soon as I can."

// Recovery target (Nineteen Eighty-Four, ch. 1). Long enough for the
// key-size ranking to settle.
const plaintext = "It was a bright cold day in April, and the clocks were striking thirteen. " +
	"Winston Smith, his chin nuzzled into his breast in an effort to escape the vile " +
	"wind, slipped quickly through the glass doors of Victory Mansions, though not " +
	"quickly enough to prevent a swirl of gritty dust from entering along with him. " +
	"The hallway smelt of boiled cabbage and old rag mats. At one end of it a " +
	"coloured poster, too large for indoor display, had been tacked to the wall. " +
	"It depicted simply an enormous face, more than a metre wide: the face of a man " +
	"of about forty-five, with a heavy black moustache and ruggedly handsome " +
	"features. Winston made for the stairs. It was no use trying the lift. Even at " +
	"the best of times it was seldom working, and at present the electric current " +
	"was cut off during daylight hours. It was part of the economy drive in " +
	"preparation for Hate Week. The flat was seven flights up, and Winston, who " +
	"was thirty-nine and had a varicose ulcer above his right ankle, went slowly, " +
	"resting several times on the way. On each landing, opposite the lift-shaft, " +
	"the poster with the enormous face gazed from the wall. It was one of those " +
	"pictures which are so contrived that the eyes follow you about when you move."

func corpusScore(t *testing.T) func([]byte) int {
	t.Helper()
	score, err := ScoreFunc(strings.NewReader(corpus))
	if err != nil {
		t.Fatal(err)
	}
	return score
}

func TestBreakSingleXOR(t *testing.T) {
	score := corpusScore(t)

	ct := make([]byte, len(plaintext))
	xor.Single(ct, []byte(plaintext), 0x5a)

	if key := BreakSingleXOR(ct, score); key != 0x5a {
		t.Errorf("BreakSingleXOR = %#x, want 0x5a", key)
	}
}

func TestBreakRepeatingXOR(t *testing.T) {
	score := corpusScore(t)

	for _, key := range []string{"ICE", "YELLOW SUBMARINE", "Pa55w0rd"} {
		ct := make([]byte, len(plaintext))
		xor.Repeating(ct, []byte(plaintext), []byte(key))

		got := BreakRepeatingXOR(ct, score)
		// The ranking may settle on a multiple of the true key
		// size; the recovered key must still decrypt exactly.
		if len(got)%len(key) != 0 {
			t.Errorf("key %q: recovered size %d not a multiple of %d", key, len(got), len(key))
		}
		pt := make([]byte, len(ct))
		xor.Repeating(pt, ct, got)
		if !bytes.Equal(pt, []byte(plaintext)) {
			t.Errorf("key %q: recovered key %q does not decrypt the message", key, got)
		}
	}
}

func TestSymbolCounts(t *testing.T) {
	m, err := SymbolCounts(strings.NewReader("aab c"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[rune]int{'a': 2, 'b': 1, ' ': 2, 'c': 1}
	if len(m) != len(want) {
		t.Fatalf("SymbolCounts = %v, want %v", m, want)
	}
	for r, n := range want {
		if m[r] != n {
			t.Errorf("count(%q) = %d, want %d", r, m[r], n)
		}
	}
}

func TestCorpusScoreFunc(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "corpus.txt", []byte(corpus), 0644); err != nil {
		t.Fatal(err)
	}

	score, err := CorpusScoreFunc(fs, "corpus.txt")
	if err != nil {
		t.Fatal(err)
	}
	if english, noise := score([]byte("the sea")), score([]byte{0xfe, 0xfd, 0xfc}); english <= noise {
		t.Errorf("score(english) = %d, score(noise) = %d, want english > noise", english, noise)
	}

	if _, err := CorpusScoreFunc(fs, "missing.txt"); err == nil {
		t.Error("CorpusScoreFunc with a missing file succeeded")
	}
}
