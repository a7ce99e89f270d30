package prompts

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWouldYouRather_PicksFromBank(t *testing.T) {
	d := New(rand.New(rand.NewSource(1)))

	for i := 0; i < 20; i++ {
		assert.Contains(t, wyrBank, d.WouldYouRather())
	}
}

func TestTruthOrDare_PicksFromMatchingBank(t *testing.T) {
	d := New(rand.New(rand.NewSource(1)))

	seen := map[Kind]bool{}
	for i := 0; i < 50; i++ {
		kind, prompt := d.TruthOrDare()
		seen[kind] = true
		switch kind {
		case KindTruth:
			assert.Contains(t, truths, prompt)
		case KindDare:
			assert.Contains(t, dares, prompt)
		default:
			t.Fatalf("unexpected kind %q", kind)
		}
	}

	// 50 fair flips land on both sides.
	assert.True(t, seen[KindTruth])
	assert.True(t, seen[KindDare])
}
