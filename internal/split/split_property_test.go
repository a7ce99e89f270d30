// Package split property tests for the equal-share invariant.
package split

import (
	"fmt"
	"math"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"

	"vibecore-bot/internal/store"
)

// TestShareInvariantProperty: perPerson * participantCount equals the
// amount to within one cent per participant (each share is rounded by
// at most half a cent).
func TestShareInvariantProperty(outer *testing.T) {
	rapid.Check(outer, func(t *rapid.T) {
		st, err := store.Open(filepath.Join(outer.TempDir(), "db.json"))
		if err != nil {
			t.Fatalf("store: %v", err)
		}
		e := New(st)

		cents := rapid.IntRange(1, 10_000_00).Draw(t, "cents")
		amount := float64(cents) / 100
		count := rapid.IntRange(1, 20).Draw(t, "count")

		names := ""
		for i := 0; i < count; i++ {
			if i > 0 {
				names += ","
			}
			names += fmt.Sprintf("p%d", i)
		}

		s, err := e.Create("creator", fmt.Sprintf("%.2f|%s", amount, names))
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		diff := math.Abs(s.PerPerson*float64(count) - amount)
		if diff > 0.01*float64(count)+1e-9 {
			t.Fatalf("share drift too large: amount=%.2f count=%d perPerson=%.2f diff=%.4f",
				amount, count, s.PerPerson, diff)
		}

		// The share is a clean 2-decimal value.
		scaled := s.PerPerson * 100
		if math.Abs(scaled-math.Round(scaled)) > 1e-6 {
			t.Fatalf("perPerson %.6f is not rounded to 2 decimals", s.PerPerson)
		}
	})
}
