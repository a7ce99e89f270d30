// Package model property tests for the leaderboard JSON form.
package model

import (
	"encoding/json"
	"testing"

	"pgregory.net/rapid"
)

// TestLeaderboardRoundTripProperty: for any sequence of credits, JSON
// round-tripping preserves every total and the insertion order.
func TestLeaderboardRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lb := NewLeaderboard()
		ids := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,8}`), 1, 30).Draw(t, "ids")
		for _, id := range ids {
			lb.Credit(id, rapid.IntRange(0, 100).Draw(t, "points"))
		}

		data, err := json.Marshal(lb)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var back Leaderboard
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}

		want := lb.Top(-1)
		got := back.Top(-1)
		if len(want) != len(got) {
			t.Fatalf("entry count changed: %d != %d", len(want), len(got))
		}
		for i := range want {
			if want[i] != got[i] {
				t.Fatalf("entry %d changed: %+v != %+v", i, want[i], got[i])
			}
		}
	})
}
