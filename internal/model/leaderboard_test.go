package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_CreditAndScore(t *testing.T) {
	lb := NewLeaderboard()

	assert.Equal(t, 0, lb.Score("nobody"))

	lb.Credit("alice", 5)
	lb.Credit("alice", 5)
	lb.Credit("bob", 5)

	assert.Equal(t, 10, lb.Score("alice"))
	assert.Equal(t, 5, lb.Score("bob"))
	assert.Equal(t, 2, lb.Len())
}

// TestLeaderboard_TopTieBreak verifies descending order with ties going
// to whoever entered the board first.
func TestLeaderboard_TopTieBreak(t *testing.T) {
	lb := NewLeaderboard()
	lb.Credit("first", 5)
	lb.Credit("second", 5)
	lb.Credit("third", 10)

	top := lb.Top(3)
	require.Len(t, top, 3)
	assert.Equal(t, "third", top[0].UserID)
	assert.Equal(t, "first", top[1].UserID)
	assert.Equal(t, "second", top[2].UserID)
}

func TestLeaderboard_TopTruncates(t *testing.T) {
	lb := NewLeaderboard()
	lb.Credit("a", 1)
	lb.Credit("b", 2)
	lb.Credit("c", 3)

	top := lb.Top(2)
	require.Len(t, top, 2)
	assert.Equal(t, "c", top[0].UserID)
	assert.Equal(t, "b", top[1].UserID)

	assert.Len(t, lb.Top(10), 3)
}

// TestLeaderboard_JSONInsertionOrder checks the dashboard contract: the
// JSON form is a plain identity→points object in insertion order, and
// it round-trips without reordering.
func TestLeaderboard_JSONInsertionOrder(t *testing.T) {
	lb := NewLeaderboard()
	lb.Credit("zed", 5)
	lb.Credit("alice", 10)
	lb.Credit("mid", 7)

	data, err := json.Marshal(lb)
	require.NoError(t, err)
	assert.Equal(t, `{"zed":5,"alice":10,"mid":7}`, string(data))

	var back Leaderboard
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 5, back.Score("zed"))
	assert.Equal(t, 10, back.Score("alice"))
	assert.Equal(t, 7, back.Score("mid"))

	again, err := json.Marshal(&back)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestLeaderboard_UnmarshalRejectsNonObject(t *testing.T) {
	var lb Leaderboard
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &lb))
}

// TestLeaderboard_UnmarshalNull treats null like a missing leaderboard
// so hand-edited documents still load.
func TestLeaderboard_UnmarshalNull(t *testing.T) {
	var lb Leaderboard
	require.NoError(t, json.Unmarshal([]byte(`null`), &lb))
	assert.Equal(t, 0, lb.Len())

	lb.Credit("alice", 5)
	assert.Equal(t, 5, lb.Score("alice"))
}
