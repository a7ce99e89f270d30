package poll

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibecore-bot/internal/store"
)

func newEngine(t testing.TB) *Engine {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	return New(st)
}

func TestCreate_ParsesPipePayload(t *testing.T) {
	e := newEngine(t)

	p, err := e.Create("creator", "Pick one | A | B | C")
	require.NoError(t, err)
	assert.Len(t, p.ID, IDLength)
	assert.Equal(t, "Pick one", p.Question)
	require.Len(t, p.Options, 3)
	assert.Equal(t, "A", p.Options[0].Text)
	assert.Equal(t, "creator", p.CreatedBy)
	for _, o := range p.Options {
		assert.Empty(t, o.Votes)
	}
}

func TestCreate_TooFewOptions(t *testing.T) {
	e := newEngine(t)

	for _, raw := range []string{"", "Question", "Question|onlyone", "  |  |  "} {
		_, err := e.Create("creator", raw)
		assert.ErrorIs(t, err, ErrTooFewOptions, "raw=%q", raw)
	}
	assert.Empty(t, e.List())
}

func TestList_Empty(t *testing.T) {
	e := newEngine(t)
	assert.Empty(t, e.List())
}

func TestVote_Errors(t *testing.T) {
	e := newEngine(t)
	p, err := e.Create("creator", "Q|A|B")
	require.NoError(t, err)

	_, err = e.Vote("u1", "")
	assert.ErrorIs(t, err, ErrBadVoteArgs)
	_, err = e.Vote("u1", p.ID)
	assert.ErrorIs(t, err, ErrBadVoteArgs)

	_, err = e.Vote("u1", "nosuchid 1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = e.Vote("u1", p.ID+" 0")
	assert.ErrorIs(t, err, ErrInvalidOption)
	_, err = e.Vote("u1", p.ID+" 3")
	assert.ErrorIs(t, err, ErrInvalidOption)
	_, err = e.Vote("u1", p.ID+" x")
	assert.ErrorIs(t, err, ErrInvalidOption)

	// Nothing was recorded.
	got := e.List()[0]
	assert.Empty(t, got.Options[0].Votes)
	assert.Empty(t, got.Options[1].Votes)
}

// TestVote_ChangeOfVote is the concrete scenario from the bot's help:
// voting again moves the voter, it never double-counts.
func TestVote_ChangeOfVote(t *testing.T) {
	e := newEngine(t)
	p, err := e.Create("creator", "Pick one|A|B")
	require.NoError(t, err)

	res, err := e.Vote("u1", fmt.Sprintf("%s 1", p.ID))
	require.NoError(t, err)
	assert.Equal(t, "A", res.OptionText)

	got := e.List()[0]
	assert.Equal(t, []string{"u1"}, got.Options[0].Votes)
	assert.Empty(t, got.Options[1].Votes)

	res, err = e.Vote("u1", fmt.Sprintf("%s 2", p.ID))
	require.NoError(t, err)
	assert.Equal(t, "B", res.OptionText)

	got = e.List()[0]
	assert.Empty(t, got.Options[0].Votes)
	assert.Equal(t, []string{"u1"}, got.Options[1].Votes)
}

func TestVote_MultipleVoters(t *testing.T) {
	e := newEngine(t)
	p, err := e.Create("creator", "Q|A|B")
	require.NoError(t, err)

	_, err = e.Vote("u1", p.ID+" 1")
	require.NoError(t, err)
	_, err = e.Vote("u2", p.ID+" 1")
	require.NoError(t, err)
	_, err = e.Vote("u3", p.ID+" 2")
	require.NoError(t, err)

	got := e.List()[0]
	assert.Equal(t, []string{"u1", "u2"}, got.Options[0].Votes)
	assert.Equal(t, []string{"u3"}, got.Options[1].Votes)
}
