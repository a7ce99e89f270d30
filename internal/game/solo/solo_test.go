package solo

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibecore-bot/internal/model"
	"vibecore-bot/internal/store"
)

func newEngine(t testing.TB, seed int64, winDetection bool) *Engine {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	return New(st, rand.New(rand.NewSource(seed)), winDetection)
}

func TestMove_FirstCallStartsBoard(t *testing.T) {
	e := newEngine(t, 1, false)

	// The supplied cell is ignored on the starting call, even when it
	// would be invalid.
	res, err := e.Move("chat1", 42)
	require.NoError(t, err)
	assert.True(t, res.Started)
	assert.False(t, res.Over)
	for _, c := range res.Board.Cells {
		assert.Equal(t, model.MarkEmpty, c)
	}
}

func TestMove_PlayerThenBot(t *testing.T) {
	e := newEngine(t, 1, false)
	_, err := e.Move("chat1", 0) // start
	require.NoError(t, err)

	res, err := e.Move("chat1", 5)
	require.NoError(t, err)
	assert.Equal(t, model.MarkX, res.Board.Cells[4])

	var bots int
	for _, c := range res.Board.Cells {
		if c == model.MarkO {
			bots++
		}
	}
	assert.Equal(t, 1, bots)
}

func TestMove_InvalidMoves(t *testing.T) {
	e := newEngine(t, 1, false)
	_, err := e.Move("chat1", 0) // start
	require.NoError(t, err)

	for _, cell := range []int{0, -1, 10} {
		_, err := e.Move("chat1", cell)
		assert.ErrorIs(t, err, ErrInvalidMove, "cell=%d", cell)
	}

	res, err := e.Move("chat1", 1)
	require.NoError(t, err)
	require.Equal(t, model.MarkX, res.Board.Cells[0])

	// Replaying an occupied cell leaves the board untouched.
	before := res.Board.Cells
	_, err = e.Move("chat1", 1)
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.Equal(t, before, res.Board.Cells)
}

func TestWinDetectionEnabled(t *testing.T) {
	// With only one empty cell left for the bot, its reply is forced,
	// so the game can be steered into a player win deterministically:
	// fill cells so X takes the 1-2-3 row on the final move.
	e := newEngine(t, 1, true)
	_, err := e.Move("chat1", 0) // start
	require.NoError(t, err)

	e.store.Update(func(doc *model.Document) error {
		b := doc.SoloBoards["chat1"]
		// X X _ / O O X / X O O with cell 3 free
		b.Cells = [9]model.Mark{
			model.MarkX, model.MarkX, model.MarkEmpty,
			model.MarkO, model.MarkO, model.MarkX,
			model.MarkX, model.MarkO, model.MarkO,
		}
		return nil
	})

	res, err := e.Move("chat1", 3)
	require.NoError(t, err)
	assert.True(t, res.Over)
	assert.Equal(t, model.MarkX, res.Winner)

	// Removed on win as well.
	next, err := e.Move("chat1", 1)
	require.NoError(t, err)
	assert.True(t, next.Started)
}

func TestBoardsAreIndependentPerChat(t *testing.T) {
	e := newEngine(t, 1, false)
	_, err := e.Move("chat1", 0)
	require.NoError(t, err)
	_, err = e.Move("chat2", 0)
	require.NoError(t, err)

	_, err = e.Move("chat1", 1)
	require.NoError(t, err)

	var b2 *model.SoloBoard
	e.store.View(func(doc *model.Document) { b2 = doc.SoloBoards["chat2"] })
	require.NotNil(t, b2)
	for _, c := range b2.Cells {
		assert.Equal(t, model.MarkEmpty, c)
	}
}

func TestRender(t *testing.T) {
	b := model.NewSoloBoard()
	b.Cells[0] = model.MarkX
	b.Cells[4] = model.MarkO

	assert.Equal(t, "❌ ⬜ ⬜ ⬜ ⭕ ⬜ ⬜ ⬜ ⬜", Render(b))
}
