// Package solo implements the solo-vs-bot tic-tac-toe variant: a flat
// 9-cell board where the player marks a cell and the bot answers with a
// uniformly random empty cell. The match ends when the board is full;
// without win detection enabled every finished match is reported as a
// full-board outcome.
package solo

import (
	"errors"
	"math/rand"
	"strings"

	"vibecore-bot/internal/model"
	"vibecore-bot/internal/store"
)

// ErrInvalidMove covers both out-of-range cell numbers and occupied
// cells; the board is left untouched.
var ErrInvalidMove = errors.New("invalid move: pick an empty cell 1-9")

// Engine runs solo boards over the shared document store.
type Engine struct {
	store        *store.Store
	rng          *rand.Rand
	winDetection bool
}

// New creates a solo engine.
func New(st *store.Store, rng *rand.Rand, winDetection bool) *Engine {
	return &Engine{store: st, rng: rng, winDetection: winDetection}
}

// MoveResult reports the board after a move command.
type MoveResult struct {
	Board   *model.SoloBoard
	Started bool       // true when this call created a fresh board
	Over    bool       // true when the match ended and was removed
	Winner  model.Mark // non-empty only with win detection enabled
}

// Move handles one move command. When the chat has no board, a fresh
// one is created and returned and the supplied cell number is ignored
// for that call. Otherwise cell must be 1-9 and target an empty cell;
// the player's mark is placed, then the bot marks a random empty cell
// if one remains. A full board ends the match and deletes it.
func (e *Engine) Move(chatID string, cell int) (*MoveResult, error) {
	var (
		res     *MoveResult
		outcome error
	)
	err := e.store.Update(func(doc *model.Document) error {
		board, ok := doc.SoloBoards[chatID]
		if !ok {
			board = model.NewSoloBoard()
			doc.SoloBoards[chatID] = board
			res = &MoveResult{Board: board, Started: true}
			return nil
		}

		if cell < 1 || cell > 9 || board.Cells[cell-1] != model.MarkEmpty {
			outcome = ErrInvalidMove
			return nil
		}

		board.Cells[cell-1] = model.MarkX
		res = &MoveResult{Board: board}

		if e.winDetection && winner(board) == model.MarkX {
			res.Over = true
			res.Winner = model.MarkX
			delete(doc.SoloBoards, chatID)
			return nil
		}

		if empty := board.EmptyCells(); len(empty) > 0 {
			board.Cells[empty[e.rng.Intn(len(empty))]] = model.MarkO
			if e.winDetection && winner(board) == model.MarkO {
				res.Over = true
				res.Winner = model.MarkO
				delete(doc.SoloBoards, chatID)
				return nil
			}
		}

		if board.Full() {
			res.Over = true
			delete(doc.SoloBoards, chatID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if outcome != nil {
		return nil, outcome
	}
	return res, nil
}

// winner returns the mark holding a full line, or MarkEmpty.
func winner(b *model.SoloBoard) model.Mark {
	lines := [8][3]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
		{0, 4, 8}, {2, 4, 6},
	}
	for _, ln := range lines {
		m := b.Cells[ln[0]]
		if m != model.MarkEmpty && m == b.Cells[ln[1]] && m == b.Cells[ln[2]] {
			return m
		}
	}
	return model.MarkEmpty
}

// Render draws the board as a single emoji row, the way the bot
// replies with it.
func Render(b *model.SoloBoard) string {
	cells := make([]string, 9)
	for i, c := range b.Cells {
		switch c {
		case model.MarkX:
			cells[i] = "❌"
		case model.MarkO:
			cells[i] = "⭕"
		default:
			cells[i] = "⬜"
		}
	}
	return strings.Join(cells, " ")
}
