// Package tictactoe implements the two-player 3×3 tic-tac-toe game.
// Turns are bound to player identities; a cell, once marked, never
// changes. Win detection is off by default to match the bot's legacy
// behavior and can be enabled via configuration.
package tictactoe

import (
	"errors"
	"fmt"
	"strings"

	"vibecore-bot/internal/model"
	"vibecore-bot/internal/store"
)

// Errors for the two-player game.
var (
	ErrNoGame      = errors.New("no active game in this chat")
	ErrNotYourTurn = errors.New("not your turn")
	ErrCellTaken   = errors.New("cell is already taken")
	ErrOutOfRange  = errors.New("row and column must be between 1 and 3")
)

// Engine runs two-player matches over the shared document store.
type Engine struct {
	store        *store.Store
	winDetection bool
}

// New creates a two-player engine. winDetection enables proper line
// detection; when false a match only ends on restart (legacy behavior).
func New(st *store.Store, winDetection bool) *Engine {
	return &Engine{store: st, winDetection: winDetection}
}

// Start unconditionally resets the chat's match to an empty grid with X
// to move, even when a game is already in progress. Returns the fresh
// match for rendering.
func (e *Engine) Start(chatID, playerX, playerO string) (*model.Match, error) {
	match := model.NewMatch(playerX, playerO)
	err := e.store.Update(func(doc *model.Document) error {
		doc.TicTacToe[chatID] = match
		return nil
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

// MoveResult reports a successful move.
type MoveResult struct {
	Match  *model.Match
	Winner model.Mark // non-empty only when win detection found a line
}

// Move marks the cell at (row, col), both zero-based, for the current
// turn's player and flips the turn. The requester must be the identity
// bound to the current turn's mark.
func (e *Engine) Move(chatID, requesterID string, row, col int) (*MoveResult, error) {
	var (
		res     *MoveResult
		outcome error
	)
	err := e.store.Update(func(doc *model.Document) error {
		match, ok := doc.TicTacToe[chatID]
		if !ok {
			outcome = ErrNoGame
			return nil
		}
		if row < 0 || row > 2 || col < 0 || col > 2 {
			outcome = ErrOutOfRange
			return nil
		}
		if match.Players[match.Turn] != requesterID {
			outcome = ErrNotYourTurn
			return nil
		}
		if match.Board[row][col] != model.MarkEmpty {
			outcome = ErrCellTaken
			return nil
		}

		placed := match.Turn
		match.Board[row][col] = placed
		if match.Turn == model.MarkX {
			match.Turn = model.MarkO
		} else {
			match.Turn = model.MarkX
		}

		res = &MoveResult{Match: match}
		if e.winDetection && hasLine(match.Board, placed) {
			res.Winner = placed
			delete(doc.TicTacToe, chatID)
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

// hasLine reports whether mark occupies a full row, column or diagonal.
func hasLine(b [3][3]model.Mark, mark model.Mark) bool {
	for i := 0; i < 3; i++ {
		if b[i][0] == mark && b[i][1] == mark && b[i][2] == mark {
			return true
		}
		if b[0][i] == mark && b[1][i] == mark && b[2][i] == mark {
			return true
		}
	}
	if b[0][0] == mark && b[1][1] == mark && b[2][2] == mark {
		return true
	}
	return b[0][2] == mark && b[1][1] == mark && b[2][0] == mark
}

// Render draws the grid the way the bot replies with it.
func Render(m *model.Match) string {
	rows := make([]string, 0, 3)
	for _, row := range m.Board {
		cells := []string{string(row[0]), string(row[1]), string(row[2])}
		rows = append(rows, strings.Join(cells, "|"))
	}
	return strings.Join(rows, "\n-----\n")
}

// Describe names the player holding a mark, e.g. for turn prompts.
func Describe(m *model.Match, mark model.Mark) string {
	return fmt.Sprintf("%s (%s)", m.Players[mark], mark)
}
