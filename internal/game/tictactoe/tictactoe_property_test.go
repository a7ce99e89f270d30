// Package tictactoe property tests for turn alternation and cell
// immutability.
package tictactoe

import (
	"path/filepath"
	"testing"

	"pgregory.net/rapid"

	"vibecore-bot/internal/model"
	"vibecore-bot/internal/store"
)

// TestTurnAlternationProperty: for any sequence of valid moves, the
// turn marker alternates strictly between X and O and no cell ever
// changes once marked.
func TestTurnAlternationProperty(outer *testing.T) {
	rapid.Check(outer, func(t *rapid.T) {
		st, err := store.Open(filepath.Join(outer.TempDir(), "db.json"))
		if err != nil {
			t.Fatalf("store: %v", err)
		}
		e := New(st, false)
		players := map[model.Mark]string{model.MarkX: "alice", model.MarkO: "bob"}

		m, err := e.Start("chat1", players[model.MarkX], players[model.MarkO])
		if err != nil {
			t.Fatalf("start: %v", err)
		}

		moves := rapid.IntRange(1, 9).Draw(t, "moves")
		turn := model.MarkX
		board := m.Board

		for i := 0; i < moves; i++ {
			var empty [][2]int
			for r := 0; r < 3; r++ {
				for c := 0; c < 3; c++ {
					if board[r][c] == model.MarkEmpty {
						empty = append(empty, [2]int{r, c})
					}
				}
			}
			if len(empty) == 0 {
				break
			}
			cell := empty[rapid.IntRange(0, len(empty)-1).Draw(t, "cell")]

			res, err := e.Move("chat1", players[turn], cell[0], cell[1])
			if err != nil {
				t.Fatalf("move %d: %v", i, err)
			}

			// The placed cell carries the mover's mark; every other
			// cell is unchanged.
			for r := 0; r < 3; r++ {
				for c := 0; c < 3; c++ {
					want := board[r][c]
					if r == cell[0] && c == cell[1] {
						want = turn
					}
					if res.Match.Board[r][c] != want {
						t.Fatalf("cell (%d,%d) changed unexpectedly", r, c)
					}
				}
			}

			// Strict alternation.
			next := model.MarkO
			if turn == model.MarkO {
				next = model.MarkX
			}
			if res.Match.Turn != next {
				t.Fatalf("turn did not alternate: placed %s, now %s", turn, res.Match.Turn)
			}

			board = res.Match.Board
			turn = next
		}
	})
}
