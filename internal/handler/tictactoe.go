package handler

import (
	"errors"
	"fmt"
	"strconv"

	tele "gopkg.in/telebot.v3"

	"vibecore-bot/internal/game/solo"
	"vibecore-bot/internal/game/tictactoe"
)

// TicTacToeHandler handles both tic-tac-toe variants: the two-player
// .tic/.move commands and the solo .ttt command.
type TicTacToeHandler struct {
	duel *tictactoe.Engine
	solo *solo.Engine
}

// NewTicTacToeHandler creates a new TicTacToeHandler.
func NewTicTacToeHandler(duel *tictactoe.Engine, soloEngine *solo.Engine) *TicTacToeHandler {
	return &TicTacToeHandler{duel: duel, solo: soloEngine}
}

// HandleStart handles ".tic @opponent": (re)starts a two-player match
// between the sender (X) and the mentioned user (O).
func (h *TicTacToeHandler) HandleStart(c tele.Context, args []string) error {
	opponent := mentionedIdentity(c)
	if opponent == "" {
		return c.Reply("Mention a user to play Tic Tac Toe with.")
	}
	match, err := h.duel.Start(chatIdentity(c), senderIdentity(c), opponent)
	if err != nil {
		return replyError(c, err, "tictactoe.start")
	}
	return c.Reply("New Tic Tac Toe started!\n" + tictactoe.Render(match))
}

// HandleMove handles ".move <row> <col>" with one-based coordinates.
func (h *TicTacToeHandler) HandleMove(c tele.Context, args []string) error {
	if len(args) != 2 {
		return c.Reply("Usage: .move <row> <col>")
	}
	row, err1 := strconv.Atoi(args[0])
	col, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return c.Reply("Usage: .move <row> <col>")
	}

	res, err := h.duel.Move(chatIdentity(c), senderIdentity(c), row-1, col-1)
	switch {
	case errors.Is(err, tictactoe.ErrNoGame):
		return c.Reply("No active game.")
	case errors.Is(err, tictactoe.ErrNotYourTurn):
		return c.Reply("Not your turn.")
	case errors.Is(err, tictactoe.ErrCellTaken):
		return c.Reply("Cell taken.")
	case errors.Is(err, tictactoe.ErrOutOfRange):
		return c.Reply("Row and column must be between 1 and 3.")
	case err != nil:
		return replyError(c, err, "tictactoe.move")
	}

	board := tictactoe.Render(res.Match)
	if res.Winner != "" {
		return c.Reply(fmt.Sprintf("%s\n🏆 %s wins!", board, tictactoe.Describe(res.Match, res.Winner)))
	}
	return c.Reply(board)
}

// HandleSolo handles ".ttt [cell]": first call starts a board, later
// calls play the numbered cell against the bot.
func (h *TicTacToeHandler) HandleSolo(c tele.Context, args []string) error {
	cell := 0
	if len(args) > 0 {
		// Unparseable cell numbers stay 0 and fall through to the
		// engine's invalid-move reply on an existing board.
		cell, _ = strconv.Atoi(args[0])
	}

	res, err := h.solo.Move(chatIdentity(c), cell)
	switch {
	case errors.Is(err, solo.ErrInvalidMove):
		return c.Reply("Invalid move! Pick a number 1-9 on an empty square.")
	case err != nil:
		return replyError(c, err, "solo.move")
	}

	if res.Started {
		return c.Reply("🎮 TicTacToe started!\n" + solo.Render(res.Board))
	}
	board := solo.Render(res.Board)
	if res.Over {
		switch res.Winner {
		case "X":
			return c.Reply(board + "\n🎉 You win!")
		case "O":
			return c.Reply(board + "\n🤖 Bot wins!")
		default:
			return c.Reply(board + "\nGame Over! Board is full.")
		}
	}
	return c.Reply(board)
}
