package handler

import (
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"
)

// InfoHandler handles the stateless info commands: menu, ping, alive.
type InfoHandler struct {
	startedAt time.Time
}

// NewInfoHandler creates a new InfoHandler.
func NewInfoHandler() *InfoHandler {
	return &InfoHandler{startedAt: time.Now()}
}

const menuText = `╭━❮ *VibeCoreBot MENU* ❯━⊷
┃🎮 Games
┃  /trivia - Start a trivia round
┃  /answer <n> - Answer the trivia
┃  /wyr - Would you rather?
┃  /tod - Truth or dare
┃  /score - Your score + top 5
┃  .tic @user - Two-player Tic Tac Toe
┃  .move <r> <c> - Play your turn
┃  .ttt <n> - Tic Tac Toe vs the bot
┃
┃🔗 Linkup
┃  /poll create <q>|<o1>|<o2>
┃  /poll list
┃  /vote <id> <n>
┃  /split create <amt>|a,b,c
┃  /split status <id>
┃  /split pay <id> <name>
┃
┃🤖 Bot
┃  .menu  .ping  .alive
╰━━━━━━━━━━━━⪼`

// HandleMenu handles ".menu".
func (h *InfoHandler) HandleMenu(c tele.Context) error {
	return c.Reply(menuText)
}

// HandlePing handles ".ping".
func (h *InfoHandler) HandlePing(c tele.Context) error {
	start := time.Now()
	if err := c.Reply("🏓 Pong!"); err != nil {
		return err
	}
	return c.Send(fmt.Sprintf("Response time: %dms", time.Since(start).Milliseconds()))
}

// HandleAlive handles ".alive".
func (h *InfoHandler) HandleAlive(c tele.Context) error {
	return c.Reply(fmt.Sprintf("VibeCoreBot is online! Up for %s.", time.Since(h.startedAt).Round(time.Second)))
}
