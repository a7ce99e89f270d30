package handler

import (
	"errors"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"vibecore-bot/internal/game/prompts"
	"vibecore-bot/internal/game/trivia"
	"vibecore-bot/internal/model"
	"vibecore-bot/internal/service"
)

// GamesHandler handles trivia, the prompt dispensers and the score
// command.
type GamesHandler struct {
	trivia      *trivia.Engine
	prompts     *prompts.Dispenser
	leaderboard *service.LeaderboardService
}

// NewGamesHandler creates a new GamesHandler.
func NewGamesHandler(tr *trivia.Engine, pr *prompts.Dispenser, lb *service.LeaderboardService) *GamesHandler {
	return &GamesHandler{trivia: tr, prompts: pr, leaderboard: lb}
}

// HandleTrivia handles /trivia: starts a round, replacing any previous
// one for this chat.
func (h *GamesHandler) HandleTrivia(c tele.Context) error {
	round, err := h.trivia.Start(chatIdentity(c), senderIdentity(c))
	if err != nil {
		return replyError(c, err, "trivia.start")
	}
	return c.Reply(renderRound(round, h.trivia.Reward()))
}

// HandleAnswer handles /answer <optionNumber>.
func (h *GamesHandler) HandleAnswer(c tele.Context) error {
	res, err := h.trivia.Answer(chatIdentity(c), senderIdentity(c), c.Message().Payload)
	switch {
	case errors.Is(err, trivia.ErrNoRound):
		return c.Reply("No trivia is running. Send /trivia to start.")
	case errors.Is(err, trivia.ErrExpired):
		return c.Reply("Trivia expired — send /trivia for another one.")
	case errors.Is(err, trivia.ErrInvalidOption):
		return c.Reply("Send /answer <optionNumber> — valid number.")
	case err != nil:
		return replyError(c, err, "trivia.answer")
	}
	if res.Correct {
		return c.Reply(fmt.Sprintf("✅ Correct! %s got +%d points.", displayName(c), res.Points))
	}
	return c.Reply("Nah — wrong answer. Try again next time.")
}

// HandleWYR handles /wyr.
func (h *GamesHandler) HandleWYR(c tele.Context) error {
	q := h.prompts.WouldYouRather()
	return c.Reply(fmt.Sprintf("🤔 *Would you rather?*\n\n%s\n\nReply with your answer and why. Keep it spicy.", q))
}

// HandleTruthOrDare handles /tod.
func (h *GamesHandler) HandleTruthOrDare(c tele.Context) error {
	kind, prompt := h.prompts.TruthOrDare()
	return c.Reply(fmt.Sprintf("🎲 *Truth or Dare* — %s\n\n%s", kind, prompt))
}

// HandleScore handles /score: the sender's total plus the top 5.
func (h *GamesHandler) HandleScore(c tele.Context) error {
	score := h.leaderboard.Score(senderIdentity(c))

	var b strings.Builder
	fmt.Fprintf(&b, "Your score: *%d pts*\n\n🏆 *Leaderboard (top 5)*\n", score)
	for i, e := range h.leaderboard.Top(5) {
		fmt.Fprintf(&b, "%d. %s — %d pts\n", i+1, e.UserID, e.Points)
	}
	return c.Reply(b.String())
}

// renderRound formats a trivia round as the question with numbered
// options and answering instructions.
func renderRound(round *model.TriviaRound, reward int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 *Trivia Time!* 🎯\n%s\n\n", round.Question)
	for i, opt := range round.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
	}
	fmt.Fprintf(&b, "\nReply with /answer <optionNumber> — first correct gets +%d points.", reward)
	return b.String()
}
