package handler

import (
	"errors"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"vibecore-bot/internal/model"
	"vibecore-bot/internal/poll"
	"vibecore-bot/internal/split"
)

// LinkupHandler handles polls, voting and bill splits.
type LinkupHandler struct {
	polls  *poll.Engine
	splits *split.Engine
}

// NewLinkupHandler creates a new LinkupHandler.
func NewLinkupHandler(polls *poll.Engine, splits *split.Engine) *LinkupHandler {
	return &LinkupHandler{polls: polls, splits: splits}
}

// HandlePoll handles "/poll create <q>|<o1>|<o2>" and "/poll list".
func (h *LinkupHandler) HandlePoll(c tele.Context) error {
	payload := strings.TrimSpace(c.Message().Payload)
	sub, rest, _ := strings.Cut(payload, " ")
	switch sub {
	case "create":
		return h.handlePollCreate(c, rest)
	case "list", "":
		return h.handlePollList(c)
	default:
		return c.Reply("Use: /poll create <question>|<option1>|<option2> or /poll list")
	}
}

func (h *LinkupHandler) handlePollCreate(c tele.Context, raw string) error {
	p, err := h.polls.Create(senderIdentity(c), raw)
	switch {
	case errors.Is(err, poll.ErrTooFewOptions):
		return c.Reply("Use: /poll create Question | option1 | option2 [, option3]. Need at least 2 options.")
	case err != nil:
		return replyError(c, err, "poll.create")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Poll created: *%s*\n%s\nOptions:\n", p.ID, p.Question)
	for i, o := range p.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, o.Text)
	}
	fmt.Fprintf(&b, "Vote with: /vote %s <optionNumber>", p.ID)
	return c.Reply(b.String())
}

func (h *LinkupHandler) handlePollList(c tele.Context) error {
	polls := h.polls.List()
	if len(polls) == 0 {
		return c.Reply("No polls active.")
	}
	var b strings.Builder
	b.WriteString("*Active polls:*\n")
	for _, p := range polls {
		fmt.Fprintf(&b, "\n%s. %s\n", p.ID, p.Question)
		for i, o := range p.Options {
			fmt.Fprintf(&b, "%d. %s — %d votes\n", i+1, o.Text, len(o.Votes))
		}
	}
	return c.Reply(b.String())
}

// HandleVote handles "/vote <pollId> <optionNumber>".
func (h *LinkupHandler) HandleVote(c tele.Context) error {
	res, err := h.polls.Vote(senderIdentity(c), c.Message().Payload)
	switch {
	case errors.Is(err, poll.ErrBadVoteArgs):
		return c.Reply("Use: /vote <pollId> <optionNumber>")
	case errors.Is(err, poll.ErrNotFound):
		return c.Reply("Poll not found.")
	case errors.Is(err, poll.ErrInvalidOption):
		return c.Reply("Invalid option number.")
	case err != nil:
		return replyError(c, err, "poll.vote")
	}
	return c.Reply(fmt.Sprintf("Vote registered for %q in poll %s.", res.OptionText, res.PollID))
}

// HandleSplit handles "/split create <amount>|names", "/split status
// <id>" and "/split pay <id> <name>".
func (h *LinkupHandler) HandleSplit(c tele.Context) error {
	payload := strings.TrimSpace(c.Message().Payload)
	sub, rest, _ := strings.Cut(payload, " ")
	switch sub {
	case "create":
		return h.handleSplitCreate(c, rest)
	case "status":
		return h.handleSplitStatus(c, rest)
	case "pay":
		return h.handleSplitPay(c, rest)
	default:
		return c.Reply("Use: /split create <amount>|name1,name2,... — /split status <id> — /split pay <id> <name>")
	}
}

func (h *LinkupHandler) handleSplitCreate(c tele.Context, raw string) error {
	s, err := h.splits.Create(senderIdentity(c), raw)
	switch {
	case errors.Is(err, split.ErrBadCreateArgs):
		return c.Reply("Use: /split create <amount>|name1,name2,...")
	case errors.Is(err, split.ErrInvalidAmount), errors.Is(err, split.ErrNoParticipants):
		return c.Reply("Invalid amount or participants.")
	case err != nil:
		return replyError(c, err, "split.create")
	}

	names := make([]string, 0, len(s.Participants))
	for _, p := range s.Participants {
		names = append(names, p.Name)
	}
	return c.Reply(fmt.Sprintf(
		"Split created: %s\nTotal: %g\nPer person: %.2f\nParticipants: %s\nMark paid using: /split pay %s <name>",
		s.ID, s.Amount, s.PerPerson, strings.Join(names, ", "), s.ID,
	))
}

func (h *LinkupHandler) handleSplitStatus(c tele.Context, id string) error {
	s, err := h.splits.Status(id)
	switch {
	case errors.Is(err, split.ErrNotFound):
		return c.Reply("Split not found.")
	case err != nil:
		return replyError(c, err, "split.status")
	}
	return c.Reply(renderSplit(s))
}

func (h *LinkupHandler) handleSplitPay(c tele.Context, rest string) error {
	id, name, ok := strings.Cut(strings.TrimSpace(rest), " ")
	if !ok {
		return c.Reply("Use: /split pay <id> <name>")
	}
	s, err := h.splits.MarkPaid(id, name)
	switch {
	case errors.Is(err, split.ErrNotFound):
		return c.Reply("Split not found.")
	case errors.Is(err, split.ErrUnknownName):
		return c.Reply("No such participant in this split.")
	case err != nil:
		return replyError(c, err, "split.pay")
	}
	return c.Reply(renderSplit(s))
}

func renderSplit(s *model.Split) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Split %s\nTotal: %g\nPer: %.2f\n", s.ID, s.Amount, s.PerPerson)
	for _, p := range s.Participants {
		marker := "❌ unpaid"
		if p.Paid {
			marker = "✅ paid"
		}
		fmt.Fprintf(&b, "%s — %s\n", p.Name, marker)
	}
	return b.String()
}
