// Package poll implements multi-option polls with change-of-vote
// semantics: a voter's identity lives in at most one option's vote set,
// enforced by removing the voter from every option before recording
// the new choice. Polls are global and never deleted.
package poll

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"vibecore-bot/internal/model"
	"vibecore-bot/internal/store"
)

// IDLength is the length of the short poll id.
const IDLength = 8

// Errors for the poll engine.
var (
	ErrTooFewOptions = errors.New("a poll needs a question and at least 2 options")
	ErrBadVoteArgs   = errors.New("vote needs a poll id and an option number")
	ErrNotFound      = errors.New("poll not found")
	ErrInvalidOption = errors.New("invalid option number")
)

// Engine runs polls over the shared document store.
type Engine struct {
	store *store.Store
}

// New creates a poll engine.
func New(st *store.Store) *Engine {
	return &Engine{store: st}
}

// Create parses a pipe-delimited "question|opt1|opt2[|...]" payload and
// appends a new poll. Fewer than two options (after trimming empty
// parts) is ErrTooFewOptions with no state mutated.
func (e *Engine) Create(createdBy, raw string) (*model.Poll, error) {
	var parts []string
	for _, p := range strings.Split(raw, "|") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	// parts[0] is the question, so at least 3 parts are needed.
	if len(parts) < 3 {
		return nil, ErrTooFewOptions
	}

	options := make([]*model.PollOption, 0, len(parts)-1)
	for _, text := range parts[1:] {
		options = append(options, &model.PollOption{Text: text, Votes: []string{}})
	}
	p := &model.Poll{
		ID:        uuid.NewString()[:IDLength],
		Question:  parts[0],
		Options:   options,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UnixMilli(),
	}

	err := e.store.Update(func(doc *model.Document) error {
		doc.Polls = append(doc.Polls, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns a snapshot of every poll with its current vote counts.
func (e *Engine) List() []*model.Poll {
	var out []*model.Poll
	e.store.View(func(doc *model.Document) {
		out = make([]*model.Poll, 0, len(doc.Polls))
		for _, p := range doc.Polls {
			cp := &model.Poll{
				ID:        p.ID,
				Question:  p.Question,
				CreatedBy: p.CreatedBy,
				CreatedAt: p.CreatedAt,
			}
			for _, o := range p.Options {
				cp.Options = append(cp.Options, &model.PollOption{
					Text:  o.Text,
					Votes: append([]string(nil), o.Votes...),
				})
			}
			out = append(out, cp)
		}
	})
	return out
}

// VoteResult reports a recorded vote.
type VoteResult struct {
	PollID     string
	OptionText string
}

// Vote parses "<pollId> <optionNumber>" and records the voter's choice.
// The voter is first removed from every option of the poll, then added
// to the target option, so changing one's vote is the same operation as
// voting. Unknown polls and out-of-range options mutate nothing.
func (e *Engine) Vote(voterID, args string) (*VoteResult, error) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return nil, ErrBadVoteArgs
	}
	pollID := fields[0]
	optionNum, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, ErrInvalidOption
	}

	var (
		res     *VoteResult
		outcome error
	)
	uerr := e.store.Update(func(doc *model.Document) error {
		p := doc.FindPoll(pollID)
		if p == nil {
			outcome = ErrNotFound
			return nil
		}
		if optionNum < 1 || optionNum > len(p.Options) {
			outcome = ErrInvalidOption
			return nil
		}

		for _, o := range p.Options {
			kept := o.Votes[:0]
			for _, v := range o.Votes {
				if v != voterID {
					kept = append(kept, v)
				}
			}
			o.Votes = kept
		}
		target := p.Options[optionNum-1]
		target.Votes = append(target.Votes, voterID)

		res = &VoteResult{PollID: p.ID, OptionText: target.Text}
		return nil
	})
	if uerr != nil {
		return nil, uerr
	}
	if outcome != nil {
		return nil, outcome
	}
	return res, nil
}
