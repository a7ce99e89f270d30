// Package split implements the equal-share bill ledger. The per-person
// share is computed once at creation, rounded to 2 decimal places, and
// never recomputed; splits are global and never deleted.
package split

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"vibecore-bot/internal/model"
	"vibecore-bot/internal/store"
)

// IDLength is the length of the short split id.
const IDLength = 8

// Errors for the split ledger.
var (
	ErrBadCreateArgs  = errors.New("split needs \"<amount>|name1,name2,...\"")
	ErrInvalidAmount  = errors.New("amount must be a positive number")
	ErrNoParticipants = errors.New("at least one participant name is required")
	ErrNotFound       = errors.New("split not found")
	ErrUnknownName    = errors.New("no such participant in this split")
)

// Engine runs the ledger over the shared document store.
type Engine struct {
	store *store.Store
}

// New creates a split engine.
func New(st *store.Store) *Engine {
	return &Engine{store: st}
}

// RoundShare computes amount divided count ways, rounded to 2 decimals.
func RoundShare(amount float64, count int) float64 {
	return math.Round(amount/float64(count)*100) / 100
}

// Create parses "<amount>|name1,name2,..." and appends a new split with
// every participant unpaid. Non-positive or unparseable amounts and an
// empty name list fail with no state mutated.
func (e *Engine) Create(createdBy, raw string) (*model.Split, error) {
	var parts []string
	for _, p := range strings.Split(raw, "|") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return nil, ErrBadCreateArgs
	}

	amount, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return nil, ErrInvalidAmount
	}

	var names []string
	for _, n := range strings.Split(parts[1], ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return nil, ErrNoParticipants
	}

	participants := make([]*model.Participant, 0, len(names))
	for _, n := range names {
		participants = append(participants, &model.Participant{Name: n})
	}
	s := &model.Split{
		ID:           uuid.NewString()[:IDLength],
		Amount:       amount,
		PerPerson:    RoundShare(amount, len(names)),
		Participants: participants,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now().UnixMilli(),
	}

	uerr := e.store.Update(func(doc *model.Document) error {
		doc.Splits = append(doc.Splits, s)
		return nil
	})
	if uerr != nil {
		return nil, uerr
	}
	return s, nil
}

// Status returns a snapshot of the split with the given id.
func (e *Engine) Status(id string) (*model.Split, error) {
	var snap *model.Split
	e.store.View(func(doc *model.Document) {
		if s := doc.FindSplit(strings.TrimSpace(id)); s != nil {
			snap = &model.Split{
				ID:        s.ID,
				Amount:    s.Amount,
				PerPerson: s.PerPerson,
				CreatedBy: s.CreatedBy,
				CreatedAt: s.CreatedAt,
			}
			for _, p := range s.Participants {
				snap.Participants = append(snap.Participants, &model.Participant{Name: p.Name, Paid: p.Paid})
			}
		}
	})
	if snap == nil {
		return nil, ErrNotFound
	}
	return snap, nil
}

// MarkPaid flags a participant of a split as paid. Participant names
// match case-insensitively. Marking an already-paid participant is
// idempotent; unknown split ids and names fail with no state mutated.
func (e *Engine) MarkPaid(id, name string) (*model.Split, error) {
	var (
		snap    *model.Split
		outcome error
	)
	err := e.store.Update(func(doc *model.Document) error {
		s := doc.FindSplit(strings.TrimSpace(id))
		if s == nil {
			outcome = ErrNotFound
			return nil
		}
		want := strings.ToLower(strings.TrimSpace(name))
		var found *model.Participant
		for _, p := range s.Participants {
			if strings.ToLower(p.Name) == want {
				found = p
				break
			}
		}
		if found == nil {
			outcome = ErrUnknownName
			return nil
		}
		found.Paid = true

		snap = &model.Split{
			ID:        s.ID,
			Amount:    s.Amount,
			PerPerson: s.PerPerson,
			CreatedBy: s.CreatedBy,
			CreatedAt: s.CreatedAt,
		}
		for _, p := range s.Participants {
			snap.Participants = append(snap.Participants, &model.Participant{Name: p.Name, Paid: p.Paid})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if outcome != nil {
		return nil, outcome
	}
	return snap, nil
}
