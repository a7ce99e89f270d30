// Package trivia implements the single-question-per-chat quiz game.
// A chat holds at most one active round; the first correct answer wins
// the points and ends the round, wrong answers cost nothing, and expiry
// is checked lazily on the next answer rather than by a timer.
package trivia

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"vibecore-bot/internal/model"
	"vibecore-bot/internal/store"
)

const (
	// DefaultExpiry is how long a round stays answerable.
	DefaultExpiry = 2 * time.Minute

	// DefaultReward is the points credited for the first correct answer.
	DefaultReward = 5
)

// Errors for the trivia game.
var (
	ErrNoRound       = errors.New("no trivia round is running in this chat")
	ErrExpired       = errors.New("trivia round has expired")
	ErrInvalidOption = errors.New("answer must be a valid option number")
)

// Question is one entry of the fixed question bank.
type Question struct {
	Text        string
	Options     []string
	AnswerIndex int
}

// questionBank is the built-in question pool.
var questionBank = []Question{
	{
		Text:        "Which app popularized 'streaks' and made people lose sleep over daily snaps?",
		Options:     []string{"Twitter", "Snapchat", "Tumblr", "Telegram"},
		AnswerIndex: 1,
	},
	{
		Text:        "Which language is the web primarily built with?",
		Options:     []string{"Python", "C++", "JavaScript", "Rust"},
		AnswerIndex: 2,
	},
	{
		Text:        "What's the file extension for Node.js packages?",
		Options:     []string{".java", ".json", ".node", ".js"},
		AnswerIndex: 3,
	},
	{
		Text:        "Which planet has the most moons discovered so far?",
		Options:     []string{"Jupiter", "Saturn", "Neptune", "Mars"},
		AnswerIndex: 1,
	},
	{
		Text:        "What does 'HTTP' stand for?",
		Options:     []string{"HyperText Transfer Protocol", "High Throughput Transport Protocol", "Hyperlink Text Tunneling Protocol", "Host Transfer Type Protocol"},
		AnswerIndex: 0,
	},
}

// Config holds trivia configuration.
type Config struct {
	Expiry time.Duration
	Reward int
}

// Engine runs trivia rounds over the shared document store.
type Engine struct {
	store  *store.Store
	rng    *rand.Rand
	expiry time.Duration
	reward int
	bank   []Question
}

// New creates a trivia engine. A nil config uses the defaults.
func New(st *store.Store, rng *rand.Rand, cfg *Config) *Engine {
	expiry := DefaultExpiry
	reward := DefaultReward
	if cfg != nil {
		if cfg.Expiry != 0 {
			expiry = cfg.Expiry
		}
		if cfg.Reward > 0 {
			reward = cfg.Reward
		}
	}
	return &Engine{
		store:  st,
		rng:    rng,
		expiry: expiry,
		reward: reward,
		bank:   questionBank,
	}
}

// Reward returns the points awarded for a correct answer.
func (e *Engine) Reward() int {
	return e.reward
}

// Start samples a question uniformly at random and installs a fresh
// round for the chat, replacing any previous round (expired or not).
// It returns the created round for the caller to render.
func (e *Engine) Start(chatID, askerID string) (*model.TriviaRound, error) {
	q := e.bank[e.rng.Intn(len(e.bank))]
	round := &model.TriviaRound{
		ID:          uuid.NewString(),
		Question:    q.Text,
		Options:     append([]string(nil), q.Options...),
		AnswerIndex: q.AnswerIndex,
		AskedBy:     askerID,
		ExpiresAt:   time.Now().Add(e.expiry).UnixMilli(),
	}
	err := e.store.Update(func(doc *model.Document) error {
		doc.TriviaRounds[chatID] = round
		return nil
	})
	if err != nil {
		return nil, err
	}
	return round, nil
}

// AnswerResult reports the outcome of a guess that reached an active,
// unexpired round.
type AnswerResult struct {
	Correct bool
	Points  int // credited points, 0 on a wrong guess
	Round   *model.TriviaRound
}

// Answer checks a guess against the chat's active round.
//
// It fails with ErrNoRound when no round exists, ErrExpired when the
// round's deadline has passed (the round is deleted as a side effect),
// and ErrInvalidOption when arg does not parse to an integer within
// [1, optionCount]. A correct guess credits the answering identity and
// deletes the round, so the next answer sees ErrNoRound; a wrong guess
// leaves the round active with no penalty.
func (e *Engine) Answer(chatID, userID, arg string) (*AnswerResult, error) {
	var (
		res     *AnswerResult
		outcome error
	)
	err := e.store.Update(func(doc *model.Document) error {
		round, ok := doc.TriviaRounds[chatID]
		if !ok {
			outcome = ErrNoRound
			return nil
		}
		if time.Now().UnixMilli() > round.ExpiresAt {
			// The expiry deletion must persist even though the caller
			// gets an error, so it is reported via outcome, not err.
			delete(doc.TriviaRounds, chatID)
			outcome = ErrExpired
			return nil
		}

		first := arg
		if i := strings.IndexByte(first, ' '); i >= 0 {
			first = first[:i]
		}
		pick, parseErr := strconv.Atoi(strings.TrimSpace(first))
		if parseErr != nil || pick < 1 || pick > len(round.Options) {
			outcome = ErrInvalidOption
			return nil
		}

		if pick-1 == round.AnswerIndex {
			doc.Leaderboard.Credit(userID, e.reward)
			delete(doc.TriviaRounds, chatID)
			res = &AnswerResult{Correct: true, Points: e.reward, Round: round}
			return nil
		}
		res = &AnswerResult{Correct: false, Round: round}
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
