// Package model defines the persisted data models for the VibeCore bot.
// Every entity lives inside one shared Document that is loaded and saved
// as a whole; JSON field names are part of the dashboard contract and
// must stay stable.
package model

// Document is the whole persisted state of the bot. The store owns the
// only live copy; components read and mutate it through the store.
type Document struct {
	TriviaRounds map[string]*TriviaRound `json:"triviaRounds"`
	TicTacToe    map[string]*Match       `json:"tictactoe"`
	SoloBoards   map[string]*SoloBoard   `json:"soloBoards"`
	Polls        []*Poll                 `json:"polls"`
	Splits       []*Split                `json:"splits"`
	Leaderboard  *Leaderboard            `json:"leaderboard"`
}

// NewDocument returns an empty document with all collections initialized.
func NewDocument() *Document {
	return &Document{
		TriviaRounds: make(map[string]*TriviaRound),
		TicTacToe:    make(map[string]*Match),
		SoloBoards:   make(map[string]*SoloBoard),
		Polls:        make([]*Poll, 0),
		Splits:       make([]*Split, 0),
		Leaderboard:  NewLeaderboard(),
	}
}

// Normalize fills in nil collections after loading an older or partial
// document from disk.
func (d *Document) Normalize() {
	if d.TriviaRounds == nil {
		d.TriviaRounds = make(map[string]*TriviaRound)
	}
	if d.TicTacToe == nil {
		d.TicTacToe = make(map[string]*Match)
	}
	if d.SoloBoards == nil {
		d.SoloBoards = make(map[string]*SoloBoard)
	}
	if d.Polls == nil {
		d.Polls = make([]*Poll, 0)
	}
	if d.Splits == nil {
		d.Splits = make([]*Split, 0)
	}
	if d.Leaderboard == nil {
		d.Leaderboard = NewLeaderboard()
	}
}

// FindPoll returns the poll with the given id, or nil.
func (d *Document) FindPoll(id string) *Poll {
	for _, p := range d.Polls {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindSplit returns the split with the given id, or nil.
func (d *Document) FindSplit(id string) *Split {
	for _, s := range d.Splits {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// TriviaRound is the single active quiz question of a chat.
type TriviaRound struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
	AskedBy     string   `json:"askedBy"`
	ExpiresAt   int64    `json:"expiresAt"` // unix milliseconds
}

// Mark is a tic-tac-toe cell state.
type Mark string

// Cell marks for both tic-tac-toe variants.
const (
	MarkEmpty Mark = " "
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

// Match is a two-player 3×3 tic-tac-toe game. Players maps each mark to
// the identity bound to it; Turn is always exactly one of X or O.
type Match struct {
	Board   [3][3]Mark      `json:"board"`
	Turn    Mark            `json:"turn"`
	Players map[Mark]string `json:"players"`
}

// NewMatch returns a fresh empty match with X to move.
func NewMatch(playerX, playerO string) *Match {
	m := &Match{
		Turn:    MarkX,
		Players: map[Mark]string{MarkX: playerX, MarkO: playerO},
	}
	for r := range m.Board {
		for c := range m.Board[r] {
			m.Board[r][c] = MarkEmpty
		}
	}
	return m
}

// SoloBoard is the flat 9-cell board of the solo-vs-bot variant.
type SoloBoard struct {
	Cells [9]Mark `json:"cells"`
}

// NewSoloBoard returns a fresh empty solo board.
func NewSoloBoard() *SoloBoard {
	b := &SoloBoard{}
	for i := range b.Cells {
		b.Cells[i] = MarkEmpty
	}
	return b
}

// Full reports whether no empty cell remains.
func (b *SoloBoard) Full() bool {
	for _, c := range b.Cells {
		if c == MarkEmpty {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of all empty cells.
func (b *SoloBoard) EmptyCells() []int {
	var out []int
	for i, c := range b.Cells {
		if c == MarkEmpty {
			out = append(out, i)
		}
	}
	return out
}

// Poll is a global multi-option poll. Votes hold voter identities; a
// voter appears in at most one option of a poll.
type Poll struct {
	ID        string        `json:"id"`
	Question  string        `json:"question"`
	Options   []*PollOption `json:"options"`
	CreatedBy string        `json:"createdBy"`
	CreatedAt int64         `json:"createdAt"`
}

// PollOption is one votable choice of a poll.
type PollOption struct {
	Text  string   `json:"text"`
	Votes []string `json:"votes"`
}

// Split is an equal-share bill split. PerPerson is computed once at
// creation and never recomputed.
type Split struct {
	ID           string         `json:"id"`
	Amount       float64        `json:"amount"`
	PerPerson    float64        `json:"perPerson"`
	Participants []*Participant `json:"participants"`
	CreatedBy    string         `json:"createdBy"`
	CreatedAt    int64          `json:"createdAt"`
}

// Participant is one named member of a split with a paid flag.
type Participant struct {
	Name string `json:"name"`
	Paid bool   `json:"paid"`
}
