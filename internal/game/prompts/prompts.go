// Package prompts provides the stateless would-you-rather and
// truth-or-dare dispensers: a random pick from a fixed bank, no state.
package prompts

import "math/rand"

var wyrBank = []string{
	"Would you rather always have to reply with GIFs or never send GIFs again?",
	"Would you rather get free flights for life or free food anywhere?",
	"Would you rather be famous on TikTok or rich and unknown?",
}

var truths = []string{
	"What's a secret hobby nobody knows about?",
	"Who was your first crush?",
}

var dares = []string{
	"Send a selfie making the silliest face (only if you want).",
	"Record a 5-sec dramatic monologue and send it.",
}

// Kind distinguishes truth prompts from dare prompts.
type Kind string

// Truth-or-dare prompt kinds.
const (
	KindTruth Kind = "TRUTH"
	KindDare  Kind = "DARE"
)

// Dispenser picks prompts with its own random source.
type Dispenser struct {
	rng *rand.Rand
}

// New creates a dispenser.
func New(rng *rand.Rand) *Dispenser {
	return &Dispenser{rng: rng}
}

// WouldYouRather returns a random would-you-rather prompt.
func (d *Dispenser) WouldYouRather() string {
	return wyrBank[d.rng.Intn(len(wyrBank))]
}

// TruthOrDare flips a fair coin between truth and dare and returns the
// chosen kind with a random prompt from that bank.
func (d *Dispenser) TruthOrDare() (Kind, string) {
	if d.rng.Intn(2) == 0 {
		return KindTruth, truths[d.rng.Intn(len(truths))]
	}
	return KindDare, dares[d.rng.Intn(len(dares))]
}
