package game

import "math/rand/v2"

// Outcome is the result of one game
type Outcome int

const (
	// OutcomeLoss means the candidates ran out or there was nobody to guess
	OutcomeLoss Outcome = iota
	// OutcomeWin means the imposter was identified
	OutcomeWin
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Picker draws a position in [0, n)
type Picker interface {
	Intn(n int) int
}

// RandomPicker draws uniformly using math/rand/v2
type RandomPicker struct{}

// Intn implements Picker
func (RandomPicker) Intn(n int) int {
	return rand.IntN(n)
}

// SeededPicker draws reproducibly from a PCG source
type SeededPicker struct {
	r *rand.Rand
}

// NewSeededPicker creates a picker whose draws are fixed by seed
func NewSeededPicker(seed uint64) *SeededPicker {
	return &SeededPicker{r: rand.New(rand.NewPCG(seed, seed))}
}

// Intn implements Picker
func (p *SeededPicker) Intn(n int) int {
	return p.r.IntN(n)
}

// Messages printed by the game
const (
	PromptGuess   = "Guess the imposter! Enter the index of the user you think is the imposter:"
	MsgInvalid    = "Invalid index. Please enter a valid user index."
	MsgIncorrect  = "Sorry, your guess is incorrect. Try Again."
	MsgExhausted  = "No more users left to guess from. The imposter won!"
	msgCorrectFmt = "Congratulations! You guessed correctly. The imposter was %s.\n"
)
