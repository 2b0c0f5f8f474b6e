// Package game runs the elimination minigame: one roster position is
// secretly drawn as the imposter and the player guesses positions until
// they hit it or run out of candidates.
package game

import (
	"errors"

	"github.com/mmcdole/rosterctl/pkg/console"
	"github.com/mmcdole/rosterctl/pkg/logging"
	"github.com/mmcdole/rosterctl/pkg/roster"
)

// Elimination is a single game against a roster
type Elimination struct {
	store  *roster.Store
	io     *console.IO
	picker Picker
	logger *logging.AppLogger
}

// New creates a game. A nil picker draws uniformly at random.
func New(store *roster.Store, io *console.IO, picker Picker) *Elimination {
	if picker == nil {
		picker = RandomPicker{}
	}
	return &Elimination{
		store:  store,
		io:     io,
		picker: picker,
		logger: logging.App.WithContext("component", "game"),
	}
}

// Play runs the game until the imposter is found or the candidates run
// out. The drawn position is independent of any record's textual imposter
// marker. A winning guess moves the guessed record to the store's removed
// list. Errors are input failures only.
func (g *Elimination) Play() (Outcome, error) {
	n := g.store.Len()
	if n == 0 {
		g.logger.Info("Game skipped, roster is empty")
		return OutcomeLoss, nil
	}

	imposterIdx := g.picker.Intn(n)
	g.logger.Debug("Drew imposter", "index", imposterIdx, "roster_size", n)

	remaining := newCandidates(n)

	for {
		g.io.RenderTable(g.store.Users())
		g.io.Println(PromptGuess)

		guess, err := g.io.ReadInt()
		switch {
		case errors.Is(err, console.ErrInvalidNumber):
			g.io.Println(MsgInvalid)
			continue
		case err != nil:
			return OutcomeLoss, err
		}

		if guess >= g.store.Len() {
			g.io.Println(MsgInvalid)
			continue
		}

		if guess == imposterIdx {
			found, err := g.store.Remove(guess)
			if err != nil {
				return OutcomeLoss, err
			}
			g.io.Printf(msgCorrectFmt, g.io.Styler().Highlight(found.Name))
			g.logger.Info("Imposter found", "index", guess, "name", found.Name, "remaining", remaining.Len())
			return OutcomeWin, nil
		}

		g.io.Println(MsgIncorrect)
		if remaining.Eliminate(guess) {
			g.logger.Debug("Wrong guess", "index", guess, "remaining", remaining.Len())
		} else {
			g.logger.Debug("Repeated wrong guess", "index", guess, "remaining", remaining.Len())
		}

		// wrong guesses never eliminate imposterIdx, so a non-empty roster
		// always leaves at least that candidate
		if remaining.Len() == 0 {
			g.io.Println(MsgExhausted)
			g.logger.Info("Imposter escaped", "index", imposterIdx)
			return OutcomeLoss, nil
		}
	}
}
