// Package session owns the roster for the lifetime of one console session
// and drives the command menu.
package session

import (
	"errors"
	"fmt"

	"github.com/mmcdole/rosterctl/pkg/console"
	"github.com/mmcdole/rosterctl/pkg/game"
	"github.com/mmcdole/rosterctl/pkg/logging"
	"github.com/mmcdole/rosterctl/pkg/roster"
)

// Session holds the roster, the removed list and the console it talks to
type Session struct {
	store  *roster.Store
	io     *console.IO
	source roster.Source
	picker game.Picker
	logger *logging.AppLogger

	state State
}

// New loads the roster from source and returns a running session. A nil
// picker draws imposters uniformly at random.
func New(source roster.Source, io *console.IO, picker game.Picker) (*Session, error) {
	users, err := source.Load()
	if err != nil {
		return nil, err
	}

	store := roster.NewStore()
	store.Load(users)

	return &Session{
		store:  store,
		io:     io,
		source: source,
		picker: picker,
		logger: logging.App.WithContext("component", "session"),
		state:  StateRunning,
	}, nil
}

// Store returns the session's roster store
func (s *Session) Store() *roster.Store {
	return s.store
}

// State returns the current loop state
func (s *Session) State() State {
	return s.state
}

// Run prints the banner and processes commands until the session reaches
// a terminal state. A save failure on exit is returned wrapped in
// roster.ErrSave; exhausted input ends the session with the read error.
func (s *Session) Run() (Result, error) {
	s.io.Println(Banner)
	s.logger.Info("Session started", "users", s.store.Len())

	for s.state == StateRunning {
		if err := s.Step(); err != nil {
			s.logger.Warn("Session ended early", "error", err, "state", s.state)
			return s.result(), err
		}
	}

	s.logger.Info("Session ended", "state", s.state, "users", s.store.Len(), "removed", len(s.store.Removed()))
	return s.result(), nil
}

// Step runs one menu iteration: show the menu, read a choice, dispatch it
// and check the end-game guard
func (s *Session) Step() error {
	if s.state != StateRunning {
		return fmt.Errorf("session is not running (state %s)", s.state)
	}

	s.io.Println(Menu)

	choice, err := s.io.ReadInt()
	if err != nil && !errors.Is(err, console.ErrInvalidNumber) {
		return err
	}
	if err != nil {
		choice, err = 0, nil
	}

	switch choice {
	case ChoiceAdd:
		err = s.AddUser()
	case ChoiceRemove:
		err = s.RemoveUser()
	case ChoiceView:
		s.ViewUsers()
	case ChoicePlay:
		err = s.PlayGame()
	case ChoiceExit:
		return s.exit()
	default:
		s.io.Println(MsgInvalidChoice)
	}
	if err != nil {
		return err
	}

	if s.store.LastStandingImposter() {
		s.io.Println(MsgImposterWon)
		s.transition(StateGameOverGuard)
	}
	return nil
}

// AddUser prompts for a name and an age and appends the record
func (s *Session) AddUser() error {
	s.io.Println(PromptName)
	name, err := s.io.ReadText()
	if err != nil {
		return err
	}

	s.io.Println(PromptAge)
	age, err := s.io.ReadText()
	if err != nil {
		return err
	}

	s.store.Add(roster.User{Name: name, Age: age})
	return nil
}

// RemoveUser shows the roster and removes the record at the index read
// from input, moving it to the removed list
func (s *Session) RemoveUser() error {
	if s.store.Len() == 0 {
		s.io.Println(MsgNothingToRemove)
		return nil
	}

	s.io.Println(PromptRemove)
	s.ViewUsers()

	idx, err := s.io.ReadInt()
	if err != nil && !errors.Is(err, console.ErrInvalidNumber) {
		return err
	}
	if err != nil {
		s.io.Println(MsgInvalidRemove)
		return nil
	}

	if _, err := s.store.Remove(idx); err != nil {
		s.io.Println(MsgInvalidRemove)
		return nil
	}
	s.io.Println(MsgRemoved)
	return nil
}

// ViewUsers renders the roster table
func (s *Session) ViewUsers() {
	s.io.RenderTable(s.store.Users())
}

// PlayGame runs one elimination game and announces the winner
func (s *Session) PlayGame() error {
	outcome, err := game.New(s.store, s.io, s.picker).Play()
	if err != nil {
		return err
	}

	s.logger.Info("Game finished", "outcome", outcome)
	if outcome == game.OutcomeWin {
		s.io.Println(MsgPlayerWon)
	} else {
		s.io.Println(MsgImposterWon)
	}
	return nil
}

func (s *Session) exit() error {
	s.transition(StateExitRequested)
	if err := s.source.Save(s.store.Users()); err != nil {
		if !errors.Is(err, roster.ErrSave) {
			err = fmt.Errorf("%w: %v", roster.ErrSave, err)
		}
		return err
	}
	return nil
}

func (s *Session) transition(next State) {
	s.logger.Debug("State transition", "from", s.state, "to", next)
	s.state = next
}

func (s *Session) result() Result {
	return Result{
		State:   s.state,
		Users:   s.store.Users(),
		Removed: s.store.Removed(),
	}
}
