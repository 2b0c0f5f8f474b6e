package session

import "github.com/mmcdole/rosterctl/pkg/roster"

// State is the session loop state
type State int

const (
	// StateRunning keeps the loop reading commands
	StateRunning State = iota
	// StateExitRequested ends the session after the roster was saved
	StateExitRequested
	// StateGameOverGuard ends the session because only the imposter remains
	StateGameOverGuard
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExitRequested:
		return "exit_requested"
	case StateGameOverGuard:
		return "game_over"
	default:
		return "unknown"
	}
}

// Result is the final state of a session
type Result struct {
	State   State
	Users   []roster.User
	Removed []roster.User
}

// Menu choices
const (
	ChoiceAdd    = 1
	ChoiceRemove = 2
	ChoiceView   = 3
	ChoicePlay   = 4
	ChoiceExit   = 5
)

// Messages printed by the session
const (
	Banner = "User Data Application"
	Menu   = "Choose an action:\n" +
		"1. Add User\n" +
		"2. Remove User\n" +
		"3. View User Data\n" +
		"4. Play Game\n" +
		"5. Exit"

	MsgInvalidChoice   = "Invalid choice. Please select a valid option."
	PromptName         = "What is the user's name?"
	PromptAge          = "How old is the user?"
	MsgNothingToRemove = "There are no users to remove."
	PromptRemove       = "Enter the index of the user to remove:"
	MsgRemoved         = "User removed."
	MsgInvalidRemove   = "Invalid index. No user removed."
	MsgPlayerWon       = "You won!"
	MsgImposterWon     = "The imposter won!"
)
