package session

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/rosterctl/pkg/console"
	"github.com/mmcdole/rosterctl/pkg/roster"
)

type fixedPicker int

func (p fixedPicker) Intn(n int) int { return int(p) }

func newSession(t *testing.T, source roster.Source, input string) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	s, err := New(source, console.New(strings.NewReader(input), &out, nil), fixedPicker(1))
	require.NoError(t, err)
	return s, &out
}

func lines(input ...string) string {
	return strings.Join(input, "\n") + "\n"
}

func TestRun_AddViewExit(t *testing.T) {
	source := roster.NewMemorySource()
	s, out := newSession(t, source, lines("1", "Alice", "30", "1", "  Bob ", "25", "3", "5"))

	result, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, StateExitRequested, result.State)

	want := []roster.User{{Name: "Alice", Age: "30"}, {Name: "Bob", Age: "25"}}
	assert.Equal(t, want, result.Users)
	assert.Empty(t, result.Removed)

	saved, err := source.Load()
	require.NoError(t, err)
	assert.Equal(t, want, saved)
	assert.Equal(t, 1, source.Saves())

	text := out.String()
	assert.True(t, strings.HasPrefix(text, Banner+"\n"+Menu+"\n"))
	assert.Equal(t, 1, strings.Count(text, Banner))
	assert.Equal(t, 4, strings.Count(text, "Choose an action:"))
	assert.Contains(t, text, PromptName+"\n"+PromptAge+"\n")
	assert.Contains(t, text, "| Bob   | 25  |\n+-------+-----+\n")
}

func TestRemoveUser_EmptyRoster(t *testing.T) {
	s, out := newSession(t, roster.NewMemorySource(), lines("2", "5"))

	result, err := s.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), MsgNothingToRemove+"\n")
	assert.NotContains(t, out.String(), PromptRemove)
	assert.Empty(t, result.Users)
	assert.Empty(t, result.Removed)
}

func TestRemoveUser(t *testing.T) {
	seed := []roster.User{{Name: "Alice", Age: "30"}, {Name: "Bob", Age: "25"}}

	tests := []struct {
		name        string
		index       string
		wantUsers   []roster.User
		wantRemoved []roster.User
		wantMsg     string
	}{
		{"valid", "0", []roster.User{{Name: "Bob", Age: "25"}}, []roster.User{{Name: "Alice", Age: "30"}}, MsgRemoved},
		{"last valid", "1", []roster.User{{Name: "Alice", Age: "30"}}, []roster.User{{Name: "Bob", Age: "25"}}, MsgRemoved},
		{"out of range", "2", seed, nil, MsgInvalidRemove},
		{"negative", "-1", seed, nil, MsgInvalidRemove},
		{"not a number", "Bob", seed, nil, MsgInvalidRemove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newSession(t, roster.NewMemorySource(seed...), lines(tt.index))

			require.NoError(t, s.RemoveUser())
			assert.Equal(t, tt.wantUsers, s.Store().Users())
			assert.Equal(t, tt.wantRemoved, s.Store().Removed())
			assert.True(t, strings.HasPrefix(out.String(), PromptRemove+"\n+"))
			assert.True(t, strings.HasSuffix(out.String(), tt.wantMsg+"\n"))
		})
	}
}

func TestRun_InvalidChoices(t *testing.T) {
	source := roster.NewMemorySource(roster.User{Name: "Alice", Age: "30"})
	s, out := newSession(t, source, lines("0", "6", "two", "", "5"))

	result, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out.String(), MsgInvalidChoice))
	assert.Equal(t, []roster.User{{Name: "Alice", Age: "30"}}, result.Users)
}

func TestRun_NonNumericChoiceKeepsRunning(t *testing.T) {
	source := roster.NewMemorySource(roster.User{Name: "Alice", Age: "30"})
	s, out := newSession(t, source, lines("abc", "5"))

	result, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, StateExitRequested, result.State)
	assert.Equal(t, 1, source.Saves())
	assert.Contains(t, out.String(), MsgInvalidChoice+"\n"+Menu+"\n")
}

func TestStep_NonNumericChoice(t *testing.T) {
	s, out := newSession(t, roster.NewMemorySource(), lines("three"))

	require.NoError(t, s.Step())
	assert.Equal(t, StateRunning, s.State())
	assert.True(t, strings.HasSuffix(out.String(), MsgInvalidChoice+"\n"))
}

func TestRun_PlayGameWin(t *testing.T) {
	source := roster.NewMemorySource(roster.User{Name: "Alice", Age: "30"}, roster.User{Name: "Bob", Age: "25"})
	s, out := newSession(t, source, lines("4", "0", "1", "5"))

	result, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, StateExitRequested, result.State)
	assert.Equal(t, []roster.User{{Name: "Alice", Age: "30"}}, result.Users)
	assert.Equal(t, []roster.User{{Name: "Bob", Age: "25"}}, result.Removed)
	assert.Contains(t, out.String(), "The imposter was Bob.\n"+MsgPlayerWon+"\n")

	saved, _ := source.Load()
	assert.Equal(t, []roster.User{{Name: "Alice", Age: "30"}}, saved)
}

func TestRun_PlayGameEmptyRoster(t *testing.T) {
	s, out := newSession(t, roster.NewMemorySource(), lines("4", "5"))

	_, err := s.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), Menu+"\n"+MsgImposterWon+"\n")
}

func TestRun_GameOverGuard(t *testing.T) {
	eve := roster.User{Name: "Eve", Age: roster.ImposterSentinel}

	t.Run("after view", func(t *testing.T) {
		source := roster.NewMemorySource(eve)
		s, out := newSession(t, source, lines("3", "5"))

		result, err := s.Run()
		require.NoError(t, err)
		assert.Equal(t, StateGameOverGuard, result.State)
		assert.Equal(t, []roster.User{eve}, result.Users)
		assert.True(t, strings.HasSuffix(out.String(), "+\n"+MsgImposterWon+"\n"))
		assert.Equal(t, 0, source.Saves(), "the guard ends the session without saving")
	})

	t.Run("after invalid choice", func(t *testing.T) {
		s, out := newSession(t, roster.NewMemorySource(eve), lines("x"))

		result, err := s.Run()
		require.NoError(t, err)
		assert.Equal(t, StateGameOverGuard, result.State)
		assert.True(t, strings.HasSuffix(out.String(), MsgInvalidChoice+"\n"+MsgImposterWon+"\n"))
	})

	t.Run("after removal leaves the imposter", func(t *testing.T) {
		s, _ := newSession(t, roster.NewMemorySource(roster.User{Name: "Bob", Age: "25"}, eve), lines("2", "0"))

		result, err := s.Run()
		require.NoError(t, err)
		assert.Equal(t, StateGameOverGuard, result.State)
		assert.Equal(t, []roster.User{{Name: "Bob", Age: "25"}}, result.Removed)
	})

	t.Run("after a won game", func(t *testing.T) {
		// picker draws position 1, so guessing Bob wins and Eve is left alone
		s, out := newSession(t, roster.NewMemorySource(eve, roster.User{Name: "Bob", Age: "25"}), lines("4", "1"))

		result, err := s.Run()
		require.NoError(t, err)
		assert.Equal(t, StateGameOverGuard, result.State)
		assert.True(t, strings.HasSuffix(out.String(), MsgPlayerWon+"\n"+MsgImposterWon+"\n"))
	})

	t.Run("not triggered by a lone human", func(t *testing.T) {
		s, _ := newSession(t, roster.NewMemorySource(roster.User{Name: "Alice", Age: "30"}), lines("3", "5"))

		result, err := s.Run()
		require.NoError(t, err)
		assert.Equal(t, StateExitRequested, result.State)
	})

	t.Run("adding the imposter to an empty roster", func(t *testing.T) {
		s, _ := newSession(t, roster.NewMemorySource(), lines("1", "Eve", "Imposter"))

		result, err := s.Run()
		require.NoError(t, err)
		assert.Equal(t, StateGameOverGuard, result.State)
	})
}

func TestRun_SaveFailure(t *testing.T) {
	source := roster.NewMemorySource()
	source.SaveErr = errors.New("disk full")
	s, _ := newSession(t, source, lines("1", "Alice", "30", "5"))

	result, err := s.Run()
	assert.ErrorIs(t, err, roster.ErrSave)
	assert.Equal(t, StateExitRequested, result.State)
	assert.Equal(t, []roster.User{{Name: "Alice", Age: "30"}}, result.Users)
}

func TestRun_InputClosed(t *testing.T) {
	source := roster.NewMemorySource()
	s, _ := newSession(t, source, lines("1", "Alice"))

	result, err := s.Run()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, StateRunning, result.State)
	assert.Empty(t, result.Users)
	assert.Equal(t, 0, source.Saves())
}

func TestStep_AfterTerminalState(t *testing.T) {
	s, _ := newSession(t, roster.NewMemorySource(), lines("5"))

	_, err := s.Run()
	require.NoError(t, err)
	assert.Error(t, s.Step())
}

func TestRun_FileSourceRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "userdata.txt", []byte("Alice;30\ngarbage\nBob;25\n"), 0644))

	source := roster.NewFileSource(fs, "userdata.txt")
	s, _ := newSession(t, source, lines("2", "0", "1", "Carol", "41", "5"))

	_, err := s.Run()
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "userdata.txt")
	require.NoError(t, err)
	assert.Equal(t, "Bob;25\nCarol;41\n", string(data))
}

func TestNew_LoadError(t *testing.T) {
	source := roster.NewFileSource(afero.NewOsFs(), t.TempDir())
	_, err := New(source, console.New(strings.NewReader(""), io.Discard, nil), nil)
	assert.ErrorIs(t, err, roster.ErrLoad)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "exit_requested", StateExitRequested.String())
	assert.Equal(t, "game_over", StateGameOverGuard.String())
}
