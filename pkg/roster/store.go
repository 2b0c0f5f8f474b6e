package roster

import (
	"fmt"

	"github.com/mmcdole/rosterctl/pkg/logging"
)

// Store holds the live roster and the records removed from it during a
// session. Removed records are never put back.
type Store struct {
	users   []User
	removed []User
}

// NewStore creates a Store seeded with users
func NewStore(users ...User) *Store {
	return &Store{
		users: append([]User(nil), users...),
	}
}

// Load appends users to the roster in order
func (s *Store) Load(users []User) {
	s.users = append(s.users, users...)
}

// Add appends u to the roster
func (s *Store) Add(u User) {
	s.users = append(s.users, u)
	logging.App.Debug("Added user", "name", u.Name, "age", u.Age, "count", len(s.users))
}

// Remove takes the record at idx out of the roster and appends it to the
// removed list
func (s *Store) Remove(idx int) (User, error) {
	if idx < 0 || idx >= len(s.users) {
		return User{}, fmt.Errorf("%w: %d (roster has %d users)", ErrIndexOutOfRange, idx, len(s.users))
	}

	u := s.users[idx]
	s.users = append(s.users[:idx], s.users[idx+1:]...)
	s.removed = append(s.removed, u)

	logging.App.Debug("Removed user", "name", u.Name, "index", idx, "count", len(s.users))
	return u, nil
}

// At returns the record at idx
func (s *Store) At(idx int) (User, error) {
	if idx < 0 || idx >= len(s.users) {
		return User{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}
	return s.users[idx], nil
}

// Len returns the number of records in the roster
func (s *Store) Len() int {
	return len(s.users)
}

// Users returns a copy of the roster
func (s *Store) Users() []User {
	return append([]User(nil), s.users...)
}

// Removed returns a copy of the removed list
func (s *Store) Removed() []User {
	return append([]User(nil), s.removed...)
}

// LastStandingImposter reports whether the roster is down to a single
// record and that record is the impostor
func (s *Store) LastStandingImposter() bool {
	return len(s.users) == 1 && s.users[0].IsImposter()
}
