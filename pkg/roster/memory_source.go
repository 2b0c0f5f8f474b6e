package roster

// MemorySource implements Source in memory
type MemorySource struct {
	users []User
	saves int

	// SaveErr, when set, is returned by Save
	SaveErr error
}

// NewMemorySource creates a MemorySource holding a copy of initial
func NewMemorySource(initial ...User) *MemorySource {
	return &MemorySource{
		users: append([]User(nil), initial...),
	}
}

// Load implements Source
func (s *MemorySource) Load() ([]User, error) {
	return append([]User(nil), s.users...), nil
}

// Save implements Source
func (s *MemorySource) Save(users []User) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.users = append([]User(nil), users...)
	s.saves++
	return nil
}

// Saves returns how many times Save succeeded
func (s *MemorySource) Saves() int {
	return s.saves
}
