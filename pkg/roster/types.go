package roster

// ImposterSentinel is the age value that marks a record as the impostor
const ImposterSentinel = "Imposter"

// User is a single roster record. Age is free-form text.
type User struct {
	Name string
	Age  string
}

// IsImposter reports whether the record carries the impostor sentinel
func (u User) IsImposter() bool {
	return u.Age == ImposterSentinel
}

// Source represents a place rosters are loaded from and saved to
type Source interface {
	// Load returns the persisted roster. A missing roster is empty, not an error.
	Load() ([]User, error)
	// Save replaces the persisted roster with users
	Save(users []User) error
}
