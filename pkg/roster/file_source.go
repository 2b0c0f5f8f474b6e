package roster

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/mmcdole/rosterctl/pkg/logging"
)

// DefaultPath is the roster file used when none is configured
const DefaultPath = "userdata.txt"

// FileSource implements Source using a flat "name;age" file
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a FileSource for path on fs. A nil fs uses the
// operating system filesystem and an empty path uses DefaultPath.
func NewFileSource(fs afero.Fs, path string) *FileSource {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if path == "" {
		path = DefaultPath
	}
	return &FileSource{
		fs:   fs,
		path: path,
	}
}

// Path returns the roster file path
func (s *FileSource) Path() string {
	return s.path
}

// Load implements Source
func (s *FileSource) Load() ([]User, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.App.Debug("Roster file not found, starting empty", "path", s.path)
			return nil, nil
		}
		logging.App.Error("Error reading roster file", "path", s.path, "error", err)
		return nil, fmt.Errorf("%w: reading %s: %v", ErrLoad, s.path, err)
	}

	users, skipped := ParseLines(string(data))
	if skipped > 0 {
		logging.App.Debug("Skipped malformed roster lines", "path", s.path, "skipped", skipped)
	}

	logging.App.Info("Loaded roster", "path", s.path, "count", len(users))
	return users, nil
}

// Save implements Source. The file is truncated and rewritten in full.
func (s *FileSource) Save(users []User) error {
	f, err := s.fs.Create(s.path)
	if err != nil {
		logging.App.Error("Error creating roster file", "path", s.path, "error", err)
		return fmt.Errorf("%w: creating %s: %v", ErrSave, s.path, err)
	}

	var b strings.Builder
	for _, u := range users {
		b.WriteString(FormatLine(u))
	}

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		logging.App.Error("Error writing roster file", "path", s.path, "error", err)
		return fmt.Errorf("%w: writing %s: %v", ErrSave, s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrSave, s.path, err)
	}

	logging.App.Info("Saved roster", "path", s.path, "count", len(users))
	return nil
}
