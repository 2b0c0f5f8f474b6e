package roster

import (
	"strings"
)

// FieldSeparator separates name and age in a persisted line
const FieldSeparator = ";"

// ParseLine parses a "name;age" line. Lines that do not split into exactly
// two fields are rejected.
func ParseLine(line string) (User, bool) {
	parts := strings.Split(line, FieldSeparator)
	if len(parts) != 2 {
		return User{}, false
	}
	return User{Name: parts[0], Age: parts[1]}, true
}

// FormatLine renders u as a persisted line, including the trailing newline
func FormatLine(u User) string {
	return u.Name + FieldSeparator + u.Age + "\n"
}

// ParseLines parses every line of data and returns the records that parsed
// together with the number of skipped lines
func ParseLines(data string) ([]User, int) {
	var users []User
	skipped := 0
	for _, line := range splitLines(data) {
		u, ok := ParseLine(line)
		if !ok {
			skipped++
			continue
		}
		users = append(users, u)
	}
	return users, skipped
}

// splitLines splits on \n, dropping a trailing \r per line and the empty
// remainder after a final newline
func splitLines(data string) []string {
	if data == "" {
		return nil
	}
	lines := strings.Split(data, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
