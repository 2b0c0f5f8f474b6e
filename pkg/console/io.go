// Package console implements the line-oriented terminal interface: reading
// text and integers from input and rendering prompts, messages and tables.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// IO reads lines from an input stream and writes to an output stream
type IO struct {
	in     *bufio.Reader
	out    io.Writer
	styler Styler
}

// New creates an IO over in and out. A nil styler renders plain text.
func New(in io.Reader, out io.Writer, styler Styler) *IO {
	if styler == nil {
		styler = PlainStyler{}
	}
	return &IO{
		in:     bufio.NewReader(in),
		out:    out,
		styler: styler,
	}
}

// Styler returns the styler used for output
func (c *IO) Styler() Styler {
	return c.styler
}

// ReadText reads one line and trims surrounding whitespace. io.EOF is
// returned only when the input is exhausted with nothing left to read.
func (c *IO) ReadText() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadInt reads one line and parses it as a non-negative base-10 integer.
// Malformed input yields ErrInvalidNumber; read failures are returned as is.
func (c *IO) ReadInt() (int, error) {
	line, err := c.ReadText()
	if err != nil {
		return 0, err
	}
	return ParseIndex(line)
}

// ParseIndex parses s as a non-negative base-10 integer. A single leading
// plus sign is allowed.
func ParseIndex(s string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidNumber, s, err)
	}
	return int(n), nil
}

// Println writes a line of text
func (c *IO) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text
func (c *IO) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}
