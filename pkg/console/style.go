package console

import (
	"github.com/gookit/color"
)

// Styler decorates console text. Styling never changes the underlying
// characters a plain renderer would produce.
type Styler interface {
	// Header styles a table header cell
	Header(s string) string
	// Highlight styles a value called out in a message
	Highlight(s string) string
}

// PlainStyler leaves text unchanged
type PlainStyler struct{}

// Header implements Styler
func (PlainStyler) Header(s string) string { return s }

// Highlight implements Styler
func (PlainStyler) Highlight(s string) string { return s }

// ColorStyler renders ANSI styles
type ColorStyler struct {
	header    color.Style
	highlight color.Style
}

// NewColorStyler returns bold headers and bold green highlights
func NewColorStyler() *ColorStyler {
	return &ColorStyler{
		header:    color.New(color.OpBold),
		highlight: color.New(color.FgGreen, color.OpBold),
	}
}

// Header implements Styler
func (s *ColorStyler) Header(text string) string {
	return s.header.Sprint(text)
}

// Highlight implements Styler
func (s *ColorStyler) Highlight(text string) string {
	return s.highlight.Sprint(text)
}

// Color modes accepted by StylerFor
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// StylerFor returns the styler for a color mode. Auto colors only when the
// terminal supports it.
func StylerFor(mode string) Styler {
	switch mode {
	case ColorAlways:
		return NewColorStyler()
	case ColorNever:
		return PlainStyler{}
	default:
		if color.SupportColor() {
			return NewColorStyler()
		}
		return PlainStyler{}
	}
}
