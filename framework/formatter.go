package framework

import (
	"github.com/fatih/color"
)

// Style is the meaning of a piece of output, which a Formatter may show with color.
type Style int

const (
	StylePlain Style = iota
	StyleOK
	StyleFail
	StyleError
)

// Formatter applies a Style to a line of output.
type Formatter interface {
	Format(style Style, text string) string
}

// PlainFormatter leaves text unchanged.
type PlainFormatter struct{}

func (PlainFormatter) Format(_ Style, text string) string {
	return text
}

// ColorFormatter shows passing tests in green, failures in red, and errors in bold red.
//
// It follows the color package's global settings, so output is uncolored when it is not going
// to a terminal or when color.NoColor has been set.
type ColorFormatter struct {
	colors map[Style]*color.Color
}

func NewColorFormatter() *ColorFormatter {
	return &ColorFormatter{
		colors: map[Style]*color.Color{
			StyleOK:    color.New(color.FgGreen),
			StyleFail:  color.New(color.FgRed),
			StyleError: color.New(color.FgRed, color.Bold),
		},
	}
}

// ForceColor makes the formatter emit color codes regardless of the global settings.
func (f *ColorFormatter) ForceColor() *ColorFormatter {
	for _, c := range f.colors {
		c.EnableColor()
	}
	return f
}

func (f *ColorFormatter) Format(style Style, text string) string {
	if c, ok := f.colors[style]; ok {
		return c.Sprint(text)
	}
	return text
}
