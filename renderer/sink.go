// Package renderer writes the reports of the ledgible command to a terminal or a file.
package renderer

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Sink is an output that may or may not support ANSI colors.
type Sink interface {
	io.Writer
	SupportsColor() bool
}

// Terminal is a Sink over a file, usually os.Stdout.
type Terminal struct {
	*os.File
	color bool
}

// NewTerminal returns a Sink writing to f. Colors are enabled when f is a
// terminal and the environment does not disable them (NO_COLOR, TERM=dumb...).
func NewTerminal(f *os.File) *Terminal {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	return &Terminal{
		File:  f,
		color: tty && termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii,
	}
}

func (t *Terminal) SupportsColor() bool { return t.color }

// WithColor forces the color capability of a sink.
func WithColor(s Sink, color bool) Sink { return colorSink{Sink: s, color: color} }

type colorSink struct {
	Sink
	color bool
}

func (s colorSink) SupportsColor() bool { return s.color }

// Plain is a Sink without color support over any writer.
func Plain(w io.Writer) Sink { return plainSink{w} }

type plainSink struct{ io.Writer }

func (plainSink) SupportsColor() bool { return false }
