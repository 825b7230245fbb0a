package renderer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/ledgible"
	"github.com/muesli/termenv"
)

var (
	// AddedColor highlights lines the canonical form adds.
	AddedColor = lipgloss.Color("2") // green
	// RemovedColor highlights lines the canonical form removes.
	RemovedColor = lipgloss.Color("1") // red
)

// RenderMismatches prints every mismatch under a header built by title from
// the mismatch line in the original text. Context lines start with a space,
// lines of the canonical form with '+' and lines of the original with '-'.
func RenderMismatches(sink Sink, mismatches []ledgible.Mismatch, title func(line uint32) string) error {
	added, removed := paint(sink)
	for _, m := range mismatches {
		if _, err := fmt.Fprintln(sink, title(m.LineNumberOrig)); err != nil {
			return err
		}
		for _, line := range m.Lines {
			var out string
			switch line.Kind {
			case ledgible.Context:
				out = " " + line.Text
			case ledgible.Expected:
				out = added("+" + line.Text)
			case ledgible.Resulting:
				out = removed("-" + line.Text)
			}
			if _, err := fmt.Fprintln(sink, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// paint returns the functions coloring added and removed lines, or identities
// if the sink has no color.
func paint(sink Sink) (added, removed func(string) string) {
	if !sink.SupportsColor() {
		identity := func(s string) string { return s }
		return identity, identity
	}
	r := lipgloss.NewRenderer(sink)
	r.SetColorProfile(termenv.ANSI)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	addedStyle, removedStyle := base.Foreground(AddedColor), base.Foreground(RemovedColor)
	return func(s string) string { return addedStyle.Render(s) },
		func(s string) string { return removedStyle.Render(s) }
}
