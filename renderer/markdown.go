package renderer

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// PrintMarkdown writes a markdown document, styled by glamour when the sink
// supports colors and verbatim otherwise.
func PrintMarkdown(sink Sink, md string) error {
	if !sink.SupportsColor() {
		_, err := io.WriteString(sink, md)
		return err
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return err
	}
	out, err := r.Render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(sink, out)
	return err
}
