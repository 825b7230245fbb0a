package ledgible

import (
	"strings"
	"unicode"
)

// Delimiter identifies how a comment was introduced.
type Delimiter int

const (
	// NoComment marks the absence of a comment.
	NoComment Delimiter = iota
	// BlockComment is a whole-line comment, either inside a comment block
	// or starting with ';' or '#'. Its text is the line itself.
	BlockComment
	Semicolon
	Hash
)

// Comment is the comment part of a journal line.
type Comment struct {
	Delimiter Delimiter
	Text      string
}

// Present reports whether the line had a comment.
func (c Comment) Present() bool { return c.Delimiter != NoComment }

// String renders the comment with its delimiter.
func (c Comment) String() string {
	switch c.Delimiter {
	case Semicolon:
		return ";" + c.Text
	case Hash:
		return "#" + c.Text
	case BlockComment:
		return c.Text
	default:
		return ""
	}
}

// splitComment separates a raw line into its content and its comment.
//
// whole is true when the entire line is a comment, in which case content is empty.
func splitComment(raw string, inBlock bool) (content string, comment Comment, whole bool) {
	if trimmed := strings.TrimSpace(raw); inBlock || strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "#") {
		return "", Comment{Delimiter: BlockComment, Text: trimEnd(raw)}, true
	}

	i := strings.IndexAny(raw, ";#")
	if i < 0 {
		return trimEnd(raw), Comment{}, false
	}
	delimiter := Semicolon
	if raw[i] == '#' {
		delimiter = Hash
	}
	return trimEnd(raw[:i]), Comment{Delimiter: delimiter, Text: trimEnd(raw[i+1:])}, false
}

func trimEnd(s string) string { return strings.TrimRightFunc(s, unicode.IsSpace) }
