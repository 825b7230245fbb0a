package ledgible

import (
	"strings"
)

// LineKind is the role of a line in a journal.
type LineKind int

const (
	// Undetermined is the kind of a line that was never classified.
	Undetermined LineKind = iota
	DateLine
	PostingLine
	CommentLine
	OtherLine
)

func (k LineKind) String() string {
	switch k {
	case DateLine:
		return "date"
	case PostingLine:
		return "posting"
	case CommentLine:
		return "comment"
	case OtherLine:
		return "other"
	default:
		return "undetermined"
	}
}

// Line is a classified journal line.
//
// Kind is the tag of the line: a CommentLine has no Content and its whole
// text is in Comment; every other kind has Content (possibly empty for blank
// lines) and an optional trailing Comment. Fields is only set for a
// PostingLine: the account first, then the amount and any further fields.
type Line struct {
	Number  int // 1-based, counted from the first non-blank line
	Kind    LineKind
	Content string
	Fields  []string
	Comment Comment
}

// Account returns the account field of a posting.
func (l Line) Account() string {
	if len(l.Fields) == 0 {
		return ""
	}
	return l.Fields[0]
}

// AmountField returns the raw amount field of a posting, or "" if the posting has none.
func (l Line) AmountField() string {
	if len(l.Fields) < 2 {
		return ""
	}
	return l.Fields[1]
}

// BlockState is the state carried from one line to the next while
// classifying: whether a "comment" ... "end comment" block is open.
type BlockState struct {
	Open     bool
	OpenedAt int // line of the opening "comment"
}

const (
	blockStart = "comment"
	blockEnd   = "end comment"
)

// ClassifyLine classifies a single raw line given the state left by the
// previous line, and returns the state for the next one.
func ClassifyLine(state BlockState, number int, raw string) (BlockState, Line, error) {
	line := Line{Number: number}
	if state.Open {
		line.Kind = CommentLine
	}

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case blockStart:
		if !state.Open {
			state = BlockState{Open: true, OpenedAt: number}
			line.Kind = CommentLine
		}
	case blockEnd:
		if !state.Open {
			return state, Line{}, &UnexpectedEndCommentError{Line: number}
		}
		state = BlockState{}
	}

	content, comment, whole := splitComment(raw, line.Kind == CommentLine)
	line.Comment = comment
	if whole {
		line.Kind = CommentLine
		return state, line, nil
	}
	line.Content = content

	fields := tokenize(content)
	switch {
	case len(fields) == 0:
		line.Kind = OtherLine
	case isDigit(content[0]):
		line.Kind = DateLine
	case content[0] == ' ' || content[0] == '\t':
		line.Kind = PostingLine
		line.Fields = fields
	default:
		line.Kind = OtherLine
	}
	return state, line, nil
}

// Classify splits a journal into lines and classifies each of them.
//
// Leading blank lines are dropped and do not count in line numbers.
func Classify(input string) ([]Line, error) {
	raws := splitLines(input)
	for len(raws) > 0 && strings.TrimSpace(raws[0]) == "" {
		raws = raws[1:]
	}

	lines := make([]Line, 0, len(raws))
	var state BlockState
	for i, raw := range raws {
		var (
			line Line
			err  error
		)
		state, line, err = ClassifyLine(state, i+1, raw)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if state.Open {
		return nil, &UnterminatedCommentBlockError{Line: state.OpenedAt}
	}
	return lines, nil
}

// splitLines splits text on '\n', dropping a final empty line and any '\r'
// ending a line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
