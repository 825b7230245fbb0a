package ledgible

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	statusIndent  = "  "   // indent of an account carrying a status marker
	accountIndent = "    " // indent of a plain account
	amountGap     = "  "   // between the account column and the amount
)

// Format re-renders a journal in canonical form: postings indented and their
// amounts aligned on one column, trailing comments aligned on another, and
// amounts rewritten by the amount codec.
func Format(input string) (string, error) {
	lines, err := Classify(input)
	if err != nil {
		return "", err
	}
	return Layout(lines)
}

// layout holds the column widths measured over a whole journal.
type layout struct {
	accountWidth int // width of the indented account column
	lineWidth    int // column where trailing comments start, minus one
	amounts      map[int]string
}

// Layout renders classified lines in canonical form.
func Layout(lines []Line) (string, error) {
	l, err := measure(lines)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, line := range lines {
		switch line.Kind {
		case CommentLine:
			b.WriteString(line.Comment.String())
			b.WriteByte('\n')
			continue
		case PostingLine:
			line.Content = padRight(formatAccount(line.Account()), l.accountWidth) + amountGap + l.amounts[i]
		case DateLine, OtherLine:
		default:
			return "", fmt.Errorf("line %d: %w", line.Number, ErrUndeterminedLineKind)
		}

		out := padRight(line.Content, l.lineWidth)
		if line.Comment.Present() {
			out += " " + line.Comment.String()
		}
		b.WriteString(trimEnd(out))
		b.WriteByte('\n')
	}
	return trimEnd(b.String()) + "\n", nil
}

// measure computes the column widths. Account widths are folded first so
// that every posting line is measured against the final account column.
func measure(lines []Line) (layout, error) {
	l := layout{amounts: make(map[int]string)}
	for i, line := range lines {
		if line.Kind != PostingLine {
			continue
		}
		if len(line.Fields) == 0 {
			return layout{}, fmt.Errorf("line %d: %w", line.Number, ErrEmptyPosting)
		}
		amount, err := formatAmountFields(line.Fields[1:])
		if err != nil {
			return layout{}, fmt.Errorf("line %d: %w", line.Number, err)
		}
		l.amounts[i] = amount
		l.accountWidth = max(l.accountWidth, utf8.RuneCountInString(formatAccount(line.Account())))
	}

	for i, line := range lines {
		switch line.Kind {
		case CommentLine:
		case PostingLine:
			l.lineWidth = max(l.lineWidth, l.accountWidth+len(amountGap)+utf8.RuneCountInString(l.amounts[i]))
		default:
			l.lineWidth = max(l.lineWidth, utf8.RuneCountInString(line.Content))
		}
	}
	return l, nil
}

// formatAmountFields renders the amount of a posting followed by any further
// field (balance assertion, price...) kept verbatim. A posting without an
// amount renders as "".
func formatAmountFields(fields []string) (string, error) {
	if len(fields) == 0 {
		return "", nil
	}
	amount, err := ParseAmount(fields[0])
	if err != nil {
		return "", err
	}
	return strings.Join(append([]string{amount.String()}, fields[1:]...), fieldSeparator), nil
}

// formatAccount indents an account field: two spaces when the account
// carries a status marker, four otherwise.
func formatAccount(account string) string {
	if HasStatus(account) {
		return statusIndent + strings.TrimSpace(account)
	}
	return accountIndent + strings.TrimSpace(account)
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
