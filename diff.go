package ledgible

import (
	"github.com/pmezard/go-difflib/difflib"
)

// DiffKind tells on which side of a diff a line is.
type DiffKind int

const (
	// Context is a line present in both texts.
	Context DiffKind = iota
	// Expected is a line only present in the canonical text.
	Expected
	// Resulting is a line only present in the original text.
	Resulting
)

// DiffLine is one line of a Mismatch.
type DiffLine struct {
	Kind DiffKind
	Text string
}

// Mismatch is a group of changed lines with their surrounding context.
type Mismatch struct {
	LineNumber     uint32 // first line of the group in the canonical text
	LineNumberOrig uint32 // first line of the group in the original text
	Lines          []DiffLine
}

// Diff compares the original text with its canonical form line by line and
// groups changes closer than 2*contextSize lines into a single Mismatch,
// keeping up to contextSize unchanged lines around each group.
//
// The result is empty if and only if both texts have the same lines.
func Diff(original, canonical string, contextSize int) []Mismatch {
	if contextSize < 0 {
		contextSize = 0
	}
	d := differ{
		contextSize:        contextSize,
		lineNumber:         1,
		lineNumberOrig:     1,
		linesSinceMismatch: contextSize + 1,
	}

	a, b := splitLines(original), splitLines(canonical)
	m := difflib.NewMatcherWithJunk(a, b, false, nil)
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for _, line := range a[op.I1:op.I2] {
				d.both(line)
			}
		case 'd':
			for _, line := range a[op.I1:op.I2] {
				d.removed(line)
			}
		case 'i':
			for _, line := range b[op.J1:op.J2] {
				d.added(line)
			}
		case 'r':
			for _, line := range a[op.I1:op.I2] {
				d.removed(line)
			}
			for _, line := range b[op.J1:op.J2] {
				d.added(line)
			}
		}
	}
	return d.finish()
}

// differ accumulates mismatches while walking an alignment of two texts.
type differ struct {
	contextSize        int
	lineNumber         uint32
	lineNumberOrig     uint32
	linesSinceMismatch int
	queue              []string // context waiting for the next mismatch
	current            Mismatch
	results            []Mismatch
}

// change opens a new mismatch when the previous one is far enough, then
// flushes the queued context into the current one.
func (d *differ) change() {
	if d.linesSinceMismatch >= d.contextSize && d.linesSinceMismatch > 0 {
		d.results = append(d.results, d.current)
		queued := uint32(len(d.queue))
		d.current = Mismatch{
			LineNumber:     d.lineNumber - queued,
			LineNumberOrig: d.lineNumberOrig - queued,
		}
	}
	for _, line := range d.queue {
		d.current.Lines = append(d.current.Lines, DiffLine{Kind: Context, Text: line})
	}
	d.queue = d.queue[:0]
	d.linesSinceMismatch = 0
}

func (d *differ) removed(line string) {
	d.change()
	d.current.Lines = append(d.current.Lines, DiffLine{Kind: Resulting, Text: line})
	d.lineNumberOrig++
}

func (d *differ) added(line string) {
	d.change()
	d.current.Lines = append(d.current.Lines, DiffLine{Kind: Expected, Text: line})
	d.lineNumber++
}

func (d *differ) both(line string) {
	if len(d.queue) > 0 && len(d.queue) >= d.contextSize {
		d.queue = d.queue[1:]
	}
	if d.linesSinceMismatch < d.contextSize {
		d.current.Lines = append(d.current.Lines, DiffLine{Kind: Context, Text: line})
	} else if d.contextSize > 0 {
		d.queue = append(d.queue, line)
	}
	d.lineNumber++
	d.lineNumberOrig++
	d.linesSinceMismatch++
}

// finish flushes the last mismatch and drops the placeholder opened before
// the first change.
func (d *differ) finish() []Mismatch {
	results := append(d.results, d.current)
	return results[1:]
}
