package ledgible

import (
	"errors"
	"fmt"
)

// ErrMalformedJournal is wrapped by every error that points at a specific line of the journal.
var ErrMalformedJournal = errors.New("malformed journal")

// ErrUndeterminedLineKind is returned when a line reaches the layout engine without a kind.
var ErrUndeterminedLineKind = errors.New("line kind undetermined")

// ErrEmptyPosting is returned when a posting line reaches the layout engine without an account field.
var ErrEmptyPosting = errors.New("posting without account")

// UnterminatedCommentBlockError reports a "comment" block still open at the end of the journal.
type UnterminatedCommentBlockError struct {
	Line int // line where the block was opened
}

func (e *UnterminatedCommentBlockError) Error() string {
	return fmt.Sprintf("unterminated comment block opened at line %d", e.Line)
}

func (e *UnterminatedCommentBlockError) Unwrap() error { return ErrMalformedJournal }

// UnexpectedEndCommentError reports an "end comment" line while no block is open.
type UnexpectedEndCommentError struct {
	Line int
}

func (e *UnexpectedEndCommentError) Error() string {
	return fmt.Sprintf("unexpected `end comment` at line %d", e.Line)
}

func (e *UnexpectedEndCommentError) Unwrap() error { return ErrMalformedJournal }

// AmountParseError reports an amount token that cannot be decomposed into a number and a currency.
type AmountParseError struct {
	Token string
	Err   error // underlying number parsing error, if any
}

func (e *AmountParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid amount %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("invalid amount %q", e.Token)
}

func (e *AmountParseError) Unwrap() error { return e.Err }
