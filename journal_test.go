package ledgible

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	input := `

2024-01-01 * Opening  ; first
    assets:cash  $100
  ! liabilities:card

; standalone
account assets:cash
	expenses:food  5 EUR  ; lunch
`
	want := []Line{
		{Number: 1, Kind: DateLine, Content: "2024-01-01 * Opening", Comment: Comment{Delimiter: Semicolon, Text: " first"}},
		{Number: 2, Kind: PostingLine, Content: "    assets:cash  $100", Fields: []string{"assets:cash", "$100"}},
		{Number: 3, Kind: PostingLine, Content: "  ! liabilities:card", Fields: []string{"! liabilities:card"}},
		{Number: 4, Kind: OtherLine, Content: ""},
		{Number: 5, Kind: CommentLine, Comment: Comment{Delimiter: BlockComment, Text: "; standalone"}},
		{Number: 6, Kind: OtherLine, Content: "account assets:cash"},
		{Number: 7, Kind: PostingLine, Content: "\texpenses:food  5 EUR", Fields: []string{"expenses:food", "5 EUR"}, Comment: Comment{Delimiter: Semicolon, Text: " lunch"}},
	}

	got, err := Classify(input)
	if err != nil {
		t.Fatalf("Classify() returned an unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Classify() mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyCommentBlock(t *testing.T) {
	input := `2024-01-01 Before
  assets  1
Comment
2024-02-01 Not a transaction
  assets  not an amount
; still a comment
  END COMMENT
2024-03-01 After
`
	lines, err := Classify(input)
	if err != nil {
		t.Fatalf("Classify() returned an unexpected error: %v", err)
	}

	wantKinds := []LineKind{DateLine, PostingLine, CommentLine, CommentLine, CommentLine, CommentLine, CommentLine, DateLine}
	var gotKinds []LineKind
	for _, l := range lines {
		gotKinds = append(gotKinds, l.Kind)
	}
	if diff := cmp.Diff(wantKinds, gotKinds); diff != "" {
		t.Errorf("Classify() kinds mismatch (-want +got):\n%s", diff)
	}
	if got, want := lines[4].Comment.Text, "  assets  not an amount"; got != want {
		t.Errorf("block body = %q, want %q", got, want)
	}
	if got, want := lines[6].Comment.String(), "  END COMMENT"; got != want {
		t.Errorf("block end = %q, want %q", got, want)
	}
}

func TestClassifyErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "lone end comment",
			input: "end comment\n",
			check: func(t *testing.T, err error) {
				var e *UnexpectedEndCommentError
				if !errors.As(err, &e) || e.Line != 1 {
					t.Errorf("Classify() error = %v, want UnexpectedEndCommentError at line 1", err)
				}
			},
		},
		{
			name:  "leading blank lines are not counted",
			input: "\n\n   \n2024-01-01 x\nend comment\n",
			check: func(t *testing.T, err error) {
				var e *UnexpectedEndCommentError
				if !errors.As(err, &e) || e.Line != 2 {
					t.Errorf("Classify() error = %v, want UnexpectedEndCommentError at line 2", err)
				}
			},
		},
		{
			name:  "unterminated block",
			input: "2024-01-01 x\n  assets  1\ncomment\nsome text\n",
			check: func(t *testing.T, err error) {
				var e *UnterminatedCommentBlockError
				if !errors.As(err, &e) || e.Line != 3 {
					t.Errorf("Classify() error = %v, want UnterminatedCommentBlockError at line 3", err)
				}
			},
		},
		{
			name:  "nested comment does not reopen",
			input: "comment\ncomment\nend comment\nend comment\n",
			check: func(t *testing.T, err error) {
				var e *UnexpectedEndCommentError
				if !errors.As(err, &e) || e.Line != 4 {
					t.Errorf("Classify() error = %v, want UnexpectedEndCommentError at line 4", err)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Classify(tc.input)
			if err == nil {
				t.Fatal("Classify() expected an error, got nil")
			}
			if !errors.Is(err, ErrMalformedJournal) {
				t.Errorf("Classify() error = %v, want it to wrap ErrMalformedJournal", err)
			}
			tc.check(t, err)
		})
	}
}

func TestClassifyLineState(t *testing.T) {
	state, line, err := ClassifyLine(BlockState{}, 7, "  comment  ")
	if err != nil {
		t.Fatalf("ClassifyLine() returned an unexpected error: %v", err)
	}
	if want := (BlockState{Open: true, OpenedAt: 7}); state != want {
		t.Errorf("ClassifyLine() state = %+v, want %+v", state, want)
	}
	if line.Kind != CommentLine {
		t.Errorf("ClassifyLine() kind = %v, want %v", line.Kind, CommentLine)
	}

	state, line, err = ClassifyLine(state, 8, "2024-01-01 hidden")
	if err != nil {
		t.Fatalf("ClassifyLine() returned an unexpected error: %v", err)
	}
	if !state.Open || line.Kind != CommentLine {
		t.Errorf("ClassifyLine() inside block = (%+v, %v), want open block and comment", state, line.Kind)
	}

	state, _, err = ClassifyLine(state, 9, "end comment")
	if err != nil {
		t.Fatalf("ClassifyLine() returned an unexpected error: %v", err)
	}
	if state.Open {
		t.Errorf("ClassifyLine() state after end comment = %+v, want closed", state)
	}
}

func TestSplitLines(t *testing.T) {
	testCases := []struct {
		text string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\n", []string{"a", ""}},
	}
	for _, tc := range testCases {
		if diff := cmp.Diff(tc.want, splitLines(tc.text)); diff != "" {
			t.Errorf("splitLines(%q) mismatch (-want +got):\n%s", tc.text, diff)
		}
	}
}
