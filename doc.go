// Package ledgible formats plain-text accounting journals written in the
// ledger/hledger dialect into a canonical, column-aligned form.
//
// The formatting pipeline is:
//   - Classification: every line becomes a Line of kind DateLine,
//     PostingLine, CommentLine or OtherLine. Lines between stand-alone
//     "comment" and "end comment" lines are comments whatever their content.
//   - Layout: a first pass measures the account column and the comment
//     column over the whole journal, a second pass renders every line.
//     Posting amounts go through the amount codec (ParseAmount and
//     Amount.String), which drops thousands separators and normalizes the
//     placement of currency symbols.
//
// Diff compares a journal with its canonical form and groups the differing
// lines with some context; it backs the `ledgible check` command.
//
// The package performs no I/O: reading journals and writing results is left to
// the cmd package.
package ledgible
