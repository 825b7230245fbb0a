package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/ledgible"
)

// RenderCommodities renders the commodity inventory of a journal as a markdown table.
func RenderCommodities(title string, commodities []ledgible.Commodity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(commodities) == 0 {
		b.WriteString("No commodity found.\n")
		return b.String()
	}

	b.WriteString("| Commodity | Postings | Placement | Precision | ISO 4217 |\n")
	b.WriteString("|:---|---:|:---|---:|:---|\n")
	for _, c := range commodities {
		placement := "suffix"
		if c.Prepend {
			placement = "prefix"
		}
		iso := ""
		if c.ISO != nil {
			iso = fmt.Sprintf("%s %s, %d digits", c.ISO.Code, c.ISO.Grapheme, c.ISO.Fraction)
		}
		fmt.Fprintf(&b, "| %s | %d | %s | %d | %s |\n", escapeCell(c.Symbol), c.Postings, placement, c.Precision, iso)
	}
	return b.String()
}

func escapeCell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }
