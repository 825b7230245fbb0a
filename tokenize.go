package ledgible

import "strings"

// fieldSeparator separates the fields of a posting. Single spaces belong to
// the field, so account names may contain them.
const fieldSeparator = "  "

// tokenize splits content into fields separated by runs of two or more spaces.
func tokenize(content string) []string {
	var fields []string
	for _, f := range strings.Split(content, fieldSeparator) {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
