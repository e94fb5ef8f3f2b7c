package parser

import (
	"strings"
)

// CleanDescription derives the transaction description by deleting every
// date and amount span from the line, reapplying the same pattern families
// used to find them. Internal newlines collapse to spaces and the result
// is trimmed; an empty description is permitted.
func CleanDescription(line string) string {
	desc := line
	for _, re := range datePatterns {
		desc = re.ReplaceAllString(desc, "")
	}
	for _, fam := range amountPatterns {
		desc = fam.re.ReplaceAllString(desc, "")
	}
	desc = strings.ReplaceAll(desc, "\n", " ")
	return strings.TrimSpace(desc)
}
