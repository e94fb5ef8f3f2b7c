package parser

import (
	"regexp"
)

// Date pattern families, tried in order. The first family that matches
// anywhere in the line wins; later families are not consulted.
var datePatterns = []*regexp.Regexp{
	// DD/MM/YYYY or DD-MM-YYYY (also DD/MM/YY)
	regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`),
	// YYYY/MM/DD or YYYY-MM-DD
	regexp.MustCompile(`\b(\d{2,4})[/-](\d{1,2})[/-](\d{1,2})\b`),
	// Strict DD/MM/YY
	regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2})\b`),
}

// ExtractDate finds the first date in a line and normalizes it to
// YYYY-MM-DD. It also returns the literal matched substring so the caller
// can blank it out before amount extraction and description cleanup.
//
// A four-digit first group means year-first order; anything else is read
// day-first, and a two-digit year is expanded with a "20" prefix. No
// calendar validity check is performed beyond what the regexes imply, and
// day-first cannot be told apart from month-first locales — both are
// deliberate, known limitations.
func ExtractDate(line string) (iso, matched string, ok bool) {
	for _, re := range datePatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if len(m[1]) == 4 {
			return m[1] + "-" + pad2(m[2]) + "-" + pad2(m[3]), m[0], true
		}
		year := m[3]
		if len(year) == 2 {
			year = "20" + year
		}
		return year + "-" + pad2(m[2]) + "-" + pad2(m[1]), m[0], true
	}
	return "", "", false
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
