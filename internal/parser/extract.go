package parser

import (
	"strings"

	"github.com/Wilfredo1970/Finanzas/internal/models"
)

// minLineLen filters out noise: lines shorter than this never become
// drafts, even when they structurally contain a date and an amount.
const minLineLen = 10

// Extract walks the statement text line by line, in document order, and
// returns the drafts it could assemble. A line is dropped (never surfaced
// as an error) when it is too short, has no recognizable date, or has no
// positive amount; nothing in this stage aborts the whole document.
//
// Emitted drafts carry an empty Category and an unset Kind — category is
// the classifier's job and kind assignment belongs to the caller.
func Extract(text string) []models.TransactionDraft {
	var drafts []models.TransactionDraft

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if len(line) < minLineLen {
			continue
		}

		date, dateSpan, ok := ExtractDate(line)
		if !ok {
			continue
		}

		// Blank the matched date before looking for amounts, so the
		// bare-number family cannot latch onto the day or year digits.
		masked := strings.Replace(line, dateSpan, " ", 1)

		amount, guess, _, ok := ExtractAmount(masked)
		if !ok {
			continue
		}
		currency := InferCurrency(line, amount, guess)

		drafts = append(drafts, models.TransactionDraft{
			Date:        date,
			Description: CleanDescription(line),
			Amount:      amount,
			Currency:    currency,
			SourceLine:  line,
		})
	}

	return drafts
}
