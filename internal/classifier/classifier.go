// Package classifier assigns spending and income categories to extracted
// transaction drafts using ordered keyword rule tables.
package classifier

import (
	"strings"

	"github.com/Wilfredo1970/Finanzas/internal/models"
)

// Classifier evaluates a RuleSet against draft descriptions. It has no
// failure mode: when no rule matches it returns the default category.
type Classifier struct {
	rules RuleSet
}

// New creates a Classifier over the given rule set.
func New(rules RuleSet) *Classifier {
	return &Classifier{rules: rules}
}

// NewDefault creates a Classifier with the built-in rule table.
func NewDefault() *Classifier {
	return New(DefaultRules())
}

// Categorize returns the category for a description, given its currency
// and transaction kind. Matching is case-insensitive substring containment
// against the kind's rule groups, first match wins.
func (c *Classifier) Categorize(description string, currency models.Currency, kind models.Kind) string {
	lower := strings.ToLower(description)
	for _, rule := range c.rules.partition(kind) {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				if rule.CategoryUSD != "" && currency == models.USD {
					return rule.CategoryUSD
				}
				return rule.Category
			}
		}
	}
	return c.rules.Default
}

// Apply categorizes a draft in place, using the draft's own currency and
// the kind supplied by the caller.
func (c *Classifier) Apply(draft *models.TransactionDraft, kind models.Kind) {
	draft.Category = c.Categorize(draft.Description, draft.Currency, kind)
}
