package classifier

import (
	"strings"

	"github.com/project-tktt/go-postgen/internal/domain"
)

// Classifier assigns exactly one category to a piece of text.
// Rules are evaluated in fixed priority order and the first match wins,
// so a job ad that also says "Apply" still lands in Jobs, not Schemes.
type Classifier struct{}

// NewClassifier creates a new classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// categoryRule is one keyword-presence test in the priority chain
type categoryRule struct {
	category domain.Category
	keywords []string
}

// Priority order: Jobs > Events > Schemes. Standard is the fallback.
var rules = []categoryRule{
	{domain.CategoryJobs, []string{"urgent", "hiring", "vacancy", "walk-in", "job", "position", "role", "salary"}},
	{domain.CategoryEvents, []string{"webinar", "conference", "summit", "workshop", "zoom", "speaker", "register"}},
	{domain.CategorySchemes, []string{"subsidy", "grant", "scholarship", "scheme", "funding", "eligibility", "apply"}},
}

// Classify returns the category for normalized text. Matching is
// case-insensitive keyword presence; no scoring, ties resolved by order.
func (c *Classifier) Classify(text string) domain.Category {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return domain.CategoryStandard
}
