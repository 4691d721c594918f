package cleaner

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Cleaner sanitizes HTML using Bluemonday. Pasted submissions sometimes
// arrive with markup from the source page or messaging app; everything
// user-authored is reduced to plain text before it reaches the rule
// tables or gets embedded into a rendered draft.
type Cleaner struct {
	policy *bluemonday.Policy
}

// NewCleaner creates a cleaner whose policy matches the tags the
// renderer itself emits, for sanitizing whole drafts
func NewCleaner() *Cleaner {
	policy := bluemonday.NewPolicy()

	policy.AllowElements("p", "br", "div", "span", "blockquote", "hr")
	policy.AllowElements("strong", "b", "em", "i", "u")
	policy.AllowElements("ul", "ol", "li")
	policy.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowElements("table", "thead", "tbody", "tr", "th", "td")

	policy.AllowAttrs("href").OnElements("a")
	policy.AllowRelativeURLs(true)
	policy.RequireParseableURLs(true)
	policy.AllowURLSchemes("http", "https", "mailto", "tel")

	return &Cleaner{policy: policy}
}

// NewStrictCleaner creates a cleaner that strips ALL HTML
func NewStrictCleaner() *Cleaner {
	return &Cleaner{policy: bluemonday.StrictPolicy()}
}

// Clean sanitizes HTML content against the cleaner's policy
func (c *Cleaner) Clean(html string) string {
	return c.policy.Sanitize(html)
}

// CleanToText removes all HTML and returns plain text
func (c *Cleaner) CleanToText(html string) string {
	strict := bluemonday.StrictPolicy()
	text := strict.Sanitize(html)

	text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	text = strings.TrimSpace(text)

	return text
}
