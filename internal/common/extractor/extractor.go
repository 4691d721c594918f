package extractor

import (
	"strings"

	"github.com/project-tktt/go-postgen/internal/domain"
)

// Extractor pulls structured field values out of free-form text.
// A delimited structured block, when present, is tried first; otherwise
// each field falls back to its ordered pattern cascade. The extractor
// is stateless and safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the best available value for one field, and whether
// any strategy produced an acceptable value at all
func (e *Extractor) Extract(text string, f domain.Field) (string, bool) {
	if block := parseBlock(text); block != nil {
		if v, ok := block[f]; ok {
			return v, true
		}
	}
	return e.extractFreeText(stripBlock(text), f)
}

// ExtractAll runs the cascade for every field relevant to the category.
// The category comes from the classifier; it is not re-derived here.
// Absent fields are simply missing from the result, never empty strings.
func (e *Extractor) ExtractAll(text string, category domain.Category) map[domain.Field]string {
	values := make(map[domain.Field]string)
	if category != domain.CategoryJobs {
		// Non-job layouts still read a subset of fields: location,
		// deadline and contact details everywhere, plus salary (benefit
		// amount) and qualification (eligibility) for scheme highlights
		for _, f := range []domain.Field{domain.FieldLocation, domain.FieldSalary, domain.FieldQualification, domain.FieldDeadline, domain.FieldEmail, domain.FieldContact} {
			if v, ok := e.Extract(text, f); ok {
				values[f] = v
			}
		}
		return values
	}

	block := parseBlock(text)
	plain := stripBlock(text)
	for _, f := range fieldOrder {
		if v, ok := block[f]; ok {
			values[f] = v
			continue
		}
		if v, ok := e.extractFreeText(plain, f); ok {
			values[f] = v
		}
	}
	return values
}

func (e *Extractor) extractFreeText(text string, f domain.Field) (string, bool) {
	if f == domain.FieldEmail {
		return extractEmail(text)
	}
	for _, r := range fieldRules[f] {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := m[1]
		if r.post != nil {
			candidate = r.post(candidate)
		}
		if candidate == "" || !Validate(f, candidate) {
			continue
		}
		return candidate, true
	}
	return "", false
}

// extractEmail scans the whole text for email-shaped tokens and prefers
// the first one that doesn't look like a placeholder address. Candidates
// go through the same validation gate as every other field.
func extractEmail(text string) (string, bool) {
	var valid []string
	for _, m := range emailRe.FindAllString(text, -1) {
		if Validate(domain.FieldEmail, m) {
			valid = append(valid, m)
		}
	}
	if len(valid) == 0 {
		return "", false
	}
	for _, m := range valid {
		lower := strings.ToLower(m)
		if !strings.Contains(lower, "example") && !strings.Contains(lower, "test") {
			return m, true
		}
	}
	return valid[0], true
}

// ExtractLink returns the first URL found in the text, typically an
// application or registration link
func (e *Extractor) ExtractLink(text string) (string, bool) {
	if m := urlRe.FindString(text); m != "" {
		return strings.TrimRight(m, ".,;"), true
	}
	return "", false
}

// DetectJobType infers the employment type from keyword presence.
// Full Time is the placeholder when nothing else is mentioned.
func (e *Extractor) DetectJobType(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "part time") || strings.Contains(lower, "part-time"):
		return "Part Time"
	case strings.Contains(lower, "internship") || strings.Contains(lower, "intern "):
		return "Internship"
	case strings.Contains(lower, "contract basis") || strings.Contains(lower, "contractual"):
		return "Contract"
	default:
		return "Full Time"
	}
}
