package extractor

import (
	"regexp"

	"github.com/project-tktt/go-postgen/internal/domain"
)

// Sentinel markers wrapping the optional structured data block produced
// by the upstream pre-processing step. Everything between them is parsed
// as FIELD: value lines before any free-text pattern matching runs.
const (
	BlockStart = "===POST DATA==="
	BlockEnd   = "===END POST DATA==="
)

// fieldOrder is the extraction order for job postings
var fieldOrder = []domain.Field{
	domain.FieldPosition,
	domain.FieldCompany,
	domain.FieldLocation,
	domain.FieldSalary,
	domain.FieldExperience,
	domain.FieldQualification,
	domain.FieldDeadline,
	domain.FieldEmail,
	domain.FieldContact,
}

// fieldLabels lists the canonical label tokens for each field. They are
// used both to parse structured-block lines and to detect pollution:
// a candidate value carrying another field's label is a parsing
// boundary error, not data.
var fieldLabels = map[domain.Field][]string{
	domain.FieldPosition:      {"POSITION", "ROLE", "DESIGNATION", "PROFILE"},
	domain.FieldCompany:       {"COMPANY", "ORGANIZATION", "ORGANISATION", "EMPLOYER"},
	domain.FieldLocation:      {"LOCATION", "PLACE", "CITY", "DISTRICT", "STATE"},
	domain.FieldSalary:        {"SALARY", "CTC", "PACKAGE"},
	domain.FieldExperience:    {"EXPERIENCE"},
	domain.FieldQualification: {"QUALIFICATION", "EDUCATION"},
	domain.FieldDeadline:      {"DEADLINE", "LAST DATE"},
	domain.FieldEmail:         {"EMAIL", "MAIL"},
	domain.FieldContact:       {"CONTACT", "PHONE", "MOBILE", "WHATSAPP"},
}

// labelRes matches a field's label token followed by a separator,
// compiled once per field from fieldLabels
var labelRes = buildLabelRes()

func buildLabelRes() map[domain.Field]*regexp.Regexp {
	res := make(map[domain.Field]*regexp.Regexp, len(fieldLabels))
	for f, labels := range fieldLabels {
		pattern := `(?i)\b(?:` + labels[0]
		for _, l := range labels[1:] {
			pattern += `|` + l
		}
		pattern += `)\b\s*[:#-]`
		res[f] = regexp.MustCompile(pattern)
	}
	return res
}

// jobDefaults are the placeholder values substituted when every
// extraction strategy for a job field fails. Deadline, email and contact
// have no placeholder: their absence changes the rendered layout instead.
var jobDefaults = map[domain.Field]string{
	domain.FieldPosition:      "Job Opening",
	domain.FieldCompany:       "Reputed Organization",
	domain.FieldLocation:      "India",
	domain.FieldSalary:        "As Per Industry Standards",
	domain.FieldExperience:    "Freshers and experienced candidates may apply",
	domain.FieldQualification: "Any relevant qualification",
}

// Default returns the placeholder value for a field, or "" when the
// field is optional and simply omitted from output when absent.
func Default(f domain.Field) string {
	return jobDefaults[f]
}
