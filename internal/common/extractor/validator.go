package extractor

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/project-tktt/go-postgen/internal/domain"
)

// maxLens caps candidate length per field; anything longer is almost
// certainly a swallowed paragraph, not a value
var maxLens = map[domain.Field]int{
	domain.FieldPosition:      80,
	domain.FieldCompany:       100,
	domain.FieldLocation:      100,
	domain.FieldSalary:        60,
	domain.FieldExperience:    60,
	domain.FieldQualification: 100,
	domain.FieldDeadline:      40,
	domain.FieldEmail:         100,
	domain.FieldContact:       60,
}

// genericPlaceholders are values that upstream tools or lazy authors
// emit instead of real data
var genericPlaceholders = map[string]bool{
	"position":      true,
	"role":          true,
	"company":       true,
	"organization":  true,
	"location":      true,
	"salary":        true,
	"not disclosed": true,
	"not provided":  true,
	"not specified": true,
	"n/a":           true,
	"na":            true,
	"tbd":           true,
	"nil":           true,
}

var phoneShapedRe = regexp.MustCompile(`\d{10}`)

// Validate reports whether a candidate value is acceptable for the
// given field. Rejections are silent: the cascade simply moves on to
// the next rule. The same checks guard both structured-block values and
// free-text matches.
func Validate(f domain.Field, value string) bool {
	value = strings.TrimSpace(value)

	if len(value) < 2 || len(value) > maxLens[f] {
		return false
	}
	if strings.HasPrefix(value, "/") {
		return false
	}
	if strings.ContainsAny(value, "{<") {
		return false
	}
	if genericPlaceholders[strings.ToLower(value)] {
		return false
	}

	// Phone and date values are legitimately letter-free
	if f != domain.FieldContact && f != domain.FieldDeadline && !containsLetter(value) {
		return false
	}

	// A number where years belong means the pattern swallowed a phone
	if f == domain.FieldExperience && phoneShapedRe.MatchString(value) {
		return false
	}

	return !polluted(f, value)
}

// polluted reports whether the value carries another field's label
// token, which indicates the match ran past a parsing boundary
func polluted(f domain.Field, value string) bool {
	for other, re := range labelRes {
		if other == f {
			continue
		}
		if re.MatchString(value) {
			return true
		}
	}
	return false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
