package slugger

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/project-tktt/go-postgen/internal/domain"
)

// Slugger derives titles and URL-safe identifiers for generated posts
type Slugger struct{}

// NewSlugger creates a new slugger
func NewSlugger() *Slugger {
	return &Slugger{}
}

var (
	nonAlnumRe  = regexp.MustCompile(`[^a-z0-9]+`)
	forwardedRe = regexp.MustCompile(`(?i)forwarded|^fwd?[:.]`)
)

// Slugify lowercases the title, collapses non-alphanumeric runs into
// single hyphens and appends the last four digits of the clock so two
// posts with the same title within the same instant still diverge.
// Best-effort uniqueness only; there is no collision check.
func (s *Slugger) Slugify(title string, now time.Time) string {
	slug := strings.ToLower(title)
	slug = nonAlnumRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "post"
	}
	return fmt.Sprintf("%s-%04d", slug, now.UnixNano()%10000)
}

// Title builds the category-specific title from extracted fields and
// the first meaningful lines of the text
func (s *Slugger) Title(category domain.Category, fields map[domain.Field]string, lines []string) string {
	switch category {
	case domain.CategoryJobs:
		position := orDefault(fields[domain.FieldPosition], "Job Opening")
		company := orDefault(fields[domain.FieldCompany], "Reputed Organization")
		location := orDefault(fields[domain.FieldLocation], "India")
		return fmt.Sprintf("%s – Job Opening at %s (%s)", position, company, location)
	case domain.CategoryEvents:
		return "Event: " + s.derivedTitle(lines, "Upcoming Event")
	case domain.CategorySchemes:
		return "Scheme: " + s.derivedTitle(lines, "New Scheme Announcement")
	default:
		if len(lines) > 0 {
			return truncate(lines[0], 100)
		}
		return "Community Update"
	}
}

// derivedTitle uses the first line unless it is a forwarding artifact,
// in which case the second line is used
func (s *Slugger) derivedTitle(lines []string, fallback string) string {
	for i, line := range lines {
		if i > 1 {
			break
		}
		if forwardedRe.MatchString(line) {
			continue
		}
		return truncate(line, 100)
	}
	return fallback
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// truncate cuts at the nearest rune boundary so a dash or rupee sign
// straddling the limit doesn't leave invalid UTF-8 behind
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut])
}
