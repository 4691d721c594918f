package extractor

import (
	"regexp"
	"strings"

	"github.com/project-tktt/go-postgen/internal/domain"
)

// rule is one free-text extraction strategy: a pattern plus an optional
// post-processing step for the captured group. Rules for a field are
// tried strictly in listed order; the first candidate that survives
// post-processing and validation wins.
type rule struct {
	re   *regexp.Regexp
	post func(string) string
}

// fieldRules holds the per-field fallback cascades. The tables are
// read-only; the extractor carries no state of its own.
var fieldRules = map[domain.Field][]rule{
	domain.FieldPosition: {
		{re: regexp.MustCompile(`(?im)^\s*[*#]*\s*(?:position|role|designation|profile|post)\s*[:\-–]+\s*(.+)$`), post: cutClause},
		{re: regexp.MustCompile(`(?i)\b(?:position|designation|role)\s*[:\-–]+\s*([^\n]{2,60})`), post: cutClause},
		{re: regexp.MustCompile(`(?im)^\s*[*#]*\s*hiring\s*(?:for)?\s*[:\-–]*\s*(.+)$`), post: cutClause},
		{re: regexp.MustCompile(`(?m)^([A-Z][^\n:;]{2,50}?)\s+(?:at|@)\s+[A-Z]`), post: trimDecoration},
		{re: regexp.MustCompile(`(?i)\b(?:vacancy|opening)\s+(?:for|of)\s+([A-Za-z][A-Za-z ./&-]{2,50})`), post: trimDecoration},
	},
	domain.FieldCompany: {
		{re: regexp.MustCompile(`(?im)^\s*[*#]*\s*(?:company(?:\s*name)?|organization|organisation|employer|firm)\s*[:\-–]+\s*(.+)$`), post: trimDecoration},
		{re: regexp.MustCompile(`(?i)\b([A-Z][A-Za-z&.' ]{1,60}?(?:Pvt\.?\s*Ltd\.?|Private\s+Limited|Ltd\.?|Limited|LLP|Corp\.?|Inc\.?|Group|Industries|Agro(?:\s+[A-Z][a-z]+)?|Farms?|Seeds|Biotech|Sciences?))\b`), post: stripNoisePrefix},
		{re: regexp.MustCompile(`(?i)\bat\s+([A-Z][A-Za-z&.' ]{1,50}?(?:Ltd|Limited|Inc|Corp|Group))\b`), post: trimDecoration},
	},
	domain.FieldLocation: {
		{re: regexp.MustCompile(`(?im)^\s*[*#]*\s*(?:job\s+)?location[s]?\s*[\s:\-–#]+(.+)$`), post: cutLocation},
		{re: regexp.MustCompile(`(?im)^\s*[*#]*\s*(?:place|city|district|state|area)\s*[:\-–]+\s*(.+)$`), post: cutLocation},
		{re: regexp.MustCompile(`(?m)#\s?([A-Z][A-Za-z]+(?:[ -][A-Z][A-Za-z]+)*)`), post: cutLocation},
	},
	domain.FieldSalary: {
		{re: regexp.MustCompile(`(?im)^\s*[*#]*\s*(?:salary|ctc|package|remuneration|pay)\s*(?:range|scale)?\s*[:\-–]+\s*(.+)$`), post: trimDecoration},
		{re: regexp.MustCompile(`(?i)((?:₹|rs\.?|inr)\s*[\d,]+(?:\.\d+)?(?:\s*(?:-|–|to)\s*(?:₹|rs\.?|inr)?\s*[\d,]+(?:\.\d+)?)?(?:\s*(?:lpa|lakhs?|lacs?|k|/-|per\s+(?:month|annum|year)))?)`), post: trimDecoration},
		{re: regexp.MustCompile(`(?i)(as per industry standards?|negotiable|attractive package|best in industry)`), post: strings.TrimSpace},
	},
	domain.FieldExperience: {
		{re: regexp.MustCompile(`(?im)^\s*[*#]*\s*experience\s*[:\-–]+\s*(.+)$`), post: trimDecoration},
		{re: regexp.MustCompile(`(?i)\b((?:minimum|min|maximum|max)\.?\s*(?:of\s*)?\d{1,2}\+?(?:\s*(?:-|–|to)\s*\d{1,2})?\s*(?:years?|yrs?))\b`), post: strings.TrimSpace},
		{re: regexp.MustCompile(`(?i)\b(\d{1,2}\+?(?:\s*(?:-|–|to)\s*\d{1,2})?\s*(?:years?|yrs?))\b`), post: strings.TrimSpace},
	},
	domain.FieldQualification: {
		{re: regexp.MustCompile(`(?im)^\s*[*#]*\s*(?:qualification|education|eligibility)s?\s*[:\-–]+\s*(.+)$`), post: trimDecoration},
		{re: regexp.MustCompile(`(?i)\b(B\.?\s?Sc\.?\s*\(?(?:Agri(?:culture)?|Hort(?:iculture)?)\)?|M\.?\s?Sc\.?\s*\(?Agri(?:culture)?\)?|Diploma\s+in\s+[A-Za-z ]{2,40}|B\.?\s?Tech|M\.?\s?Tech|MBA(?:\s*\([A-Za-z ]{2,30}\))?|PGDM|Any\s+Graduate|Post\s?Graduate)\b`), post: trimDecoration},
	},
	domain.FieldDeadline: {
		{re: regexp.MustCompile(`(?im)^\s*[*#]*\s*(?:deadline|last\s+date|apply\s+(?:by|before)|closing\s+date)\s*[:\-–]*\s*(.+)$`), post: trimDecoration},
		{re: regexp.MustCompile(`(?i)\bbefore\s+(\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s*\d{2,4})`), post: strings.TrimSpace},
		{re: regexp.MustCompile(`\b(\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4})\b`), post: strings.TrimSpace},
	},
	domain.FieldContact: {
		{re: regexp.MustCompile(`(?i)(?:contact|phone|mobile|call|whatsapp)[^0-9\n]{0,25}(\d{10})\b`), post: strings.TrimSpace},
		{re: regexp.MustCompile(`\b([6-9]\d{9})\b`), post: strings.TrimSpace},
		{re: regexp.MustCompile(`\b(\d{5}[\s-]\d{5})\b`), post: collapseDigits},
	},
}

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	urlRe   = regexp.MustCompile(`https?://[^\s<>"')]+`)

	// Noise that precedes company names pulled by the suffix heuristic
	noisePrefixRe = regexp.MustCompile(`(?i)^(?:urgent(?:ly)?|requirement|required|hiring|vacancy|opening|join|at|for|with|in)\s+`)

	// Words that start the next labeled clause after a captured value.
	// Cutting here keeps mid-line captures from swallowing the rest of
	// the message when labels run together without line breaks.
	clauseCutRe = regexp.MustCompile(`(?i)\s*(?:\.\s|\.$|\b(?:company|organization|organisation|location|place|city|district|state|salary|ctc|package|qualification|education|eligibility|experience|deadline|last date|contact|email|phone|mobile|apply|interested)\b).*$`)

	// Location values legitimately contain words like "district", so the
	// location cut list leaves the location labels themselves alone
	locationCutRe = regexp.MustCompile(`(?i)\s*(?:\.\s|\.$|\b(?:company|organization|organisation|salary|ctc|package|qualification|education|eligibility|experience|deadline|last date|contact|email|phone|mobile|apply|interested)\b).*$`)
)

// trimDecoration strips emphasis characters, quotes and stray
// punctuation left around a captured value
func trimDecoration(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `*_"'`)
	s = strings.TrimLeft(s, `#:-– `)
	s = strings.TrimRight(s, ` ,;:-–`)
	return strings.TrimSpace(s)
}

// stripNoisePrefix removes leading ad boilerplate ("Urgent Requirement",
// "Hiring") that the suffix heuristic tends to swallow
func stripNoisePrefix(s string) string {
	s = trimDecoration(s)
	for {
		stripped := noisePrefixRe.ReplaceAllString(s, "")
		if stripped == s {
			return s
		}
		s = stripped
	}
}

// cutClause trims a captured value at the next label word or sentence
// boundary so trailing clauses don't ride along
func cutClause(s string) string {
	s = trimDecoration(s)
	s = clauseCutRe.ReplaceAllString(s, "")
	return trimDecoration(s)
}

// cutLocation is cutClause with the location labels exempted
func cutLocation(s string) string {
	s = trimDecoration(s)
	s = locationCutRe.ReplaceAllString(s, "")
	return trimDecoration(s)
}

// collapseDigits joins grouped digit runs into one number
func collapseDigits(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}
