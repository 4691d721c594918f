package normalizer

import (
	"regexp"
	"strings"
)

// Normalizer cleans up raw pasted text before classification and extraction
type Normalizer struct{}

// NewNormalizer creates a new normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

var (
	// Forwarding artifacts left by messaging apps
	forwardedRe = regexp.MustCompile(`(?i)-*\s*forwarded message\s*-*|^\s*forwarded\s*$`)

	// Runs of 2+ emphasis characters used as decorative separators
	dividerRe = regexp.MustCompile(`[*_]{2,}`)

	// Trailing whitespace before each line break
	trailingWSRe = regexp.MustCompile(`[ \t]+(\r?\n)`)
)

// Normalize strips forwarding markers, collapses decorative divider runs
// and trims trailing whitespace per line. No line is dropped here; blank
// lines survive so callers can split the text themselves.
func (n *Normalizer) Normalize(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = forwardedRe.ReplaceAllString(line, "")
	}
	text = strings.Join(lines, "\n")

	text = dividerRe.ReplaceAllString(text, "")
	text = trailingWSRe.ReplaceAllString(text, "$1")

	return strings.TrimSpace(text)
}

// Lines splits normalized text into trimmed non-empty lines
func (n *Normalizer) Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
