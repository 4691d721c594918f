package extractor

import (
	"strings"

	"github.com/project-tktt/go-postgen/internal/domain"
)

// labelToField resolves a structured-block line label to its field
var labelToField = buildLabelToField()

func buildLabelToField() map[string]domain.Field {
	m := make(map[string]domain.Field)
	for f, labels := range fieldLabels {
		for _, l := range labels {
			m[l] = f
		}
	}
	return m
}

// parseBlock pulls FIELD: value lines out of the delimited block, when
// one is present. Values that fail validation (pollution, placeholders)
// are dropped so the free-text cascade gets a chance at them instead.
func parseBlock(text string) map[domain.Field]string {
	start := strings.Index(text, BlockStart)
	if start < 0 {
		return nil
	}
	rest := text[start+len(BlockStart):]
	end := strings.Index(rest, BlockEnd)
	if end < 0 {
		return nil
	}

	values := make(map[domain.Field]string)
	for _, line := range strings.Split(rest[:end], "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		field, known := labelToField[strings.ToUpper(strings.TrimSpace(name))]
		if !known {
			continue
		}
		value = trimDecoration(value)
		if value == "" || !Validate(field, value) {
			continue
		}
		if _, dup := values[field]; dup {
			continue
		}
		values[field] = value
	}
	return values
}

// stripBlock removes the structured block so free-text rules and the
// renderer only ever see the human-authored part of the message
func stripBlock(text string) string {
	start := strings.Index(text, BlockStart)
	if start < 0 {
		return text
	}
	rest := text[start+len(BlockStart):]
	end := strings.Index(rest, BlockEnd)
	if end < 0 {
		return text
	}
	return strings.TrimSpace(text[:start] + rest[end+len(BlockEnd):])
}
