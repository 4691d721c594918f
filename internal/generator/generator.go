package generator

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/project-tktt/go-postgen/internal/common/classifier"
	"github.com/project-tktt/go-postgen/internal/common/extractor"
	"github.com/project-tktt/go-postgen/internal/common/normalizer"
	"github.com/project-tktt/go-postgen/internal/common/renderer"
	"github.com/project-tktt/go-postgen/internal/common/slugger"
	"github.com/project-tktt/go-postgen/internal/domain"
)

// Generator turns one raw text blob into a structured draft post:
// normalize, classify, extract, render, then derive title/slug/excerpt.
// It holds no mutable state and is safe for concurrent use. The clock
// only feeds the slug suffix; every other output is a pure function of
// the input text.
type Generator struct {
	normalizer *normalizer.Normalizer
	classifier *classifier.Classifier
	extractor  *extractor.Extractor
	renderer   *renderer.Renderer
	slugger    *slugger.Slugger
	now        func() time.Time
}

// NewGenerator creates a generator using the real clock
func NewGenerator() *Generator {
	return &Generator{
		normalizer: normalizer.NewNormalizer(),
		classifier: classifier.NewClassifier(),
		extractor:  extractor.NewExtractor(),
		renderer:   renderer.NewRenderer(),
		slugger:    slugger.NewSlugger(),
		now:        time.Now,
	}
}

// Generate produces the draft for one submission. It never fails:
// anything the cascade cannot extract degrades to a placeholder.
func (g *Generator) Generate(raw string) *domain.GeneratedPost {
	text := g.normalizer.Normalize(raw)
	category := g.classifier.Classify(text)
	fields := g.extractor.ExtractAll(text, category)
	link, _ := g.extractor.ExtractLink(text)
	lines := g.normalizer.Lines(text)

	resolved := g.resolve(category, fields)
	title := g.slugger.Title(category, resolved, lines)

	content := g.renderer.Render(renderer.Input{
		Category: category,
		Title:    title,
		Fields:   resolved,
		Lines:    lines,
		Text:     text,
		Link:     link,
	})

	post := &domain.GeneratedPost{
		Title:    title,
		Slug:     g.slugger.Slugify(title, g.now()),
		Excerpt:  g.excerpt(lines, title),
		Content:  content,
		Category: category,
		Keywords: g.keywords(category, resolved),
	}

	if category == domain.CategoryJobs {
		post.JobDetails = &domain.JobDetails{
			Company:         resolved[domain.FieldCompany],
			Location:        resolved[domain.FieldLocation],
			SalaryRange:     resolved[domain.FieldSalary],
			JobType:         g.extractor.DetectJobType(text),
			Experience:      fields[domain.FieldExperience],
			Qualification:   fields[domain.FieldQualification],
			Deadline:        fields[domain.FieldDeadline],
			Email:           fields[domain.FieldEmail],
			Contact:         fields[domain.FieldContact],
			ApplicationLink: link,
		}
	}

	return post
}

// resolve fills category placeholders for the fields the renderer and
// job details always need. Optional fields stay absent.
func (g *Generator) resolve(category domain.Category, fields map[domain.Field]string) map[domain.Field]string {
	resolved := make(map[domain.Field]string, len(fields))
	for f, v := range fields {
		resolved[f] = v
	}
	if category != domain.CategoryJobs {
		return resolved
	}
	for _, f := range []domain.Field{
		domain.FieldPosition,
		domain.FieldCompany,
		domain.FieldLocation,
		domain.FieldSalary,
		domain.FieldExperience,
		domain.FieldQualification,
	} {
		if resolved[f] == "" {
			resolved[f] = extractor.Default(f)
		}
	}
	return resolved
}

// excerpt takes the first prose lines, truncated for listing cards
func (g *Generator) excerpt(lines []string, title string) string {
	var parts []string
	total := 0
	for _, line := range lines {
		if total >= 160 {
			break
		}
		parts = append(parts, line)
		total += len(line)
	}
	if len(parts) == 0 {
		return title
	}
	out := strings.Join(parts, " ")
	if len(out) > 160 {
		cut := 160
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = strings.TrimSpace(out[:cut]) + "…"
	}
	return out
}

var baseKeywords = map[domain.Category][]string{
	domain.CategoryJobs:     {"jobs", "careers", "recruitment"},
	domain.CategoryEvents:   {"events", "webinar"},
	domain.CategorySchemes:  {"schemes", "government", "subsidy"},
	domain.CategoryStandard: {"news", "update"},
}

// keywords combines the category's base terms with the extracted
// position, company and location
func (g *Generator) keywords(category domain.Category, fields map[domain.Field]string) []string {
	kws := append([]string{}, baseKeywords[category]...)
	for _, f := range []domain.Field{domain.FieldPosition, domain.FieldCompany, domain.FieldLocation} {
		if v := fields[f]; v != "" {
			kws = append(kws, strings.ToLower(v))
		}
	}
	return kws
}
