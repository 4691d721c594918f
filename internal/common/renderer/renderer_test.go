package renderer

import (
	"strings"
	"testing"

	"github.com/project-tktt/go-postgen/internal/domain"
)

func jobFields() map[domain.Field]string {
	return map[domain.Field]string{
		domain.FieldPosition:      "Field Officer",
		domain.FieldCompany:       "Agrico Ltd",
		domain.FieldLocation:      "Pune",
		domain.FieldSalary:        "As Per Industry Standards",
		domain.FieldExperience:    "Freshers and experienced candidates may apply",
		domain.FieldQualification: "Any relevant qualification",
	}
}

func TestRender_AlwaysEndsWithDisclaimer(t *testing.T) {
	r := NewRenderer()

	for _, cat := range []domain.Category{
		domain.CategoryJobs,
		domain.CategoryEvents,
		domain.CategorySchemes,
		domain.CategoryStandard,
	} {
		t.Run(string(cat), func(t *testing.T) {
			out := r.Render(Input{
				Category: cat,
				Title:    "Some Title",
				Fields:   jobFields(),
				Lines:    []string{"first line", "second line"},
				Text:     "first line\nsecond line",
			})
			if !strings.HasSuffix(out, Disclaimer) {
				t.Errorf("%s output must end with the disclaimer block", cat)
			}
		})
	}
}

func TestRenderJob_ContactActions(t *testing.T) {
	r := NewRenderer()

	fields := jobFields()
	fields[domain.FieldContact] = "7276721699"
	fields[domain.FieldEmail] = "hr@agrico.in"

	out := r.Render(Input{
		Category: domain.CategoryJobs,
		Title:    "Field Officer – Job Opening at Agrico Ltd (Pune)",
		Fields:   fields,
		Lines:    []string{"Agrico Ltd", "We need a field officer"},
	})

	if !strings.Contains(out, `tel:7276721699`) {
		t.Error("contact number should render as a tel: action")
	}
	if !strings.Contains(out, `mailto:hr@agrico.in`) {
		t.Error("email should render as a mailto: action")
	}
	if strings.Contains(out, "No contact details could be identified") {
		t.Error("warning block must not appear when contact details exist")
	}
}

func TestRenderJob_WarnsWhenNoContactDetails(t *testing.T) {
	r := NewRenderer()

	out := r.Render(Input{
		Category: domain.CategoryJobs,
		Title:    "Field Officer – Job Opening at Agrico Ltd (Pune)",
		Fields:   jobFields(),
		Lines:    []string{"Agrico Ltd"},
	})

	if !strings.Contains(out, "No contact details could be identified") {
		t.Error("expected warning block when no email, phone or link was found")
	}
	if strings.Contains(out, "tel:") || strings.Contains(out, "mailto:") {
		t.Error("no contact actions should render without contact details")
	}
}

func TestRenderJob_DeadlineRowOnlyWhenPresent(t *testing.T) {
	r := NewRenderer()

	in := Input{
		Category: domain.CategoryJobs,
		Title:    "t",
		Fields:   jobFields(),
		Lines:    []string{"line"},
	}
	if out := r.Render(in); strings.Contains(out, "<th>Last Date</th>") {
		t.Error("Last Date row must be omitted when no deadline was extracted")
	}

	in.Fields[domain.FieldDeadline] = "15 June 2025"
	out := r.Render(in)
	if !strings.Contains(out, "<th>Last Date</th>") || !strings.Contains(out, "15 June 2025") {
		t.Error("Last Date row should appear with the extracted deadline")
	}
}

func TestRender_SkipsLabelAndSentinelLines(t *testing.T) {
	r := NewRenderer()

	out := r.Render(Input{
		Category: domain.CategoryJobs,
		Title:    "t",
		Fields:   jobFields(),
		Lines: []string{
			"We are expanding our field team",
			"Location: Somewhereville",
			"===POST DATA===",
			"Apply soon",
		},
	})

	if strings.Contains(out, "Somewhereville") {
		t.Error("label lines must not be reproduced as paragraphs")
	}
	if strings.Contains(out, "===POST") {
		t.Error("structured-block sentinels must not leak into the output")
	}
	if !strings.Contains(out, "We are expanding our field team") {
		t.Error("prose lines should survive as paragraphs")
	}
}

func TestRenderEvent_RegisterLink(t *testing.T) {
	r := NewRenderer()

	out := r.Render(Input{
		Category: domain.CategoryEvents,
		Title:    "Event: Agri Expo 2025",
		Fields:   map[domain.Field]string{domain.FieldLocation: "Nagpur"},
		Lines:    []string{"Agri Expo 2025", "Join us for two days of demos"},
		Link:     "https://forms.gle/abc123",
	})

	if !strings.Contains(out, `href="https://forms.gle/abc123"`) {
		t.Error("registration link should render as a CTA")
	}
	if !strings.Contains(out, "<h3>Where</h3>") || !strings.Contains(out, "Nagpur") {
		t.Error("location should fill the Where card")
	}
}

func TestRenderScheme_FullGuidelinesKeepsAllLines(t *testing.T) {
	r := NewRenderer()

	text := "New subsidy announced\nEligibility: small farmers\nApply at your taluka office"
	out := r.Render(Input{
		Category: domain.CategorySchemes,
		Title:    "Scheme: New subsidy announced",
		Fields:   map[domain.Field]string{},
		Lines:    strings.Split(text, "\n"),
		Text:     text,
	})

	// Guidelines reproduce every line, including label-shaped ones
	if !strings.Contains(out, "small farmers") {
		t.Error("guideline lines must be reproduced in full")
	}
	if !strings.Contains(out, "Benefit / Subsidy") {
		t.Error("highlights block missing")
	}
}

func TestRenderStandard_QuotesSecondLine(t *testing.T) {
	r := NewRenderer()

	out := r.Render(Input{
		Category: domain.CategoryStandard,
		Title:    "Community Update",
		Fields:   map[domain.Field]string{},
		Lines:    []string{"Community Update", "Rain expected this week"},
	})

	if !strings.Contains(out, "<blockquote>") || !strings.Contains(out, "Rain expected this week") {
		t.Error("second line should render as a blockquote")
	}
}
