package generator

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/project-tktt/go-postgen/internal/common/renderer"
	"github.com/project-tktt/go-postgen/internal/domain"
)

func newTestGenerator() *Generator {
	g := NewGenerator()
	g.now = func() time.Time { return time.Unix(0, 1234) }
	return g
}

const jobAd = `Urgent Requirement
BASF India Ltd
Position :- FDO / Sr.FDO
Qualification :- Diploma in Agriculture
Location - Nagpur District
Contact Shubham Mundhe (TM) 7276721699`

func TestGenerate_JobPost(t *testing.T) {
	g := newTestGenerator()

	post := g.Generate(jobAd)

	if post.Category != domain.CategoryJobs {
		t.Fatalf("category = %s, want jobs", post.Category)
	}
	if post.Title != "FDO / Sr.FDO – Job Opening at BASF India Ltd (Nagpur District)" {
		t.Errorf("title = %q", post.Title)
	}
	if post.JobDetails == nil {
		t.Fatal("job post must carry job details")
	}
	if post.JobDetails.Company != "BASF India Ltd" {
		t.Errorf("company = %q", post.JobDetails.Company)
	}
	if post.JobDetails.Contact != "7276721699" {
		t.Errorf("contact = %q", post.JobDetails.Contact)
	}
	if post.JobDetails.JobType != "Full Time" {
		t.Errorf("job type = %q, want the default", post.JobDetails.JobType)
	}
	if !strings.Contains(post.Content, "Diploma in Agriculture") {
		t.Error("qualification should appear in the rendered content")
	}
}

func TestGenerate_JobDetailsNeverEmptyForMandatoryFields(t *testing.T) {
	g := newTestGenerator()

	// A job post with nothing extractable still gets full mandatory details
	post := g.Generate("urgent opening, details to follow soon")

	if post.Category != domain.CategoryJobs {
		t.Fatalf("category = %s, want jobs", post.Category)
	}
	d := post.JobDetails
	if d == nil {
		t.Fatal("job details missing")
	}
	if d.Company == "" || d.Location == "" || d.SalaryRange == "" || d.JobType == "" {
		t.Errorf("mandatory job details must be placeholder-filled, got %+v", d)
	}
	if d.Company != "Reputed Organization" || d.Location != "India" {
		t.Errorf("unexpected placeholders: %+v", d)
	}
}

func TestGenerate_NonJobHasNoJobDetails(t *testing.T) {
	g := newTestGenerator()

	post := g.Generate("Good morning everyone, have a nice day")
	if post.Category != domain.CategoryStandard {
		t.Fatalf("category = %s, want standard", post.Category)
	}
	if post.JobDetails != nil {
		t.Errorf("standard post must not carry job details, got %+v", post.JobDetails)
	}
}

func TestGenerate_ContentEndsWithDisclaimer(t *testing.T) {
	g := newTestGenerator()

	for _, text := range []string{
		jobAd,
		"Join our webinar with guest speaker on Friday",
		"New subsidy announced for drip irrigation",
		"Good morning everyone",
	} {
		post := g.Generate(text)
		if !strings.HasSuffix(post.Content, renderer.Disclaimer) {
			t.Errorf("content for %q must end with the disclaimer", post.Category)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	g := newTestGenerator()

	a := g.Generate(jobAd)
	b := g.Generate(jobAd)

	if a.Title != b.Title || a.Slug != b.Slug || a.Excerpt != b.Excerpt || a.Content != b.Content {
		t.Error("same input and clock must produce identical output")
	}
	if !reflect.DeepEqual(a.Keywords, b.Keywords) || !reflect.DeepEqual(a.JobDetails, b.JobDetails) {
		t.Error("keywords and job details must be deterministic")
	}
}

func TestGenerate_SlugShape(t *testing.T) {
	g := newTestGenerator()

	post := g.Generate(jobAd)
	if !regexp.MustCompile(`^[a-z0-9-]+-\d{4}$`).MatchString(post.Slug) {
		t.Errorf("slug = %q, want url-safe base with 4-digit suffix", post.Slug)
	}
}

func TestGenerate_ExcerptLength(t *testing.T) {
	g := newTestGenerator()

	long := strings.Repeat("This field officer opening covers several talukas in the district. ", 10)
	post := g.Generate("urgent hiring\n" + long)

	if post.Excerpt == "" {
		t.Fatal("excerpt must not be empty")
	}
	if len(post.Excerpt) > 170 {
		t.Errorf("excerpt length = %d, want truncated near 160", len(post.Excerpt))
	}
	if !strings.HasSuffix(post.Excerpt, "…") {
		t.Error("long excerpt should end with an ellipsis")
	}
}

func TestGenerate_SchemeHighlights(t *testing.T) {
	g := newTestGenerator()

	post := g.Generate(`New scheme announced for farmers
Subsidy: Rs. 50,000 per hectare
Eligibility: small and marginal farmers
Last Date: 15 June 2025`)

	if post.Category != domain.CategorySchemes {
		t.Fatalf("category = %s, want schemes", post.Category)
	}
	if !strings.Contains(post.Content, "<h3>Benefit / Subsidy</h3><p>Rs. 50,000</p>") {
		t.Error("benefit highlight should carry the extracted subsidy amount")
	}
	if !strings.Contains(post.Content, "<h3>Eligibility</h3><p>small and marginal farmers</p>") {
		t.Error("eligibility highlight should carry the extracted eligibility line")
	}
	if !strings.Contains(post.Content, "<h3>Deadline</h3><p>15 June 2025</p>") {
		t.Error("deadline highlight should carry the extracted date")
	}
	if strings.Contains(post.Content, "See guidelines below") {
		t.Error("highlight fallbacks must not appear when values were extracted")
	}
}

func TestGenerate_ExcerptTruncatesOnRuneBoundary(t *testing.T) {
	g := newTestGenerator()

	post := g.Generate("urgent hiring\n" + strings.Repeat("₹", 100))

	if !utf8.ValidString(post.Excerpt) {
		t.Errorf("excerpt is not valid UTF-8: %q", post.Excerpt)
	}
	if !strings.HasSuffix(post.Excerpt, "…") {
		t.Error("truncated excerpt should end with an ellipsis")
	}
}

func TestGenerate_Keywords(t *testing.T) {
	g := newTestGenerator()

	post := g.Generate(jobAd)

	want := map[string]bool{"jobs": true, "basf india ltd": true, "nagpur district": true}
	for _, kw := range post.Keywords {
		delete(want, kw)
	}
	if len(want) != 0 {
		t.Errorf("keywords %v missing expected entries %v", post.Keywords, want)
	}
}

func TestGenerate_ForwardedWrapperIgnored(t *testing.T) {
	g := newTestGenerator()

	wrapped := "---------- Forwarded message ----------\n" + jobAd
	a := g.Generate(wrapped)
	b := g.Generate(jobAd)

	if a.Title != b.Title || a.Category != b.Category {
		t.Error("forwarding wrapper must not change classification or title")
	}
	if !reflect.DeepEqual(a.JobDetails, b.JobDetails) {
		t.Error("forwarding wrapper must not change extracted details")
	}
}
