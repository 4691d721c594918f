package extractor

import (
	"strings"
	"testing"

	"github.com/project-tktt/go-postgen/internal/domain"
)

const basfAd = `Urgent Requirement
BASF India Ltd
Position :- FDO / Sr.FDO
Qualification :- Diploma in Agriculture
Location - Nagpur District
Contact Shubham Mundhe (TM) 7276721699
Sadik Shikh 9834238304`

func TestExtract_LabeledJobAd(t *testing.T) {
	e := NewExtractor()

	fields := e.ExtractAll(basfAd, domain.CategoryJobs)

	if got := fields[domain.FieldPosition]; got != "FDO / Sr.FDO" {
		t.Errorf("position = %q, want %q", got, "FDO / Sr.FDO")
	}
	if got := fields[domain.FieldCompany]; got != "BASF India Ltd" {
		t.Errorf("company = %q, want %q", got, "BASF India Ltd")
	}
	if got := fields[domain.FieldQualification]; got != "Diploma in Agriculture" {
		t.Errorf("qualification = %q, want %q", got, "Diploma in Agriculture")
	}
	if got := fields[domain.FieldContact]; got != "7276721699" {
		t.Errorf("contact = %q, want %q", got, "7276721699")
	}

	// Location must not get polluted with the qualification text
	if got := fields[domain.FieldLocation]; got != "Nagpur District" {
		t.Errorf("location = %q, want %q", got, "Nagpur District")
	}
}

func TestExtract_CompanyAndEmailLines(t *testing.T) {
	e := NewExtractor()

	text := `We Are Hiring!
Company Name: Vivasv Farms Pvt. Ltd., Bangalore
Job Location: Hosur – Denkanikottai
Email: Farmteamsouth@wecommunities.in`

	fields := e.ExtractAll(text, domain.CategoryJobs)

	if got := fields[domain.FieldCompany]; got != "Vivasv Farms Pvt. Ltd., Bangalore" {
		t.Errorf("company = %q", got)
	}
	if got := fields[domain.FieldLocation]; got != "Hosur – Denkanikottai" {
		t.Errorf("location = %q", got)
	}
	if got := fields[domain.FieldEmail]; got != "Farmteamsouth@wecommunities.in" {
		t.Errorf("email = %q, want exact address", got)
	}
}

func TestExtract_EmphasisWrappedOrganization(t *testing.T) {
	e := NewExtractor()

	text := `Organization : *Ramcides crops science pvt Ltd.*
LOCATION - # Yavatmal- Covering whole district
Mail: hr@ramcides.com or careers@ramcides.com`

	fields := e.ExtractAll(text, domain.CategoryJobs)

	if got := fields[domain.FieldCompany]; got != "Ramcides crops science pvt Ltd." {
		t.Errorf("company = %q", got)
	}
	if got := fields[domain.FieldLocation]; got != "Yavatmal- Covering whole district" {
		t.Errorf("location = %q", got)
	}
	if got := fields[domain.FieldEmail]; got != "hr@ramcides.com" && got != "careers@ramcides.com" {
		t.Errorf("email = %q, want one of the two present addresses", got)
	}
}

func TestExtract_EmailPrefersNonPlaceholder(t *testing.T) {
	e := NewExtractor()

	text := "Write to test@example.com or jobs@agrico.in for details"
	got, ok := e.Extract(text, domain.FieldEmail)
	if !ok || got != "jobs@agrico.in" {
		t.Errorf("email = %q (ok=%v), want jobs@agrico.in", got, ok)
	}
}

func TestExtractAll_SchemeBenefitAndEligibility(t *testing.T) {
	e := NewExtractor()

	text := `New scheme announced for farmers
Subsidy: Rs. 50,000 per hectare
Eligibility: small and marginal farmers
Last Date: 15 June 2025`

	fields := e.ExtractAll(text, domain.CategorySchemes)

	if got := fields[domain.FieldSalary]; !strings.HasPrefix(got, "Rs. 50,000") {
		t.Errorf("salary = %q, want the subsidy amount", got)
	}
	if got := fields[domain.FieldQualification]; got != "small and marginal farmers" {
		t.Errorf("qualification = %q, want the eligibility line", got)
	}
	if got := fields[domain.FieldDeadline]; got != "15 June 2025" {
		t.Errorf("deadline = %q", got)
	}
}

func TestExtract_EmailTooLongRejected(t *testing.T) {
	e := NewExtractor()

	addr := strings.Repeat("a", 100) + "@agrico.in"
	if got, ok := e.Extract("Write to "+addr, domain.FieldEmail); ok {
		t.Errorf("oversized address should be rejected, got %q", got)
	}
}

func TestExtract_EmailFallsBackToFirstFound(t *testing.T) {
	e := NewExtractor()

	got, ok := e.Extract("Only test@example.com here", domain.FieldEmail)
	if !ok || got != "test@example.com" {
		t.Errorf("email = %q (ok=%v), want the only address present", got, ok)
	}
}

func TestExtract_ExperienceRejectsPhoneNumbers(t *testing.T) {
	e := NewExtractor()

	if got, ok := e.Extract("Experience: 9834238304", domain.FieldExperience); ok {
		t.Errorf("phone-shaped experience should be rejected, got %q", got)
	}

	got, ok := e.Extract("Call 9834238304 for details. 3 years experience required", domain.FieldExperience)
	if !ok || got != "3 years" {
		t.Errorf("experience = %q (ok=%v), want %q", got, ok, "3 years")
	}
}

func TestExtract_ExperienceMinimumBeatsGeneric(t *testing.T) {
	e := NewExtractor()

	got, ok := e.Extract("Company established 25 years ago. Minimum 2 years in sales needed", domain.FieldExperience)
	if !ok || got != "Minimum 2 years" {
		t.Errorf("experience = %q (ok=%v), want %q", got, ok, "Minimum 2 years")
	}
}

func TestExtract_SalaryVariants(t *testing.T) {
	e := NewExtractor()

	cases := []struct {
		text string
		want string
	}{
		{"Salary: 15000 plus incentives", "15000 plus incentives"},
		{"We offer Rs. 25,000 per month to the right candidate", "Rs. 25,000 per month"},
		{"Remuneration will be as per industry standards for this role", "as per industry standards"},
	}
	for _, tc := range cases {
		got, ok := e.Extract(tc.text, domain.FieldSalary)
		if !ok || got != tc.want {
			t.Errorf("Extract(%q, salary) = %q (ok=%v), want %q", tc.text, got, ok, tc.want)
		}
	}
}

func TestExtract_DeadlineVariants(t *testing.T) {
	e := NewExtractor()

	cases := []struct {
		text string
		want string
	}{
		{"Last Date: 15 June 2025", "15 June 2025"},
		{"Submit applications before 30th September 2025", "30th September 2025"},
		{"Interviews on 12/08/2025 at our office", "12/08/2025"},
	}
	for _, tc := range cases {
		got, ok := e.Extract(tc.text, domain.FieldDeadline)
		if !ok || got != tc.want {
			t.Errorf("Extract(%q, deadline) = %q (ok=%v), want %q", tc.text, got, ok, tc.want)
		}
	}
}

func TestExtract_ContactGroupedDigits(t *testing.T) {
	e := NewExtractor()

	got, ok := e.Extract("Reach us on 98342 38304 anytime", domain.FieldContact)
	if !ok || got != "9834238304" {
		t.Errorf("contact = %q (ok=%v), want grouped digits collapsed", got, ok)
	}
}

func TestExtract_NothingFound(t *testing.T) {
	e := NewExtractor()

	fields := e.ExtractAll("Short note with no job markers at all", domain.CategoryJobs)
	for _, f := range []domain.Field{domain.FieldCompany, domain.FieldSalary, domain.FieldDeadline} {
		if v, ok := fields[f]; ok {
			t.Errorf("expected %s to be absent, got %q", f, v)
		}
	}
}

func TestStructuredBlock_ParsedFirst(t *testing.T) {
	e := NewExtractor()

	text := BlockStart + `
POSITION: Agronomist
COMPANY: Not provided
LOCATION: Pune
` + BlockEnd + `
Position :- Field Officer
Company Name: Green Agro Ltd`

	if got, _ := e.Extract(text, domain.FieldPosition); got != "Agronomist" {
		t.Errorf("position = %q, want the structured-block value", got)
	}
	if got, _ := e.Extract(text, domain.FieldLocation); got != "Pune" {
		t.Errorf("location = %q, want the structured-block value", got)
	}

	// Placeholder in the block falls through to the free-text cascade
	if got, _ := e.Extract(text, domain.FieldCompany); got != "Green Agro Ltd" {
		t.Errorf("company = %q, want the free-text fallback", got)
	}
}

func TestStructuredBlock_PollutedValueRejected(t *testing.T) {
	block := parseBlock(BlockStart + "\nCOMPANY: Agrico LOCATION: Mumbai\n" + BlockEnd)
	if v, ok := block[domain.FieldCompany]; ok {
		t.Errorf("polluted structured value should be rejected, got %q", v)
	}
}

func TestDetectJobType(t *testing.T) {
	e := NewExtractor()

	cases := []struct {
		text string
		want string
	}{
		{"Part time work available", "Part Time"},
		{"Internship for agri graduates", "Internship"},
		{"Hiring on contractual basis", "Contract"},
		{"Regular opening", "Full Time"},
	}
	for _, tc := range cases {
		if got := e.DetectJobType(tc.text); got != tc.want {
			t.Errorf("DetectJobType(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestExtractLink(t *testing.T) {
	e := NewExtractor()

	got, ok := e.ExtractLink("Apply at https://forms.gle/abc123. Hurry!")
	if !ok || got != "https://forms.gle/abc123" {
		t.Errorf("link = %q (ok=%v)", got, ok)
	}

	if _, ok := e.ExtractLink("no links here"); ok {
		t.Error("expected no link")
	}
}
