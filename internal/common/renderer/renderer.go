package renderer

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/project-tktt/go-postgen/internal/common/cleaner"
	"github.com/project-tktt/go-postgen/internal/domain"
)

// Disclaimer is appended to every rendered draft regardless of category
// or extraction outcome. Invariant text.
const Disclaimer = `<hr/><div class="disclaimer"><p><em>Disclaimer: This post is published for informational purposes only, based on publicly shared content. Readers are advised to verify all details directly with the concerned organization before acting on them. We do not charge any fee and are not responsible for any transaction between readers and advertisers.</em></p></div>`

// Renderer assembles the category-specific HTML skeleton from extracted
// fields and the reconstructed message lines. User-authored text is
// stripped of markup and escaped before it is embedded anywhere.
type Renderer struct {
	strip *cleaner.Cleaner
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{strip: cleaner.NewStrictCleaner()}
}

// Input carries everything a layout needs. Fields for the mandatory job
// attributes are already resolved to placeholders by the caller;
// deadline, email and contact are present only when extracted.
type Input struct {
	Category domain.Category
	Title    string
	Fields   map[domain.Field]string
	Lines    []string
	Text     string
	Link     string
}

// Render produces the HTML document for the given category. Every
// skeleton terminates with the shared disclaimer block.
func (r *Renderer) Render(in Input) string {
	var b strings.Builder
	switch in.Category {
	case domain.CategoryJobs:
		r.renderJob(&b, in)
	case domain.CategoryEvents:
		r.renderEvent(&b, in)
	case domain.CategorySchemes:
		r.renderScheme(&b, in)
	default:
		r.renderStandard(&b, in)
	}
	b.WriteString(Disclaimer)
	return b.String()
}

// labelLineRe matches lines that are field labels rather than prose, so
// paragraph reconstruction can skip them
var labelLineRe = regexp.MustCompile(`(?i)^\s*[*#]*\s*(?:position|role|designation|profile|company(?:\s*name)?|organization|organisation|employer|(?:job\s+)?location|place|city|district|state|salary|ctc|package|experience|qualification|education|eligibility|deadline|last\s+date|email|mail|contact|phone|mobile|whatsapp)\b\s*[\s:\-–#]`)

// sentinelRe matches structured-block delimiter lines
var sentinelRe = regexp.MustCompile(`^===.*===$`)

// paragraphs rebuilds narrative <p> elements from the original lines,
// excluding label lines and block sentinels
func (r *Renderer) paragraphs(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		if labelLineRe.MatchString(line) || sentinelRe.MatchString(strings.TrimSpace(line)) {
			continue
		}
		fmt.Fprintf(&b, "<p>%s</p>\n", r.esc(line))
	}
	return b.String()
}

// esc strips markup from one piece of user-authored text. The strict
// policy already HTML-escapes what remains, so no second escape pass.
func (r *Renderer) esc(s string) string {
	return r.strip.CleanToText(s)
}

func (r *Renderer) renderJob(b *strings.Builder, in Input) {
	f := in.Fields

	fmt.Fprintf(b, `<div class="hero"><h1>%s</h1><p class="meta">%s · %s</p></div>`+"\n",
		r.esc(in.Title), r.esc(f[domain.FieldCompany]), r.esc(f[domain.FieldLocation]))

	fmt.Fprintf(b, `<h2>About the Role</h2>`+"\n")
	b.WriteString(r.paragraphs(in.Lines))

	fmt.Fprintf(b, `<h2>Key Responsibilities</h2><ul><li>Carry out the duties of the %s role as described above.</li><li>Coordinate with the team and report progress regularly.</li><li>Maintain records and follow company processes.</li></ul>`+"\n",
		r.esc(f[domain.FieldPosition]))

	fmt.Fprintf(b, `<h2>Eligibility</h2><p>Qualification: %s</p><p>Experience: %s</p>`+"\n",
		r.esc(f[domain.FieldQualification]), r.esc(f[domain.FieldExperience]))

	b.WriteString(`<h2>Job Overview</h2><table class="overview"><tbody>` + "\n")
	fmt.Fprintf(b, `<tr><th>Position</th><td>%s</td></tr>`+"\n", r.esc(f[domain.FieldPosition]))
	fmt.Fprintf(b, `<tr><th>Company</th><td>%s</td></tr>`+"\n", r.esc(f[domain.FieldCompany]))
	fmt.Fprintf(b, `<tr><th>Location</th><td>%s</td></tr>`+"\n", r.esc(f[domain.FieldLocation]))
	fmt.Fprintf(b, `<tr><th>Salary</th><td>%s</td></tr>`+"\n", r.esc(f[domain.FieldSalary]))
	if deadline := f[domain.FieldDeadline]; deadline != "" {
		fmt.Fprintf(b, `<tr><th>Last Date</th><td>%s</td></tr>`+"\n", r.esc(deadline))
	}
	b.WriteString(`</tbody></table>` + "\n")

	r.renderApply(b, in)

	b.WriteString(`<h2>Frequently Asked Questions</h2>` + "\n")
	fmt.Fprintf(b, `<div class="faq"><p><strong>What is the salary for this position?</strong></p><p>The offered salary is %s.</p></div>`+"\n",
		r.esc(f[domain.FieldSalary]))
	fmt.Fprintf(b, `<div class="faq"><p><strong>How much experience is required?</strong></p><p>%s.</p></div>`+"\n",
		r.esc(f[domain.FieldExperience]))
	b.WriteString(`<div class="faq"><p><strong>Is there any fee for applying?</strong></p><p>No. Genuine employers never charge candidates for applying. Do not pay anyone for this job.</p></div>` + "\n")
}

// renderApply writes the how-to-apply block with clickable phone/email
// actions, or a warning note when neither was extracted
func (r *Renderer) renderApply(b *strings.Builder, in Input) {
	email := in.Fields[domain.FieldEmail]
	contact := in.Fields[domain.FieldContact]

	if email == "" && contact == "" && in.Link == "" {
		b.WriteString(`<div class="apply warn"><p>No contact details could be identified in this posting. Please refer to the original announcement before applying.</p></div>` + "\n")
		return
	}

	b.WriteString(`<div class="apply"><h2>How to Apply</h2>` + "\n")
	if contact != "" {
		fmt.Fprintf(b, `<p>Call or WhatsApp: <a href="tel:%s">%s</a></p>`+"\n", r.esc(contact), r.esc(contact))
	}
	if email != "" {
		fmt.Fprintf(b, `<p>Send your resume to <a href="mailto:%s">%s</a></p>`+"\n", r.esc(email), r.esc(email))
	}
	if in.Link != "" {
		fmt.Fprintf(b, `<p><a href="%s" rel="nofollow">Apply Online</a></p>`+"\n", html.EscapeString(in.Link))
	}
	b.WriteString(`</div>` + "\n")
}

func (r *Renderer) renderEvent(b *strings.Builder, in Input) {
	f := in.Fields

	fmt.Fprintf(b, `<div class="hero"><h1>%s</h1></div>`+"\n", r.esc(in.Title))

	when := f[domain.FieldDeadline]
	if when == "" {
		when = "See details below"
	}
	where := f[domain.FieldLocation]
	if where == "" {
		where = "Online / To be announced"
	}
	registration := "Not required"
	if in.Link != "" {
		registration = "Registration link below"
	}
	fmt.Fprintf(b, `<div class="cards"><div class="card"><h3>When</h3><p>%s</p></div><div class="card"><h3>Where</h3><p>%s</p><p>%s</p></div></div>`+"\n",
		r.esc(when), r.esc(where), registration)

	b.WriteString(`<h2>Event Details</h2>` + "\n")
	b.WriteString(r.paragraphs(in.Lines))

	if in.Link != "" {
		fmt.Fprintf(b, `<div class="cta"><a href="%s" rel="nofollow">Register Here</a></div>`+"\n", html.EscapeString(in.Link))
	}
}

func (r *Renderer) renderScheme(b *strings.Builder, in Input) {
	f := in.Fields

	fmt.Fprintf(b, `<div class="hero"><h1>%s</h1></div>`+"\n", r.esc(in.Title))

	benefit := f[domain.FieldSalary]
	if benefit == "" {
		benefit = "See guidelines below"
	}
	eligibility := f[domain.FieldQualification]
	if eligibility == "" {
		eligibility = "See guidelines below"
	}
	deadline := f[domain.FieldDeadline]
	if deadline == "" {
		deadline = "Not announced"
	}
	fmt.Fprintf(b, `<div class="highlights"><div class="row"><h3>Benefit / Subsidy</h3><p>%s</p></div><div class="row"><h3>Eligibility</h3><p>%s</p></div><div class="row"><h3>Deadline</h3><p>%s</p></div></div>`+"\n",
		r.esc(benefit), r.esc(eligibility), r.esc(deadline))

	b.WriteString(`<h2>Full Guidelines</h2><div class="guidelines">` + "\n")
	for _, line := range strings.Split(in.Text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintf(b, "<p>%s</p>\n", r.esc(line))
	}
	b.WriteString(`</div>` + "\n")
}

func (r *Renderer) renderStandard(b *strings.Builder, in Input) {
	fmt.Fprintf(b, `<div class="hero"><h1>%s</h1></div>`+"\n", r.esc(in.Title))

	if len(in.Lines) > 1 {
		fmt.Fprintf(b, `<blockquote>%s</blockquote>`+"\n", r.esc(in.Lines[1]))
	}

	b.WriteString(r.paragraphs(in.Lines))

	b.WriteString(`<h2>Our Take</h2><p>This update was shared with our community and is reproduced here for wider reach. We will keep this post updated as more information becomes available.</p>` + "\n")

	b.WriteString(`<div class="faq"><p><strong>Where does this information come from?</strong></p><p>It was shared publicly with our network. Verify specifics with the original source.</p></div>` + "\n")
}
