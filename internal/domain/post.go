package domain

import "time"

// Category is the content type assigned to a submission.
// Exactly one category is chosen per input and never revisited.
type Category string

const (
	CategoryJobs     Category = "Jobs"
	CategoryEvents   Category = "Events"
	CategorySchemes  Category = "Schemes"
	CategoryStandard Category = "Standard"
)

// Field identifies one extractable attribute of a submission
type Field string

const (
	FieldPosition      Field = "position"
	FieldCompany       Field = "company"
	FieldLocation      Field = "location"
	FieldSalary        Field = "salary"
	FieldExperience    Field = "experience"
	FieldQualification Field = "qualification"
	FieldDeadline      Field = "deadline"
	FieldEmail         Field = "email"
	FieldContact       Field = "contact"
)

// JobDetails holds the structured attributes extracted from a job posting.
// Company, location, salary range and job type always carry a value
// (placeholders when extraction failed); the rest are omitted when absent.
type JobDetails struct {
	Company         string `json:"company"`
	Location        string `json:"location"`
	SalaryRange     string `json:"salary_range"`
	JobType         string `json:"job_type"`
	Experience      string `json:"experience,omitempty"`
	Qualification   string `json:"qualification,omitempty"`
	Deadline        string `json:"deadline,omitempty"`
	Email           string `json:"email,omitempty"`
	Contact         string `json:"contact,omitempty"`
	ApplicationLink string `json:"application_link,omitempty"`
}

// GeneratedPost is the structured draft produced from one raw submission.
// JobDetails is populated only for the Jobs category.
type GeneratedPost struct {
	Title      string      `json:"title"`
	Slug       string      `json:"slug"`
	Excerpt    string      `json:"excerpt"`
	Content    string      `json:"content"`
	Category   Category    `json:"category"`
	Keywords   []string    `json:"keywords"`
	JobDetails *JobDetails `json:"job_details,omitempty"`
}

// RawSubmission is a piece of pasted text queued for async drafting
type RawSubmission struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"` // paste, url, forward
	Text        string    `json:"text"`
	SourceURL   string    `json:"source_url,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}
