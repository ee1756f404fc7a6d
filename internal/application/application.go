package application

import (
	"errors"
	"time"
)

// Application status names. Every submission starts as unhandled; only a
// recruiter moves it to accepted or rejected.
const (
	StatusUnhandled = "unhandled"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
)

// CompetenceEntry is one (competence, years-of-experience) pair declared by
// an applicant.
type CompetenceEntry struct {
	CompetenceID      int64   `json:"competence_id"`
	YearsOfExperience float64 `json:"years_of_experience"`
}

// AvailabilityPeriod is a date interval in YYYY-MM-DD form; FromDate must
// strictly precede ToDate.
type AvailabilityPeriod struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

// Submission is a validated application ready for the transactional writer.
type Submission struct {
	PersonID     int64
	Competences  []CompetenceEntry
	Availability []AvailabilityPeriod
}

// Summary is one row of the recruiter's application list.
type Summary struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CompetenceDetail resolves the competence name for the review view.
type CompetenceDetail struct {
	CompetenceID      int64   `json:"competence_id"`
	Name              string  `json:"name"`
	YearsOfExperience float64 `json:"years_of_experience"`
}

// Detail is the full recruiter review record for one application.
type Detail struct {
	Summary
	Competences  []CompetenceDetail   `json:"competences"`
	Availability []AvailabilityPeriod `json:"availability"`
}

var (
	ErrNotFound         = errors.New("application not found")
	ErrSubmissionFailed = errors.New("application submission failed")
)
