package wizard

import (
	"errors"

	"github.com/frahmantamala/recruitment-service/internal/application"
	"github.com/frahmantamala/recruitment-service/internal/core/validation"
)

// Step is the wizard position: competence entry, availability entry, then
// review. Navigation is linear; moving forward requires the current step's
// minimum content, moving backward is always allowed.
type Step string

const (
	StepCompetence   Step = "competence"
	StepAvailability Step = "availability"
	StepReview       Step = "review"
)

var (
	ErrDuplicateCompetence = errors.New("competence already present in draft")
	ErrInvalidCompetence   = errors.New("invalid competence entry")
	ErrInvalidPeriod       = errors.New("availability period end must be strictly after start")
	ErrOverlappingPeriod   = errors.New("availability period overlaps an existing draft period")
	ErrStepIncomplete      = errors.New("current step requires at least one entry")
	ErrNoSuchEntry         = errors.New("no such draft entry")
)

// Draft is the serializable wizard state. All reducers are pure: they
// return a new Draft and never mutate the receiver.
type Draft struct {
	Step         Step                             `json:"step"`
	Competences  []application.CompetenceEntry    `json:"competences"`
	Availability []application.AvailabilityPeriod `json:"availability"`
}

func NewDraft() Draft {
	return Draft{Step: StepCompetence}
}

// AddCompetence rejects entries whose competence id is already drafted or
// whose fields fail the shared validators.
func (d Draft) AddCompetence(entry application.CompetenceEntry) (Draft, error) {
	if !validation.IsValidCompetenceEntry(entry.CompetenceID, entry.YearsOfExperience) {
		return d, ErrInvalidCompetence
	}
	for _, existing := range d.Competences {
		if existing.CompetenceID == entry.CompetenceID {
			return d, ErrDuplicateCompetence
		}
	}

	next := d.clone()
	next.Competences = append(next.Competences, entry)
	return next, nil
}

func (d Draft) RemoveCompetence(competenceID int64) (Draft, error) {
	for i, existing := range d.Competences {
		if existing.CompetenceID == competenceID {
			next := d.clone()
			next.Competences = append(next.Competences[:i], next.Competences[i+1:]...)
			return next, nil
		}
	}
	return d, ErrNoSuchEntry
}

// AddAvailability rejects periods whose end is not strictly after the start
// and periods overlapping (inclusive) any existing draft period. Adjacent
// periods do not overlap.
func (d Draft) AddAvailability(period application.AvailabilityPeriod) (Draft, error) {
	if !validation.IsValidAvailabilityPeriod(period.FromDate, period.ToDate) {
		return d, ErrInvalidPeriod
	}
	for _, existing := range d.Availability {
		if period.FromDate <= existing.ToDate && existing.FromDate <= period.ToDate {
			return d, ErrOverlappingPeriod
		}
	}

	next := d.clone()
	next.Availability = append(next.Availability, period)
	return next, nil
}

func (d Draft) RemoveAvailability(period application.AvailabilityPeriod) (Draft, error) {
	for i, existing := range d.Availability {
		if existing == period {
			next := d.clone()
			next.Availability = append(next.Availability[:i], next.Availability[i+1:]...)
			return next, nil
		}
	}
	return d, ErrNoSuchEntry
}

// Next advances one step, gated on the current step's minimum content.
func (d Draft) Next() (Draft, error) {
	switch d.Step {
	case StepCompetence:
		if len(d.Competences) == 0 {
			return d, ErrStepIncomplete
		}
		next := d.clone()
		next.Step = StepAvailability
		return next, nil
	case StepAvailability:
		if len(d.Availability) == 0 {
			return d, ErrStepIncomplete
		}
		next := d.clone()
		next.Step = StepReview
		return next, nil
	default:
		return d, nil
	}
}

// Back moves one step toward competence entry; always allowed.
func (d Draft) Back() Draft {
	next := d.clone()
	switch d.Step {
	case StepReview:
		next.Step = StepAvailability
	case StepAvailability:
		next.Step = StepCompetence
	}
	return next
}

func (d Draft) Clear() Draft {
	return NewDraft()
}

// ToSubmitDTO assembles the one-shot submission sent at final confirmation.
func (d Draft) ToSubmitDTO(userID int64) application.SubmitDTO {
	return application.SubmitDTO{
		Competences:  append([]application.CompetenceEntry(nil), d.Competences...),
		Availability: append([]application.AvailabilityPeriod(nil), d.Availability...),
		UserID:       userID,
	}
}

func (d Draft) clone() Draft {
	return Draft{
		Step:         d.Step,
		Competences:  append([]application.CompetenceEntry(nil), d.Competences...),
		Availability: append([]application.AvailabilityPeriod(nil), d.Availability...),
	}
}
