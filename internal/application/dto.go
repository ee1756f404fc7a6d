package application

import (
	"fmt"

	errors "github.com/frahmantamala/recruitment-service/internal"
	"github.com/frahmantamala/recruitment-service/internal/core/validation"
)

// SubmitDTO is the transport shape for POST /application/submit. UserID is
// overridden server-side with the authenticated caller's id before
// validation, so a client cannot submit on behalf of someone else.
type SubmitDTO struct {
	Competences  []CompetenceEntry    `json:"competences"`
	Availability []AvailabilityPeriod `json:"availability"`
	UserID       int64                `json:"userId"`
}

// Validate applies the submission-level rule and every per-element check,
// accumulating field-level errors for the boundary to render verbatim.
func (d SubmitDTO) Validate() *errors.AppError {
	v := validation.NewValidator()

	v.Field("userId", d.UserID).Custom(func(val interface{}) *errors.AppError {
		if id, ok := val.(int64); !ok || id <= 0 {
			return errors.NewValidationFieldError("userId", "a positive owning user id is required", errors.ErrCodeValidationFailed)
		}
		return nil
	})

	v.Field("competences", d.Competences).Custom(func(interface{}) *errors.AppError {
		if len(d.Competences) == 0 {
			return errors.NewValidationFieldError("competences", "at least one competence entry is required", errors.ErrCodeInvalidCompetence)
		}
		return nil
	})

	v.Field("availability", d.Availability).Custom(func(interface{}) *errors.AppError {
		if len(d.Availability) == 0 {
			return errors.NewValidationFieldError("availability", "at least one availability period is required", errors.ErrCodeInvalidPeriod)
		}
		return nil
	})

	seen := make(map[int64]bool, len(d.Competences))
	for i, entry := range d.Competences {
		field := fmt.Sprintf("competences[%d]", i)
		entry := entry
		v.Field(field, entry).Custom(func(interface{}) *errors.AppError {
			if !validation.IsInt(float64(entry.CompetenceID), 1) {
				return errors.NewValidationFieldError(field, "competence_id must be a positive integer", errors.ErrCodeInvalidCompetence)
			}
			if !validation.IsYearsOfExperience(entry.YearsOfExperience) {
				return errors.NewValidationFieldError(field, "years_of_experience must be a non-negative number of the form DD.DD", errors.ErrCodeInvalidExperience)
			}
			if seen[entry.CompetenceID] {
				return errors.NewValidationFieldError(field, "competence declared more than once", errors.ErrCodeInvalidCompetence)
			}
			seen[entry.CompetenceID] = true
			return nil
		})
	}

	for i, period := range d.Availability {
		field := fmt.Sprintf("availability[%d]", i)
		period := period
		v.Field(field, period).Custom(func(interface{}) *errors.AppError {
			if !validation.IsISO8601(period.FromDate) || !validation.IsISO8601(period.ToDate) {
				return errors.NewValidationFieldError(field, "dates must be valid YYYY-MM-DD calendar dates", errors.ErrCodeInvalidDate)
			}
			if !validation.IsValidAvailabilityPeriod(period.FromDate, period.ToDate) {
				return errors.NewValidationFieldError(field, "from_date must be strictly before to_date", errors.ErrCodeInvalidPeriod)
			}
			return nil
		})
	}

	return v.Validate()
}

// ToSubmission converts a validated DTO into the writer's input.
func (d SubmitDTO) ToSubmission() *Submission {
	return &Submission{
		PersonID:     d.UserID,
		Competences:  d.Competences,
		Availability: d.Availability,
	}
}

// SubmitResponse carries the new application identifier back to the client.
type SubmitResponse struct {
	ApplicationID int64 `json:"application_id"`
}
