package postgres

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/recruitment-service/internal/application"
	appdm "github.com/frahmantamala/recruitment-service/internal/core/datamodel/application"
)

// ApplicationRepository implements application.Repository using GORM.
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) application.Repository {
	return &ApplicationRepository{db: db}
}

// SubmitApplication persists one submission as a single transaction:
// competence-profile rows, then availability rows, then exactly one
// application row with the unhandled status. Any failure, including the
// status lookup or the final insert returning no id, rolls everything back.
func (r *ApplicationRepository) SubmitApplication(sub *application.Submission) (int64, error) {
	var applicationID int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range sub.Competences {
			row := appdm.CompetenceProfile{
				PersonID:          sub.PersonID,
				CompetenceID:      entry.CompetenceID,
				YearsOfExperience: entry.YearsOfExperience,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert competence profile: %w", err)
			}
		}

		for _, period := range sub.Availability {
			row := appdm.Availability{
				PersonID: sub.PersonID,
				FromDate: period.FromDate,
				ToDate:   period.ToDate,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert availability: %w", err)
			}
		}

		var status appdm.Status
		if err := tx.Where("name = ?", application.StatusUnhandled).First(&status).Error; err != nil {
			return fmt.Errorf("resolve unhandled status: %w", err)
		}

		row := appdm.Application{
			PersonID:  sub.PersonID,
			StatusID:  status.ID,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("insert application: %w", err)
		}
		if row.ID == 0 {
			return fmt.Errorf("insert application: no id returned")
		}

		applicationID = row.ID
		return nil
	})

	if err != nil {
		return 0, err
	}
	return applicationID, nil
}

// GetAllApplications joins person and status data into the recruiter list,
// ordered by application id for a stable listing.
func (r *ApplicationRepository) GetAllApplications() ([]*application.Summary, error) {
	var summaries []*application.Summary

	err := r.db.
		Table("applications").
		Select(`applications.id, persons.first_name, persons.last_name, persons.email,
			statuses.name AS status, applications.created_at`).
		Joins("JOIN persons ON persons.id = applications.person_id").
		Joins("JOIN statuses ON statuses.id = applications.status_id").
		Order("applications.id ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}

	return summaries, nil
}

// GetApplicationByID loads the summary plus the applicant's declared
// competences and availability periods.
func (r *ApplicationRepository) GetApplicationByID(id int64) (*application.Detail, error) {
	var summary application.Summary

	err := r.db.
		Table("applications").
		Select(`applications.id, persons.first_name, persons.last_name, persons.email,
			statuses.name AS status, applications.created_at`).
		Joins("JOIN persons ON persons.id = applications.person_id").
		Joins("JOIN statuses ON statuses.id = applications.status_id").
		Where("applications.id = ?", id).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	if summary.ID == 0 {
		return nil, application.ErrNotFound
	}

	var personID int64
	if err := r.db.Raw("SELECT person_id FROM applications WHERE id = ?", id).Row().Scan(&personID); err != nil {
		return nil, err
	}

	var competences []application.CompetenceDetail
	err = r.db.
		Table("competence_profile").
		Select("competence_profile.competence_id, competences.name, competence_profile.years_of_experience").
		Joins("JOIN competences ON competences.id = competence_profile.competence_id").
		Where("competence_profile.person_id = ?", personID).
		Order("competence_profile.id ASC").
		Scan(&competences).Error
	if err != nil {
		return nil, err
	}

	var availability []application.AvailabilityPeriod
	err = r.db.
		Table("availability").
		Select("from_date, to_date").
		Where("person_id = ?", personID).
		Order("id ASC").
		Scan(&availability).Error
	if err != nil {
		return nil, err
	}

	return &application.Detail{
		Summary:      summary,
		Competences:  competences,
		Availability: availability,
	}, nil
}
