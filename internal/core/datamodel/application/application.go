package application

import "time"

// Application is the applications table row. Status is the only field that
// mutates after creation.
type Application struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	PersonID  int64     `json:"person_id" gorm:"column:person_id;not null"`
	StatusID  int64     `json:"status_id" gorm:"column:status_id;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Application) TableName() string {
	return "applications"
}

// Status is the unhandled/accepted/rejected lookup table.
type Status struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (Status) TableName() string {
	return "statuses"
}

// CompetenceProfile links a person to a competence with declared experience.
type CompetenceProfile struct {
	ID                int64   `json:"id" gorm:"primaryKey"`
	PersonID          int64   `json:"person_id" gorm:"column:person_id;not null"`
	CompetenceID      int64   `json:"competence_id" gorm:"column:competence_id;not null"`
	YearsOfExperience float64 `json:"years_of_experience" gorm:"column:years_of_experience;type:numeric(4,2);not null"`
}

func (CompetenceProfile) TableName() string {
	return "competence_profile"
}

// Availability is an inclusive date interval during which a person claims to
// be available. Dates are stored as YYYY-MM-DD text so they round-trip
// unchanged through every driver.
type Availability struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	PersonID int64  `json:"person_id" gorm:"column:person_id;not null"`
	FromDate string `json:"from_date" gorm:"column:from_date;type:varchar(10);not null"`
	ToDate   string `json:"to_date" gorm:"column:to_date;type:varchar(10);not null"`
}

func (Availability) TableName() string {
	return "availability"
}
