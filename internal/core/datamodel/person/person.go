package person

import "time"

// Person is the persons table row. The password hash never serializes.
type Person struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"column:first_name;not null"`
	LastName     string    `json:"last_name" gorm:"column:last_name;not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PersonNumber string    `json:"person_number" gorm:"column:person_number;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	RoleID       int64     `json:"role_id" gorm:"column:role_id;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Person) TableName() string {
	return "persons"
}

// Role is the fixed applicant/recruiter lookup table.
type Role struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (Role) TableName() string {
	return "roles"
}
