package postgres

import (
	"gorm.io/gorm"

	"github.com/frahmantamala/recruitment-service/internal/auth"
	persondm "github.com/frahmantamala/recruitment-service/internal/core/datamodel/person"
)

// Repository implements auth.PersonRepository using GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(user *auth.User) error {
	var roleID int64
	if err := r.db.Raw("SELECT id FROM roles WHERE name = ?", user.Role).Row().Scan(&roleID); err != nil {
		return err
	}

	row := persondm.Person{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Username:     user.Username,
		Email:        user.Email,
		PersonNumber: user.PersonNumber,
		PasswordHash: user.PasswordHash,
		RoleID:       roleID,
		CreatedAt:    user.CreatedAt,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return err
	}

	user.ID = row.ID
	return nil
}

func (r *Repository) GetByUsername(username string) (*auth.User, error) {
	var row persondm.Person
	err := r.db.Where("username = ?", username).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}

	var roleName string
	if err := r.db.Raw("SELECT name FROM roles WHERE id = ?", row.RoleID).Row().Scan(&roleName); err != nil {
		return nil, err
	}

	return &auth.User{
		ID:           row.ID,
		Username:     row.Username,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Email:        row.Email,
		PersonNumber: row.PersonNumber,
		Role:         roleName,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}, nil
}

func (r *Repository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&persondm.Person{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&persondm.Person{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
