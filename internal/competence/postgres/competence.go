package postgres

import (
	"gorm.io/gorm"

	"github.com/frahmantamala/recruitment-service/internal/competence"
	competencedm "github.com/frahmantamala/recruitment-service/internal/core/datamodel/competence"
)

type CompetenceRepository struct {
	db *gorm.DB
}

func NewCompetenceRepository(db *gorm.DB) competence.RepositoryAPI {
	return &CompetenceRepository{db: db}
}

func (r *CompetenceRepository) GetAll() ([]*competencedm.Competence, error) {
	var competences []*competencedm.Competence
	err := r.db.Order("id ASC").Find(&competences).Error
	return competences, err
}

func (r *CompetenceRepository) GetByID(id int64) (*competencedm.Competence, error) {
	var row competencedm.Competence
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
