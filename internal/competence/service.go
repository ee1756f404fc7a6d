package competence

import (
	"log/slog"

	competencedm "github.com/frahmantamala/recruitment-service/internal/core/datamodel/competence"
)

type RepositoryAPI interface {
	GetAll() ([]*competencedm.Competence, error)
	GetByID(id int64) (*competencedm.Competence, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAllCompetences() ([]*Competence, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get competences from repository", "error", err)
		return nil, err
	}

	competences := make([]*Competence, 0, len(rows))
	for _, row := range rows {
		competences = append(competences, FromDataModel(row))
	}

	return competences, nil
}

// Exists reports whether a competence id is part of the lookup set.
func (s *Service) Exists(id int64) bool {
	row, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Warn("error checking competence existence", "competence_id", id, "error", err)
		return false
	}
	return row != nil
}
