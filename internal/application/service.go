package application

import (
	"log/slog"

	errors "github.com/frahmantamala/recruitment-service/internal"
)

// Repository defines the data access methods for applications. Submit must
// be all-or-nothing: on any failure no competence, availability or
// application row may persist.
type Repository interface {
	SubmitApplication(sub *Submission) (int64, error)
	GetAllApplications() ([]*Summary, error)
	GetApplicationByID(id int64) (*Detail, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Submit validates the payload and persists it as one atomic unit. The
// repository error is never forwarded to the caller: a failed submission
// surfaces as a generic condition without partial row identifiers.
func (s *Service) Submit(dto SubmitDTO) (*SubmitResponse, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("submission rejected by validation", "user_id", dto.UserID, "error", err.GetDetailedMessage())
		return nil, err
	}

	applicationID, err := s.repo.SubmitApplication(dto.ToSubmission())
	if err != nil {
		s.logger.Error("submission transaction failed", "error", err, "user_id", dto.UserID)
		return nil, errors.NewInternalError("application submission failed", err)
	}

	s.logger.Info("application submitted",
		"application_id", applicationID,
		"user_id", dto.UserID,
		"competences", len(dto.Competences),
		"availability_periods", len(dto.Availability))

	return &SubmitResponse{ApplicationID: applicationID}, nil
}

// GetAllApplications returns the recruiter list view. An empty result is a
// valid, non-error outcome.
func (s *Service) GetAllApplications() ([]*Summary, error) {
	summaries, err := s.repo.GetAllApplications()
	if err != nil {
		s.logger.Error("failed to list applications", "error", err)
		return nil, errors.NewInternalError("failed to list applications", err)
	}
	if summaries == nil {
		summaries = []*Summary{}
	}
	return summaries, nil
}

func (s *Service) GetApplicationByID(id int64) (*Detail, error) {
	detail, err := s.repo.GetApplicationByID(id)
	if err != nil {
		if err == ErrNotFound {
			return nil, errors.ErrApplicationNotFound
		}
		s.logger.Error("failed to get application", "error", err, "application_id", id)
		return nil, errors.NewInternalError("failed to get application", err)
	}
	return detail, nil
}
