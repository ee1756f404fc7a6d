package wizard

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/recruitment-service/internal/application"
)

// Submitter is the network surface Confirm needs; *Client satisfies it.
type Submitter interface {
	SubmitApplication(ctx context.Context, dto application.SubmitDTO) (*application.SubmitResponse, error)
}

// Wizard drives one applicant's draft through the three steps. The store
// receives a best-effort copy after every change; store failures are logged
// and ignored because the in-memory draft stays authoritative.
type Wizard struct {
	draft     Draft
	store     Store
	submitter Submitter
	logger    *slog.Logger
}

func New(store Store, submitter Submitter, logger *slog.Logger) *Wizard {
	draft := NewDraft()
	if store != nil {
		if cached, ok, err := store.Load(); err == nil && ok {
			draft = cached
		}
	}
	return &Wizard{
		draft:     draft,
		store:     store,
		submitter: submitter,
		logger:    logger,
	}
}

func (w *Wizard) Draft() Draft {
	return w.draft
}

func (w *Wizard) AddCompetence(entry application.CompetenceEntry) error {
	next, err := w.draft.AddCompetence(entry)
	if err != nil {
		return err
	}
	w.apply(next)
	return nil
}

func (w *Wizard) RemoveCompetence(competenceID int64) error {
	next, err := w.draft.RemoveCompetence(competenceID)
	if err != nil {
		return err
	}
	w.apply(next)
	return nil
}

func (w *Wizard) AddAvailability(period application.AvailabilityPeriod) error {
	next, err := w.draft.AddAvailability(period)
	if err != nil {
		return err
	}
	w.apply(next)
	return nil
}

func (w *Wizard) RemoveAvailability(period application.AvailabilityPeriod) error {
	next, err := w.draft.RemoveAvailability(period)
	if err != nil {
		return err
	}
	w.apply(next)
	return nil
}

func (w *Wizard) Next() error {
	next, err := w.draft.Next()
	if err != nil {
		return err
	}
	w.apply(next)
	return nil
}

func (w *Wizard) Back() {
	w.apply(w.draft.Back())
}

// Confirm sends the whole draft as one submission. On success the draft is
// cleared; on failure it is retained so the user may retry.
func (w *Wizard) Confirm(ctx context.Context, userID int64) (*application.SubmitResponse, error) {
	resp, err := w.submitter.SubmitApplication(ctx, w.draft.ToSubmitDTO(userID))
	if err != nil {
		w.logger.Error("submission failed, draft retained", "error", err)
		return nil, err
	}

	w.apply(w.draft.Clear())
	if w.store != nil {
		if err := w.store.Clear(); err != nil {
			w.logger.Warn("failed to clear draft cache", "error", err)
		}
	}

	w.logger.Info("application submitted", "application_id", resp.ApplicationID)
	return resp, nil
}

func (w *Wizard) apply(next Draft) {
	w.draft = next
	if w.store != nil {
		if err := w.store.Save(next); err != nil {
			w.logger.Warn("failed to persist draft cache", "error", err)
		}
	}
}
