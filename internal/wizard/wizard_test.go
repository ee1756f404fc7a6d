package wizard_test

import (
	"context"
	"errors"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/recruitment-service/internal/application"
	"github.com/frahmantamala/recruitment-service/internal/wizard"
)

// Fake submitter for testing
type fakeSubmitter struct {
	calls     int
	lastDTO   application.SubmitDTO
	submitErr error
	response  *application.SubmitResponse
}

func (f *fakeSubmitter) SubmitApplication(ctx context.Context, dto application.SubmitDTO) (*application.SubmitResponse, error) {
	f.calls++
	f.lastDTO = dto
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.response, nil
}

var _ = Describe("Wizard", func() {
	var (
		store     *wizard.MemoryStore
		submitter *fakeSubmitter
		lg        *slog.Logger
	)

	fillDraft := func(w *wizard.Wizard) {
		Expect(w.AddCompetence(application.CompetenceEntry{CompetenceID: 1, YearsOfExperience: 2.5})).To(Succeed())
		Expect(w.Next()).To(Succeed())
		Expect(w.AddAvailability(application.AvailabilityPeriod{FromDate: "2026-06-01", ToDate: "2026-08-31"})).To(Succeed())
		Expect(w.Next()).To(Succeed())
	}

	BeforeEach(func() {
		store = wizard.NewMemoryStore()
		submitter = &fakeSubmitter{response: &application.SubmitResponse{ApplicationID: 11}}
		lg = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	})

	It("should persist every draft change to the store", func() {
		w := wizard.New(store, submitter, lg)

		Expect(w.AddCompetence(application.CompetenceEntry{CompetenceID: 1, YearsOfExperience: 1})).To(Succeed())

		cached, ok, err := store.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(cached.Competences).To(HaveLen(1))
	})

	It("should resume from a cached draft", func() {
		first := wizard.New(store, submitter, lg)
		Expect(first.AddCompetence(application.CompetenceEntry{CompetenceID: 3, YearsOfExperience: 1})).To(Succeed())

		resumed := wizard.New(store, submitter, lg)

		Expect(resumed.Draft().Competences).To(HaveLen(1))
		Expect(resumed.Draft().Competences[0].CompetenceID).To(Equal(int64(3)))
	})

	It("should surface reducer errors without touching the draft", func() {
		w := wizard.New(store, submitter, lg)
		Expect(w.AddCompetence(application.CompetenceEntry{CompetenceID: 1, YearsOfExperience: 1})).To(Succeed())

		err := w.AddCompetence(application.CompetenceEntry{CompetenceID: 1, YearsOfExperience: 2})

		Expect(err).To(Equal(wizard.ErrDuplicateCompetence))
		Expect(w.Draft().Competences).To(HaveLen(1))
	})

	Describe("Confirm", func() {
		It("should submit the whole draft once and clear it on success", func() {
			w := wizard.New(store, submitter, lg)
			fillDraft(w)

			resp, err := w.Confirm(context.Background(), 42)

			Expect(err).ToNot(HaveOccurred())
			Expect(resp.ApplicationID).To(Equal(int64(11)))
			Expect(submitter.calls).To(Equal(1))
			Expect(submitter.lastDTO.UserID).To(Equal(int64(42)))
			Expect(submitter.lastDTO.Competences).To(HaveLen(1))

			Expect(w.Draft().Competences).To(BeEmpty())
			Expect(w.Draft().Step).To(Equal(wizard.StepCompetence))

			_, ok, err := store.Load()
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("should retain the draft when submission fails", func() {
			w := wizard.New(store, submitter, lg)
			fillDraft(w)
			submitter.submitErr = errors.New("connection reset")

			_, err := w.Confirm(context.Background(), 42)

			Expect(err).To(HaveOccurred())
			Expect(w.Draft().Competences).To(HaveLen(1))
			Expect(w.Draft().Availability).To(HaveLen(1))
			Expect(w.Draft().Step).To(Equal(wizard.StepReview))

			// an explicit retry sends a fresh request
			submitter.submitErr = nil
			resp, err := w.Confirm(context.Background(), 42)
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.ApplicationID).To(Equal(int64(11)))
			Expect(submitter.calls).To(Equal(2))
		})
	})

	It("should work without a store", func() {
		w := wizard.New(nil, submitter, lg)

		Expect(w.AddCompetence(application.CompetenceEntry{CompetenceID: 1, YearsOfExperience: 1})).To(Succeed())
		Expect(w.Draft().Competences).To(HaveLen(1))
	})
})
