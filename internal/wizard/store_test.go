package wizard_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/recruitment-service/internal/application"
	"github.com/frahmantamala/recruitment-service/internal/wizard"
)

var _ = Describe("FileStore", func() {
	var (
		path  string
		store *wizard.FileStore
	)

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "draft.json")
		store = wizard.NewFileStore(path)
	})

	It("should report no cached draft before the first save", func() {
		_, ok, err := store.Load()

		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("should round-trip a saved draft", func() {
		draft, err := wizard.NewDraft().AddCompetence(application.CompetenceEntry{
			CompetenceID:      1,
			YearsOfExperience: 2.5,
		})
		Expect(err).ToNot(HaveOccurred())
		draft, err = draft.Next()
		Expect(err).ToNot(HaveOccurred())

		Expect(store.Save(draft)).To(Succeed())

		loaded, ok, err := store.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(loaded.Step).To(Equal(wizard.StepAvailability))
		Expect(loaded.Competences).To(HaveLen(1))
		Expect(loaded.Competences[0].YearsOfExperience).To(Equal(2.5))
	})

	It("should discard a corrupt cache instead of failing", func() {
		Expect(os.WriteFile(path, []byte("{not json"), 0o600)).To(Succeed())

		loaded, ok, err := store.Load()

		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeFalse())
		Expect(loaded.Step).To(Equal(wizard.StepCompetence))
	})

	It("should default a missing step to the first one", func() {
		Expect(os.WriteFile(path, []byte(`{"competences":[{"competence_id":1,"years_of_experience":1}]}`), 0o600)).To(Succeed())

		loaded, ok, err := store.Load()

		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(loaded.Step).To(Equal(wizard.StepCompetence))
	})

	It("should remove the cache on Clear and tolerate a second Clear", func() {
		Expect(store.Save(wizard.NewDraft())).To(Succeed())

		Expect(store.Clear()).To(Succeed())
		_, ok, err := store.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeFalse())

		Expect(store.Clear()).To(Succeed())
	})
})

var _ = Describe("MemoryStore", func() {
	It("should round-trip the draft in memory", func() {
		store := wizard.NewMemoryStore()

		_, ok, err := store.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeFalse())

		draft, err := wizard.NewDraft().AddCompetence(application.CompetenceEntry{
			CompetenceID:      2,
			YearsOfExperience: 1,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(store.Save(draft)).To(Succeed())

		loaded, ok, err := store.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(loaded.Competences).To(HaveLen(1))

		Expect(store.Clear()).To(Succeed())
		_, ok, _ = store.Load()
		Expect(ok).To(BeFalse())
	})
})
