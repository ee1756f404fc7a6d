package wizard_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/recruitment-service/internal/application"
	"github.com/frahmantamala/recruitment-service/internal/wizard"
)

var _ = Describe("Client", func() {
	var lg *slog.Logger

	BeforeEach(func() {
		lg = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	})

	writeJSON := func(w http.ResponseWriter, status int, body interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		Expect(json.NewEncoder(w).Encode(body)).To(Succeed())
	}

	Describe("GetCompetences", func() {
		It("should decode the success envelope", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/competences"))
				writeJSON(w, http.StatusOK, map[string]interface{}{
					"success": map[string]interface{}{
						"competences": []map[string]interface{}{
							{"id": 1, "name": "ticket sales"},
							{"id": 2, "name": "lotteries"},
						},
					},
				})
			}))
			defer server.Close()

			client, err := wizard.NewClient(server.URL, lg)
			Expect(err).ToNot(HaveOccurred())

			competences, err := client.GetCompetences(context.Background())

			Expect(err).ToNot(HaveOccurred())
			Expect(competences).To(HaveLen(2))
			Expect(competences[0].Name).To(Equal("ticket sales"))
		})

		It("should retry transient failures until the read succeeds", func() {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if atomic.AddInt32(&calls, 1) < 3 {
					writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
						"error": map[string]interface{}{"message": "temporarily unavailable"},
					})
					return
				}
				writeJSON(w, http.StatusOK, map[string]interface{}{
					"success": map[string]interface{}{
						"competences": []map[string]interface{}{{"id": 1, "name": "ticket sales"}},
					},
				})
			}))
			defer server.Close()

			client, err := wizard.NewClient(server.URL, lg)
			Expect(err).ToNot(HaveOccurred())

			competences, err := client.GetCompetences(context.Background())

			Expect(err).ToNot(HaveOccurred())
			Expect(competences).To(HaveLen(1))
			Expect(atomic.LoadInt32(&calls)).To(Equal(int32(3)))
		})

		It("should give up after the retry budget is spent", func() {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
					"error": map[string]interface{}{"message": "down"},
				})
			}))
			defer server.Close()

			client, err := wizard.NewClient(server.URL, lg)
			Expect(err).ToNot(HaveOccurred())

			_, err = client.GetCompetences(context.Background())

			Expect(err).To(HaveOccurred())
			// initial attempt plus three retries
			Expect(atomic.LoadInt32(&calls)).To(Equal(int32(4)))
		})
	})

	Describe("SubmitApplication", func() {
		dto := application.SubmitDTO{
			Competences: []application.CompetenceEntry{
				{CompetenceID: 1, YearsOfExperience: 2.5},
			},
			Availability: []application.AvailabilityPeriod{
				{FromDate: "2026-06-01", ToDate: "2026-08-31"},
			},
		}

		It("should decode the new application id", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/application/submit"))
				Expect(r.Method).To(Equal(http.MethodPost))

				var received application.SubmitDTO
				Expect(json.NewDecoder(r.Body).Decode(&received)).To(Succeed())
				Expect(received.Competences).To(HaveLen(1))

				writeJSON(w, http.StatusCreated, map[string]interface{}{
					"success": map[string]interface{}{"application_id": 17},
				})
			}))
			defer server.Close()

			client, err := wizard.NewClient(server.URL, lg)
			Expect(err).ToNot(HaveOccurred())

			resp, err := client.SubmitApplication(context.Background(), dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(resp.ApplicationID).To(Equal(int64(17)))
		})

		It("should never retry a failed submission", func() {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
					"error": map[string]interface{}{"message": "submission failed"},
				})
			}))
			defer server.Close()

			client, err := wizard.NewClient(server.URL, lg)
			Expect(err).ToNot(HaveOccurred())

			_, err = client.SubmitApplication(context.Background(), dto)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("500"))
			Expect(atomic.LoadInt32(&calls)).To(Equal(int32(1)))
		})
	})

	Describe("session cookie handling", func() {
		It("should carry the login cookie on subsequent requests", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/auth/login":
					http.SetCookie(w, &http.Cookie{Name: "Authorization", Value: "signed-token", Path: "/"})
					writeJSON(w, http.StatusOK, map[string]interface{}{
						"success": map[string]interface{}{"id": 1, "username": "jane_doe12"},
					})
				case "/application/submit":
					cookie, err := r.Cookie("Authorization")
					if err != nil || cookie.Value != "signed-token" {
						writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
							"error": map[string]interface{}{"message": "authentication required"},
						})
						return
					}
					writeJSON(w, http.StatusCreated, map[string]interface{}{
						"success": map[string]interface{}{"application_id": 1},
					})
				default:
					w.WriteHeader(http.StatusNotFound)
				}
			}))
			defer server.Close()

			client, err := wizard.NewClient(server.URL, lg)
			Expect(err).ToNot(HaveOccurred())

			Expect(client.Login(context.Background(), "jane_doe12", "Sommar2026!")).To(Succeed())

			resp, err := client.SubmitApplication(context.Background(), application.SubmitDTO{})
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.ApplicationID).To(Equal(int64(1)))
		})
	})
})
