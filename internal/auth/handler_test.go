package auth_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/recruitment-service/internal/auth"
)

var _ = Describe("AuthHandler", func() {
	var (
		router   *chi.Mux
		mockRepo *mockPersonRepository
		svc      *auth.Service
		handler  *auth.Handler
	)

	sessionCookie := func(rec *httptest.ResponseRecorder) *http.Cookie {
		for _, c := range rec.Result().Cookies() {
			if c.Name == auth.SessionCookieName {
				return c
			}
		}
		return nil
	}

	loginBody := func(username, password string) *bytes.Reader {
		data, err := json.Marshal(map[string]string{
			"username": username,
			"password": password,
		})
		Expect(err).ToNot(HaveOccurred())
		return bytes.NewReader(data)
	}

	BeforeEach(func() {
		mockRepo = newMockPersonRepository()
		tokenGen := auth.NewJWTTokenGenerator(testSecret, time.Hour)
		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = auth.NewService(mockRepo, tokenGen, bcrypt.MinCost, lg)
		handler = auth.NewHandler(svc)

		router = chi.NewRouter()
		router.Post("/auth/register", handler.Register)
		router.Post("/auth/login", handler.Login)
		router.Post("/auth/logout", handler.Logout)
		router.Get("/auth/availability", handler.Availability)

		router.Group(func(pr chi.Router) {
			pr.Use(handler.AuthMiddleware)

			pr.Group(func(ar chi.Router) {
				ar.Use(handler.RequireRole(auth.RoleApplicant))
				ar.Post("/application/submit", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusCreated)
				})
			})

			pr.Group(func(rr chi.Router) {
				rr.Use(handler.RequireRole(auth.RoleRecruiter))
				rr.Get("/admin/applications", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				})
			})
		})

		_, err := svc.Register(validRegisterDTO())
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Login", func() {
		It("should set the HTTP-only session cookie on success", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/login", loginBody("jane_doe12", "Sommar2026!"))

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			cookie := sessionCookie(rec)
			Expect(cookie).ToNot(BeNil())
			Expect(cookie.Value).ToNot(BeEmpty())
			Expect(cookie.HttpOnly).To(BeTrue())
			Expect(cookie.Expires).To(BeTemporally("~", time.Now().Add(time.Hour), time.Minute))
		})

		It("should answer 401 without a cookie on a wrong password", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/login", loginBody("jane_doe12", "WrongPass1!"))

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(sessionCookie(rec)).To(BeNil())
			Expect(rec.Body.String()).ToNot(ContainSubstring("password"))
		})

		It("should answer 401 without a cookie for an unknown username", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/login", loginBody("nobody_here", "Sommar2026!"))

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(sessionCookie(rec)).To(BeNil())
		})
	})

	Describe("Logout", func() {
		It("should expire the session cookie", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			cookie := sessionCookie(rec)
			Expect(cookie).ToNot(BeNil())
			Expect(cookie.Value).To(BeEmpty())
			Expect(cookie.MaxAge).To(BeNumerically("<", 0))
		})
	})

	Describe("AuthMiddleware", func() {
		login := func() *http.Cookie {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/login", loginBody("jane_doe12", "Sommar2026!"))
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusOK))

			cookie := sessionCookie(rec)
			Expect(cookie).ToNot(BeNil())
			return cookie
		}

		It("should answer 401 when no session cookie is present", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/application/submit", nil)

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should clear the cookie and answer 401 on a garbage token", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/application/submit", nil)
			req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "not-a-token"})

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))

			cleared := sessionCookie(rec)
			Expect(cleared).ToNot(BeNil())
			Expect(cleared.MaxAge).To(BeNumerically("<", 0))
		})

		It("should admit an applicant session to the applicant route", func() {
			cookie := login()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/application/submit", nil)
			req.AddCookie(cookie)

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
		})
	})

	Describe("RequireRole", func() {
		It("should answer 403 when an applicant session reaches a recruiter route", func() {
			loginRec := httptest.NewRecorder()
			loginReq := httptest.NewRequest(http.MethodPost, "/auth/login", loginBody("jane_doe12", "Sommar2026!"))
			router.ServeHTTP(loginRec, loginReq)

			cookie := sessionCookie(loginRec)
			Expect(cookie).ToNot(BeNil())

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin/applications", nil)
			req.AddCookie(cookie)

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("should admit a recruiter session to the recruiter route", func() {
			hash, err := bcrypt.GenerateFromPassword([]byte("Recruit1!"), bcrypt.MinCost)
			Expect(err).ToNot(HaveOccurred())
			mockRepo.users["greta_borg1"] = &auth.User{
				ID:           77,
				Username:     "greta_borg1",
				Role:         auth.RoleRecruiter,
				PasswordHash: string(hash),
			}

			loginRec := httptest.NewRecorder()
			loginReq := httptest.NewRequest(http.MethodPost, "/auth/login", loginBody("greta_borg1", "Recruit1!"))
			router.ServeHTTP(loginRec, loginReq)
			Expect(loginRec.Code).To(Equal(http.StatusOK))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin/applications", nil)
			req.AddCookie(sessionCookie(loginRec))

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("Availability", func() {
		It("should report the registered username as taken", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/auth/availability?username=jane_doe12&email=free@example.com", nil)

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var body struct {
				Success auth.Availability `json:"success"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body.Success.UsernameTaken).To(BeTrue())
			Expect(body.Success.EmailTaken).To(BeFalse())
		})
	})

	Describe("Register endpoint", func() {
		It("should answer 201 and never echo the password hash", func() {
			payload, err := json.Marshal(auth.RegisterDTO{
				FirstName:    "John",
				LastName:     "Smith",
				Email:        "john@example.com",
				PersonNumber: "19851224-5678",
				Username:     "john_smith9",
				Password:     "Vinter2026!",
			})
			Expect(err).ToNot(HaveOccurred())

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(payload))

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(rec.Body.String()).ToNot(ContainSubstring("$2a$"))
		})

		It("should answer 400 with field details on invalid input", func() {
			payload, err := json.Marshal(auth.RegisterDTO{Username: "ab"})
			Expect(err).ToNot(HaveOccurred())

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(payload))

			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("username"))
		})
	})
})
