package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/frahmantamala/recruitment-service/internal/transport"
	"github.com/frahmantamala/recruitment-service/pkg/logger"
)

type ServiceAPI interface {
	Register(dto RegisterDTO) (*User, error)
	Authenticate(dto LoginDTO) (*User, string, time.Time, error)
	ValidateSession(tokenString string) (*User, error)
	CheckAvailability(dto AvailabilityQueryDTO) (Availability, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Service.Register(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, user)
}

func (h *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	dto := AvailabilityQueryDTO{
		Username: r.URL.Query().Get("username"),
		Email:    r.URL.Query().Get("email"),
	}

	availability, err := h.Service.CheckAvailability(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, availability)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, expiresAt, err := h.Service.Authenticate(dto)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			h.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		default:
			h.WriteAppError(w, err)
		}
		return
	}

	h.SetSessionCookie(w, SessionCookieName, token, expiresAt)
	h.WriteSuccess(w, http.StatusOK, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.ClearSessionCookie(w, SessionCookieName)
	h.WriteSuccess(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// AuthMiddleware gates protected routes on a valid session cookie. Any
// verification failure clears the cookie and answers 401 without revealing
// which check failed.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractSessionToken(r, SessionCookieName)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		user, err := h.Service.ValidateSession(token)
		if err != nil {
			h.Logger.Warn("session validation failed", "error", err)
			h.ClearSessionCookie(w, SessionCookieName)
			h.WriteError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

// RequireRole answers 403 when the authenticated caller's role does not
// match the route's required role. Must run after AuthMiddleware.
func (h *Handler) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				h.WriteError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			if user.Role != role {
				h.Logger.Warn("access denied: role mismatch",
					"user_id", user.ID,
					"user_role", user.Role,
					"required_role", role)
				h.WriteError(w, http.StatusForbidden, "insufficient role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
