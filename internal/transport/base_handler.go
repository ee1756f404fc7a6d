package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	errors "github.com/frahmantamala/recruitment-service/internal"
	"github.com/frahmantamala/recruitment-service/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers. Every response
// body is wrapped in the success/error envelope.
type BaseHandler struct {
	Logger *slog.Logger
}

type successEnvelope struct {
	Success interface{} `json:"success"`
}

type errorEnvelope struct {
	Error interface{} `json:"error"`
}

func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteSuccess writes data wrapped under {"success": ...}.
func (h *BaseHandler) WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(successEnvelope{Success: data}); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes a plain error message wrapped under {"error": ...}.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := errorEnvelope{Error: map[string]interface{}{
		"code":    status,
		"message": message,
	}}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.Logger.Error("failed to encode error response", "error", err)
	}
}

// WriteAppError renders a domain error with its status code and structured
// details. Unclassified errors are logged with the full cause chain and
// converted to a generic 500 so internals never leak to the client.
func (h *BaseHandler) WriteAppError(w http.ResponseWriter, err error) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		h.Logger.Error("unclassified error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if appErr.Cause != nil {
		h.Logger.Error("request failed", "status", appErr.StatusCode, "code", appErr.Code, "cause", appErr.Cause)
	} else {
		h.Logger.Warn("request failed", "status", appErr.StatusCode, "code", appErr.Code, "message", appErr.Message)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)
	if encErr := json.NewEncoder(w).Encode(errorEnvelope{Error: appErr}); encErr != nil {
		h.Logger.Error("failed to encode error response", "error", encErr)
	}
}

// SetSessionCookie attaches the signed session token as an HTTP-only cookie.
func (h *BaseHandler) SetSessionCookie(w http.ResponseWriter, name, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie immediately.
func (h *BaseHandler) ClearSessionCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ExtractSessionToken reads the session token from the request cookie.
func (h *BaseHandler) ExtractSessionToken(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
