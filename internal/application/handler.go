package application

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/recruitment-service/internal/auth"
	"github.com/frahmantamala/recruitment-service/internal/transport"
	"github.com/frahmantamala/recruitment-service/pkg/logger"
)

type ServiceAPI interface {
	Submit(dto SubmitDTO) (*SubmitResponse, error)
	GetAllApplications() ([]*Summary, error)
	GetApplicationByID(id int64) (*Detail, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// Submit handles POST /application/submit. The owning user id in the body
// is always replaced with the authenticated caller's id.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto SubmitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Submit: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dto.UserID = user.ID

	resp, err := h.Service.Submit(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, resp)
}

// GetAllApplications handles GET /admin/applications. An empty list is a
// successful response, not a 404.
func (h *Handler) GetAllApplications(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Service.GetAllApplications()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, summaries)
}

// GetApplication handles GET /admin/applications/{id}.
func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Warn("GetApplication: invalid application id", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	detail, err := h.Service.GetApplicationByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, detail)
}
