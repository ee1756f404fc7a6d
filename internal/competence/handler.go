package competence

import (
	"net/http"

	"github.com/frahmantamala/recruitment-service/internal/transport"
)

type ServiceAPI interface {
	GetAllCompetences() ([]*Competence, error)
	Exists(id int64) bool
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetCompetences(w http.ResponseWriter, r *http.Request) {
	competences, err := h.Service.GetAllCompetences()
	if err != nil {
		h.Logger.Error("GetCompetences: failed to get competences", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get competences")
		return
	}

	h.WriteSuccess(w, http.StatusOK, ListResponse{Competences: competences})
}
