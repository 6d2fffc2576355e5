package api

import (
	"net/http"

	"github.com/SamratSK/better-bites/internal/api/respond"
	"github.com/SamratSK/better-bites/internal/api/validate"
	"github.com/SamratSK/better-bites/internal/services"
)

// SummaryHandler serves the computed daily aggregates.
type SummaryHandler struct {
	svc *services.SummaryService
}

func NewSummaryHandler(svc *services.SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	date := r.URL.Query().Get("date")
	if err := validate.Date(date); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.Get(r.Context(), userID, date)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *SummaryHandler) Range(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	q := r.URL.Query()
	out, err := h.svc.Range(r.Context(), userID, q.Get("start"), q.Get("end"))
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
