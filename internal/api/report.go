package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SamratSK/better-bites/internal/api/respond"
	"github.com/SamratSK/better-bites/internal/services"
)

// ReportHandler serves the private report, share-token management and the
// public token-addressed report.
type ReportHandler struct {
	svc *services.ReportService
}

func NewReportHandler(svc *services.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	out, err := h.svc.Build(r.Context(), userID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *ReportHandler) Share(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	out, err := h.svc.Share(r.Context(), userID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *ReportHandler) SetShare(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	var in struct {
		Enabled *bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Enabled == nil {
		respond.WriteBadRequest(w, "body must be {\"enabled\": true|false}")
		return
	}
	out, err := h.svc.SetShareEnabled(r.Context(), userID, *in.Enabled)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// GetPublic serves a shared report by token without authentication.
func (h *ReportHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["shareToken"]
	if token == "" {
		respond.WriteNotFound(w, "not found")
		return
	}
	out, err := h.svc.BuildPublic(r.Context(), token)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
