package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SamratSK/better-bites/internal/api/respond"
	"github.com/SamratSK/better-bites/internal/api/validate"
	"github.com/SamratSK/better-bites/internal/auth"
	"github.com/SamratSK/better-bites/internal/model"
	"github.com/SamratSK/better-bites/internal/services"
)

// AdminHandler serves the admin dashboard surface. Every method re-checks
// the stored profile role before acting.
type AdminHandler struct {
	svc     *services.AdminService
	content *services.ContentService
}

func NewAdminHandler(svc *services.AdminService, content *services.ContentService) *AdminHandler {
	return &AdminHandler{svc: svc, content: content}
}

func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) *auth.Actor {
	actor := auth.ActorFrom(r.Context())
	if err := h.svc.Authorize(r.Context(), actor); err != nil {
		respond.WriteDomainError(w, err)
		return nil
	}
	return actor
}

func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	actor := h.authorize(w, r)
	if actor == nil {
		return
	}
	out, err := h.svc.Overview(r.Context(), actor.UserID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *AdminHandler) Flagged(w http.ResponseWriter, r *http.Request) {
	if h.authorize(w, r) == nil {
		return
	}
	limit, err := validate.Limit(r.URL.Query().Get("limit"), 5, 100)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.RecentFlags(r.Context(), limit)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if out == nil {
		out = []model.FlaggedItem{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *AdminHandler) Report(w http.ResponseWriter, r *http.Request) {
	if h.authorize(w, r) == nil {
		return
	}
	var in struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	out, err := h.svc.ReportFor(r.Context(), in.UserID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// AddMotivation seeds a motivational message for the member-facing endpoint.
func (h *AdminHandler) AddMotivation(w http.ResponseWriter, r *http.Request) {
	if h.authorize(w, r) == nil {
		return
	}
	var in struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	id, err := h.content.AddMotivation(r.Context(), in.Message)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor := h.authorize(w, r)
	if actor == nil {
		return
	}
	if err := h.svc.DeleteUser(r.Context(), actor.UserID, mux.Vars(r)["userId"]); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
