package api

import (
	"encoding/json"
	"net/http"

	"github.com/SamratSK/better-bites/internal/api/respond"
	"github.com/SamratSK/better-bites/internal/services"
)

// ContentHandler serves motivational messages and accepts content reports.
type ContentHandler struct {
	svc *services.ContentService
}

func NewContentHandler(svc *services.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// Motivation returns one random motivational message for any signed-in user.
func (h *ContentHandler) Motivation(w http.ResponseWriter, r *http.Request) {
	msg, err := h.svc.RandomMotivation(r.Context())
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}

type flagRequest struct {
	ItemType string `json:"itemType"`
	Reason   string `json:"reason,omitempty"`
}

// Flag files a content report on behalf of the path user.
func (h *ContentHandler) Flag(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	var in flagRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	out, err := h.svc.Flag(r.Context(), userID, in.ItemType, in.Reason)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}
