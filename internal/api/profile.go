package api

import (
	"encoding/json"
	"net/http"

	"github.com/SamratSK/better-bites/internal/api/respond"
	"github.com/SamratSK/better-bites/internal/api/validate"
	"github.com/SamratSK/better-bites/internal/model"
	"github.com/SamratSK/better-bites/internal/services"
)

// ProfileHandler serves profiles, daily goals, body measurements and streak
// reads.
type ProfileHandler struct {
	svc     *services.ProfileService
	streaks *services.StreakService
}

func NewProfileHandler(svc *services.ProfileService, streaks *services.StreakService) *ProfileHandler {
	return &ProfileHandler{svc: svc, streaks: streaks}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	out, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	var in model.Profile
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	in.UserID = userID
	out, err := h.svc.Upsert(r.Context(), &in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *ProfileHandler) GetGoals(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	out, err := h.svc.GetGoals(r.Context(), userID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *ProfileHandler) PutGoals(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	var in model.DailyGoals
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	in.UserID = userID
	out, err := h.svc.UpsertGoals(r.Context(), &in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *ProfileHandler) AddMeasurement(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	var in model.BodyMeasurement
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	in.UserID = userID
	out, err := h.svc.AddMeasurement(r.Context(), &in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

func (h *ProfileHandler) ListMeasurements(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	limit, err := validate.Limit(r.URL.Query().Get("limit"), 50, 200)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.ListMeasurements(r.Context(), userID, limit)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if out == nil {
		out = []model.BodyMeasurement{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *ProfileHandler) ListStreaks(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	out, err := h.streaks.List(r.Context(), userID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if out == nil {
		out = []model.Streak{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
