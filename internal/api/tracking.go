// Package api wires the HTTP surface: handlers, routing and middleware glue.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/SamratSK/better-bites/internal/api/respond"
	"github.com/SamratSK/better-bites/internal/api/validate"
	"github.com/SamratSK/better-bites/internal/auth"
	"github.com/SamratSK/better-bites/internal/model"
	"github.com/SamratSK/better-bites/internal/services"
)

// TrackingHandler serves the meal, water and activity log endpoints.
type TrackingHandler struct {
	svc *services.TrackingService
}

func NewTrackingHandler(svc *services.TrackingService) *TrackingHandler {
	return &TrackingHandler{svc: svc}
}

// requireAccess resolves the {userId} path var and checks the actor may act
// on it. Returns "" after writing the response when access is denied.
func requireAccess(w http.ResponseWriter, r *http.Request) string {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		respond.WriteBadRequest(w, "userId is required")
		return ""
	}
	if !auth.ActorFrom(r.Context()).CanAccess(userID) {
		respond.WriteError(w, http.StatusForbidden, "forbidden")
		return ""
	}
	return userID
}

func (h *TrackingHandler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	var in model.MealEntry
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	in.UserID = userID
	out, err := h.svc.CreateMeal(r.Context(), &in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

func (h *TrackingHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	date := r.URL.Query().Get("date")
	if err := validate.Date(date); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.ListMeals(r.Context(), userID, date)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if out == nil {
		out = []model.MealEntry{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *TrackingHandler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	if userID := requireAccess(w, r); userID == "" {
		return
	}
	if err := h.svc.DeleteMeal(r.Context(), mux.Vars(r)["entryId"]); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TrackingHandler) CreateWater(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	var in model.WaterEntry
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	in.UserID = userID
	out, err := h.svc.CreateWater(r.Context(), &in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListWater accepts either ?date=YYYY-MM-DD or an explicit RFC 3339
// ?from=&to= half-open range.
func (h *TrackingHandler) ListWater(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	q := r.URL.Query()
	var out []model.WaterEntry
	var err error
	if q.Get("from") != "" || q.Get("to") != "" {
		from, ferr := time.Parse(time.RFC3339, q.Get("from"))
		to, terr := time.Parse(time.RFC3339, q.Get("to"))
		if ferr != nil || terr != nil {
			respond.WriteBadRequest(w, "from and to must be RFC 3339 timestamps")
			return
		}
		out, err = h.svc.ListWaterRange(r.Context(), userID, from, to)
	} else {
		date := q.Get("date")
		if derr := validate.Date(date); derr != nil {
			respond.WriteBadRequest(w, derr.Error())
			return
		}
		out, err = h.svc.ListWater(r.Context(), userID, date)
	}
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if out == nil {
		out = []model.WaterEntry{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *TrackingHandler) DeleteWater(w http.ResponseWriter, r *http.Request) {
	if userID := requireAccess(w, r); userID == "" {
		return
	}
	if err := h.svc.DeleteWater(r.Context(), mux.Vars(r)["entryId"]); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TrackingHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	var in model.ActivityEntry
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	in.UserID = userID
	out, err := h.svc.CreateActivity(r.Context(), &in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

func (h *TrackingHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID := requireAccess(w, r)
	if userID == "" {
		return
	}
	date := r.URL.Query().Get("date")
	if err := validate.Date(date); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.ListActivities(r.Context(), userID, date)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if out == nil {
		out = []model.ActivityEntry{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *TrackingHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	if userID := requireAccess(w, r); userID == "" {
		return
	}
	if err := h.svc.DeleteActivity(r.Context(), mux.Vars(r)["entryId"]); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
