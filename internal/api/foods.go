package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SamratSK/better-bites/internal/api/respond"
	"github.com/SamratSK/better-bites/internal/api/validate"
	"github.com/SamratSK/better-bites/internal/auth"
	"github.com/SamratSK/better-bites/internal/foods"
	"github.com/SamratSK/better-bites/internal/model"
)

// FoodsHandler exposes the product cache. Refresh and bulk import are
// restricted to the service key.
type FoodsHandler struct {
	svc *foods.Service
}

func NewFoodsHandler(svc *foods.Service) *FoodsHandler {
	return &FoodsHandler{svc: svc}
}

func (h *FoodsHandler) Get(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Get(r.Context(), mux.Vars(r)["barcode"])
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *FoodsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !requireService(w, r) {
		return
	}
	out, err := h.svc.Refresh(r.Context(), mux.Vars(r)["barcode"])
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *FoodsHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if err := validate.NonEmpty("q", q); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	limit, err := validate.Limit(r.URL.Query().Get("limit"), 20, 50)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if out == nil {
		out = []model.FoodProduct{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *FoodsHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	if !requireService(w, r) {
		return
	}
	var in []model.FoodProduct
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON body")
		return
	}
	n, err := h.svc.Bulk(r.Context(), in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]int{"imported": n})
}

func requireService(w http.ResponseWriter, r *http.Request) bool {
	actor := auth.ActorFrom(r.Context())
	if actor == nil || actor.Role != auth.RoleService {
		respond.WriteError(w, http.StatusForbidden, "service key required")
		return false
	}
	return true
}
