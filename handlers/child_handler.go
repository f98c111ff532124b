package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/breno-augst/family-relationship-api/models"
	"github.com/breno-augst/family-relationship-api/services"
)

type ChildHandler struct {
	Service *services.ChildService
}

func NewChildHandler(service *services.ChildService) *ChildHandler {
	return &ChildHandler{Service: service}
}

// childWithParents renders pai and mae as null when the reference is unset.
type childWithParents struct {
	models.Child
	Father *models.Parent `json:"pai"`
	Mother *models.Parent `json:"mae"`
}

func (h *ChildHandler) CreateChild(w http.ResponseWriter, r *http.Request) {
	var req services.CreateChildInput
	if !decodeBody(w, r, &req) {
		return
	}

	child, err := h.Service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, child)
}

func (h *ChildHandler) FindAllChildren(w http.ResponseWriter, r *http.Request) {
	children, err := h.Service.ListAll(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if children == nil {
		children = []models.Child{}
	}
	writeJSON(w, r, http.StatusOK, children)
}

func (h *ChildHandler) FindChildByCPF(w http.ResponseWriter, r *http.Request) {
	child, err := h.Service.GetByCpf(r.Context(), r.URL.Query().Get("cpf"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, child)
}

func (h *ChildHandler) FindParentsByChildCPF(w http.ResponseWriter, r *http.Request) {
	child, err := h.Service.GetWithParents(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, childWithParents{Child: *child, Father: child.Father, Mother: child.Mother})
}

func (h *ChildHandler) UpdateChild(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateInput
	if !decodeBody(w, r, &req) {
		return
	}

	child, err := h.Service.Update(r.Context(), chi.URLParam(r, "cpf"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, child)
}

func (h *ChildHandler) DeleteChild(w http.ResponseWriter, r *http.Request) {
	msg, err := h.Service.Delete(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, msg)
}
