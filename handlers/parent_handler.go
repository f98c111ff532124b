package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/breno-augst/family-relationship-api/models"
	"github.com/breno-augst/family-relationship-api/services"
)

type ParentHandler struct {
	Service *services.ParentService
}

func NewParentHandler(service *services.ParentService) *ParentHandler {
	return &ParentHandler{Service: service}
}

// parentWithChildren always renders both collections, empty ones included.
type parentWithChildren struct {
	models.Parent
	FatherOfChildren []models.Child `json:"fatherOfChildren"`
	MotherOfChildren []models.Child `json:"motherOfChildren"`
}

func newParentWithChildren(p *models.Parent) parentWithChildren {
	resp := parentWithChildren{
		Parent:           *p,
		FatherOfChildren: p.FatherOfChildren,
		MotherOfChildren: p.MotherOfChildren,
	}
	if resp.FatherOfChildren == nil {
		resp.FatherOfChildren = []models.Child{}
	}
	if resp.MotherOfChildren == nil {
		resp.MotherOfChildren = []models.Child{}
	}
	return resp
}

func (h *ParentHandler) CreateParent(w http.ResponseWriter, r *http.Request) {
	var req services.CreateParentInput
	if !decodeBody(w, r, &req) {
		return
	}

	parent, err := h.Service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, parent)
}

func (h *ParentHandler) FindAllParents(w http.ResponseWriter, r *http.Request) {
	parents, err := h.Service.ListAll(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if parents == nil {
		parents = []models.Parent{}
	}
	writeJSON(w, r, http.StatusOK, parents)
}

func (h *ParentHandler) FindParentByCPF(w http.ResponseWriter, r *http.Request) {
	parent, err := h.Service.GetByCpf(r.Context(), r.URL.Query().Get("cpf"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, parent)
}

func (h *ParentHandler) FindChildrenByParentCPF(w http.ResponseWriter, r *http.Request) {
	parent, err := h.Service.GetWithChildren(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newParentWithChildren(parent))
}

func (h *ParentHandler) UpdateParent(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateInput
	if !decodeBody(w, r, &req) {
		return
	}

	parent, err := h.Service.Update(r.Context(), chi.URLParam(r, "cpf"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, parent)
}

func (h *ParentHandler) DeleteParent(w http.ResponseWriter, r *http.Request) {
	msg, err := h.Service.Delete(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, msg)
}
