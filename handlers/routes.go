package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the parent, child and health endpoints on r.
func RegisterRoutes(r chi.Router, parents *ParentHandler, children *ChildHandler, health *HealthHandler) {
	r.Route("/parents", func(r chi.Router) {
		r.Post("/createParent", parents.CreateParent)
		r.Get("/findAllParents", parents.FindAllParents)
		r.Get("/findParentsByCPF", parents.FindParentByCPF)
		r.Get("/findChildrenByParentsCPF/{cpf}", parents.FindChildrenByParentCPF)
		r.Patch("/updateParent/{cpf}", parents.UpdateParent)
		r.Delete("/deleteParent/{cpf}", parents.DeleteParent)
	})

	r.Route("/children", func(r chi.Router) {
		r.Post("/createChild", children.CreateChild)
		r.Get("/findAllChildren", children.FindAllChildren)
		r.Get("/findChildByCPF", children.FindChildByCPF)
		r.Get("/findParentsByChildsCPF/{cpf}", children.FindParentsByChildCPF)
		r.Patch("/updateChild/{cpf}", children.UpdateChild)
		r.Delete("/deleteChild/{cpf}", children.DeleteChild)
	})

	if health != nil {
		r.Get("/health", health.Health)
	}
}
