// internal/app/features/members/routes.go
package members

import "github.com/go-chi/chi/v5"

// Routes returns the member API subrouter. Mounted under /api.
//
// The paths are historical: members are created and listed under /users,
// and fetched/updated under /members. Existing clients depend on both.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/users", h.HandleCreate)
	r.Get("/users", h.HandleList)
	r.Get("/members/{phone}", h.HandleGetByPhone)
	r.Put("/members/{id}", h.HandleUpdate)
	return r
}
