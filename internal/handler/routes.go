package handler

import (
	"net/http"

	"github.com/tasknest/tasknest/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, items *service.ItemService, profiles *service.ProfileService) {
	authHandler := NewAuthHandler(auth)
	itemHandler := NewItemHandler(items)
	profileHandler := NewProfileHandler(profiles)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("GET /api/auth/validate", authHandler.HandleValidate)

	protected := func(fn http.HandlerFunc) http.Handler {
		return RequireAuth(auth, fn)
	}

	mux.Handle("GET /api/items", protected(itemHandler.HandleList))
	mux.Handle("POST /api/items", protected(itemHandler.HandleAdd))
	mux.Handle("PUT /api/items/{id}", protected(itemHandler.HandleUpdate))
	mux.Handle("DELETE /api/items/{id}", protected(itemHandler.HandleDelete))
	mux.Handle("POST /api/items/reorder", protected(itemHandler.HandleReorder))

	mux.Handle("GET /api/user/profile", protected(profileHandler.HandleGetProfile))
	mux.Handle("PUT /api/user/list-title", protected(profileHandler.HandleUpdateListTitle))
}
