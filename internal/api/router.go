package api

import (
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(h *ItemsHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/sale", h.SaleState)
	mux.HandleFunc("GET /api/items", h.List)
	mux.HandleFunc("GET /api/items/{id}", h.Get)
	mux.HandleFunc("GET /api/categories", h.Categories)

	return mux
}
