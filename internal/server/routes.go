package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates a new router with all routes configured
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(CORSMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteProblem(w, r, http.StatusNotFound, "No such endpoint")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteProblem(w, r, http.StatusMethodNotAllowed, "Only GET is supported")
	})

	r.Get("/health", h.Health)
	r.Get("/pokemon", h.ListPokemon)
	r.Get("/pokemon/{id}", h.GetPokemon)
	r.Get("/pokemon/{id}/moves", h.PokemonMoves)
	r.Get("/moves", h.ListMoves)

	return r
}
