package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/thesavant42/pokedex-ng/internal/models"
)

// Store is the read side of the Pokédex database used by the handlers
type Store interface {
	ListPokemon(ctx context.Context) ([]models.Pokemon, error)
	GetPokemon(ctx context.Context, id string) (*models.Pokemon, error)
	FindPokemonForMoves(ctx context.Context, id string) (*models.Pokemon, error)
	MovesFor(ctx context.Context, p *models.Pokemon, logger *log.Logger) ([]models.Move, error)
	ListMoves(ctx context.Context) ([]models.Move, error)
	Counts(ctx context.Context) (pokemon, moves int, err error)
}

// Handler serves the Pokédex JSON endpoints
type Handler struct {
	store   Store
	logger  *log.Logger
	version string
}

// NewHandler creates a handler backed by store
func NewHandler(store Store, logger *log.Logger, version string) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{store: store, logger: logger, version: version}
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	PokemonCount int    `json:"pokemon_count"`
	MoveCount    int    `json:"move_count"`
}

// Health reports the server status and record counts
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	pokemon, moves, err := h.store.Counts(r.Context())
	if err != nil {
		h.logger.Error("health check failed", "error", err)
		WriteProblem(w, r, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	h.writeJSON(w, HealthResponse{
		Status:       "healthy",
		Version:      h.version,
		PokemonCount: pokemon,
		MoveCount:    moves,
	})
}

// ListPokemon handles GET /pokemon
func (h *Handler) ListPokemon(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListPokemon(r.Context())
	if err != nil {
		MapStoreError(w, r, h.logger, err)
		return
	}
	h.writeJSON(w, list)
}

// GetPokemon handles GET /pokemon/{id}
func (h *Handler) GetPokemon(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.store.GetPokemon(r.Context(), id)
	if err != nil {
		MapStoreError(w, r, h.logger, err)
		return
	}
	h.writeJSON(w, p)
}

// PokemonMoves handles GET /pokemon/{id}/moves.
// Declared moves missing from the move database are left out of the response.
func (h *Handler) PokemonMoves(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.store.FindPokemonForMoves(r.Context(), id)
	if err != nil {
		MapStoreError(w, r, h.logger, err)
		return
	}

	moves, err := h.store.MovesFor(r.Context(), p, h.logger)
	if err != nil {
		MapStoreError(w, r, h.logger, err)
		return
	}
	h.logger.Info("resolved moves", "pokemon", p.Name, "found", len(moves), "declared", len(p.Moves))
	h.writeJSON(w, moves)
}

// ListMoves handles GET /moves
func (h *Handler) ListMoves(w http.ResponseWriter, r *http.Request) {
	moves, err := h.store.ListMoves(r.Context())
	if err != nil {
		MapStoreError(w, r, h.logger, err)
		return
	}
	h.writeJSON(w, moves)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
