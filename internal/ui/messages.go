package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thesavant42/pokedex-ng/internal/models"
)

// Fetcher is the read side of the Pokédex backend used by the pages.
// *api.Client satisfies it.
type Fetcher interface {
	FetchPokemonList(ctx context.Context) ([]models.Pokemon, error)
	FetchPokemon(ctx context.Context, id models.DexID) (*models.Pokemon, error)
	FetchPokemonMoves(ctx context.Context, id models.DexID) ([]models.Move, error)
	FetchMoves(ctx context.Context) ([]models.Move, error)
}

// Message types for async fetches.
// Detail messages carry the id they were issued for so that results
// arriving after the user navigated away can be dropped.

type pokemonListLoadedMsg struct {
	pokemon []models.Pokemon
	err     error
}

type moveListLoadedMsg struct {
	moves []models.Move
	err   error
}

type pokemonLoadedMsg struct {
	id      models.DexID
	pokemon *models.Pokemon
	err     error
}

type pokemonMovesLoadedMsg struct {
	id    models.DexID
	moves []models.Move
	err   error
}

// Navigation messages

// PageKind names one of the top-level pages
type PageKind int

const (
	PageList PageKind = iota
	PageDetail
	PageMoves
)

func (p PageKind) String() string {
	switch p {
	case PageList:
		return "list"
	case PageDetail:
		return "detail"
	case PageMoves:
		return "moves"
	default:
		return "unknown"
	}
}

// ParsePageKind maps a --page flag value to a page
func ParsePageKind(s string) (PageKind, bool) {
	switch s {
	case "list", "":
		return PageList, true
	case "detail":
		return PageDetail, true
	case "moves":
		return PageMoves, true
	}
	return PageList, false
}

// navigateMsg asks the app to switch pages
type navigateMsg struct {
	page PageKind
	id   models.DexID
}

func navigate(page PageKind, id models.DexID) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{page: page, id: id}
	}
}

// Fetch commands

func fetchPokemonListCmd(ctx context.Context, f Fetcher) tea.Cmd {
	return func() tea.Msg {
		pokemon, err := f.FetchPokemonList(ctx)
		return pokemonListLoadedMsg{pokemon: pokemon, err: err}
	}
}

func fetchMovesCmd(ctx context.Context, f Fetcher) tea.Cmd {
	return func() tea.Msg {
		moves, err := f.FetchMoves(ctx)
		return moveListLoadedMsg{moves: moves, err: err}
	}
}

func fetchPokemonCmd(ctx context.Context, f Fetcher, id models.DexID) tea.Cmd {
	return func() tea.Msg {
		p, err := f.FetchPokemon(ctx, id)
		return pokemonLoadedMsg{id: id, pokemon: p, err: err}
	}
}

func fetchPokemonMovesCmd(ctx context.Context, f Fetcher, id models.DexID) tea.Cmd {
	return func() tea.Msg {
		moves, err := f.FetchPokemonMoves(ctx, id)
		return pokemonMovesLoadedMsg{id: id, moves: moves, err: err}
	}
}
