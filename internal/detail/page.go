package detail

import (
	"errors"
	"fmt"

	"github.com/thesavant42/pokedex-ng/internal/models"
)

// Phase is the top-level state of the detail page
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseNotFound
	PhaseLoaded
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseNotFound:
		return "not-found"
	case PhaseLoaded:
		return "loaded"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Tab is the secondary view selected once the record is loaded
type Tab int

const (
	TabStats Tab = iota
	TabMoves
)

func (t Tab) String() string {
	if t == TabMoves {
		return "Moves"
	}
	return "Stats"
}

// Next returns the other tab
func (t Tab) Next() Tab {
	if t == TabStats {
		return TabMoves
	}
	return TabStats
}

// MovesPhase tracks the move detail fetch that follows a loaded record
type MovesPhase int

const (
	MovesIdle MovesPhase = iota
	MovesLoading
	MovesReady
)

func (m MovesPhase) String() string {
	switch m {
	case MovesIdle:
		return "idle"
	case MovesLoading:
		return "moves-loading"
	case MovesReady:
		return "moves-ready"
	}
	return fmt.Sprintf("moves(%d)", int(m))
}

// ErrInvalidTransition is returned when a state change is not allowed from the current state
var ErrInvalidTransition = errors.New("invalid detail page transition")

func invalid(from fmt.Stringer, to string) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// Page is the derived state of one detail page.
// A Page is created in PhaseLoading and is driven by the fetch results.
type Page struct {
	ID      models.DexID
	Phase   Phase
	Err     error
	Pokemon models.Pokemon

	Tab        Tab
	MovesPhase MovesPhase
	Moves      Result
	// MovesErr is set when the move records could not be fetched
	MovesErr error
}

// NewPage returns a page waiting for the record with the given id
func NewPage(id models.DexID) *Page {
	return &Page{ID: id, Phase: PhaseLoading, Tab: TabStats}
}

// Resolve moves the page from loading to loaded.
// A Pokémon that declares no moves has nothing to fetch, so its moves are ready at once.
func (p *Page) Resolve(pokemon models.Pokemon) error {
	if p.Phase != PhaseLoading {
		return invalid(p.Phase, PhaseLoaded.String())
	}
	p.Phase = PhaseLoaded
	p.Pokemon = pokemon
	if !pokemon.HasMoves() {
		p.MovesPhase = MovesReady
		p.Moves = Unresolved(nil)
	}
	return nil
}

// Fail moves the page from loading to error
func (p *Page) Fail(err error) error {
	if p.Phase != PhaseLoading {
		return invalid(p.Phase, PhaseError.String())
	}
	p.Phase = PhaseError
	p.Err = err
	return nil
}

// NotFound moves the page from loading to not-found
func (p *Page) NotFound() error {
	if p.Phase != PhaseLoading {
		return invalid(p.Phase, PhaseNotFound.String())
	}
	p.Phase = PhaseNotFound
	return nil
}

// ShouldFetchMoves reports whether the move detail fetch should be issued now
func (p *Page) ShouldFetchMoves() bool {
	return p.Phase == PhaseLoaded && p.MovesPhase == MovesIdle && p.Pokemon.HasMoves()
}

// BeginMoves marks the move detail fetch as in flight
func (p *Page) BeginMoves() error {
	if !p.ShouldFetchMoves() {
		return invalid(p.MovesPhase, MovesLoading.String())
	}
	p.MovesPhase = MovesLoading
	return nil
}

// ResolveMoves aggregates the fetched move records and marks moves as ready
func (p *Page) ResolveMoves(fetched []models.Move) error {
	if p.MovesPhase != MovesLoading {
		return invalid(p.MovesPhase, MovesReady.String())
	}
	p.MovesPhase = MovesReady
	p.Moves = Aggregate(p.Pokemon.Moves, fetched)
	return nil
}

// FailMoves marks moves as ready with every declared name unresolved.
// The record itself stays loaded.
func (p *Page) FailMoves(err error) error {
	if p.MovesPhase != MovesLoading {
		return invalid(p.MovesPhase, MovesReady.String())
	}
	p.MovesPhase = MovesReady
	p.MovesErr = err
	p.Moves = Unresolved(p.Pokemon.Moves)
	return nil
}

// SelectTab switches the secondary tab. Only a loaded page has tabs.
func (p *Page) SelectTab(tab Tab) error {
	if p.Phase != PhaseLoaded {
		return invalid(p.Phase, "tab "+tab.String())
	}
	p.Tab = tab
	return nil
}

// Terminal reports whether the page ended without a record
func (p *Page) Terminal() bool {
	return p.Phase == PhaseError || p.Phase == PhaseNotFound
}
