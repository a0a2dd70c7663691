package detail

import (
	"errors"
	"reflect"
	"testing"

	"github.com/thesavant42/pokedex-ng/internal/models"
)

var (
	tackle = models.Move{Name: "Tackle", Type: "normal", Category: "/img/physical.png", Power: 40, Accuracy: 100, PP: 35}
	growl  = models.Move{Name: "Growl", Type: "normal", Category: "/img/status.png", Accuracy: 100, PP: 40}
	ember  = models.Move{Name: "Ember", Type: "fire", Category: "/img/special.png", Power: 40, Accuracy: 100, PP: 25}
)

func moveNames(moves []models.Move) []string {
	out := []string{}
	for _, m := range moves {
		out = append(out, m.Name)
	}
	return out
}

func TestAggregateTackleGrowl(t *testing.T) {
	got := Aggregate([]string{"Tackle", "Growl"}, []models.Move{tackle})

	if !reflect.DeepEqual(moveNames(got.Validated), []string{"Tackle"}) {
		t.Errorf("Validated = %v, want [Tackle]", moveNames(got.Validated))
	}
	if !reflect.DeepEqual(got.Unresolved, []string{"Growl"}) {
		t.Errorf("Unresolved = %v, want [Growl]", got.Unresolved)
	}
}

func TestAggregate(t *testing.T) {
	incompleteGrowl := models.Move{Name: "Growl", Type: "normal"}

	tests := []struct {
		desc           string
		declared       []string
		fetched        []models.Move
		wantValidated  []string
		wantUnresolved []string
	}{
		{
			desc:           "empty",
			wantValidated:  []string{},
			wantUnresolved: []string{},
		},
		{
			desc:           "nothing fetched",
			declared:       []string{"Tackle", "Growl"},
			wantValidated:  []string{},
			wantUnresolved: []string{"Tackle", "Growl"},
		},
		{
			desc:           "declared order wins",
			declared:       []string{"Growl", "Tackle"},
			fetched:        []models.Move{tackle, growl},
			wantValidated:  []string{"Growl", "Tackle"},
			wantUnresolved: []string{},
		},
		{
			desc:           "incomplete record is unresolved",
			declared:       []string{"Tackle", "Growl"},
			fetched:        []models.Move{tackle, incompleteGrowl},
			wantValidated:  []string{"Tackle"},
			wantUnresolved: []string{"Growl"},
		},
		{
			desc:           "case-insensitive match",
			declared:       []string{"tackle", " GROWL "},
			fetched:        []models.Move{tackle, growl},
			wantValidated:  []string{"Tackle", "Growl"},
			wantUnresolved: []string{},
		},
		{
			desc:           "undeclared fetched moves follow",
			declared:       []string{"Growl"},
			fetched:        []models.Move{ember, tackle, growl},
			wantValidated:  []string{"Growl", "Ember", "Tackle"},
			wantUnresolved: []string{},
		},
		{
			desc:           "duplicates collapse",
			declared:       []string{"Tackle", "Tackle", "Peck", "peck", ""},
			fetched:        []models.Move{tackle, tackle},
			wantValidated:  []string{"Tackle"},
			wantUnresolved: []string{"Peck"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := Aggregate(tt.declared, tt.fetched)
			if names := moveNames(got.Validated); !reflect.DeepEqual(names, tt.wantValidated) {
				t.Errorf("Validated = %v, want %v", names, tt.wantValidated)
			}
			if !reflect.DeepEqual(got.Unresolved, tt.wantUnresolved) {
				t.Errorf("Unresolved = %v, want %v", got.Unresolved, tt.wantUnresolved)
			}
		})
	}
}

func TestAggregatePartitionIsDisjoint(t *testing.T) {
	declared := []string{"Tackle", "Growl", "Ember", "Splash"}
	got := Aggregate(declared, []models.Move{growl, ember})

	validated := map[string]bool{}
	for _, m := range got.Validated {
		validated[m.Name] = true
	}
	for _, name := range got.Unresolved {
		if validated[name] {
			t.Errorf("%q is both validated and unresolved", name)
		}
	}
	if got.Total() != len(declared) {
		t.Errorf("Total() = %d, want %d", got.Total(), len(declared))
	}
}

func TestPageHappyPath(t *testing.T) {
	page := NewPage("1")
	if page.Phase != PhaseLoading || page.ShouldFetchMoves() {
		t.Fatalf("new page = %+v", page)
	}

	bulbasaur := models.Pokemon{ID: "1", Name: "Bulbasaur", Moves: []string{"Tackle", "Growl"}}
	if err := page.Resolve(bulbasaur); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !page.ShouldFetchMoves() {
		t.Fatal("expected a move fetch after the record loads")
	}
	if err := page.BeginMoves(); err != nil {
		t.Fatalf("BeginMoves() error = %v", err)
	}
	if page.ShouldFetchMoves() {
		t.Error("move fetch requested twice")
	}
	if err := page.ResolveMoves([]models.Move{tackle}); err != nil {
		t.Fatalf("ResolveMoves() error = %v", err)
	}
	if page.MovesPhase != MovesReady {
		t.Errorf("MovesPhase = %s, want moves-ready", page.MovesPhase)
	}
	if !reflect.DeepEqual(page.Moves.Unresolved, []string{"Growl"}) {
		t.Errorf("Unresolved = %v", page.Moves.Unresolved)
	}

	if err := page.SelectTab(TabMoves); err != nil || page.Tab != TabMoves {
		t.Errorf("SelectTab(moves) = %v, tab %s", err, page.Tab)
	}
}

func TestPageNoDeclaredMoves(t *testing.T) {
	page := NewPage("132")
	if err := page.Resolve(models.Pokemon{ID: "132", Name: "Ditto"}); err != nil {
		t.Fatal(err)
	}
	if page.ShouldFetchMoves() {
		t.Error("no moves declared, but a fetch was requested")
	}
	if page.MovesPhase != MovesReady || page.Moves.Total() != 0 {
		t.Errorf("moves = %s %+v", page.MovesPhase, page.Moves)
	}
}

func TestPageMovesFailure(t *testing.T) {
	page := NewPage("1")
	_ = page.Resolve(models.Pokemon{ID: "1", Moves: []string{"Tackle", "Growl"}})
	_ = page.BeginMoves()

	cause := errors.New("connection refused")
	if err := page.FailMoves(cause); err != nil {
		t.Fatal(err)
	}
	if page.Phase != PhaseLoaded {
		t.Errorf("Phase = %s, want loaded", page.Phase)
	}
	if !errors.Is(page.MovesErr, cause) {
		t.Errorf("MovesErr = %v", page.MovesErr)
	}
	if !reflect.DeepEqual(page.Moves.Unresolved, []string{"Tackle", "Growl"}) {
		t.Errorf("Unresolved = %v", page.Moves.Unresolved)
	}
}

func TestPageTerminalStates(t *testing.T) {
	failed := NewPage("1")
	if err := failed.Fail(errors.New("boom")); err != nil {
		t.Fatal(err)
	}
	if failed.Phase != PhaseError || !failed.Terminal() {
		t.Errorf("Phase = %s", failed.Phase)
	}

	missing := NewPage("9999")
	if err := missing.NotFound(); err != nil {
		t.Fatal(err)
	}
	if missing.Phase != PhaseNotFound || !missing.Terminal() {
		t.Errorf("Phase = %s", missing.Phase)
	}
}

func TestPageRejectsIllegalTransitions(t *testing.T) {
	page := NewPage("1")

	checks := []struct {
		desc string
		err  error
	}{
		{"tab before load", page.SelectTab(TabMoves)},
		{"moves before load", page.BeginMoves()},
		{"resolve moves before begin", page.ResolveMoves(nil)},
	}
	for _, c := range checks {
		if !errors.Is(c.err, ErrInvalidTransition) {
			t.Errorf("%s: error = %v, want ErrInvalidTransition", c.desc, c.err)
		}
	}

	_ = page.NotFound()
	if err := page.Resolve(models.Pokemon{}); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("resolve after not-found: error = %v", err)
	}
	if err := page.Fail(errors.New("late")); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("fail after not-found: error = %v", err)
	}
}

func TestTabNext(t *testing.T) {
	if TabStats.Next() != TabMoves || TabMoves.Next() != TabStats {
		t.Error("Next() does not toggle between the two tabs")
	}
}
