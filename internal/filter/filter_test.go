package filter

import (
	"reflect"
	"strings"
	"testing"

	"github.com/thesavant42/pokedex-ng/internal/models"
	"github.com/thesavant42/pokedex-ng/internal/palette"
)

func samplePokemon() []models.Pokemon {
	return []models.Pokemon{
		{ID: "1", Name: "Bulbasaur", Types: []string{"grass", "poison"}, Stats: models.Stats{HP: 45}, Total: 318},
		{ID: "4", Name: "Charmander", Types: []string{"fire"}, Total: 309},
		{ID: "6", Name: "Charizard", Types: []string{"Fire", "Flying"}, Total: 534},
		{ID: "7", Name: "Squirtle", Types: []string{"water"}, Total: 314},
		{ID: "3-mega-venusaur", Name: "Mega Venusaur", Types: []string{"grass", "poison"}, Total: 625},
		{ID: "25", Name: "Pikachu", Types: []string{"electric"}, Total: 320},
	}
}

func sampleMoves() []models.Move {
	return []models.Move{
		{Name: "Tackle", Type: "normal", Category: "/img/physical.png", Power: 40, Accuracy: 100, PP: 35},
		{Name: "Growl", Type: "normal", Category: "/img/status.png", Accuracy: 100, PP: 40},
		{Name: "Ember", Type: "fire", Category: "/img/special.png", Power: 40, Accuracy: 100, PP: 25},
		{Name: "Fire Punch", Type: "Fire", Category: "/img/physical.png", Power: 75, Accuracy: 100, PP: 15},
		{Name: "Flamethrower", Type: "fire", Category: "/img/special.png", Power: 90, Accuracy: 100, PP: 15},
		{Name: "Vine Whip", Type: "grass", Category: "/img/physical.png", Power: 45, Accuracy: 100, PP: 25},
		{Name: "Mystery", Type: "", Category: ""},
	}
}

func TestPokemonIdentity(t *testing.T) {
	items := samplePokemon()
	criteria := []models.FilterCriteria{
		models.NewFilterCriteria(),
		{Search: "", Type: "all", Category: "all"},
		{Search: "   ", Type: "ALL", Category: ""},
	}

	for _, c := range criteria {
		got := Pokemon(items, c)
		if !reflect.DeepEqual(got, items) {
			t.Errorf("Pokemon(items, %+v) is not the identity", c)
		}
	}

	moves := sampleMoves()
	if got := Moves(moves, models.NewFilterCriteria()); !reflect.DeepEqual(got, moves) {
		t.Error("Moves(items, all) is not the identity")
	}
}

func TestPokemonSearchScenario(t *testing.T) {
	items := []models.Pokemon{
		{ID: "1", Name: "Bulbasaur", Types: []string{"grass", "poison"}, Stats: models.Stats{HP: 45}, Total: 318},
	}

	got := Pokemon(items, models.FilterCriteria{Search: "bulb", Type: models.FilterAll, Category: models.FilterAll})
	if len(got) != 1 || got[0].Name != "Bulbasaur" {
		t.Errorf("search 'bulb' = %v, want [Bulbasaur]", got)
	}

	got = Pokemon(items, models.FilterCriteria{Search: "zzz", Type: models.FilterAll, Category: models.FilterAll})
	if got == nil || len(got) != 0 {
		t.Errorf("search 'zzz' = %v, want empty non-nil slice", got)
	}
}

func TestPokemonSearch(t *testing.T) {
	tests := []struct {
		search string
		want   []string
	}{
		{"char", []string{"Charmander", "Charizard"}},
		{"CHAR", []string{"Charmander", "Charizard"}},
		{"25", []string{"Pikachu"}},
		{"#25", []string{"Pikachu"}},
		{"mega", []string{"Mega Venusaur"}},
		{"3-mega", []string{"Mega Venusaur"}},
		{"7", []string{"Squirtle"}},
		{"saur", []string{"Bulbasaur", "Mega Venusaur"}},
		{"#", names(samplePokemon())},
		{" # ", names(samplePokemon())},
		{"#zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got := names(Pokemon(samplePokemon(), models.FilterCriteria{Search: tt.search}))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("search %q = %v, want %v", tt.search, got, tt.want)
			}
		})
	}
}

func TestPokemonTypeFilterOnlyReturnsMatchingTypes(t *testing.T) {
	for _, typeName := range []string{"fire", "FIRE", "grass", "flying", "dragon"} {
		got := Pokemon(samplePokemon(), models.FilterCriteria{Type: typeName, Category: models.FilterAll})
		for _, p := range got {
			if !containsFold(p.Types, typeName) {
				t.Errorf("type %q returned %s with types %v", typeName, p.Name, p.Types)
			}
		}
	}

	fire := names(Pokemon(samplePokemon(), models.FilterCriteria{Type: "fire"}))
	if !reflect.DeepEqual(fire, []string{"Charmander", "Charizard"}) {
		t.Errorf("fire = %v", fire)
	}
}

func TestPokemonIgnoresCategoryPredicate(t *testing.T) {
	items := samplePokemon()
	got := Pokemon(items, models.FilterCriteria{Category: "physical"})
	if len(got) != len(items) {
		t.Errorf("category predicate excluded Pokémon: got %d of %d", len(got), len(items))
	}
}

func TestMovesConjunction(t *testing.T) {
	tests := []struct {
		desc     string
		criteria models.FilterCriteria
		want     []string
	}{
		{"type only", models.FilterCriteria{Type: "fire", Category: models.FilterAll}, []string{"Ember", "Fire Punch", "Flamethrower"}},
		{"category only", models.FilterCriteria{Type: models.FilterAll, Category: "physical"}, []string{"Tackle", "Fire Punch", "Vine Whip"}},
		{"type and category", models.FilterCriteria{Type: "fire", Category: "special"}, []string{"Ember", "Flamethrower"}},
		{"all three", models.FilterCriteria{Search: "flame", Type: "fire", Category: "Special"}, []string{"Flamethrower"}},
		{"status includes blank indicator", models.FilterCriteria{Category: "status"}, []string{"Growl", "Mystery"}},
		{"no match", models.FilterCriteria{Search: "thunder", Type: "fire"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := moveNames(Moves(sampleMoves(), tt.criteria))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Moves(%+v) = %v, want %v", tt.criteria, got, tt.want)
			}
		})
	}
}

func TestMovesPredicateSoundness(t *testing.T) {
	moves := sampleMoves()
	for _, typeName := range append([]string{models.FilterAll}, UniqueTypes(moves)...) {
		for _, category := range []string{models.FilterAll, "physical", "special", "status"} {
			criteria := models.FilterCriteria{Search: "e", Type: typeName, Category: category}
			for _, m := range Moves(moves, criteria) {
				if !strings.Contains(strings.ToLower(m.Name), "e") {
					t.Errorf("%+v returned %q which fails the search predicate", criteria, m.Name)
				}
				if !models.IsAll(typeName) && !strings.EqualFold(m.Type, typeName) {
					t.Errorf("%+v returned %q of type %q", criteria, m.Name, m.Type)
				}
				if !models.IsAll(category) && string(palette.CategoryFromIndicator(m.Category)) != category {
					t.Errorf("%+v returned %q with category %q", criteria, m.Name, m.Category)
				}
			}
		}
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	items := samplePokemon()
	before := make([]models.Pokemon, len(items))
	copy(before, items)

	got := Pokemon(items, models.FilterCriteria{Search: "char"})
	if len(got) > 0 {
		got[0].Name = "changed"
	}

	if !reflect.DeepEqual(items, before) {
		t.Error("filtering mutated the source slice")
	}
}

func TestUniqueTypes(t *testing.T) {
	got := UniqueTypes(sampleMoves())
	want := []string{"fire", "grass", "normal"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueTypes() = %v, want %v", got, want)
	}
}

func TestPokemonTypes(t *testing.T) {
	items := append(samplePokemon(), models.Pokemon{Name: "Shadow Lugia", Types: []string{"shadow"}})
	got := PokemonTypes(items)
	want := []string{"fire", "water", "electric", "grass", "poison", "Flying", "shadow"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PokemonTypes() = %v, want %v", got, want)
	}
}

func TestCycleOption(t *testing.T) {
	options := []string{"physical", "special", "status"}
	tests := []struct {
		current string
		step    int
		want    string
	}{
		{"all", 1, "physical"},
		{"physical", 1, "special"},
		{"status", 1, "all"},
		{"all", -1, "status"},
		{"bogus", 1, "physical"},
		{"Special", -1, "physical"},
	}

	for _, tt := range tests {
		if got := CycleOption(options, tt.current, tt.step); got != tt.want {
			t.Errorf("CycleOption(%q, %d) = %q, want %q", tt.current, tt.step, got, tt.want)
		}
	}
}

func names(items []models.Pokemon) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Name)
	}
	return out
}

func moveNames(items []models.Move) []string {
	out := make([]string, 0, len(items))
	for _, m := range items {
		out = append(out, m.Name)
	}
	return out
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
