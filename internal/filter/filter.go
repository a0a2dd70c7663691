// Package filter derives the visible subset of a collection from FilterCriteria.
//
// Predicates are combined with AND:
//   - text:     case-folded substring of the name, or substring of the stringified id
//   - type:     case-folded membership in the item's type set
//   - category: equality of the derived move category
//
// A criteria value of "all" (or empty) disables its predicate; so does a search
// term that is empty once a leading "#" is removed. Filtering never
// mutates the source slice and always returns a new slice, possibly empty.
package filter

import (
	"sort"
	"strings"

	"github.com/thesavant42/pokedex-ng/internal/models"
	"github.com/thesavant42/pokedex-ng/internal/palette"
)

// Accessors tells Apply how to read the filterable fields of an item.
// A nil accessor means the item has no such field and the matching
// predicate never excludes it.
type Accessors[T any] struct {
	Name     func(T) string
	ID       func(T) string
	Types    func(T) []string
	Category func(T) models.Category
}

// Apply returns the items that satisfy every active predicate in criteria
func Apply[T any](items []T, criteria models.FilterCriteria, acc Accessors[T]) []T {
	search := palette.Fold(criteria.Search)
	if strings.TrimSpace(strings.TrimPrefix(search, "#")) == "" {
		search = ""
	}
	typeName := ""
	if !models.IsAll(criteria.Type) {
		typeName = palette.Fold(criteria.Type)
	}
	category := ""
	if !models.IsAll(criteria.Category) {
		category = palette.Fold(criteria.Category)
	}

	result := make([]T, 0, len(items))
	for _, item := range items {
		if search != "" && !matchesText(item, search, acc) {
			continue
		}
		if typeName != "" && acc.Types != nil && !hasType(acc.Types(item), typeName) {
			continue
		}
		if category != "" && acc.Category != nil && string(acc.Category(item)) != category {
			continue
		}
		result = append(result, item)
	}
	return result
}

func matchesText[T any](item T, search string, acc Accessors[T]) bool {
	if acc.Name != nil && strings.Contains(palette.Fold(acc.Name(item)), search) {
		return true
	}
	if acc.ID != nil {
		id := strings.TrimPrefix(search, "#")
		if id != "" && strings.Contains(palette.Fold(acc.ID(item)), id) {
			return true
		}
	}
	return false
}

func hasType(types []string, want string) bool {
	for _, t := range types {
		if palette.Fold(t) == want {
			return true
		}
	}
	return false
}

// pokemonAccessors has no Category: Pokémon are never excluded by the category predicate
var pokemonAccessors = Accessors[models.Pokemon]{
	Name:  func(p models.Pokemon) string { return p.Name },
	ID:    func(p models.Pokemon) string { return p.ID.String() },
	Types: func(p models.Pokemon) []string { return p.Types },
}

var moveAccessors = Accessors[models.Move]{
	Name:  func(m models.Move) string { return m.Name },
	Types: func(m models.Move) []string { return []string{m.Type} },
	Category: func(m models.Move) models.Category {
		return palette.CategoryFromIndicator(m.Category)
	},
}

// Pokemon filters a Pokémon list by name/id search and type
func Pokemon(items []models.Pokemon, criteria models.FilterCriteria) []models.Pokemon {
	return Apply(items, criteria, pokemonAccessors)
}

// Moves filters the move database by name search, type and category
func Moves(items []models.Move, criteria models.FilterCriteria) []models.Move {
	return Apply(items, criteria, moveAccessors)
}

// UniqueTypes returns the distinct, non-empty move types sorted alphabetically.
// Types differing only in case are collapsed to their first spelling.
func UniqueTypes(moves []models.Move) []string {
	seen := make(map[string]bool)
	var types []string
	for _, m := range moves {
		t := strings.TrimSpace(m.Type)
		if t == "" {
			continue
		}
		key := palette.Fold(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return palette.Fold(types[i]) < palette.Fold(types[j])
	})
	return types
}

// PokemonTypes returns the distinct types across a Pokémon list, in canonical
// type order first, followed by any non-canonical types alphabetically
func PokemonTypes(items []models.Pokemon) []string {
	present := make(map[string]string)
	for _, p := range items {
		for _, t := range p.Types {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			key := palette.Fold(t)
			if _, ok := present[key]; !ok {
				present[key] = t
			}
		}
	}

	var types []string
	for _, name := range palette.TypeNames() {
		if t, ok := present[name]; ok {
			types = append(types, t)
			delete(present, name)
		}
	}

	var extra []string
	for _, t := range present {
		extra = append(extra, t)
	}
	sort.Strings(extra)
	return append(types, extra...)
}

// CycleOption steps through options with "all" as the first entry.
// It returns the option step positions away from current, wrapping around.
// An unknown current value is treated as "all".
func CycleOption(options []string, current string, step int) string {
	all := append([]string{models.FilterAll}, options...)

	index := 0
	for i, o := range all {
		if strings.EqualFold(o, current) {
			index = i
			break
		}
	}

	n := len(all)
	index = ((index+step)%n + n) % n
	return all[index]
}
