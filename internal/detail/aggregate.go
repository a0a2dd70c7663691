// Package detail merges a Pokémon record with its fetched move records and
// holds the state machine of the detail page.
package detail

import (
	"strings"

	"github.com/thesavant42/pokedex-ng/internal/models"
	"github.com/thesavant42/pokedex-ng/internal/palette"
)

// Result partitions a Pokémon's moves into those with displayable detail
// and the names that could not be matched to a complete move record
type Result struct {
	Validated  []models.Move
	Unresolved []string
}

// Total returns the number of moves shown, resolved or not
func (r Result) Total() int {
	return len(r.Validated) + len(r.Unresolved)
}

// Aggregate partitions declared move names against the fetched move records.
//
// Validated holds every valid fetched move exactly once: first those named in
// declared (in declared order), then the remaining valid fetched moves in
// fetched order. Unresolved holds the declared names with no valid match,
// de-duplicated, in declared order. A name matches exactly first and falls
// back to a case-insensitive comparison.
func Aggregate(declared []string, fetched []models.Move) Result {
	exact := make(map[string]int)
	folded := make(map[string]int)
	for i, m := range fetched {
		if !m.IsValid() {
			continue
		}
		name := strings.TrimSpace(m.Name)
		if _, ok := exact[name]; !ok {
			exact[name] = i
		}
		key := palette.Fold(name)
		if _, ok := folded[key]; !ok {
			folded[key] = i
		}
	}

	result := Result{
		Validated:  []models.Move{},
		Unresolved: []string{},
	}
	used := make(map[int]bool)
	seenUnresolved := make(map[string]bool)

	for _, name := range declared {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		i, ok := exact[name]
		if !ok {
			i, ok = folded[palette.Fold(name)]
		}
		if ok {
			if !used[i] {
				used[i] = true
				result.Validated = append(result.Validated, fetched[i])
			}
			continue
		}

		key := palette.Fold(name)
		if !seenUnresolved[key] {
			seenUnresolved[key] = true
			result.Unresolved = append(result.Unresolved, name)
		}
	}

	seenNames := make(map[string]bool)
	for i := range used {
		seenNames[palette.Fold(fetched[i].Name)] = true
	}
	for i, m := range fetched {
		if used[i] || !m.IsValid() {
			continue
		}
		key := palette.Fold(m.Name)
		if seenNames[key] {
			continue
		}
		seenNames[key] = true
		result.Validated = append(result.Validated, m)
	}

	return result
}

// Unresolved returns every declared name as unresolved.
// It is used when the move records could not be fetched at all.
func Unresolved(declared []string) Result {
	return Aggregate(declared, nil)
}
