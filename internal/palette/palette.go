// Package palette maps element types and move categories to display colours and labels.
// All functions are pure and total: unknown input maps to a fallback instead of failing.
package palette

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/thesavant42/pokedex-ng/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback is used for unknown types and categories
const Fallback = lipgloss.Color("#68A090")

// typeOrder is the canonical display order of the 18 types
var typeOrder = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

var typeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("#A8A878"),
	"fire":     lipgloss.Color("#F08030"),
	"water":    lipgloss.Color("#6890F0"),
	"electric": lipgloss.Color("#F8D030"),
	"grass":    lipgloss.Color("#78C850"),
	"ice":      lipgloss.Color("#98D8D8"),
	"fighting": lipgloss.Color("#C03028"),
	"poison":   lipgloss.Color("#A040A0"),
	"ground":   lipgloss.Color("#E0C068"),
	"flying":   lipgloss.Color("#A890F0"),
	"psychic":  lipgloss.Color("#F85888"),
	"bug":      lipgloss.Color("#A8B820"),
	"rock":     lipgloss.Color("#B8A038"),
	"ghost":    lipgloss.Color("#705898"),
	"dragon":   lipgloss.Color("#7038F8"),
	"dark":     lipgloss.Color("#705848"),
	"steel":    lipgloss.Color("#B8B8D0"),
	"fairy":    lipgloss.Color("#EE99AC"),
}

var categoryColors = map[models.Category]lipgloss.Color{
	models.CategoryPhysical: lipgloss.Color("#E44133"),
	models.CategorySpecial:  lipgloss.Color("#3F6FBA"),
	models.CategoryStatus:   lipgloss.Color("#8C888C"),
}

// Fold returns the case-folded form of s, used for case-insensitive comparisons.
// Casers keep internal state, so a fresh one is made per call.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func title(s string) string {
	return cases.Title(language.English).String(s)
}

// TypeNames returns the 18 canonical type names in display order
func TypeNames() []string {
	names := make([]string, len(typeOrder))
	copy(names, typeOrder)
	return names
}

// IsKnownType reports whether name is one of the 18 canonical types
func IsKnownType(name string) bool {
	_, ok := typeColors[Fold(name)]
	return ok
}

// TypeColor returns the badge colour for an element type (case-insensitive)
func TypeColor(typeName string) lipgloss.Color {
	if c, ok := typeColors[Fold(typeName)]; ok {
		return c
	}
	return Fallback
}

// CategoryFromIndicator derives a move category from its indicator.
// The indicator is usually an image path like "/img/physical.png". Anything that is
// not a string, or a string naming neither physical nor special, is a status move.
func CategoryFromIndicator(indicator any) models.Category {
	s, ok := indicator.(string)
	if !ok || s == "" {
		return models.CategoryStatus
	}

	s = Fold(s)
	switch {
	case strings.Contains(s, string(models.CategoryPhysical)):
		return models.CategoryPhysical
	case strings.Contains(s, string(models.CategorySpecial)):
		return models.CategorySpecial
	default:
		return models.CategoryStatus
	}
}

// CategoryColor returns the text colour for a move category
func CategoryColor(category models.Category) lipgloss.Color {
	if c, ok := categoryColors[models.Category(Fold(string(category)))]; ok {
		return c
	}
	return Fallback
}

// CategoryDisplayName returns the capitalised category label ("Physical")
func CategoryDisplayName(category models.Category) string {
	return title(string(category))
}

// TypeDisplayName returns the capitalised type label ("Fire")
func TypeDisplayName(typeName string) string {
	return title(strings.TrimSpace(typeName))
}

// TextColorFor picks black or white text for readability on a badge colour.
// Non-hex colours (ANSI codes) get white text.
func TextColorFor(background lipgloss.Color) lipgloss.Color {
	c, err := colorful.Hex(string(background))
	if err != nil {
		return lipgloss.Color("15")
	}
	if l, _, _ := c.Lab(); l > 0.65 {
		return lipgloss.Color("0")
	}
	return lipgloss.Color("15")
}
