package models

import (
	"fmt"
	"strings"
)

// Category is the damage class of a move
type Category string

const (
	CategoryPhysical Category = "physical"
	CategorySpecial  Category = "special"
	CategoryStatus   Category = "status"
)

// Categories lists the move categories in display order
var Categories = []Category{CategoryPhysical, CategorySpecial, CategoryStatus}

// Move represents a MoveRecord from the move database.
// Category holds the raw indicator (usually an image path such as
// "/img/physical.png"); the actual Category is derived from it.
type Move struct {
	Key      string `json:"_id,omitempty"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Power    int    `json:"power"`
	Accuracy int    `json:"accuracy"`
	PP       int    `json:"pp"`
	Effect   string `json:"effect,omitempty"`
}

// IsValid reports whether the move carries the minimum fields needed for display
func (m Move) IsValid() bool {
	return strings.TrimSpace(m.Name) != "" &&
		strings.TrimSpace(m.Type) != "" &&
		strings.TrimSpace(m.Category) != ""
}

// HasEffect reports whether the move has a non-blank effect description
func (m Move) HasEffect() bool {
	return strings.TrimSpace(m.Effect) != ""
}

// EmDash is shown in place of values that do not apply
const EmDash = "—"

// DisplayPower renders power, or an em-dash when the move has none
func (m Move) DisplayPower() string {
	return displayValue(m.Power)
}

// DisplayPP renders PP, or an em-dash when unknown
func (m Move) DisplayPP() string {
	return displayValue(m.PP)
}

// DisplayAccuracy renders accuracy as a percentage, or an em-dash
// for moves that always hit or have variable accuracy
func (m Move) DisplayAccuracy() string {
	if m.Accuracy > 0 {
		return fmt.Sprintf("%d%%", m.Accuracy)
	}
	return EmDash
}

func displayValue(v int) string {
	if v > 0 {
		return fmt.Sprintf("%d", v)
	}
	return EmDash
}
