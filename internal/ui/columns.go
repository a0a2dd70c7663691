package ui

// columns.go provides column width calculation for bubbles/table.
// Use ColumnSpec and CalculateColumns() instead of hand-computing widths.

import (
	"github.com/charmbracelet/bubbles/table"
)

// ColumnSpec defines a table column with flexible or fixed width.
// Use FlexRatio for columns that should expand/contract with terminal width.
// Use FixedWidth for columns that should maintain constant width.
type ColumnSpec struct {
	Title      string
	MinWidth   int // Minimum width (0 = no minimum)
	FixedWidth int // If > 0, use this exact width (ignores FlexRatio)
	FlexRatio  int // Relative ratio for flexible columns (0 = fixed-only)
}

// CalculateColumns computes column widths from specs.
// Flexible columns split remaining space by ratio after fixed columns are allocated.
// Each bubbles column carries one cell of padding per side, so that is
// subtracted from the available width first.
func CalculateColumns(specs []ColumnSpec, totalWidth int) []table.Column {
	if totalWidth < 40 {
		totalWidth = 40
	}
	totalWidth -= 2 * len(specs)

	fixedTotal := 0
	flexTotal := 0
	for _, s := range specs {
		if s.FixedWidth > 0 {
			fixedTotal += s.FixedWidth
		} else {
			flexTotal += s.FlexRatio
		}
	}

	remaining := totalWidth - fixedTotal
	if remaining < 0 {
		remaining = 0
	}

	columns := make([]table.Column, len(specs))
	for i, s := range specs {
		var width int
		if s.FixedWidth > 0 {
			width = s.FixedWidth
		} else if flexTotal > 0 {
			width = remaining * s.FlexRatio / flexTotal
		}

		if s.MinWidth > 0 && width < s.MinWidth {
			width = s.MinWidth
		}

		columns[i] = table.Column{Title: s.Title, Width: width}
	}

	return columns
}

// PokemonColumns returns column specs for the Pokémon list
func PokemonColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "#", FixedWidth: 8},
		{Title: "Name", FlexRatio: 45, MinWidth: 14},
		{Title: "Types", FlexRatio: 35, MinWidth: 16},
		{Title: "HP", FixedWidth: 4},
		{Title: "Atk", FixedWidth: 4},
		{Title: "Def", FixedWidth: 4},
		{Title: "Spe", FixedWidth: 4},
		{Title: "Total", FixedWidth: 6},
	}
}

// MoveColumns returns column specs for the move browser
func MoveColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Name", FlexRatio: 35, MinWidth: 14},
		{Title: "Type", FixedWidth: 10},
		{Title: "Category", FixedWidth: 9},
		{Title: "Power", FixedWidth: 6},
		{Title: "Acc.", FixedWidth: 5},
		{Title: "PP", FixedWidth: 4},
		{Title: "Effect", FlexRatio: 65, MinWidth: 10},
	}
}
