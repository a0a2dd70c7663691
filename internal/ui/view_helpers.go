package ui

// view_helpers.go provides common View() rendering helpers.
// Use these to build consistent two-box layouts across all pages.

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
)

// RenderTableWithSelection renders a bubbles table with full-width selection highlight.
//
// bubbles/table View() output is the header row followed by the visible data
// rows only; there is no divider line, so one is added after the header.
// The visible cursor row is recomputed from the table height because the
// table scrolls internally.
func RenderTableWithSelection(t table.Model, layout Layout) string {
	lines := strings.Split(t.View(), "\n")
	result := make([]string, 0, len(lines)+1)

	cursor := t.Cursor()
	height := t.Height()
	totalRows := len(t.Rows())

	start := 0
	if totalRows > height {
		if cursor >= height {
			start = cursor - height + 1
		}
		if maxStart := totalRows - height; start > maxStart {
			start = maxStart
		}
	}
	visibleCursor := cursor - start

	for i, line := range lines {
		if i == 0 {
			result = append(result, NormalStyle.Render(line))
			result = append(result, FullWidthDivider(layout.InnerWidth))
			continue
		}

		if i-1 == visibleCursor && totalRows > 0 {
			// Strip escape codes first so embedded resets don't kill the background
			clean := stripEscapeCodes(line)
			if w := StringWidth(clean); w < layout.InnerWidth {
				clean += strings.Repeat(" ", layout.InnerWidth-w)
			} else if w > layout.InnerWidth {
				clean = truncateToWidth(clean, layout.InnerWidth)
			}
			result = append(result, SelectedStyle.Render(clean))
			continue
		}

		result = append(result, NormalStyle.Render(line))
	}

	return strings.Join(result, "\n")
}

// CenterText centers text within given width.
// Uses StringWidth() for ANSI-aware width calculation.
func CenterText(text string, width int) string {
	textW := StringWidth(text)
	if textW >= width {
		return text
	}
	return strings.Repeat(" ", (width-textW)/2) + text
}

// FullWidthDivider returns a horizontal divider spanning the inner width
func FullWidthDivider(innerWidth int) string {
	return strings.Repeat("─", innerWidth)
}

// RenderTabs renders a row of tabs with the active one highlighted
func RenderTabs(names []string, active int) string {
	tabs := make([]string, len(names))
	for i, name := range names {
		if i == active {
			tabs[i] = TabActiveStyle.Render(name)
		} else {
			tabs[i] = TabInactiveStyle.Render(name)
		}
	}
	return strings.Join(tabs, " ")
}

// WrapText breaks plain text into lines of at most width cells at spaces
func WrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if StringWidth(line)+1+StringWidth(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
