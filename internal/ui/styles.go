package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/thesavant42/pokedex-ng/internal/models"
	"github.com/thesavant42/pokedex-ng/internal/palette"
)

// Layout constants - single source of truth for all viewport dimensions
const (
	MinViewportWidth = 80
	MaxViewportWidth = 140
	DefaultWidth     = 100 // Used when terminal size is unknown
	DefaultHeight    = 32
	MinTableHeight   = 5
	BorderPadding    = 2 // left/right border chars

	// title, filters, dividers, status and the help box
	chromeHeight = 14
)

// Layout holds computed dimensions for the current terminal size
type Layout struct {
	ViewportWidth  int // clamped terminal width
	ViewportHeight int // terminal height
	InnerWidth     int // exact width for content inside borders
	TableWidth     int // sum of column widths + separators
	TableHeight    int // visible table rows
}

// NewLayout creates a Layout from the terminal size, clamping the width to min/max
func NewLayout(terminalWidth, terminalHeight int) Layout {
	width := clamp(terminalWidth, MinViewportWidth, MaxViewportWidth)
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}
	tableHeight := terminalHeight - chromeHeight
	if tableHeight < MinTableHeight {
		tableHeight = MinTableHeight
	}
	return Layout{
		ViewportWidth:  width,
		ViewportHeight: terminalHeight,
		InnerWidth:     width - BorderPadding,
		TableWidth:     width - 4,
		TableHeight:    tableHeight,
	}
}

// DefaultLayout returns a layout using the default size
func DefaultLayout() Layout {
	return NewLayout(DefaultWidth, DefaultHeight)
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Color palette - centralized color definitions
var (
	ColorBorder    = lipgloss.Color("196") // red, the Pokédex shell
	ColorHighlight = lipgloss.Color("88")  // dark red background
	ColorText      = lipgloss.Color("15")  // bright white
	ColorAccent    = lipgloss.Color("226") // bright yellow
	ColorTextDim   = lipgloss.Color("241") // gray
	ColorError     = lipgloss.Color("203")
	ColorSuccess   = lipgloss.Color("82")
	ColorStatBar   = lipgloss.Color("#78C850")
)

// Common styles - reusable style definitions
var (
	// STYLE GUIDE: Always use .Width(ViewportWidth) with NO .Padding()
	// Content inside borders must use InnerWidth
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	HelpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorText)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Italic(true)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	StatusMsgStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true).
			Padding(0, 2)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Padding(0, 2)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorTextDim).
			Padding(0, 1)
)

// RenderTitle renders a section title
func RenderTitle(s string) string { return TitleStyle.Render(s) }

// RenderNormal renders plain white text
func RenderNormal(s string) string { return NormalStyle.Render(s) }

// RenderDim renders gray secondary text
func RenderDim(s string) string { return DimStyle.Render(s) }

// RenderAccent renders highlighted yellow text
func RenderAccent(s string) string { return AccentStyle.Render(s) }

// RenderError renders an error line
func RenderError(s string) string { return ErrorStyle.Render(s) }

// RenderSelectedWidth renders s highlighted and padded to width
func RenderSelectedWidth(s string, width int) string {
	return SelectedStyle.Width(width).Render(s)
}

// TypeBadge renders an element type on its type colour
func TypeBadge(typeName string) string {
	bg := palette.TypeColor(typeName)
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(palette.TextColorFor(bg)).
		Bold(true).
		Padding(0, 1).
		Render(palette.TypeDisplayName(typeName))
}

// TypeBadges renders all types of a record separated by a space
func TypeBadges(types []string) string {
	badges := make([]string, 0, len(types))
	for _, t := range types {
		badges = append(badges, TypeBadge(t))
	}
	return strings.Join(badges, " ")
}

// CategoryLabel renders a move category name in its category colour
func CategoryLabel(category models.Category) string {
	return lipgloss.NewStyle().
		Foreground(palette.CategoryColor(category)).
		Bold(true).
		Render(palette.CategoryDisplayName(category))
}

// FilterLabel renders a criteria value, showing "All" for the sentinel
func FilterLabel(value string) string {
	if models.IsAll(value) {
		return "All"
	}
	return palette.TypeDisplayName(value)
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

// stripEscapeCodes removes ANSI escape sequences from s
func stripEscapeCodes(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// StringWidth returns the printable cell width of s
func StringWidth(s string) int {
	return lipgloss.Width(s)
}

// truncateToWidth cuts plain text to at most width cells
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > width {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String()
}

// PadContentToHeight pads content with newlines to fill target height
func PadContentToHeight(content string, targetHeight int) string {
	lines := strings.Count(content, "\n") + 1
	if lines >= targetHeight {
		return content
	}
	return content + strings.Repeat("\n", targetHeight-lines)
}

// TwoBoxView renders the main content box (red border) above a one-line
// help box (white border)
func TwoBoxView(content, helpText string, layout Layout) string {
	mainHeight := layout.ViewportHeight - 5
	if mainHeight < 1 {
		mainHeight = 1
	}
	content = strings.TrimRight(content, "\n")
	main := BorderStyle.
		Width(layout.InnerWidth).
		Render(PadContentToHeight(content, mainHeight))

	help := HelpBoxStyle.
		Width(layout.InnerWidth).
		Render(CenterText(HintStyle.Render(helpText), layout.InnerWidth))

	return lipgloss.JoinVertical(lipgloss.Left, main, help)
}

// ApplyTableStyles sets the standard header and cell styles.
// Selection is painted by RenderTableWithSelection, so Selected stays neutral.
func ApplyTableStyles(t *table.Model) {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(false).
		Bold(true).
		Foreground(ColorText)
	s.Cell = s.Cell.Foreground(ColorText)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
}

// NewAppSpinner returns the white dot spinner used on every loading screen
func NewAppSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorText)
	return s
}

// NewAppTheme creates a huh theme matching the app's style guide
// White text, red highlights/selection
func NewAppTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)
	t.Blurred.Title = t.Focused.Title

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Blurred.Description = t.Focused.Description

	t.Focused.Base = lipgloss.NewStyle().
		Foreground(ColorText)
	t.Blurred.Base = t.Focused.Base

	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBorder).
		Bold(true).
		Padding(0, 1)
	t.Focused.UnselectedOption = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBorder).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(ColorBorder)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(ColorBorder)

	return t
}

// countLabel renders "Showing N of M <noun>"
func countLabel(shown, total int, noun string) string {
	return fmt.Sprintf("Showing %d of %d %s", shown, total, noun)
}
