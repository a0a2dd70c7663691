package ui

// base_model.go provides common TUI functionality for the table pages.
// Embed BaseTableModel in list-style models to share table setup, resize and key handling.

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// BaseTableModel - Embed in table-based models
// =============================================================================

// BaseTableModel holds the table, its column specs and the search box
// shared by the Pokémon list and the move browser.
//
// Usage:
//
//	type myModel struct {
//	    BaseTableModel  // Embedded
//	    customField string
//	}
type BaseTableModel struct {
	PageState
	Table     table.Model
	Search    textinput.Model
	Columns   []ColumnSpec
	Searching bool // search box has focus
}

// NewBaseTableModel creates a BaseTableModel with default layout
func NewBaseTableModel(columns []ColumnSpec, placeholder string) BaseTableModel {
	layout := DefaultLayout()
	return BaseTableModel{
		PageState: NewPageState(layout),
		Table:     InitTable(CalculateColumns(columns, layout.TableWidth), nil, layout),
		Search:    NewSearchInput(placeholder, layout),
		Columns:   columns,
	}
}

// =============================================================================
// Table Initialization Helpers
// =============================================================================

// InitTable creates and configures a table with proper styling and dimensions.
// Use this instead of manually calling table.New() to ensure consistent setup.
func InitTable(columns []table.Column, rows []table.Row, layout Layout) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(layout.TableHeight),
	)

	ApplyTableStyles(&t)

	// Ensure cursor starts at the top for proper viewport positioning
	t.GotoTop()

	return t
}

// NewSearchInput creates the search text input styled to the app theme
func NewSearchInput(placeholder string, layout Layout) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = layout.InnerWidth - 12
	// Style text input to match app theme (white text, not yellow)
	ti.TextStyle = NormalStyle
	ti.PromptStyle = NormalStyle
	ti.PlaceholderStyle = DimStyle
	return ti
}

// HandleWindowResize updates layout, column widths and table height.
// Returns true if the layout changed.
func (m *BaseTableModel) HandleWindowResize(width, height int) bool {
	if !m.UpdateLayout(width, height) {
		return false
	}
	m.Table.SetColumns(CalculateColumns(m.Columns, m.Layout.TableWidth))
	m.Table.SetHeight(m.Layout.TableHeight)
	m.Search.Width = m.Layout.InnerWidth - 12
	return true
}

// SetRows replaces the table rows and keeps the cursor in range
func (m *BaseTableModel) SetRows(rows []table.Row) {
	m.Table.SetRows(rows)
	if c := m.Table.Cursor(); c >= len(rows) || c < 0 {
		m.Table.GotoTop()
	}
}

// FocusSearch gives the search box focus
func (m *BaseTableModel) FocusSearch() tea.Cmd {
	m.Searching = true
	m.Table.Blur()
	return m.Search.Focus()
}

// BlurSearch returns focus to the table
func (m *BaseTableModel) BlurSearch() {
	m.Searching = false
	m.Search.Blur()
	m.Table.Focus()
}

// UpdateSearch forwards a key to the search box and reports whether its value changed
func (m *BaseTableModel) UpdateSearch(msg tea.Msg) (bool, tea.Cmd) {
	before := m.Search.Value()
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	return sanitizeInput(m.Search.Value()) != sanitizeInput(before), cmd
}

// SearchValue returns the sanitized search text
func (m BaseTableModel) SearchValue() string {
	return sanitizeInput(m.Search.Value())
}

// =============================================================================
// Key Handling Helpers
// =============================================================================

// HandleQuitKeys returns true and Quit cmd for q/ctrl+c keys.
// esc is left to the page since it means "back" or "cancel".
func HandleQuitKeys(key string) (bool, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		return true, tea.Quit
	}
	return false, nil
}

// HandleTableNavigation moves the table cursor for the standard navigation keys.
// Returns false if the key is not a navigation key.
func (m *BaseTableModel) HandleTableNavigation(key string) bool {
	switch key {
	case "up", "k":
		m.Table.MoveUp(1)
	case "down", "j":
		m.Table.MoveDown(1)
	case "pgup":
		m.Table.MoveUp(m.Layout.TableHeight)
	case "pgdown":
		m.Table.MoveDown(m.Layout.TableHeight)
	case "home", "g":
		m.Table.GotoTop()
	case "end", "G":
		m.Table.GotoBottom()
	default:
		return false
	}
	return true
}

// SelectedIndex returns the cursor position, or -1 if the table is empty
func (m BaseTableModel) SelectedIndex() int {
	c := m.Table.Cursor()
	if c < 0 || c >= len(m.Table.Rows()) {
		return -1
	}
	return c
}
