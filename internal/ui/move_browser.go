package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/thesavant42/pokedex-ng/internal/api"
	"github.com/thesavant42/pokedex-ng/internal/filter"
	"github.com/thesavant42/pokedex-ng/internal/models"
	"github.com/thesavant42/pokedex-ng/internal/palette"
)

// categoryOptions are the move category filter values after "all"
var categoryOptions = []string{
	string(models.CategoryPhysical),
	string(models.CategorySpecial),
	string(models.CategoryStatus),
}

// MoveBrowserModel lists the whole move database with type, category and name filters
type MoveBrowserModel struct {
	BaseTableModel
	ctx     context.Context
	client  Fetcher
	logger  *log.Logger
	spinner spinner.Model

	loading  bool
	err      error
	all      []models.Move
	visible  []models.Move
	types    []string
	criteria models.FilterCriteria
}

// NewMoveBrowserModel creates the move browser. The moves are fetched by Init.
func NewMoveBrowserModel(ctx context.Context, client Fetcher, logger *log.Logger) MoveBrowserModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return MoveBrowserModel{
		BaseTableModel: NewBaseTableModel(MoveColumns(), "Search move names..."),
		ctx:            ctx,
		client:         client,
		logger:         logger,
		spinner:        NewAppSpinner(),
		loading:        true,
		all:            []models.Move{},
		visible:        []models.Move{},
		criteria:       models.NewFilterCriteria(),
	}
}

// Init implements tea.Model
func (m MoveBrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchMovesCmd(m.ctx, m.client))
}

// Update implements tea.Model
func (m MoveBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.ClearExpiredStatus()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.HandleWindowResize(msg.Width, msg.Height) {
			m.updateTable()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case moveListLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.ClearStatus()
			m.logger.Error("failed to load moves", "err", msg.err)
			return m, nil
		}
		if m.StatusMsg == reloadingStatus {
			m.SetStatus(fmt.Sprintf("Reloaded %d moves", len(msg.moves)), statusTTL)
		}
		m.err = nil
		m.all = msg.moves
		m.types = filter.UniqueTypes(m.all)
		m.applyFilters()
		m.logger.Debug("loaded moves", "count", len(m.all), "types", len(m.types))
		return m, nil

	case tea.KeyMsg:
		if m.Searching {
			return m.handleSearchKeys(msg)
		}
		return m.handleTableKeys(msg)
	}

	return m, nil
}

func (m MoveBrowserModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc", "down", "up":
		m.BlurSearch()
		return m, nil
	}

	changed, cmd := m.UpdateSearch(msg)
	if changed {
		m.criteria.Search = m.SearchValue()
		m.applyFilters()
	}
	return m, cmd
}

func (m MoveBrowserModel) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if quit, cmd := HandleQuitKeys(key); quit {
		return m, cmd
	}
	if m.HandleTableNavigation(key) {
		return m, nil
	}

	switch key {
	case "/":
		cmd := m.FocusSearch()
		return m, cmd

	case "t":
		m.criteria.Type = filter.CycleOption(m.types, m.criteria.Type, 1)
		m.applyFilters()

	case "T":
		m.criteria.Type = filter.CycleOption(m.types, m.criteria.Type, -1)
		m.applyFilters()

	case "tab":
		m.criteria.Category = filter.CycleOption(categoryOptions, m.criteria.Category, 1)
		m.applyFilters()

	case "shift+tab":
		m.criteria.Category = filter.CycleOption(categoryOptions, m.criteria.Category, -1)
		m.applyFilters()

	case "c":
		m.clearFilters()

	case "r":
		if m.err != nil && !m.loading {
			m.loading = true
			m.err = nil
			m.SetStatus(reloadingStatus, 0)
			return m, tea.Batch(m.spinner.Tick, fetchMovesCmd(m.ctx, m.client))
		}

	case "esc", "backspace", "b":
		if key == "esc" && m.criteria.IsActive() && m.err == nil {
			m.clearFilters()
			return m, nil
		}
		return m, navigate(PageList, "")
	}

	return m, nil
}

func (m *MoveBrowserModel) clearFilters() {
	m.criteria.Clear()
	m.Search.SetValue("")
	m.applyFilters()
	m.SetStatus("Filters cleared", statusTTL)
}

// applyFilters recomputes the visible moves from the source and the criteria
func (m *MoveBrowserModel) applyFilters() {
	m.visible = filter.Moves(m.all, m.criteria)
	m.updateTable()
}

func (m *MoveBrowserModel) updateTable() {
	columns := m.Table.Columns()
	width := func(i int) int {
		if i < len(columns) {
			return columns[i].Width
		}
		return 0
	}

	rows := make([]table.Row, len(m.visible))
	for i, mv := range m.visible {
		category := palette.CategoryDisplayName(palette.CategoryFromIndicator(mv.Category))
		rows[i] = table.Row{
			truncateToWidth(mv.Name, width(0)),
			truncateToWidth(palette.TypeDisplayName(mv.Type), width(1)),
			category,
			mv.DisplayPower(),
			mv.DisplayAccuracy(),
			mv.DisplayPP(),
			truncateToWidth(mv.Effect, width(6)),
		}
	}
	m.SetRows(rows)
}

// Selected returns the move under the cursor
func (m MoveBrowserModel) Selected() (models.Move, bool) {
	if i := m.SelectedIndex(); i >= 0 && i < len(m.visible) {
		return m.visible[i], true
	}
	return models.Move{}, false
}

// View implements tea.Model
func (m MoveBrowserModel) View() string {
	b := NewPageView(m.Layout).
		Title("Pokémon Moves").
		Subtitle(fmt.Sprintf("Total moves: %d", len(m.all))).
		Divider()

	switch {
	case m.loading:
		return b.Spacing(1).
			Text(fmt.Sprintf("%s Loading moves...", m.spinner.View())).
			Help("esc: back to list | q: quit").
			Build()

	case m.err != nil:
		return b.Spacing(1).
			CustomContent(RenderError(api.Message(m.err)) + "\n").
			DimText(m.err.Error()).
			Help("r: retry | esc: back to list | q: quit").
			Build()
	}

	b.CustomContent(m.Search.View()+"\n").
		Filters("Type", FilterLabel(m.criteria.Type), "Category", FilterLabel(m.criteria.Category)).
		QueryInfo(countLabel(len(m.visible), len(m.all), "moves"))

	if len(m.visible) == 0 {
		b.Empty("No moves found matching your filters.").
			CustomContent(CenterText(RenderDim("c: clear filters"), m.Layout.InnerWidth) + "\n")
	} else {
		b.Table(m.Table)
		if mv, ok := m.Selected(); ok {
			b.Spacing(1).CustomContent(RenderMoveSummary(mv, m.Layout.InnerWidth))
		}
	}

	return b.PageStatus(m.PageState).Help(m.helpText()).Build()
}

func (m MoveBrowserModel) helpText() string {
	if m.Searching {
		return "type to search | enter/esc: done"
	}
	return "↑/↓: navigate | /: search | t/T: type | tab: category | c: clear | esc: back | q: quit"
}

// RenderMoveSummary renders a move as a short card: header line, stats line and wrapped effect
func RenderMoveSummary(mv models.Move, width int) string {
	header := RenderTitle(mv.Name) + "  " + TypeBadge(mv.Type)
	stats := fmt.Sprintf("%s %s   %s %s   %s %s   %s %s",
		RenderDim("Category:"), CategoryLabel(palette.CategoryFromIndicator(mv.Category)),
		RenderDim("Power:"), RenderNormal(mv.DisplayPower()),
		RenderDim("Accuracy:"), RenderNormal(mv.DisplayAccuracy()),
		RenderDim("PP:"), RenderNormal(mv.DisplayPP()),
	)

	lines := []string{header, stats}
	if mv.HasEffect() {
		for _, l := range WrapText(mv.Effect, width-4) {
			lines = append(lines, RenderDim(l))
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
