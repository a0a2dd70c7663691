package ui

import (
	"context"
	"fmt"
	"io"
	"strconv"
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

// PokemonListModel is the root page: the searchable Pokémon table
type PokemonListModel struct {
	BaseTableModel
	ctx     context.Context
	client  Fetcher
	logger  *log.Logger
	spinner spinner.Model

	loading  bool
	err      error
	all      []models.Pokemon
	visible  []models.Pokemon
	types    []string
	criteria models.FilterCriteria
}

// NewPokemonListModel creates the list page. The list is fetched by Init.
func NewPokemonListModel(ctx context.Context, client Fetcher, logger *log.Logger) PokemonListModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return PokemonListModel{
		BaseTableModel: NewBaseTableModel(PokemonColumns(), "Search by name or number..."),
		ctx:            ctx,
		client:         client,
		logger:         logger,
		spinner:        NewAppSpinner(),
		loading:        true,
		all:            []models.Pokemon{},
		visible:        []models.Pokemon{},
		criteria:       models.NewFilterCriteria(),
	}
}

// Init implements tea.Model
func (m PokemonListModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchPokemonListCmd(m.ctx, m.client))
}

// Update implements tea.Model
func (m PokemonListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	case pokemonListLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.ClearStatus()
			m.logger.Error("failed to load Pokémon list", "err", msg.err)
			return m, nil
		}
		if m.StatusMsg == reloadingStatus {
			m.SetStatus(fmt.Sprintf("Reloaded %d Pokémon", len(msg.pokemon)), statusTTL)
		}
		m.err = nil
		m.all = msg.pokemon
		m.types = filter.PokemonTypes(m.all)
		m.applyFilters()
		m.logger.Debug("loaded Pokémon list", "count", len(m.all))
		return m, nil

	case tea.KeyMsg:
		if m.Searching {
			return m.handleSearchKeys(msg)
		}
		return m.handleTableKeys(msg)
	}

	return m, nil
}

func (m PokemonListModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

func (m PokemonListModel) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

	case "c", "esc":
		if m.criteria.IsActive() {
			m.clearFilters()
		}

	case "r":
		if m.err != nil && !m.loading {
			m.loading = true
			m.err = nil
			m.SetStatus(reloadingStatus, 0)
			return m, tea.Batch(m.spinner.Tick, fetchPokemonListCmd(m.ctx, m.client))
		}

	case "m":
		return m, navigate(PageMoves, "")

	case "enter":
		if i := m.SelectedIndex(); i >= 0 && i < len(m.visible) {
			return m, navigate(PageDetail, m.visible[i].ID)
		}
	}

	return m, nil
}

func (m *PokemonListModel) clearFilters() {
	m.criteria.Clear()
	m.Search.SetValue("")
	m.applyFilters()
	m.SetStatus("Filters cleared", statusTTL)
}

// applyFilters recomputes the visible list from the source and the criteria
func (m *PokemonListModel) applyFilters() {
	m.visible = filter.Pokemon(m.all, m.criteria)
	m.updateTable()
}

func (m *PokemonListModel) updateTable() {
	columns := m.Table.Columns()
	width := func(i int) int {
		if i < len(columns) {
			return columns[i].Width
		}
		return 0
	}

	rows := make([]table.Row, len(m.visible))
	for i, p := range m.visible {
		rows[i] = table.Row{
			truncateToWidth(p.ID.Display(), width(0)),
			truncateToWidth(p.Name, width(1)),
			truncateToWidth(typeList(p.Types), width(2)),
			strconv.Itoa(p.HP),
			strconv.Itoa(p.Attack),
			strconv.Itoa(p.Defense),
			strconv.Itoa(p.Speed),
			strconv.Itoa(p.BaseTotal()),
		}
	}
	m.SetRows(rows)
}

// typeList renders types as plain text for table cells
func typeList(types []string) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, palette.TypeDisplayName(t))
	}
	return strings.Join(names, " / ")
}

// Selected returns the Pokémon under the cursor
func (m PokemonListModel) Selected() (models.Pokemon, bool) {
	if i := m.SelectedIndex(); i >= 0 && i < len(m.visible) {
		return m.visible[i], true
	}
	return models.Pokemon{}, false
}

// View implements tea.Model
func (m PokemonListModel) View() string {
	b := NewPageView(m.Layout).
		Title("Pokédex").
		Divider()

	switch {
	case m.loading:
		return b.Spacing(1).
			Text(fmt.Sprintf("%s Loading Pokémon...", m.spinner.View())).
			Help("q: quit").
			Build()

	case m.err != nil:
		return b.Spacing(1).
			CustomContent(RenderError(api.Message(m.err)) + "\n").
			DimText(m.err.Error()).
			Help("r: retry | m: moves | q: quit").
			Build()
	}

	b.CustomContent(m.Search.View() + "\n").
		Filters("Type", FilterLabel(m.criteria.Type)).
		QueryInfo(countLabel(len(m.visible), len(m.all), "Pokémon"))

	if len(m.visible) == 0 {
		b.Empty("No Pokémon found matching your filters.")
	} else {
		b.Table(m.Table)
		if p, ok := m.Selected(); ok {
			b.Spacing(1).CustomContent(RenderNormal(p.Name) + "  " + TypeBadges(p.Types) + "\n")
		}
	}

	return b.PageStatus(m.PageState).Help(m.helpText()).Build()
}

func (m PokemonListModel) helpText() string {
	if m.Searching {
		return "type to search | enter/esc: done"
	}
	return "↑/↓: navigate | enter: details | /: search | t/T: type | c: clear | m: moves | q: quit"
}
