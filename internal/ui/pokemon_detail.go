package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/thesavant42/pokedex-ng/internal/api"
	"github.com/thesavant42/pokedex-ng/internal/detail"
	"github.com/thesavant42/pokedex-ng/internal/geometry"
	"github.com/thesavant42/pokedex-ng/internal/models"
)

const (
	statLabelWidth = 9
	statValueWidth = 5
	hexagonRows    = 13
	hexagonCols    = 27
)

// PokemonDetailModel shows one Pokémon: base record first, then its moves
type PokemonDetailModel struct {
	PageState
	ctx     context.Context
	client  Fetcher
	logger  *log.Logger
	spinner spinner.Model
	bar     progress.Model

	page   detail.Page
	scroll int // first visible line of the moves tab
}

// NewPokemonDetailModel creates a detail page for id. The record is fetched by Init.
func NewPokemonDetailModel(ctx context.Context, client Fetcher, logger *log.Logger, id models.DexID) PokemonDetailModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	layout := DefaultLayout()
	return PokemonDetailModel{
		PageState: NewPageState(layout),
		ctx:       ctx,
		client:    client,
		logger:    logger,
		spinner:   NewAppSpinner(),
		bar:       newStatBar(layout),
		page:      *detail.NewPage(id),
	}
}

func newStatBar(layout Layout) progress.Model {
	return progress.New(
		progress.WithSolidFill(string(ColorStatBar)),
		progress.WithoutPercentage(),
		progress.WithWidth(statBarWidth(layout)),
	)
}

func statBarWidth(layout Layout) int {
	w := layout.InnerWidth - hexagonCols - statLabelWidth - statValueWidth - 8
	if w < 10 {
		w = 10
	}
	return w
}

// ID returns the id this page was opened for
func (m PokemonDetailModel) ID() models.DexID {
	return m.page.ID
}

// Page returns the current derived page state
func (m PokemonDetailModel) Page() detail.Page {
	return m.page
}

// Init implements tea.Model
func (m PokemonDetailModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchPokemonCmd(m.ctx, m.client, m.page.ID))
}

// Update implements tea.Model
func (m PokemonDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.UpdateLayout(msg.Width, msg.Height) {
			m.bar.Width = statBarWidth(m.Layout)
		}
		return m, nil

	case spinner.TickMsg:
		if m.page.Phase != detail.PhaseLoading && m.page.MovesPhase != detail.MovesLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pokemonLoadedMsg:
		if msg.id != m.page.ID {
			m.logger.Debug("dropping stale Pokémon result", "id", msg.id, "current", m.page.ID)
			return m, nil
		}
		return m.handlePokemonLoaded(msg)

	case pokemonMovesLoadedMsg:
		if msg.id != m.page.ID {
			m.logger.Debug("dropping stale moves result", "id", msg.id, "current", m.page.ID)
			return m, nil
		}
		return m.handleMovesLoaded(msg)

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m PokemonDetailModel) handlePokemonLoaded(msg pokemonLoadedMsg) (tea.Model, tea.Cmd) {
	var err error
	switch {
	case api.IsNotFound(msg.err):
		err = m.page.NotFound()
	case msg.err != nil:
		m.logger.Error("failed to load Pokémon", "id", msg.id, "err", msg.err)
		err = m.page.Fail(msg.err)
	case msg.pokemon == nil:
		err = m.page.NotFound()
	default:
		err = m.page.Resolve(*msg.pokemon)
	}
	if err != nil {
		m.logger.Debug("ignoring Pokémon result", "id", msg.id, "err", err)
		return m, nil
	}

	if m.page.ShouldFetchMoves() {
		if err := m.page.BeginMoves(); err != nil {
			m.logger.Debug("cannot start move fetch", "id", msg.id, "err", err)
			return m, nil
		}
		return m, tea.Batch(m.spinner.Tick, fetchPokemonMovesCmd(m.ctx, m.client, m.page.ID))
	}
	return m, nil
}

func (m PokemonDetailModel) handleMovesLoaded(msg pokemonMovesLoadedMsg) (tea.Model, tea.Cmd) {
	var err error
	if msg.err != nil {
		m.logger.Warn("failed to load moves", "id", msg.id, "err", msg.err)
		err = m.page.FailMoves(msg.err)
		if err == nil {
			m.SetWarning("Move details unavailable: " + api.Message(msg.err))
		}
	} else {
		err = m.page.ResolveMoves(msg.moves)
	}
	if err != nil {
		m.logger.Debug("ignoring moves result", "id", msg.id, "err", err)
		return m, nil
	}

	if m.page.Moves.Total() > 0 {
		m.logger.Debug("aggregated moves", "id", msg.id,
			"validated", len(m.page.Moves.Validated), "unresolved", len(m.page.Moves.Unresolved))
	}
	return m, nil
}

func (m PokemonDetailModel) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if quit, cmd := HandleQuitKeys(key); quit {
		return m, cmd
	}

	switch key {
	case "esc", "backspace", "b":
		return m, navigate(PageList, "")

	case "r":
		if m.page.Terminal() {
			m.page = *detail.NewPage(m.page.ID)
			m.scroll = 0
			return m, m.Init()
		}

	case "tab", "right", "left", "l", "h":
		m.selectTab(m.page.Tab.Next())

	case "1":
		m.selectTab(detail.TabStats)

	case "2":
		m.selectTab(detail.TabMoves)

	case "up", "k":
		if m.scroll > 0 {
			m.scroll--
		}

	case "down", "j":
		if m.page.Tab == detail.TabMoves && m.scroll < m.maxScroll() {
			m.scroll++
		}

	case "m":
		return m, navigate(PageMoves, "")
	}

	return m, nil
}

func (m *PokemonDetailModel) selectTab(tab detail.Tab) {
	if err := m.page.SelectTab(tab); err != nil {
		return
	}
	m.scroll = 0
}

func (m PokemonDetailModel) maxScroll() int {
	n := len(m.movesLines()) - m.Layout.TableHeight
	if n < 0 {
		return 0
	}
	return n
}

// View implements tea.Model
func (m PokemonDetailModel) View() string {
	b := NewPageView(m.Layout)

	switch m.page.Phase {
	case detail.PhaseLoading:
		return b.Title("Pokédex " + m.page.ID.Display()).
			Divider().
			Spacing(1).
			Text(fmt.Sprintf("%s Loading Pokémon data...", m.spinner.View())).
			Help("esc: back to list | q: quit").
			Build()

	case detail.PhaseNotFound:
		return b.Title("Pokémon not found").
			Divider().
			Spacing(1).
			CustomContent(RenderError(fmt.Sprintf("No Pokémon matches %s.", m.page.ID.Display())) + "\n").
			Spacing(1).
			DimText("esc: back to list").
			Help("esc: back to list | r: retry | q: quit").
			Build()

	case detail.PhaseError:
		b.Title("Error").
			Divider().
			Spacing(1).
			CustomContent(RenderError(api.Message(m.page.Err)) + "\n")
		if m.page.Err != nil {
			b.DimText(m.page.Err.Error())
		}
		return b.Spacing(1).
			DimText("esc: back to list").
			Help("esc: back to list | r: retry | q: quit").
			Build()
	}

	p := m.page.Pokemon
	b.CustomContent(RenderTitle(p.ID.Display()+"  "+p.Name) + "  " + TypeBadges(p.Types) + "\n")
	if p.Avatar != "" {
		b.DimText(p.Avatar)
	}
	b.Divider().
		Tabs([]string{"Stats", fmt.Sprintf("Moves (%d)", len(p.Moves))}, int(m.page.Tab)).
		Spacing(1)

	if m.page.Tab == detail.TabStats {
		b.CustomContent(m.renderStats())
	} else {
		b.CustomContent(m.renderMoves())
	}

	return b.PageStatus(m.PageState).
		Help("tab: switch tab | ↑/↓: scroll | m: moves | esc: back to list | q: quit").
		Build()
}

func (m PokemonDetailModel) renderStats() string {
	p := m.page.Pokemon

	lines := make([]string, 0, len(models.StatOrder)+2)
	for _, name := range models.StatOrder {
		v := p.Stats.Value(name)
		label := lipgloss.NewStyle().Width(statLabelWidth).Render(RenderDim(models.StatLabels[name]))
		value := lipgloss.NewStyle().Width(statValueWidth).Align(lipgloss.Right).Render(RenderNormal(fmt.Sprintf("%d", v)))
		lines = append(lines, label+value+"  "+m.bar.ViewAs(statPercent(v)))
	}
	lines = append(lines, "")
	total := lipgloss.NewStyle().Width(statLabelWidth).Render(RenderAccent("Total"))
	lines = append(lines, total+lipgloss.NewStyle().Width(statValueWidth).Align(lipgloss.Right).Render(RenderAccent(fmt.Sprintf("%d", p.BaseTotal()))))
	bars := strings.Join(lines, "\n")

	points := geometry.HexagonPoints(p.Stats, geometry.DefaultMaxStat)
	grid := geometry.Rasterize(points, hexagonCols, hexagonRows)
	hexLines := make([]string, 0, len(grid)+1)
	for _, row := range grid {
		hexLines = append(hexLines, AccentStyle.Render(row))
	}
	hexLines = append(hexLines, CenterText(RenderDim("HP top, clockwise"), hexagonCols))
	hex := strings.Join(hexLines, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top, bars, "    ", hex) + "\n"
}

// statPercent scales a base stat to the bar, clamped to [0, 1]
func statPercent(v int) float64 {
	pct := float64(v) / float64(geometry.DefaultMaxStat)
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

func (m PokemonDetailModel) renderMoves() string {
	lines := m.movesLines()
	start := m.scroll
	if start > len(lines) {
		start = len(lines)
	}
	end := start + m.Layout.TableHeight
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n") + "\n"
}

// movesLines renders the full moves tab, one entry per terminal line
func (m PokemonDetailModel) movesLines() []string {
	p := m.page.Pokemon
	if m.page.MovesPhase != detail.MovesReady {
		return []string{fmt.Sprintf("%s Loading moves...", m.spinner.View())}
	}

	var out []string
	if m.page.MovesErr != nil {
		out = append(out,
			ErrorStyle.Render("Could not load move details: "+api.Message(m.page.MovesErr)),
			"")
	}

	moves := m.page.Moves
	switch {
	case len(moves.Validated) > 0:
		out = append(out, RenderNormal(fmt.Sprintf("This Pokémon knows %d moves from our database:", len(moves.Validated))), "")
		cardWidth := m.Layout.InnerWidth - 4
		for _, mv := range moves.Validated {
			card := CardStyle.Width(cardWidth).Render(strings.TrimRight(RenderMoveSummary(mv, cardWidth-2), "\n"))
			out = append(out, strings.Split(card, "\n")...)
		}
	case len(p.Moves) > 0:
		out = append(out, RenderNormal(fmt.Sprintf(
			"This Pokémon has %d moves in its list, but none of them are available in our database.", len(p.Moves))))
	default:
		out = append(out, RenderNormal("This Pokémon doesn't know any moves."))
	}

	if len(moves.Unresolved) > 0 {
		out = append(out, "", RenderDim(fmt.Sprintf("Moves without details (%d):", len(moves.Unresolved))))
		for _, l := range WrapText(strings.Join(moves.Unresolved, ", "), m.Layout.InnerWidth-2) {
			out = append(out, RenderDim(l))
		}
	}
	return out
}
