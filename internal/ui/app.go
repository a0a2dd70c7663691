package ui

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/thesavant42/pokedex-ng/internal/models"
)

// AppModel routes between the list, move browser and detail pages.
// The list page is the root and is always loaded; the move browser is
// loaded on first visit and then kept; a detail page is rebuilt per id.
type AppModel struct {
	ctx    context.Context
	client Fetcher
	logger *log.Logger

	active       PageKind
	list         PokemonListModel
	moves        MoveBrowserModel
	movesStarted bool
	detail       PokemonDetailModel
	hasDetail    bool

	width  int
	height int
}

// NewAppModel creates the root model starting on page. id is used when page is PageDetail.
func NewAppModel(ctx context.Context, client Fetcher, logger *log.Logger, page PageKind, id models.DexID) AppModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := AppModel{
		ctx:    ctx,
		client: client,
		logger: logger,
		active: PageList,
		list:   NewPokemonListModel(ctx, client, logger),
		moves:  NewMoveBrowserModel(ctx, client, logger),
	}

	switch {
	case page == PageMoves:
		m.active = PageMoves
		m.movesStarted = true
	case page == PageDetail && id != "":
		m.active = PageDetail
		m.detail = NewPokemonDetailModel(ctx, client, logger, id)
		m.hasDetail = true
	}
	return m
}

// Active returns the page currently shown
func (m AppModel) Active() PageKind {
	return m.active
}

// Init implements tea.Model
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.WindowSize(), m.list.Init()}
	if m.movesStarted {
		cmds = append(cmds, m.moves.Init())
	}
	if m.hasDetail {
		cmds = append(cmds, m.detail.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		var cmds []tea.Cmd
		cmds = append(cmds, m.updateList(msg), m.updateMoves(msg))
		if m.hasDetail {
			cmds = append(cmds, m.updateDetail(msg))
		}
		return m, tea.Batch(cmds...)

	case navigateMsg:
		return m.navigate(msg)

	case spinner.TickMsg:
		// Spinners ignore ticks carrying another spinner's id
		cmds := []tea.Cmd{m.updateList(msg)}
		if m.movesStarted {
			cmds = append(cmds, m.updateMoves(msg))
		}
		if m.hasDetail {
			cmds = append(cmds, m.updateDetail(msg))
		}
		return m, tea.Batch(cmds...)

	case pokemonListLoadedMsg:
		cmd := m.updateList(msg)
		return m, cmd

	case moveListLoadedMsg:
		cmd := m.updateMoves(msg)
		return m, cmd

	case pokemonLoadedMsg, pokemonMovesLoadedMsg:
		if !m.hasDetail {
			return m, nil
		}
		cmd := m.updateDetail(msg)
		return m, cmd
	}

	switch m.active {
	case PageMoves:
		cmd := m.updateMoves(msg)
		return m, cmd
	case PageDetail:
		cmd := m.updateDetail(msg)
		return m, cmd
	default:
		cmd := m.updateList(msg)
		return m, cmd
	}
}

func (m AppModel) navigate(msg navigateMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("navigate", "page", msg.page, "id", msg.id)

	switch msg.page {
	case PageMoves:
		m.active = PageMoves
		if !m.movesStarted {
			m.movesStarted = true
			resize := m.resize(PageMoves)
			return m, tea.Batch(resize, m.moves.Init())
		}
		return m, nil

	case PageDetail:
		if msg.id == "" {
			return m, nil
		}
		m.active = PageDetail
		m.detail = NewPokemonDetailModel(m.ctx, m.client, m.logger, msg.id)
		m.hasDetail = true
		resize := m.resize(PageDetail)
		return m, tea.Batch(resize, m.detail.Init())

	default:
		m.active = PageList
		return m, nil
	}
}

// resize replays the last window size to a freshly created page
func (m *AppModel) resize(page PageKind) tea.Cmd {
	if m.width == 0 || m.height == 0 {
		return nil
	}
	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	switch page {
	case PageMoves:
		return m.updateMoves(size)
	case PageDetail:
		return m.updateDetail(size)
	}
	return nil
}

func (m *AppModel) updateList(msg tea.Msg) tea.Cmd {
	updated, cmd := m.list.Update(msg)
	m.list = updated.(PokemonListModel)
	return cmd
}

func (m *AppModel) updateMoves(msg tea.Msg) tea.Cmd {
	updated, cmd := m.moves.Update(msg)
	m.moves = updated.(MoveBrowserModel)
	return cmd
}

func (m *AppModel) updateDetail(msg tea.Msg) tea.Cmd {
	updated, cmd := m.detail.Update(msg)
	m.detail = updated.(PokemonDetailModel)
	return cmd
}

// View implements tea.Model
func (m AppModel) View() string {
	switch m.active {
	case PageMoves:
		return m.moves.View()
	case PageDetail:
		return m.detail.View()
	default:
		return m.list.View()
	}
}
