package ui

// spinner.go provides a blocking spinner for long-running operations
// outside the main program, such as the backend seed import.

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// actionDoneMsg signals the action completed
type actionDoneMsg struct {
	err error
}

// blockingSpinnerModel runs a spinner while an action executes
type blockingSpinnerModel struct {
	spinner spinner.Model
	title   string
	action  func() error
	done    bool
	err     error
}

// RunWithSpinner executes an action while displaying a spinner and returns its error.
//
// Example:
//
//	var n int
//	err := RunWithSpinner("Importing moves...", func() error {
//	    var err error
//	    n, err = store.ImportMoves(ctx, moves)
//	    return err
//	})
func RunWithSpinner(title string, action func() error) error {
	m := blockingSpinnerModel{
		spinner: NewAppSpinner(),
		title:   title,
		action:  action,
	}

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("spinner program error: %w", err)
	}

	final := finalModel.(blockingSpinnerModel)
	if !final.done {
		return fmt.Errorf("%s: cancelled", title)
	}
	return final.err
}

func (m blockingSpinnerModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.runAction(),
	)
}

func (m blockingSpinnerModel) runAction() tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.action()}
	}
}

func (m blockingSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// Allow ctrl+c to cancel
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m blockingSpinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), RenderNormal(m.title))
}
