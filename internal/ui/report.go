package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	reportLabelStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim).
				Width(14)

	reportValueStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// CheckReport summarises a backend connectivity check
type CheckReport struct {
	BaseURL string
	Pokemon int
	Moves   int
	Err     error
}

// PrintCheckReport prints the result of a --check run.
//
// This is a CLI report (non-interactive), so lipgloss is used only for colouring text.
func PrintCheckReport(r CheckReport) {
	fmt.Println()
	fmt.Println(TitleStyle.Render("Pokédex backend check"))
	fmt.Println(reportLabelStyle.Render("Server") + reportValueStyle.Render(r.BaseURL))

	if r.Err != nil {
		PrintError(r.Err.Error())
		return
	}

	fmt.Println(reportLabelStyle.Render("Pokémon") + reportValueStyle.Render(fmt.Sprintf("%d", r.Pokemon)))
	fmt.Println(reportLabelStyle.Render("Moves") + reportValueStyle.Render(fmt.Sprintf("%d", r.Moves)))
	fmt.Println()
	PrintSuccess("Backend is reachable")
}

// PrintImportSummary prints the result of a seed import
func PrintImportSummary(pokemon, moves int, dbPath string) {
	fmt.Println(reportLabelStyle.Render("Database") + reportValueStyle.Render(dbPath))
	fmt.Println(reportLabelStyle.Render("Pokémon") + reportValueStyle.Render(fmt.Sprintf("%d", pokemon)))
	fmt.Println(reportLabelStyle.Render("Moves") + reportValueStyle.Render(fmt.Sprintf("%d", moves)))
	PrintSuccess("Import complete")
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Println(successStyle.Render(message))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Println(ErrorStyle.Render("Error: " + message))
}
