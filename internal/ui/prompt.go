package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/thesavant42/pokedex-ng/internal/models"
)

// sanitizeInput removes null bytes and other invisible control characters from input
func sanitizeInput(s string) string {
	return strings.Map(func(r rune) rune {
		// Keep printable characters and normal whitespace (space, tab, newline)
		if r == 0 || (r < 32 && r != '\t' && r != '\n' && r != '\r') {
			return -1
		}
		return r
	}, s)
}

// StartChoice is the result of the start menu
type StartChoice struct {
	Page PageKind
	ID   models.DexID
}

// RunStartMenu asks which page to open. Choosing the detail page also asks for an id.
func RunStartMenu() (StartChoice, error) {
	var choice StartChoice

	menu := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[PageKind]().
				Title("Pokédex").
				Description("Where do you want to start?").
				Options(
					huh.NewOption("Browse Pokémon", PageList),
					huh.NewOption("Browse moves", PageMoves),
					huh.NewOption("Look up a Pokémon by number or name", PageDetail),
				).
				Value(&choice.Page),
		),
	).WithTheme(NewAppTheme())

	if err := menu.Run(); err != nil {
		return choice, err
	}
	if choice.Page != PageDetail {
		return choice, nil
	}

	id, err := PromptForDexID()
	if err != nil {
		return choice, err
	}
	choice.ID = id
	return choice, nil
}

// PromptForDexID asks for a Pokédex number, form id or name
func PromptForDexID() (models.DexID, error) {
	var input string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pokémon").
				Description("Number, form id or name (e.g. 25, 3-mega-venusaur, bulbasaur)").
				Placeholder("25").
				Value(&input).
				Validate(func(s string) error {
					if strings.TrimSpace(sanitizeInput(s)) == "" {
						return errors.New("enter a number or a name")
					}
					return nil
				}),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return "", err
	}

	id := strings.TrimSpace(sanitizeInput(input))
	return models.DexID(strings.TrimPrefix(id, "#")), nil
}
