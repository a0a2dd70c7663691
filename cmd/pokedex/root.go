package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/thesavant42/pokedex-ng/internal/api"
	"github.com/thesavant42/pokedex-ng/internal/config"
	"github.com/thesavant42/pokedex-ng/internal/models"
	"github.com/thesavant42/pokedex-ng/internal/ui"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

// errCheckFailed is returned after the check report already printed the failure
var errCheckFailed = errors.New("backend check failed")

var (
	apiURL    string
	startPage string
	startID   string
	checkOnly bool
)

var rootCmd = &cobra.Command{
	Use:           "pokedex",
	Short:         "Terminal Pokédex viewer",
	Long:          "Browse Pokémon and moves served by a Pokédex backend.",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&apiURL, "api", "", "backend base URL (default from config, "+config.DefaultAPIURL+")")
	rootCmd.Flags().StringVar(&startPage, "page", "", "page to open: list, moves or detail (shows a menu when empty)")
	rootCmd.Flags().StringVar(&startID, "id", "", "Pokémon number, form id or name for the detail page")
	rootCmd.Flags().BoolVar(&checkOnly, "check", false, "check the backend is reachable and exit")
}

func run(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api") {
		cfg.API.URL = strings.TrimSpace(apiURL)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	// Bubble Tea owns the terminal, so everything is logged to a file
	logger, err := api.NewFileLogger(cfg.Log.File, "pokedex")
	if err != nil {
		return err
	}
	logger.SetLevel(cfg.LogLevel())
	logger.Info("starting", "version", Version, "api", cfg.API.URL)

	client := api.NewClient(cfg.API.URL, cfg.API.Timeout.Std(), logger)

	if checkOnly {
		return runCheck(ctx, client, logger)
	}

	page, id, err := resolveStartPage()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	logger.Debug("opening page", "page", page, "id", id)

	p := tea.NewProgram(
		ui.NewAppModel(ctx, client, logger, page, id),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("interactive mode failed: %w", err)
	}
	return nil
}

// resolveStartPage picks the first page from the flags, or asks with the start menu
func resolveStartPage() (ui.PageKind, models.DexID, error) {
	id := models.DexID(strings.TrimPrefix(strings.TrimSpace(startID), "#"))

	if startPage == "" {
		if id != "" {
			return ui.PageDetail, id, nil
		}
		choice, err := ui.RunStartMenu()
		if err != nil {
			return ui.PageList, "", err
		}
		return choice.Page, choice.ID, nil
	}

	page, ok := ui.ParsePageKind(strings.ToLower(startPage))
	if !ok {
		return ui.PageList, "", fmt.Errorf("unknown page %q: use list, moves or detail", startPage)
	}
	if page == ui.PageDetail && id == "" {
		return ui.PageList, "", errors.New("--page detail requires --id")
	}
	return page, id, nil
}

// runCheck fetches both collections behind a spinner and prints a report
func runCheck(ctx context.Context, client *api.Client, logger *log.Logger) error {
	report := ui.CheckReport{BaseURL: client.BaseURL()}

	err := spinner.New().
		Title("Contacting " + client.BaseURL() + "...").
		Context(ctx).
		Action(func() {
			pokemon, err := client.FetchPokemonList(ctx)
			if err != nil {
				report.Err = fmt.Errorf("%s (%w)", api.Message(err), err)
				return
			}
			moves, err := client.FetchMoves(ctx)
			if err != nil {
				report.Err = fmt.Errorf("%s (%w)", api.Message(err), err)
				return
			}
			report.Pokemon, report.Moves = len(pokemon), len(moves)
		}).
		Run()
	if err != nil {
		return err
	}

	logger.Info("backend check", "pokemon", report.Pokemon, "moves", report.Moves)
	ui.PrintCheckReport(report)
	if report.Err != nil {
		logger.Error("backend check failed", "api", report.BaseURL, "err", report.Err)
		return errCheckFailed
	}
	return nil
}
