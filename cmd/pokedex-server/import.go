package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thesavant42/pokedex-ng/internal/db"
	"github.com/thesavant42/pokedex-ng/internal/ui"
)

var (
	importPokemonFile string
	importMovesFile   string
	importQuiet       bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load Pokémon and move records from JSON seed files",
	Long: "Load Pokémon and move records from JSON arrays.\n" +
		"Records are upserted: Pokémon by dex id, moves by name.",
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importPokemonFile, "pokemon", "", "JSON file with an array of Pokémon records")
	importCmd.Flags().StringVar(&importMovesFile, "moves", "", "JSON file with an array of move records")
	importCmd.Flags().BoolVar(&importQuiet, "quiet", false, "no spinner or summary, log only")
}

func runImport(cmd *cobra.Command, args []string) error {
	if importPokemonFile == "" && importMovesFile == "" {
		return errors.New("nothing to import: pass --pokemon and/or --moves")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := db.New(cfg.Server.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	var pokemonCount, moveCount int

	importAll := func() error {
		if importMovesFile != "" {
			moves, err := db.ReadMovesFile(importMovesFile)
			if err != nil {
				return err
			}
			if moveCount, err = store.ImportMoves(ctx, moves); err != nil {
				return err
			}
		}
		if importPokemonFile != "" {
			pokemon, err := db.ReadPokemonFile(importPokemonFile)
			if err != nil {
				return err
			}
			if pokemonCount, err = store.ImportPokemon(ctx, pokemon); err != nil {
				return err
			}
		}
		return nil
	}

	if importQuiet {
		err = importAll()
	} else {
		err = ui.RunWithSpinner(fmt.Sprintf("Importing into %s...", cfg.Server.DBPath), importAll)
	}
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	logger.Info("import complete", "db", cfg.Server.DBPath, "pokemon", pokemonCount, "moves", moveCount)
	if !importQuiet {
		ui.PrintImportSummary(pokemonCount, moveCount, cfg.Server.DBPath)
	}
	return nil
}
