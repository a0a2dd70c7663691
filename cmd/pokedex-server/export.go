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
	exportPokemonFile string
	exportMovesFile   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stored records back out as JSON seed files",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportPokemonFile, "pokemon", "", "output file for Pokémon records")
	exportCmd.Flags().StringVar(&exportMovesFile, "moves", "", "output file for move records")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportPokemonFile == "" && exportMovesFile == "" {
		return errors.New("nothing to export: pass --pokemon and/or --moves")
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

	if exportPokemonFile != "" {
		pokemon, err := store.ListPokemon(ctx)
		if err != nil {
			return err
		}
		if err := db.WriteJSONFile(exportPokemonFile, pokemon); err != nil {
			return err
		}
		logger.Info("exported pokemon", "file", exportPokemonFile, "count", len(pokemon))
		ui.PrintSuccess(fmt.Sprintf("Wrote %d Pokémon to %s", len(pokemon), exportPokemonFile))
	}

	if exportMovesFile != "" {
		moves, err := store.ListMoves(ctx)
		if err != nil {
			return err
		}
		if err := db.WriteJSONFile(exportMovesFile, moves); err != nil {
			return err
		}
		logger.Info("exported moves", "file", exportMovesFile, "count", len(moves))
		ui.PrintSuccess(fmt.Sprintf("Wrote %d moves to %s", len(moves), exportMovesFile))
	}
	return nil
}
