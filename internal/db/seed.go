package db

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thesavant42/pokedex-ng/internal/models"
)

// ReadPokemonFile decodes a JSON array of Pokémon records
func ReadPokemonFile(path string) ([]models.Pokemon, error) {
	var list []models.Pokemon
	if err := readJSONFile(path, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ReadMovesFile decodes a JSON array of move records
func ReadMovesFile(path string) ([]models.Move, error) {
	var moves []models.Move
	if err := readJSONFile(path, &moves); err != nil {
		return nil, err
	}
	return moves, nil
}

func readJSONFile(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// WriteJSONFile writes v as an indented JSON array to path, readable by the Read*File helpers
func WriteJSONFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
