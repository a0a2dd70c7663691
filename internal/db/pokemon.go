package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/thesavant42/pokedex-ng/internal/models"
	"github.com/thesavant42/pokedex-ng/internal/palette"
)

// leadingNumber matches the base dex number of form ids like "3-mega-venusaur"
var leadingNumber = regexp.MustCompile(`^(\d+)-`)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPokemon(row rowScanner) (models.Pokemon, error) {
	var (
		p            models.Pokemon
		dexID        string
		types, moves string
	)
	err := row.Scan(
		&p.Key, &dexID, &p.Name, &p.Avatar, &types,
		&p.HP, &p.Attack, &p.Defense, &p.SpecialAttack, &p.SpecialDefense, &p.Speed,
		&p.Total, &moves,
	)
	if err != nil {
		return p, err
	}

	p.ID = models.DexID(dexID)
	if err := json.Unmarshal([]byte(types), &p.Types); err != nil {
		return p, fmt.Errorf("failed to decode types of %s: %w", dexID, err)
	}
	if err := json.Unmarshal([]byte(moves), &p.Moves); err != nil {
		return p, fmt.Errorf("failed to decode moves of %s: %w", dexID, err)
	}
	return p, nil
}

// ListPokemon returns every Pokémon in import order
func (db *DB) ListPokemon(ctx context.Context) ([]models.Pokemon, error) {
	rows, err := db.conn.QueryContext(ctx, selectAllPokemon)
	if err != nil {
		return nil, fmt.Errorf("failed to query pokemon: %w", err)
	}
	defer rows.Close()

	list := []models.Pokemon{}
	for rows.Next() {
		p, err := scanPokemon(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pokemon: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetPokemon resolves id to a single Pokémon. It tries, in order:
// the record key, the exact dex id, the numeric dex id, and finally the
// name (case-insensitive, with "-" read as a space).
func (db *DB) GetPokemon(ctx context.Context, id string) (*models.Pokemon, error) {
	return db.lookup(ctx, id, false)
}

// FindPokemonForMoves resolves id like GetPokemon, but also accepts a form id
// such as "3-mega-venusaur" when only its base entry (#3) is stored.
func (db *DB) FindPokemonForMoves(ctx context.Context, id string) (*models.Pokemon, error) {
	return db.lookup(ctx, id, true)
}

type lookupStep struct {
	query string
	args  []any
}

func (db *DB) lookup(ctx context.Context, id string, baseForm bool) (*models.Pokemon, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}

	steps := []lookupStep{
		{selectPokemonByKey, []any{id}},
		{selectPokemonByDexID, []any{id}},
	}
	if baseForm {
		if m := leadingNumber.FindStringSubmatch(id); m != nil {
			if n, ok := models.DexID(m[1]).Number(); ok {
				steps = append(steps, lookupStep{selectPokemonByDexNum, []any{n}})
			}
		}
	}
	if n, ok := models.DexID(id).Number(); ok {
		steps = append(steps, lookupStep{selectPokemonByDexNum, []any{n}})
	}
	steps = append(steps, lookupStep{selectPokemonByNameKey, []any{
		palette.Fold(id),
		palette.Fold(strings.ReplaceAll(id, "-", " ")),
	}})

	for _, step := range steps {
		p, err := scanPokemon(db.conn.QueryRowContext(ctx, step.query, step.args...))
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up pokemon %q: %w", id, err)
		}
		return &p, nil
	}
	return nil, ErrNotFound
}

// ImportPokemon inserts or updates records keyed by dex id.
// New records get a fresh ulid key; existing records keep theirs and their position.
// Keys present in the input are ignored.
func (db *DB) ImportPokemon(ctx context.Context, list []models.Pokemon) (int, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var position int
	if err := tx.QueryRowContext(ctx, selectMaxPokemonPosition).Scan(&position); err != nil {
		return 0, fmt.Errorf("failed to read position: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, upsertPokemon)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, p := range list {
		if p.ID == "" || strings.TrimSpace(p.Name) == "" {
			return 0, fmt.Errorf("pokemon #%d: id and name are required", i+1)
		}

		types, err := json.Marshal(nonNil(p.Types))
		if err != nil {
			return 0, fmt.Errorf("failed to encode types of %s: %w", p.ID, err)
		}
		moves, err := json.Marshal(nonNil(p.Moves))
		if err != nil {
			return 0, fmt.Errorf("failed to encode moves of %s: %w", p.ID, err)
		}

		var dexNum sql.NullInt64
		if n, ok := p.ID.Number(); ok {
			dexNum = sql.NullInt64{Int64: int64(n), Valid: true}
		}

		position++

		_, err = stmt.ExecContext(ctx,
			ulid.Make().String(), p.ID.String(), dexNum, p.Name, palette.Fold(p.Name), p.Avatar, string(types),
			p.HP, p.Attack, p.Defense, p.SpecialAttack, p.SpecialDefense, p.Speed,
			p.BaseTotal(), string(moves), position,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to import pokemon %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return len(list), nil
}

// Counts returns the number of stored Pokémon and moves
func (db *DB) Counts(ctx context.Context) (pokemon, moves int, err error) {
	if err = db.conn.QueryRowContext(ctx, countPokemon).Scan(&pokemon); err != nil {
		return 0, 0, fmt.Errorf("failed to count pokemon: %w", err)
	}
	if err = db.conn.QueryRowContext(ctx, countMoves).Scan(&moves); err != nil {
		return 0, 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return pokemon, moves, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
