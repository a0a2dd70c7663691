package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/oklog/ulid/v2"
	"github.com/thesavant42/pokedex-ng/internal/models"
)

func scanMove(row rowScanner) (models.Move, error) {
	var m models.Move
	err := row.Scan(&m.Key, &m.Name, &m.Type, &m.Category, &m.Power, &m.Accuracy, &m.PP, &m.Effect)
	return m, err
}

// ListMoves returns the whole move database in import order
func (db *DB) ListMoves(ctx context.Context) ([]models.Move, error) {
	rows, err := db.conn.QueryContext(ctx, selectAllMoves)
	if err != nil {
		return nil, fmt.Errorf("failed to query moves: %w", err)
	}
	defer rows.Close()

	moves := []models.Move{}
	for rows.Next() {
		m, err := scanMove(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// MovesFor returns the stored records of the moves p declares, in declared order.
// Declared names with no stored record are skipped and logged.
func (db *DB) MovesFor(ctx context.Context, p *models.Pokemon, logger *log.Logger) ([]models.Move, error) {
	moves := []models.Move{}
	seen := make(map[string]bool)

	for _, name := range p.Moves {
		if seen[name] {
			continue
		}
		seen[name] = true

		m, err := scanMove(db.conn.QueryRowContext(ctx, selectMoveByName, name))
		if errors.Is(err, sql.ErrNoRows) {
			if logger != nil {
				logger.Debug("Move not found in database", "move", name, "pokemon", p.Name)
			}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up move %q: %w", name, err)
		}
		moves = append(moves, m)
	}

	if logger != nil {
		logger.Debug("Resolved moves", "pokemon", p.Name, "found", len(moves), "declared", len(p.Moves))
	}
	return moves, nil
}

// ImportMoves inserts or updates move records keyed by name
func (db *DB) ImportMoves(ctx context.Context, moves []models.Move) (int, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var position int
	if err := tx.QueryRowContext(ctx, selectMaxMovePosition).Scan(&position); err != nil {
		return 0, fmt.Errorf("failed to read position: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, upsertMove)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, m := range moves {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			return 0, fmt.Errorf("move #%d: name is required", i+1)
		}

		position++

		_, err := stmt.ExecContext(ctx, ulid.Make().String(), name, m.Type, m.Category, m.Power, m.Accuracy, m.PP, m.Effect, position)
		if err != nil {
			return 0, fmt.Errorf("failed to import move %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return len(moves), nil
}
