package favorites

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"bartrender/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Toggle flips the favorite state for one device and cocktail inside a
// transaction, storing the card summary as it looked at toggle time.
// Returns the new state: true when the row now exists.
func (r *Repo) Toggle(ctx context.Context, deviceID, key string, summary models.CocktailSummary) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin toggle: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `
		SELECT 1 FROM favorites WHERE device_id = ? AND cocktail_key = ?
	`, deviceID, key).Scan(&exists)

	liked := false
	switch err {
	case nil:
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM favorites WHERE device_id = ? AND cocktail_key = ?
		`, deviceID, key); err != nil {
			return false, fmt.Errorf("remove favorite: %w", err)
		}
	case sql.ErrNoRows:
		summaryJSON, merr := json.Marshal(summary)
		if merr != nil {
			return false, fmt.Errorf("encode summary: %w", merr)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO favorites (device_id, cocktail_key, summary) VALUES (?, ?, ?)
		`, deviceID, key, string(summaryJSON)); err != nil {
			return false, fmt.Errorf("add favorite: %w", err)
		}
		liked = true
	default:
		return false, fmt.Errorf("check favorite: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit toggle: %w", err)
	}
	return liked, nil
}

// List returns the device's favorites, newest first.
func (r *Repo) List(ctx context.Context, deviceID string) ([]models.CocktailSummary, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT summary FROM favorites
		WHERE device_id = ?
		ORDER BY created_at DESC, cocktail_key ASC
	`, deviceID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var out []models.CocktailSummary
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("favorite scan: %w", err)
		}
		var s models.CocktailSummary
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
