package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"bartrender/internal/naming"
	"bartrender/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

var _ DocumentStore = (*Repo)(nil)

// GetCocktail loads a full recipe document. Summary-only rows (seasonal
// feed entries that were never opened) have a NULL doc column and count
// as misses.
func (r *Repo) GetCocktail(ctx context.Context, id string) (*models.CocktailDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	row := r.DB.QueryRowContext(ctx, `
		SELECT doc, likes
		FROM cocktails
		WHERE id = ?
	`, id)

	var (
		doc   sql.NullString
		likes int
	)
	if err := row.Scan(&doc, &likes); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan cocktail %s: %w", id, err)
	}
	if !doc.Valid || doc.String == "" {
		return nil, nil
	}

	var d models.CocktailDetails
	if err := json.Unmarshal([]byte(doc.String), &d); err != nil {
		return nil, fmt.Errorf("decode cocktail %s: %w", id, err)
	}
	d.Likes = likes
	return &d, nil
}

// SaveCocktail upserts a full document. Likes are owned by the counter
// column, so an existing row keeps its count.
func (r *Repo) SaveCocktail(ctx context.Context, id string, d *models.CocktailDetails) error {
	docJSON, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode cocktail %s: %w", id, err)
	}
	tagsJSON, _ := json.Marshal(d.Tags)

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO cocktails (id, name, description, tags, special_label, doc, source, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 'generated', CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			tags = excluded.tags,
			special_label = excluded.special_label,
			doc = excluded.doc,
			updated_at = CURRENT_TIMESTAMP
	`, id, d.Name, d.Description, string(tagsJSON), nullIfEmpty(d.SpecialLabel), string(docJSON))
	if err != nil {
		return fmt.Errorf("save cocktail %s: %w", id, err)
	}
	return nil
}

// BatchSaveSummaries persists a page of feed entries in one transaction.
// Existing rows keep their doc and likes; only the card fields refresh.
// Divider rows are synthetic and never hit the table.
func (r *Repo) BatchSaveSummaries(ctx context.Context, label string, items []models.CocktailSummary) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch save: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cocktails (id, name, description, tags, special_label, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			tags = excluded.tags,
			special_label = excluded.special_label,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("prepare batch save: %w", err)
	}
	defer stmt.Close()

	for _, it := range items {
		if it.IsDivider {
			continue
		}
		id := summaryID(it)
		if id == "" {
			continue
		}
		tagsJSON, _ := json.Marshal(it.Tags)
		if _, err := stmt.ExecContext(ctx, id, it.Name, it.Description, string(tagsJSON), nullIfEmpty(label)); err != nil {
			return fmt.Errorf("batch save %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch save: %w", err)
	}
	return nil
}

// ListByLabel returns at most limit rows for a label; limit <= 0 means
// unbounded. Feed readers pass their quota so an overfull period can
// never serve more than one page's worth.
func (r *Repo) ListByLabel(ctx context.Context, label string, limit int) ([]models.CocktailSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT name, description, tags, special_label, likes
		FROM cocktails
		WHERE special_label = ?
		ORDER BY updated_at ASC, id ASC
		LIMIT ?
	`, label, limit)
	if err != nil {
		return nil, fmt.Errorf("list by label %s: %w", label, err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// SearchGlobal matches on name prefix or exact tag. Tags live in a JSON
// text column, so the tag match is a quoted-substring LIKE the same way
// the genre filter works elsewhere.
func (r *Repo) SearchGlobal(ctx context.Context, term string, limit int) ([]models.CocktailSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT name, description, tags, special_label, likes
		FROM cocktails
		WHERE LOWER(name) LIKE ? OR LOWER(tags) LIKE ?
		ORDER BY name ASC
		LIMIT ?
	`, term+"%", `%"`+term+`"%`, limit)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func (r *Repo) AdjustLikes(ctx context.Context, id string, delta int) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE cocktails SET likes = MAX(0, likes + ?) WHERE id = ?
	`, delta, id)
	if err != nil {
		return fmt.Errorf("adjust likes %s: %w", id, err)
	}
	return nil
}

// CleanupVariantIDs deletes rows whose id carries a doubled variant
// suffix, an artifact of re-deriving a key from an already-suffixed id.
func (r *Repo) CleanupVariantIDs(ctx context.Context) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM cocktails
		WHERE id LIKE '%\_shot\_shot' ESCAPE '\'
		   OR id LIKE '%\_virgin\_virgin' ESCAPE '\'
	`)
	if err != nil {
		return 0, fmt.Errorf("cleanup variant ids: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		log.Printf("[store] removed %d doubled-variant rows", n)
	}
	return n, nil
}

func scanSummaries(rows *sql.Rows) ([]models.CocktailSummary, error) {
	var out []models.CocktailSummary
	for rows.Next() {
		var (
			s        models.CocktailSummary
			desc     sql.NullString
			tagsJSON string
			label    sql.NullString
		)
		if err := rows.Scan(&s.Name, &desc, &tagsJSON, &label, &s.Likes); err != nil {
			return nil, fmt.Errorf("summary scan: %w", err)
		}
		s.Description = desc.String
		s.SpecialLabel = label.String
		_ = json.Unmarshal([]byte(tagsJSON), &s.Tags)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// summaryID derives the row id for a feed entry from its display name.
func summaryID(s models.CocktailSummary) string {
	return naming.Normalize(s.Name)
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
