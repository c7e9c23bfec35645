// Package promo redeems subscription codes and issues entitlement
// tokens for successful claims.
package promo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"bartrender/pkg/models"
)

var (
	ErrInvalidCode    = errors.New("promo: invalid code")
	ErrExhausted      = errors.New("promo: code exhausted")
	ErrExpired        = errors.New("promo: code expired")
	ErrAlreadyClaimed = errors.New("promo: already claimed by this device")
)

type Repo struct {
	DB *sql.DB

	// test seam
	now func() time.Time
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db, now: time.Now}
}

// Redeem claims a code for a device. Codes are case-insensitive. The
// whole check-and-claim runs in one transaction so concurrent redeems
// of the last use cannot both succeed.
func (r *Repo) Redeem(ctx context.Context, code, deviceID string) (*models.PromoCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrInvalidCode
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin redeem: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
		SELECT code, label, duration_days, max_uses, current_uses, expires_at, claimed_by
		FROM promo_codes
		WHERE code = ?
	`, code)

	var (
		pc         models.PromoCode
		expiresAt  sql.NullInt64
		claimedRaw string
	)
	if err := row.Scan(&pc.Code, &pc.Label, &pc.DurationDays, &pc.MaxUses, &pc.CurrentUses, &expiresAt, &claimedRaw); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("scan promo %s: %w", code, err)
	}
	pc.ExpiresAt = expiresAt.Int64
	_ = json.Unmarshal([]byte(claimedRaw), &pc.ClaimedBy)

	if pc.ExpiresAt > 0 && pc.ExpiresAt < r.now().UnixMilli() {
		return nil, ErrExpired
	}
	if pc.CurrentUses >= pc.MaxUses {
		return nil, ErrExhausted
	}
	for _, d := range pc.ClaimedBy {
		if d == deviceID {
			return nil, ErrAlreadyClaimed
		}
	}

	pc.CurrentUses++
	pc.ClaimedBy = append(pc.ClaimedBy, deviceID)
	claimedJSON, _ := json.Marshal(pc.ClaimedBy)

	if _, err := tx.ExecContext(ctx, `
		UPDATE promo_codes SET current_uses = ?, claimed_by = ? WHERE code = ?
	`, pc.CurrentUses, string(claimedJSON), code); err != nil {
		return nil, fmt.Errorf("claim promo %s: %w", code, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit redeem: %w", err)
	}
	return &pc, nil
}

// Create inserts a code. Admin tooling only.
func (r *Repo) Create(ctx context.Context, pc models.PromoCode) error {
	claimedJSON, _ := json.Marshal(pc.ClaimedBy)
	if claimedJSON == nil || string(claimedJSON) == "null" {
		claimedJSON = []byte("[]")
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO promo_codes (code, label, duration_days, max_uses, current_uses, expires_at, claimed_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, strings.ToUpper(pc.Code), pc.Label, pc.DurationDays, pc.MaxUses, pc.CurrentUses, nullableMillis(pc.ExpiresAt), string(claimedJSON))
	if err != nil {
		return fmt.Errorf("create promo %s: %w", pc.Code, err)
	}
	return nil
}

func nullableMillis(ms int64) any {
	if ms == 0 {
		return nil
	}
	return ms
}
