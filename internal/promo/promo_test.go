package promo

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"bartrender/pkg/database"
	"bartrender/pkg/models"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "promo.db")})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepo(db)
}

func TestRedeemHappyPath(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if err := r.Create(ctx, models.PromoCode{Code: "LAUNCH30", Label: "Launch", DurationDays: 30, MaxUses: 2}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Lowercase input matches the stored uppercase code.
	pc, err := r.Redeem(ctx, "launch30", "device-1")
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if pc.CurrentUses != 1 || len(pc.ClaimedBy) != 1 {
		t.Fatalf("claim not recorded: %+v", pc)
	}
}

func TestRedeemUnknownCode(t *testing.T) {
	r := newTestRepo(t)
	if _, err := r.Redeem(context.Background(), "NOPE", "device-1"); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("err = %v, want ErrInvalidCode", err)
	}
}

func TestRedeemTwiceSameDevice(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if err := r.Create(ctx, models.PromoCode{Code: "SOLO", Label: "Solo", DurationDays: 7, MaxUses: 5}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Redeem(ctx, "SOLO", "device-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Redeem(ctx, "SOLO", "device-1"); !errors.Is(err, ErrAlreadyClaimed) {
		t.Fatalf("err = %v, want ErrAlreadyClaimed", err)
	}
}

func TestRedeemExhaustion(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if err := r.Create(ctx, models.PromoCode{Code: "ONE", Label: "One", DurationDays: 7, MaxUses: 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Redeem(ctx, "ONE", "device-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Redeem(ctx, "ONE", "device-2"); !errors.Is(err, ErrExhausted) {
		t.Fatalf("err = %v, want ErrExhausted", err)
	}
}

func TestRedeemExpired(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	past := time.Now().Add(-time.Hour).UnixMilli()
	if err := r.Create(ctx, models.PromoCode{Code: "OLD", Label: "Old", DurationDays: 7, MaxUses: 5, ExpiresAt: past}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Redeem(ctx, "OLD", "device-1"); !errors.Is(err, ErrExpired) {
		t.Fatalf("err = %v, want ErrExpired", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	ts := TokenService{Secret: []byte("test-secret"), Issuer: "bartrender", Duration: time.Hour}

	token, exp, err := ts.Sign("device-1", "Launch", 30)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if time.Until(exp) < 29*24*time.Hour {
		t.Fatalf("exp too soon: %v", exp)
	}

	claims, err := ts.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.DeviceID != "device-1" || claims.Label != "Launch" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	ts := TokenService{Secret: []byte("right"), Issuer: "bartrender", Duration: time.Hour}
	other := TokenService{Secret: []byte("wrong"), Issuer: "bartrender", Duration: time.Hour}

	token, _, err := ts.Sign("device-1", "Launch", 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := other.Parse(token); err == nil {
		t.Fatal("wrong secret must not verify")
	}
}
