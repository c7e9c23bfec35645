package seasonal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"bartrender/internal/gen"
	"bartrender/internal/naming"
	"bartrender/internal/store"
	"bartrender/pkg/database"
	"bartrender/pkg/models"
)

type fakeText struct {
	mu    sync.Mutex
	calls int
	reply func() []models.CocktailSummary
	err   error
}

func (f *fakeText) GenerateJSON(ctx context.Context, prompt string, out any) error {
	f.mu.Lock()
	f.calls++
	reply, err := f.reply, f.err
	f.mu.Unlock()
	if err != nil {
		return err
	}
	b, _ := json.Marshal(reply())
	return json.Unmarshal(b, out)
}

func (f *fakeText) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type captureHub struct {
	mu     sync.Mutex
	events []any
}

func (h *captureHub) BroadcastJSON(v any) {
	h.mu.Lock()
	h.events = append(h.events, v)
	h.mu.Unlock()
}

func twentyDrinks() []models.CocktailSummary {
	out := make([]models.CocktailSummary, 20)
	for i := range out {
		out[i] = models.CocktailSummary{
			Name:        fmt.Sprintf("Winter Mix %d", i+1),
			Description: "seasonal",
			Tags:        []string{"Winter"},
		}
	}
	return out
}

func newTestFeed(t *testing.T, text *fakeText) (*Feed, *captureHub) {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "feed.db")})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	hub := &captureHub{}
	f := NewFeed(store.NewRepo(db), gen.NewQueue(time.Millisecond, 0), text, hub, 20)
	f.Now = func() time.Time { return time.Date(2026, time.February, 14, 12, 0, 0, 0, time.UTC) }
	return f, hub
}

func TestPageFillsQuotaThenGoesQuiet(t *testing.T) {
	text := &fakeText{reply: twentyDrinks}
	f, hub := newTestFeed(t, text)
	ctx := context.Background()

	first, err := f.Page(ctx, models.Mode{}, 0)
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if len(first) != 20 {
		t.Fatalf("first page has %d items, want 20", len(first))
	}
	for _, c := range first {
		if c.SpecialLabel != "SEASON_FEBRUARY" {
			t.Fatalf("label not enforced on %q: %q", c.Name, c.SpecialLabel)
		}
		if c.IsPremium != naming.IsPremium(c.Name) {
			t.Fatalf("premium not recomputed for %q", c.Name)
		}
	}

	// A full month serves straight from the store.
	second, err := f.Page(ctx, models.Mode{}, 0)
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if len(second) != 20 {
		t.Fatalf("second page has %d items", len(second))
	}
	if n := text.callCount(); n != 1 {
		t.Fatalf("generator called %d times, want 1", n)
	}

	hub.mu.Lock()
	events := len(hub.events)
	hub.mu.Unlock()
	if events != 1 {
		t.Fatalf("expected one season event, got %d", events)
	}
}

func TestPageTopsUpOnlyTheShortfall(t *testing.T) {
	text := &fakeText{reply: twentyDrinks}
	f, _ := newTestFeed(t, text)
	ctx := context.Background()

	seed := []models.CocktailSummary{
		{Name: "Existing Warmer", Tags: []string{"Winter"}},
	}
	if err := f.Store.BatchSaveSummaries(ctx, "SEASON_FEBRUARY", seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	page, err := f.Page(ctx, models.Mode{}, 0)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	// 1 existing + 19 generated: the shortfall is 19, so the 20th
	// generated entry is dropped and the page lands exactly on quota.
	if len(page) != 20 {
		t.Fatalf("page has %d items, want 20", len(page))
	}
	if page[0].Name != "Existing Warmer" {
		t.Fatalf("stored entries must come first, got %q", page[0].Name)
	}
	if page[len(page)-1].Name == "Winter Mix 20" {
		t.Fatal("entry beyond the shortfall was kept")
	}
}

func TestPageLookaheadGetsDivider(t *testing.T) {
	text := &fakeText{reply: twentyDrinks}
	f, _ := newTestFeed(t, text)

	page, err := f.Page(context.Background(), models.Mode{}, 1)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if len(page) == 0 || !page[0].IsDivider {
		t.Fatal("look-ahead page must start with a divider")
	}
	if !strings.Contains(page[0].DividerTitle, "March") {
		t.Fatalf("divider title %q", page[0].DividerTitle)
	}
	if f.PeriodLabel(1) != "SEASON_MARCH" {
		t.Fatalf("label %q", f.PeriodLabel(1))
	}
}

func TestPageGenerationFailureDegradesToExisting(t *testing.T) {
	text := &fakeText{err: gen.ErrUnavailable}
	f, hub := newTestFeed(t, text)
	ctx := context.Background()

	seed := []models.CocktailSummary{{Name: "Sole Survivor", Tags: []string{"Winter"}}}
	if err := f.Store.BatchSaveSummaries(ctx, "SEASON_FEBRUARY", seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	page, err := f.Page(ctx, models.Mode{}, 0)
	if err != nil {
		t.Fatalf("page must not surface generation errors: %v", err)
	}
	if len(page) != 1 || page[0].Name != "Sole Survivor" {
		t.Fatalf("page = %+v", page)
	}

	hub.mu.Lock()
	events := len(hub.events)
	hub.mu.Unlock()
	if events != 0 {
		t.Fatal("no event without new entries")
	}
}

type brokenStore struct{}

func (brokenStore) GetCocktail(ctx context.Context, id string) (*models.CocktailDetails, error) {
	return nil, errors.New("down")
}
func (brokenStore) SaveCocktail(ctx context.Context, id string, d *models.CocktailDetails) error {
	return errors.New("down")
}
func (brokenStore) BatchSaveSummaries(ctx context.Context, label string, items []models.CocktailSummary) error {
	return errors.New("down")
}
func (brokenStore) ListByLabel(ctx context.Context, label string, limit int) ([]models.CocktailSummary, error) {
	return nil, errors.New("down")
}
func (brokenStore) SearchGlobal(ctx context.Context, term string, limit int) ([]models.CocktailSummary, error) {
	return nil, errors.New("down")
}
func (brokenStore) AdjustLikes(ctx context.Context, id string, delta int) error {
	return errors.New("down")
}

func TestPageStoreFailureSkipsGeneration(t *testing.T) {
	text := &fakeText{reply: twentyDrinks}
	f := NewFeed(brokenStore{}, gen.NewQueue(time.Millisecond, 0), text, nil, 20)
	f.Now = func() time.Time { return time.Date(2026, time.February, 14, 12, 0, 0, 0, time.UTC) }

	page, err := f.Page(context.Background(), models.Mode{}, 0)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if len(page) != 0 {
		t.Fatalf("expected empty page, got %d items", len(page))
	}
	if text.callCount() != 0 {
		t.Fatal("store failure must not trigger generation")
	}
}

func TestShotsModeDoesNotRetriggerGeneration(t *testing.T) {
	text := &fakeText{reply: twentyDrinks}
	f, _ := newTestFeed(t, text)
	ctx := context.Background()

	if _, err := f.Page(ctx, models.Mode{}, 0); err != nil {
		t.Fatal(err)
	}
	// Nothing in the month is tagged shot, so the view is empty, but
	// the month is full and must stay quiet.
	page, err := f.Page(ctx, models.Mode{Shots: true}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(page) != 0 {
		t.Fatalf("shots view should be empty, got %d", len(page))
	}
	if n := text.callCount(); n != 1 {
		t.Fatalf("generator called %d times, want 1", n)
	}
}

func TestPageCapsOverReturningGeneration(t *testing.T) {
	text := &fakeText{reply: func() []models.CocktailSummary {
		out := make([]models.CocktailSummary, 30)
		for i := range out {
			out[i] = models.CocktailSummary{
				Name:        fmt.Sprintf("Overflow Mix %d", i+1),
				Description: "seasonal",
				Tags:        []string{"Winter"},
			}
		}
		return out
	}}
	f, _ := newTestFeed(t, text)
	ctx := context.Background()

	page, err := f.Page(ctx, models.Mode{}, 0)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if len(page) != 20 {
		t.Fatalf("page has %d items, quota is 20", len(page))
	}

	// The surplus must not have been persisted either.
	stored, err := f.Store.ListByLabel(ctx, "SEASON_FEBRUARY", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stored) != 20 {
		t.Fatalf("persisted %d rows, quota is 20", len(stored))
	}

	// Later pages keep serving exactly one quota's worth.
	again, err := f.Page(ctx, models.Mode{}, 0)
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if len(again) != 20 {
		t.Fatalf("second page has %d items, want 20", len(again))
	}
	if n := text.callCount(); n != 1 {
		t.Fatalf("generator called %d times, want 1", n)
	}
}
