package populate

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"bartrender/internal/cache"
	"bartrender/internal/cocktail"
	"bartrender/internal/gen"
	"bartrender/pkg/models"
)

type memStore struct {
	mu   sync.Mutex
	docs map[string]*models.CocktailDetails
}

func (m *memStore) GetCocktail(ctx context.Context, id string) (*models.CocktailDetails, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d, ok := m.docs[id]; ok {
		out := d.Clone()
		return &out, nil
	}
	return nil, nil
}

func (m *memStore) SaveCocktail(ctx context.Context, id string, d *models.CocktailDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := d.Clone()
	m.docs[id] = &saved
	return nil
}

func (m *memStore) BatchSaveSummaries(ctx context.Context, label string, items []models.CocktailSummary) error {
	return nil
}
func (m *memStore) ListByLabel(ctx context.Context, label string, limit int) ([]models.CocktailSummary, error) {
	return nil, nil
}
func (m *memStore) SearchGlobal(ctx context.Context, term string, limit int) ([]models.CocktailSummary, error) {
	return nil, nil
}
func (m *memStore) AdjustLikes(ctx context.Context, id string, delta int) error { return nil }

type memBlob struct{ mu sync.Mutex }

func (m *memBlob) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }
func (m *memBlob) Put(ctx context.Context, key string, data []byte) error {
	return nil
}

type countingText struct {
	mu    sync.Mutex
	calls int
}

func (c *countingText) GenerateJSON(ctx context.Context, prompt string, out any) error {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	recipe := `{
		"name": "Any Drink",
		"description": "x",
		"tags": ["Tag"],
		"glass_type": "rocks",
		"visual_context": "glass",
		"tools": ["spoon"],
		"ingredients": [{"name": "Thing", "amount": "1 oz"}],
		"steps": [{"title": "Stir", "instruction": "stir", "action_type": "stir",
			"visual_state": {"background": "b", "glass": "g", "accessories": "a",
				"ingredients": "i", "action": "ac", "result": "r"}}]
	}`
	return json.Unmarshal([]byte(recipe), out)
}

func (c *countingText) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type noImage struct{}

func (noImage) GenerateImage(ctx context.Context, prompt string, src []byte) ([]byte, error) {
	return []byte("img"), nil
}

func newSweeper(t *testing.T) (*Sweeper, *countingText) {
	t.Helper()
	st := &memStore{docs: map[string]*models.CocktailDetails{}}
	docs, err := cache.NewDocuments(64, st)
	if err != nil {
		t.Fatal(err)
	}
	images, err := cache.NewImages(64, &memBlob{})
	if err != nil {
		t.Fatal(err)
	}
	text := &countingText{}
	svc := cocktail.NewService(docs, images, st, gen.NewQueue(time.Millisecond, 0), text, noImage{})
	s := NewSweeper(svc)
	s.Pause = time.Millisecond
	return s, text
}

func TestRunResolvesEachEntryOnce(t *testing.T) {
	s, text := newSweeper(t)

	items := []models.CocktailSummary{
		{Name: "Drink One"},
		{IsDivider: true, DividerTitle: "Heading into March..."},
		{Name: "Drink Two"},
	}
	done := s.Run(context.Background(), items, models.Mode{})
	if done != 2 {
		t.Fatalf("resolved %d, want 2 (divider skipped)", done)
	}
	if n := text.count(); n != 2 {
		t.Fatalf("generator called %d times, want 2", n)
	}

	// A second sweep over warmed entries generates nothing.
	if done := s.Run(context.Background(), items, models.Mode{}); done != 2 {
		t.Fatalf("second sweep resolved %d", done)
	}
	if n := text.count(); n != 2 {
		t.Fatalf("warm sweep must not regenerate, calls = %d", n)
	}
}

func TestRunStops(t *testing.T) {
	s, text := newSweeper(t)
	s.Stop()

	items := []models.CocktailSummary{{Name: "Drink One"}, {Name: "Drink Two"}}
	if done := s.Run(context.Background(), items, models.Mode{}); done != 0 {
		t.Fatalf("stopped sweeper resolved %d entries", done)
	}
	if text.count() != 0 {
		t.Fatal("stopped sweeper must not generate")
	}
}

func TestRunHonorsContext(t *testing.T) {
	s, _ := newSweeper(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := []models.CocktailSummary{{Name: "Drink One"}}
	if done := s.Run(ctx, items, models.Mode{}); done != 0 {
		t.Fatalf("cancelled sweep resolved %d", done)
	}
}
