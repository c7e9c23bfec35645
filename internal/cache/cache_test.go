package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bartrender/pkg/models"
)

// memBlob is an in-memory ObjectStore with optional forced failure.
type memBlob struct {
	mu      sync.Mutex
	objects map[string][]byte
	fail    bool
	gets    int
	puts    int
}

func newMemBlob() *memBlob {
	return &memBlob{objects: map[string][]byte{}}
}

func (m *memBlob) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.fail {
		return nil, errors.New("store down")
	}
	return m.objects[key], nil
}

func (m *memBlob) Put(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if m.fail {
		return errors.New("store down")
	}
	m.objects[key] = data
	return nil
}

func TestImagesExtensionProbeFirstHitWins(t *testing.T) {
	shared := newMemBlob()
	shared.objects["drinks/mojito.jpg"] = []byte("jpeg-bytes")
	shared.objects["drinks/mojito.png"] = []byte("png-bytes")

	c, err := NewImages(8, shared)
	if err != nil {
		t.Fatal(err)
	}

	data, out := c.Lookup(context.Background(), "drinks/mojito")
	if out != Hit {
		t.Fatalf("outcome = %v, want Hit", out)
	}
	if string(data) != "jpeg-bytes" {
		t.Fatalf("probe order broken, got %q", data)
	}
}

func TestImagesLocalBackfillSkipsSharedTier(t *testing.T) {
	shared := newMemBlob()
	shared.objects["drinks/mojito"] = []byte("img")

	c, _ := NewImages(8, shared)
	ctx := context.Background()

	if _, out := c.Lookup(ctx, "drinks/mojito"); out != Hit {
		t.Fatal("expected shared hit")
	}
	before := sharedGets(shared)
	if _, out := c.Lookup(ctx, "drinks/mojito"); out != Hit {
		t.Fatal("expected local hit")
	}
	if sharedGets(shared) != before {
		t.Fatal("second lookup must be served locally")
	}
}

func sharedGets(m *memBlob) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gets
}

func TestImagesFailedIsNotMiss(t *testing.T) {
	shared := newMemBlob()
	shared.fail = true

	c, _ := NewImages(8, shared)
	if _, out := c.Lookup(context.Background(), "drinks/mojito"); out != Failed {
		t.Fatalf("outcome = %v, want Failed", out)
	}
}

func TestImagesPutReachesSharedTier(t *testing.T) {
	shared := newMemBlob()
	c, _ := NewImages(8, shared)

	c.Put("drinks/mojito", []byte("img"))

	// The shared write is asynchronous.
	deadline := time.Now().Add(2 * time.Second)
	for {
		shared.mu.Lock()
		_, ok := shared.objects["drinks/mojito"]
		shared.mu.Unlock()
		if ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("shared write never landed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// memDocs is an in-memory DocumentStore for the documents tier. Only
// the methods the cache touches do anything.
type memDocs struct {
	mu   sync.Mutex
	docs map[string]*models.CocktailDetails
	fail bool
	gets int
}

func newMemDocs() *memDocs { return &memDocs{docs: map[string]*models.CocktailDetails{}} }

func (m *memDocs) GetCocktail(ctx context.Context, id string) (*models.CocktailDetails, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.fail {
		return nil, errors.New("store down")
	}
	if d, ok := m.docs[id]; ok {
		out := d.Clone()
		return &out, nil
	}
	return nil, nil
}

func (m *memDocs) SaveCocktail(ctx context.Context, id string, d *models.CocktailDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("store down")
	}
	saved := d.Clone()
	m.docs[id] = &saved
	return nil
}

func (m *memDocs) BatchSaveSummaries(ctx context.Context, label string, items []models.CocktailSummary) error {
	return nil
}

func (m *memDocs) ListByLabel(ctx context.Context, label string, limit int) ([]models.CocktailSummary, error) {
	return nil, nil
}

func (m *memDocs) SearchGlobal(ctx context.Context, term string, limit int) ([]models.CocktailSummary, error) {
	return nil, nil
}

func (m *memDocs) AdjustLikes(ctx context.Context, id string, delta int) error { return nil }

func TestDocumentsHitReturnsPrivateCopy(t *testing.T) {
	shared := newMemDocs()
	c, _ := NewDocuments(8, shared)

	c.Put("mojito", &models.CocktailDetails{
		CocktailSummary: models.CocktailSummary{Name: "Mojito", Tags: []string{"mint"}},
	})

	first, out := c.Lookup(context.Background(), "mojito")
	if out != Hit {
		t.Fatalf("outcome = %v, want Hit", out)
	}
	first.Name = "Mangled"
	first.Tags[0] = "mangled"

	second, _ := c.Lookup(context.Background(), "mojito")
	if second.Name != "Mojito" || second.Tags[0] != "mint" {
		t.Fatal("caller mutation leaked into the cached record")
	}
}

func TestDocumentsFailedOutcomeOnStoreError(t *testing.T) {
	shared := newMemDocs()
	shared.fail = true
	c, _ := NewDocuments(8, shared)

	if _, out := c.Lookup(context.Background(), "mojito"); out != Failed {
		t.Fatalf("want Failed on store error")
	}
}

func TestDocumentsMissThenSharedHitBackfills(t *testing.T) {
	shared := newMemDocs()
	shared.docs["mojito"] = &models.CocktailDetails{
		CocktailSummary: models.CocktailSummary{Name: "Mojito"},
	}
	c, _ := NewDocuments(8, shared)
	ctx := context.Background()

	if _, out := c.Lookup(ctx, "mojito"); out != Hit {
		t.Fatal("expected shared hit")
	}
	shared.mu.Lock()
	before := shared.gets
	shared.mu.Unlock()

	if _, out := c.Lookup(ctx, "mojito"); out != Hit {
		t.Fatal("expected local hit")
	}
	shared.mu.Lock()
	after := shared.gets
	shared.mu.Unlock()
	if after != before {
		t.Fatal("second lookup must not reach the shared store")
	}
}
