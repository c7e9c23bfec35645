// Package cache layers a small in-process LRU in front of the shared
// stores. Reads consult the local tier first and backfill it on a shared
// hit; writes land locally right away and flow to the shared tier in the
// background so a slow store never blocks a response.
package cache

import (
	"context"
	"log"

	lru "github.com/hashicorp/golang-lru/v2"

	"bartrender/internal/blob"
	"bartrender/internal/store"
	"bartrender/pkg/models"
)

// Outcome distinguishes "not there" from "could not tell". Callers fall
// back to generation on a Miss but must not regenerate on Failed, or a
// flaky store would fork duplicate documents.
type Outcome int

const (
	Miss Outcome = iota
	Hit
	Failed
)

// imageExts are probed in order against the shared tier; older uploads
// carried explicit extensions while newer ones use the bare key.
var imageExts = []string{"", ".jpg", ".png"}

// Images caches generated drink imagery.
type Images struct {
	local  *lru.Cache[string, []byte]
	shared blob.ObjectStore
}

func NewImages(size int, shared blob.ObjectStore) (*Images, error) {
	l, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Images{local: l, shared: shared}, nil
}

// Lookup probes the local tier, then the shared tier under each known
// extension. The first shared hit wins and is copied into the local
// tier off the request path.
func (c *Images) Lookup(ctx context.Context, key string) ([]byte, Outcome) {
	if data, ok := c.local.Get(key); ok {
		return data, Hit
	}

	failed := false
	for _, ext := range imageExts {
		data, err := c.shared.Get(ctx, key+ext)
		if err != nil {
			failed = true
			continue
		}
		if data != nil {
			c.local.Add(key, data)
			return data, Hit
		}
	}
	if failed {
		return nil, Failed
	}
	return nil, Miss
}

// Put stores locally and pushes to the shared tier in the background.
// A shared-tier failure only costs a later regeneration, so it is
// logged and dropped.
func (c *Images) Put(key string, data []byte) {
	c.local.Add(key, data)
	go func() {
		if err := c.shared.Put(context.Background(), key, data); err != nil {
			log.Printf("[cache] shared image write %s: %v", key, err)
		}
	}()
}

// Evict removes the local copy so the next Lookup re-probes the shared
// tier. Used by the force-refresh image path.
func (c *Images) Evict(key string) {
	c.local.Remove(key)
}

// Documents caches full recipe documents in front of the document store.
type Documents struct {
	local  *lru.Cache[string, models.CocktailDetails]
	shared store.DocumentStore
}

func NewDocuments(size int, shared store.DocumentStore) (*Documents, error) {
	l, err := lru.New[string, models.CocktailDetails](size)
	if err != nil {
		return nil, err
	}
	return &Documents{local: l, shared: shared}, nil
}

// Lookup returns a private copy on a hit; callers may rewrite the view
// without touching the cached record.
func (c *Documents) Lookup(ctx context.Context, id string) (*models.CocktailDetails, Outcome) {
	if d, ok := c.local.Get(id); ok {
		out := d.Clone()
		return &out, Hit
	}

	d, err := c.shared.GetCocktail(ctx, id)
	if err != nil {
		log.Printf("[cache] shared doc read %s: %v", id, err)
		return nil, Failed
	}
	if d == nil {
		return nil, Miss
	}
	c.local.Add(id, d.Clone())
	out := d.Clone()
	return &out, Hit
}

// Put stores locally and persists to the shared store in the background.
func (c *Documents) Put(id string, d *models.CocktailDetails) {
	c.local.Add(id, d.Clone())
	saved := d.Clone()
	go func() {
		if err := c.shared.SaveCocktail(context.Background(), id, &saved); err != nil {
			log.Printf("[cache] shared doc write %s: %v", id, err)
		}
	}()
}

// Refresh replaces only the local copy. Used when a hit comes back with
// stale card fields and the canonical store already holds the new ones.
func (c *Documents) Refresh(id string, d *models.CocktailDetails) {
	c.local.Add(id, d.Clone())
}
