package store

import (
	"context"
	"time"

	"bartrender/pkg/models"
)

// readTimeout caps a single shared-store read so a wedged database never
// stalls a request path that can fall back to generation.
const readTimeout = 2 * time.Second

// DocumentStore is the shared cocktail catalog. Misses come back as
// (nil, nil); an error means the store itself failed and callers should
// degrade rather than treat the record as absent.
type DocumentStore interface {
	GetCocktail(ctx context.Context, id string) (*models.CocktailDetails, error)
	SaveCocktail(ctx context.Context, id string, doc *models.CocktailDetails) error
	BatchSaveSummaries(ctx context.Context, label string, items []models.CocktailSummary) error
	ListByLabel(ctx context.Context, label string, limit int) ([]models.CocktailSummary, error)
	SearchGlobal(ctx context.Context, term string, limit int) ([]models.CocktailSummary, error)
	AdjustLikes(ctx context.Context, id string, delta int) error
}
