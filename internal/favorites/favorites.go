// Package favorites keeps per-device liked drinks and keeps the global
// like counters in step with toggles.
package favorites

import (
	"context"
	"fmt"
	"log"
	"sync"

	"bartrender/internal/live"
	"bartrender/internal/naming"
	"bartrender/internal/store"
	"bartrender/pkg/models"
)

// Publisher receives like events. *live.Hub satisfies it.
type Publisher interface {
	BroadcastJSON(v any)
}

type Service struct {
	Repo  *Repo
	Store store.DocumentStore
	Hub   Publisher

	wg sync.WaitGroup
}

func NewService(repo *Repo, st store.DocumentStore, hub Publisher) *Service {
	return &Service{Repo: repo, Store: st, Hub: hub}
}

// Toggle flips the device's favorite and nudges the shared counter off
// the request path. Two toggles always net out to zero remote delta.
func (s *Service) Toggle(ctx context.Context, deviceID string, summary models.CocktailSummary) (bool, error) {
	key := naming.Normalize(summary.Name)
	if key == "" {
		return false, fmt.Errorf("toggle: unusable name %q", summary.Name)
	}

	liked, err := s.Repo.Toggle(ctx, deviceID, key, summary)
	if err != nil {
		return false, err
	}

	delta := -1
	if liked {
		delta = 1
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.Store.AdjustLikes(context.Background(), key, delta); err != nil {
			log.Printf("[favorites] adjust likes %s: %v", key, err)
		}
		if s.Hub != nil {
			s.Hub.BroadcastJSON(live.NewLikeEvent(key, deviceID, delta))
		}
	}()

	return liked, nil
}

func (s *Service) List(ctx context.Context, deviceID string) ([]models.CocktailSummary, error) {
	return s.Repo.List(ctx, deviceID)
}

// Flush waits for in-flight counter updates. Shutdown and tests only.
func (s *Service) Flush() {
	s.wg.Wait()
}
