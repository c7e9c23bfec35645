// Package populate walks a list of catalog entries and resolves each
// one's full recipe, warming the store and caches ahead of user
// traffic. The walk is deliberately slow; it rides the same generation
// queue as live requests and must never crowd them out.
package populate

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"bartrender/internal/cocktail"
	"bartrender/pkg/models"
)

type Sweeper struct {
	Service *cocktail.Service
	Pause   time.Duration

	stopped atomic.Bool
}

func NewSweeper(svc *cocktail.Service) *Sweeper {
	return &Sweeper{Service: svc, Pause: 2 * time.Second}
}

// Stop makes the current Run return after the in-flight entry.
func (s *Sweeper) Stop() {
	s.stopped.Store(true)
}

// Run resolves every entry once, pausing between items. Failures are
// logged and skipped; one bad recipe must not end the sweep. Returns
// the number of entries resolved.
func (s *Sweeper) Run(ctx context.Context, items []models.CocktailSummary, mode models.Mode) int {
	done := 0
	for _, c := range items {
		if s.stopped.Load() || ctx.Err() != nil {
			break
		}
		if c.IsDivider {
			continue
		}

		if _, err := s.Service.Details(ctx, c.Name, mode, nil); err != nil {
			log.Printf("[populate] %s: %v", c.Name, err)
		} else {
			done++
		}

		select {
		case <-ctx.Done():
			return done
		case <-time.After(s.Pause):
		}
	}
	return done
}
