// Package seasonal maintains the month-keyed feed: a fixed quota of
// drinks per period, persisted once and served from the store on every
// later request.
package seasonal

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"bartrender/internal/gen"
	"bartrender/internal/live"
	"bartrender/internal/naming"
	"bartrender/internal/store"
	"bartrender/pkg/models"
)

// Publisher receives feed events. *live.Hub satisfies it.
type Publisher interface {
	BroadcastJSON(v any)
}

type Feed struct {
	Store store.DocumentStore
	Queue *gen.Queue
	Text  gen.TextGenerator
	Hub   Publisher
	Quota int
	Now   func() time.Time
}

func NewFeed(st store.DocumentStore, q *gen.Queue, text gen.TextGenerator, hub Publisher, quota int) *Feed {
	if quota <= 0 {
		quota = 20
	}
	return &Feed{Store: st, Queue: q, Text: text, Hub: hub, Quota: quota, Now: time.Now}
}

// periodMonth resolves the month monthOffset periods ahead of now,
// anchored to the first of the month so late-month dates never skip a
// period.
func (f *Feed) periodMonth(monthOffset int) time.Time {
	now := f.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, monthOffset, 0)
}

// PeriodLabel is the storage label for a feed period, e.g.
// "SEASON_FEBRUARY".
func (f *Feed) PeriodLabel(monthOffset int) string {
	return "SEASON_" + strings.ToUpper(f.periodMonth(monthOffset).Month().String())
}

// Page returns one period's feed for the given mode. The store is read
// first; only a shortfall against the quota triggers generation, so a
// fully populated month costs zero backend calls. A store-read failure
// degrades to an empty page rather than regenerating a month that
// probably already exists.
func (f *Feed) Page(ctx context.Context, mode models.Mode, monthOffset int) ([]models.CocktailSummary, error) {
	label := f.PeriodLabel(monthOffset)
	monthName := f.periodMonth(monthOffset).Month().String()

	existing, err := f.Store.ListByLabel(ctx, label, f.Quota)
	if err != nil {
		log.Printf("[seasonal] list %s: %v", label, err)
		return nil, nil
	}

	display := models.ApplyMode(existing, mode)

	// Quota tracks store population, not the filtered view: shots mode
	// must not re-trigger generation for a month that is already full.
	if len(existing) >= f.Quota {
		return f.withDivider(display, monthName, monthOffset), nil
	}

	needed := f.Quota - len(existing)
	prompt := shortfallPrompt(needed, monthName, label, mode, existing)

	items, err := gen.Submit(f.Queue, ctx, func(ctx context.Context) ([]models.CocktailSummary, error) {
		var out []models.CocktailSummary
		if err := f.Text.GenerateJSON(ctx, prompt, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		log.Printf("[seasonal] generate %s: %v", label, err)
		return f.withDivider(display, monthName, monthOffset), nil
	}

	// The label and premium status are ours to assign, whatever the
	// model returned. Output beyond the shortfall is dropped so an
	// over-returning model can never push a period past its quota.
	fresh := make([]models.CocktailSummary, 0, needed)
	for _, c := range items {
		if len(fresh) == needed {
			break
		}
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		c.SpecialLabel = label
		c.IsPremium = naming.IsPremium(c.Name)
		fresh = append(fresh, c)
	}

	if len(fresh) > 0 {
		if err := f.Store.BatchSaveSummaries(ctx, label, fresh); err != nil {
			log.Printf("[seasonal] persist %s: %v", label, err)
			return f.withDivider(display, monthName, monthOffset), nil
		}
		if f.Hub != nil {
			f.Hub.BroadcastJSON(live.NewSeasonEvent(label, len(fresh)))
		}
	}

	combined := append(display, models.ApplyMode(fresh, mode)...)
	return f.withDivider(combined, monthName, monthOffset), nil
}

// withDivider prepends the section break for look-ahead pages so the
// client can render an infinite feed with month boundaries.
func (f *Feed) withDivider(items []models.CocktailSummary, monthName string, monthOffset int) []models.CocktailSummary {
	if monthOffset <= 0 || len(items) == 0 {
		return items
	}
	divider := models.CocktailSummary{
		Name:         fmt.Sprintf("divider-%d", monthOffset),
		IsDivider:    true,
		DividerTitle: fmt.Sprintf("Heading into %s...", monthName),
		DividerMonth: monthName,
	}
	return append([]models.CocktailSummary{divider}, items...)
}

func shortfallPrompt(needed int, monthName, label string, mode models.Mode, existing []models.CocktailSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest %d distinctive cocktails for %s.\n", needed, monthName)
	if mode.NonAlcoholic {
		b.WriteString("MOCKTAILS ONLY. ")
	}
	if mode.Shots {
		b.WriteString("SHOTS ONLY. ")
	}
	if len(existing) > 0 {
		names := make([]string, len(existing))
		for i, c := range existing {
			names[i] = c.Name
		}
		fmt.Fprintf(&b, "\nAvoid these names: %s.\n", strings.Join(names, ", "))
	}
	b.WriteString("\nProvide a comprehensive list for this season.\n")
	fmt.Fprintf(&b, "Think about the weather, holidays (e.g. Valentines, Halloween, Christmas, Summer heat) occurring in %s.\n\n", monthName)
	b.WriteString("IMPORTANT: You MUST include the specific season or holiday name (e.g. 'Valentine', 'Winter', 'St Patrick', 'Christmas', 'Summer', 'Autumn') as the FIRST tag in the list.\n")
	fmt.Fprintf(&b, "Do NOT include the generic month name (%q) as a tag.\n\n", monthName)
	fmt.Fprintf(&b, "Assign 'special_label' EXACTLY as: %q.", label)
	return b.String()
}
