// Package search resolves free-text queries against the built-in
// catalog and the shared store. Matching is deliberately strict: names
// and tags only, never descriptions, so "mint glass" cannot match a
// drink that merely mentions a glass in its blurb.
package search

import (
	"context"
	"log"
	"sort"
	"strings"

	"bartrender/internal/cocktail"
	"bartrender/internal/naming"
	"bartrender/internal/store"
	"bartrender/pkg/models"
)

const globalLimit = 25

type Resolver struct {
	Store store.DocumentStore
}

func NewResolver(st store.DocumentStore) *Resolver {
	return &Resolver{Store: st}
}

// Search runs the local catalog match and the shared-store lookup
// concurrently, merges with local priority, applies the mode transform,
// and floats human-curated entries above AI creations.
func (r *Resolver) Search(ctx context.Context, query string, mode models.Mode, extra []models.CocktailSummary) []models.CocktailSummary {
	remoteCh := make(chan []models.CocktailSummary, 1)
	go func() {
		remote, err := r.Store.SearchGlobal(ctx, query, globalLimit)
		if err != nil {
			log.Printf("[search] global lookup %q: %v", query, err)
		}
		remoteCh <- remote
	}()

	sources := dedupeByFoldedName(append(cocktail.SeedSummaries(), extra...))
	results := matchLocal(query, sources)

	// Remote rows only fill gaps; a local entry always wins its name.
	for _, gr := range <-remoteCh {
		if containsName(results, gr.Name) {
			continue
		}
		gr.IsPremium = naming.IsPremium(gr.Name)
		results = append(results, gr)
	}

	results = applyMode(results, mode)

	// Stable partition: curated and generated-by-request entries first,
	// showcase AI creations last.
	sort.SliceStable(results, func(i, j int) bool {
		return !isAICreation(results[i]) && isAICreation(results[j])
	})
	return results
}

// matchLocal keeps entries where every query token matches the name or
// a tag, either as a substring or within one edit for longer tokens.
func matchLocal(query string, items []models.CocktailSummary) []models.CocktailSummary {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	if len(tokens) == 0 {
		return nil
	}

	var out []models.CocktailSummary
	for _, c := range items {
		parts := []string{strings.ToLower(c.Name)}
		for _, t := range c.Tags {
			parts = append(parts, strings.ToLower(t))
		}
		searchable := strings.Join(parts, " ")
		words := strings.Fields(searchable)

		matched := true
		for _, token := range tokens {
			if !tokenMatches(token, searchable, words) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, c)
		}
	}
	return out
}

func tokenMatches(token, searchable string, words []string) bool {
	if strings.Contains(searchable, token) {
		return true
	}
	// Typo tolerance only kicks in past 3 characters; short tokens
	// produce too many accidental neighbors.
	if len(token) <= 3 {
		return false
	}
	for _, w := range words {
		if abs(len(w)-len(token)) > 2 {
			continue
		}
		if levenshtein(token, w) <= 1 {
			return true
		}
	}
	return false
}

func levenshtein(a, b string) int {
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min3(prev[j-1], curr[j-1], prev[j]) + 1
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func applyMode(items []models.CocktailSummary, mode models.Mode) []models.CocktailSummary {
	if mode.NonAlcoholic {
		return models.VirginView(items)
	}
	if mode.Shots {
		out := make([]models.CocktailSummary, 0, len(items))
		for _, c := range items {
			if hasShotTag(c.Tags) || cocktail.IsSeedShot(c.Name) {
				out = append(out, c)
			}
		}
		return out
	}
	return items
}

func hasShotTag(tags []string) bool {
	for _, t := range tags {
		lt := strings.ToLower(t)
		if lt == "shot" || lt == "shooter" {
			return true
		}
	}
	return false
}

func isAICreation(c models.CocktailSummary) bool {
	if c.SpecialLabel == "AI CREATION" {
		return true
	}
	for _, t := range c.Tags {
		ut := strings.ToUpper(t)
		if ut == "AI CREATION" || ut == "AI PICK" {
			return true
		}
	}
	return false
}

func dedupeByFoldedName(items []models.CocktailSummary) []models.CocktailSummary {
	seen := make(map[string]struct{}, len(items))
	out := items[:0:0]
	for _, c := range items {
		key := strings.ToLower(c.Name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

func containsName(items []models.CocktailSummary, name string) bool {
	for _, c := range items {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
