package cocktail

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"bartrender/internal/cache"
	"bartrender/internal/gen"
	"bartrender/internal/naming"
	"bartrender/internal/store"
	"bartrender/pkg/models"
)

// Service resolves recipe documents and drink imagery. Reads go through
// the tiered caches; misses are filled by the generation queue and
// written back through both tiers.
type Service struct {
	Docs   *cache.Documents
	Images *cache.Images
	Store  store.DocumentStore
	Queue  *gen.Queue
	Text   gen.TextGenerator
	Image  gen.ImageGenerator
}

func NewService(docs *cache.Documents, images *cache.Images, st store.DocumentStore, q *gen.Queue, text gen.TextGenerator, image gen.ImageGenerator) *Service {
	return &Service{Docs: docs, Images: images, Store: st, Queue: q, Text: text, Image: image}
}

// Details resolves the full recipe for a display name under the given
// mode. Resolution order: built-in seed recipes, then the tiered cache,
// then queued generation. A cache-tier failure is reported as
// unavailable rather than triggering a regeneration, so a flaky store
// cannot fork divergent documents for the same key.
func (s *Service) Details(ctx context.Context, name string, mode models.Mode, freshTags []string) (*models.CocktailDetails, error) {
	key := naming.VariantKey(name, mode)
	if key == "" {
		return nil, fmt.Errorf("details: %w: unusable name %q", gen.ErrEmpty, name)
	}

	if seed, ok := seedDetails[name]; ok {
		d := seed.Clone()
		if len(freshTags) > 0 {
			d.Tags = append([]string(nil), freshTags...)
		}
		// Keep the shared store warm so global search can see seeds.
		pushed := d.Clone()
		go func() {
			if err := s.Store.SaveCocktail(context.Background(), key, &pushed); err != nil {
				log.Printf("[cocktail] seed push %s: %v", key, err)
			}
		}()
		return &d, nil
	}

	cached, outcome := s.Docs.Lookup(ctx, key)
	switch outcome {
	case cache.Hit:
		if len(freshTags) > 0 && !equalTags(freshTags, cached.Tags) {
			cached.Tags = append([]string(nil), freshTags...)
			s.Docs.Put(key, cached)
		}
		return cached, nil
	case cache.Failed:
		return nil, fmt.Errorf("details %q: %w", name, gen.ErrUnavailable)
	}

	prompt := detailPrompt(name, mode)
	d, err := gen.Submit(s.Queue, ctx, func(ctx context.Context) (*models.CocktailDetails, error) {
		var out models.CocktailDetails
		if err := s.Text.GenerateJSON(ctx, prompt, &out); err != nil {
			return nil, err
		}
		if err := validateDetails(&out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("details %q: %w", name, err)
	}

	if len(freshTags) > 0 {
		d.Tags = append([]string(nil), freshTags...)
	}
	// The classifier owns premium status, whatever the model said.
	d.IsPremium = naming.IsPremium(d.Name)

	s.Docs.Put(key, d)
	return d, nil
}

// Save persists a hand-edited recipe document. Unlike generated
// documents it is validated and written to the shared store
// synchronously, so the caller sees validation and storage errors
// instead of a silently dropped edit.
func (s *Service) Save(ctx context.Context, name string, mode models.Mode, d *models.CocktailDetails) error {
	key := naming.VariantKey(name, mode)
	if key == "" {
		return fmt.Errorf("save: %w: unusable name %q", gen.ErrEmpty, name)
	}
	if err := validateDetails(d); err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}

	d.IsPremium = naming.IsPremium(d.Name)
	if err := s.Store.SaveCocktail(ctx, key, d); err != nil {
		return fmt.Errorf("save %q: %w: %v", name, gen.ErrUnavailable, err)
	}
	s.Docs.Refresh(key, d)
	return nil
}

func detailPrompt(name string, mode models.Mode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recipe for %q. ", name)
	switch {
	case mode.NonAlcoholic:
		b.WriteString("MOCKTAIL version. ")
	case mode.Shots:
		b.WriteString("Shot version. ")
	}
	b.WriteString("STRICT: Use US Units (oz).")
	if mode.NonAlcoholic {
		b.WriteString(" IMPORTANT: REPLACE alcoholic ingredients with non-alcoholic spirits/syrups/juices. DO NOT just remove them. Ensure the drink remains balanced and flavorful.")
	}
	return b.String()
}

// imagePromptSuffix steers the model away from literal renderings of
// fanciful drink names.
const imagePromptSuffix = ". Professional cocktail photography. FOCUS ON THE DRINK IN THE GLASS. " +
	"DO NOT illustrate the name literally (e.g. no actual dragons, no tools, no animals). " +
	"Realistic bar setting. High-end studio lighting. NO TEXT, NO LOGOS."

// ResolveImage returns the image stored under cacheKey, generating one
// through the queue on a miss. forceRefresh drops the local copy and
// regenerates unconditionally. source, when present, seeds an
// edit-style regeneration.
func (s *Service) ResolveImage(ctx context.Context, cacheKey, prompt string, source []byte, forceRefresh bool) ([]byte, error) {
	key := naming.ImageKey(cacheKey)

	if forceRefresh {
		s.Images.Evict(key)
	} else {
		data, outcome := s.Images.Lookup(ctx, key)
		switch outcome {
		case cache.Hit:
			return data, nil
		case cache.Failed:
			return nil, fmt.Errorf("image %s: %w", key, gen.ErrUnavailable)
		}
	}

	enhanced := prompt + imagePromptSuffix
	img, err := gen.Submit(s.Queue, ctx, func(ctx context.Context) ([]byte, error) {
		return s.Image.GenerateImage(ctx, enhanced, source)
	})
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", key, err)
	}

	s.Images.Put(key, img)
	return img, nil
}

// Curated returns the hand-picked home list for the requested mode.
// Shots mode swaps in the shot list plus the strong curated entries;
// the default list carries a taste of the AI mixes.
func (s *Service) Curated(mode models.Mode) []models.CocktailSummary {
	var list []models.CocktailSummary
	if mode.Shots {
		list = append(list, shotsList...)
		for _, c := range curatedList {
			if hasAnyTagFold(c.Tags, "shot", "shooter", "strong") {
				list = append(list, c)
			}
		}
	} else {
		list = append(list, curatedList...)
		list = append(list, aiMixes[:3]...)
	}
	list = dedupeByName(list)

	out := make([]models.CocktailSummary, len(list))
	for i, c := range list {
		out[i] = c.Clone()
	}
	if mode.NonAlcoholic {
		out = models.VirginView(out)
	}
	return out
}

var alcoholWords = regexp.MustCompile(`(?i)vodka|gin|rum|whiskey|tequila|liqueur|vermouth|cognac|brandy|mezcal|campari|aperol|pisco`)

// AIMixes returns the generated-creation showcase. The shots filter
// falls back to the full list when it would leave too thin a page.
func (s *Service) AIMixes(mode models.Mode) []models.CocktailSummary {
	list := aiMixes
	if mode.Shots {
		var filtered []models.CocktailSummary
		for _, c := range list {
			if hasAnyTagFold(c.Tags, "strong", "spicy") {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) >= 4 {
			list = filtered
		}
	}

	out := make([]models.CocktailSummary, len(list))
	for i, c := range list {
		v := c.Clone()
		if mode.NonAlcoholic {
			if !strings.Contains(strings.ToLower(v.Name), "virgin") {
				v.Name = "Virgin " + v.Name
			}
			v.Description = alcoholWords.ReplaceAllString(v.Description, "non-alcoholic alternative")
			v.Tags = append([]string{"NO ALCOHOL"}, v.Tags...)
		}
		out[i] = v
	}
	return out
}

func hasAnyTagFold(tags []string, wanted ...string) bool {
	for _, t := range tags {
		lt := strings.ToLower(t)
		for _, w := range wanted {
			if lt == w {
				return true
			}
		}
	}
	return false
}

func dedupeByName(items []models.CocktailSummary) []models.CocktailSummary {
	seen := make(map[string]struct{}, len(items))
	out := items[:0:0]
	for _, c := range items {
		if _, dup := seen[c.Name]; dup {
			continue
		}
		seen[c.Name] = struct{}{}
		out = append(out, c)
	}
	return out
}

func equalTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
