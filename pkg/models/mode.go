package models

import "strings"

// Mode is the display mode requested by the client. Transforms derived
// from it apply to returned views only; stored records stay mode-neutral.
type Mode struct {
	NonAlcoholic bool
	Shots        bool
}

// VariantSuffix is the key modifier appended before storage lookups so
// the same base name resolves to independent documents per variant.
func (m Mode) VariantSuffix() string {
	if m.NonAlcoholic {
		return "_virgin"
	}
	if m.Shots {
		return "_shot"
	}
	return ""
}

func hasAnyTag(tags []string, wanted ...string) bool {
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

// VirginView rewrites entries that lack an explicit no-alcohol tag:
// "Virgin " name prefix (unless already present) and a leading
// "NO ALCOHOL" tag. The input slice is never mutated.
func VirginView(items []CocktailSummary) []CocktailSummary {
	out := make([]CocktailSummary, 0, len(items))
	for _, c := range items {
		if c.IsDivider || hasAnyTag(c.Tags, "mocktail", "virgin", "non-alcoholic") {
			out = append(out, c)
			continue
		}
		v := c.Clone()
		if !strings.Contains(strings.ToLower(v.Name), "virgin") {
			v.Name = "Virgin " + v.Name
		}
		v.Tags = append([]string{"NO ALCOHOL"}, v.Tags...)
		out = append(out, v)
	}
	return out
}

// ShotsView filters to entries tagged as shots; dividers survive so the
// feed keeps its section breaks.
func ShotsView(items []CocktailSummary) []CocktailSummary {
	out := make([]CocktailSummary, 0, len(items))
	for _, c := range items {
		if c.IsDivider || hasAnyTag(c.Tags, "shot", "shooter") {
			out = append(out, c)
		}
	}
	return out
}

// ApplyMode applies the requested display transform to a returned view.
func ApplyMode(items []CocktailSummary, mode Mode) []CocktailSummary {
	if mode.NonAlcoholic {
		return VirginView(items)
	}
	if mode.Shots {
		return ShotsView(items)
	}
	return items
}
