package models

// CocktailSummary is the catalog-card form of a drink: enough to render a
// list entry and decide premium gating, without the full recipe body.
//
// Entries come from three places: the admin seed lists, the generative
// backend, and synthetic divider rows injected between seasonal pages.
type CocktailSummary struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	IsPremium    bool     `json:"is_premium"`
	SpecialLabel string   `json:"special_label,omitempty"`
	Likes        int      `json:"likes,omitempty"`

	// Divider rows are non-selectable section breaks in the seasonal feed.
	IsDivider    bool   `json:"is_divider,omitempty"`
	DividerTitle string `json:"divider_title,omitempty"`
	DividerMonth string `json:"divider_month,omitempty"`
}

// Ingredient is one component of a recipe.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Detail string `json:"detail,omitempty"`
}

// StepIngredient references an ingredient used inside a single step.
type StepIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// VisualState describes the scene for a step's illustration.
type VisualState struct {
	Background  string `json:"background"`
	Glass       string `json:"glass"`
	Accessories string `json:"accessories"`
	Ingredients string `json:"ingredients"`
	Action      string `json:"action"`
	Result      string `json:"result"`
}

// MixingStep is one ordered preparation step.
type MixingStep struct {
	Title             string           `json:"title"`
	Instruction       string           `json:"instruction"`
	ActionType        string           `json:"action_type"` // shake, stir, pour, garnish, muddle, strain, other
	IngredientsInStep []StepIngredient `json:"ingredients_in_step,omitempty"`
	VisualState       VisualState      `json:"visual_state"`
}

// CocktailDetails is the full recipe document persisted under
// cocktails/{key}{variant}. Once stored it is canonical: only the tag
// list may be rewritten afterwards (tag-refresh path).
type CocktailDetails struct {
	CocktailSummary
	Ingredients   []Ingredient `json:"ingredients"`
	Tools         []string     `json:"tools"`
	Steps         []MixingStep `json:"steps"`
	GlassType     string       `json:"glass_type"`
	VisualContext string       `json:"visual_context"`
}

// Clone returns a deep copy so view transforms never mutate the canonical
// stored record.
func (c CocktailSummary) Clone() CocktailSummary {
	out := c
	out.Tags = append([]string(nil), c.Tags...)
	return out
}

// Clone deep-copies a full detail document.
func (d CocktailDetails) Clone() CocktailDetails {
	out := d
	out.Tags = append([]string(nil), d.Tags...)
	out.Ingredients = append([]Ingredient(nil), d.Ingredients...)
	out.Tools = append([]string(nil), d.Tools...)
	out.Steps = make([]MixingStep, len(d.Steps))
	for i, st := range d.Steps {
		st.IngredientsInStep = append([]StepIngredient(nil), st.IngredientsInStep...)
		out.Steps[i] = st
	}
	return out
}
