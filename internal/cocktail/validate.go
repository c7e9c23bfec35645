package cocktail

import (
	"fmt"
	"strings"

	"bartrender/internal/gen"
	"bartrender/pkg/models"
)

var validActions = map[string]struct{}{
	"shake":   {},
	"stir":    {},
	"pour":    {},
	"garnish": {},
	"muddle":  {},
	"strain":  {},
	"other":   {},
}

// validateDetails checks a generated recipe before it is cached or
// persisted. Anything that fails here is treated as a malformed
// response, never stored.
func validateDetails(d *models.CocktailDetails) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: missing name", gen.ErrMalformed)
	}
	if strings.TrimSpace(d.GlassType) == "" {
		return fmt.Errorf("%w: missing glass type", gen.ErrMalformed)
	}
	if len(d.Ingredients) == 0 {
		return fmt.Errorf("%w: no ingredients", gen.ErrMalformed)
	}
	for i, ing := range d.Ingredients {
		if strings.TrimSpace(ing.Name) == "" || strings.TrimSpace(ing.Amount) == "" {
			return fmt.Errorf("%w: ingredient %d incomplete", gen.ErrMalformed, i)
		}
	}
	if len(d.Steps) == 0 {
		return fmt.Errorf("%w: no steps", gen.ErrMalformed)
	}
	for i, st := range d.Steps {
		if strings.TrimSpace(st.Title) == "" || strings.TrimSpace(st.Instruction) == "" {
			return fmt.Errorf("%w: step %d incomplete", gen.ErrMalformed, i)
		}
		if _, ok := validActions[st.ActionType]; !ok {
			return fmt.Errorf("%w: step %d action %q", gen.ErrMalformed, i, st.ActionType)
		}
	}
	return nil
}
