package store

import (
	"context"
	"path/filepath"
	"testing"

	"bartrender/pkg/database"
	"bartrender/pkg/models"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepo(db)
}

func sampleDetails(name string) *models.CocktailDetails {
	return &models.CocktailDetails{
		CocktailSummary: models.CocktailSummary{
			Name:        name,
			Description: "A test drink",
			Tags:        []string{"Rum", "Refreshing"},
		},
		Ingredients: []models.Ingredient{{Name: "White Rum", Amount: "50ml"}},
		Tools:       []string{"Shaker"},
		Steps: []models.MixingStep{{
			Title:       "Shake",
			Instruction: "Shake with ice",
			ActionType:  "shake",
		}},
		GlassType: "highball",
	}
}

func TestGetCocktailMissIsNilNil(t *testing.T) {
	r := newTestRepo(t)
	got, err := r.GetCocktail(context.Background(), "no_such_drink")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing row, got %+v", got)
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if err := r.SaveCocktail(ctx, "mojito", sampleDetails("Mojito")); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := r.GetCocktail(ctx, "mojito")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected a document")
	}
	if got.Name != "Mojito" || len(got.Steps) != 1 || got.Steps[0].ActionType != "shake" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSaveCocktailPreservesLikes(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if err := r.SaveCocktail(ctx, "mojito", sampleDetails("Mojito")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := r.AdjustLikes(ctx, "mojito", 3); err != nil {
		t.Fatalf("adjust: %v", err)
	}

	// Re-saving the document must not reset the counter.
	if err := r.SaveCocktail(ctx, "mojito", sampleDetails("Mojito")); err != nil {
		t.Fatalf("resave: %v", err)
	}
	got, err := r.GetCocktail(ctx, "mojito")
	if err != nil || got == nil {
		t.Fatalf("get: %v %v", got, err)
	}
	if got.Likes != 3 {
		t.Fatalf("likes = %d, want 3", got.Likes)
	}
}

func TestAdjustLikesNeverGoesNegative(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if err := r.SaveCocktail(ctx, "mojito", sampleDetails("Mojito")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := r.AdjustLikes(ctx, "mojito", -5); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	got, _ := r.GetCocktail(ctx, "mojito")
	if got.Likes != 0 {
		t.Fatalf("likes = %d, want 0", got.Likes)
	}
}

func TestBatchSaveSummariesKeepsDoc(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if err := r.SaveCocktail(ctx, "spiced_cider", sampleDetails("Spiced Cider")); err != nil {
		t.Fatalf("save: %v", err)
	}

	items := []models.CocktailSummary{
		{Name: "Spiced Cider", Description: "refreshed card", Tags: []string{"Warm"}},
		{Name: "Frost Flip", Description: "new card", Tags: []string{"Cold"}},
		{IsDivider: true, DividerTitle: "Heading into March..."},
	}
	if err := r.BatchSaveSummaries(ctx, "SEASON_FEBRUARY", items); err != nil {
		t.Fatalf("batch save: %v", err)
	}

	// The existing full document survives a summary refresh.
	got, err := r.GetCocktail(ctx, "spiced_cider")
	if err != nil || got == nil {
		t.Fatalf("existing doc gone: %v %v", got, err)
	}

	list, err := r.ListByLabel(ctx, "SEASON_FEBRUARY", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("listed %d rows, want 2 (divider skipped)", len(list))
	}

	capped, err := r.ListByLabel(ctx, "SEASON_FEBRUARY", 1)
	if err != nil {
		t.Fatalf("capped list: %v", err)
	}
	if len(capped) != 1 {
		t.Fatalf("capped list has %d rows, want 1", len(capped))
	}
	for _, s := range list {
		if s.SpecialLabel != "SEASON_FEBRUARY" {
			t.Fatalf("label not applied: %+v", s)
		}
	}
}

func TestSearchGlobalPrefixAndTag(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seed := []models.CocktailSummary{
		{Name: "Mint Julep", Tags: []string{"mint", "bourbon"}},
		{Name: "Mojito", Tags: []string{"mint", "rum"}},
		{Name: "Old Fashioned", Tags: []string{"bourbon"}},
	}
	if err := r.BatchSaveSummaries(ctx, "", seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	byPrefix, err := r.SearchGlobal(ctx, "mo", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byPrefix) != 1 || byPrefix[0].Name != "Mojito" {
		t.Fatalf("prefix search = %+v", byPrefix)
	}

	byTag, err := r.SearchGlobal(ctx, "mint", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byTag) != 2 {
		t.Fatalf("tag search returned %d, want 2", len(byTag))
	}
}

func TestCleanupVariantIDs(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, id := range []string{"mojito", "mojito_virgin", "mojito_virgin_virgin", "b52_shot_shot"} {
		if err := r.SaveCocktail(ctx, id, sampleDetails("Mojito")); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	n, err := r.CleanupVariantIDs(ctx)
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if n != 2 {
		t.Fatalf("removed %d rows, want 2", n)
	}
	if got, _ := r.GetCocktail(ctx, "mojito_virgin"); got == nil {
		t.Fatal("single-suffix row must survive")
	}
}
