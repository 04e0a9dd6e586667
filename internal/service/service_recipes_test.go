// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"

	"github.com/MKhiriev/recook-book/internal/logger"
	"github.com/MKhiriev/recook-book/internal/mock"
	"github.com/MKhiriev/recook-book/internal/store"
	"github.com/MKhiriev/recook-book/internal/utils"
	"github.com/MKhiriev/recook-book/internal/validators"
	"github.com/MKhiriev/recook-book/models"
)

func newTestCatalog(t *testing.T, st store.PersistentStore, opts CatalogOptions) RecipeCatalog {
	t.Helper()
	return NewRecipeCatalog(st, utils.NewSequenceIDSource(100), utils.FixedClock{T: testNow}, opts, logger.Nop())
}

func recipeIDs(recipes []models.Recipe) []int64 {
	ids := make([]int64, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	return ids
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

// seedRecipes stores recipes directly and returns a catalog that will not
// add the sample set.
func seedRecipes(t *testing.T, recipes ...models.Recipe) (RecipeCatalog, *store.Storage) {
	t.Helper()
	st := newMemoryStorage(t)
	require.NoError(t, st.Write(context.Background(), store.TierDurable, store.KeyRecipes, recipes))
	return newTestCatalog(t, st, CatalogOptions{}), st
}

func upvotedInStore(t *testing.T, st *store.Storage) []int64 {
	t.Helper()
	var ids []int64
	_, err := st.Read(context.Background(), store.TierDurable, store.KeyUpvotedRecipeIDs, &ids)
	require.NoError(t, err)
	return ids
}

// ─────────────────────────────────────────────
// Sample recipes
// ─────────────────────────────────────────────

func TestSampleRecipes(t *testing.T) {
	recipes, err := SampleRecipes()

	require.NoError(t, err)
	require.Len(t, recipes, 5)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, recipeIDs(recipes))
	assert.Equal(t, "Leftover Rice Fried Rice", recipes[0].Title)
	assert.Equal(t, models.Dinner, recipes[0].Category)
	assert.Equal(t, 24, recipes[0].Upvotes)
	assert.Equal(t, day(15), recipes[0].DateAdded)
	for _, r := range recipes {
		assert.NotEmpty(t, r.LeftoverList(), r.Title)
		assert.NotEmpty(t, r.Steps(), r.Title)
		assert.Contains(t, models.Categories, r.Category)
	}
}

func TestList_SeedsSamplesOnFirstLoad(t *testing.T) {
	st := newMemoryStorage(t)
	catalog := newTestCatalog(t, st, CatalogOptions{})

	recipes, err := catalog.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, recipes, 5)

	var stored []models.Recipe
	found, err := st.Read(context.Background(), store.TierDurable, store.KeyRecipes, &stored)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, recipes, stored)
}

func TestList_SkipSampleRecipes(t *testing.T) {
	catalog := newTestCatalog(t, newMemoryStorage(t), CatalogOptions{SkipSampleRecipes: true})

	recipes, err := catalog.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestList_NoReseedAfterDeletingEverything(t *testing.T) {
	st := newMemoryStorage(t)
	catalog := newTestCatalog(t, st, CatalogOptions{})
	ctx := context.Background()

	recipes, err := catalog.List(ctx)
	require.NoError(t, err)
	for _, r := range recipes {
		require.NoError(t, catalog.Delete(ctx, r.ID))
	}

	recipes, err = catalog.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, recipes)

	// a fresh catalog is a fresh start
	recipes, err = newTestCatalog(t, st, CatalogOptions{}).List(ctx)
	require.NoError(t, err)
	assert.Len(t, recipes, 5)
}

func TestSeedSamples_RefillsEmptiedCatalog(t *testing.T) {
	// Arrange
	catalog := newTestCatalog(t, newMemoryStorage(t), CatalogOptions{})
	ctx := context.Background()
	recipes, err := catalog.List(ctx)
	require.NoError(t, err)
	for _, r := range recipes {
		require.NoError(t, catalog.Delete(ctx, r.ID))
	}

	// Act
	seeded, err := catalog.SeedSamples(ctx)

	// Assert
	require.NoError(t, err)
	assert.True(t, seeded)
	recipes, err = catalog.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, recipeIDs(recipes))
}

func TestSeedSamples_KeepsNonEmptyCatalog(t *testing.T) {
	catalog, _ := seedRecipes(t, models.Recipe{ID: 9, Title: "Only"})
	ctx := context.Background()

	seeded, err := catalog.SeedSamples(ctx)

	require.NoError(t, err)
	assert.False(t, seeded)
	recipes, err := catalog.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{9}, recipeIDs(recipes))
}

func TestSeedSamples_Disabled(t *testing.T) {
	catalog := newTestCatalog(t, newMemoryStorage(t), CatalogOptions{SkipSampleRecipes: true})

	seeded, err := catalog.SeedSamples(context.Background())

	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestList_ExistingCollectionIsKept(t *testing.T) {
	catalog, _ := seedRecipes(t, models.Recipe{ID: 9, Title: "Only"})

	recipes, err := catalog.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int64{9}, recipeIDs(recipes))
}

func TestList_ReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mock.NewMockPersistentStore(ctrl)
	st.EXPECT().Read(gomock.Any(), store.TierDurable, store.KeyRecipes, gomock.Any()).
		Return(false, errors.New("io"))

	_, err := newTestCatalog(t, st, CatalogOptions{}).List(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read recipes")
}

func TestList_SeedFailureInDurableTier(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	durable := mock.NewMockKeyValueStore(ctrl)
	durable.EXPECT().Get(gomock.Any(), store.KeyRecipes).Return(nil, nil)
	durable.EXPECT().Set(gomock.Any(), store.KeyRecipes, gomock.Any()).Return(errors.New("disk full"))
	st := store.NewStorage(durable, store.NewMemoryTier(), logger.Nop())

	// Act
	_, err := newTestCatalog(t, st, CatalogOptions{}).List(context.Background())

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed sample recipes")
	assert.Contains(t, err.Error(), "disk full")
}

// ─────────────────────────────────────────────
// Get / Add
// ─────────────────────────────────────────────

func TestGet(t *testing.T) {
	catalog, _ := seedRecipes(t, models.Recipe{ID: 1, Title: "A"}, models.Recipe{ID: 2, Title: "B"})
	ctx := context.Background()

	r, ok, err := catalog.Get(ctx, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "B", r.Title)

	_, ok, err = catalog.Get(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdd_PrependsWithFreshFields(t *testing.T) {
	// Arrange
	catalog, st := seedRecipes(t, models.Recipe{ID: 1, Title: "Old"})
	ctx := context.Background()
	in := models.Recipe{
		ID:                  55,
		Title:               "Rice Cakes",
		Category:            models.Snack,
		PrepTime:            15,
		LeftoverIngredients: "rice\negg",
		Instructions:        "mix\nfry",
		Author:              "Sam",
		Upvotes:             99,
		DateAdded:           day(1),
	}

	// Act
	added, err := catalog.Add(ctx, in)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(100), added.ID)
	assert.Zero(t, added.Upvotes)
	assert.Equal(t, testNow, added.DateAdded)
	assert.Equal(t, "Rice Cakes", added.Title)

	var stored []models.Recipe
	_, err = st.Read(ctx, store.TierDurable, store.KeyRecipes, &stored)
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 1}, recipeIDs(stored))
	assert.Equal(t, added, stored[0])
}

func TestAdd_IDsAreUnique(t *testing.T) {
	catalog := newTestCatalog(t, newMemoryStorage(t), CatalogOptions{})
	ctx := context.Background()

	a, err := catalog.Add(ctx, models.Recipe{Title: "A"})
	require.NoError(t, err)
	b, err := catalog.Add(ctx, models.Recipe{Title: "B"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	recipes, err := catalog.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID, a.ID, 1, 2, 3, 4, 5}, recipeIDs(recipes))
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestDelete_RemovesRecipeAndUpvote(t *testing.T) {
	catalog, st := seedRecipes(t,
		models.Recipe{ID: 1, Title: "A", Upvotes: 1},
		models.Recipe{ID: 2, Title: "B"},
	)
	ctx := context.Background()
	_, upvoted, err := catalog.ToggleUpvote(ctx, 2)
	require.NoError(t, err)
	require.True(t, upvoted)

	require.NoError(t, catalog.Delete(ctx, 2))

	recipes, err := catalog.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, recipeIDs(recipes))
	assert.Empty(t, upvotedInStore(t, st))
}

func TestDelete_UnknownIDIsIdempotent(t *testing.T) {
	catalog, _ := seedRecipes(t, models.Recipe{ID: 1, Title: "A"})
	ctx := context.Background()

	require.NoError(t, catalog.Delete(ctx, 42))
	require.NoError(t, catalog.Delete(ctx, 42))

	recipes, err := catalog.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, recipeIDs(recipes))
}

func TestDelete_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mock.NewMockPersistentStore(ctrl)
	st.EXPECT().Read(gomock.Any(), store.TierDurable, store.KeyRecipes, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ store.Tier, _ string, dst any) (bool, error) {
			*dst.(*[]models.Recipe) = []models.Recipe{{ID: 1}}
			return true, nil
		})
	st.EXPECT().Read(gomock.Any(), store.TierDurable, store.KeyUpvotedRecipeIDs, gomock.Any()).Return(false, nil)
	st.EXPECT().WriteAll(gomock.Any(), store.TierDurable, gomock.Any()).Return(errors.New("locked"))

	err := newTestCatalog(t, st, CatalogOptions{}).Delete(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
}

// ─────────────────────────────────────────────
// ToggleUpvote
// ─────────────────────────────────────────────

func TestToggleUpvote_TwiceRestoresState(t *testing.T) {
	// Arrange
	catalog, st := seedRecipes(t, models.Recipe{ID: 3, Title: "Broth", Upvotes: 31})
	ctx := context.Background()

	// Act
	first, upvoted, err := catalog.ToggleUpvote(ctx, 3)
	require.NoError(t, err)

	// Assert
	assert.True(t, upvoted)
	assert.Equal(t, 32, first.Upvotes)
	assert.Equal(t, []int64{3}, upvotedInStore(t, st))
	isUp, err := catalog.IsUpvoted(ctx, 3)
	require.NoError(t, err)
	assert.True(t, isUp)

	second, upvoted, err := catalog.ToggleUpvote(ctx, 3)
	require.NoError(t, err)
	assert.False(t, upvoted)
	assert.Equal(t, 31, second.Upvotes)
	assert.Empty(t, upvotedInStore(t, st))

	stored, _, err := catalog.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 31, stored.Upvotes)
}

func TestToggleUpvote_CountNeverNegative(t *testing.T) {
	catalog, st := seedRecipes(t, models.Recipe{ID: 1, Title: "Zero", Upvotes: 0})
	ctx := context.Background()
	require.NoError(t, st.Write(ctx, store.TierDurable, store.KeyUpvotedRecipeIDs, []int64{1}))

	r, upvoted, err := catalog.ToggleUpvote(ctx, 1)

	require.NoError(t, err)
	assert.False(t, upvoted)
	assert.Zero(t, r.Upvotes)
}

func TestToggleUpvote_UnknownIDIsNoop(t *testing.T) {
	catalog, st := seedRecipes(t, models.Recipe{ID: 1, Title: "A", Upvotes: 4})
	ctx := context.Background()

	r, upvoted, err := catalog.ToggleUpvote(ctx, 99)

	require.NoError(t, err)
	assert.False(t, upvoted)
	assert.Zero(t, r)
	assert.Empty(t, upvotedInStore(t, st))
	got, _, err := catalog.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Upvotes)
}

func TestUpvotedIDs_DeduplicatesStoredRecord(t *testing.T) {
	catalog, st := seedRecipes(t, models.Recipe{ID: 1}, models.Recipe{ID: 2})
	require.NoError(t, st.Write(context.Background(), store.TierDurable, store.KeyUpvotedRecipeIDs, []int64{2, 1, 2, 2}))

	ids, err := catalog.UpvotedIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids)
}

func TestUpvotedIDs_EmptyWhenNeverStored(t *testing.T) {
	catalog, _ := seedRecipes(t, models.Recipe{ID: 1})

	ids, err := catalog.UpvotedIDs(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

// ─────────────────────────────────────────────
// Featured
// ─────────────────────────────────────────────

func TestFeatured_SampleSet(t *testing.T) {
	catalog := newTestCatalog(t, newMemoryStorage(t), CatalogOptions{})

	featured, err := catalog.Featured(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 5}, recipeIDs(featured))
}

func TestFeatured(t *testing.T) {
	recipes := []models.Recipe{
		{ID: 1, Upvotes: 5},
		{ID: 2, Upvotes: 9},
		{ID: 3, Upvotes: 5},
		{ID: 4, Upvotes: 0},
	}

	tests := []struct {
		name    string
		n       int
		opts    CatalogOptions
		wantIDs []int64
	}{
		{name: "ties keep stored order", n: 3, wantIDs: []int64{2, 1, 3}},
		{name: "more than available", n: 10, wantIDs: []int64{2, 1, 3, 4}},
		{name: "one", n: 1, wantIDs: []int64{2}},
		{name: "zero uses default", n: 0, wantIDs: []int64{2, 1, 3}},
		{name: "negative uses configured default", n: -1, opts: CatalogOptions{FeaturedCount: 2}, wantIDs: []int64{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newMemoryStorage(t)
			require.NoError(t, st.Write(context.Background(), store.TierDurable, store.KeyRecipes, recipes))
			catalog := newTestCatalog(t, st, tt.opts)

			got, err := catalog.Featured(context.Background(), tt.n)

			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, recipeIDs(got))
		})
	}
}

func TestFeatured_EmptyCatalog(t *testing.T) {
	catalog := newTestCatalog(t, newMemoryStorage(t), CatalogOptions{SkipSampleRecipes: true})

	got, err := catalog.Featured(context.Background(), 3)

	require.NoError(t, err)
	assert.Empty(t, got)
}

// ─────────────────────────────────────────────
// Filter
// ─────────────────────────────────────────────

func TestFilter_SampleSet(t *testing.T) {
	tests := []struct {
		name    string
		filter  models.RecipeFilter
		wantIDs []int64
	}{
		{name: "default newest first", filter: models.RecipeFilter{}, wantIDs: []int64{5, 4, 3, 2, 1}},
		{name: "unknown sort is newest", filter: models.RecipeFilter{Sort: "random"}, wantIDs: []int64{5, 4, 3, 2, 1}},
		{name: "popular", filter: models.RecipeFilter{Sort: models.SortPopular}, wantIDs: []int64{3, 1, 5, 2, 4}},
		{name: "alphabetical", filter: models.RecipeFilter{Sort: models.SortAlphabetical}, wantIDs: []int64{5, 1, 4, 2, 3}},
		{name: "category", filter: models.RecipeFilter{Category: models.Dinner}, wantIDs: []int64{5, 1}},
		{name: "search title case-insensitive", filter: models.RecipeFilter{Search: "RICE"}, wantIDs: []int64{1}},
		{name: "search leftovers", filter: models.RecipeFilter{Search: "banana"}, wantIDs: []int64{4}},
		{name: "search and category", filter: models.RecipeFilter{Search: "leftover", Category: models.Breakfast}, wantIDs: []int64{}},
		{name: "no match", filter: models.RecipeFilter{Search: "zzz"}, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := newTestCatalog(t, newMemoryStorage(t), CatalogOptions{})

			got, err := catalog.Filter(context.Background(), tt.filter)

			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, recipeIDs(got))
		})
	}
}

func TestFilter_SearchCoversAdditionalIngredients(t *testing.T) {
	catalog, _ := seedRecipes(t,
		models.Recipe{ID: 1, Title: "Soup", LeftoverIngredients: "carrots", AdditionalIngredients: "Fresh Thyme"},
		models.Recipe{ID: 2, Title: "Stew", LeftoverIngredients: "beef", Instructions: "add thyme"},
	)

	got, err := catalog.Filter(context.Background(), models.RecipeFilter{Search: "thyme"})

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, recipeIDs(got))
}

func TestFilter_StableTies(t *testing.T) {
	catalog, _ := seedRecipes(t,
		models.Recipe{ID: 1, Title: "Same", Upvotes: 2, DateAdded: day(3)},
		models.Recipe{ID: 2, Title: "Same", Upvotes: 2, DateAdded: day(3)},
		models.Recipe{ID: 3, Title: "Same", Upvotes: 2, DateAdded: day(3)},
	)

	for _, mode := range []models.SortMode{models.SortNewest, models.SortPopular, models.SortAlphabetical} {
		got, err := catalog.Filter(context.Background(), models.RecipeFilter{Sort: mode})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, recipeIDs(got), string(mode))
	}
}

func TestFilter_AlphabeticalUsesLocaleCollation(t *testing.T) {
	recipes := []models.Recipe{
		{ID: 1, Title: "zucchini bake"},
		{ID: 2, Title: "Äpfel crumble"},
		{ID: 3, Title: "apple pie"},
		{ID: 4, Title: "Banana bread"},
	}
	st := newMemoryStorage(t)
	require.NoError(t, st.Write(context.Background(), store.TierDurable, store.KeyRecipes, recipes))
	catalog := newTestCatalog(t, st, CatalogOptions{Locale: language.German})

	got, err := catalog.Filter(context.Background(), models.RecipeFilter{Sort: models.SortAlphabetical})

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4, 1}, recipeIDs(got))
}

func TestFilter_DoesNotMutateStoredOrder(t *testing.T) {
	catalog := newTestCatalog(t, newMemoryStorage(t), CatalogOptions{})
	ctx := context.Background()

	_, err := catalog.Filter(ctx, models.RecipeFilter{Sort: models.SortPopular})
	require.NoError(t, err)

	recipes, err := catalog.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, recipeIDs(recipes))
}

// ─────────────────────────────────────────────
// Export / Import
// ─────────────────────────────────────────────

func TestExportImport(t *testing.T) {
	// Arrange
	source := newTestCatalog(t, newMemoryStorage(t), CatalogOptions{})
	ctx := context.Background()
	var buf bytes.Buffer
	require.NoError(t, source.Export(ctx, &buf))
	assert.Contains(t, buf.String(), "title: Leftover Rice Fried Rice")

	target, _ := seedRecipes(t, models.Recipe{ID: 2, Title: "Local"})

	// Act
	n, err := target.Import(ctx, &buf)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	recipes, err := target.List(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 6)
	// id 2 collides with the local recipe and is reassigned
	assert.Equal(t, []int64{1, 100, 3, 4, 5, 2}, recipeIDs(recipes))
	assert.Equal(t, "Stale Bread French Toast", recipes[1].Title)
	assert.Equal(t, "Local", recipes[5].Title)
	assert.Equal(t, 18, recipes[1].Upvotes)
}

func TestImport_NormalizesRecords(t *testing.T) {
	catalog, _ := seedRecipes(t, models.Recipe{ID: 1})
	ctx := context.Background()
	in := strings.NewReader(`
- title: No ID
  category: snack
  prepTime: 5
  leftoverIngredients: Crackers
  instructions: Crumble.
  author: Ann
  upvotes: -4
- id: 1
  title: Duplicate
  category: lunch
  prepTime: 20
  leftoverIngredients: Soup
  instructions: Reheat.
  author: Bo
  dateAdded: 2023-05-01T10:00:00Z
`)

	n, err := catalog.Import(ctx, in)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	recipes, err := catalog.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 101, 1}, recipeIDs(recipes))
	assert.Zero(t, recipes[0].Upvotes)
	assert.Equal(t, testNow, recipes[0].DateAdded)
	assert.Equal(t, time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC), recipes[1].DateAdded)
}

func TestImport_RejectsInvalidBatch(t *testing.T) {
	// Arrange
	catalog, st := seedRecipes(t, models.Recipe{ID: 1, Title: "Local"})
	ctx := context.Background()
	in := strings.NewReader(`
- title: Fine
  category: snack
  prepTime: 5
  leftoverIngredients: Crackers
  instructions: Crumble.
  author: Ann
- title: ""
  category: brunchx
  prepTime: 9999
  upvotes: 42
`)

	// Act
	n, err := catalog.Import(ctx, in)

	// Assert
	require.Error(t, err)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, validators.ErrValidation)
	assert.ErrorIs(t, err, validators.ErrInvalidCategory)
	assert.ErrorIs(t, err, validators.ErrInvalidPrepTime)

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fe, ok := verrs.For("recipes[1].title")
	require.True(t, ok)
	assert.Equal(t, "Recipe 2: Recipe title is required", fe.Message)
	_, ok = verrs.For("recipes[0].title")
	assert.False(t, ok)

	var stored []models.Recipe
	_, err = st.Read(ctx, store.TierDurable, store.KeyRecipes, &stored)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, recipeIDs(stored))
}

func TestImport_EmptyInput(t *testing.T) {
	catalog, _ := seedRecipes(t, models.Recipe{ID: 1})

	n, err := catalog.Import(context.Background(), strings.NewReader(""))

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestImport_InvalidYAML(t *testing.T) {
	catalog, _ := seedRecipes(t, models.Recipe{ID: 1})

	_, err := catalog.Import(context.Background(), strings.NewReader("title: [unterminated"))

	assert.ErrorIs(t, err, ErrDecodingRecipes)
}
