package service

import (
	"bytes"
	"cmp"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/recook-book/internal/logger"
	"github.com/MKhiriev/recook-book/internal/store"
	"github.com/MKhiriev/recook-book/internal/utils"
	"github.com/MKhiriev/recook-book/internal/validators"
	"github.com/MKhiriev/recook-book/models"
)

// DefaultFeaturedCount is used when neither the caller nor the options give
// a positive count.
const DefaultFeaturedCount = 3

//go:embed sample_recipes.yaml
var sampleRecipesYAML []byte

// CatalogOptions tune a RecipeCatalog.
type CatalogOptions struct {
	// Locale orders titles in alphabetical sort.
	Locale language.Tag
	// FeaturedCount is the default size of the featured listing.
	FeaturedCount int
	// SkipSampleRecipes leaves an empty collection empty.
	SkipSampleRecipes bool
	// Validator checks imported records. Defaults to the recipe form rules.
	Validator validators.Validator
}

type recipeCatalog struct {
	store store.PersistentStore
	ids   utils.IDSource
	clock utils.Clock
	opts  CatalogOptions

	// mu serializes read-modify-write of the recipes and upvote keys.
	mu sync.Mutex
	// seedChecked is set once the empty-collection check has run.
	seedChecked bool

	logger *logger.Logger
}

func NewRecipeCatalog(st store.PersistentStore, ids utils.IDSource, clock utils.Clock, opts CatalogOptions, logger *logger.Logger) RecipeCatalog {
	if opts.FeaturedCount <= 0 {
		opts.FeaturedCount = DefaultFeaturedCount
	}
	if opts.Locale == language.Und {
		opts.Locale = language.English
	}
	if opts.Validator == nil {
		opts.Validator = validators.NewFormValidator()
	}

	return &recipeCatalog{
		store:  st,
		ids:    ids,
		clock:  clock,
		opts:   opts,
		logger: logger,
	}
}

func (c *recipeCatalog) List(ctx context.Context) ([]models.Recipe, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loadRecipes(ctx)
}

func (c *recipeCatalog) Get(ctx context.Context, id int64) (models.Recipe, bool, error) {
	recipes, err := c.List(ctx)
	if err != nil {
		return models.Recipe{}, false, err
	}

	i := slices.IndexFunc(recipes, func(r models.Recipe) bool { return r.ID == id })
	if i < 0 {
		return models.Recipe{}, false, nil
	}

	return recipes[i], true, nil
}

func (c *recipeCatalog) Add(ctx context.Context, r models.Recipe) (models.Recipe, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	recipes, err := c.loadRecipes(ctx)
	if err != nil {
		return models.Recipe{}, err
	}

	r.ID = c.ids.NextID()
	r.Upvotes = 0
	r.DateAdded = c.clock.Now()
	recipes = slices.Insert(recipes, 0, r)

	if err = c.store.Write(ctx, store.TierDurable, store.KeyRecipes, recipes); err != nil {
		c.logger.Err(err).Str("func", "*recipeCatalog.Add").Msg("failed to save recipes")
		return models.Recipe{}, fmt.Errorf("save recipes: %w", err)
	}
	c.logger.Info().Int64("recipe_id", r.ID).Str("title", r.Title).Msg("recipe added")

	return r, nil
}

func (c *recipeCatalog) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	recipes, err := c.loadRecipes(ctx)
	if err != nil {
		return err
	}
	upvoted, err := c.loadUpvoted(ctx)
	if err != nil {
		return err
	}

	recipes = slices.DeleteFunc(recipes, func(r models.Recipe) bool { return r.ID == id })
	upvoted = slices.DeleteFunc(upvoted, func(v int64) bool { return v == id })

	err = c.store.WriteAll(ctx, store.TierDurable, map[string]any{
		store.KeyRecipes:          recipes,
		store.KeyUpvotedRecipeIDs: upvoted,
	})
	if err != nil {
		c.logger.Err(err).Str("func", "*recipeCatalog.Delete").Int64("recipe_id", id).Msg("failed to save recipes")
		return fmt.Errorf("save recipes: %w", err)
	}
	c.logger.Info().Int64("recipe_id", id).Msg("recipe deleted")

	return nil
}

func (c *recipeCatalog) ToggleUpvote(ctx context.Context, id int64) (models.Recipe, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	recipes, err := c.loadRecipes(ctx)
	if err != nil {
		return models.Recipe{}, false, err
	}

	i := slices.IndexFunc(recipes, func(r models.Recipe) bool { return r.ID == id })
	if i < 0 {
		return models.Recipe{}, false, nil
	}

	upvoted, err := c.loadUpvoted(ctx)
	if err != nil {
		return models.Recipe{}, false, err
	}

	nowUpvoted := !slices.Contains(upvoted, id)
	if nowUpvoted {
		upvoted = append(upvoted, id)
		recipes[i].Upvotes++
	} else {
		upvoted = slices.DeleteFunc(upvoted, func(v int64) bool { return v == id })
		recipes[i].Upvotes = max(0, recipes[i].Upvotes-1)
	}

	err = c.store.WriteAll(ctx, store.TierDurable, map[string]any{
		store.KeyRecipes:          recipes,
		store.KeyUpvotedRecipeIDs: upvoted,
	})
	if err != nil {
		c.logger.Err(err).Str("func", "*recipeCatalog.ToggleUpvote").Int64("recipe_id", id).Msg("failed to save upvote")
		return models.Recipe{}, false, fmt.Errorf("save upvote: %w", err)
	}

	return recipes[i], nowUpvoted, nil
}

func (c *recipeCatalog) UpvotedIDs(ctx context.Context) ([]int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loadUpvoted(ctx)
}

func (c *recipeCatalog) IsUpvoted(ctx context.Context, id int64) (bool, error) {
	ids, err := c.UpvotedIDs(ctx)
	if err != nil {
		return false, err
	}

	return slices.Contains(ids, id), nil
}

func (c *recipeCatalog) Featured(ctx context.Context, n int) ([]models.Recipe, error) {
	if n <= 0 {
		n = c.opts.FeaturedCount
	}

	recipes, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(recipes, byUpvotesDesc)

	return recipes[:min(n, len(recipes))], nil
}

func (c *recipeCatalog) Filter(ctx context.Context, f models.RecipeFilter) ([]models.Recipe, error) {
	recipes, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(f.Search)
	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if f.Category != "" && r.Category != f.Category {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		out = append(out, r)
	}

	switch f.Sort {
	case models.SortPopular:
		slices.SortStableFunc(out, byUpvotesDesc)
	case models.SortAlphabetical:
		// collators are not safe for concurrent use
		col := collate.New(c.opts.Locale)
		slices.SortStableFunc(out, func(a, b models.Recipe) int {
			return col.CompareString(a.Title, b.Title)
		})
	default:
		slices.SortStableFunc(out, func(a, b models.Recipe) int {
			return b.DateAdded.Compare(a.DateAdded)
		})
	}

	return out, nil
}

func (c *recipeCatalog) Export(ctx context.Context, w io.Writer) error {
	recipes, err := c.List(ctx)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(recipes); err != nil {
		return fmt.Errorf("encode recipes: %w", err)
	}

	return enc.Close()
}

func (c *recipeCatalog) Import(ctx context.Context, r io.Reader) (int, error) {
	var incoming []models.Recipe
	if err := yaml.NewDecoder(r).Decode(&incoming); err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w: %w", ErrDecodingRecipes, err)
	}
	if len(incoming) == 0 {
		return 0, nil
	}
	if err := c.validateBatch(ctx, incoming); err != nil {
		c.logger.Warn().Err(err).Str("func", "*recipeCatalog.Import").Msg("rejected recipe import")
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	recipes, err := c.loadRecipes(ctx)
	if err != nil {
		return 0, err
	}

	taken := make(map[int64]bool, len(recipes)+len(incoming))
	for _, existing := range recipes {
		taken[existing.ID] = true
	}
	for i := range incoming {
		if incoming[i].ID <= 0 || taken[incoming[i].ID] {
			incoming[i].ID = c.ids.NextID()
		}
		taken[incoming[i].ID] = true
		incoming[i].Upvotes = max(0, incoming[i].Upvotes)
		if incoming[i].DateAdded.IsZero() {
			incoming[i].DateAdded = c.clock.Now()
		}
	}

	recipes = append(incoming, recipes...)
	if err = c.store.Write(ctx, store.TierDurable, store.KeyRecipes, recipes); err != nil {
		c.logger.Err(err).Str("func", "*recipeCatalog.Import").Msg("failed to save recipes")
		return 0, fmt.Errorf("save recipes: %w", err)
	}
	c.logger.Info().Int("imported", len(incoming)).Msg("recipes imported")

	return len(incoming), nil
}

// validateBatch checks every record against the recipe form rules. Any
// failure rejects the whole batch; field names carry the record index.
func (c *recipeCatalog) validateBatch(ctx context.Context, incoming []models.Recipe) error {
	var errs validators.ValidationErrors
	for i := range incoming {
		err := c.opts.Validator.Validate(ctx, incoming[i])
		if err == nil {
			continue
		}

		var verrs validators.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate recipe %d: %w", i+1, err)
		}
		for _, fe := range verrs {
			errs = append(errs, validators.FieldError{
				Field:   fmt.Sprintf("recipes[%d].%s", i, fe.Field),
				Err:     fe.Err,
				Message: fmt.Sprintf("Recipe %d: %s", i+1, fe.Message),
			})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// SeedSamples stores the sample recipes when the collection is empty and
// seeding is enabled. It reports whether anything was stored.
func (c *recipeCatalog) SeedSamples(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	recipes, err := c.readRecipes(ctx)
	if err != nil {
		return false, err
	}
	c.seedChecked = true

	seeded, err := c.seedIfEmpty(ctx, recipes)
	if err != nil {
		return false, err
	}

	return seeded != nil, nil
}

// loadRecipes reads the collection. The first load of an empty collection
// stores the sample recipes unless that is disabled. Callers hold c.mu.
func (c *recipeCatalog) loadRecipes(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := c.readRecipes(ctx)
	if err != nil {
		return nil, err
	}

	if c.seedChecked {
		return recipes, nil
	}
	c.seedChecked = true

	seeded, err := c.seedIfEmpty(ctx, recipes)
	if err != nil {
		return nil, err
	}
	if seeded != nil {
		return seeded, nil
	}

	return recipes, nil
}

func (c *recipeCatalog) readRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	found, err := c.store.Read(ctx, store.TierDurable, store.KeyRecipes, &recipes)
	if err != nil {
		c.logger.Err(err).Str("func", "*recipeCatalog.readRecipes").Msg("failed to read recipes")
		return nil, fmt.Errorf("read recipes: %w", err)
	}
	if !found {
		return nil, nil
	}

	return recipes, nil
}

// seedIfEmpty returns the stored samples, or nil when recipes is not empty
// or seeding is disabled. Callers hold c.mu.
func (c *recipeCatalog) seedIfEmpty(ctx context.Context, recipes []models.Recipe) ([]models.Recipe, error) {
	if len(recipes) > 0 || c.opts.SkipSampleRecipes {
		return nil, nil
	}

	samples, err := SampleRecipes()
	if err != nil {
		return nil, err
	}
	if err = c.store.Write(ctx, store.TierDurable, store.KeyRecipes, samples); err != nil {
		c.logger.Err(err).Str("func", "*recipeCatalog.seedIfEmpty").Msg("failed to seed sample recipes")
		return nil, fmt.Errorf("seed sample recipes: %w", err)
	}
	c.logger.Info().Int("count", len(samples)).Msg("sample recipes stored")

	return samples, nil
}

// loadUpvoted reads the upvote record. Callers hold c.mu.
func (c *recipeCatalog) loadUpvoted(ctx context.Context) ([]int64, error) {
	var ids []int64
	found, err := c.store.Read(ctx, store.TierDurable, store.KeyUpvotedRecipeIDs, &ids)
	if err != nil {
		c.logger.Err(err).Str("func", "*recipeCatalog.loadUpvoted").Msg("failed to read upvotes")
		return nil, fmt.Errorf("read upvotes: %w", err)
	}
	if !found {
		return []int64{}, nil
	}

	// each id at most once, first occurrence wins
	seen := make(map[int64]bool, len(ids))
	return slices.DeleteFunc(ids, func(id int64) bool {
		dup := seen[id]
		seen[id] = true
		return dup
	}), nil
}

// SampleRecipes returns the bundled recipes an empty catalog starts with.
func SampleRecipes() ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := yaml.NewDecoder(bytes.NewReader(sampleRecipesYAML)).Decode(&recipes); err != nil {
		return nil, fmt.Errorf("%w: sample recipes: %w", ErrDecodingRecipes, err)
	}

	return recipes, nil
}

func byUpvotesDesc(a, b models.Recipe) int {
	return cmp.Compare(b.Upvotes, a.Upvotes)
}

func matchesSearch(r models.Recipe, lowered string) bool {
	return strings.Contains(strings.ToLower(r.Title), lowered) ||
		strings.Contains(strings.ToLower(r.LeftoverIngredients), lowered) ||
		strings.Contains(strings.ToLower(r.AdditionalIngredients), lowered)
}
