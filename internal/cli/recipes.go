package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/recook-book/internal/validators"
	"github.com/MKhiriev/recook-book/models"
)

// NewRecipesCommand creates the recipes command group.
func NewRecipesCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Browse and manage the recipe catalog",
	}
	creds := loginFlags(cmd)

	cmd.AddCommand(newRecipesListCommand(opts, creds))
	cmd.AddCommand(newRecipesFeaturedCommand(opts, creds))
	cmd.AddCommand(newRecipesShowCommand(opts, creds))
	cmd.AddCommand(newRecipesAddCommand(opts, creds))
	cmd.AddCommand(newRecipesDeleteCommand(opts, creds))
	cmd.AddCommand(newRecipesUpvoteCommand(opts, creds))
	cmd.AddCommand(newRecipesExportCommand(opts, creds))
	cmd.AddCommand(newRecipesImportCommand(opts, creds))

	return cmd
}

func newRecipesListCommand(opts *RootOptions, creds *credentials) *cobra.Command {
	var search, category, sort string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes matching a search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := parseFilter(search, category, sort)
			if err != nil {
				return err
			}

			return run(cmd, opts, func(ctx context.Context, env *commandEnv) error {
				if err := env.enter(ctx, models.PageRecipes, creds); err != nil {
					return err
				}
				if err := env.app.RequestFilter(ctx, filter); err != nil {
					return err
				}

				writeRecipes(cmd.OutOrStdout(), env.renderer.listing(models.ViewFiltered))
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&search, "search", "", "Match title and ingredients")
	f.StringVar(&category, "category", "", "Only this category: breakfast | lunch | dinner | snack | dessert")
	f.StringVar(&sort, "sort", string(models.SortNewest), "Order: newest | popular | alphabetical")

	return cmd
}

func newRecipesFeaturedCommand(opts *RootOptions, creds *credentials) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Show the most upvoted recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, env *commandEnv) error {
				if err := env.enter(ctx, models.PageHome, creds); err != nil {
					return err
				}

				listing := env.renderer.listing(models.ViewFeatured)
				if n > 0 {
					recipes, err := env.svcs.Recipes.Featured(ctx, n)
					if err != nil {
						return err
					}
					listing.Recipes = recipes
				}

				writeRecipes(cmd.OutOrStdout(), listing)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 0, "Number of recipes (default from config)")

	return cmd
}

func newRecipesShowCommand(opts *RootOptions, creds *credentials) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return run(cmd, opts, func(ctx context.Context, env *commandEnv) error {
				if err := env.enter(ctx, models.PageRecipes, creds); err != nil {
					return err
				}

				recipe, err := env.requireRecipe(ctx, id)
				if err != nil {
					return err
				}

				upvoted := env.renderer.listing(models.ViewAllRecipes).Upvoted[id]
				writeRecipe(cmd.OutOrStdout(), recipe, upvoted)
				return nil
			})
		},
	}
}

func newRecipesAddCommand(opts *RootOptions, creds *credentials) *cobra.Command {
	var (
		form                                models.RecipeForm
		leftovers, additional, instructions []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit a recipe",
		Long: `Submit a recipe. --leftover, --ingredient and --step may be repeated,
one item per flag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form.LeftoverIngredients = strings.Join(leftovers, "\n")
			form.AdditionalIngredients = strings.Join(additional, "\n")
			form.Instructions = strings.Join(instructions, "\n")

			return run(cmd, opts, func(ctx context.Context, env *commandEnv) error {
				if err := env.enter(ctx, models.PageSubmit, creds); err != nil {
					return err
				}

				recipe, err := env.app.SubmitRecipe(ctx, form)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Added recipe %d: %s\n", recipe.ID, recipe.Title)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.Title, "title", "", "Recipe title")
	f.StringVar(&form.Category, "category", "", "Category: breakfast | lunch | dinner | snack | dessert")
	f.StringVar(&form.PrepTime, "prep-time", "", "Preparation time in minutes (1-300)")
	f.StringArrayVar(&leftovers, "leftover", nil, "Leftover ingredient (repeatable)")
	f.StringArrayVar(&additional, "ingredient", nil, "Additional ingredient (repeatable)")
	f.StringArrayVar(&instructions, "step", nil, "Instruction step (repeatable)")
	f.StringVar(&form.Tips, "tips", "", "Optional tips")
	f.StringVar(&form.Author, "author", "", "Author name")

	return cmd
}

func newRecipesDeleteCommand(opts *RootOptions, creds *credentials) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return run(cmd, opts, func(ctx context.Context, env *commandEnv) error {
				if err := env.enter(ctx, models.PageRecipes, creds); err != nil {
					return err
				}
				recipe, err := env.requireRecipe(ctx, id)
				if err != nil {
					return err
				}
				if err = env.app.RequestDelete(ctx, id); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %d: %s\n", recipe.ID, recipe.Title)
				return nil
			})
		},
	}
}

func newRecipesUpvoteCommand(opts *RootOptions, creds *credentials) *cobra.Command {
	return &cobra.Command{
		Use:   "upvote <id>",
		Short: "Toggle your upvote on a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return run(cmd, opts, func(ctx context.Context, env *commandEnv) error {
				if err := env.enter(ctx, models.PageRecipes, creds); err != nil {
					return err
				}
				if _, err := env.requireRecipe(ctx, id); err != nil {
					return err
				}

				upvoted, err := env.app.RequestToggleUpvote(ctx, id)
				if err != nil {
					return err
				}

				count := 0
				for _, r := range env.renderer.listing(models.ViewAllRecipes).Recipes {
					if r.ID == id {
						count = r.Upvotes
						break
					}
				}
				if upvoted {
					fmt.Fprintf(cmd.OutOrStdout(), "Upvoted recipe %d (%d upvotes)\n", id, count)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Removed upvote from recipe %d (%d upvotes)\n", id, count)
				}
				return nil
			})
		},
	}
}

func newRecipesExportCommand(opts *RootOptions, creds *credentials) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as YAML to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, env *commandEnv) error {
				if err := env.enter(ctx, models.PageRecipes, creds); err != nil {
					return err
				}
				return env.svcs.Recipes.Export(ctx, cmd.OutOrStdout())
			})
		},
	}
}

func newRecipesImportCommand(opts *RootOptions, creds *credentials) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: `Add the recipes of a YAML file ("-" reads stdin)`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, env *commandEnv) error {
				if err := env.enter(ctx, models.PageSubmit, creds); err != nil {
					return err
				}

				var in io.Reader = cmd.InOrStdin()
				if args[0] != "-" {
					f, err := os.Open(args[0])
					if err != nil {
						return fmt.Errorf("open %s: %w", args[0], err)
					}
					defer f.Close()
					in = f
				}

				n, err := env.svcs.Recipes.Import(ctx, in)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d recipes\n", n)
				return nil
			})
		},
	}
}

// requireRecipe looks id up and reports ErrRecipeNotFound for unknown ids.
func (e *commandEnv) requireRecipe(ctx context.Context, id int64) (models.Recipe, error) {
	recipe, found, err := e.svcs.Recipes.Get(ctx, id)
	if err != nil {
		return models.Recipe{}, err
	}
	if !found {
		return models.Recipe{}, fmt.Errorf("%w: %d", ErrRecipeNotFound, id)
	}
	return recipe, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: recipe id %q", ErrInvalidArg, raw)
	}
	return id, nil
}

func parseFilter(search, category, sort string) (models.RecipeFilter, error) {
	if category != "" && !validators.IsKnownCategory(category) {
		return models.RecipeFilter{}, fmt.Errorf("%w: unknown category %q", ErrInvalidArg, category)
	}

	mode := models.SortMode(sort)
	switch mode {
	case "", models.SortNewest, models.SortPopular, models.SortAlphabetical:
	default:
		return models.RecipeFilter{}, fmt.Errorf("%w: unknown sort %q", ErrInvalidArg, sort)
	}

	return models.RecipeFilter{
		Search:   strings.TrimSpace(search),
		Category: models.Category(category),
		Sort:     mode,
	}, nil
}
