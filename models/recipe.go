package models

import (
	"strings"
	"time"
)

// Category is the meal category a recipe belongs to.
type Category string

// Supported recipe categories.
const (
	Breakfast Category = "breakfast"
	Lunch     Category = "lunch"
	Dinner    Category = "dinner"
	Snack     Category = "snack"
	Dessert   Category = "dessert"
)

// Categories lists every supported category in display order.
var Categories = []Category{Breakfast, Lunch, Dinner, Snack, Dessert}

// Recipe is a leftover-friendly recipe shared by the community.
//
// Multi-line fields (ingredients and instructions) keep the newline-delimited
// text exactly as submitted; use the helper methods to get them as lists.
type Recipe struct {
	// ID is unique across the catalog.
	ID int64 `json:"id" yaml:"id"`

	// Title is the display name of the recipe.
	Title string `json:"title" yaml:"title"`

	// Category is one of [Categories].
	Category Category `json:"category" yaml:"category"`

	// PrepTime is the preparation time in minutes, 1 to 300.
	PrepTime int `json:"prepTime" yaml:"prepTime"`

	// LeftoverIngredients is the newline-delimited list of leftovers used.
	LeftoverIngredients string `json:"leftoverIngredients" yaml:"leftoverIngredients"`

	// AdditionalIngredients is the optional newline-delimited list of
	// ingredients the cook has to add.
	AdditionalIngredients string `json:"additionalIngredients" yaml:"additionalIngredients"`

	// Instructions is the newline-delimited, ordered list of steps.
	Instructions string `json:"instructions" yaml:"instructions"`

	// Tips is optional free text.
	Tips string `json:"tips" yaml:"tips"`

	// Author is free text and is not tied to an Account.
	Author string `json:"author" yaml:"author"`

	// Upvotes is never negative.
	Upvotes int `json:"upvotes" yaml:"upvotes"`

	// DateAdded is the submission moment.
	DateAdded time.Time `json:"dateAdded" yaml:"dateAdded"`
}

// LeftoverList returns the leftover ingredients one per element.
func (r Recipe) LeftoverList() []string {
	return splitLines(r.LeftoverIngredients)
}

// AdditionalList returns the additional ingredients one per element.
func (r Recipe) AdditionalList() []string {
	return splitLines(r.AdditionalIngredients)
}

// Steps returns the instructions one per element, in order.
func (r Recipe) Steps() []string {
	return splitLines(r.Instructions)
}

func splitLines(s string) []string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// SortMode selects the ordering of a filtered recipe listing.
type SortMode string

// Supported sort modes. SortNewest is the default.
const (
	SortNewest       SortMode = "newest"
	SortPopular      SortMode = "popular"
	SortAlphabetical SortMode = "alphabetical"
)

// RecipeFilter describes a search over the catalog.
type RecipeFilter struct {
	// Search is matched case-insensitively against the title, the leftover
	// ingredients and the additional ingredients. Empty matches everything.
	Search string

	// Category restricts the result to one category. Empty matches all.
	Category Category

	// Sort defaults to SortNewest when empty or unknown.
	Sort SortMode
}

// ViewKind identifies one of the derived recipe listings.
type ViewKind string

// Derived listings kept in sync with the catalog.
const (
	ViewAllRecipes ViewKind = "all"
	ViewFeatured   ViewKind = "featured"
	ViewFiltered   ViewKind = "filtered"
)

// RecipeListing is a render instruction for one derived listing.
type RecipeListing struct {
	View    ViewKind
	Recipes []Recipe

	// Upvoted holds the ids the local identity has upvoted.
	Upvoted map[int64]bool

	// Filter is the filter that produced a ViewFiltered listing.
	Filter RecipeFilter
}
