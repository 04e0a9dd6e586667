package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/recook-book/models"
)

const (
	titleWidth = 28
	emailWidth = 28
	nameWidth  = 20

	dateLayout = "2006-01-02"
)

// writeRecipes prints listing as a table. Recipes upvoted by the local
// identity are marked with "*".
func writeRecipes(w io.Writer, listing models.RecipeListing) {
	if len(listing.Recipes) == 0 {
		fmt.Fprintln(w, "No recipes found.")
		return
	}

	fmt.Fprintf(w, "%1s %-6s %-*s %-10s %7s %7s  %s\n", "", "ID", titleWidth, "TITLE", "CATEGORY", "PREP", "UPVOTES", "AUTHOR")
	for _, r := range listing.Recipes {
		mark := ""
		if listing.Upvoted[r.ID] {
			mark = "*"
		}
		fmt.Fprintf(w, "%1s %-6d %-*s %-10s %7s %7d  %s\n",
			mark, r.ID, titleWidth, truncate(r.Title, titleWidth), r.Category,
			fmt.Sprintf("%d min", r.PrepTime), r.Upvotes, r.Author)
	}
}

// writeRecipe prints every field of r.
func writeRecipe(w io.Writer, r models.Recipe, upvoted bool) {
	fmt.Fprintf(w, "%s\n", r.Title)
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", utf8.RuneCountInString(r.Title)))

	votes := fmt.Sprintf("%d", r.Upvotes)
	if upvoted {
		votes += " (upvoted)"
	}
	fmt.Fprintf(w, "Category:  %s\n", r.Category)
	fmt.Fprintf(w, "Prep time: %d min\n", r.PrepTime)
	fmt.Fprintf(w, "Author:    %s\n", r.Author)
	fmt.Fprintf(w, "Added:     %s\n", r.DateAdded.Format(dateLayout))
	fmt.Fprintf(w, "Upvotes:   %s\n", votes)

	writeList(w, "Leftover ingredients", r.LeftoverList(), "- ")
	if extra := r.AdditionalList(); len(extra) > 0 {
		writeList(w, "Additional ingredients", extra, "- ")
	}
	writeList(w, "Instructions", r.Steps(), "")
	if tips := strings.TrimSpace(r.Tips); tips != "" {
		fmt.Fprintf(w, "\nTips: %s\n", tips)
	}
}

func writeList(w io.Writer, title string, items []string, bullet string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  %s%s\n", bullet, item)
	}
}

// writeAccounts prints accounts without their passwords.
func writeAccounts(w io.Writer, accounts []models.Account) {
	fmt.Fprintf(w, "%-6s %-*s %-*s %-10s %s\n", "ID", emailWidth, "EMAIL", nameWidth, "NAME", "NEWSLETTER", "CREATED")
	for _, acc := range accounts {
		newsletter := "no"
		if acc.Newsletter {
			newsletter = "yes"
		}
		fmt.Fprintf(w, "%-6d %-*s %-*s %-10s %s\n",
			acc.ID, emailWidth, truncate(acc.Email, emailWidth), nameWidth, truncate(acc.FullName(), nameWidth),
			newsletter, acc.CreatedAt.Format(dateLayout))
	}
}

// truncate shortens s to at most n runes, marking the cut with "…".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}
