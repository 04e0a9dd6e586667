package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/recook-book/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// renderRecipeTable draws one row per recipe with a cursor marker on the
// row at idx.
func renderRecipeTable(recipes []models.Recipe, upvoted map[int64]bool, idx int) string {
	if len(recipes) == 0 {
		return "No recipes found"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-32s │ %-9s │ %5s │ %s\n", "Title", "Category", "Prep", "Upvotes"))
	b.WriteString("  " + strings.Repeat("─", 33) + "┼" + strings.Repeat("─", 11) + "┼" + strings.Repeat("─", 7) + "┼" + strings.Repeat("─", 9) + "\n")
	for i, r := range recipes {
		cursor := " "
		if i == idx {
			cursor = ">"
		}
		mark := ""
		if upvoted[r.ID] {
			mark = " ▲"
		}
		row := fmt.Sprintf("%s %-32s │ %-9s │ %4dm │ %d%s", cursor, fitText(r.Title, 32), r.Category, r.PrepTime, r.Upvotes, mark)
		if i == idx {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatRecipe renders r as plain text, as copied to the clipboard.
func formatRecipe(r models.Recipe) string {
	var b strings.Builder

	b.WriteString(r.Title)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s · %d min · by %s\n", r.Category, r.PrepTime, valueOrDash(r.Author)))

	b.WriteString("\nLeftovers:\n")
	for _, item := range r.LeftoverList() {
		b.WriteString("- " + item + "\n")
	}
	if extra := r.AdditionalList(); len(extra) > 0 {
		b.WriteString("\nAlso needed:\n")
		for _, item := range extra {
			b.WriteString("- " + item + "\n")
		}
	}

	b.WriteString("\nInstructions:\n")
	for i, step := range r.Steps() {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	if tips := strings.TrimSpace(r.Tips); tips != "" {
		b.WriteString("\nTips: " + tips + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func authLine(session models.Session) string {
	if !session.Authenticated() {
		return "Not logged in"
	}
	return "Welcome, " + session.User.FirstName
}
