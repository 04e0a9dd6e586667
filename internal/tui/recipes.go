package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/recook-book/internal/client"
	"github.com/MKhiriev/recook-book/models"
)

var (
	categoryCycle = append([]models.Category{""}, models.Categories...)
	sortCycle     = []models.SortMode{models.SortNewest, models.SortPopular, models.SortAlphabetical}
)

// RecipesModel shows the filtered listing with its search, category and
// sort controls. Every change is sent as a RequestFilter event.
type RecipesModel struct {
	ctx   context.Context
	app   *client.App
	state *viewState

	search    *inputField
	searching bool
	filter    models.RecipeFilter
	idx       int
}

func NewRecipesModel(ctx context.Context, app *client.App, state *viewState) *RecipesModel {
	return &RecipesModel{
		ctx:    ctx,
		app:    app,
		state:  state,
		search: newInputField("search title or ingredients", 64),
	}
}

func (m *RecipesModel) Init() tea.Cmd {
	m.filter = m.app.LastFilter()
	if !slices.Contains(sortCycle, m.filter.Sort) {
		m.filter.Sort = models.SortNewest
	}
	m.search.SetValue(m.filter.Search)
	m.search.Blur()
	m.searching = false
	m.idx = 0
	return nil
}

func (m *RecipesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searching {
			return m, m.search.update(msg)
		}
		return m, nil
	}

	if m.searching {
		switch {
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.esc):
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		cmd := m.search.update(msg)
		m.filter.Search = m.search.Value()
		m.idx = 0
		return m, tea.Batch(cmd, m.cmdFilter())
	}

	recipes := m.state.recipes(models.ViewFiltered)
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(recipes)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.idx < len(recipes) {
			id := recipes[m.idx].ID
			return m, func() tea.Msg { return showDetailMsg{id: id} }
		}
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(keyMsg, keys.category):
		m.filter.Category = next(categoryCycle, m.filter.Category)
		m.idx = 0
		return m, m.cmdFilter()
	case key.Matches(keyMsg, keys.sort):
		m.filter.Sort = next(sortCycle, m.filter.Sort)
		m.idx = 0
		return m, m.cmdFilter()
	case key.Matches(keyMsg, keys.newItem):
		return m, navigate(models.PageSubmit)
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(models.PageSplash)
	}

	return m, nil
}

func (m *RecipesModel) View() string {
	listing := m.state.listings[models.ViewFiltered]
	m.idx = min(m.idx, max(0, len(listing.Recipes)-1))

	category := "all"
	if m.filter.Category != "" {
		category = string(m.filter.Category)
	}
	var b strings.Builder
	b.WriteString("Search   │ [" + m.search.View() + "]\n")
	b.WriteString(fmt.Sprintf("Category │ %s\n", category))
	b.WriteString(fmt.Sprintf("Sort     │ %s\n", m.filter.Sort))
	b.WriteString(fmt.Sprintf("Found    │ %d\n\n", len(listing.Recipes)))
	b.WriteString(renderRecipeTable(listing.Recipes, listing.Upvoted, m.idx))

	hotKeys := "enter: open │ /: search │ c: category │ s: sort │ n: share │ esc: menu"
	if m.searching {
		hotKeys = "type to search │ enter / esc: done"
	}

	return renderPage("ALL RECIPES", b.String(), hotKeys)
}

func (m *RecipesModel) cmdFilter() tea.Cmd {
	ctx, app, filter := m.ctx, m.app, m.filter

	return func() tea.Msg {
		// the filtered listing and any error arrive through the renderer
		_ = app.RequestFilter(ctx, filter)
		return nil
	}
}

// next returns the element after cur in cycle, wrapping around.
func next[T comparable](cycle []T, cur T) T {
	i := slices.Index(cycle, cur)
	return cycle[(i+1)%len(cycle)]
}
