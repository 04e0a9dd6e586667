package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/recook-book/models"
)

// HomeModel shows the featured listing.
type HomeModel struct {
	state *viewState
	idx   int
}

func NewHomeModel(state *viewState) *HomeModel {
	return &HomeModel{state: state}
}

func (m *HomeModel) Init() tea.Cmd {
	m.idx = 0
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	featured := m.state.recipes(models.ViewFeatured)
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(featured)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.idx < len(featured) {
			id := featured[m.idx].ID
			return m, func() tea.Msg { return showDetailMsg{id: id} }
		}
	case key.Matches(keyMsg, keys.all):
		return m, navigate(models.PageRecipes)
	case key.Matches(keyMsg, keys.newItem):
		return m, navigate(models.PageSubmit)
	case key.Matches(keyMsg, keys.logout):
		return m, func() tea.Msg { return requestLogoutMsg{} }
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(models.PageSplash)
	}

	return m, nil
}

func (m *HomeModel) View() string {
	listing := m.state.listings[models.ViewFeatured]
	m.idx = min(m.idx, max(0, len(listing.Recipes)-1))

	var b strings.Builder
	b.WriteString("Most upvoted recipes from the community\n\n")
	b.WriteString(renderRecipeTable(listing.Recipes, listing.Upvoted, m.idx))

	return renderPage("FEATURED", b.String(), "enter: open │ a: all recipes │ n: share a recipe │ o: log out │ esc: menu")
}
