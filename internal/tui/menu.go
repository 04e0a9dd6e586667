package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/recook-book/models"
)

type menuItem struct {
	label string
	cmd   tea.Cmd
}

// MenuModel is the splash page. Its entries depend on whether someone is
// logged in.
type MenuModel struct {
	state *viewState
	idx   int
}

func NewMenuModel(state *viewState) *MenuModel {
	return &MenuModel{state: state}
}

func (m *MenuModel) Init() tea.Cmd {
	m.idx = 0
	return nil
}

func (m *MenuModel) items() []menuItem {
	common := []menuItem{
		{"Featured recipes", navigate(models.PageHome)},
		{"Browse recipes", navigate(models.PageRecipes)},
		{"Share a recipe", navigate(models.PageSubmit)},
	}

	if m.state.session.Authenticated() {
		return append(common,
			menuItem{"Log out", func() tea.Msg { return requestLogoutMsg{} }},
			menuItem{"Quit", tea.Quit},
		)
	}

	return append([]menuItem{
		{"Log in", navigate(models.PageLogin)},
		{"Sign up", navigate(models.PageSignup)},
	}, append(common, menuItem{"Quit", tea.Quit})...)
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.items()
	m.idx = min(m.idx, len(items)-1)

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, items[m.idx].cmd
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	items := m.items()

	idColWidth := max(lipgloss.Width("#"), lipgloss.Width(fmt.Sprintf("%d", len(items)))) + 2
	actionColWidth := lipgloss.Width("Action")
	for _, item := range items {
		actionColWidth = max(actionColWidth, lipgloss.Width(item.label))
	}

	b.WriteString("Turn your leftovers into delicious meals.\n\n")
	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "#", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.label))
	}

	return renderPage("RECOOK BOOK", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version │ q: quit")
}
