package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/recook-book/internal/client"
)

var (
	defaultClipboardWrite = clipboard.WriteAll
	// clipboardWrite is replaced in tests.
	clipboardWrite = defaultClipboardWrite
)

// DetailModel shows one recipe on top of the page it was opened from.
type DetailModel struct {
	ctx   context.Context
	app   *client.App
	state *viewState

	id          int64
	showConfirm bool
	deleting    bool
}

func NewDetailModel(ctx context.Context, app *client.App, state *viewState) *DetailModel {
	return &DetailModel{ctx: ctx, app: app, state: state}
}

func (m *DetailModel) open(id int64) {
	m.id = id
	m.showConfirm = false
	m.deleting = false
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recipeDeletedMsg:
		m.deleting = false
		if msg.err != nil {
			return m, nil
		}
		return m, closeDetail
	case upvoteDoneMsg:
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m *DetailModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			m.deleting = true
			return m, m.cmdDelete()
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
		}
		return m, nil
	}

	recipe, ok := m.state.recipe(m.id)
	if !ok {
		if key.Matches(msg, keys.esc) {
			return m, closeDetail
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.upvote):
		return m, m.cmdToggleUpvote()
	case key.Matches(msg, keys.delete):
		m.showConfirm = true
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(formatRecipe(recipe))
	case key.Matches(msg, keys.esc):
		return m, closeDetail
	}

	return m, nil
}

func (m *DetailModel) View() string {
	recipe, ok := m.state.recipe(m.id)
	if !ok {
		return renderPage("RECIPE", "This recipe no longer exists.", "esc: back")
	}

	var b strings.Builder
	b.WriteString(formatRecipe(recipe))
	b.WriteString("\n\n")

	upvote := "u: upvote"
	if m.state.upvoted(recipe.ID) {
		upvote = "u: remove upvote"
	}
	b.WriteString(fmt.Sprintf("▲ %d upvotes · added %s", recipe.Upvotes, recipe.DateAdded.Format("Jan 2, 2006")))
	if m.deleting {
		b.WriteString("\n\nDeleting...")
	}

	out := renderPage(strings.ToUpper(recipe.Title), b.String(), upvote+" │ c: copy │ d: delete │ esc: back")
	if m.showConfirm {
		out += "\n\n" + confirmModel{title: recipe.Title}.View()
	}

	return out
}

func (m *DetailModel) cmdDelete() tea.Cmd {
	ctx, app, id := m.ctx, m.app, m.id

	return func() tea.Msg {
		return recipeDeletedMsg{err: app.RequestDelete(ctx, id)}
	}
}

func (m *DetailModel) cmdToggleUpvote() tea.Cmd {
	ctx, app, id := m.ctx, m.app, m.id

	return func() tea.Msg {
		upvoted, err := app.RequestToggleUpvote(ctx, id)
		return upvoteDoneMsg{upvoted: upvoted, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func closeDetail() tea.Msg {
	return closeDetailMsg{}
}
