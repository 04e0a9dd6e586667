package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/recook-book/internal/client"
	"github.com/MKhiriev/recook-book/internal/validators"
	"github.com/MKhiriev/recook-book/models"
)

const (
	submitTitle = iota
	submitCategory
	submitPrepTime
	submitLeftovers
	submitAdditional
	submitInstructions
	submitTips
	submitAuthor
	submitFocusCount
)

// submitInputs maps focus positions to text inputs. The category is a
// selector and has no input.
var submitInputs = map[int]struct {
	label string
	field string
}{
	submitTitle:        {"Title", validators.FieldTitle},
	submitPrepTime:     {"Prep (min)", validators.FieldPrepTime},
	submitLeftovers:    {"Leftovers", validators.FieldLeftoverIngredients},
	submitAdditional:   {"Also needed", ""},
	submitInstructions: {"Steps", validators.FieldInstructions},
	submitTips:         {"Tips", ""},
	submitAuthor:       {"Author", validators.FieldAuthor},
}

// SubmitModel is the recipe form. Multi-line fields take one ingredient or
// step per line, so enter inserts a newline and ctrl+s submits.
type SubmitModel struct {
	ctx context.Context
	app *client.App

	inputs     map[int]formInput
	category   int
	focus      int
	submitting bool
	errs       map[string]string
}

func NewSubmitModel(ctx context.Context, app *client.App) *SubmitModel {
	return &SubmitModel{
		ctx: ctx,
		app: app,
		inputs: map[int]formInput{
			submitTitle:        newInputField("e.g. Leftover Rice Fried Rice", 120),
			submitPrepTime:     newInputField("1-300", 3),
			submitLeftovers:    newAreaField("one leftover per line"),
			submitAdditional:   newAreaField("optional, one per line"),
			submitInstructions: newAreaField("one step per line"),
			submitTips:         newInputField("optional", 240),
			submitAuthor:       newInputField("your name", 64),
		},
	}
}

func (m *SubmitModel) Init() tea.Cmd {
	m.reset()
	return m.inputs[submitTitle].Focus()
}

func (m *SubmitModel) reset() {
	for _, in := range m.inputs {
		in.Reset()
		in.Blur()
	}
	m.category = 0
	m.focus = submitTitle
	m.submitting = false
	m.errs = nil
}

// Update handles:
//   - recipeSubmittedMsg: shows field errors or clears the form.
//   - esc: back to the splash page.
//   - tab / shift+tab: moves focus.
//   - left / right on the category: cycles categories.
//   - ctrl+s: submits the form.
func (m *SubmitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(recipeSubmittedMsg); ok {
		m.submitting = false
		if done.err != nil {
			m.errs = fieldErrors(done.err)
			return m, nil
		}
		return m, m.Init()
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, navigate(models.PageSplash)
		case "tab":
			return m, m.moveFocus(1)
		case "shift+tab":
			return m, m.moveFocus(-1)
		case "ctrl+s":
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			return m, m.cmdSubmit(m.form())
		case "left", "right":
			if m.focus == submitCategory {
				step := 1
				if keyMsg.String() == "left" {
					step = -1
				}
				m.category = (m.category + step + len(categoryCycle)) % len(categoryCycle)
				return m, nil
			}
		}
	}

	if in, ok := m.inputs[m.focus]; ok {
		return m, in.update(msg)
	}
	return m, nil
}

func (m *SubmitModel) View() string {
	var b strings.Builder

	for i := range submitFocusCount {
		if i == submitCategory {
			category := "< choose >"
			if c := categoryCycle[m.category]; c != "" {
				category = "< " + string(c) + " >"
			}
			if m.focus == submitCategory {
				category = selectedStyle.Render(category)
			}
			formRow(&b, "Category", 11, category, m.errs[validators.FieldCategory])
			continue
		}

		row := submitInputs[i]
		widget := m.inputs[i].View()
		if _, single := m.inputs[i].(*inputField); single {
			widget = "[" + widget + "]"
		}
		formRow(&b, row.label, 11, widget, m.errs[row.field])
	}

	if m.submitting {
		b.WriteString("\n[Submitting...]\n")
	} else {
		b.WriteString("\n[Share recipe]\n")
	}

	return renderPage("SHARE A RECIPE", strings.TrimRight(b.String(), "\n"), "tab: next field │ ←/→: category │ ctrl+s: submit │ esc: back")
}

func (m *SubmitModel) form() models.RecipeForm {
	return models.RecipeForm{
		Title:                 m.inputs[submitTitle].Value(),
		Category:              string(categoryCycle[m.category]),
		PrepTime:              m.inputs[submitPrepTime].Value(),
		LeftoverIngredients:   m.inputs[submitLeftovers].Value(),
		AdditionalIngredients: m.inputs[submitAdditional].Value(),
		Instructions:          m.inputs[submitInstructions].Value(),
		Tips:                  m.inputs[submitTips].Value(),
		Author:                m.inputs[submitAuthor].Value(),
	}
}

func (m *SubmitModel) cmdSubmit(form models.RecipeForm) tea.Cmd {
	ctx, app := m.ctx, m.app

	return func() tea.Msg {
		_, err := app.SubmitRecipe(ctx, form)
		return recipeSubmittedMsg{err: err}
	}
}

func (m *SubmitModel) moveFocus(step int) tea.Cmd {
	if in, ok := m.inputs[m.focus]; ok {
		in.Blur()
	}
	m.focus = (m.focus + step + submitFocusCount) % submitFocusCount
	if in, ok := m.inputs[m.focus]; ok {
		return in.Focus()
	}
	return nil
}
