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
	signupFirstName = iota
	signupLastName
	signupEmail
	signupPassword
	signupConfirm
	signupTerms
	signupNewsletter
	signupFocusCount
)

var signupLabels = []struct {
	label string
	field string
}{
	{"First name", validators.FieldFirstName},
	{"Last name", validators.FieldLastName},
	{"Email", validators.FieldEmail},
	{"Password", validators.FieldPassword},
	{"Confirm", validators.FieldConfirmPassword},
}

// SignupModel renders the signup form: five text inputs and the terms and
// newsletter checkboxes. A successful signup continues to the login page.
type SignupModel struct {
	ctx context.Context
	app *client.App

	inputs     []formInput
	terms      bool
	newsletter bool
	focus      int
	submitting bool
	errs       map[string]string
}

func NewSignupModel(ctx context.Context, app *client.App) *SignupModel {
	return &SignupModel{
		ctx: ctx,
		app: app,
		inputs: []formInput{
			newInputField("first name", 64),
			newInputField("last name", 64),
			newInputField("you@example.com", 254),
			newPasswordField("at least 8 characters"),
			newPasswordField("repeat password"),
		},
	}
}

func (m *SignupModel) Init() tea.Cmd {
	for _, in := range m.inputs {
		in.Reset()
		in.Blur()
	}
	m.terms, m.newsletter = false, false
	m.focus = signupFirstName
	m.submitting = false
	m.errs = nil
	return m.inputs[signupFirstName].Focus()
}

// Update handles:
//   - signupDoneMsg: shows field errors or continues to login.
//   - esc: back to the splash page.
//   - tab / shift+tab: moves focus over inputs and checkboxes.
//   - space on a checkbox: toggles it.
//   - enter: submits the form.
func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(signupDoneMsg); ok {
		m.submitting = false
		if done.err != nil {
			m.errs = fieldErrors(done.err)
			return m, nil
		}
		return m, redirectCmd(m.ctx, m.app, models.PageLogin)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, navigate(models.PageSplash)
		case "tab", "down":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		case " ":
			switch m.focus {
			case signupTerms:
				m.terms = !m.terms
				return m, nil
			case signupNewsletter:
				m.newsletter = !m.newsletter
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			return m, m.cmdSignup(m.form())
		}
	}

	if m.focus < len(m.inputs) {
		return m, m.inputs[m.focus].update(msg)
	}
	return m, nil
}

func (m *SignupModel) View() string {
	var b strings.Builder

	for i, row := range signupLabels {
		formRow(&b, row.label, 10, "["+m.inputs[i].View()+"]", m.errs[row.field])
		if i == signupPassword {
			if pw := m.inputs[signupPassword].Value(); pw != "" {
				formRow(&b, "", 10, helpStyle.Render("strength: "+validators.PasswordStrength(pw).String()), "")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(checkbox(m.terms, m.focus == signupTerms, "I agree to the terms and conditions"))
	b.WriteString("\n")
	if msg := m.errs[validators.FieldTerms]; msg != "" {
		b.WriteString("    " + errorStyle.Render(msg) + "\n")
	}
	b.WriteString(checkbox(m.newsletter, m.focus == signupNewsletter, "Send me the newsletter"))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next │ space: toggle │ enter: sign up")
}

func (m *SignupModel) form() models.SignupForm {
	return models.SignupForm{
		FirstName:       m.inputs[signupFirstName].Value(),
		LastName:        m.inputs[signupLastName].Value(),
		Email:           strings.TrimSpace(m.inputs[signupEmail].Value()),
		Password:        m.inputs[signupPassword].Value(),
		ConfirmPassword: m.inputs[signupConfirm].Value(),
		TermsAgreed:     m.terms,
		Newsletter:      m.newsletter,
	}
}

func (m *SignupModel) cmdSignup(form models.SignupForm) tea.Cmd {
	ctx, app := m.ctx, m.app

	return func() tea.Msg {
		_, err := app.SubmitSignup(ctx, form)
		return signupDoneMsg{err: err}
	}
}

func (m *SignupModel) moveFocus(step int) tea.Cmd {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + step + signupFocusCount) % signupFocusCount
	if m.focus < len(m.inputs) {
		return m.inputs[m.focus].Focus()
	}
	return nil
}
