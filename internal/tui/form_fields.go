package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/recook-book/internal/validators"
)

const inputWidth = 40

// formInput is a focusable text widget of a form.
type formInput interface {
	Focus() tea.Cmd
	Blur()
	Reset()
	Value() string
	SetValue(string)
	View() string
	update(tea.Msg) tea.Cmd
}

type inputField struct {
	textinput.Model
}

func newInputField(placeholder string, charLimit int) *inputField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = inputWidth
	if charLimit > 0 {
		in.CharLimit = charLimit
	}
	return &inputField{in}
}

func newPasswordField(placeholder string) *inputField {
	f := newInputField(placeholder, 256)
	f.EchoMode = textinput.EchoPassword
	f.EchoCharacter = '*'
	return f
}

func (f *inputField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return cmd
}

type areaField struct {
	textarea.Model
}

func newAreaField(placeholder string) *areaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetWidth(inputWidth + 14)
	ta.SetHeight(3)
	return &areaField{ta}
}

func (f *areaField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return cmd
}

// fieldErrors maps each failed field to its message.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field] = fe.Message
		}
	}

	return out
}

// formRow renders "label │ [widget]" followed by the field error, if any.
func formRow(b *strings.Builder, label string, labelWidth int, widget, errMsg string) {
	b.WriteString(label)
	b.WriteString(strings.Repeat(" ", max(0, labelWidth-len([]rune(label)))))
	b.WriteString(" │ ")
	b.WriteString(widget)
	b.WriteString("\n")
	if errMsg != "" {
		b.WriteString(strings.Repeat(" ", labelWidth))
		b.WriteString(" │ ")
		b.WriteString(errorStyle.Render(errMsg))
		b.WriteString("\n")
	}
}

func checkbox(checked, focused bool, label string) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	if focused {
		return selectedStyle.Render("> " + box + " " + label)
	}
	return "  " + box + " " + label
}
