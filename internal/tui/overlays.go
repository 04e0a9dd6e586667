package tui

import "github.com/MKhiriev/recook-book/internal/client"

type confirmModel struct {
	title string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.title + "\"?\n\n"
	content += client.MsgConfirmDelete + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}
