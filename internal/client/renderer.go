package client

import "github.com/MKhiriev/recook-book/models"

//go:generate mockgen -source=renderer.go -destination=../mock/renderer_mock.go -package=mock

// Renderer draws whatever App tells it to. Implementations must not call
// back into App from these methods.
type Renderer interface {
	// Render replaces the listing identified by listing.View.
	Render(listing models.RecipeListing)

	// RenderAuthState shows the navigation state for session: a greeting
	// with a logout action, or the login and signup links.
	RenderAuthState(session models.Session)

	// ShowMessage displays a transient notification.
	ShowMessage(text string, severity models.Severity)
}
