package cli

import (
	"fmt"
	"io"

	"github.com/MKhiriev/recook-book/internal/client"
	"github.com/MKhiriev/recook-book/internal/logger"
	"github.com/MKhiriev/recook-book/models"
)

type notice struct {
	Text     string
	Severity models.Severity
}

// textRenderer keeps what App renders so that a command can print it once
// the event returns. Success notices go to out; failures are reported by
// Execute through the returned error.
type textRenderer struct {
	out    io.Writer
	logger *logger.Logger

	session  models.Session
	listings map[models.ViewKind]models.RecipeListing
	notices  []notice
}

var _ client.Renderer = (*textRenderer)(nil)

func newTextRenderer(out io.Writer, log *logger.Logger) *textRenderer {
	return &textRenderer{
		out:      out,
		logger:   log,
		listings: make(map[models.ViewKind]models.RecipeListing),
	}
}

func (r *textRenderer) Render(listing models.RecipeListing) {
	r.listings[listing.View] = listing
}

func (r *textRenderer) RenderAuthState(session models.Session) {
	r.session = session
}

func (r *textRenderer) ShowMessage(text string, severity models.Severity) {
	r.notices = append(r.notices, notice{Text: text, Severity: severity})
	if severity == models.SeveritySuccess {
		fmt.Fprintln(r.out, text)
		return
	}
	r.logger.Debug().Str("severity", string(severity)).Msg(text)
}

// listing returns the last listing rendered for view.
func (r *textRenderer) listing(view models.ViewKind) models.RecipeListing {
	return r.listings[view]
}
