package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/recook-book/models"
)

// DefaultBridgeBuffer is large enough for the renders of one event.
const DefaultBridgeBuffer = 64

// Bridge is a client.Renderer that turns render calls into Bubble Tea
// messages. App calls it from command goroutines; the root model drains it
// with Listen. After Close, render calls are dropped instead of blocking.
type Bridge struct {
	ch   chan tea.Msg
	done chan struct{}
	once sync.Once
}

func NewBridge(size int) *Bridge {
	if size <= 0 {
		size = DefaultBridgeBuffer
	}
	return &Bridge{
		ch:   make(chan tea.Msg, size),
		done: make(chan struct{}),
	}
}

func (b *Bridge) Render(listing models.RecipeListing) {
	b.send(listingMsg{listing: listing})
}

func (b *Bridge) RenderAuthState(session models.Session) {
	b.send(authStateMsg{session: session})
}

func (b *Bridge) ShowMessage(text string, severity models.Severity) {
	b.send(noticeMsg{text: text, severity: severity})
}

// Close releases senders blocked on a full buffer. Safe to call twice.
func (b *Bridge) Close() {
	b.once.Do(func() { close(b.done) })
}

func (b *Bridge) send(msg tea.Msg) {
	select {
	case b.ch <- msg:
	case <-b.done:
	}
}

// Listen returns a command that blocks until the next render call. The root
// model issues it again after every bridge message. A closed bridge yields
// nil.
func (b *Bridge) Listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.ch:
			return msg
		case <-b.done:
			return nil
		}
	}
}
