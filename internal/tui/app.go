package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/recook-book/internal/client"
	"github.com/MKhiriev/recook-book/models"
)

const statusTTL = 3 * time.Second

// RootModel is the TUI router:
// 1) loads pages through client.App so every page load is gated
// 2) drains the renderer bridge into the shared view state
// 3) handles global keys, notices and the build info window
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx    context.Context
	app    *client.App
	bridge *Bridge
	state  *viewState

	pages   map[models.Page]tea.Model
	current models.Page

	detail     *DetailModel
	showDetail bool

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	status         string
	statusSeverity models.Severity
	statusSeq      int

	showError    bool
	errorOverlay errorOverlayModel

	quitByUser bool
}

// NewRootModel builds every page. Nothing is shown until the splash page
// has been loaded by Init.
func NewRootModel(ctx context.Context, app *client.App, bridge *Bridge, buildInfo models.AppBuildInfo) *RootModel {
	state := newViewState()

	return &RootModel{
		ctx:    ctx,
		app:    app,
		bridge: bridge,
		state:  state,
		pages: map[models.Page]tea.Model{
			models.PageSplash:  NewMenuModel(state),
			models.PageLogin:   NewLoginModel(ctx, app),
			models.PageSignup:  NewSignupModel(ctx, app),
			models.PageHome:    NewHomeModel(state),
			models.PageRecipes: NewRecipesModel(ctx, app, state),
			models.PageSubmit:  NewSubmitModel(ctx, app),
		},
		detail:    NewDetailModel(ctx, app, state),
		buildInfo: buildInfo,
	}
}

func (r *RootModel) Init() tea.Cmd {
	return tea.Batch(r.bridge.Listen(), r.cmdLoadPage(models.PageSplash))
}

func (r *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return r.updateKey(keyMsg)
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r, r.cmdLoadPage(msg.Page)

	case pageLoadedMsg:
		if msg.err != nil {
			return r, nil
		}
		if !msg.decision.Granted() {
			return r, r.cmdRedirect(msg.decision.Target)
		}
		r.current = msg.page
		r.showDetail = false
		r.showBuildInfo = false
		return r, r.pages[msg.page].Init()

	case listingMsg, authStateMsg:
		r.state.apply(msg)
		return r, r.bridge.Listen()

	case noticeMsg:
		if msg.severity == models.SeverityError {
			r.showError = true
			r.errorOverlay.message = msg.text
			return r, r.bridge.Listen()
		}
		return r, tea.Batch(r.bridge.Listen(), r.setStatus(msg.text, msg.severity))

	case clearStatusMsg:
		if msg.seq == r.statusSeq {
			r.status = ""
		}
		return r, nil

	case requestLogoutMsg:
		return r, r.cmdLogout()

	case logoutDoneMsg:
		if msg.err != nil {
			return r, nil
		}
		return r, r.cmdRedirect(models.PageLogin)

	case showDetailMsg:
		r.detail.open(msg.id)
		r.showDetail = true
		return r, nil

	case closeDetailMsg:
		r.showDetail = false
		return r, nil

	case copiedMsg:
		if msg.err != nil {
			r.showError = true
			r.errorOverlay.message = "Copy failed: " + msg.err.Error()
			return r, nil
		}
		return r, r.setStatus("Copied to clipboard", models.SeveritySuccess)
	}

	return r.delegate(msg)
}

func (r *RootModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		r.quitByUser = true
		return r, tea.Quit
	case "enter", "esc":
		if r.showError {
			r.showError = false
			r.errorOverlay.message = ""
			return r, nil
		}
		if msg.String() == "esc" && r.showBuildInfo {
			r.showBuildInfo = false
			return r, nil
		}
	case "v":
		if r.current == models.PageSplash && !r.showDetail {
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		}
	}

	if r.showError || r.showBuildInfo {
		return r, nil
	}

	return r.delegate(msg)
}

func (r *RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if r.showDetail {
		_, cmd := r.detail.Update(msg)
		return r, cmd
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}
	_, cmd := page.Update(msg)
	return r, cmd
}

func (r *RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	var body string
	switch {
	case r.showDetail:
		body = r.detail.View()
	case r.pages[r.current] != nil:
		body = r.pages[r.current].View()
	default:
		body = renderPage("RECOOK BOOK", "Loading...", "")
	}

	header := helpStyle.Render("RECOOK BOOK · " + authLine(r.state.session))
	if r.status != "" {
		style := helpStyle
		if r.statusSeverity == models.SeveritySuccess {
			style = successStyle
		}
		header += "\n" + style.Render(r.status)
	}
	out := header + "\n\n" + body

	if r.showError {
		out += "\n\n" + r.errorOverlay.View()
	}

	return appStyle.Render(out)
}

// Current reports the page being shown.
func (r *RootModel) Current() models.Page {
	return r.current
}

func (r *RootModel) setStatus(text string, severity models.Severity) tea.Cmd {
	r.statusSeq++
	r.status = text
	r.statusSeverity = severity

	seq := r.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (r *RootModel) cmdLoadPage(page models.Page) tea.Cmd {
	ctx, app := r.ctx, r.app

	return func() tea.Msg {
		decision, err := app.LoadPage(ctx, page)
		return pageLoadedMsg{page: page, decision: decision, err: err}
	}
}

func (r *RootModel) cmdRedirect(page models.Page) tea.Cmd {
	return redirectCmd(r.ctx, r.app, page)
}

func (r *RootModel) cmdLogout() tea.Cmd {
	ctx, app := r.ctx, r.app

	return func() tea.Msg {
		return logoutDoneMsg{err: app.RequestLogout(ctx)}
	}
}

// redirectCmd waits the redirect delay and then navigates to page. A
// cancelled wait navigates nowhere.
func redirectCmd(ctx context.Context, app *client.App, page models.Page) tea.Cmd {
	return func() tea.Msg {
		if err := app.AwaitRedirect(ctx); err != nil {
			return nil
		}
		return NavigateTo{Page: page}
	}
}

func navigate(page models.Page) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
