package models

// Page is a page identity used for access gating and navigation.
type Page string

// Known pages.
const (
	PageHome    Page = "index.html"
	PageRecipes Page = "recipes.html"
	PageSubmit  Page = "submit.html"
	PageLogin   Page = "login.html"
	PageSignup  Page = "signup.html"
	PageSplash  Page = "splash.html"
)

// DefaultPublicPages lists the pages reachable without authentication.
var DefaultPublicPages = []Page{PageLogin, PageSignup, PageSplash}

// IsPreAuth reports whether p is one of the pages that make no sense for an
// already authenticated user.
func (p Page) IsPreAuth() bool {
	return p == PageLogin || p == PageSignup
}

// AccessKind is the outcome of page-access gating.
type AccessKind int

const (
	// AccessGranted means the page may be rendered.
	AccessGranted AccessKind = iota
	// RedirectRequired means the caller must navigate to AccessDecision.Target
	// instead of rendering the requested page.
	RedirectRequired
)

// AccessDecision is returned by gating a page request.
type AccessDecision struct {
	Kind   AccessKind
	Target Page
}

// Granted reports whether the requested page may be rendered.
func (d AccessDecision) Granted() bool {
	return d.Kind == AccessGranted
}

// Grant returns an AccessGranted decision.
func Grant() AccessDecision {
	return AccessDecision{Kind: AccessGranted}
}

// RedirectTo returns a RedirectRequired decision pointing at target.
func RedirectTo(target Page) AccessDecision {
	return AccessDecision{Kind: RedirectRequired, Target: target}
}
