package tui

import "github.com/MKhiriev/recook-book/models"

// NavigateTo asks the root model to load Page. Loading goes through access
// gating, so the page actually shown may differ.
type NavigateTo struct {
	Page models.Page
}

type pageLoadedMsg struct {
	page     models.Page
	decision models.AccessDecision
	err      error
}

// Renderer calls arrive as these three messages.
type (
	listingMsg struct {
		listing models.RecipeListing
	}
	authStateMsg struct {
		session models.Session
	}
	noticeMsg struct {
		text     string
		severity models.Severity
	}
)

type showDetailMsg struct {
	id int64
}

type closeDetailMsg struct{}

type requestLogoutMsg struct{}

type logoutDoneMsg struct {
	err error
}

type loginDoneMsg struct {
	result models.LoginResult
	err    error
}

type signupDoneMsg struct {
	err error
}

type recipeSubmittedMsg struct {
	err error
}

type recipeDeletedMsg struct {
	err error
}

type upvoteDoneMsg struct {
	upvoted bool
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
