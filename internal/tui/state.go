package tui

import "github.com/MKhiriev/recook-book/models"

// viewState is what the renderer last received. Pages only read it.
type viewState struct {
	session  models.Session
	listings map[models.ViewKind]models.RecipeListing
}

func newViewState() *viewState {
	return &viewState{listings: make(map[models.ViewKind]models.RecipeListing)}
}

func (s *viewState) apply(msg any) {
	switch msg := msg.(type) {
	case listingMsg:
		s.listings[msg.listing.View] = msg.listing
	case authStateMsg:
		s.session = msg.session
	}
}

func (s *viewState) recipes(view models.ViewKind) []models.Recipe {
	return s.listings[view].Recipes
}

// recipe looks id up in the full listing.
func (s *viewState) recipe(id int64) (models.Recipe, bool) {
	for _, r := range s.recipes(models.ViewAllRecipes) {
		if r.ID == id {
			return r, true
		}
	}
	return models.Recipe{}, false
}

func (s *viewState) upvoted(id int64) bool {
	return s.listings[models.ViewAllRecipes].Upvoted[id]
}
